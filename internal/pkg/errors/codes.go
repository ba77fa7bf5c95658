package errors

import "net/http"

var (
	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrRouteTooShort = New(
		"ROUTE_TOO_SHORT",
		"Route is too short for place discovery",
		http.StatusBadRequest,
	)

	ErrNoPreferencesEnabled = New(
		"NO_PREFERENCES_ENABLED",
		"No place type preferences enabled",
		http.StatusBadRequest,
	)

	ErrSearchUnavailable = New(
		"SEARCH_UNAVAILABLE",
		"Place search provider is unavailable",
		http.StatusServiceUnavailable,
	)

	ErrLookupUnavailable = New(
		"LOOKUP_UNAVAILABLE",
		"Reviewed places lookup is unavailable",
		http.StatusServiceUnavailable,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
