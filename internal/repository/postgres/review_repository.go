package postgres

import (
	"context"
	"fmt"

	"github.com/lib/pq"

	"github.com/discovery-microservice/internal/domain/repository"
)

const (
	placeStatusSaved     = "saved"
	placeStatusDismissed = "dismissed"
)

type reviewedPlacesRepository struct {
	db *DB
}

// NewReviewedPlacesRepository создает репозиторий просмотренных мест пользователя
func NewReviewedPlacesRepository(db *DB) repository.ReviewedPlacesRepository {
	return &reviewedPlacesRepository{db: db}
}

type reviewedPlaceRow struct {
	PlaceID string `db:"place_id"`
	Status  string `db:"status"`
}

// GetSavedAndDismissed возвращает идентификаторы сохранённых и отклонённых мест
func (r *reviewedPlacesRepository) GetSavedAndDismissed(
	ctx context.Context,
	userID string,
) (map[string]struct{}, map[string]struct{}, error) {
	query := `
		SELECT place_id, status
		FROM user_places
		WHERE user_id = $1
		  AND status = ANY($2)`

	var rows []reviewedPlaceRow
	err := r.db.SelectContext(ctx, &rows, query, userID,
		pq.Array([]string{placeStatusSaved, placeStatusDismissed}))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query reviewed places: %w", err)
	}

	saved := make(map[string]struct{})
	dismissed := make(map[string]struct{})
	for _, row := range rows {
		switch row.Status {
		case placeStatusSaved:
			saved[row.PlaceID] = struct{}{}
		case placeStatusDismissed:
			dismissed[row.PlaceID] = struct{}{}
		}
	}

	return saved, dismissed, nil
}
