package domain

// PlaceTypeDisplayNames - отображаемые термины для ключей типов мест.
// Ключи совпадают со словарём типов внешнего провайдера; неизвестные
// ключи попадают в запрос как есть (identity fallback).
var PlaceTypeDisplayNames = map[string]string{
	"restaurant":         "restaurant",
	"cafe":               "cafe",
	"bar":                "bar",
	"bakery":             "bakery",
	"fast_food":          "fast food",
	"park":               "park",
	"museum":             "museum",
	"art_gallery":        "art gallery",
	"tourist_attraction": "tourist attraction",
	"viewpoint":          "viewpoint",
	"gas_station":        "gas station",
	"ev_charging":        "EV charging station",
	"supermarket":        "supermarket",
	"convenience_store":  "convenience store",
	"shopping_mall":      "shopping mall",
	"pharmacy":           "pharmacy",
	"hotel":              "hotel",
	"campground":         "campground",
	"rest_stop":          "rest stop",
	"atm":                "ATM",
}

// DisplayNameForType возвращает отображаемый термин для ключа типа
func DisplayNameForType(key string) string {
	if name, ok := PlaceTypeDisplayNames[key]; ok {
		return name
	}
	return key
}
