package usecase

import "github.com/discovery-microservice/internal/domain"

// FilterByPreferences отбрасывает кандидатов, не проходящих пороги предпочтений.
// Кандидаты без рейтинга проходят фильтр по рейтингу.
func FilterByPreferences(candidates []domain.PlaceCandidate, prefs domain.PreferenceSet) []domain.PlaceCandidate {
	result := make([]domain.PlaceCandidate, 0, len(candidates))
	for _, c := range candidates {
		if !matchesPreferences(c, prefs) {
			continue
		}
		result = append(result, c)
	}
	return result
}

func matchesPreferences(c domain.PlaceCandidate, prefs domain.PreferenceSet) bool {
	if prefs.MinRating != nil && c.Rating != nil && *c.Rating < *prefs.MinRating {
		return false
	}

	if prefs.MinReviews != nil && c.ReviewCount < *prefs.MinReviews {
		return false
	}

	// Сравнение строго по основной категории: вторичные типы кандидата
	// не спасают его от фильтра
	if prefs.Type != nil && *prefs.Type != "" && c.PrimaryType != *prefs.Type {
		return false
	}

	return true
}
