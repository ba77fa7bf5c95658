package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/discovery-microservice/internal/domain"
	"github.com/discovery-microservice/internal/usecase"
)

func TestFilterByPreferences_MinRating(t *testing.T) {
	candidates := []domain.PlaceCandidate{
		{ExternalID: "low", Rating: floatPtr(3.5)},
		{ExternalID: "high", Rating: floatPtr(4.6)},
		{ExternalID: "unrated"},
	}
	prefs := domain.PreferenceSet{
		Types:     map[string]bool{},
		MinRating: floatPtr(4.0),
	}

	result := usecase.FilterByPreferences(candidates, prefs)

	// Кандидаты без рейтинга проходят фильтр
	require.Len(t, result, 2)
	assert.Equal(t, "high", result[0].ExternalID)
	assert.Equal(t, "unrated", result[1].ExternalID)
}

func TestFilterByPreferences_MinReviews(t *testing.T) {
	candidates := []domain.PlaceCandidate{
		{ExternalID: "few", ReviewCount: 3},
		{ExternalID: "many", ReviewCount: 150},
	}
	prefs := domain.PreferenceSet{
		Types:      map[string]bool{},
		MinReviews: intPtr(10),
	}

	result := usecase.FilterByPreferences(candidates, prefs)

	require.Len(t, result, 1)
	assert.Equal(t, "many", result[0].ExternalID)
}

func TestFilterByPreferences_TypeMatchesPrimaryOnly(t *testing.T) {
	candidates := []domain.PlaceCandidate{
		{ExternalID: "cafe", PrimaryType: "cafe"},
		{ExternalID: "park", PrimaryType: "park", Types: []string{"park", "tourist_attraction"}},
		{ExternalID: "merged", PrimaryType: "restaurant", CombinedTypes: []string{"cafe", "restaurant"}},
	}
	typeKey := "cafe"
	prefs := domain.PreferenceSet{
		Types: map[string]bool{},
		Type:  &typeKey,
	}

	result := usecase.FilterByPreferences(candidates, prefs)

	// Считается только основная категория: "cafe" в CombinedTypes не спасает "merged"
	require.Len(t, result, 1)
	assert.Equal(t, "cafe", result[0].ExternalID)
}

func TestFilterByPreferences_SecondaryTypesIgnored(t *testing.T) {
	// Кандидат с искомым типом во вторичном списке, но другой основной
	// категорией отбрасывается
	candidates := []domain.PlaceCandidate{
		{ExternalID: "c1", PrimaryType: "cafe", Types: []string{"restaurant"}},
	}
	typeKey := "restaurant"
	prefs := domain.PreferenceSet{
		Types: map[string]bool{},
		Type:  &typeKey,
	}

	result := usecase.FilterByPreferences(candidates, prefs)

	assert.Empty(t, result)
}

func TestFilterByPreferences_NoConstraintsKeepsAll(t *testing.T) {
	candidates := []domain.PlaceCandidate{
		{ExternalID: "a"},
		{ExternalID: "b", Rating: floatPtr(1.0)},
	}
	prefs := domain.PreferenceSet{Types: map[string]bool{}}

	result := usecase.FilterByPreferences(candidates, prefs)

	assert.Len(t, result, 2)
}

func TestFilterByPreferences_Monotonic(t *testing.T) {
	// Ужесточение порога не может расширить выдачу
	candidates := []domain.PlaceCandidate{
		{ExternalID: "a", Rating: floatPtr(3.0)},
		{ExternalID: "b", Rating: floatPtr(4.0)},
		{ExternalID: "c", Rating: floatPtr(4.8)},
	}

	loose := usecase.FilterByPreferences(candidates, domain.PreferenceSet{
		Types: map[string]bool{}, MinRating: floatPtr(3.5),
	})
	strict := usecase.FilterByPreferences(candidates, domain.PreferenceSet{
		Types: map[string]bool{}, MinRating: floatPtr(4.5),
	})

	assert.LessOrEqual(t, len(strict), len(loose))
	for _, c := range strict {
		assert.Contains(t, loose, c)
	}
}
