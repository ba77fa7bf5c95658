package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/discovery-microservice/internal/domain"
	"github.com/discovery-microservice/internal/usecase"
)

func newTestDeduplicator() *usecase.Deduplicator {
	return usecase.NewDeduplicator(20, 10)
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestDeduplicator_SameExternalID(t *testing.T) {
	// Arrange
	dedup := newTestDeduplicator()
	candidates := []domain.PlaceCandidate{
		{ExternalID: "place-1", Name: "Cafe Central", Location: domain.Coordinate{Lat: 41.40, Lon: 2.17}},
		{ExternalID: "place-1", Name: "Cafe Central", Location: domain.Coordinate{Lat: 41.40, Lon: 2.17}},
	}

	// Act
	result := dedup.Deduplicate(candidates)

	// Assert
	require.Len(t, result, 1)
	assert.Equal(t, "place-1", result[0].ExternalID)
}

func TestDeduplicator_DistinctExternalIDsNeverMerged(t *testing.T) {
	// Разные идентификаторы провайдера - разные места, даже при
	// одинаковом имени и совпадающих координатах
	dedup := newTestDeduplicator()
	candidates := []domain.PlaceCandidate{
		{ExternalID: "id-a", Name: "Cafe Central", Location: domain.Coordinate{Lat: 41.400000, Lon: 2.170000}},
		{ExternalID: "id-b", Name: "Cafe Central", Location: domain.Coordinate{Lat: 41.400000, Lon: 2.170000}},
	}

	result := dedup.Deduplicate(candidates)

	require.Len(t, result, 2)
	assert.Equal(t, "id-a", result[0].ExternalID)
	assert.Equal(t, "id-b", result[1].ExternalID)
}

func TestDeduplicator_NameVariantsClose(t *testing.T) {
	// Два варианта написания без идентификатора на расстоянии ~5 метров схлопываются
	dedup := newTestDeduplicator()
	candidates := []domain.PlaceCandidate{
		{Name: "McDonald's", Location: domain.Coordinate{Lat: 41.400000, Lon: 2.170000}},
		{Name: "Mcdonalds", Location: domain.Coordinate{Lat: 41.400045, Lon: 2.170000}},
	}

	result := dedup.Deduplicate(candidates)

	require.Len(t, result, 1)
	assert.Equal(t, "McDonald's", result[0].Name)
}

func TestDeduplicator_SameNameFarApart(t *testing.T) {
	// Одно имя, но больше 20 метров - разные заведения сети
	dedup := newTestDeduplicator()
	candidates := []domain.PlaceCandidate{
		{Name: "Starbucks", Location: domain.Coordinate{Lat: 41.4000, Lon: 2.1700}},
		{Name: "Starbucks", Location: domain.Coordinate{Lat: 41.4010, Lon: 2.1700}},
	}

	result := dedup.Deduplicate(candidates)

	assert.Len(t, result, 2)
}

func TestDeduplicator_SubstringMatchOnlyVeryClose(t *testing.T) {
	dedup := newTestDeduplicator()

	t.Run("substring within 10m merges", func(t *testing.T) {
		candidates := []domain.PlaceCandidate{
			{Name: "Hotel Arts Barcelona", Location: domain.Coordinate{Lat: 41.400000, Lon: 2.170000}},
			{Name: "Hotel Arts", Location: domain.Coordinate{Lat: 41.400045, Lon: 2.170000}},
		}

		result := dedup.Deduplicate(candidates)

		assert.Len(t, result, 1)
	})

	t.Run("substring beyond 10m stays separate", func(t *testing.T) {
		candidates := []domain.PlaceCandidate{
			{Name: "Hotel Arts Barcelona", Location: domain.Coordinate{Lat: 41.400000, Lon: 2.170000}},
			{Name: "Hotel Arts", Location: domain.Coordinate{Lat: 41.400135, Lon: 2.170000}},
		}

		result := dedup.Deduplicate(candidates)

		assert.Len(t, result, 2)
	})
}

func TestDeduplicator_GreedySeedComparison(t *testing.T) {
	// Кандидат сравнивается с затравкой кластера, а не с его участниками:
	// C близок к B, но далёк от затравки A, поэтому образует кластер с B
	dedup := newTestDeduplicator()
	candidates := []domain.PlaceCandidate{
		{Name: "Bar Lobo", Location: domain.Coordinate{Lat: 41.400000, Lon: 2.170000}},
		{Name: "Bar Lobo", Location: domain.Coordinate{Lat: 41.400200, Lon: 2.170000}},
		{Name: "Bar Lobo", Location: domain.Coordinate{Lat: 41.400330, Lon: 2.170000}},
	}

	result := dedup.Deduplicate(candidates)

	// A остаётся один, B и C в 14 м друг от друга сливаются во второй кластер
	require.Len(t, result, 2)
	assert.Equal(t, 41.400000, result[0].Location.Lat)
	assert.Equal(t, 41.400200, result[1].Location.Lat)
}

func TestDeduplicator_MixedIDAndNoID(t *testing.T) {
	// Кандидаты с идентификатором идут первыми, безымянные кластеры - следом
	dedup := newTestDeduplicator()
	candidates := []domain.PlaceCandidate{
		{Name: "Cafe Central", Location: domain.Coordinate{Lat: 41.400000, Lon: 2.170000}},
		{ExternalID: "place-1", Name: "Parc Guell", Location: domain.Coordinate{Lat: 41.414, Lon: 2.152}},
		{Name: "cafe central", Location: domain.Coordinate{Lat: 41.400020, Lon: 2.170000}},
	}

	result := dedup.Deduplicate(candidates)

	require.Len(t, result, 2)
	assert.Equal(t, "place-1", result[0].ExternalID)
	assert.Equal(t, "Cafe Central", result[1].Name)
}

func TestDeduplicator_Idempotent(t *testing.T) {
	dedup := newTestDeduplicator()
	candidates := []domain.PlaceCandidate{
		{Name: "Cafe Central", Location: domain.Coordinate{Lat: 41.400000, Lon: 2.170000}},
		{Name: "cafe central", Location: domain.Coordinate{Lat: 41.400020, Lon: 2.170000}},
		{ExternalID: "place-c", Name: "Parc Guell", Location: domain.Coordinate{Lat: 41.414, Lon: 2.152}},
	}

	once := dedup.Deduplicate(candidates)
	twice := dedup.Deduplicate(once)

	assert.Equal(t, once, twice)
}

func TestDeduplicator_EmptyAndSingle(t *testing.T) {
	dedup := newTestDeduplicator()

	assert.Empty(t, dedup.Deduplicate(nil))

	single := []domain.PlaceCandidate{{Name: "X", Location: domain.Coordinate{Lat: 1, Lon: 1}}}
	assert.Len(t, dedup.Deduplicate(single), 1)
}

func TestDeduplicator_PunctuationStripped(t *testing.T) {
	dedup := newTestDeduplicator()
	candidates := []domain.PlaceCandidate{
		{Name: "El Born C.C.", Location: domain.Coordinate{Lat: 41.400000, Lon: 2.170000}},
		{Name: "El Born CC", Location: domain.Coordinate{Lat: 41.400090, Lon: 2.170000}},
	}

	result := dedup.Deduplicate(candidates)

	assert.Len(t, result, 1)
}
