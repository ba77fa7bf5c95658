package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/discovery-microservice/internal/domain"
	"github.com/discovery-microservice/internal/usecase"
)

func TestMergeCandidates_BaseIsFirst(t *testing.T) {
	group := []domain.PlaceCandidate{
		{ExternalID: "first", Name: "Cafe A", Address: "Street 1"},
		{ExternalID: "second", Name: "Cafe B", Address: "Street 2"},
	}

	merged := usecase.MergeCandidates(group)

	assert.Equal(t, "first", merged.ExternalID)
	assert.Equal(t, "Cafe A", merged.Name)
	assert.Equal(t, "Street 1", merged.Address)
}

func TestMergeCandidates_LongestPrimaryType(t *testing.T) {
	group := []domain.PlaceCandidate{
		{ExternalID: "a", PrimaryType: "cafe"},
		{ExternalID: "b", PrimaryType: "tourist_attraction"},
		{ExternalID: "c", PrimaryType: "park"},
	}

	merged := usecase.MergeCandidates(group)

	assert.Equal(t, "tourist_attraction", merged.PrimaryType)
	// Объединённые типы отсортированы
	assert.Equal(t, []string{"cafe", "park", "tourist_attraction"}, merged.CombinedTypes)
}

func TestMergeCandidates_TieKeepsFirstSeen(t *testing.T) {
	group := []domain.PlaceCandidate{
		{ExternalID: "a", PrimaryType: "cafe"},
		{ExternalID: "b", PrimaryType: "park"},
	}

	merged := usecase.MergeCandidates(group)

	// При равной длине побеждает первый встреченный тип
	assert.Equal(t, "cafe", merged.PrimaryType)
}

func TestMergeCandidates_SinglePrimaryTypeNoCombined(t *testing.T) {
	group := []domain.PlaceCandidate{
		{ExternalID: "a", PrimaryType: "cafe"},
		{ExternalID: "b", PrimaryType: "cafe"},
	}

	merged := usecase.MergeCandidates(group)

	assert.Equal(t, "cafe", merged.PrimaryType)
	assert.Nil(t, merged.CombinedTypes)
}

func TestMergeCandidates_RatingFromHighestRated(t *testing.T) {
	group := []domain.PlaceCandidate{
		{ExternalID: "a", Rating: floatPtr(4.0), ReviewCount: 20},
		{ExternalID: "b", Rating: floatPtr(4.7), ReviewCount: 300},
		{ExternalID: "c"},
	}

	merged := usecase.MergeCandidates(group)

	require.NotNil(t, merged.Rating)
	assert.Equal(t, 4.7, *merged.Rating)
	// Число отзывов берётся от того же участника, что и рейтинг
	assert.Equal(t, 300, merged.ReviewCount)
}

func TestMergeCandidates_PhotosFromBestRatedWithPhotos(t *testing.T) {
	group := []domain.PlaceCandidate{
		{ExternalID: "a", Rating: floatPtr(4.9)},
		{ExternalID: "b", Rating: floatPtr(4.0), Photos: []domain.PhotoRef{{Reference: "ph-b"}}},
		{ExternalID: "c", Rating: floatPtr(4.5), Photos: []domain.PhotoRef{{Reference: "ph-c"}}},
	}

	merged := usecase.MergeCandidates(group)

	// Участник с наивысшим рейтингом без фото не выбирается источником фотографий
	require.Len(t, merged.Photos, 1)
	assert.Equal(t, "ph-c", merged.Photos[0].Reference)
}

func TestMergeCandidates_DescriptionsJoined(t *testing.T) {
	group := []domain.PlaceCandidate{
		{ExternalID: "a", Description: "Cozy terrace"},
		{ExternalID: "b", Description: ""},
		{ExternalID: "c", Description: "Near the beach"},
	}

	merged := usecase.MergeCandidates(group)

	assert.Equal(t, "Cozy terrace, Near the beach", merged.Description)
}

func TestMergeCandidates_EmptyGroup(t *testing.T) {
	merged := usecase.MergeCandidates(nil)

	assert.Equal(t, domain.PlaceCandidate{}, merged)
}
