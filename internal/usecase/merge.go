package usecase

import (
	"sort"
	"strings"

	"github.com/discovery-microservice/internal/domain"
)

// MergeCandidates сворачивает группу кандидатов одного физического места
// в одну консолидированную запись. База - первый элемент группы.
func MergeCandidates(group []domain.PlaceCandidate) domain.PlaceCandidate {
	if len(group) == 0 {
		return domain.PlaceCandidate{}
	}

	merged := group[0]

	// Категория: самая длинная из различных, при равной длине - первая встреченная
	var distinctTypes []string
	seen := make(map[string]bool)
	for _, c := range group {
		if c.PrimaryType != "" && !seen[c.PrimaryType] {
			seen[c.PrimaryType] = true
			distinctTypes = append(distinctTypes, c.PrimaryType)
		}
	}

	longest := ""
	for _, t := range distinctTypes {
		if len(t) > len(longest) {
			longest = t
		}
	}
	if longest != "" {
		merged.PrimaryType = longest
	}

	if len(distinctTypes) > 1 {
		combined := append([]string(nil), distinctTypes...)
		sort.Strings(combined)
		merged.CombinedTypes = combined
	}

	// Описания соединяются через ", "
	var descriptions []string
	for _, c := range group {
		if c.Description != "" {
			descriptions = append(descriptions, c.Description)
		}
	}
	merged.Description = strings.Join(descriptions, ", ")

	// Рейтинг и число отзывов - от участника с наибольшим рейтингом
	bestRated := -1
	for i, c := range group {
		if c.Rating == nil {
			continue
		}
		if bestRated == -1 || *c.Rating > *group[bestRated].Rating {
			bestRated = i
		}
	}
	if bestRated >= 0 {
		merged.Rating = group[bestRated].Rating
		merged.ReviewCount = group[bestRated].ReviewCount
	}

	// Фотографии выбираются независимо: участник с фото и наибольшим рейтингом
	photoSource := -1
	for i, c := range group {
		if len(c.Photos) == 0 {
			continue
		}
		if photoSource == -1 {
			photoSource = i
			continue
		}
		if c.Rating != nil &&
			(group[photoSource].Rating == nil || *c.Rating > *group[photoSource].Rating) {
			photoSource = i
		}
	}
	if photoSource >= 0 {
		merged.Photos = group[photoSource].Photos
	}

	return merged
}
