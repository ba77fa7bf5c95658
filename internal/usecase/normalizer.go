package usecase

import (
	"github.com/discovery-microservice/internal/domain"
)

// NormalizeCandidates приводит сырые результаты провайдера к единой схеме
// кандидата. Кандидаты с невалидными координатами отбрасываются.
func NormalizeCandidates(results []domain.ProviderResult) []domain.PlaceCandidate {
	candidates := make([]domain.PlaceCandidate, 0, len(results))
	for _, r := range results {
		candidate := normalizeResult(r)
		if !candidate.HasValidLocation() {
			continue
		}
		candidates = append(candidates, candidate)
	}
	return candidates
}

func normalizeResult(r domain.ProviderResult) domain.PlaceCandidate {
	name := r.Name
	if name == "" {
		name = domain.UnknownPlaceName
	}

	primaryType := r.PrimaryType
	if primaryType == "" {
		if len(r.Types) > 0 {
			primaryType = r.Types[0]
		} else {
			primaryType = "unknown"
		}
	}

	return domain.PlaceCandidate{
		ExternalID:  r.PlaceID,
		Name:        name,
		Types:       r.Types,
		PrimaryType: primaryType,
		Rating:      r.Rating,
		ReviewCount: r.ReviewCount,
		Location:    domain.Coordinate{Lat: r.Lat, Lon: r.Lon},
		Address:     r.Address,
		Description: r.Description,
		Photos:      r.Photos,
		Source:      r.Source,
	}
}
