package usecase

import (
	"strings"
	"unicode"

	"github.com/discovery-microservice/internal/domain"
	"github.com/discovery-microservice/internal/pkg/utils"
)

// Deduplicator - двухфазная дедупликация кандидатов:
// сначала по внешнему идентификатору, затем по близости и имени.
type Deduplicator struct {
	proximityThresholdMeters float64
	nameMatchThresholdMeters float64
}

// NewDeduplicator - создание нового дедупликатора с порогами расстояний
func NewDeduplicator(proximityThresholdMeters, nameMatchThresholdMeters float64) *Deduplicator {
	return &Deduplicator{
		proximityThresholdMeters: proximityThresholdMeters,
		nameMatchThresholdMeters: nameMatchThresholdMeters,
	}
}

// Deduplicate схлопывает дубликаты в списке кандидатов.
// Фаза по идентификатору группирует кандидатов с одинаковым ExternalID;
// фаза по близости и имени применяется только к кандидатам без
// идентификатора. Разные идентификаторы провайдера - разные места,
// как бы похожи ни были имена. Порядок результата детерминирован
// порядком входа.
func (d *Deduplicator) Deduplicate(candidates []domain.PlaceCandidate) []domain.PlaceCandidate {
	if len(candidates) <= 1 {
		return candidates
	}

	withID, noID := d.collapseByExternalID(candidates)
	return append(withID, d.collapseBySimilarity(noID)...)
}

// collapseByExternalID группирует кандидатов с одинаковым непустым ExternalID
// в порядке первого появления идентификатора. Кандидаты без идентификатора
// возвращаются отдельным списком для фазы сравнения по близости.
func (d *Deduplicator) collapseByExternalID(
	candidates []domain.PlaceCandidate,
) (withID, noID []domain.PlaceCandidate) {
	groups := make(map[string][]domain.PlaceCandidate)
	var order []string

	for _, c := range candidates {
		if c.ExternalID == "" {
			noID = append(noID, c)
			continue
		}
		if _, ok := groups[c.ExternalID]; !ok {
			order = append(order, c.ExternalID)
		}
		groups[c.ExternalID] = append(groups[c.ExternalID], c)
	}

	withID = make([]domain.PlaceCandidate, 0, len(order))
	for _, id := range order {
		withID = append(withID, MergeCandidates(groups[id]))
	}
	return withID, noID
}

// collapseBySimilarity - жадная кластеризация слева направо. Каждый кандидат
// сравнивается только с затравкой кластера, не со всеми его участниками.
func (d *Deduplicator) collapseBySimilarity(candidates []domain.PlaceCandidate) []domain.PlaceCandidate {
	assigned := make([]bool, len(candidates))
	var result []domain.PlaceCandidate

	for i := range candidates {
		if assigned[i] {
			continue
		}
		group := []domain.PlaceCandidate{candidates[i]}
		assigned[i] = true

		for j := i + 1; j < len(candidates); j++ {
			if assigned[j] {
				continue
			}
			if d.areSimilar(candidates[i], candidates[j]) {
				group = append(group, candidates[j])
				assigned[j] = true
			}
		}

		if len(group) == 1 {
			result = append(result, group[0])
		} else {
			result = append(result, MergeCandidates(group))
		}
	}

	return result
}

// areSimilar решает, указывают ли два кандидата на одно физическое место
func (d *Deduplicator) areSimilar(a, b domain.PlaceCandidate) bool {
	dist := utils.HaversineDistanceMeters(a.Location, b.Location)
	if dist > d.proximityThresholdMeters {
		return false
	}

	nameA := strings.ToLower(strings.TrimSpace(a.Name))
	nameB := strings.ToLower(strings.TrimSpace(b.Name))
	if nameA == nameB {
		return true
	}

	strippedA := stripNonAlnum(nameA)
	strippedB := stripNonAlnum(nameB)
	if strippedA != "" && strippedA == strippedB {
		return true
	}

	if dist <= d.nameMatchThresholdMeters {
		if strings.Contains(nameA, nameB) || strings.Contains(nameB, nameA) {
			return true
		}
	}

	return false
}

func stripNonAlnum(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
