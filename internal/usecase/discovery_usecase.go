package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/discovery-microservice/internal/config"
	"github.com/discovery-microservice/internal/domain"
	"github.com/discovery-microservice/internal/domain/repository"
	"github.com/discovery-microservice/internal/pkg/polyline"
	"github.com/discovery-microservice/internal/pkg/utils"
)

// DiscoveryUseCase - оркестратор поиска мест вдоль маршрута.
// Восстановимые сбои провайдеров не поднимаются наверх: результат
// всегда срез кандидатов, возможно пустой.
type DiscoveryUseCase struct {
	placesRepo repository.PlacesRepository
	reviewRepo repository.ReviewedPlacesRepository
	cacheRepo  repository.CacheRepository
	dedup      *Deduplicator
	cfg        config.DiscoveryConfig
	cacheTTL   time.Duration
	logger     *zap.Logger
}

// NewDiscoveryUseCase - создание нового оркестратора поиска.
// reviewRepo и cacheRepo опциональны: nil отключает соответствующий шаг.
func NewDiscoveryUseCase(
	placesRepo repository.PlacesRepository,
	reviewRepo repository.ReviewedPlacesRepository,
	cacheRepo repository.CacheRepository,
	cfg config.DiscoveryConfig,
	cacheTTL time.Duration,
	log *zap.Logger,
) *DiscoveryUseCase {
	return &DiscoveryUseCase{
		placesRepo: placesRepo,
		reviewRepo: reviewRepo,
		cacheRepo:  cacheRepo,
		dedup:      NewDeduplicator(cfg.ProximityThresholdMeters, cfg.NameMatchThresholdMeters),
		cfg:        cfg,
		cacheTTL:   cacheTTL,
		logger:     log,
	}
}

// DiscoverAlongRoute выполняет полный конвейер: поиск вдоль маршрута,
// при неудаче - поиск по типам вокруг центра, затем нормализация,
// дедупликация и фильтрация. Паникует только на nil-карте типов.
func (uc *DiscoveryUseCase) DiscoverAlongRoute(
	ctx context.Context,
	route []domain.Coordinate,
	prefs domain.PreferenceSet,
	language string,
	userID string,
) []domain.PlaceCandidate {
	if prefs.Types == nil {
		panic("discovery: preference types map is nil")
	}

	requestID := uuid.New().String()
	log := uc.logger.With(zap.String("request_id", requestID))

	if len(route) < 2 {
		log.Debug("Route has fewer than two points, nothing to search")
		return []domain.PlaceCandidate{}
	}
	if len(route) == 2 {
		dist := utils.HaversineDistanceMeters(route[0], route[1])
		if dist < uc.cfg.MinRouteDistanceMeters {
			log.Debug("Route is too short for search along route",
				zap.Float64("distance_m", dist))
			return []domain.PlaceCandidate{}
		}
	}

	query := domain.BuildSearchQuery(prefs)
	if query == "" {
		log.Debug("No enabled place types in preferences")
		return []domain.PlaceCandidate{}
	}

	encoded := polyline.Encode(route)
	cacheKey := uc.buildCacheKey(encoded, prefs, language)

	if cached := uc.readCache(ctx, cacheKey, log); cached != nil {
		return cached
	}

	results := uc.searchAlongRoute(ctx, query, encoded, language, log)
	if len(results) == 0 {
		results = uc.searchAroundCenter(ctx, route, prefs, log)
	}

	candidates := NormalizeCandidates(results)
	candidates = uc.dedup.Deduplicate(candidates)
	candidates = FilterByPreferences(candidates, prefs)
	candidates = uc.dropReviewed(ctx, candidates, userID, log)

	uc.writeCache(ctx, cacheKey, candidates, log)

	log.Info("Route discovery completed",
		zap.Int("raw_results", len(results)),
		zap.Int("candidates", len(candidates)))

	return candidates
}

// searchAlongRoute - основная фаза поиска через текстовый запрос вдоль полилинии
func (uc *DiscoveryUseCase) searchAlongRoute(
	ctx context.Context,
	query, encodedPolyline, language string,
	log *zap.Logger,
) []domain.ProviderResult {
	results, err := uc.placesRepo.SearchAlongRoute(
		ctx, query, encodedPolyline, language, uc.cfg.RouteSearchMaxResults)
	if err != nil {
		log.Warn("Search along route failed, falling back to center search",
			zap.Error(err))
		return nil
	}
	return results
}

// searchAroundCenter - резервная фаза: параллельный поиск по каждому
// включённому типу вокруг центра маршрута. Порядок результата детерминирован
// порядком отсортированных типов, ошибки отдельных типов пропускаются.
func (uc *DiscoveryUseCase) searchAroundCenter(
	ctx context.Context,
	route []domain.Coordinate,
	prefs domain.PreferenceSet,
	log *zap.Logger,
) []domain.ProviderResult {
	center := utils.RouteCenter(route)
	if (center.Lat == 0 && center.Lon == 0) || !center.IsValid() {
		log.Warn("Route center is invalid, skipping fallback search",
			zap.Float64("lat", center.Lat),
			zap.Float64("lon", center.Lon))
		return nil
	}

	enabled := prefs.EnabledTypes()
	if len(enabled) == 0 {
		return nil
	}

	bounds := utils.RouteBoundingCircle(route)
	log.Debug("Fallback search around route center",
		zap.Float64("center_lat", center.Lat),
		zap.Float64("center_lon", center.Lon),
		zap.Float64("route_extent_radius_m", bounds.RadiusMeters),
		zap.Int("search_radius_m", uc.cfg.FallbackRadiusMeters),
		zap.Strings("types", enabled))

	concurrency := uc.cfg.FallbackConcurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	slots := make([][]domain.ProviderResult, len(enabled))
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

loop:
	for i, typeKey := range enabled {
		select {
		case <-ctx.Done():
			log.Warn("Fallback search cancelled, returning partial results",
				zap.Error(ctx.Err()))
			break loop
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(slot int, key string) {
			defer wg.Done()
			defer func() { <-sem }()

			results, err := uc.placesRepo.SearchNearby(
				ctx, center.Lat, center.Lon,
				uc.cfg.FallbackRadiusMeters, key, uc.cfg.FallbackPerTypeResults)
			if err != nil {
				log.Warn("Nearby search failed for type",
					zap.String("type", key), zap.Error(err))
				return
			}
			slots[slot] = results
		}(i, typeKey)
	}

	wg.Wait()

	var flat []domain.ProviderResult
	for _, results := range slots {
		flat = append(flat, results...)
	}
	return flat
}

// dropReviewed убирает уже сохранённые и отклонённые пользователем места.
// Недоступность хранилища не ломает выдачу: возвращается полный список.
func (uc *DiscoveryUseCase) dropReviewed(
	ctx context.Context,
	candidates []domain.PlaceCandidate,
	userID string,
	log *zap.Logger,
) []domain.PlaceCandidate {
	if userID == "" || uc.reviewRepo == nil || len(candidates) == 0 {
		return candidates
	}

	saved, dismissed, err := uc.reviewRepo.GetSavedAndDismissed(ctx, userID)
	if err != nil {
		log.Warn("Failed to load reviewed places, keeping all candidates",
			zap.String("user_id", userID), zap.Error(err))
		return candidates
	}

	result := make([]domain.PlaceCandidate, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := saved[c.ExternalID]; ok {
			continue
		}
		if _, ok := dismissed[c.ExternalID]; ok {
			continue
		}
		result = append(result, c)
	}
	return result
}

func (uc *DiscoveryUseCase) buildCacheKey(encodedPolyline string, prefs domain.PreferenceSet, language string) string {
	var b strings.Builder
	b.WriteString(encodedPolyline)
	b.WriteString("|")
	b.WriteString(strings.Join(prefs.EnabledTypes(), ","))
	b.WriteString("|")
	if prefs.MinRating != nil {
		fmt.Fprintf(&b, "r%.2f", *prefs.MinRating)
	}
	if prefs.MinReviews != nil {
		fmt.Fprintf(&b, "n%d", *prefs.MinReviews)
	}
	if prefs.Type != nil {
		b.WriteString("t" + *prefs.Type)
	}
	b.WriteString("|")
	b.WriteString(language)

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

func (uc *DiscoveryUseCase) readCache(ctx context.Context, key string, log *zap.Logger) []domain.PlaceCandidate {
	if uc.cacheRepo == nil {
		return nil
	}
	cached, err := uc.cacheRepo.GetDiscoveryResult(ctx, key)
	if err != nil {
		log.Warn("Failed to read discovery cache", zap.Error(err))
		return nil
	}
	if cached != nil {
		log.Debug("Discovery cache hit", zap.Int("candidates", len(cached)))
	}
	return cached
}

func (uc *DiscoveryUseCase) writeCache(ctx context.Context, key string, candidates []domain.PlaceCandidate, log *zap.Logger) {
	if uc.cacheRepo == nil {
		return
	}
	if err := uc.cacheRepo.SetDiscoveryResult(ctx, key, candidates, uc.cacheTTL); err != nil {
		log.Warn("Failed to write discovery cache", zap.Error(err))
	}
}

// SortCandidatesByRating сортирует выдачу по убыванию рейтинга.
// Кандидаты без рейтинга идут в конец, исходный порядок внутри групп сохраняется.
func SortCandidatesByRating(candidates []domain.PlaceCandidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		ri, rj := candidates[i].Rating, candidates[j].Rating
		if ri == nil {
			return false
		}
		if rj == nil {
			return true
		}
		return *ri > *rj
	})
}
