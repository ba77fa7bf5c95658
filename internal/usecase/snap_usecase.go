package usecase

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/discovery-microservice/internal/domain"
	"github.com/discovery-microservice/internal/domain/repository"
)

// SnapUseCase - привязка GPS-трека к дорожной сети пачками.
// Сбой одной пачки не ломает весь трек: пачка пропускается.
type SnapUseCase struct {
	roadsRepo repository.RoadsRepository
	batchSize int
	logger    *zap.Logger
}

// NewSnapUseCase - создание нового use case привязки к дорогам
func NewSnapUseCase(roadsRepo repository.RoadsRepository, batchSize int, log *zap.Logger) *SnapUseCase {
	if batchSize <= 0 {
		batchSize = 100
	}
	return &SnapUseCase{
		roadsRepo: roadsRepo,
		batchSize: batchSize,
		logger:    log,
	}
}

// SnapToRoads делит трек на пачки и привязывает их последовательно,
// сохраняя исходный порядок точек
func (uc *SnapUseCase) SnapToRoads(ctx context.Context, points []domain.Coordinate) []domain.Coordinate {
	if len(points) == 0 {
		return []domain.Coordinate{}
	}

	snapped := make([]domain.Coordinate, 0, len(points))

	for start := 0; start < len(points); start += uc.batchSize {
		end := start + uc.batchSize
		if end > len(points) {
			end = len(points)
		}
		batch := points[start:end]

		result, status, err := uc.roadsRepo.SnapBatch(ctx, batch)
		if err != nil {
			uc.logger.Warn("Road snap batch failed, skipping",
				zap.Int("batch_start", start),
				zap.Int("batch_size", len(batch)),
				zap.Error(err))
			continue
		}
		if status < http.StatusOK || status >= http.StatusMultipleChoices {
			uc.logger.Warn("Road snap batch returned non-success status, skipping",
				zap.Int("batch_start", start),
				zap.Int("status", status))
			continue
		}

		snapped = append(snapped, result...)
	}

	return snapped
}
