package repository

import (
	"context"

	"github.com/discovery-microservice/internal/domain"
)

// RoadsRepository определяет методы привязки GPS-точек к дорожной сети
type RoadsRepository interface {
	// SnapBatch привязывает пачку точек (до 100) к дорогам.
	// Возвращает привязанные точки и HTTP-статус ответа провайдера.
	SnapBatch(ctx context.Context, points []domain.Coordinate) ([]domain.Coordinate, int, error)
}
