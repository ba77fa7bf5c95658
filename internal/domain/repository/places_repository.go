package repository

import (
	"context"

	"github.com/discovery-microservice/internal/domain"
)

// PlacesRepository определяет методы внешнего поиска мест
type PlacesRepository interface {
	// SearchAlongRoute выполняет поиск мест вдоль закодированного маршрута.
	// Любая ошибка транспорта или недоступность провайдера означает,
	// что вызывающий должен перейти к fallback-поиску.
	SearchAlongRoute(
		ctx context.Context,
		query string,
		encodedPolyline string,
		language string,
		maxResults int,
	) ([]domain.ProviderResult, error)

	// SearchNearby выполняет поиск мест одного типа вокруг точки
	SearchNearby(
		ctx context.Context,
		lat, lon float64,
		radiusMeters int,
		typeKey string,
		maxResults int,
	) ([]domain.ProviderResult, error)
}
