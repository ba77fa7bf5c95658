package repository

import (
	"context"
	"time"

	"github.com/discovery-microservice/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// Exists проверяет существование ключа
	Exists(ctx context.Context, key string) (bool, error)

	// GetDiscoveryResult получает закешированный результат поиска вдоль маршрута
	GetDiscoveryResult(ctx context.Context, key string) ([]domain.PlaceCandidate, error)

	// SetDiscoveryResult сохраняет результат поиска вдоль маршрута
	SetDiscoveryResult(ctx context.Context, key string, candidates []domain.PlaceCandidate, ttl time.Duration) error
}
