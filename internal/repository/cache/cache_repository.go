package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/discovery-microservice/internal/domain"
	"github.com/discovery-microservice/internal/domain/repository"
)

const discoveryKeyPrefix = "discovery:result:"

type cacheRepository struct {
	redis *Redis
}

// NewCacheRepository создает репозиторий кеша на Redis
func NewCacheRepository(r *Redis) repository.CacheRepository {
	return &cacheRepository{redis: r}
}

// Get получает значение из кеша по ключу
func (c *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := c.redis.Client().Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get key %s: %w", key, err)
	}
	return data, nil
}

// Set сохраняет значение в кеше с TTL
func (c *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.redis.Client().Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}
	return nil
}

// Delete удаляет значение из кеша
func (c *cacheRepository) Delete(ctx context.Context, key string) error {
	if err := c.redis.Client().Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

// Exists проверяет существование ключа
func (c *cacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	n, err := c.redis.Client().Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check key %s: %w", key, err)
	}
	return n > 0, nil
}

// GetDiscoveryResult получает закешированный результат поиска вдоль маршрута.
// Возвращает nil без ошибки при промахе кеша.
func (c *cacheRepository) GetDiscoveryResult(ctx context.Context, key string) ([]domain.PlaceCandidate, error) {
	data, err := c.Get(ctx, discoveryKeyPrefix+key)
	if err != nil || data == nil {
		return nil, err
	}

	var candidates []domain.PlaceCandidate
	if err := json.Unmarshal(data, &candidates); err != nil {
		return nil, fmt.Errorf("failed to unmarshal discovery result: %w", err)
	}
	return candidates, nil
}

// SetDiscoveryResult сохраняет результат поиска вдоль маршрута
func (c *cacheRepository) SetDiscoveryResult(
	ctx context.Context,
	key string,
	candidates []domain.PlaceCandidate,
	ttl time.Duration,
) error {
	data, err := json.Marshal(candidates)
	if err != nil {
		return fmt.Errorf("failed to marshal discovery result: %w", err)
	}
	return c.Set(ctx, discoveryKeyPrefix+key, data, ttl)
}
