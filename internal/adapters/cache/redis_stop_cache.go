package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ride-view-service/internal/domain"
	"ride-view-service/internal/platform/obs"

	"github.com/redis/go-redis/v9"
)

const stopCacheKey = "ride-view:stops"

// Redis-backed cache for the session's stop directory. The full list is
// stored as one JSON value and replaced wholesale; a missing key is a
// miss, not an error.
type RedisStopCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisStopCache(client *redis.Client, ttl time.Duration) *RedisStopCache {
	return &RedisStopCache{Client: client, TTL: ttl}
}

func (r *RedisStopCache) GetAll(ctx context.Context) (_ []domain.Stop, err error) {
	defer obs.Time(ctx, "stop.cache.redis.GetAll")(&err)

	if r.Client == nil {
		return nil, errors.New("stop cache: redis client is nil")
	}

	b, err := r.Client.Get(ctx, stopCacheKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return []domain.Stop{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get stop cache: redis get %q: %w", stopCacheKey, err)
	}

	var stops []domain.Stop
	if err := json.Unmarshal(b, &stops); err != nil {
		return nil, fmt.Errorf("get stop cache: decode cached stops: %w", err)
	}
	return stops, nil
}

func (r *RedisStopCache) PutAll(ctx context.Context, stops []domain.Stop) error {
	if r.Client == nil {
		return errors.New("stop cache: redis client is nil")
	}

	if len(stops) == 0 {
		return nil
	}

	b, err := json.Marshal(stops)
	if err != nil {
		return fmt.Errorf("insert stop cache: encode stops: %w", err)
	}

	if err := r.Client.Set(ctx, stopCacheKey, b, r.TTL).Err(); err != nil {
		return fmt.Errorf("insert stop cache: redis set %q: %w", stopCacheKey, err)
	}
	return nil
}
