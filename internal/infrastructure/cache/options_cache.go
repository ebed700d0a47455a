package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hszk-dev/reelwatch/internal/domain/model"
	"github.com/hszk-dev/reelwatch/internal/infrastructure/metrics"
)

// OptionsCache stores the resolved streaming options for one movie in one
// region. The cached value may legitimately be an empty list (title matched
// but the region has no data), which is distinct from a miss.
type OptionsCache interface {
	// Get retrieves cached options by movie id.
	// Returns nil, nil on cache miss; a cached empty list comes back non-nil.
	Get(ctx context.Context, movieID string) ([]model.StreamingOption, error)

	// Set stores options with the specified TTL.
	Set(ctx context.Context, movieID string, options []model.StreamingOption, ttl time.Duration) error
}

// RedisOptionsCache implements OptionsCache using Redis.
type RedisOptionsCache struct {
	client *redis.Client
}

// NewRedisOptionsCache creates a new Redis-backed streaming options cache.
func NewRedisOptionsCache(client *redis.Client) *RedisOptionsCache {
	return &RedisOptionsCache{client: client}
}

func (c *RedisOptionsCache) Get(ctx context.Context, movieID string) ([]model.StreamingOption, error) {
	data, err := c.client.Get(ctx, optionsKey(movieID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpGet, metrics.CacheStatusMiss, metrics.CacheTypeOptions).Inc()
			return nil, nil
		}
		metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpGet, metrics.CacheStatusError, metrics.CacheTypeOptions).Inc()
		return nil, fmt.Errorf("redis get: %w", err)
	}

	options := []model.StreamingOption{}
	if err := json.Unmarshal(data, &options); err != nil {
		return nil, fmt.Errorf("deserialize streaming options: %w", err)
	}

	metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpGet, metrics.CacheStatusHit, metrics.CacheTypeOptions).Inc()
	return options, nil
}

func (c *RedisOptionsCache) Set(ctx context.Context, movieID string, options []model.StreamingOption, ttl time.Duration) error {
	if options == nil {
		options = []model.StreamingOption{}
	}

	data, err := json.Marshal(options)
	if err != nil {
		return fmt.Errorf("serialize streaming options: %w", err)
	}

	if err := c.client.Set(ctx, optionsKey(movieID), data, ttl).Err(); err != nil {
		metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpSet, metrics.CacheStatusError, metrics.CacheTypeOptions).Inc()
		return fmt.Errorf("redis set: %w", err)
	}

	metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpSet, metrics.CacheStatusSuccess, metrics.CacheTypeOptions).Inc()
	return nil
}
