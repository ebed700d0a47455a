package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hszk-dev/reelwatch/internal/infrastructure/metrics"
)

// PosterCache stores raw poster image bytes keyed by movie id. The content
// type is fixed (JPEG) and not tracked separately, so no serialization
// happens here: bytes go in and come out unchanged.
type PosterCache interface {
	// Get retrieves cached poster bytes by movie id.
	// Returns nil, nil on cache miss.
	Get(ctx context.Context, movieID string) ([]byte, error)

	// Set stores poster bytes with the specified TTL.
	Set(ctx context.Context, movieID string, data []byte, ttl time.Duration) error
}

// RedisPosterCache implements PosterCache using Redis.
type RedisPosterCache struct {
	client *redis.Client
}

// NewRedisPosterCache creates a new Redis-backed poster cache.
func NewRedisPosterCache(client *redis.Client) *RedisPosterCache {
	return &RedisPosterCache{client: client}
}

func (c *RedisPosterCache) Get(ctx context.Context, movieID string) ([]byte, error) {
	data, err := c.client.Get(ctx, posterKey(movieID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpGet, metrics.CacheStatusMiss, metrics.CacheTypePoster).Inc()
			return nil, nil
		}
		metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpGet, metrics.CacheStatusError, metrics.CacheTypePoster).Inc()
		return nil, fmt.Errorf("redis get: %w", err)
	}

	metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpGet, metrics.CacheStatusHit, metrics.CacheTypePoster).Inc()
	return data, nil
}

func (c *RedisPosterCache) Set(ctx context.Context, movieID string, data []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, posterKey(movieID), data, ttl).Err(); err != nil {
		metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpSet, metrics.CacheStatusError, metrics.CacheTypePoster).Inc()
		return fmt.Errorf("redis set: %w", err)
	}

	metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpSet, metrics.CacheStatusSuccess, metrics.CacheTypePoster).Inc()
	return nil
}
