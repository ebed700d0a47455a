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

// WatchlistCache stores a user's full watchlist, in page order, with a TTL.
type WatchlistCache interface {
	// Get retrieves a cached watchlist by username.
	// Returns nil, nil on cache miss; a cached empty list comes back non-nil.
	Get(ctx context.Context, username string) ([]model.MovieItem, error)

	// Set stores the watchlist with the specified TTL.
	Set(ctx context.Context, username string, movies []model.MovieItem, ttl time.Duration) error
}

// RedisWatchlistCache implements WatchlistCache using Redis.
type RedisWatchlistCache struct {
	client *redis.Client
}

// NewRedisWatchlistCache creates a new Redis-backed watchlist cache.
func NewRedisWatchlistCache(client *redis.Client) *RedisWatchlistCache {
	return &RedisWatchlistCache{client: client}
}

func (c *RedisWatchlistCache) Get(ctx context.Context, username string) ([]model.MovieItem, error) {
	data, err := c.client.Get(ctx, watchlistKey(username)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpGet, metrics.CacheStatusMiss, metrics.CacheTypeWatchlist).Inc()
			return nil, nil
		}
		metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpGet, metrics.CacheStatusError, metrics.CacheTypeWatchlist).Inc()
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var items []movieJSON
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("deserialize watchlist: %w", err)
	}

	movies := make([]model.MovieItem, 0, len(items))
	for _, v := range items {
		movies = append(movies, model.MovieItem{
			ID:               v.ID,
			Name:             v.Name,
			Slug:             v.Slug,
			StreamingOptions: v.StreamingOptions,
		})
	}

	metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpGet, metrics.CacheStatusHit, metrics.CacheTypeWatchlist).Inc()
	return movies, nil
}

func (c *RedisWatchlistCache) Set(ctx context.Context, username string, movies []model.MovieItem, ttl time.Duration) error {
	items := make([]movieJSON, 0, len(movies))
	for _, m := range movies {
		items = append(items, movieJSON{
			ID:               m.ID,
			Name:             m.Name,
			Slug:             m.Slug,
			StreamingOptions: m.StreamingOptions,
		})
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("serialize watchlist: %w", err)
	}

	if err := c.client.Set(ctx, watchlistKey(username), data, ttl).Err(); err != nil {
		metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpSet, metrics.CacheStatusError, metrics.CacheTypeWatchlist).Inc()
		return fmt.Errorf("redis set: %w", err)
	}

	metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpSet, metrics.CacheStatusSuccess, metrics.CacheTypeWatchlist).Inc()
	return nil
}
