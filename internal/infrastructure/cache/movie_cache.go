package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/hszk-dev/reelwatch/internal/domain/model"
	"github.com/hszk-dev/reelwatch/internal/domain/repository"
	"github.com/hszk-dev/reelwatch/internal/infrastructure/metrics"
)

// movieJSON is the JSON representation of a MovieItem for caching.
// Using an explicit struct avoids coupling to the domain model's JSON tags.
type movieJSON struct {
	ID               string                  `json:"id"`
	Name             string                  `json:"name"`
	Slug             string                  `json:"slug"`
	StreamingOptions []model.StreamingOption `json:"streaming_options"`
}

// MovieCache stores individual movies durably so later, independent lookups
// can recover a title from its id alone.
type MovieCache interface {
	repository.TitleResolver

	// Set stores a movie under its id with no expiry, overwriting any prior
	// entry for the same id.
	Set(ctx context.Context, movie *model.MovieItem) error
}

// RedisMovieCache implements MovieCache using Redis as the backing store.
type RedisMovieCache struct {
	client *redis.Client
}

// NewRedisMovieCache creates a new Redis-backed movie cache.
func NewRedisMovieCache(client *redis.Client) *RedisMovieCache {
	return &RedisMovieCache{client: client}
}

// ResolveTitle retrieves a movie from Redis by id.
// Returns nil, nil when the id has never been stored.
func (c *RedisMovieCache) ResolveTitle(ctx context.Context, movieID string) (*model.MovieItem, error) {
	data, err := c.client.Get(ctx, movieKey(movieID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpGet, metrics.CacheStatusMiss, metrics.CacheTypeMovie).Inc()
			return nil, nil
		}
		metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpGet, metrics.CacheStatusError, metrics.CacheTypeMovie).Inc()
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var v movieJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("deserialize movie: %w", err)
	}

	metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpGet, metrics.CacheStatusHit, metrics.CacheTypeMovie).Inc()
	return &model.MovieItem{
		ID:               v.ID,
		Name:             v.Name,
		Slug:             v.Slug,
		StreamingOptions: v.StreamingOptions,
	}, nil
}

// Set stores a movie in Redis without expiry. The row must outlive the
// aggregate watchlist entry: availability lookups read it long after the
// list itself has expired.
func (c *RedisMovieCache) Set(ctx context.Context, movie *model.MovieItem) error {
	data, err := json.Marshal(movieJSON{
		ID:               movie.ID,
		Name:             movie.Name,
		Slug:             movie.Slug,
		StreamingOptions: movie.StreamingOptions,
	})
	if err != nil {
		return fmt.Errorf("serialize movie: %w", err)
	}

	if err := c.client.Set(ctx, movieKey(movie.ID), data, 0).Err(); err != nil {
		metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpSet, metrics.CacheStatusError, metrics.CacheTypeMovie).Inc()
		return fmt.Errorf("redis set: %w", err)
	}

	metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpSet, metrics.CacheStatusSuccess, metrics.CacheTypeMovie).Inc()
	return nil
}
