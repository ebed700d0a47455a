package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/hszk-dev/reelwatch/internal/config"
)

// Cache key namespace. Preserved verbatim for interop with cache inspection
// tooling: keys are a kind prefix plus identifier, with no collisions
// across kinds.
const (
	movieKeyPrefix     = "movie:"
	watchlistKeyPrefix = "watchlist:"
	posterKeyPrefix    = "poster:"
	optionsKeyPrefix   = "streaming_options:"
)

func movieKey(id string) string           { return movieKeyPrefix + id }
func watchlistKey(username string) string { return watchlistKeyPrefix + username }
func posterKey(id string) string          { return posterKeyPrefix + id }
func optionsKey(id string) string         { return optionsKeyPrefix + id }

// NewClient opens the shared, pooled Redis connection used by every typed
// cache. The client is constructed once at process startup, injected by
// reference into the caches, and closed at shutdown.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		PoolSize: cfg.PoolSize,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
