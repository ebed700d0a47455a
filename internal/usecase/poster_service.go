package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/hszk-dev/reelwatch/internal/infrastructure/cache"
)

// PosterService defines the poster retrieval operation.
type PosterService interface {
	// GetPoster returns the poster JPEG for a movie. Returns nil, nil when
	// slug or id is empty: a defined empty outcome, not a failure.
	GetPoster(ctx context.Context, slug, id string) ([]byte, error)
}

// PosterSource fetches a poster binary from the CDN.
// Satisfied by the letterboxd client.
type PosterSource interface {
	Poster(ctx context.Context, slug, id string) ([]byte, error)
}

// PosterServiceConfig holds configuration for PosterService.
type PosterServiceConfig struct {
	// PosterTTL is the TTL for cached poster bytes.
	PosterTTL time.Duration
}

// DefaultPosterServiceConfig returns the default configuration.
func DefaultPosterServiceConfig() PosterServiceConfig {
	return PosterServiceConfig{
		PosterTTL: 8760 * time.Hour,
	}
}

type posterService struct {
	cdn     PosterSource
	posters cache.PosterCache

	ttl time.Duration
}

// NewPosterService creates a new PosterService.
func NewPosterService(cdn PosterSource, posters cache.PosterCache, cfg PosterServiceConfig) PosterService {
	return &posterService{
		cdn:     cdn,
		posters: posters,
		ttl:     cfg.PosterTTL,
	}
}

// GetPoster implements the cache-aside pattern over the poster CDN.
func (s *posterService) GetPoster(ctx context.Context, slug, id string) ([]byte, error) {
	// Identifiers are expected to come from a real MovieItem; absent ones
	// are a defined empty outcome with zero cache and network calls.
	if slug == "" || id == "" {
		return nil, nil
	}

	cached, err := s.posters.Get(ctx, id)
	if err != nil {
		slog.Warn("poster cache get failed, falling back to fetch",
			"movie_id", id,
			"error", err,
		)
	}
	if cached != nil {
		slog.Debug("poster cache hit", "movie_id", id)
		return cached, nil
	}

	data, err := s.cdn.Poster(ctx, slug, id)
	if err != nil {
		return nil, err
	}

	if err := s.posters.Set(ctx, id, data, s.ttl); err != nil {
		slog.Warn("failed to cache poster",
			"movie_id", id,
			"error", err,
		)
	}

	return data, nil
}
