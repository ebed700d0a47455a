package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/hszk-dev/reelwatch/internal/domain/model"
	"github.com/hszk-dev/reelwatch/internal/domain/repository"
	"github.com/hszk-dev/reelwatch/internal/infrastructure/cache"
	"github.com/hszk-dev/reelwatch/internal/infrastructure/motn"
)

// AvailabilityService defines the streaming availability lookup.
type AvailabilityService interface {
	// GetAvailability returns the streaming options for one movie in one
	// region. The movie id must have been seen in a prior watchlist fetch.
	GetAvailability(ctx context.Context, movieID string, country model.CountryCode) ([]model.StreamingOption, error)
}

// TitleSearcher queries the external search API by title.
// Satisfied by the motn client.
type TitleSearcher interface {
	SearchByTitle(ctx context.Context, title string, country model.CountryCode) ([]motn.SearchResult, error)
}

// AvailabilityServiceConfig holds configuration for AvailabilityService.
type AvailabilityServiceConfig struct {
	// StreamingTTL is the TTL for cached streaming options.
	StreamingTTL time.Duration
}

// DefaultAvailabilityServiceConfig returns the default configuration.
func DefaultAvailabilityServiceConfig() AvailabilityServiceConfig {
	return AvailabilityServiceConfig{
		StreamingTTL: 168 * time.Hour,
	}
}

type availabilityService struct {
	search  TitleSearcher
	titles  repository.TitleResolver
	options cache.OptionsCache

	ttl time.Duration
}

// NewAvailabilityService creates a new AvailabilityService. The resolver is
// typically the movie cache written by the watchlist scrape.
func NewAvailabilityService(
	search TitleSearcher,
	titles repository.TitleResolver,
	options cache.OptionsCache,
	cfg AvailabilityServiceConfig,
) AvailabilityService {
	return &availabilityService{
		search:  search,
		titles:  titles,
		options: options,
		ttl:     cfg.StreamingTTL,
	}
}

// GetAvailability implements the cache-aside pattern over the search API.
func (s *availabilityService) GetAvailability(ctx context.Context, movieID string, country model.CountryCode) ([]model.StreamingOption, error) {
	cached, err := s.options.Get(ctx, movieID)
	if err != nil {
		slog.Warn("options cache get failed, falling back to search",
			"movie_id", movieID,
			"error", err,
		)
	}
	if cached != nil {
		slog.Debug("streaming options cache hit", "movie_id", movieID)
		return cached, nil
	}

	movie, err := s.titles.ResolveTitle(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("resolve title for %s: %w", movieID, err)
	}
	if movie == nil {
		// This path is only reachable for ids seen in a watchlist fetch;
		// absence here is a consistency failure, not a cache miss.
		slog.Error("movie unexpectedly missing from cache", "movie_id", movieID)
		return nil, fmt.Errorf("movie %s not seen in any watchlist: %w", movieID, repository.ErrNotFound)
	}

	title, year := model.SplitTitleYear(movie.Name)
	slog.Debug("searching availability", "title", title, "year", year, "country", country)

	results, err := s.search.SearchByTitle(ctx, title, country)
	if err != nil {
		return nil, err
	}

	options := matchByYear(results, year, country)
	if options == nil {
		return nil, fmt.Errorf("no search result for %q matches year %q: %w", title, year, repository.ErrNotFound)
	}

	if err := s.options.Set(ctx, movieID, options, s.ttl); err != nil {
		slog.Warn("failed to cache streaming options",
			"movie_id", movieID,
			"error", err,
		)
	}

	return options, nil
}

// matchByYear selects the first candidate whose release year equals the
// extracted year exactly (no fuzzy or closest-year fallback) and returns
// its slice for the requested region. An unsupported or absent region
// yields an empty, cacheable slice. A nil return means no candidate
// matched.
func matchByYear(results []motn.SearchResult, year string, country model.CountryCode) []model.StreamingOption {
	want, err := strconv.Atoi(year)
	if err != nil {
		// No embedded year: exact matching can never succeed.
		return nil
	}

	for _, r := range results {
		if r.ReleaseYear != want {
			continue
		}
		options, ok := r.StreamingOptions.ForCountry(country)
		if !ok || options == nil {
			return []model.StreamingOption{}
		}
		return options
	}
	return nil
}
