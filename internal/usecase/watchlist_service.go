package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hszk-dev/reelwatch/internal/domain/model"
	"github.com/hszk-dev/reelwatch/internal/infrastructure/cache"
	"github.com/hszk-dev/reelwatch/internal/infrastructure/letterboxd"
	"github.com/hszk-dev/reelwatch/internal/infrastructure/metrics"
)

// WatchlistService defines the watchlist retrieval operation.
type WatchlistService interface {
	// GetWatchlist returns the user's watchlist in page order, from cache
	// when fresh and otherwise by scraping the content site.
	GetWatchlist(ctx context.Context, username string) ([]model.MovieItem, error)
}

// WatchlistPageSource fetches one page of a username's watchlist.
// Satisfied by the letterboxd client.
type WatchlistPageSource interface {
	WatchlistPage(ctx context.Context, username string, page int) (*letterboxd.WatchlistPage, error)
}

// WatchlistServiceConfig holds configuration for WatchlistService.
type WatchlistServiceConfig struct {
	// WatchlistTTL is the TTL for the aggregate cached list. Per-movie rows
	// are written without expiry.
	WatchlistTTL time.Duration
}

// DefaultWatchlistServiceConfig returns the default configuration.
func DefaultWatchlistServiceConfig() WatchlistServiceConfig {
	return WatchlistServiceConfig{
		WatchlistTTL: time.Hour,
	}
}

type watchlistService struct {
	site   WatchlistPageSource
	movies cache.MovieCache
	lists  cache.WatchlistCache
	pages  PageFetcher

	listTTL time.Duration
}

// NewWatchlistService creates a new WatchlistService. A nil pageFetcher
// falls back to the sequential default.
func NewWatchlistService(
	site WatchlistPageSource,
	movies cache.MovieCache,
	lists cache.WatchlistCache,
	pageFetcher PageFetcher,
	cfg WatchlistServiceConfig,
) WatchlistService {
	if pageFetcher == nil {
		pageFetcher = SequentialPageFetcher{}
	}
	return &watchlistService{
		site:    site,
		movies:  movies,
		lists:   lists,
		pages:   pageFetcher,
		listTTL: cfg.WatchlistTTL,
	}
}

// GetWatchlist implements the cache-aside pattern over the scraper.
func (s *watchlistService) GetWatchlist(ctx context.Context, username string) ([]model.MovieItem, error) {
	// Terminal case: no cache lookup, no network call.
	if username == "" {
		return []model.MovieItem{}, nil
	}

	cached, err := s.lists.Get(ctx, username)
	if err != nil {
		slog.Warn("watchlist cache get failed, falling back to scrape",
			"username", username,
			"error", err,
		)
	}
	if cached != nil {
		slog.Debug("watchlist cache hit", "username", username)
		return cached, nil
	}

	first, err := s.site.WatchlistPage(ctx, username, 1)
	if err != nil {
		return nil, err
	}
	if err := s.storeMovies(ctx, first.Movies); err != nil {
		return nil, err
	}

	movies := make([]model.MovieItem, 0, len(first.Movies))
	movies = append(movies, first.Movies...)

	// Page count comes from page 1's pagination markers only and is not
	// re-evaluated on later pages.
	if first.PageCount > 1 {
		rest, err := s.pages.FetchPages(ctx, 2, first.PageCount, s.fetchPage(username))
		if err != nil {
			// Whole operation fails; a partial list cached for a full TTL
			// would look complete to every caller until expiry.
			return nil, err
		}
		for _, pageMovies := range rest {
			movies = append(movies, pageMovies...)
		}
	}

	pageCount := first.PageCount
	if pageCount < 1 {
		pageCount = 1
	}
	metrics.WatchlistPagesFetched.Observe(float64(pageCount))

	if err := s.lists.Set(ctx, username, movies, s.listTTL); err != nil {
		slog.Warn("failed to cache watchlist",
			"username", username,
			"error", err,
		)
	}

	return movies, nil
}

func (s *watchlistService) fetchPage(username string) FetchPageFunc {
	return func(ctx context.Context, page int) ([]model.MovieItem, error) {
		p, err := s.site.WatchlistPage(ctx, username, page)
		if err != nil {
			return nil, err
		}
		if err := s.storeMovies(ctx, p.Movies); err != nil {
			return nil, err
		}
		return p.Movies, nil
	}
}

// storeMovies writes each parsed entry durably so availability lookups can
// recover titles by id alone, long after the aggregate list expires.
func (s *watchlistService) storeMovies(ctx context.Context, movies []model.MovieItem) error {
	for i := range movies {
		if err := s.movies.Set(ctx, &movies[i]); err != nil {
			return fmt.Errorf("cache movie %s: %w", movies[i].ID, err)
		}
	}
	return nil
}
