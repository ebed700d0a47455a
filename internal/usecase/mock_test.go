package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/hszk-dev/reelwatch/internal/domain/model"
	"github.com/hszk-dev/reelwatch/internal/infrastructure/letterboxd"
	"github.com/hszk-dev/reelwatch/internal/infrastructure/motn"
)

// mockPageSource provides a configurable mock for WatchlistPageSource.
// It records every requested page number.
type mockPageSource struct {
	mu              sync.Mutex
	watchlistPageFn func(ctx context.Context, username string, page int) (*letterboxd.WatchlistPage, error)
	requestedPages  []int
}

func (m *mockPageSource) WatchlistPage(ctx context.Context, username string, page int) (*letterboxd.WatchlistPage, error) {
	m.mu.Lock()
	m.requestedPages = append(m.requestedPages, page)
	m.mu.Unlock()
	if m.watchlistPageFn != nil {
		return m.watchlistPageFn(ctx, username, page)
	}
	return &letterboxd.WatchlistPage{}, nil
}

func (m *mockPageSource) pages() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]int(nil), m.requestedPages...)
}

// mockMovieCache provides a configurable mock for cache.MovieCache.
type mockMovieCache struct {
	mu        sync.RWMutex
	data      map[string]*model.MovieItem
	setFn     func(ctx context.Context, movie *model.MovieItem) error
	resolveFn func(ctx context.Context, movieID string) (*model.MovieItem, error)
}

func newMockMovieCache() *mockMovieCache {
	return &mockMovieCache{data: make(map[string]*model.MovieItem)}
}

func (m *mockMovieCache) ResolveTitle(ctx context.Context, movieID string) (*model.MovieItem, error) {
	if m.resolveFn != nil {
		return m.resolveFn(ctx, movieID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data[movieID], nil
}

func (m *mockMovieCache) Set(ctx context.Context, movie *model.MovieItem) error {
	if m.setFn != nil {
		return m.setFn(ctx, movie)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[movie.ID] = movie
	return nil
}

// mockWatchlistCache provides a configurable mock for cache.WatchlistCache.
type mockWatchlistCache struct {
	mu       sync.RWMutex
	data     map[string][]model.MovieItem
	ttls     map[string]time.Duration
	getFn    func(ctx context.Context, username string) ([]model.MovieItem, error)
	setFn    func(ctx context.Context, username string, movies []model.MovieItem, ttl time.Duration) error
	getCalls int
}

func newMockWatchlistCache() *mockWatchlistCache {
	return &mockWatchlistCache{
		data: make(map[string][]model.MovieItem),
		ttls: make(map[string]time.Duration),
	}
}

func (m *mockWatchlistCache) Get(ctx context.Context, username string) ([]model.MovieItem, error) {
	m.mu.Lock()
	m.getCalls++
	m.mu.Unlock()
	if m.getFn != nil {
		return m.getFn(ctx, username)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data[username], nil
}

func (m *mockWatchlistCache) Set(ctx context.Context, username string, movies []model.MovieItem, ttl time.Duration) error {
	if m.setFn != nil {
		return m.setFn(ctx, username, movies, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[username] = movies
	m.ttls[username] = ttl
	return nil
}

// mockPosterCache provides a configurable mock for cache.PosterCache.
type mockPosterCache struct {
	mu       sync.RWMutex
	data     map[string][]byte
	getFn    func(ctx context.Context, movieID string) ([]byte, error)
	setFn    func(ctx context.Context, movieID string, data []byte, ttl time.Duration) error
	getCalls int
}

func newMockPosterCache() *mockPosterCache {
	return &mockPosterCache{data: make(map[string][]byte)}
}

func (m *mockPosterCache) Get(ctx context.Context, movieID string) ([]byte, error) {
	m.mu.Lock()
	m.getCalls++
	m.mu.Unlock()
	if m.getFn != nil {
		return m.getFn(ctx, movieID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data[movieID], nil
}

func (m *mockPosterCache) Set(ctx context.Context, movieID string, data []byte, ttl time.Duration) error {
	if m.setFn != nil {
		return m.setFn(ctx, movieID, data, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[movieID] = data
	return nil
}

// mockPosterSource provides a configurable mock for PosterSource.
type mockPosterSource struct {
	posterFn func(ctx context.Context, slug, id string) ([]byte, error)
	calls    int
}

func (m *mockPosterSource) Poster(ctx context.Context, slug, id string) ([]byte, error) {
	m.calls++
	if m.posterFn != nil {
		return m.posterFn(ctx, slug, id)
	}
	return nil, nil
}

// mockOptionsCache provides a configurable mock for cache.OptionsCache.
type mockOptionsCache struct {
	mu    sync.RWMutex
	data  map[string][]model.StreamingOption
	getFn func(ctx context.Context, movieID string) ([]model.StreamingOption, error)
	setFn func(ctx context.Context, movieID string, options []model.StreamingOption, ttl time.Duration) error
}

func newMockOptionsCache() *mockOptionsCache {
	return &mockOptionsCache{data: make(map[string][]model.StreamingOption)}
}

func (m *mockOptionsCache) Get(ctx context.Context, movieID string) ([]model.StreamingOption, error) {
	if m.getFn != nil {
		return m.getFn(ctx, movieID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data[movieID], nil
}

func (m *mockOptionsCache) Set(ctx context.Context, movieID string, options []model.StreamingOption, ttl time.Duration) error {
	if m.setFn != nil {
		return m.setFn(ctx, movieID, options, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[movieID] = options
	return nil
}

// mockTitleSearcher provides a configurable mock for TitleSearcher.
type mockTitleSearcher struct {
	searchFn func(ctx context.Context, title string, country model.CountryCode) ([]motn.SearchResult, error)
	calls    int
}

func (m *mockTitleSearcher) SearchByTitle(ctx context.Context, title string, country model.CountryCode) ([]motn.SearchResult, error) {
	m.calls++
	if m.searchFn != nil {
		return m.searchFn(ctx, title, country)
	}
	return nil, nil
}
