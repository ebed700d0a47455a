package repository

import (
	"context"

	"github.com/hszk-dev/reelwatch/internal/domain/model"
)

// TitleResolver recovers a previously seen movie from its id alone. The
// watchlist scrape writes the entries this reads; availability lookups
// depend on this interface instead of reaching into the cache keyspace
// directly, so the write side can be substituted in tests.
type TitleResolver interface {
	// ResolveTitle returns the movie stored under the given id.
	// Returns nil, nil when the id has never been seen.
	ResolveTitle(ctx context.Context, movieID string) (*model.MovieItem, error)
}
