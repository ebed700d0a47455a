package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/hszk-dev/reelwatch/internal/domain/model"
)

// FetchPageFunc fetches one numbered watchlist page and returns its items.
type FetchPageFunc func(ctx context.Context, page int) ([]model.MovieItem, error)

// PageFetcher controls how watchlist pages after the first are retrieved.
// The default is strictly sequential to stay friendly to the origin site;
// the bounded variant exists for deployments that accept the burst.
type PageFetcher interface {
	// FetchPages retrieves pages first..last inclusive and returns their
	// items grouped per page, in page order. Any page failure fails the
	// whole call.
	FetchPages(ctx context.Context, first, last int, fetch FetchPageFunc) ([][]model.MovieItem, error)
}

// SequentialPageFetcher fetches pages one at a time, in order.
type SequentialPageFetcher struct{}

func (SequentialPageFetcher) FetchPages(ctx context.Context, first, last int, fetch FetchPageFunc) ([][]model.MovieItem, error) {
	var pages [][]model.MovieItem
	for page := first; page <= last; page++ {
		items, err := fetch(ctx, page)
		if err != nil {
			return nil, err
		}
		pages = append(pages, items)
	}
	return pages, nil
}

// BoundedPageFetcher fetches pages concurrently with at most Limit requests
// in flight, preserving page order in the result.
type BoundedPageFetcher struct {
	Limit int
}

func (f BoundedPageFetcher) FetchPages(ctx context.Context, first, last int, fetch FetchPageFunc) ([][]model.MovieItem, error) {
	if last < first {
		return nil, nil
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 4
	}

	pages := make([][]model.MovieItem, last-first+1)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for page := first; page <= last; page++ {
		page := page
		g.Go(func() error {
			items, err := fetch(ctx, page)
			if err != nil {
				return err
			}
			pages[page-first] = items
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return pages, nil
}
