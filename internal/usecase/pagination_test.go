package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/hszk-dev/reelwatch/internal/domain/model"
)

func itemsForPage(page int) []model.MovieItem {
	return []model.MovieItem{{ID: fmt.Sprintf("p%d", page)}}
}

func TestSequentialPageFetcher_Order(t *testing.T) {
	var mu sync.Mutex
	var fetched []int

	fetch := func(ctx context.Context, page int) ([]model.MovieItem, error) {
		mu.Lock()
		fetched = append(fetched, page)
		mu.Unlock()
		return itemsForPage(page), nil
	}

	pages, err := SequentialPageFetcher{}.FetchPages(context.Background(), 2, 5, fetch)
	if err != nil {
		t.Fatalf("FetchPages failed: %v", err)
	}

	want := []int{2, 3, 4, 5}
	if len(fetched) != len(want) {
		t.Fatalf("fetched %d pages, want %d", len(fetched), len(want))
	}
	for i := range want {
		if fetched[i] != want[i] {
			t.Errorf("fetch order[%d] = %d, want %d", i, fetched[i], want[i])
		}
	}

	for i, page := range pages {
		wantID := fmt.Sprintf("p%d", want[i])
		if len(page) != 1 || page[0].ID != wantID {
			t.Errorf("pages[%d] = %+v, want [%s]", i, page, wantID)
		}
	}
}

func TestSequentialPageFetcher_StopsOnError(t *testing.T) {
	var fetched []int
	boom := errors.New("boom")

	fetch := func(ctx context.Context, page int) ([]model.MovieItem, error) {
		fetched = append(fetched, page)
		if page == 3 {
			return nil, boom
		}
		return itemsForPage(page), nil
	}

	_, err := SequentialPageFetcher{}.FetchPages(context.Background(), 2, 6, fetch)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if len(fetched) != 2 {
		t.Errorf("fetched %d pages before stopping, want 2", len(fetched))
	}
}

func TestBoundedPageFetcher_PreservesOrder(t *testing.T) {
	fetch := func(ctx context.Context, page int) ([]model.MovieItem, error) {
		return itemsForPage(page), nil
	}

	pages, err := BoundedPageFetcher{Limit: 3}.FetchPages(context.Background(), 2, 9, fetch)
	if err != nil {
		t.Fatalf("FetchPages failed: %v", err)
	}

	if len(pages) != 8 {
		t.Fatalf("got %d pages, want 8", len(pages))
	}
	for i, page := range pages {
		wantID := fmt.Sprintf("p%d", i+2)
		if len(page) != 1 || page[0].ID != wantID {
			t.Errorf("pages[%d] = %+v, want [%s]", i, page, wantID)
		}
	}
}

func TestBoundedPageFetcher_RespectsLimit(t *testing.T) {
	var inFlight, peak atomic.Int32

	fetch := func(ctx context.Context, page int) ([]model.MovieItem, error) {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		defer inFlight.Add(-1)
		return itemsForPage(page), nil
	}

	if _, err := (BoundedPageFetcher{Limit: 2}).FetchPages(context.Background(), 2, 20, fetch); err != nil {
		t.Fatalf("FetchPages failed: %v", err)
	}

	if peak.Load() > 2 {
		t.Errorf("peak concurrency = %d, want <= 2", peak.Load())
	}
}

func TestBoundedPageFetcher_PropagatesError(t *testing.T) {
	boom := errors.New("boom")
	fetch := func(ctx context.Context, page int) ([]model.MovieItem, error) {
		if page == 4 {
			return nil, boom
		}
		return itemsForPage(page), nil
	}

	_, err := BoundedPageFetcher{Limit: 2}.FetchPages(context.Background(), 2, 8, fetch)
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}
}

func TestBoundedPageFetcher_EmptyRange(t *testing.T) {
	pages, err := BoundedPageFetcher{}.FetchPages(context.Background(), 2, 1, nil)
	if err != nil {
		t.Fatalf("FetchPages failed: %v", err)
	}
	if pages != nil {
		t.Errorf("pages = %v, want nil for empty range", pages)
	}
}
