package repository

import "errors"

var (
	// ErrNotFound is returned when a resource does not exist upstream, or a
	// required cache-chain prerequisite is missing (e.g. a movie id that
	// was never seen in a watchlist scrape).
	ErrNotFound = errors.New("resource not found")

	// ErrUnavailable is returned when an upstream responded with a
	// server-side failure. Safe to retry later; never retried here.
	ErrUnavailable = errors.New("upstream unavailable")

	// ErrRateLimited is returned when an upstream rejected the call due to
	// quota. Callers must back off.
	ErrRateLimited = errors.New("upstream rate limit exceeded")
)
