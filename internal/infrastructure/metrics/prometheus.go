// Package metrics provides Prometheus metrics for observability.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "reelwatch"

var (
	// CacheOperationsTotal tracks cache operations.
	// Labels:
	//   - operation: get, set
	//   - status: hit, miss, success, error
	//   - cache_type: movie, watchlist, poster, streaming_options
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_operations_total",
			Help:      "Total number of cache operations",
		},
		[]string{"operation", "status", "cache_type"},
	)

	// UpstreamRequestsTotal tracks outbound requests to the three origins.
	// Labels:
	//   - upstream: letterboxd, poster_cdn, availability_api
	//   - status: ok, error
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Total number of requests to upstream origins",
		},
		[]string{"upstream", "status"},
	)

	// WatchlistPagesFetched observes how many pages a single watchlist
	// scrape walked through.
	WatchlistPagesFetched = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "watchlist_pages_fetched",
			Help:      "Number of pages fetched per watchlist scrape",
			Buckets:   []float64{1, 2, 3, 5, 8, 13, 21},
		},
	)
)

// Cache operation status constants.
const (
	CacheStatusHit     = "hit"
	CacheStatusMiss    = "miss"
	CacheStatusSuccess = "success"
	CacheStatusError   = "error"
)

// Cache operation type constants.
const (
	CacheOpGet = "get"
	CacheOpSet = "set"
)

// Cache type constants.
const (
	CacheTypeMovie     = "movie"
	CacheTypeWatchlist = "watchlist"
	CacheTypePoster    = "poster"
	CacheTypeOptions   = "streaming_options"
)

// Upstream origin constants.
const (
	UpstreamLetterboxd   = "letterboxd"
	UpstreamPosterCDN    = "poster_cdn"
	UpstreamAvailability = "availability_api"
)

// Upstream request status constants.
const (
	UpstreamStatusOK    = "ok"
	UpstreamStatusError = "error"
)
