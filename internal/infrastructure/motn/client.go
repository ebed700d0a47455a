// Package motn talks to the movieofthenight streaming-availability API.
package motn

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hszk-dev/reelwatch/internal/domain/model"
	"github.com/hszk-dev/reelwatch/internal/domain/repository"
	"github.com/hszk-dev/reelwatch/internal/infrastructure/metrics"
)

// Config holds the client configuration.
type Config struct {
	// BaseURL is the API root, e.g.
	// https://streaming-availability.p.rapidapi.com.
	BaseURL string
	// APIKey is the bearer credential sent with every request.
	APIKey string
	// Timeout bounds every outbound call.
	Timeout time.Duration
}

// SearchResult is one candidate returned by the title search. Only the
// fields the resolver reads are modeled; the per-country options map is the
// payload of interest.
type SearchResult struct {
	ID               string               `json:"id"`
	ItemType         string               `json:"itemType"`
	ShowType         string               `json:"showType"`
	ImdbID           string               `json:"imdbId"`
	TmdbID           string               `json:"tmdbId"`
	Title            string               `json:"title"`
	OriginalTitle    string               `json:"originalTitle"`
	ReleaseYear      int                  `json:"releaseYear"`
	StreamingOptions model.CountryOptions `json:"streamingOptions"`
}

// Client queries the streaming-search API.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates a new search API client.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

// SearchByTitle queries the title search endpoint for one country.
// 400, 403, 404 and structurally empty result sets map to ErrNotFound;
// 429 maps to ErrRateLimited; 500, 503 and any other non-success map to
// ErrUnavailable.
func (c *Client) SearchByTitle(ctx context.Context, title string, country model.CountryCode) ([]SearchResult, error) {
	q := url.Values{}
	q.Set("title", title)
	q.Set("country", string(country))
	u := c.baseURL + "/shows/search/title?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}
	req.Header.Set("X-RapidAPI-Key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(metrics.UpstreamAvailability, metrics.UpstreamStatusError).Inc()
		return nil, fmt.Errorf("search %q: %w", title, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.UpstreamRequestsTotal.WithLabelValues(metrics.UpstreamAvailability, metrics.UpstreamStatusError).Inc()
		slog.Error("availability search failed",
			slog.String("title", title),
			slog.Int("status", resp.StatusCode),
		)
		switch resp.StatusCode {
		case http.StatusBadRequest, http.StatusForbidden, http.StatusNotFound:
			return nil, fmt.Errorf("search %q returned %d: %w", title, resp.StatusCode, repository.ErrNotFound)
		case http.StatusTooManyRequests:
			return nil, fmt.Errorf("search %q returned %d: %w", title, resp.StatusCode, repository.ErrRateLimited)
		default:
			return nil, fmt.Errorf("search %q returned %d: %w", title, resp.StatusCode, repository.ErrUnavailable)
		}
	}

	var results []SearchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(metrics.UpstreamAvailability, metrics.UpstreamStatusError).Inc()
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	if len(results) == 0 {
		metrics.UpstreamRequestsTotal.WithLabelValues(metrics.UpstreamAvailability, metrics.UpstreamStatusOK).Inc()
		return nil, fmt.Errorf("search %q returned no results: %w", title, repository.ErrNotFound)
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(metrics.UpstreamAvailability, metrics.UpstreamStatusOK).Inc()
	return results, nil
}
