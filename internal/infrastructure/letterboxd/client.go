// Package letterboxd scrapes the content site: watchlist pages and the
// poster CDN. The site exposes no API, so both operations work off
// deterministic URLs.
package letterboxd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/hszk-dev/reelwatch/internal/domain/repository"
	"github.com/hszk-dev/reelwatch/internal/infrastructure/metrics"
)

// Config holds the client configuration.
type Config struct {
	// BaseURL is the content site root, e.g. https://letterboxd.com.
	BaseURL string
	// PosterBaseURL is the poster CDN root, e.g.
	// https://a.ltrbxd.com/resized/film-poster.
	PosterBaseURL string
	// Timeout bounds every outbound call.
	Timeout time.Duration
}

// Client fetches watchlist pages and poster images.
type Client struct {
	baseURL       string
	posterBaseURL string
	http          *http.Client
}

// NewClient creates a new scraping client.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		posterBaseURL: strings.TrimRight(cfg.PosterBaseURL, "/"),
		http:          &http.Client{Timeout: cfg.Timeout},
	}
}

// WatchlistPage fetches and parses one page of a user's watchlist.
// Any non-success response maps to ErrNotFound: the watchlist cannot be
// assumed to exist for the given username.
func (c *Client) WatchlistPage(ctx context.Context, username string, page int) (*WatchlistPage, error) {
	u := c.baseURL + "/" + username + "/watchlist/"
	if page > 1 {
		u += fmt.Sprintf("page/%d/", page)
	}

	body, status, err := c.get(ctx, u)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(metrics.UpstreamLetterboxd, metrics.UpstreamStatusError).Inc()
		return nil, fmt.Errorf("fetch watchlist page %d: %w", page, err)
	}
	if status < 200 || status >= 300 {
		metrics.UpstreamRequestsTotal.WithLabelValues(metrics.UpstreamLetterboxd, metrics.UpstreamStatusError).Inc()
		slog.Error("watchlist fetch failed",
			slog.String("username", username),
			slog.Int("page", page),
			slog.Int("status", status),
		)
		return nil, fmt.Errorf("watchlist page %d returned %d: %w", page, status, repository.ErrNotFound)
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(metrics.UpstreamLetterboxd, metrics.UpstreamStatusOK).Inc()
	return ParseWatchlistPage(body)
}

// Poster fetches the JPEG poster for a movie. 403 and 404 map to
// ErrNotFound; 500, 503 and by default any other non-success map to
// ErrUnavailable.
func (c *Client) Poster(ctx context.Context, slug, id string) ([]byte, error) {
	body, status, err := c.get(ctx, c.posterURL(slug, id))
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(metrics.UpstreamPosterCDN, metrics.UpstreamStatusError).Inc()
		return nil, fmt.Errorf("fetch poster %s: %w", id, err)
	}

	switch {
	case status >= 200 && status < 300:
		metrics.UpstreamRequestsTotal.WithLabelValues(metrics.UpstreamPosterCDN, metrics.UpstreamStatusOK).Inc()
		return body, nil
	case status == http.StatusForbidden || status == http.StatusNotFound:
		metrics.UpstreamRequestsTotal.WithLabelValues(metrics.UpstreamPosterCDN, metrics.UpstreamStatusError).Inc()
		slog.Error("poster fetch failed", slog.String("slug", slug), slog.Int("status", status))
		return nil, fmt.Errorf("poster %s returned %d: %w", id, status, repository.ErrNotFound)
	default:
		metrics.UpstreamRequestsTotal.WithLabelValues(metrics.UpstreamPosterCDN, metrics.UpstreamStatusError).Inc()
		slog.Error("poster fetch failed", slog.String("slug", slug), slog.Int("status", status))
		return nil, fmt.Errorf("poster %s returned %d: %w", id, status, repository.ErrUnavailable)
	}
}

// posterURL builds the CDN path: each digit of the id becomes its own path
// segment, followed by "<id>-<slug>-0-460-0-690-crop.jpg".
func (c *Client) posterURL(slug, id string) string {
	var sb strings.Builder
	sb.WriteString(c.posterBaseURL)
	for _, d := range id {
		sb.WriteByte('/')
		sb.WriteRune(d)
	}
	fmt.Fprintf(&sb, "/%s-%s-0-460-0-690-crop.jpg", id, slug)
	return sb.String()
}

func (c *Client) get(ctx context.Context, url string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, err
	}
	return body, resp.StatusCode, nil
}
