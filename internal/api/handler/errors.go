package handler

import (
	"errors"
	"net/http"

	"github.com/hszk-dev/reelwatch/internal/domain/repository"
)

// handleServiceError maps the core error taxonomy onto transport status
// semantics: resource absent, dependency degraded, or throttled. No retries
// happen here; callers decide whether to retry on 424 and back off on 429.
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		Error(w, http.StatusNotFound, "not_found", "Resource not found")
	case errors.Is(err, repository.ErrRateLimited):
		Error(w, http.StatusTooManyRequests, "rate_limited", "Upstream API rate limit exceeded")
	case errors.Is(err, repository.ErrUnavailable):
		Error(w, http.StatusFailedDependency, "upstream_unavailable", "Failed to reach upstream service")
	default:
		Error(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
	}
}
