package handler

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/hszk-dev/reelwatch/internal/domain/model"
	"github.com/hszk-dev/reelwatch/internal/usecase"
)

// usernamePattern matches valid content-site usernames.
var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{2,15}$`)

type MovieResponse struct {
	ID               string                  `json:"id"`
	Name             string                  `json:"name"`
	Slug             string                  `json:"slug"`
	URL              string                  `json:"url"`
	StreamingOptions []model.StreamingOption `json:"streaming_options"`
}

// WatchlistHandler handles watchlist HTTP requests.
type WatchlistHandler struct {
	svc usecase.WatchlistService
}

// NewWatchlistHandler creates a new WatchlistHandler.
func NewWatchlistHandler(svc usecase.WatchlistService) *WatchlistHandler {
	return &WatchlistHandler{svc: svc}
}

// Get handles GET /v1/watchlist?username=
func (h *WatchlistHandler) Get(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	if !usernamePattern.MatchString(username) {
		Error(w, http.StatusUnprocessableEntity, "invalid_username",
			"Username must be 2-15 characters of letters, digits, hyphen or underscore")
		return
	}

	movies, err := h.svc.GetWatchlist(r.Context(), strings.ToLower(username))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, toMovieResponses(movies))
}

func toMovieResponses(movies []model.MovieItem) []MovieResponse {
	out := make([]MovieResponse, 0, len(movies))
	for _, m := range movies {
		out = append(out, MovieResponse{
			ID:               m.ID,
			Name:             m.Name,
			Slug:             m.Slug,
			URL:              m.DetailURL(),
			StreamingOptions: m.StreamingOptions,
		})
	}
	return out
}
