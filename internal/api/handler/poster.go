package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/hszk-dev/reelwatch/internal/usecase"
)

// PosterHandler handles poster HTTP requests.
type PosterHandler struct {
	svc usecase.PosterService
}

// NewPosterHandler creates a new PosterHandler.
func NewPosterHandler(svc usecase.PosterService) *PosterHandler {
	return &PosterHandler{svc: svc}
}

// Get handles GET /v1/posters/{slugID} where slugID is "<slug>-<id>".
func (h *PosterHandler) Get(w http.ResponseWriter, r *http.Request) {
	slug, id, ok := splitSlugID(chi.URLParam(r, "slugID"))
	if !ok {
		Error(w, http.StatusUnprocessableEntity, "invalid_movie", "Expected <slug>-<id>")
		return
	}

	data, err := h.svc.GetPoster(r.Context(), slug, id)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if data == nil {
		Error(w, http.StatusNotFound, "poster_not_found", "Poster not found")
		return
	}

	Binary(w, http.StatusOK, "image/jpeg", data)
}

// splitSlugID splits on the last hyphen: slugs may contain hyphens, the
// trailing id does not.
func splitSlugID(s string) (slug, id string, ok bool) {
	i := strings.LastIndex(s, "-")
	if i <= 0 || i == len(s)-1 {
		return "", "", false
	}
	return s[:i], s[i+1:], true
}
