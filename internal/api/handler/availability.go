package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/hszk-dev/reelwatch/internal/domain/model"
	"github.com/hszk-dev/reelwatch/internal/usecase"
)

// AvailabilityHandler handles streaming availability HTTP requests.
type AvailabilityHandler struct {
	svc            usecase.AvailabilityService
	defaultCountry model.CountryCode
}

// NewAvailabilityHandler creates a new AvailabilityHandler.
func NewAvailabilityHandler(svc usecase.AvailabilityService, defaultCountry model.CountryCode) *AvailabilityHandler {
	return &AvailabilityHandler{svc: svc, defaultCountry: defaultCountry}
}

// Get handles GET /v1/availability/{movieID}?country=
func (h *AvailabilityHandler) Get(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "movieID")
	if movieID == "" {
		Error(w, http.StatusUnprocessableEntity, "invalid_movie_id", "Movie ID is required")
		return
	}

	country := model.CountryCode(strings.ToLower(r.URL.Query().Get("country")))
	if country == "" {
		country = h.defaultCountry
	}

	options, err := h.svc.GetAvailability(r.Context(), movieID, country)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, options)
}
