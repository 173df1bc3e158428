package adaptor

import (
	"encoding/json"
	"net/http"

	"planetarium-booking/internal/dto/request"
	"planetarium-booking/internal/usecase"
	"planetarium-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AstronomyShowHandler struct {
	service usecase.AstronomyShowService
	log     *zap.Logger
}

func NewAstronomyShowHandler(service usecase.AstronomyShowService, log *zap.Logger) *AstronomyShowHandler {
	return &AstronomyShowHandler{
		service: service,
		log:     log.With(zap.String("handler", "astronomy_show")),
	}
}

// GetShows handles GET /api/astronomy-shows with optional ?search over
// title and description
func (h *AstronomyShowHandler) GetShows(w http.ResponseWriter, r *http.Request) {
	req := parsePagination(r)
	search := r.URL.Query().Get("search")

	shows, err := h.service.GetShows(r.Context(), req, search)
	if err != nil {
		handleServiceError(h.log, w, err, "get astronomy shows")
		return
	}

	utils.ResponseSuccess(w, "Astronomy shows retrieved successfully", shows)
}

// GetShowByID handles GET /api/astronomy-shows/{id}
func (h *AstronomyShowHandler) GetShowByID(w http.ResponseWriter, r *http.Request) {
	showID := chi.URLParam(r, "id")
	if showID == "" {
		utils.ResponseBadRequest(w, "Astronomy show ID is required", nil)
		return
	}

	show, err := h.service.GetShowByID(r.Context(), showID)
	if err != nil {
		handleServiceError(h.log, w, err, "get astronomy show by ID")
		return
	}

	utils.ResponseSuccess(w, "Astronomy show retrieved successfully", show)
}

// CreateShow handles POST /api/astronomy-shows (admin only)
func (h *AstronomyShowHandler) CreateShow(w http.ResponseWriter, r *http.Request) {
	var req request.AstronomyShowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	show, err := h.service.CreateShow(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create astronomy show")
		return
	}

	utils.ResponseCreated(w, "Astronomy show created successfully", show)
}

// UpdateShow handles PUT /api/astronomy-shows/{id} (admin only)
func (h *AstronomyShowHandler) UpdateShow(w http.ResponseWriter, r *http.Request) {
	showID := chi.URLParam(r, "id")
	if showID == "" {
		utils.ResponseBadRequest(w, "Astronomy show ID is required", nil)
		return
	}

	var req request.AstronomyShowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	show, err := h.service.UpdateShow(r.Context(), showID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update astronomy show")
		return
	}

	utils.ResponseSuccess(w, "Astronomy show updated successfully", show)
}

// DeleteShow handles DELETE /api/astronomy-shows/{id} (admin only)
func (h *AstronomyShowHandler) DeleteShow(w http.ResponseWriter, r *http.Request) {
	showID := chi.URLParam(r, "id")
	if showID == "" {
		utils.ResponseBadRequest(w, "Astronomy show ID is required", nil)
		return
	}

	if err := h.service.DeleteShow(r.Context(), showID); err != nil {
		handleServiceError(h.log, w, err, "delete astronomy show")
		return
	}

	utils.ResponseNoContent(w)
}
