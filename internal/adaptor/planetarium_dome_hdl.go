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

type PlanetariumDomeHandler struct {
	service usecase.PlanetariumDomeService
	log     *zap.Logger
}

func NewPlanetariumDomeHandler(service usecase.PlanetariumDomeService, log *zap.Logger) *PlanetariumDomeHandler {
	return &PlanetariumDomeHandler{
		service: service,
		log:     log.With(zap.String("handler", "planetarium_dome")),
	}
}

// GetDomes handles GET /api/planetarium-domes
func (h *PlanetariumDomeHandler) GetDomes(w http.ResponseWriter, r *http.Request) {
	req := parsePagination(r)

	domes, err := h.service.GetDomes(r.Context(), req)
	if err != nil {
		handleServiceError(h.log, w, err, "get planetarium domes")
		return
	}

	utils.ResponseSuccess(w, "Planetarium domes retrieved successfully", domes)
}

// GetDomeByID handles GET /api/planetarium-domes/{id}
func (h *PlanetariumDomeHandler) GetDomeByID(w http.ResponseWriter, r *http.Request) {
	domeID := chi.URLParam(r, "id")
	if domeID == "" {
		utils.ResponseBadRequest(w, "Planetarium dome ID is required", nil)
		return
	}

	dome, err := h.service.GetDomeByID(r.Context(), domeID)
	if err != nil {
		handleServiceError(h.log, w, err, "get planetarium dome by ID")
		return
	}

	utils.ResponseSuccess(w, "Planetarium dome retrieved successfully", dome)
}

// CreateDome handles POST /api/planetarium-domes (admin only)
func (h *PlanetariumDomeHandler) CreateDome(w http.ResponseWriter, r *http.Request) {
	var req request.PlanetariumDomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	dome, err := h.service.CreateDome(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create planetarium dome")
		return
	}

	utils.ResponseCreated(w, "Planetarium dome created successfully", dome)
}

// UpdateDome handles PUT /api/planetarium-domes/{id} (admin only)
func (h *PlanetariumDomeHandler) UpdateDome(w http.ResponseWriter, r *http.Request) {
	domeID := chi.URLParam(r, "id")
	if domeID == "" {
		utils.ResponseBadRequest(w, "Planetarium dome ID is required", nil)
		return
	}

	var req request.PlanetariumDomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	dome, err := h.service.UpdateDome(r.Context(), domeID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update planetarium dome")
		return
	}

	utils.ResponseSuccess(w, "Planetarium dome updated successfully", dome)
}

// DeleteDome handles DELETE /api/planetarium-domes/{id} (admin only)
func (h *PlanetariumDomeHandler) DeleteDome(w http.ResponseWriter, r *http.Request) {
	domeID := chi.URLParam(r, "id")
	if domeID == "" {
		utils.ResponseBadRequest(w, "Planetarium dome ID is required", nil)
		return
	}

	if err := h.service.DeleteDome(r.Context(), domeID); err != nil {
		handleServiceError(h.log, w, err, "delete planetarium dome")
		return
	}

	utils.ResponseNoContent(w)
}
