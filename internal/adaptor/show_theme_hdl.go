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

type ShowThemeHandler struct {
	service usecase.ShowThemeService
	log     *zap.Logger
}

func NewShowThemeHandler(service usecase.ShowThemeService, log *zap.Logger) *ShowThemeHandler {
	return &ShowThemeHandler{
		service: service,
		log:     log.With(zap.String("handler", "show_theme")),
	}
}

// GetThemes handles GET /api/show-themes
func (h *ShowThemeHandler) GetThemes(w http.ResponseWriter, r *http.Request) {
	req := parsePagination(r)

	themes, err := h.service.GetThemes(r.Context(), req)
	if err != nil {
		handleServiceError(h.log, w, err, "get show themes")
		return
	}

	utils.ResponseSuccess(w, "Show themes retrieved successfully", themes)
}

// GetThemeByID handles GET /api/show-themes/{id}
func (h *ShowThemeHandler) GetThemeByID(w http.ResponseWriter, r *http.Request) {
	themeID := chi.URLParam(r, "id")
	if themeID == "" {
		utils.ResponseBadRequest(w, "Show theme ID is required", nil)
		return
	}

	theme, err := h.service.GetThemeByID(r.Context(), themeID)
	if err != nil {
		handleServiceError(h.log, w, err, "get show theme by ID")
		return
	}

	utils.ResponseSuccess(w, "Show theme retrieved successfully", theme)
}

// CreateTheme handles POST /api/show-themes (admin only)
func (h *ShowThemeHandler) CreateTheme(w http.ResponseWriter, r *http.Request) {
	var req request.ShowThemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	theme, err := h.service.CreateTheme(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create show theme")
		return
	}

	utils.ResponseCreated(w, "Show theme created successfully", theme)
}

// UpdateTheme handles PUT /api/show-themes/{id} (admin only)
func (h *ShowThemeHandler) UpdateTheme(w http.ResponseWriter, r *http.Request) {
	themeID := chi.URLParam(r, "id")
	if themeID == "" {
		utils.ResponseBadRequest(w, "Show theme ID is required", nil)
		return
	}

	var req request.ShowThemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	theme, err := h.service.UpdateTheme(r.Context(), themeID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update show theme")
		return
	}

	utils.ResponseSuccess(w, "Show theme updated successfully", theme)
}

// DeleteTheme handles DELETE /api/show-themes/{id} (admin only)
func (h *ShowThemeHandler) DeleteTheme(w http.ResponseWriter, r *http.Request) {
	themeID := chi.URLParam(r, "id")
	if themeID == "" {
		utils.ResponseBadRequest(w, "Show theme ID is required", nil)
		return
	}

	if err := h.service.DeleteTheme(r.Context(), themeID); err != nil {
		handleServiceError(h.log, w, err, "delete show theme")
		return
	}

	utils.ResponseNoContent(w)
}
