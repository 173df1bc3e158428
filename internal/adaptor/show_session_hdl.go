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

type ShowSessionHandler struct {
	service usecase.ShowSessionService
	log     *zap.Logger
}

func NewShowSessionHandler(service usecase.ShowSessionService, log *zap.Logger) *ShowSessionHandler {
	return &ShowSessionHandler{
		service: service,
		log:     log.With(zap.String("handler", "show_session")),
	}
}

// GetSessions handles GET /api/show-sessions
func (h *ShowSessionHandler) GetSessions(w http.ResponseWriter, r *http.Request) {
	req := parsePagination(r)

	sessions, err := h.service.GetSessions(r.Context(), req)
	if err != nil {
		handleServiceError(h.log, w, err, "get show sessions")
		return
	}

	utils.ResponseSuccess(w, "Show sessions retrieved successfully", sessions)
}

// GetSessionByID handles GET /api/show-sessions/{id}
func (h *ShowSessionHandler) GetSessionByID(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	if sessionID == "" {
		utils.ResponseBadRequest(w, "Show session ID is required", nil)
		return
	}

	session, err := h.service.GetSessionByID(r.Context(), sessionID)
	if err != nil {
		handleServiceError(h.log, w, err, "get show session by ID")
		return
	}

	utils.ResponseSuccess(w, "Show session retrieved successfully", session)
}

// CreateSession handles POST /api/show-sessions (admin only)
func (h *ShowSessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req request.ShowSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	session, err := h.service.CreateSession(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create show session")
		return
	}

	utils.ResponseCreated(w, "Show session created successfully", session)
}

// UpdateSession handles PUT /api/show-sessions/{id} (admin only)
func (h *ShowSessionHandler) UpdateSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	if sessionID == "" {
		utils.ResponseBadRequest(w, "Show session ID is required", nil)
		return
	}

	var req request.ShowSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	session, err := h.service.UpdateSession(r.Context(), sessionID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update show session")
		return
	}

	utils.ResponseSuccess(w, "Show session updated successfully", session)
}

// DeleteSession handles DELETE /api/show-sessions/{id} (admin only)
func (h *ShowSessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	if sessionID == "" {
		utils.ResponseBadRequest(w, "Show session ID is required", nil)
		return
	}

	if err := h.service.DeleteSession(r.Context(), sessionID); err != nil {
		handleServiceError(h.log, w, err, "delete show session")
		return
	}

	utils.ResponseNoContent(w)
}
