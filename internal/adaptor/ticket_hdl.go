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

type TicketHandler struct {
	service usecase.TicketService
	log     *zap.Logger
}

func NewTicketHandler(service usecase.TicketService, log *zap.Logger) *TicketHandler {
	return &TicketHandler{
		service: service,
		log:     log.With(zap.String("handler", "ticket")),
	}
}

// GetTickets handles GET /api/tickets with optional ?search over row,
// seat, owner email and show title. Responses pass through the ticket
// view cache.
func (h *TicketHandler) GetTickets(w http.ResponseWriter, r *http.Request) {
	req := parsePagination(r)
	search := r.URL.Query().Get("search")

	tickets, err := h.service.GetTickets(r.Context(), req, search)
	if err != nil {
		handleServiceError(h.log, w, err, "get tickets")
		return
	}

	utils.ResponseSuccess(w, "Tickets retrieved successfully", tickets)
}

// GetTicketByID handles GET /api/tickets/{id}
func (h *TicketHandler) GetTicketByID(w http.ResponseWriter, r *http.Request) {
	ticketID := chi.URLParam(r, "id")
	if ticketID == "" {
		utils.ResponseBadRequest(w, "Ticket ID is required", nil)
		return
	}

	ticket, err := h.service.GetTicketByID(r.Context(), ticketID)
	if err != nil {
		handleServiceError(h.log, w, err, "get ticket by ID")
		return
	}

	utils.ResponseSuccess(w, "Ticket retrieved successfully", ticket)
}

// CreateTicket handles POST /api/tickets. The referenced reservation
// must belong to the caller.
func (h *TicketHandler) CreateTicket(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.TicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	ticket, err := h.service.CreateTicket(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create ticket")
		return
	}

	utils.ResponseCreated(w, "Ticket created successfully", ticket)
}

// UpdateTicket handles PUT /api/tickets/{id}
func (h *TicketHandler) UpdateTicket(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	ticketID := chi.URLParam(r, "id")
	if ticketID == "" {
		utils.ResponseBadRequest(w, "Ticket ID is required", nil)
		return
	}

	var req request.TicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	ticket, err := h.service.UpdateTicket(r.Context(), userID, ticketID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update ticket")
		return
	}

	utils.ResponseSuccess(w, "Ticket updated successfully", ticket)
}

// DeleteTicket handles DELETE /api/tickets/{id}
func (h *TicketHandler) DeleteTicket(w http.ResponseWriter, r *http.Request) {
	ticketID := chi.URLParam(r, "id")
	if ticketID == "" {
		utils.ResponseBadRequest(w, "Ticket ID is required", nil)
		return
	}

	if err := h.service.DeleteTicket(r.Context(), ticketID); err != nil {
		handleServiceError(h.log, w, err, "delete ticket")
		return
	}

	utils.ResponseNoContent(w)
}
