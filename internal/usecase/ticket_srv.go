package usecase

import (
	"context"
	"fmt"
	"time"

	"planetarium-booking/internal/data/entity"
	"planetarium-booking/internal/data/repository"
	"planetarium-booking/internal/dto/request"
	"planetarium-booking/internal/dto/response"
	"planetarium-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TicketService interface {
	GetTickets(ctx context.Context, req *request.PaginatedRequest, search string) (*response.PaginatedResponse[response.TicketListResponse], error)
	GetTicketByID(ctx context.Context, ticketID string) (*response.TicketDetailResponse, error)
	CreateTicket(ctx context.Context, userID uuid.UUID, req *request.TicketRequest) (*response.TicketResponse, error)
	UpdateTicket(ctx context.Context, userID uuid.UUID, ticketID string, req *request.TicketRequest) (*response.TicketResponse, error)
	DeleteTicket(ctx context.Context, ticketID string) error
}

type ticketService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewTicketService(repo *repository.Repository, log *zap.Logger) TicketService {
	return &ticketService{
		repo: repo,
		log:  log.With(zap.String("service", "ticket")),
	}
}

func (s *ticketService) GetTickets(ctx context.Context, req *request.PaginatedRequest, search string) (*response.PaginatedResponse[response.TicketListResponse], error) {
	tickets, err := s.repo.Ticket.FindAll(ctx, search, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("get tickets: %w", err)
	}

	total, err := s.repo.Ticket.CountAll(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("count tickets: %w", err)
	}

	ticketResponses := make([]response.TicketListResponse, len(tickets))
	for i, row := range tickets {
		ticketResponses[i] = response.TicketToListResponse(row)
	}

	return response.NewPaginatedResponse(ticketResponses, req.Page, req.PerPage, total), nil
}

func (s *ticketService) GetTicketByID(ctx context.Context, ticketID string) (*response.TicketDetailResponse, error) {
	id, err := uuid.Parse(ticketID)
	if err != nil {
		return nil, fmt.Errorf("invalid ticket id: %w", err)
	}

	row, err := s.repo.Ticket.FindDetailByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get ticket by id: %w", err)
	}
	if row == nil {
		return nil, fmt.Errorf("ticket not found")
	}

	detail := response.TicketToDetailResponse(row)
	return &detail, nil
}

func (s *ticketService) CreateTicket(ctx context.Context, userID uuid.UUID, req *request.TicketRequest) (*response.TicketResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create ticket validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	sessionID, reservationID, err := s.resolveReferences(ctx, userID, req, uuid.Nil)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	ticket := &entity.Ticket{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Row:           req.Row,
		Seat:          req.Seat,
		ShowSessionID: sessionID,
		ReservationID: reservationID,
	}

	if err := s.repo.Ticket.Create(ctx, ticket); err != nil {
		return nil, fmt.Errorf("create ticket: %w", err)
	}

	s.log.Info("Ticket created",
		zap.String("ticket_id", ticket.ID.String()),
		zap.String("session_id", sessionID.String()),
		zap.Int("row", ticket.Row),
		zap.Int("seat", ticket.Seat),
	)

	ticketResp := response.TicketToResponse(ticket)
	return &ticketResp, nil
}

func (s *ticketService) UpdateTicket(ctx context.Context, userID uuid.UUID, ticketID string, req *request.TicketRequest) (*response.TicketResponse, error) {
	id, err := uuid.Parse(ticketID)
	if err != nil {
		return nil, fmt.Errorf("invalid ticket id: %w", err)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	ticket, err := s.repo.Ticket.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find ticket: %w", err)
	}
	if ticket == nil {
		return nil, fmt.Errorf("ticket not found")
	}

	// Exclude the ticket itself so keeping the same seat is not a conflict
	sessionID, reservationID, err := s.resolveReferences(ctx, userID, req, ticket.ID)
	if err != nil {
		return nil, err
	}

	ticket.Row = req.Row
	ticket.Seat = req.Seat
	ticket.ShowSessionID = sessionID
	ticket.ReservationID = reservationID
	ticket.UpdatedAt = time.Now()

	if err := s.repo.Ticket.Update(ctx, ticket); err != nil {
		return nil, fmt.Errorf("update ticket: %w", err)
	}

	s.log.Info("Ticket updated", zap.String("ticket_id", ticketID))

	ticketResp := response.TicketToResponse(ticket)
	return &ticketResp, nil
}

func (s *ticketService) DeleteTicket(ctx context.Context, ticketID string) error {
	id, err := uuid.Parse(ticketID)
	if err != nil {
		return fmt.Errorf("invalid ticket id: %w", err)
	}

	if err := s.repo.Ticket.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete ticket: %w", err)
	}

	return nil
}

// resolveReferences verifies the session exists, the seat fits the dome
// the session plays in, the reservation belongs to the caller, and the
// seat is not already held for the session.
func (s *ticketService) resolveReferences(ctx context.Context, userID uuid.UUID, req *request.TicketRequest, excludeID uuid.UUID) (uuid.UUID, uuid.UUID, error) {
	sessionID, err := uuid.Parse(req.ShowSession)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("invalid show_session id: %w", err)
	}

	reservationID, err := uuid.Parse(req.Reservation)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("invalid reservation id: %w", err)
	}

	session, err := s.repo.ShowSession.FindByID(ctx, sessionID)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("check show session: %w", err)
	}
	if session == nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("invalid show_session: referenced session does not exist")
	}

	dome, err := s.repo.PlanetariumDome.FindByID(ctx, session.PlanetariumDomeID)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("check planetarium dome: %w", err)
	}
	if dome == nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("invalid show_session: session dome does not exist")
	}

	if req.Row > dome.Rows {
		return uuid.Nil, uuid.Nil, fmt.Errorf("invalid row: must be between 1 and %d", dome.Rows)
	}
	if req.Seat > dome.SeatsInRow {
		return uuid.Nil, uuid.Nil, fmt.Errorf("invalid seat: must be between 1 and %d", dome.SeatsInRow)
	}

	// Reservation resolution is owner-scoped: someone else's reservation
	// looks the same as a missing one
	reservation, err := s.repo.Reservation.FindByIDForUser(ctx, reservationID, userID)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("check reservation: %w", err)
	}
	if reservation == nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("invalid reservation: referenced reservation does not exist")
	}

	taken, err := s.repo.Ticket.ExistsForSeat(ctx, sessionID, req.Row, req.Seat, excludeID)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("check seat availability: %w", err)
	}
	if taken {
		return uuid.Nil, uuid.Nil, fmt.Errorf("seat %d in row %d is already taken for this session", req.Seat, req.Row)
	}

	return sessionID, reservationID, nil
}
