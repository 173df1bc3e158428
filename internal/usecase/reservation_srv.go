package usecase

import (
	"context"
	"fmt"
	"time"

	"planetarium-booking/internal/data/entity"
	"planetarium-booking/internal/data/repository"
	"planetarium-booking/internal/dto/request"
	"planetarium-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReservationService takes the authenticated principal as an explicit
// argument on every operation. The owner is never read from a payload.
type ReservationService interface {
	GetReservations(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest, search string) (*response.PaginatedResponse[response.ReservationResponse], error)
	GetReservationByID(ctx context.Context, userID uuid.UUID, reservationID string) (*response.ReservationResponse, error)
	CreateReservation(ctx context.Context, userID uuid.UUID) (*response.ReservationResponse, error)
	UpdateReservation(ctx context.Context, userID uuid.UUID, reservationID string) (*response.ReservationResponse, error)
	DeleteReservation(ctx context.Context, userID uuid.UUID, reservationID string) error
}

type reservationService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReservationService(repo *repository.Repository, log *zap.Logger) ReservationService {
	return &reservationService{
		repo: repo,
		log:  log.With(zap.String("service", "reservation")),
	}
}

func (s *reservationService) GetReservations(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest, search string) (*response.PaginatedResponse[response.ReservationResponse], error) {
	reservations, err := s.repo.Reservation.FindAllByUser(ctx, userID, search, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("get reservations: %w", err)
	}

	total, err := s.repo.Reservation.CountByUser(ctx, userID, search)
	if err != nil {
		return nil, fmt.Errorf("count reservations: %w", err)
	}

	// Resolve tickets for the whole page in one query
	reservationIDs := make([]uuid.UUID, len(reservations))
	for i, row := range reservations {
		reservationIDs[i] = row.ID
	}

	ticketsByReservation, err := s.repo.Ticket.FindByReservationIDs(ctx, reservationIDs)
	if err != nil {
		return nil, fmt.Errorf("get tickets for reservations: %w", err)
	}

	reservationResponses := make([]response.ReservationResponse, len(reservations))
	for i, row := range reservations {
		reservationResponses[i] = response.ReservationToResponse(row, ticketsByReservation[row.ID])
	}

	return response.NewPaginatedResponse(reservationResponses, req.Page, req.PerPage, total), nil
}

func (s *reservationService) GetReservationByID(ctx context.Context, userID uuid.UUID, reservationID string) (*response.ReservationResponse, error) {
	row, err := s.findOwned(ctx, userID, reservationID)
	if err != nil {
		return nil, err
	}

	ticketsByReservation, err := s.repo.Ticket.FindByReservationIDs(ctx, []uuid.UUID{row.ID})
	if err != nil {
		return nil, fmt.Errorf("get tickets for reservation: %w", err)
	}

	reservationResp := response.ReservationToResponse(row, ticketsByReservation[row.ID])
	return &reservationResp, nil
}

// CreateReservation binds the new reservation to the caller. Any owner
// field in the request body has already been discarded by the handler.
func (s *reservationService) CreateReservation(ctx context.Context, userID uuid.UUID) (*response.ReservationResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	reservation := &entity.Reservation{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID: userID,
	}

	if err := s.repo.Reservation.Create(ctx, reservation); err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.log.Info("Reservation created",
		zap.String("reservation_id", reservation.ID.String()),
		zap.String("user_id", userID.String()),
	)

	reservationResp := response.ReservationToResponse(&repository.ReservationRow{
		Reservation: *reservation,
		OwnerEmail:  user.Email,
	}, nil)
	return &reservationResp, nil
}

// UpdateReservation has no writable fields: the owner is fixed and
// created_at is immutable. A full update verifies ownership and returns
// the current state.
func (s *reservationService) UpdateReservation(ctx context.Context, userID uuid.UUID, reservationID string) (*response.ReservationResponse, error) {
	return s.GetReservationByID(ctx, userID, reservationID)
}

func (s *reservationService) DeleteReservation(ctx context.Context, userID uuid.UUID, reservationID string) error {
	row, err := s.findOwned(ctx, userID, reservationID)
	if err != nil {
		return err
	}

	if err := s.repo.Reservation.DeleteForUser(ctx, row.ID, userID); err != nil {
		return fmt.Errorf("delete reservation: %w", err)
	}

	return nil
}

// findOwned resolves a reservation only when the caller owns it; anyone
// else sees not-found.
func (s *reservationService) findOwned(ctx context.Context, userID uuid.UUID, reservationID string) (*repository.ReservationRow, error) {
	id, err := uuid.Parse(reservationID)
	if err != nil {
		return nil, fmt.Errorf("invalid reservation id: %w", err)
	}

	row, err := s.repo.Reservation.FindByIDForUser(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("find reservation: %w", err)
	}
	if row == nil {
		return nil, fmt.Errorf("reservation not found")
	}

	return row, nil
}
