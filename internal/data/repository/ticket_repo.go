package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"planetarium-booking/internal/data/entity"
	"planetarium-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// TicketListRow denormalizes show title and owner email through the
// session and reservation to-one hops in a single joined query.
type TicketListRow struct {
	entity.Ticket
	ShowTitle  string
	ShowTime   time.Time
	OwnerEmail string
}

// TicketDetailRow is the richest read shape for a single ticket
type TicketDetailRow struct {
	entity.Ticket
	ShowTitle            string
	ShowTime             time.Time
	DomeName             string
	OwnerEmail           string
	ReservationCreatedAt time.Time
}

type TicketRepository interface {
	Create(ctx context.Context, ticket *entity.Ticket) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Ticket, error)
	FindDetailByID(ctx context.Context, id uuid.UUID) (*TicketDetailRow, error)
	FindAll(ctx context.Context, search string, limit, offset int) ([]*TicketListRow, error)
	CountAll(ctx context.Context, search string) (int64, error)
	Update(ctx context.Context, ticket *entity.Ticket) error
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsForSeat reports whether another ticket already holds the
	// given row/seat for the session
	ExistsForSeat(ctx context.Context, sessionID uuid.UUID, row, seat int, excludeID uuid.UUID) (bool, error)
	FindByReservationIDs(ctx context.Context, reservationIDs []uuid.UUID) (map[uuid.UUID][]*entity.Ticket, error)
}

type ticketRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTicketRepository(db database.PgxIface, log *zap.Logger) TicketRepository {
	return &ticketRepository{
		db:  db,
		log: log.With(zap.String("repository", "ticket")),
	}
}

func (r *ticketRepository) Create(ctx context.Context, ticket *entity.Ticket) error {
	query := `
		INSERT INTO tickets (id, "row", seat, show_session_id, reservation_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		ticket.ID,
		ticket.Row,
		ticket.Seat,
		ticket.ShowSessionID,
		ticket.ReservationID,
		ticket.CreatedAt,
		ticket.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create ticket",
			zap.Error(err),
			zap.String("session_id", ticket.ShowSessionID.String()),
			zap.Int("row", ticket.Row),
			zap.Int("seat", ticket.Seat),
		)
		return fmt.Errorf("create ticket: %w", err)
	}

	return nil
}

func (r *ticketRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Ticket, error) {
	query := `
		SELECT id, "row", seat, show_session_id, reservation_id, created_at, updated_at
		FROM tickets
		WHERE id = $1
	`

	var ticket entity.Ticket
	err := r.db.QueryRow(ctx, query, id).Scan(
		&ticket.ID,
		&ticket.Row,
		&ticket.Seat,
		&ticket.ShowSessionID,
		&ticket.ReservationID,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find ticket by ID",
			zap.Error(err),
			zap.String("ticket_id", id.String()),
		)
		return nil, fmt.Errorf("find ticket by id: %w", err)
	}

	return &ticket, nil
}

func (r *ticketRepository) FindDetailByID(ctx context.Context, id uuid.UUID) (*TicketDetailRow, error) {
	query := `
		SELECT t.id, t."row", t.seat, t.show_session_id, t.reservation_id, t.created_at, t.updated_at,
		       a.title, ss.show_time, d.name, u.email, res.created_at
		FROM tickets t
		INNER JOIN show_sessions ss ON ss.id = t.show_session_id
		INNER JOIN astronomy_shows a ON a.id = ss.astronomy_show_id
		INNER JOIN planetarium_domes d ON d.id = ss.planetarium_dome_id
		INNER JOIN reservations res ON res.id = t.reservation_id
		INNER JOIN users u ON u.id = res.user_id
		WHERE t.id = $1
	`

	var row TicketDetailRow
	err := r.db.QueryRow(ctx, query, id).Scan(
		&row.ID,
		&row.Row,
		&row.Seat,
		&row.ShowSessionID,
		&row.ReservationID,
		&row.CreatedAt,
		&row.UpdatedAt,
		&row.ShowTitle,
		&row.ShowTime,
		&row.DomeName,
		&row.OwnerEmail,
		&row.ReservationCreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find ticket detail",
			zap.Error(err),
			zap.String("ticket_id", id.String()),
		)
		return nil, fmt.Errorf("find ticket detail: %w", err)
	}

	return &row, nil
}

// FindAll matches the search term against row, seat, owner email and show
// title, case-insensitive substring across all four.
func (r *ticketRepository) FindAll(ctx context.Context, search string, limit, offset int) ([]*TicketListRow, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT t.id, t."row", t.seat, t.show_session_id, t.reservation_id, t.created_at, t.updated_at,
		       a.title, ss.show_time, u.email
		FROM tickets t
		INNER JOIN show_sessions ss ON ss.id = t.show_session_id
		INNER JOIN astronomy_shows a ON a.id = ss.astronomy_show_id
		INNER JOIN reservations res ON res.id = t.reservation_id
		INNER JOIN users u ON u.id = res.user_id
	`)

	args := []interface{}{}
	argCount := 1

	if search != "" {
		queryBuilder.WriteString(fmt.Sprintf(
			" WHERE t.\"row\"::text ILIKE $%d OR t.seat::text ILIKE $%d OR u.email ILIKE $%d OR a.title ILIKE $%d",
			argCount, argCount, argCount, argCount))
		args = append(args, "%"+search+"%")
		argCount++
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY t.created_at DESC LIMIT $%d OFFSET $%d", argCount, argCount+1))
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find tickets",
			zap.Error(err),
			zap.String("search", search),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find tickets: %w", err)
	}
	defer rows.Close()

	var tickets []*TicketListRow
	for rows.Next() {
		var row TicketListRow
		err := rows.Scan(
			&row.ID,
			&row.Row,
			&row.Seat,
			&row.ShowSessionID,
			&row.ReservationID,
			&row.CreatedAt,
			&row.UpdatedAt,
			&row.ShowTitle,
			&row.ShowTime,
			&row.OwnerEmail,
		)
		if err != nil {
			r.log.Error("Failed to scan ticket row", zap.Error(err))
			return nil, fmt.Errorf("scan ticket row: %w", err)
		}
		tickets = append(tickets, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ticket rows: %w", err)
	}

	return tickets, nil
}

func (r *ticketRepository) CountAll(ctx context.Context, search string) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM tickets t
		INNER JOIN show_sessions ss ON ss.id = t.show_session_id
		INNER JOIN astronomy_shows a ON a.id = ss.astronomy_show_id
		INNER JOIN reservations res ON res.id = t.reservation_id
		INNER JOIN users u ON u.id = res.user_id
	`
	args := []interface{}{}

	if search != "" {
		query += ` WHERE t."row"::text ILIKE $1 OR t.seat::text ILIKE $1 OR u.email ILIKE $1 OR a.title ILIKE $1`
		args = append(args, "%"+search+"%")
	}

	var total int64
	err := r.db.QueryRow(ctx, query, args...).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count tickets",
			zap.Error(err),
			zap.String("search", search),
		)
		return 0, fmt.Errorf("count tickets: %w", err)
	}

	return total, nil
}

func (r *ticketRepository) Update(ctx context.Context, ticket *entity.Ticket) error {
	query := `
		UPDATE tickets
		SET "row" = $2, seat = $3, show_session_id = $4, reservation_id = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		ticket.ID,
		ticket.Row,
		ticket.Seat,
		ticket.ShowSessionID,
		ticket.ReservationID,
		ticket.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update ticket",
			zap.Error(err),
			zap.String("ticket_id", ticket.ID.String()),
		)
		return fmt.Errorf("update ticket: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("ticket not found")
	}

	return nil
}

func (r *ticketRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM tickets WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete ticket",
			zap.Error(err),
			zap.String("ticket_id", id.String()),
		)
		return fmt.Errorf("delete ticket: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("ticket not found")
	}

	r.log.Info("Ticket deleted", zap.String("ticket_id", id.String()))
	return nil
}

func (r *ticketRepository) ExistsForSeat(ctx context.Context, sessionID uuid.UUID, row, seat int, excludeID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM tickets
			WHERE show_session_id = $1 AND "row" = $2 AND seat = $3 AND id <> $4
		)
	`

	var exists bool
	err := r.db.QueryRow(ctx, query, sessionID, row, seat, excludeID).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check seat availability",
			zap.Error(err),
			zap.String("session_id", sessionID.String()),
			zap.Int("row", row),
			zap.Int("seat", seat),
		)
		return false, fmt.Errorf("check seat availability: %w", err)
	}

	return exists, nil
}

func (r *ticketRepository) FindByReservationIDs(ctx context.Context, reservationIDs []uuid.UUID) (map[uuid.UUID][]*entity.Ticket, error) {
	ticketsByReservation := make(map[uuid.UUID][]*entity.Ticket, len(reservationIDs))
	if len(reservationIDs) == 0 {
		return ticketsByReservation, nil
	}

	query := `
		SELECT id, "row", seat, show_session_id, reservation_id, created_at, updated_at
		FROM tickets
		WHERE reservation_id = ANY($1)
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, reservationIDs)
	if err != nil {
		r.log.Error("Failed to find tickets by reservation IDs", zap.Error(err))
		return nil, fmt.Errorf("find tickets by reservation ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ticket entity.Ticket
		err := rows.Scan(
			&ticket.ID,
			&ticket.Row,
			&ticket.Seat,
			&ticket.ShowSessionID,
			&ticket.ReservationID,
			&ticket.CreatedAt,
			&ticket.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan ticket row", zap.Error(err))
			return nil, fmt.Errorf("scan ticket row: %w", err)
		}
		ticketsByReservation[ticket.ReservationID] = append(ticketsByReservation[ticket.ReservationID], &ticket)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ticket rows: %w", err)
	}

	return ticketsByReservation, nil
}
