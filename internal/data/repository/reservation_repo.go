package repository

import (
	"context"
	"fmt"
	"strings"

	"planetarium-booking/internal/data/entity"
	"planetarium-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ReservationRow joins in the owner email for display
type ReservationRow struct {
	entity.Reservation
	OwnerEmail string
}

// ReservationRepository scopes every read and write to the owning user.
// Rows belonging to other users behave as if they do not exist.
type ReservationRepository interface {
	Create(ctx context.Context, reservation *entity.Reservation) error
	FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*ReservationRow, error)
	FindAllByUser(ctx context.Context, userID uuid.UUID, search string, limit, offset int) ([]*ReservationRow, error)
	CountByUser(ctx context.Context, userID uuid.UUID, search string) (int64, error)
	DeleteForUser(ctx context.Context, id, userID uuid.UUID) error
}

type reservationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReservationRepository(db database.PgxIface, log *zap.Logger) ReservationRepository {
	return &reservationRepository{
		db:  db,
		log: log.With(zap.String("repository", "reservation")),
	}
}

func (r *reservationRepository) Create(ctx context.Context, reservation *entity.Reservation) error {
	query := `
		INSERT INTO reservations (id, user_id, created_at)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.Exec(ctx, query,
		reservation.ID,
		reservation.UserID,
		reservation.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create reservation",
			zap.Error(err),
			zap.String("user_id", reservation.UserID.String()),
		)
		return fmt.Errorf("create reservation: %w", err)
	}

	return nil
}

func (r *reservationRepository) FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*ReservationRow, error) {
	query := `
		SELECT res.id, res.user_id, res.created_at, u.email
		FROM reservations res
		INNER JOIN users u ON u.id = res.user_id
		WHERE res.id = $1 AND res.user_id = $2
	`

	var row ReservationRow
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&row.ID,
		&row.UserID,
		&row.CreatedAt,
		&row.OwnerEmail,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find reservation by ID",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find reservation by id: %w", err)
	}

	return &row, nil
}

// FindAllByUser matches the search term against the owner email,
// case-insensitive substring.
func (r *reservationRepository) FindAllByUser(ctx context.Context, userID uuid.UUID, search string, limit, offset int) ([]*ReservationRow, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT res.id, res.user_id, res.created_at, u.email
		FROM reservations res
		INNER JOIN users u ON u.id = res.user_id
		WHERE res.user_id = $1
	`)

	args := []interface{}{userID}
	argCount := 2

	if search != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND u.email ILIKE $%d", argCount))
		args = append(args, "%"+search+"%")
		argCount++
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY res.created_at DESC LIMIT $%d OFFSET $%d", argCount, argCount+1))
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find reservations",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("search", search),
		)
		return nil, fmt.Errorf("find reservations: %w", err)
	}
	defer rows.Close()

	var reservations []*ReservationRow
	for rows.Next() {
		var row ReservationRow
		if err := rows.Scan(&row.ID, &row.UserID, &row.CreatedAt, &row.OwnerEmail); err != nil {
			r.log.Error("Failed to scan reservation row", zap.Error(err))
			return nil, fmt.Errorf("scan reservation row: %w", err)
		}
		reservations = append(reservations, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reservation rows: %w", err)
	}

	return reservations, nil
}

func (r *reservationRepository) CountByUser(ctx context.Context, userID uuid.UUID, search string) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM reservations res
		INNER JOIN users u ON u.id = res.user_id
		WHERE res.user_id = $1
	`
	args := []interface{}{userID}

	if search != "" {
		query += " AND u.email ILIKE $2"
		args = append(args, "%"+search+"%")
	}

	var total int64
	err := r.db.QueryRow(ctx, query, args...).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count reservations",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count reservations: %w", err)
	}

	return total, nil
}

func (r *reservationRepository) DeleteForUser(ctx context.Context, id, userID uuid.UUID) error {
	result, err := r.db.Exec(ctx,
		`DELETE FROM reservations WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		r.log.Error("Failed to delete reservation",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
		)
		return fmt.Errorf("delete reservation: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reservation not found")
	}

	r.log.Info("Reservation deleted", zap.String("reservation_id", id.String()))
	return nil
}
