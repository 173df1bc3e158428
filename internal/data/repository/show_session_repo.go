package repository

import (
	"context"
	"fmt"

	"planetarium-booking/internal/data/entity"
	"planetarium-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ShowSessionListRow carries display fields joined in for listing,
// so callers render a page without per-row lookups.
type ShowSessionListRow struct {
	entity.ShowSession
	ShowTitle string
	DomeName  string
}

// ShowSessionDetailRow resolves both to-one relationships in one query
type ShowSessionDetailRow struct {
	entity.ShowSession
	Show entity.AstronomyShow
	Dome entity.PlanetariumDome
}

type ShowSessionRepository interface {
	Create(ctx context.Context, session *entity.ShowSession) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ShowSession, error)
	FindDetailByID(ctx context.Context, id uuid.UUID) (*ShowSessionDetailRow, error)
	FindAll(ctx context.Context, limit, offset int) ([]*ShowSessionListRow, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, session *entity.ShowSession) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type showSessionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewShowSessionRepository(db database.PgxIface, log *zap.Logger) ShowSessionRepository {
	return &showSessionRepository{
		db:  db,
		log: log.With(zap.String("repository", "show_session")),
	}
}

func (r *showSessionRepository) Create(ctx context.Context, session *entity.ShowSession) error {
	query := `
		INSERT INTO show_sessions (id, astronomy_show_id, planetarium_dome_id, show_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		session.ID,
		session.AstronomyShowID,
		session.PlanetariumDomeID,
		session.ShowTime,
		session.CreatedAt,
		session.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create show session",
			zap.Error(err),
			zap.String("show_id", session.AstronomyShowID.String()),
			zap.String("dome_id", session.PlanetariumDomeID.String()),
		)
		return fmt.Errorf("create show session: %w", err)
	}

	return nil
}

func (r *showSessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ShowSession, error) {
	query := `
		SELECT id, astronomy_show_id, planetarium_dome_id, show_time, created_at, updated_at
		FROM show_sessions
		WHERE id = $1
	`

	var session entity.ShowSession
	err := r.db.QueryRow(ctx, query, id).Scan(
		&session.ID,
		&session.AstronomyShowID,
		&session.PlanetariumDomeID,
		&session.ShowTime,
		&session.CreatedAt,
		&session.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find show session by ID",
			zap.Error(err),
			zap.String("session_id", id.String()),
		)
		return nil, fmt.Errorf("find show session by id: %w", err)
	}

	return &session, nil
}

func (r *showSessionRepository) FindDetailByID(ctx context.Context, id uuid.UUID) (*ShowSessionDetailRow, error) {
	query := `
		SELECT ss.id, ss.astronomy_show_id, ss.planetarium_dome_id, ss.show_time, ss.created_at, ss.updated_at,
		       a.id, a.title, a.description, a.created_at, a.updated_at,
		       d.id, d.name, d."rows", d.seats_in_row, d.created_at, d.updated_at
		FROM show_sessions ss
		INNER JOIN astronomy_shows a ON a.id = ss.astronomy_show_id
		INNER JOIN planetarium_domes d ON d.id = ss.planetarium_dome_id
		WHERE ss.id = $1
	`

	var row ShowSessionDetailRow
	err := r.db.QueryRow(ctx, query, id).Scan(
		&row.ID,
		&row.AstronomyShowID,
		&row.PlanetariumDomeID,
		&row.ShowTime,
		&row.CreatedAt,
		&row.UpdatedAt,
		&row.Show.ID,
		&row.Show.Title,
		&row.Show.Description,
		&row.Show.CreatedAt,
		&row.Show.UpdatedAt,
		&row.Dome.ID,
		&row.Dome.Name,
		&row.Dome.Rows,
		&row.Dome.SeatsInRow,
		&row.Dome.CreatedAt,
		&row.Dome.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find show session detail",
			zap.Error(err),
			zap.String("session_id", id.String()),
		)
		return nil, fmt.Errorf("find show session detail: %w", err)
	}

	return &row, nil
}

func (r *showSessionRepository) FindAll(ctx context.Context, limit, offset int) ([]*ShowSessionListRow, error) {
	query := `
		SELECT ss.id, ss.astronomy_show_id, ss.planetarium_dome_id, ss.show_time, ss.created_at, ss.updated_at,
		       a.title, d.name
		FROM show_sessions ss
		INNER JOIN astronomy_shows a ON a.id = ss.astronomy_show_id
		INNER JOIN planetarium_domes d ON d.id = ss.planetarium_dome_id
		ORDER BY ss.show_time
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find show sessions",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find show sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*ShowSessionListRow
	for rows.Next() {
		var row ShowSessionListRow
		err := rows.Scan(
			&row.ID,
			&row.AstronomyShowID,
			&row.PlanetariumDomeID,
			&row.ShowTime,
			&row.CreatedAt,
			&row.UpdatedAt,
			&row.ShowTitle,
			&row.DomeName,
		)
		if err != nil {
			r.log.Error("Failed to scan show session row", zap.Error(err))
			return nil, fmt.Errorf("scan show session row: %w", err)
		}
		sessions = append(sessions, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate show session rows: %w", err)
	}

	return sessions, nil
}

func (r *showSessionRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM show_sessions`).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count show sessions", zap.Error(err))
		return 0, fmt.Errorf("count show sessions: %w", err)
	}

	return total, nil
}

func (r *showSessionRepository) Update(ctx context.Context, session *entity.ShowSession) error {
	query := `
		UPDATE show_sessions
		SET astronomy_show_id = $2, planetarium_dome_id = $3, show_time = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		session.ID,
		session.AstronomyShowID,
		session.PlanetariumDomeID,
		session.ShowTime,
		session.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update show session",
			zap.Error(err),
			zap.String("session_id", session.ID.String()),
		)
		return fmt.Errorf("update show session: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("show session not found")
	}

	return nil
}

func (r *showSessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM show_sessions WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete show session",
			zap.Error(err),
			zap.String("session_id", id.String()),
		)
		return fmt.Errorf("delete show session: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("show session not found")
	}

	r.log.Info("Show session deleted", zap.String("session_id", id.String()))
	return nil
}
