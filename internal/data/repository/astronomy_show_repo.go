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

type AstronomyShowRepository interface {
	Create(ctx context.Context, show *entity.AstronomyShow) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AstronomyShow, error)
	FindAll(ctx context.Context, search string, limit, offset int) ([]*entity.AstronomyShow, error)
	CountAll(ctx context.Context, search string) (int64, error)
	Update(ctx context.Context, show *entity.AstronomyShow) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type astronomyShowRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAstronomyShowRepository(db database.PgxIface, log *zap.Logger) AstronomyShowRepository {
	return &astronomyShowRepository{
		db:  db,
		log: log.With(zap.String("repository", "astronomy_show")),
	}
}

func (r *astronomyShowRepository) Create(ctx context.Context, show *entity.AstronomyShow) error {
	query := `
		INSERT INTO astronomy_shows (id, title, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		show.ID,
		show.Title,
		show.Description,
		show.CreatedAt,
		show.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create astronomy show",
			zap.Error(err),
			zap.String("title", show.Title),
		)
		return fmt.Errorf("create astronomy show: %w", err)
	}

	return nil
}

func (r *astronomyShowRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AstronomyShow, error) {
	query := `
		SELECT id, title, description, created_at, updated_at
		FROM astronomy_shows
		WHERE id = $1
	`

	var show entity.AstronomyShow
	err := r.db.QueryRow(ctx, query, id).Scan(
		&show.ID,
		&show.Title,
		&show.Description,
		&show.CreatedAt,
		&show.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find astronomy show by ID",
			zap.Error(err),
			zap.String("show_id", id.String()),
		)
		return nil, fmt.Errorf("find astronomy show by id: %w", err)
	}

	return &show, nil
}

// FindAll matches the search term against title or description,
// case-insensitive substring on either field.
func (r *astronomyShowRepository) FindAll(ctx context.Context, search string, limit, offset int) ([]*entity.AstronomyShow, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT id, title, description, created_at, updated_at
		FROM astronomy_shows
	`)

	args := []interface{}{}
	argCount := 1

	if search != "" {
		queryBuilder.WriteString(fmt.Sprintf(" WHERE title ILIKE $%d OR description ILIKE $%d", argCount, argCount))
		args = append(args, "%"+search+"%")
		argCount++
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY title LIMIT $%d OFFSET $%d", argCount, argCount+1))
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find astronomy shows",
			zap.Error(err),
			zap.String("search", search),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find astronomy shows: %w", err)
	}
	defer rows.Close()

	var shows []*entity.AstronomyShow
	for rows.Next() {
		var show entity.AstronomyShow
		err := rows.Scan(
			&show.ID,
			&show.Title,
			&show.Description,
			&show.CreatedAt,
			&show.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan astronomy show row", zap.Error(err))
			return nil, fmt.Errorf("scan astronomy show row: %w", err)
		}
		shows = append(shows, &show)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate astronomy show rows: %w", err)
	}

	return shows, nil
}

func (r *astronomyShowRepository) CountAll(ctx context.Context, search string) (int64, error) {
	query := `SELECT COUNT(*) FROM astronomy_shows`
	args := []interface{}{}

	if search != "" {
		query += " WHERE title ILIKE $1 OR description ILIKE $1"
		args = append(args, "%"+search+"%")
	}

	var total int64
	err := r.db.QueryRow(ctx, query, args...).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count astronomy shows",
			zap.Error(err),
			zap.String("search", search),
		)
		return 0, fmt.Errorf("count astronomy shows: %w", err)
	}

	return total, nil
}

func (r *astronomyShowRepository) Update(ctx context.Context, show *entity.AstronomyShow) error {
	query := `
		UPDATE astronomy_shows
		SET title = $2, description = $3, updated_at = $4
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		show.ID,
		show.Title,
		show.Description,
		show.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update astronomy show",
			zap.Error(err),
			zap.String("show_id", show.ID.String()),
		)
		return fmt.Errorf("update astronomy show: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("astronomy show not found")
	}

	return nil
}

func (r *astronomyShowRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM astronomy_shows WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete astronomy show",
			zap.Error(err),
			zap.String("show_id", id.String()),
		)
		return fmt.Errorf("delete astronomy show: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("astronomy show not found")
	}

	r.log.Info("Astronomy show deleted", zap.String("show_id", id.String()))
	return nil
}
