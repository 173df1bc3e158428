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

type ShowThemeRepository interface {
	Create(ctx context.Context, theme *entity.ShowTheme) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ShowTheme, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.ShowTheme, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.ShowTheme, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, theme *entity.ShowTheme) error
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByShowIDs resolves themes for a page of shows in one query
	FindByShowIDs(ctx context.Context, showIDs []uuid.UUID) (map[uuid.UUID][]*entity.ShowTheme, error)
}

type showThemeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewShowThemeRepository(db database.PgxIface, log *zap.Logger) ShowThemeRepository {
	return &showThemeRepository{
		db:  db,
		log: log.With(zap.String("repository", "show_theme")),
	}
}

func (r *showThemeRepository) Create(ctx context.Context, theme *entity.ShowTheme) error {
	query := `
		INSERT INTO show_themes (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		theme.ID,
		theme.Name,
		theme.CreatedAt,
		theme.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create show theme",
			zap.Error(err),
			zap.String("name", theme.Name),
		)
		return fmt.Errorf("create show theme: %w", err)
	}

	return nil
}

func (r *showThemeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ShowTheme, error) {
	query := `SELECT id, name, created_at, updated_at FROM show_themes WHERE id = $1`

	var theme entity.ShowTheme
	err := r.db.QueryRow(ctx, query, id).Scan(
		&theme.ID,
		&theme.Name,
		&theme.CreatedAt,
		&theme.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find show theme by ID",
			zap.Error(err),
			zap.String("theme_id", id.String()),
		)
		return nil, fmt.Errorf("find show theme by id: %w", err)
	}

	return &theme, nil
}

func (r *showThemeRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.ShowTheme, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT id, name, created_at, updated_at FROM show_themes WHERE id = ANY($1) ORDER BY name`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		r.log.Error("Failed to find show themes by IDs", zap.Error(err))
		return nil, fmt.Errorf("find show themes by ids: %w", err)
	}
	defer rows.Close()

	var themes []*entity.ShowTheme
	for rows.Next() {
		var theme entity.ShowTheme
		if err := rows.Scan(&theme.ID, &theme.Name, &theme.CreatedAt, &theme.UpdatedAt); err != nil {
			r.log.Error("Failed to scan show theme row", zap.Error(err))
			return nil, fmt.Errorf("scan show theme row: %w", err)
		}
		themes = append(themes, &theme)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate show theme rows: %w", err)
	}

	return themes, nil
}

func (r *showThemeRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.ShowTheme, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM show_themes
		ORDER BY name
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find all show themes",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find show themes: %w", err)
	}
	defer rows.Close()

	var themes []*entity.ShowTheme
	for rows.Next() {
		var theme entity.ShowTheme
		if err := rows.Scan(&theme.ID, &theme.Name, &theme.CreatedAt, &theme.UpdatedAt); err != nil {
			r.log.Error("Failed to scan show theme row", zap.Error(err))
			return nil, fmt.Errorf("scan show theme row: %w", err)
		}
		themes = append(themes, &theme)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate show theme rows: %w", err)
	}

	return themes, nil
}

func (r *showThemeRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM show_themes`).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count show themes", zap.Error(err))
		return 0, fmt.Errorf("count show themes: %w", err)
	}

	return total, nil
}

func (r *showThemeRepository) Update(ctx context.Context, theme *entity.ShowTheme) error {
	query := `UPDATE show_themes SET name = $2, updated_at = $3 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, theme.ID, theme.Name, theme.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to update show theme",
			zap.Error(err),
			zap.String("theme_id", theme.ID.String()),
		)
		return fmt.Errorf("update show theme: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("show theme not found")
	}

	return nil
}

func (r *showThemeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM show_themes WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete show theme",
			zap.Error(err),
			zap.String("theme_id", id.String()),
		)
		return fmt.Errorf("delete show theme: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("show theme not found")
	}

	r.log.Info("Show theme deleted", zap.String("theme_id", id.String()))
	return nil
}

func (r *showThemeRepository) FindByShowIDs(ctx context.Context, showIDs []uuid.UUID) (map[uuid.UUID][]*entity.ShowTheme, error) {
	themesByShow := make(map[uuid.UUID][]*entity.ShowTheme, len(showIDs))
	if len(showIDs) == 0 {
		return themesByShow, nil
	}

	query := `
		SELECT st.astronomy_show_id, t.id, t.name, t.created_at, t.updated_at
		FROM show_themes t
		INNER JOIN astronomy_show_themes st ON t.id = st.show_theme_id
		WHERE st.astronomy_show_id = ANY($1)
		ORDER BY t.name
	`

	rows, err := r.db.Query(ctx, query, showIDs)
	if err != nil {
		r.log.Error("Failed to find themes by show IDs", zap.Error(err))
		return nil, fmt.Errorf("find themes by show ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var showID uuid.UUID
		var theme entity.ShowTheme
		if err := rows.Scan(&showID, &theme.ID, &theme.Name, &theme.CreatedAt, &theme.UpdatedAt); err != nil {
			r.log.Error("Failed to scan show theme row", zap.Error(err))
			return nil, fmt.Errorf("scan show theme row: %w", err)
		}
		themesByShow[showID] = append(themesByShow[showID], &theme)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate show theme rows: %w", err)
	}

	return themesByShow, nil
}
