package repository

import (
	"context"
	"fmt"
	"strings"

	"planetarium-booking/internal/data/entity"
	"planetarium-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AstronomyShowThemeRepository manages the show <-> theme join rows
type AstronomyShowThemeRepository interface {
	CreateBatch(ctx context.Context, links []*entity.AstronomyShowTheme) error
	DeleteByShowID(ctx context.Context, showID uuid.UUID) error
}

type astronomyShowThemeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAstronomyShowThemeRepository(db database.PgxIface, log *zap.Logger) AstronomyShowThemeRepository {
	return &astronomyShowThemeRepository{
		db:  db,
		log: log.With(zap.String("repository", "astronomy_show_theme")),
	}
}

func (r *astronomyShowThemeRepository) CreateBatch(ctx context.Context, links []*entity.AstronomyShowTheme) error {
	if len(links) == 0 {
		return nil
	}

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`INSERT INTO astronomy_show_themes (id, astronomy_show_id, show_theme_id, created_at) VALUES `)

	args := make([]interface{}, 0, len(links)*4)
	for i, link := range links {
		if i > 0 {
			queryBuilder.WriteString(", ")
		}
		base := i * 4
		queryBuilder.WriteString(fmt.Sprintf("($%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4))
		args = append(args, link.ID, link.AstronomyShowID, link.ShowThemeID, link.CreatedAt)
	}

	_, err := r.db.Exec(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to create show-theme links",
			zap.Error(err),
			zap.Int("count", len(links)),
		)
		return fmt.Errorf("create show-theme links: %w", err)
	}

	return nil
}

func (r *astronomyShowThemeRepository) DeleteByShowID(ctx context.Context, showID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM astronomy_show_themes WHERE astronomy_show_id = $1`, showID)
	if err != nil {
		r.log.Error("Failed to delete show-theme links",
			zap.Error(err),
			zap.String("show_id", showID.String()),
		)
		return fmt.Errorf("delete show-theme links: %w", err)
	}

	return nil
}
