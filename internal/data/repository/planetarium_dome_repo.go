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

type PlanetariumDomeRepository interface {
	Create(ctx context.Context, dome *entity.PlanetariumDome) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PlanetariumDome, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.PlanetariumDome, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, dome *entity.PlanetariumDome) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type planetariumDomeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPlanetariumDomeRepository(db database.PgxIface, log *zap.Logger) PlanetariumDomeRepository {
	return &planetariumDomeRepository{
		db:  db,
		log: log.With(zap.String("repository", "planetarium_dome")),
	}
}

func (r *planetariumDomeRepository) Create(ctx context.Context, dome *entity.PlanetariumDome) error {
	query := `
		INSERT INTO planetarium_domes (id, name, "rows", seats_in_row, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		dome.ID,
		dome.Name,
		dome.Rows,
		dome.SeatsInRow,
		dome.CreatedAt,
		dome.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create planetarium dome",
			zap.Error(err),
			zap.String("name", dome.Name),
		)
		return fmt.Errorf("create planetarium dome: %w", err)
	}

	return nil
}

func (r *planetariumDomeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PlanetariumDome, error) {
	query := `
		SELECT id, name, "rows", seats_in_row, created_at, updated_at
		FROM planetarium_domes
		WHERE id = $1
	`

	var dome entity.PlanetariumDome
	err := r.db.QueryRow(ctx, query, id).Scan(
		&dome.ID,
		&dome.Name,
		&dome.Rows,
		&dome.SeatsInRow,
		&dome.CreatedAt,
		&dome.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find planetarium dome by ID",
			zap.Error(err),
			zap.String("dome_id", id.String()),
		)
		return nil, fmt.Errorf("find planetarium dome by id: %w", err)
	}

	return &dome, nil
}

func (r *planetariumDomeRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.PlanetariumDome, error) {
	query := `
		SELECT id, name, "rows", seats_in_row, created_at, updated_at
		FROM planetarium_domes
		ORDER BY name
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find planetarium domes",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find planetarium domes: %w", err)
	}
	defer rows.Close()

	var domes []*entity.PlanetariumDome
	for rows.Next() {
		var dome entity.PlanetariumDome
		err := rows.Scan(
			&dome.ID,
			&dome.Name,
			&dome.Rows,
			&dome.SeatsInRow,
			&dome.CreatedAt,
			&dome.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan planetarium dome row", zap.Error(err))
			return nil, fmt.Errorf("scan planetarium dome row: %w", err)
		}
		domes = append(domes, &dome)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate planetarium dome rows: %w", err)
	}

	return domes, nil
}

func (r *planetariumDomeRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM planetarium_domes`).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count planetarium domes", zap.Error(err))
		return 0, fmt.Errorf("count planetarium domes: %w", err)
	}

	return total, nil
}

func (r *planetariumDomeRepository) Update(ctx context.Context, dome *entity.PlanetariumDome) error {
	query := `
		UPDATE planetarium_domes
		SET name = $2, "rows" = $3, seats_in_row = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		dome.ID,
		dome.Name,
		dome.Rows,
		dome.SeatsInRow,
		dome.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update planetarium dome",
			zap.Error(err),
			zap.String("dome_id", dome.ID.String()),
		)
		return fmt.Errorf("update planetarium dome: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("planetarium dome not found")
	}

	return nil
}

func (r *planetariumDomeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM planetarium_domes WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete planetarium dome",
			zap.Error(err),
			zap.String("dome_id", id.String()),
		)
		return fmt.Errorf("delete planetarium dome: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("planetarium dome not found")
	}

	r.log.Info("Planetarium dome deleted", zap.String("dome_id", id.String()))
	return nil
}
