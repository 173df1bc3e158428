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

type PlanetariumDomeService interface {
	GetDomes(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.PlanetariumDomeResponse], error)
	GetDomeByID(ctx context.Context, domeID string) (*response.PlanetariumDomeResponse, error)
	CreateDome(ctx context.Context, req *request.PlanetariumDomeRequest) (*response.PlanetariumDomeResponse, error)
	UpdateDome(ctx context.Context, domeID string, req *request.PlanetariumDomeRequest) (*response.PlanetariumDomeResponse, error)
	DeleteDome(ctx context.Context, domeID string) error
}

type planetariumDomeService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPlanetariumDomeService(repo *repository.Repository, log *zap.Logger) PlanetariumDomeService {
	return &planetariumDomeService{
		repo: repo,
		log:  log.With(zap.String("service", "planetarium_dome")),
	}
}

func (s *planetariumDomeService) GetDomes(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.PlanetariumDomeResponse], error) {
	domes, err := s.repo.PlanetariumDome.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("get planetarium domes: %w", err)
	}

	total, err := s.repo.PlanetariumDome.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count planetarium domes: %w", err)
	}

	domeResponses := make([]response.PlanetariumDomeResponse, len(domes))
	for i, dome := range domes {
		domeResponses[i] = response.PlanetariumDomeToResponse(dome)
	}

	return response.NewPaginatedResponse(domeResponses, req.Page, req.PerPage, total), nil
}

func (s *planetariumDomeService) GetDomeByID(ctx context.Context, domeID string) (*response.PlanetariumDomeResponse, error) {
	id, err := uuid.Parse(domeID)
	if err != nil {
		return nil, fmt.Errorf("invalid planetarium dome id: %w", err)
	}

	dome, err := s.repo.PlanetariumDome.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get planetarium dome by id: %w", err)
	}
	if dome == nil {
		return nil, fmt.Errorf("planetarium dome not found")
	}

	domeResp := response.PlanetariumDomeToResponse(dome)
	return &domeResp, nil
}

func (s *planetariumDomeService) CreateDome(ctx context.Context, req *request.PlanetariumDomeRequest) (*response.PlanetariumDomeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create planetarium dome validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	dome := &entity.PlanetariumDome{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:       req.Name,
		Rows:       req.Rows,
		SeatsInRow: req.SeatsInRow,
	}

	if err := s.repo.PlanetariumDome.Create(ctx, dome); err != nil {
		return nil, fmt.Errorf("create planetarium dome: %w", err)
	}

	s.log.Info("Planetarium dome created",
		zap.String("dome_id", dome.ID.String()),
		zap.String("name", dome.Name),
		zap.Int("capacity", dome.Capacity()),
	)

	domeResp := response.PlanetariumDomeToResponse(dome)
	return &domeResp, nil
}

func (s *planetariumDomeService) UpdateDome(ctx context.Context, domeID string, req *request.PlanetariumDomeRequest) (*response.PlanetariumDomeResponse, error) {
	id, err := uuid.Parse(domeID)
	if err != nil {
		return nil, fmt.Errorf("invalid planetarium dome id: %w", err)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	dome, err := s.repo.PlanetariumDome.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find planetarium dome: %w", err)
	}
	if dome == nil {
		return nil, fmt.Errorf("planetarium dome not found")
	}

	dome.Name = req.Name
	dome.Rows = req.Rows
	dome.SeatsInRow = req.SeatsInRow
	dome.UpdatedAt = time.Now()

	if err := s.repo.PlanetariumDome.Update(ctx, dome); err != nil {
		return nil, fmt.Errorf("update planetarium dome: %w", err)
	}

	s.log.Info("Planetarium dome updated",
		zap.String("dome_id", domeID),
		zap.String("name", dome.Name),
	)

	domeResp := response.PlanetariumDomeToResponse(dome)
	return &domeResp, nil
}

func (s *planetariumDomeService) DeleteDome(ctx context.Context, domeID string) error {
	id, err := uuid.Parse(domeID)
	if err != nil {
		return fmt.Errorf("invalid planetarium dome id: %w", err)
	}

	if err := s.repo.PlanetariumDome.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete planetarium dome: %w", err)
	}

	return nil
}
