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

type ShowThemeService interface {
	GetThemes(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ShowThemeResponse], error)
	GetThemeByID(ctx context.Context, themeID string) (*response.ShowThemeResponse, error)
	CreateTheme(ctx context.Context, req *request.ShowThemeRequest) (*response.ShowThemeResponse, error)
	UpdateTheme(ctx context.Context, themeID string, req *request.ShowThemeRequest) (*response.ShowThemeResponse, error)
	DeleteTheme(ctx context.Context, themeID string) error
}

type showThemeService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewShowThemeService(repo *repository.Repository, log *zap.Logger) ShowThemeService {
	return &showThemeService{
		repo: repo,
		log:  log.With(zap.String("service", "show_theme")),
	}
}

func (s *showThemeService) GetThemes(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ShowThemeResponse], error) {
	themes, err := s.repo.ShowTheme.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("get show themes: %w", err)
	}

	total, err := s.repo.ShowTheme.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count show themes: %w", err)
	}

	themeResponses := make([]response.ShowThemeResponse, len(themes))
	for i, theme := range themes {
		themeResponses[i] = response.ShowThemeToResponse(theme)
	}

	return response.NewPaginatedResponse(themeResponses, req.Page, req.PerPage, total), nil
}

func (s *showThemeService) GetThemeByID(ctx context.Context, themeID string) (*response.ShowThemeResponse, error) {
	id, err := uuid.Parse(themeID)
	if err != nil {
		return nil, fmt.Errorf("invalid show theme id: %w", err)
	}

	theme, err := s.repo.ShowTheme.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get show theme by id: %w", err)
	}
	if theme == nil {
		return nil, fmt.Errorf("show theme not found")
	}

	themeResp := response.ShowThemeToResponse(theme)
	return &themeResp, nil
}

func (s *showThemeService) CreateTheme(ctx context.Context, req *request.ShowThemeRequest) (*response.ShowThemeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create show theme validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	theme := &entity.ShowTheme{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name: req.Name,
	}

	if err := s.repo.ShowTheme.Create(ctx, theme); err != nil {
		return nil, fmt.Errorf("create show theme: %w", err)
	}

	s.log.Info("Show theme created",
		zap.String("theme_id", theme.ID.String()),
		zap.String("name", theme.Name),
	)

	themeResp := response.ShowThemeToResponse(theme)
	return &themeResp, nil
}

func (s *showThemeService) UpdateTheme(ctx context.Context, themeID string, req *request.ShowThemeRequest) (*response.ShowThemeResponse, error) {
	id, err := uuid.Parse(themeID)
	if err != nil {
		return nil, fmt.Errorf("invalid show theme id: %w", err)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	theme, err := s.repo.ShowTheme.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find show theme: %w", err)
	}
	if theme == nil {
		return nil, fmt.Errorf("show theme not found")
	}

	theme.Name = req.Name
	theme.UpdatedAt = time.Now()

	if err := s.repo.ShowTheme.Update(ctx, theme); err != nil {
		return nil, fmt.Errorf("update show theme: %w", err)
	}

	s.log.Info("Show theme updated",
		zap.String("theme_id", themeID),
		zap.String("name", theme.Name),
	)

	themeResp := response.ShowThemeToResponse(theme)
	return &themeResp, nil
}

func (s *showThemeService) DeleteTheme(ctx context.Context, themeID string) error {
	id, err := uuid.Parse(themeID)
	if err != nil {
		return fmt.Errorf("invalid show theme id: %w", err)
	}

	if err := s.repo.ShowTheme.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete show theme: %w", err)
	}

	return nil
}
