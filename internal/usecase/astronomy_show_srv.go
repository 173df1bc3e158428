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

type AstronomyShowService interface {
	GetShows(ctx context.Context, req *request.PaginatedRequest, search string) (*response.PaginatedResponse[response.AstronomyShowListResponse], error)
	GetShowByID(ctx context.Context, showID string) (*response.AstronomyShowDetailResponse, error)
	CreateShow(ctx context.Context, req *request.AstronomyShowRequest) (*response.AstronomyShowResponse, error)
	UpdateShow(ctx context.Context, showID string, req *request.AstronomyShowRequest) (*response.AstronomyShowResponse, error)
	DeleteShow(ctx context.Context, showID string) error
}

type astronomyShowService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAstronomyShowService(repo *repository.Repository, log *zap.Logger) AstronomyShowService {
	return &astronomyShowService{
		repo: repo,
		log:  log.With(zap.String("service", "astronomy_show")),
	}
}

func (s *astronomyShowService) GetShows(ctx context.Context, req *request.PaginatedRequest, search string) (*response.PaginatedResponse[response.AstronomyShowListResponse], error) {
	shows, err := s.repo.AstronomyShow.FindAll(ctx, search, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("get astronomy shows: %w", err)
	}

	total, err := s.repo.AstronomyShow.CountAll(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("count astronomy shows: %w", err)
	}

	// Resolve themes for the whole page in one query
	showIDs := make([]uuid.UUID, len(shows))
	for i, show := range shows {
		showIDs[i] = show.ID
	}

	themesByShow, err := s.repo.ShowTheme.FindByShowIDs(ctx, showIDs)
	if err != nil {
		return nil, fmt.Errorf("get themes for shows: %w", err)
	}

	showResponses := make([]response.AstronomyShowListResponse, len(shows))
	for i, show := range shows {
		showResponses[i] = response.AstronomyShowToListResponse(show, themesByShow[show.ID])
	}

	s.log.Debug("Astronomy shows retrieved",
		zap.Int("count", len(shows)),
		zap.Int64("total", total),
		zap.String("search", search),
	)

	return response.NewPaginatedResponse(showResponses, req.Page, req.PerPage, total), nil
}

func (s *astronomyShowService) GetShowByID(ctx context.Context, showID string) (*response.AstronomyShowDetailResponse, error) {
	id, err := uuid.Parse(showID)
	if err != nil {
		return nil, fmt.Errorf("invalid astronomy show id: %w", err)
	}

	show, err := s.repo.AstronomyShow.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get astronomy show by id: %w", err)
	}
	if show == nil {
		return nil, fmt.Errorf("astronomy show not found")
	}

	themesByShow, err := s.repo.ShowTheme.FindByShowIDs(ctx, []uuid.UUID{show.ID})
	if err != nil {
		return nil, fmt.Errorf("get themes for show: %w", err)
	}

	detail := response.AstronomyShowToDetailResponse(show, themesByShow[show.ID])
	return &detail, nil
}

func (s *astronomyShowService) CreateShow(ctx context.Context, req *request.AstronomyShowRequest) (*response.AstronomyShowResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create astronomy show validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	themes, themeIDs, err := s.resolveThemes(ctx, req.ShowTheme)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	show := &entity.AstronomyShow{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       req.Title,
		Description: req.Description,
	}

	if err := s.repo.AstronomyShow.Create(ctx, show); err != nil {
		return nil, fmt.Errorf("create astronomy show: %w", err)
	}

	if len(themeIDs) > 0 {
		links := make([]*entity.AstronomyShowTheme, len(themeIDs))
		for i, themeID := range themeIDs {
			links[i] = &entity.AstronomyShowTheme{
				BaseSimple: entity.BaseSimple{
					ID:        uuid.New(),
					CreatedAt: now,
				},
				AstronomyShowID: show.ID,
				ShowThemeID:     themeID,
			}
		}

		if err := s.repo.AstronomyShowTheme.CreateBatch(ctx, links); err != nil {
			// Roll the show back so a half-created catalog entry never lingers
			s.repo.AstronomyShow.Delete(ctx, show.ID)
			return nil, fmt.Errorf("create show-theme links: %w", err)
		}
	}

	s.log.Info("Astronomy show created",
		zap.String("show_id", show.ID.String()),
		zap.String("title", show.Title),
		zap.Int("theme_count", len(themeIDs)),
	)

	showResp := response.AstronomyShowToResponse(show, themes)
	return &showResp, nil
}

func (s *astronomyShowService) UpdateShow(ctx context.Context, showID string, req *request.AstronomyShowRequest) (*response.AstronomyShowResponse, error) {
	id, err := uuid.Parse(showID)
	if err != nil {
		return nil, fmt.Errorf("invalid astronomy show id: %w", err)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	show, err := s.repo.AstronomyShow.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find astronomy show: %w", err)
	}
	if show == nil {
		return nil, fmt.Errorf("astronomy show not found")
	}

	themes, themeIDs, err := s.resolveThemes(ctx, req.ShowTheme)
	if err != nil {
		return nil, err
	}

	show.Title = req.Title
	show.Description = req.Description
	show.UpdatedAt = time.Now()

	if err := s.repo.AstronomyShow.Update(ctx, show); err != nil {
		return nil, fmt.Errorf("update astronomy show: %w", err)
	}

	// Full update replaces the theme set
	if err := s.repo.AstronomyShowTheme.DeleteByShowID(ctx, show.ID); err != nil {
		return nil, fmt.Errorf("replace show-theme links: %w", err)
	}
	if len(themeIDs) > 0 {
		now := time.Now()
		links := make([]*entity.AstronomyShowTheme, len(themeIDs))
		for i, themeID := range themeIDs {
			links[i] = &entity.AstronomyShowTheme{
				BaseSimple: entity.BaseSimple{
					ID:        uuid.New(),
					CreatedAt: now,
				},
				AstronomyShowID: show.ID,
				ShowThemeID:     themeID,
			}
		}
		if err := s.repo.AstronomyShowTheme.CreateBatch(ctx, links); err != nil {
			return nil, fmt.Errorf("replace show-theme links: %w", err)
		}
	}

	s.log.Info("Astronomy show updated",
		zap.String("show_id", showID),
		zap.String("title", show.Title),
	)

	showResp := response.AstronomyShowToResponse(show, themes)
	return &showResp, nil
}

func (s *astronomyShowService) DeleteShow(ctx context.Context, showID string) error {
	id, err := uuid.Parse(showID)
	if err != nil {
		return fmt.Errorf("invalid astronomy show id: %w", err)
	}

	show, err := s.repo.AstronomyShow.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find astronomy show: %w", err)
	}
	if show == nil {
		return fmt.Errorf("astronomy show not found")
	}

	if err := s.repo.AstronomyShowTheme.DeleteByShowID(ctx, id); err != nil {
		s.log.Warn("Failed to delete show-theme links",
			zap.Error(err),
			zap.String("show_id", showID),
		)
	}

	if err := s.repo.AstronomyShow.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete astronomy show: %w", err)
	}

	s.log.Info("Astronomy show deleted",
		zap.String("show_id", showID),
		zap.String("title", show.Title),
	)

	return nil
}

// resolveThemes parses and verifies the referenced theme ids. A reference
// to a missing theme is a validation error on the show_theme field.
func (s *astronomyShowService) resolveThemes(ctx context.Context, themeIDStrs []string) ([]*entity.ShowTheme, []uuid.UUID, error) {
	themeIDs := make([]uuid.UUID, 0, len(themeIDStrs))
	for _, themeIDStr := range themeIDStrs {
		themeID, err := uuid.Parse(themeIDStr)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid show_theme id: %w", err)
		}
		themeIDs = append(themeIDs, themeID)
	}

	themes, err := s.repo.ShowTheme.FindByIDs(ctx, themeIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("check show themes: %w", err)
	}
	if len(themes) != len(themeIDs) {
		return nil, nil, fmt.Errorf("invalid show_theme: referenced theme does not exist")
	}

	return themes, themeIDs, nil
}
