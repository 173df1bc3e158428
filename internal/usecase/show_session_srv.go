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

type ShowSessionService interface {
	GetSessions(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ShowSessionListResponse], error)
	GetSessionByID(ctx context.Context, sessionID string) (*response.ShowSessionDetailResponse, error)
	CreateSession(ctx context.Context, req *request.ShowSessionRequest) (*response.ShowSessionResponse, error)
	UpdateSession(ctx context.Context, sessionID string, req *request.ShowSessionRequest) (*response.ShowSessionResponse, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type showSessionService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewShowSessionService(repo *repository.Repository, log *zap.Logger) ShowSessionService {
	return &showSessionService{
		repo: repo,
		log:  log.With(zap.String("service", "show_session")),
	}
}

func (s *showSessionService) GetSessions(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ShowSessionListResponse], error) {
	sessions, err := s.repo.ShowSession.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("get show sessions: %w", err)
	}

	total, err := s.repo.ShowSession.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count show sessions: %w", err)
	}

	sessionResponses := make([]response.ShowSessionListResponse, len(sessions))
	for i, row := range sessions {
		sessionResponses[i] = response.ShowSessionToListResponse(row)
	}

	return response.NewPaginatedResponse(sessionResponses, req.Page, req.PerPage, total), nil
}

// GetSessionByID resolves the session with its show, dome and the show's
// themes, the two-level chain the detail shape renders.
func (s *showSessionService) GetSessionByID(ctx context.Context, sessionID string) (*response.ShowSessionDetailResponse, error) {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return nil, fmt.Errorf("invalid show session id: %w", err)
	}

	row, err := s.repo.ShowSession.FindDetailByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get show session by id: %w", err)
	}
	if row == nil {
		return nil, fmt.Errorf("show session not found")
	}

	themesByShow, err := s.repo.ShowTheme.FindByShowIDs(ctx, []uuid.UUID{row.Show.ID})
	if err != nil {
		return nil, fmt.Errorf("get themes for session show: %w", err)
	}

	detail := response.ShowSessionToDetailResponse(row, themesByShow[row.Show.ID])
	return &detail, nil
}

func (s *showSessionService) CreateSession(ctx context.Context, req *request.ShowSessionRequest) (*response.ShowSessionResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create show session validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	showID, domeID, showTime, err := s.resolveReferences(ctx, req)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	session := &entity.ShowSession{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		AstronomyShowID:   showID,
		PlanetariumDomeID: domeID,
		ShowTime:          showTime,
	}

	if err := s.repo.ShowSession.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create show session: %w", err)
	}

	s.log.Info("Show session created",
		zap.String("session_id", session.ID.String()),
		zap.Time("show_time", session.ShowTime),
	)

	sessionResp := response.ShowSessionToResponse(session)
	return &sessionResp, nil
}

func (s *showSessionService) UpdateSession(ctx context.Context, sessionID string, req *request.ShowSessionRequest) (*response.ShowSessionResponse, error) {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return nil, fmt.Errorf("invalid show session id: %w", err)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	session, err := s.repo.ShowSession.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find show session: %w", err)
	}
	if session == nil {
		return nil, fmt.Errorf("show session not found")
	}

	showID, domeID, showTime, err := s.resolveReferences(ctx, req)
	if err != nil {
		return nil, err
	}

	session.AstronomyShowID = showID
	session.PlanetariumDomeID = domeID
	session.ShowTime = showTime
	session.UpdatedAt = time.Now()

	if err := s.repo.ShowSession.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("update show session: %w", err)
	}

	s.log.Info("Show session updated", zap.String("session_id", sessionID))

	sessionResp := response.ShowSessionToResponse(session)
	return &sessionResp, nil
}

func (s *showSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return fmt.Errorf("invalid show session id: %w", err)
	}

	if err := s.repo.ShowSession.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete show session: %w", err)
	}

	return nil
}

// resolveReferences parses the payload and verifies both foreign keys. A
// missing referenced row is a validation error on that field.
func (s *showSessionService) resolveReferences(ctx context.Context, req *request.ShowSessionRequest) (uuid.UUID, uuid.UUID, time.Time, error) {
	showID, err := uuid.Parse(req.AstronomyShow)
	if err != nil {
		return uuid.Nil, uuid.Nil, time.Time{}, fmt.Errorf("invalid astronomy_show id: %w", err)
	}

	domeID, err := uuid.Parse(req.PlanetariumDome)
	if err != nil {
		return uuid.Nil, uuid.Nil, time.Time{}, fmt.Errorf("invalid planetarium_dome id: %w", err)
	}

	showTime, err := time.Parse(time.RFC3339, req.ShowTime)
	if err != nil {
		return uuid.Nil, uuid.Nil, time.Time{}, fmt.Errorf("invalid show_time: %w", err)
	}

	show, err := s.repo.AstronomyShow.FindByID(ctx, showID)
	if err != nil {
		return uuid.Nil, uuid.Nil, time.Time{}, fmt.Errorf("check astronomy show: %w", err)
	}
	if show == nil {
		return uuid.Nil, uuid.Nil, time.Time{}, fmt.Errorf("invalid astronomy_show: referenced show does not exist")
	}

	dome, err := s.repo.PlanetariumDome.FindByID(ctx, domeID)
	if err != nil {
		return uuid.Nil, uuid.Nil, time.Time{}, fmt.Errorf("check planetarium dome: %w", err)
	}
	if dome == nil {
		return uuid.Nil, uuid.Nil, time.Time{}, fmt.Errorf("invalid planetarium_dome: referenced dome does not exist")
	}

	return showID, domeID, showTime, nil
}
