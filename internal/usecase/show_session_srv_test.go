package usecase_test

import (
	"context"
	"testing"
	"time"

	"planetarium-booking/internal/dto/request"
	"planetarium-booking/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSession_ResolvesReferences(t *testing.T) {
	repo, store := newTestRepo()
	service := usecase.NewShowSessionService(repo, testLogger())
	scene := seedBookingScene(store)
	ctx := context.Background()

	showTime := time.Date(2026, 9, 12, 20, 0, 0, 0, time.UTC)
	created, err := service.CreateSession(ctx, &request.ShowSessionRequest{
		AstronomyShow:   scene.session.AstronomyShowID.String(),
		PlanetariumDome: scene.dome.ID.String(),
		ShowTime:        showTime.Format(time.RFC3339),
	})
	require.NoError(t, err)
	assert.Equal(t, scene.dome.ID.String(), created.PlanetariumDome)
	assert.True(t, showTime.Equal(created.ShowTime))
}

func TestCreateSession_UnknownShowRejected(t *testing.T) {
	repo, store := newTestRepo()
	service := usecase.NewShowSessionService(repo, testLogger())
	scene := seedBookingScene(store)

	_, err := service.CreateSession(context.Background(), &request.ShowSessionRequest{
		AstronomyShow:   uuid.NewString(),
		PlanetariumDome: scene.dome.ID.String(),
		ShowTime:        time.Now().Add(24 * time.Hour).Format(time.RFC3339),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid astronomy_show")
}

func TestCreateSession_BadShowTimeRejected(t *testing.T) {
	repo, store := newTestRepo()
	service := usecase.NewShowSessionService(repo, testLogger())
	scene := seedBookingScene(store)

	_, err := service.CreateSession(context.Background(), &request.ShowSessionRequest{
		AstronomyShow:   scene.session.AstronomyShowID.String(),
		PlanetariumDome: scene.dome.ID.String(),
		ShowTime:        "next tuesday",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid show_time")
}

func TestGetSessionByID_ResolvesShowAndDome(t *testing.T) {
	repo, store := newTestRepo()
	service := usecase.NewShowSessionService(repo, testLogger())
	scene := seedBookingScene(store)

	detail, err := service.GetSessionByID(context.Background(), scene.session.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Journey to Mars", detail.AstronomyShow.Title)
	assert.Equal(t, "Main Dome", detail.PlanetariumDome.Name)
}

func TestGetSessions_ListRowsCarryTitles(t *testing.T) {
	repo, store := newTestRepo()
	service := usecase.NewShowSessionService(repo, testLogger())
	seedBookingScene(store)

	page, err := service.GetSessions(context.Background(), &request.PaginatedRequest{Page: 1, PerPage: 10})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Journey to Mars", page.Data[0].AstronomyShowTitle)
	assert.Equal(t, "Main Dome", page.Data[0].PlanetariumDomeName)
}
