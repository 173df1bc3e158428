package usecase_test

import (
	"context"
	"testing"

	"planetarium-booking/internal/dto/request"
	"planetarium-booking/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTheme_ThenGetByID(t *testing.T) {
	repo, _ := newTestRepo()
	service := usecase.NewShowThemeService(repo, testLogger())
	ctx := context.Background()

	created, err := service.CreateTheme(ctx, &request.ShowThemeRequest{Name: "Black Holes"})
	require.NoError(t, err)
	assert.Equal(t, "Black Holes", created.Name)
	require.NotEmpty(t, created.ID)

	fetched, err := service.GetThemeByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "Black Holes", fetched.Name)
}

func TestCreateTheme_EmptyNameRejected(t *testing.T) {
	repo, _ := newTestRepo()
	service := usecase.NewShowThemeService(repo, testLogger())

	_, err := service.CreateTheme(context.Background(), &request.ShowThemeRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestGetThemeByID_UnknownIsNotFound(t *testing.T) {
	repo, _ := newTestRepo()
	service := usecase.NewShowThemeService(repo, testLogger())

	_, err := service.GetThemeByID(context.Background(), uuid.NewString())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestUpdateTheme_RenamesExisting(t *testing.T) {
	repo, _ := newTestRepo()
	service := usecase.NewShowThemeService(repo, testLogger())
	ctx := context.Background()

	created, err := service.CreateTheme(ctx, &request.ShowThemeRequest{Name: "Comets"})
	require.NoError(t, err)

	updated, err := service.UpdateTheme(ctx, created.ID, &request.ShowThemeRequest{Name: "Comets and Asteroids"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Comets and Asteroids", updated.Name)
}

func TestGetThemes_Paginates(t *testing.T) {
	repo, _ := newTestRepo()
	service := usecase.NewShowThemeService(repo, testLogger())
	ctx := context.Background()

	for _, name := range []string{"Planets", "Stars", "Galaxies"} {
		_, err := service.CreateTheme(ctx, &request.ShowThemeRequest{Name: name})
		require.NoError(t, err)
	}

	page, err := service.GetThemes(ctx, &request.PaginatedRequest{Page: 1, PerPage: 2})
	require.NoError(t, err)
	assert.Len(t, page.Data, 2)
	assert.Equal(t, int64(3), page.Pagination.Total)
	assert.Equal(t, 2, page.Pagination.TotalPages)
}

func TestDeleteTheme_RemovesIt(t *testing.T) {
	repo, _ := newTestRepo()
	service := usecase.NewShowThemeService(repo, testLogger())
	ctx := context.Background()

	created, err := service.CreateTheme(ctx, &request.ShowThemeRequest{Name: "Aurorae"})
	require.NoError(t, err)

	require.NoError(t, service.DeleteTheme(ctx, created.ID))

	_, err = service.GetThemeByID(ctx, created.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
