package wire

import (
	"planetarium-booking/internal/adaptor"
	"planetarium-booking/internal/data/repository"
	"planetarium-booking/pkg/middleware"
	"planetarium-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireShowTheme(
	r chi.Router,
	themeHandler *adaptor.ShowThemeHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// Public reads
	r.Get("/api/show-themes", themeHandler.GetThemes)
	r.Get("/api/show-themes/{id}", themeHandler.GetThemeByID)

	// Catalog writes are admin only
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Post("/api/show-themes", themeHandler.CreateTheme)
		r.Put("/api/show-themes/{id}", themeHandler.UpdateTheme)
		r.Delete("/api/show-themes/{id}", themeHandler.DeleteTheme)
	})
}
