package wire

import (
	"planetarium-booking/internal/adaptor"
	"planetarium-booking/internal/data/repository"
	"planetarium-booking/pkg/middleware"
	"planetarium-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAstronomyShow(
	r chi.Router,
	showHandler *adaptor.AstronomyShowHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// Public reads
	r.Get("/api/astronomy-shows", showHandler.GetShows)
	r.Get("/api/astronomy-shows/{id}", showHandler.GetShowByID)

	// Catalog writes are admin only
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Post("/api/astronomy-shows", showHandler.CreateShow)
		r.Put("/api/astronomy-shows/{id}", showHandler.UpdateShow)
		r.Delete("/api/astronomy-shows/{id}", showHandler.DeleteShow)
	})
}
