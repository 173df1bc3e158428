package wire

import (
	"planetarium-booking/internal/adaptor"
	"planetarium-booking/internal/data/repository"
	"planetarium-booking/pkg/middleware"
	"planetarium-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePlanetariumDome(
	r chi.Router,
	domeHandler *adaptor.PlanetariumDomeHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// Public reads
	r.Get("/api/planetarium-domes", domeHandler.GetDomes)
	r.Get("/api/planetarium-domes/{id}", domeHandler.GetDomeByID)

	// Catalog writes are admin only
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Post("/api/planetarium-domes", domeHandler.CreateDome)
		r.Put("/api/planetarium-domes/{id}", domeHandler.UpdateDome)
		r.Delete("/api/planetarium-domes/{id}", domeHandler.DeleteDome)
	})
}
