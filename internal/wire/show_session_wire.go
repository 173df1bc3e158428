package wire

import (
	"planetarium-booking/internal/adaptor"
	"planetarium-booking/internal/data/repository"
	"planetarium-booking/pkg/middleware"
	"planetarium-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireShowSession(
	r chi.Router,
	sessionHandler *adaptor.ShowSessionHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// Public reads
	r.Get("/api/show-sessions", sessionHandler.GetSessions)
	r.Get("/api/show-sessions/{id}", sessionHandler.GetSessionByID)

	// Catalog writes are admin only
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Post("/api/show-sessions", sessionHandler.CreateSession)
		r.Put("/api/show-sessions/{id}", sessionHandler.UpdateSession)
		r.Delete("/api/show-sessions/{id}", sessionHandler.DeleteSession)
	})
}
