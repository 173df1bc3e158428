package wire

import (
	"planetarium-booking/internal/adaptor"
	"planetarium-booking/internal/data/repository"
	"planetarium-booking/pkg/middleware"
	"planetarium-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReservation(
	r chi.Router,
	reservationHandler *adaptor.ReservationHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// Every reservation route is owner-scoped, so all require a session
	r.Route("/api/reservations", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		r.Get("/", reservationHandler.GetReservations)
		r.Get("/{id}", reservationHandler.GetReservationByID)
		r.Post("/", reservationHandler.CreateReservation)
		r.Put("/{id}", reservationHandler.UpdateReservation)
		r.Delete("/{id}", reservationHandler.DeleteReservation)
	})
}
