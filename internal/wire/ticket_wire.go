package wire

import (
	"planetarium-booking/internal/adaptor"
	"planetarium-booking/internal/data/repository"
	"planetarium-booking/pkg/middleware"
	"planetarium-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func wireTicket(
	r chi.Router,
	ticketHandler *adaptor.TicketHandler,
	repo *repository.Repository,
	config *utils.Config,
	rdb *redis.Client,
	log *zap.Logger,
) {
	r.Route("/api/tickets", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// Reads are served through the ticket view cache
		r.Group(func(r chi.Router) {
			r.Use(middleware.ResponseCache(config.Cache, rdb))

			r.Get("/", ticketHandler.GetTickets)
			r.Get("/{id}", ticketHandler.GetTicketByID)
		})

		r.Post("/", ticketHandler.CreateTicket)
		r.Put("/{id}", ticketHandler.UpdateTicket)
		r.Delete("/{id}", ticketHandler.DeleteTicket)
	})
}
