package repository

import (
	"planetarium-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User               UserRepository
	Session            SessionRepository
	ShowTheme          ShowThemeRepository
	AstronomyShow      AstronomyShowRepository
	AstronomyShowTheme AstronomyShowThemeRepository
	PlanetariumDome    PlanetariumDomeRepository
	ShowSession        ShowSessionRepository
	Reservation        ReservationRepository
	Ticket             TicketRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:               NewUserRepository(db, log),
		Session:            NewSessionRepository(db, log),
		ShowTheme:          NewShowThemeRepository(db, log),
		AstronomyShow:      NewAstronomyShowRepository(db, log),
		AstronomyShowTheme: NewAstronomyShowThemeRepository(db, log),
		PlanetariumDome:    NewPlanetariumDomeRepository(db, log),
		ShowSession:        NewShowSessionRepository(db, log),
		Reservation:        NewReservationRepository(db, log),
		Ticket:             NewTicketRepository(db, log),
	}
}
