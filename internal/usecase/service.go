package usecase

import (
	"planetarium-booking/internal/data/repository"
	"planetarium-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth            AuthService
	ShowTheme       ShowThemeService
	AstronomyShow   AstronomyShowService
	PlanetariumDome PlanetariumDomeService
	ShowSession     ShowSessionService
	Reservation     ReservationService
	Ticket          TicketService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:            NewAuthService(repo, config, log),
		ShowTheme:       NewShowThemeService(repo, log),
		AstronomyShow:   NewAstronomyShowService(repo, log),
		PlanetariumDome: NewPlanetariumDomeService(repo, log),
		ShowSession:     NewShowSessionService(repo, log),
		Reservation:     NewReservationService(repo, log),
		Ticket:          NewTicketService(repo, log),
	}
}
