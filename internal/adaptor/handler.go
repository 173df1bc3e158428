package adaptor

import (
	"net/http"
	"strings"

	"planetarium-booking/internal/dto/request"
	"planetarium-booking/internal/usecase"
	"planetarium-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth            *AuthHandler
	ShowTheme       *ShowThemeHandler
	AstronomyShow   *AstronomyShowHandler
	PlanetariumDome *PlanetariumDomeHandler
	ShowSession     *ShowSessionHandler
	Reservation     *ReservationHandler
	Ticket          *TicketHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:            NewAuthHandler(service.Auth, log),
		ShowTheme:       NewShowThemeHandler(service.ShowTheme, log),
		AstronomyShow:   NewAstronomyShowHandler(service.AstronomyShow, log),
		PlanetariumDome: NewPlanetariumDomeHandler(service.PlanetariumDome, log),
		ShowSession:     NewShowSessionHandler(service.ShowSession, log),
		Reservation:     NewReservationHandler(service.Reservation, log),
		Ticket:          NewTicketHandler(service.Ticket, log),
	}
}

// handleServiceError maps service errors onto status codes by message:
// missing top-level records are 404, everything the caller can fix is 400,
// the rest is 500 with the message withheld.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "invalid"):
		log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "already"):
		log.Warn(operation+" failed - conflict",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// parsePagination reads ?page and ?per_page with sane defaults
func parsePagination(r *http.Request) *request.PaginatedRequest {
	query := r.URL.Query()
	return &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}
}
