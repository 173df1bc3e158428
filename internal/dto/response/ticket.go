package response

import (
	"time"

	"planetarium-booking/internal/data/entity"
	"planetarium-booking/internal/data/repository"
)

// TicketResponse is the write shape with plain foreign-key ids
type TicketResponse struct {
	ID          string `json:"id"`
	Row         int    `json:"row"`
	Seat        int    `json:"seat"`
	ShowSession string `json:"show_session"`
	Reservation string `json:"reservation"`
}

// TicketListResponse denormalizes show and owner identifying fields
type TicketListResponse struct {
	ID         string    `json:"id"`
	Row        int       `json:"row"`
	Seat       int       `json:"seat"`
	ShowTitle  string    `json:"show_title"`
	ShowTime   time.Time `json:"show_time"`
	OwnerEmail string    `json:"owner_email"`
}

// TicketSessionDetail is the session as nested in a ticket retrieve
type TicketSessionDetail struct {
	ID                  string    `json:"id"`
	AstronomyShowTitle  string    `json:"astronomy_show_title"`
	PlanetariumDomeName string    `json:"planetarium_dome_name"`
	ShowTime            time.Time `json:"show_time"`
}

// TicketReservationDetail is the reservation as nested in a ticket retrieve
type TicketReservationDetail struct {
	ID         string    `json:"id"`
	OwnerEmail string    `json:"owner_email"`
	CreatedAt  time.Time `json:"created_at"`
}

// TicketDetailResponse is the richest nested read shape
type TicketDetailResponse struct {
	ID          string                  `json:"id"`
	Row         int                     `json:"row"`
	Seat        int                     `json:"seat"`
	ShowSession TicketSessionDetail     `json:"show_session"`
	Reservation TicketReservationDetail `json:"reservation"`
}

func TicketToResponse(ticket *entity.Ticket) TicketResponse {
	return TicketResponse{
		ID:          ticket.ID.String(),
		Row:         ticket.Row,
		Seat:        ticket.Seat,
		ShowSession: ticket.ShowSessionID.String(),
		Reservation: ticket.ReservationID.String(),
	}
}

func TicketToListResponse(row *repository.TicketListRow) TicketListResponse {
	return TicketListResponse{
		ID:         row.ID.String(),
		Row:        row.Row,
		Seat:       row.Seat,
		ShowTitle:  row.ShowTitle,
		ShowTime:   row.ShowTime,
		OwnerEmail: row.OwnerEmail,
	}
}

func TicketToDetailResponse(row *repository.TicketDetailRow) TicketDetailResponse {
	return TicketDetailResponse{
		ID:   row.ID.String(),
		Row:  row.Row,
		Seat: row.Seat,
		ShowSession: TicketSessionDetail{
			ID:                  row.ShowSessionID.String(),
			AstronomyShowTitle:  row.ShowTitle,
			PlanetariumDomeName: row.DomeName,
			ShowTime:            row.ShowTime,
		},
		Reservation: TicketReservationDetail{
			ID:         row.ReservationID.String(),
			OwnerEmail: row.OwnerEmail,
			CreatedAt:  row.ReservationCreatedAt,
		},
	}
}
