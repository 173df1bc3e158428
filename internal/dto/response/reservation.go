package response

import (
	"time"

	"planetarium-booking/internal/data/entity"
	"planetarium-booking/internal/data/repository"
)

// ReservationResponse carries the immutable created_at and the tickets
// booked under the reservation. The owner never appears as a writable
// field; it is shown via the denormalized email only.
type ReservationResponse struct {
	ID         string           `json:"id"`
	CreatedAt  time.Time        `json:"created_at"`
	OwnerEmail string           `json:"owner_email"`
	Tickets    []TicketResponse `json:"tickets"`
}

func ReservationToResponse(row *repository.ReservationRow, tickets []*entity.Ticket) ReservationResponse {
	ticketResponses := make([]TicketResponse, len(tickets))
	for i, ticket := range tickets {
		ticketResponses[i] = TicketToResponse(ticket)
	}

	return ReservationResponse{
		ID:         row.ID.String(),
		CreatedAt:  row.CreatedAt,
		OwnerEmail: row.OwnerEmail,
		Tickets:    ticketResponses,
	}
}
