package entity

import "github.com/google/uuid"

type Ticket struct {
	Base
	Row           int       `db:"row"`
	Seat          int       `db:"seat"`
	ShowSessionID uuid.UUID `db:"show_session_id"`
	ReservationID uuid.UUID `db:"reservation_id"`
}
