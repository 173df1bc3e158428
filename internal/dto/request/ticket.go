package request

// TicketRequest carries plain foreign-key ids; the referenced session and
// reservation must already exist.
type TicketRequest struct {
	Row         int    `json:"row" validate:"required,gt=0"`
	Seat        int    `json:"seat" validate:"required,gt=0"`
	ShowSession string `json:"show_session" validate:"required,uuid4"`
	Reservation string `json:"reservation" validate:"required,uuid4"`
}
