package entity

import "github.com/google/uuid"

// Reservation is always owned by the user that created it; created_at is
// set once and never updated.
type Reservation struct {
	BaseSimple
	UserID uuid.UUID `db:"user_id"`
}
