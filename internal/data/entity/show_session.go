package entity

import (
	"time"

	"github.com/google/uuid"
)

type ShowSession struct {
	Base
	AstronomyShowID   uuid.UUID `db:"astronomy_show_id"`
	PlanetariumDomeID uuid.UUID `db:"planetarium_dome_id"`
	ShowTime          time.Time `db:"show_time"`
}
