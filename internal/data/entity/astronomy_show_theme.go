package entity

import "github.com/google/uuid"

type AstronomyShowTheme struct {
	BaseSimple
	AstronomyShowID uuid.UUID `db:"astronomy_show_id"`
	ShowThemeID     uuid.UUID `db:"show_theme_id"`
}
