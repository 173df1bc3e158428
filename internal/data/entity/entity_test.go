package entity_test

import (
	"testing"

	"planetarium-booking/internal/data/entity"

	"github.com/stretchr/testify/assert"
)

func TestShowThemeString(t *testing.T) {
	theme := entity.ShowTheme{Name: "Nebulae"}
	assert.Equal(t, "Nebulae", theme.String())
}

func TestAstronomyShowString(t *testing.T) {
	show := entity.AstronomyShow{Title: "Journey to Mars"}
	assert.Equal(t, "Journey to Mars", show.String())
}

func TestPlanetariumDomeCapacity(t *testing.T) {
	dome := entity.PlanetariumDome{Rows: 5, SeatsInRow: 8}
	assert.Equal(t, 40, dome.Capacity())

	empty := entity.PlanetariumDome{}
	assert.Equal(t, 0, empty.Capacity())
}
