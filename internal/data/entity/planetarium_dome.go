package entity

// PlanetariumDome describes the venue layout as rows of equal length
type PlanetariumDome struct {
	Base
	Name       string `db:"name"`
	Rows       int    `db:"rows"`
	SeatsInRow int    `db:"seats_in_row"`
}

func (d PlanetariumDome) Capacity() int {
	return d.Rows * d.SeatsInRow
}
