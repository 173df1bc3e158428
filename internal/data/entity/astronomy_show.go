package entity

// AstronomyShow is a catalog entry; themes attach through AstronomyShowTheme
type AstronomyShow struct {
	Base
	Title       string `db:"title"`
	Description string `db:"description"`
}

func (s AstronomyShow) String() string {
	return s.Title
}
