package request

type ShowSessionRequest struct {
	AstronomyShow   string `json:"astronomy_show" validate:"required,uuid4"`
	PlanetariumDome string `json:"planetarium_dome" validate:"required,uuid4"`
	ShowTime        string `json:"show_time" validate:"required"`
}
