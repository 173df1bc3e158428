package response

import "planetarium-booking/internal/data/entity"

type PlanetariumDomeResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Rows       int    `json:"rows"`
	SeatsInRow int    `json:"seats_in_row"`
	Capacity   int    `json:"capacity"`
}

func PlanetariumDomeToResponse(dome *entity.PlanetariumDome) PlanetariumDomeResponse {
	return PlanetariumDomeResponse{
		ID:         dome.ID.String(),
		Name:       dome.Name,
		Rows:       dome.Rows,
		SeatsInRow: dome.SeatsInRow,
		Capacity:   dome.Capacity(),
	}
}
