package response

import (
	"time"

	"planetarium-booking/internal/data/entity"
	"planetarium-booking/internal/data/repository"
)

// ShowSessionResponse is the write shape with plain foreign-key ids
type ShowSessionResponse struct {
	ID              string    `json:"id"`
	AstronomyShow   string    `json:"astronomy_show"`
	PlanetariumDome string    `json:"planetarium_dome"`
	ShowTime        time.Time `json:"show_time"`
}

// ShowSessionListResponse carries denormalized display fields
type ShowSessionListResponse struct {
	ID                  string    `json:"id"`
	AstronomyShowTitle  string    `json:"astronomy_show_title"`
	PlanetariumDomeName string    `json:"planetarium_dome_name"`
	ShowTime            time.Time `json:"show_time"`
}

// ShowSessionDetailResponse nests the show (with themes) and the dome
type ShowSessionDetailResponse struct {
	ID              string                      `json:"id"`
	AstronomyShow   AstronomyShowDetailResponse `json:"astronomy_show"`
	PlanetariumDome PlanetariumDomeResponse     `json:"planetarium_dome"`
	ShowTime        time.Time                   `json:"show_time"`
}

func ShowSessionToResponse(session *entity.ShowSession) ShowSessionResponse {
	return ShowSessionResponse{
		ID:              session.ID.String(),
		AstronomyShow:   session.AstronomyShowID.String(),
		PlanetariumDome: session.PlanetariumDomeID.String(),
		ShowTime:        session.ShowTime,
	}
}

func ShowSessionToListResponse(row *repository.ShowSessionListRow) ShowSessionListResponse {
	return ShowSessionListResponse{
		ID:                  row.ID.String(),
		AstronomyShowTitle:  row.ShowTitle,
		PlanetariumDomeName: row.DomeName,
		ShowTime:            row.ShowTime,
	}
}

func ShowSessionToDetailResponse(row *repository.ShowSessionDetailRow, themes []*entity.ShowTheme) ShowSessionDetailResponse {
	return ShowSessionDetailResponse{
		ID:              row.ID.String(),
		AstronomyShow:   AstronomyShowToDetailResponse(&row.Show, themes),
		PlanetariumDome: PlanetariumDomeToResponse(&row.Dome),
		ShowTime:        row.ShowTime,
	}
}
