package response

import "planetarium-booking/internal/data/entity"

// AstronomyShowResponse is the write shape: show_theme holds theme ids
type AstronomyShowResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ShowTheme   []string `json:"show_theme"`
}

// AstronomyShowListResponse flattens show_theme to plain theme names
type AstronomyShowListResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ShowTheme   []string `json:"show_theme"`
}

// AstronomyShowDetailResponse is the list shape plus nested theme objects
type AstronomyShowDetailResponse struct {
	AstronomyShowListResponse
	Themes []ShowThemeResponse `json:"themes"`
}

func AstronomyShowToResponse(show *entity.AstronomyShow, themes []*entity.ShowTheme) AstronomyShowResponse {
	themeIDs := make([]string, len(themes))
	for i, theme := range themes {
		themeIDs[i] = theme.ID.String()
	}

	return AstronomyShowResponse{
		ID:          show.ID.String(),
		Title:       show.Title,
		Description: show.Description,
		ShowTheme:   themeIDs,
	}
}

func AstronomyShowToListResponse(show *entity.AstronomyShow, themes []*entity.ShowTheme) AstronomyShowListResponse {
	themeNames := make([]string, len(themes))
	for i, theme := range themes {
		themeNames[i] = theme.Name
	}

	return AstronomyShowListResponse{
		ID:          show.ID.String(),
		Title:       show.Title,
		Description: show.Description,
		ShowTheme:   themeNames,
	}
}

func AstronomyShowToDetailResponse(show *entity.AstronomyShow, themes []*entity.ShowTheme) AstronomyShowDetailResponse {
	nested := make([]ShowThemeResponse, len(themes))
	for i, theme := range themes {
		nested[i] = ShowThemeToResponse(theme)
	}

	return AstronomyShowDetailResponse{
		AstronomyShowListResponse: AstronomyShowToListResponse(show, themes),
		Themes:                    nested,
	}
}
