package response

import "planetarium-booking/internal/data/entity"

// ShowThemeResponse is the single shape for every show theme action
type ShowThemeResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func ShowThemeToResponse(theme *entity.ShowTheme) ShowThemeResponse {
	return ShowThemeResponse{
		ID:   theme.ID.String(),
		Name: theme.Name,
	}
}
