package request

type AstronomyShowRequest struct {
	Title       string   `json:"title" validate:"required,min=1,max=255"`
	Description string   `json:"description" validate:"required"`
	ShowTheme   []string `json:"show_theme,omitempty" validate:"dive,uuid4"`
}
