package request

type ShowThemeRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}
