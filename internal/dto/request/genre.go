package request

type GenreRequest struct {
	Name string `json:"name" validate:"required,min=5,max=50"`
}
