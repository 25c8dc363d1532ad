package request

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,min=5,max=255"`
	Password string `json:"password" validate:"required,min=5,max=1024"`
}
