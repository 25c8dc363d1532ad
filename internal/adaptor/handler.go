package adaptor

import (
	"video-rental/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	Customer *CustomerHandler
	Genre    *GenreHandler
	Movie    *MovieHandler
	User     *UserHandler
	Rental   *RentalHandler
	Return   *ReturnHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		Customer: NewCustomerHandler(service.Customer, log),
		Genre:    NewGenreHandler(service.Genre, log),
		Movie:    NewMovieHandler(service.Movie, log),
		User:     NewUserHandler(service.User, service.Auth, log),
		Rental:   NewRentalHandler(service.Rental, log),
		Return:   NewReturnHandler(service.Rental, log),
	}
}
