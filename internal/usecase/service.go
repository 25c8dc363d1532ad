package usecase

import (
	"video-rental/internal/data/repository"
	"video-rental/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	Customer CustomerService
	Genre    GenreService
	Movie    MovieService
	User     UserService
	Rental   RentalService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(repo, config, log),
		Customer: NewCustomerService(repo.Customer, log),
		Genre:    NewGenreService(repo.Genre, log),
		Movie:    NewMovieService(repo, log),
		User:     NewUserService(repo.User, log),
		Rental:   NewRentalService(repo, log),
	}
}
