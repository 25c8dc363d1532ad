package repository

import (
	"video-rental/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Customer CustomerRepository
	Genre    GenreRepository
	Movie    MovieRepository
	User     UserRepository
	Rental   RentalRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Customer: NewCustomerRepository(db, log),
		Genre:    NewGenreRepository(db, log),
		Movie:    NewMovieRepository(db, log),
		User:     NewUserRepository(db, log),
		Rental:   NewRentalRepository(db, log),
	}
}
