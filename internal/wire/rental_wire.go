package wire

import (
	"video-rental/internal/adaptor"
	"video-rental/pkg/middleware"
	"video-rental/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRental(r chi.Router, rentalHandler *adaptor.RentalHandler, config *utils.Config, log *zap.Logger) {
	auth := middleware.Auth(config.JWT.Secret, log)

	r.Route("/api/rentals", func(r chi.Router) {
		r.Get("/", rentalHandler.GetRentals)

		r.With(auth).Post("/", rentalHandler.CreateRental)
	})
}
