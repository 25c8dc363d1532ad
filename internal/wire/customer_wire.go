package wire

import (
	"video-rental/internal/adaptor"
	"video-rental/pkg/middleware"
	"video-rental/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCustomer(r chi.Router, customerHandler *adaptor.CustomerHandler, config *utils.Config, log *zap.Logger) {
	auth := middleware.Auth(config.JWT.Secret, log)
	admin := middleware.Admin(log)

	r.Route("/api/customers", func(r chi.Router) {
		// Public reads
		r.Get("/", customerHandler.GetCustomers)
		r.Get("/{id}", customerHandler.GetCustomerByID)

		// Writes need a valid token
		r.With(auth).Post("/", customerHandler.CreateCustomer)
		r.With(auth).Put("/{id}", customerHandler.UpdateCustomer)

		// Deletes need the admin flag
		r.With(auth, admin).Delete("/{id}", customerHandler.DeleteCustomer)
	})
}
