package wire

import (
	"video-rental/internal/adaptor"
	"video-rental/pkg/middleware"
	"video-rental/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler, config *utils.Config, log *zap.Logger) {
	auth := middleware.Auth(config.JWT.Secret, log)
	admin := middleware.Admin(log)

	r.Route("/api/users", func(r chi.Router) {
		r.Get("/", userHandler.GetUsers)

		// /me before /{id} so the literal wins
		r.With(auth).Get("/me", userHandler.GetMe)

		r.Get("/{id}", userHandler.GetUserByID)

		r.With(auth).Post("/", userHandler.CreateUser)
		r.With(auth).Put("/{id}", userHandler.UpdateUser)

		r.With(auth, admin).Delete("/{id}", userHandler.DeleteUser)
	})
}
