package wire

import (
	"video-rental/internal/adaptor"
	"video-rental/pkg/middleware"
	"video-rental/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler, config *utils.Config, log *zap.Logger) {
	auth := middleware.Auth(config.JWT.Secret, log)
	admin := middleware.Admin(log)

	r.Route("/api/movies", func(r chi.Router) {
		r.Get("/", movieHandler.GetMovies)
		r.Get("/{id}", movieHandler.GetMovieByID)

		r.With(auth).Post("/", movieHandler.CreateMovie)
		r.With(auth).Put("/{id}", movieHandler.UpdateMovie)

		r.With(auth, admin).Delete("/{id}", movieHandler.DeleteMovie)
	})
}
