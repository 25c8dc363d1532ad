package wire

import (
	"video-rental/internal/adaptor"
	"video-rental/pkg/middleware"
	"video-rental/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireGenre(r chi.Router, genreHandler *adaptor.GenreHandler, config *utils.Config, log *zap.Logger) {
	auth := middleware.Auth(config.JWT.Secret, log)
	admin := middleware.Admin(log)

	r.Route("/api/genres", func(r chi.Router) {
		r.Get("/", genreHandler.GetGenres)
		r.Get("/{id}", genreHandler.GetGenreByID)

		r.With(auth).Post("/", genreHandler.CreateGenre)
		r.With(auth).Put("/{id}", genreHandler.UpdateGenre)

		r.With(auth, admin).Delete("/{id}", genreHandler.DeleteGenre)
	})
}
