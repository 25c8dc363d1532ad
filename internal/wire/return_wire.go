package wire

import (
	"video-rental/internal/adaptor"
	"video-rental/pkg/middleware"
	"video-rental/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReturn(r chi.Router, returnHandler *adaptor.ReturnHandler, config *utils.Config, log *zap.Logger) {
	auth := middleware.Auth(config.JWT.Secret, log)

	// POST /api/returns - close an open rental
	r.With(auth).Post("/api/returns", returnHandler.ProcessReturn)
}
