package wire

import (
	"video-rental/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// POST /api/auth - login with email/password, public
	r.Post("/api/auth", authHandler.Login)
}
