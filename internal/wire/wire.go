package wire

import (
	"net/http"

	"video-rental/internal/adaptor"
	"video-rental/internal/data/repository"
	"video-rental/internal/usecase"
	"video-rental/pkg/middleware"
	"video-rental/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and the router
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the chi router
func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))

	// Routes
	wireAuth(r, handler.Auth)
	wireCustomer(r, handler.Customer, config, logger)
	wireGenre(r, handler.Genre, config, logger)
	wireMovie(r, handler.Movie, config, logger)
	wireUser(r, handler.User, config, logger)
	wireRental(r, handler.Rental, config, logger)
	wireReturn(r, handler.Return, config, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
