package adaptor

import (
	"encoding/json"
	"net/http"

	"video-rental/internal/dto/request"
	"video-rental/internal/usecase"
	"video-rental/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type GenreHandler struct {
	service usecase.GenreService
	log     *zap.Logger
}

func NewGenreHandler(service usecase.GenreService, log *zap.Logger) *GenreHandler {
	return &GenreHandler{
		service: service,
		log:     log.With(zap.String("handler", "genre")),
	}
}

// GetGenres handles GET /api/genres
func (h *GenreHandler) GetGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.service.GetGenres(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get genres")
		return
	}

	utils.ResponseSuccess(w, genres)
}

// GetGenreByID handles GET /api/genres/{id}
func (h *GenreHandler) GetGenreByID(w http.ResponseWriter, r *http.Request) {
	genre, err := h.service.GetGenreByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get genre by ID")
		return
	}

	utils.ResponseSuccess(w, genre)
}

// CreateGenre handles POST /api/genres
func (h *GenreHandler) CreateGenre(w http.ResponseWriter, r *http.Request) {
	var req request.GenreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	genre, err := h.service.CreateGenre(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create genre")
		return
	}

	utils.ResponseSuccess(w, genre)
}

// UpdateGenre handles PUT /api/genres/{id}
func (h *GenreHandler) UpdateGenre(w http.ResponseWriter, r *http.Request) {
	var req request.GenreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	genre, err := h.service.UpdateGenre(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update genre")
		return
	}

	utils.ResponseSuccess(w, genre)
}

// DeleteGenre handles DELETE /api/genres/{id} (admin only)
func (h *GenreHandler) DeleteGenre(w http.ResponseWriter, r *http.Request) {
	genre, err := h.service.DeleteGenre(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "delete genre")
		return
	}

	utils.ResponseSuccess(w, genre)
}
