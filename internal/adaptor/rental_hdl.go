package adaptor

import (
	"encoding/json"
	"net/http"

	"video-rental/internal/dto/request"
	"video-rental/internal/usecase"
	"video-rental/pkg/utils"

	"go.uber.org/zap"
)

type RentalHandler struct {
	service usecase.RentalService
	log     *zap.Logger
}

func NewRentalHandler(service usecase.RentalService, log *zap.Logger) *RentalHandler {
	return &RentalHandler{
		service: service,
		log:     log.With(zap.String("handler", "rental")),
	}
}

// GetRentals handles GET /api/rentals
func (h *RentalHandler) GetRentals(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.service.GetRentals(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get rentals")
		return
	}

	utils.ResponseSuccess(w, rentals)
}

// CreateRental handles POST /api/rentals
func (h *RentalHandler) CreateRental(w http.ResponseWriter, r *http.Request) {
	var req request.RentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	rental, err := h.service.CreateRental(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create rental")
		return
	}

	utils.ResponseSuccess(w, rental)
}
