package adaptor

import (
	"encoding/json"
	"net/http"

	"video-rental/internal/dto/request"
	"video-rental/internal/usecase"
	"video-rental/pkg/utils"

	"go.uber.org/zap"
)

type ReturnHandler struct {
	service usecase.RentalService
	log     *zap.Logger
}

func NewReturnHandler(service usecase.RentalService, log *zap.Logger) *ReturnHandler {
	return &ReturnHandler{
		service: service,
		log:     log.With(zap.String("handler", "return")),
	}
}

// ProcessReturn handles POST /api/returns: the single business rule of
// the system. Closes the open rental for a customer/movie pair.
func (h *ReturnHandler) ProcessReturn(w http.ResponseWriter, r *http.Request) {
	var req request.ReturnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	rental, err := h.service.ReturnRental(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "process return")
		return
	}

	utils.ResponseSuccess(w, rental)
}
