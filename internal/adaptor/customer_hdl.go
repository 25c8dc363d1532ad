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

type CustomerHandler struct {
	service usecase.CustomerService
	log     *zap.Logger
}

func NewCustomerHandler(service usecase.CustomerService, log *zap.Logger) *CustomerHandler {
	return &CustomerHandler{
		service: service,
		log:     log.With(zap.String("handler", "customer")),
	}
}

// GetCustomers handles GET /api/customers
func (h *CustomerHandler) GetCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.service.GetCustomers(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get customers")
		return
	}

	utils.ResponseSuccess(w, customers)
}

// GetCustomerByID handles GET /api/customers/{id}
func (h *CustomerHandler) GetCustomerByID(w http.ResponseWriter, r *http.Request) {
	customer, err := h.service.GetCustomerByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get customer by ID")
		return
	}

	utils.ResponseSuccess(w, customer)
}

// CreateCustomer handles POST /api/customers
func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req request.CustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	customer, err := h.service.CreateCustomer(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create customer")
		return
	}

	utils.ResponseSuccess(w, customer)
}

// UpdateCustomer handles PUT /api/customers/{id}
func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	var req request.CustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	customer, err := h.service.UpdateCustomer(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update customer")
		return
	}

	utils.ResponseSuccess(w, customer)
}

// DeleteCustomer handles DELETE /api/customers/{id} (admin only)
func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	customer, err := h.service.DeleteCustomer(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "delete customer")
		return
	}

	utils.ResponseSuccess(w, customer)
}
