package usecase

import (
	"context"
	"fmt"
	"time"

	"video-rental/internal/data/entity"
	"video-rental/internal/data/repository"
	"video-rental/internal/dto/request"
	"video-rental/internal/dto/response"
	"video-rental/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CustomerService interface {
	GetCustomers(ctx context.Context) ([]response.CustomerResponse, error)
	GetCustomerByID(ctx context.Context, customerID string) (*response.CustomerResponse, error)
	CreateCustomer(ctx context.Context, req *request.CustomerRequest) (*response.CustomerResponse, error)
	UpdateCustomer(ctx context.Context, customerID string, req *request.CustomerRequest) (*response.CustomerResponse, error)
	DeleteCustomer(ctx context.Context, customerID string) (*response.CustomerResponse, error)
}

type customerService struct {
	repo repository.CustomerRepository
	log  *zap.Logger
}

func NewCustomerService(repo repository.CustomerRepository, log *zap.Logger) CustomerService {
	return &customerService{
		repo: repo,
		log:  log.With(zap.String("service", "customer")),
	}
}

func (s *customerService) GetCustomers(ctx context.Context) ([]response.CustomerResponse, error) {
	customers, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get customers: %w", err)
	}

	return response.CustomersToResponse(customers), nil
}

func (s *customerService) GetCustomerByID(ctx context.Context, customerID string) (*response.CustomerResponse, error) {
	customer, err := s.findCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	resp := response.CustomerToResponse(customer)
	return &resp, nil
}

func (s *customerService) CreateCustomer(ctx context.Context, req *request.CustomerRequest) (*response.CustomerResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create customer validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	customer := &entity.Customer{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:   req.Name,
		Phone:  req.Phone,
		IsGold: req.IsGold,
	}

	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}

	s.log.Info("Customer created",
		zap.String("customer_id", customer.ID.String()),
		zap.String("name", customer.Name),
	)

	resp := response.CustomerToResponse(customer)
	return &resp, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, customerID string, req *request.CustomerRequest) (*response.CustomerResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update customer validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	customer, err := s.findCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	customer.Name = req.Name
	customer.Phone = req.Phone
	customer.IsGold = req.IsGold
	customer.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, customer); err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}

	resp := response.CustomerToResponse(customer)
	return &resp, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, customerID string) (*response.CustomerResponse, error) {
	customer, err := s.findCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, customer.ID); err != nil {
		return nil, fmt.Errorf("delete customer: %w", err)
	}

	// Echo the deleted record's prior state
	resp := response.CustomerToResponse(customer)
	return &resp, nil
}

// findCustomer resolves a path id to an existing customer. A malformed id
// is indistinguishable from a missing one: both read as not found.
func (s *customerService) findCustomer(ctx context.Context, customerID string) (*entity.Customer, error) {
	id, err := uuid.Parse(customerID)
	if err != nil {
		return nil, fmt.Errorf("customer not found")
	}

	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find customer: %w", err)
	}
	if customer == nil {
		return nil, fmt.Errorf("customer not found")
	}

	return customer, nil
}
