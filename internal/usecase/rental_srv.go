package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"video-rental/internal/data/entity"
	"video-rental/internal/data/repository"
	"video-rental/internal/dto/request"
	"video-rental/internal/dto/response"
	"video-rental/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RentalService interface {
	GetRentals(ctx context.Context) ([]response.RentalResponse, error)
	CreateRental(ctx context.Context, req *request.RentalRequest) (*response.RentalResponse, error)
	ReturnRental(ctx context.Context, req *request.ReturnRequest) (*response.RentalResponse, error)
}

type rentalService struct {
	repo *repository.Repository
	log  *zap.Logger

	// now is swappable for tests
	now func() time.Time
}

func NewRentalService(repo *repository.Repository, log *zap.Logger) RentalService {
	return &rentalService{
		repo: repo,
		log:  log.With(zap.String("service", "rental")),
		now:  time.Now,
	}
}

func (s *rentalService) GetRentals(ctx context.Context) ([]response.RentalResponse, error) {
	rentals, err := s.repo.Rental.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get rentals: %w", err)
	}

	return response.RentalsToResponse(rentals), nil
}

func (s *rentalService) CreateRental(ctx context.Context, req *request.RentalRequest) (*response.RentalResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create rental validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("invalid customer id")
	}
	movieID, err := uuid.Parse(req.MovieID)
	if err != nil {
		return nil, fmt.Errorf("invalid movie id")
	}

	customer, err := s.repo.Customer.FindByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("find customer: %w", err)
	}
	if customer == nil {
		return nil, fmt.Errorf("invalid customer id")
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("invalid movie id")
	}

	if movie.NumberInStock == 0 {
		return nil, fmt.Errorf("movie not in stock")
	}

	// Freeze the customer and movie fields the way they are now
	rental := &entity.Rental{
		ID:              uuid.New(),
		CustomerID:      customer.ID,
		CustomerName:    customer.Name,
		CustomerPhone:   customer.Phone,
		MovieID:         movie.ID,
		MovieTitle:      movie.Title,
		DailyRentalRate: movie.DailyRentalRate,
		DateOut:         s.now(),
	}

	if err := s.repo.Rental.CreateWithStock(ctx, rental); err != nil {
		return nil, fmt.Errorf("create rental: %w", err)
	}

	s.log.Info("Rental opened",
		zap.String("rental_id", rental.ID.String()),
		zap.String("customer_id", customer.ID.String()),
		zap.String("movie_id", movie.ID.String()),
	)

	resp := response.RentalToResponse(rental)
	return &resp, nil
}

func (s *rentalService) ReturnRental(ctx context.Context, req *request.ReturnRequest) (*response.RentalResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Return validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("rental not found")
	}
	movieID, err := uuid.Parse(req.MovieID)
	if err != nil {
		return nil, fmt.Errorf("rental not found")
	}

	rental, err := s.repo.Rental.FindByCustomerAndMovie(ctx, customerID, movieID)
	if err != nil {
		return nil, fmt.Errorf("find rental: %w", err)
	}
	if rental == nil {
		return nil, fmt.Errorf("rental not found")
	}

	// One-way transition guard; the repository re-checks inside the transaction
	if rental.Returned() {
		return nil, fmt.Errorf("rental already processed")
	}

	returnedAt := s.now()
	cost := RentalCost(rental.DateOut, returnedAt, rental.DailyRentalRate)

	rental.DateReturned = &returnedAt
	rental.RentalCost = &cost

	if err := s.repo.Rental.CompleteReturn(ctx, rental); err != nil {
		return nil, fmt.Errorf("complete return: %w", err)
	}

	s.log.Info("Rental returned",
		zap.String("rental_id", rental.ID.String()),
		zap.Float64("rental_cost", cost),
	)

	resp := response.RentalToResponse(rental)
	return &resp, nil
}

// RentalCost charges full days: any started day counts, and the rate is
// the one frozen on the rental, immune to later movie rate changes.
func RentalCost(dateOut, dateReturned time.Time, dailyRate float64) float64 {
	days := math.Ceil(dateReturned.Sub(dateOut).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return days * dailyRate
}
