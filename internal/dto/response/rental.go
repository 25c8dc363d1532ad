package response

import (
	"time"

	"video-rental/internal/data/entity"
)

type RentalResponse struct {
	ID           string           `json:"id"`
	Customer     CustomerSnapshot `json:"customer"`
	Movie        MovieSnapshot    `json:"movie"`
	DateOut      time.Time        `json:"dateOut"`
	DateReturned *time.Time       `json:"dateReturned"`
	RentalCost   *float64         `json:"rentalCost"`
}

type CustomerSnapshot struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type MovieSnapshot struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	DailyRentalRate float64 `json:"dailyRentalRate"`
}

func RentalToResponse(rental *entity.Rental) RentalResponse {
	return RentalResponse{
		ID: rental.ID.String(),
		Customer: CustomerSnapshot{
			ID:    rental.CustomerID.String(),
			Name:  rental.CustomerName,
			Phone: rental.CustomerPhone,
		},
		Movie: MovieSnapshot{
			ID:              rental.MovieID.String(),
			Title:           rental.MovieTitle,
			DailyRentalRate: rental.DailyRentalRate,
		},
		DateOut:      rental.DateOut,
		DateReturned: rental.DateReturned,
		RentalCost:   rental.RentalCost,
	}
}

func RentalsToResponse(rentals []*entity.Rental) []RentalResponse {
	out := make([]RentalResponse, len(rentals))
	for i, rental := range rentals {
		out[i] = RentalToResponse(rental)
	}
	return out
}
