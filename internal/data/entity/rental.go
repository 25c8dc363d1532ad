package entity

import (
	"time"

	"github.com/google/uuid"
)

// Rental freezes customer and movie fields at checkout time. The cost is
// computed once, at return, from the frozen daily rate.
type Rental struct {
	ID uuid.UUID `db:"id"`

	// Customer snapshot
	CustomerID    uuid.UUID `db:"customer_id"`
	CustomerName  string    `db:"customer_name"`
	CustomerPhone string    `db:"customer_phone"`

	// Movie snapshot
	MovieID         uuid.UUID `db:"movie_id"`
	MovieTitle      string    `db:"movie_title"`
	DailyRentalRate float64   `db:"daily_rental_rate"`

	DateOut      time.Time  `db:"date_out"`
	DateReturned *time.Time `db:"date_returned"`
	RentalCost   *float64   `db:"rental_cost"`
}

// Returned reports whether the rental reached its terminal state
func (r *Rental) Returned() bool {
	return r.DateReturned != nil
}
