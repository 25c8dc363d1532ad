package entity

import "github.com/google/uuid"

// Movie carries a denormalized copy of the genre taken at create/update
// time. The snapshot does not follow later genre renames.
type Movie struct {
	Base
	Title           string    `db:"title"`
	GenreID         uuid.UUID `db:"genre_id"`
	GenreName       string    `db:"genre_name"`
	NumberInStock   int       `db:"number_in_stock"`
	DailyRentalRate float64   `db:"daily_rental_rate"`
}
