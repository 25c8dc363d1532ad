package repository

import (
	"context"
	"fmt"

	"video-rental/internal/data/entity"
	"video-rental/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RentalRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Rental, error)
	FindAll(ctx context.Context) ([]*entity.Rental, error)
	// FindByCustomerAndMovie returns the most recent rental for the pair,
	// open or returned. Callers decide what a returned one means.
	FindByCustomerAndMovie(ctx context.Context, customerID, movieID uuid.UUID) (*entity.Rental, error)

	// CreateWithStock inserts the rental and decrements the movie stock in
	// one transaction. Fails when the movie has no stock left.
	CreateWithStock(ctx context.Context, rental *entity.Rental) error

	// CompleteReturn writes date_returned and rental_cost and increments the
	// movie stock in one transaction. The rental update predicates on
	// date_returned IS NULL, so a second return loses.
	CompleteReturn(ctx context.Context, rental *entity.Rental) error
}

type rentalRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRentalRepository(db database.PgxIface, log *zap.Logger) RentalRepository {
	return &rentalRepository{
		db:  db,
		log: log.With(zap.String("repository", "rental")),
	}
}

const rentalColumns = `
	id, customer_id, customer_name, customer_phone,
	movie_id, movie_title, daily_rental_rate,
	date_out, date_returned, rental_cost
`

func scanRental(row pgx.Row) (*entity.Rental, error) {
	var rental entity.Rental
	err := row.Scan(
		&rental.ID,
		&rental.CustomerID,
		&rental.CustomerName,
		&rental.CustomerPhone,
		&rental.MovieID,
		&rental.MovieTitle,
		&rental.DailyRentalRate,
		&rental.DateOut,
		&rental.DateReturned,
		&rental.RentalCost,
	)
	if err != nil {
		return nil, err
	}
	return &rental, nil
}

func (r *rentalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`

	rental, err := scanRental(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find rental by ID",
			zap.Error(err),
			zap.String("rental_id", id.String()),
		)
		return nil, fmt.Errorf("find rental by id: %w", err)
	}

	return rental, nil
}

func (r *rentalRepository) FindAll(ctx context.Context) ([]*entity.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals ORDER BY date_out DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all rentals", zap.Error(err))
		return nil, fmt.Errorf("find rentals: %w", err)
	}
	defer rows.Close()

	var rentals []*entity.Rental
	for rows.Next() {
		rental, err := scanRental(rows)
		if err != nil {
			r.log.Error("Failed to scan rental row", zap.Error(err))
			return nil, fmt.Errorf("scan rental: %w", err)
		}
		rentals = append(rentals, rental)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate rentals: %w", err)
	}

	return rentals, nil
}

func (r *rentalRepository) FindByCustomerAndMovie(ctx context.Context, customerID, movieID uuid.UUID) (*entity.Rental, error) {
	query := `
		SELECT ` + rentalColumns + `
		FROM rentals
		WHERE customer_id = $1 AND movie_id = $2
		ORDER BY date_out DESC
		LIMIT 1
	`

	rental, err := scanRental(r.db.QueryRow(ctx, query, customerID, movieID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find rental by pair",
			zap.Error(err),
			zap.String("customer_id", customerID.String()),
			zap.String("movie_id", movieID.String()),
		)
		return nil, fmt.Errorf("find rental by pair: %w", err)
	}

	return rental, nil
}

func (r *rentalRepository) CreateWithStock(ctx context.Context, rental *entity.Rental) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin checkout: %w", err)
	}
	defer tx.Rollback(ctx)

	stockQuery := `
		UPDATE movies
		SET number_in_stock = number_in_stock - 1, updated_at = NOW()
		WHERE id = $1 AND number_in_stock > 0
	`

	result, err := tx.Exec(ctx, stockQuery, rental.MovieID)
	if err != nil {
		r.log.Error("Failed to decrement movie stock",
			zap.Error(err),
			zap.String("movie_id", rental.MovieID.String()),
		)
		return fmt.Errorf("decrement stock: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie not in stock")
	}

	insertQuery := `
		INSERT INTO rentals (id, customer_id, customer_name, customer_phone,
		                     movie_id, movie_title, daily_rental_rate,
		                     date_out, date_returned, rental_cost)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err = tx.Exec(ctx, insertQuery,
		rental.ID,
		rental.CustomerID,
		rental.CustomerName,
		rental.CustomerPhone,
		rental.MovieID,
		rental.MovieTitle,
		rental.DailyRentalRate,
		rental.DateOut,
		rental.DateReturned,
		rental.RentalCost,
	)
	if err != nil {
		r.log.Error("Failed to create rental",
			zap.Error(err),
			zap.String("rental_id", rental.ID.String()),
		)
		return fmt.Errorf("create rental: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit checkout: %w", err)
	}

	r.log.Info("Rental created",
		zap.String("rental_id", rental.ID.String()),
		zap.String("movie_id", rental.MovieID.String()),
	)
	return nil
}

func (r *rentalRepository) CompleteReturn(ctx context.Context, rental *entity.Rental) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin return: %w", err)
	}
	defer tx.Rollback(ctx)

	returnQuery := `
		UPDATE rentals
		SET date_returned = $2, rental_cost = $3
		WHERE id = $1 AND date_returned IS NULL
	`

	result, err := tx.Exec(ctx, returnQuery, rental.ID, rental.DateReturned, rental.RentalCost)
	if err != nil {
		r.log.Error("Failed to mark rental returned",
			zap.Error(err),
			zap.String("rental_id", rental.ID.String()),
		)
		return fmt.Errorf("mark rental returned: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("rental already processed")
	}

	stockQuery := `
		UPDATE movies
		SET number_in_stock = number_in_stock + 1, updated_at = NOW()
		WHERE id = $1
	`

	if _, err := tx.Exec(ctx, stockQuery, rental.MovieID); err != nil {
		r.log.Error("Failed to increment movie stock",
			zap.Error(err),
			zap.String("movie_id", rental.MovieID.String()),
		)
		return fmt.Errorf("increment stock: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit return: %w", err)
	}

	r.log.Info("Rental returned",
		zap.String("rental_id", rental.ID.String()),
		zap.String("movie_id", rental.MovieID.String()),
	)
	return nil
}
