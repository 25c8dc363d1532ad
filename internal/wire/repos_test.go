package wire_test

import (
	"context"
	"fmt"

	"video-rental/internal/data/entity"

	"github.com/google/uuid"
)

// In-memory repositories standing in for the pgx ones, so the router can be
// exercised end to end without a database.

type memCustomerRepo struct {
	customers map[uuid.UUID]*entity.Customer
}

func (m *memCustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	cp := *c
	m.customers[c.ID] = &cp
	return nil
}

func (m *memCustomerRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	c, ok := m.customers[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (m *memCustomerRepo) FindAll(ctx context.Context) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range m.customers {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memCustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	if _, ok := m.customers[c.ID]; !ok {
		return fmt.Errorf("customer not found")
	}
	cp := *c
	m.customers[c.ID] = &cp
	return nil
}

func (m *memCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.customers[id]; !ok {
		return fmt.Errorf("customer not found")
	}
	delete(m.customers, id)
	return nil
}

type memGenreRepo struct {
	genres map[uuid.UUID]*entity.Genre
}

func (m *memGenreRepo) Create(ctx context.Context, g *entity.Genre) error {
	cp := *g
	m.genres[g.ID] = &cp
	return nil
}

func (m *memGenreRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Genre, error) {
	g, ok := m.genres[id]
	if !ok {
		return nil, nil
	}
	cp := *g
	return &cp, nil
}

func (m *memGenreRepo) FindAll(ctx context.Context) ([]*entity.Genre, error) {
	var out []*entity.Genre
	for _, g := range m.genres {
		cp := *g
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memGenreRepo) Update(ctx context.Context, g *entity.Genre) error {
	if _, ok := m.genres[g.ID]; !ok {
		return fmt.Errorf("genre not found")
	}
	cp := *g
	m.genres[g.ID] = &cp
	return nil
}

func (m *memGenreRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.genres[id]; !ok {
		return fmt.Errorf("genre not found")
	}
	delete(m.genres, id)
	return nil
}

type memMovieRepo struct {
	movies map[uuid.UUID]*entity.Movie
}

func (m *memMovieRepo) Create(ctx context.Context, mv *entity.Movie) error {
	cp := *mv
	m.movies[mv.ID] = &cp
	return nil
}

func (m *memMovieRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	mv, ok := m.movies[id]
	if !ok {
		return nil, nil
	}
	cp := *mv
	return &cp, nil
}

func (m *memMovieRepo) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	var out []*entity.Movie
	for _, mv := range m.movies {
		cp := *mv
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memMovieRepo) Update(ctx context.Context, mv *entity.Movie) error {
	if _, ok := m.movies[mv.ID]; !ok {
		return fmt.Errorf("movie not found")
	}
	cp := *mv
	m.movies[mv.ID] = &cp
	return nil
}

func (m *memMovieRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.movies[id]; !ok {
		return fmt.Errorf("movie not found")
	}
	delete(m.movies, id)
	return nil
}

type memUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func (m *memUserRepo) Create(ctx context.Context, u *entity.User) error {
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *memUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *memUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) FindAll(ctx context.Context) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range m.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memUserRepo) Update(ctx context.Context, u *entity.User) error {
	if _, ok := m.users[u.ID]; !ok {
		return fmt.Errorf("user not found")
	}
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *memUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.users[id]; !ok {
		return fmt.Errorf("user not found")
	}
	delete(m.users, id)
	return nil
}

// memRentalRepo keeps the stock coupling of the transactional repo.
type memRentalRepo struct {
	rentals map[uuid.UUID]*entity.Rental
	movies  *memMovieRepo
}

func (m *memRentalRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Rental, error) {
	r, ok := m.rentals[id]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (m *memRentalRepo) FindAll(ctx context.Context) ([]*entity.Rental, error) {
	var out []*entity.Rental
	for _, r := range m.rentals {
		cp := *r
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memRentalRepo) FindByCustomerAndMovie(ctx context.Context, customerID, movieID uuid.UUID) (*entity.Rental, error) {
	var latest *entity.Rental
	for _, r := range m.rentals {
		if r.CustomerID != customerID || r.MovieID != movieID {
			continue
		}
		if latest == nil || r.DateOut.After(latest.DateOut) {
			latest = r
		}
	}
	if latest == nil {
		return nil, nil
	}
	cp := *latest
	return &cp, nil
}

func (m *memRentalRepo) CreateWithStock(ctx context.Context, rental *entity.Rental) error {
	movie, ok := m.movies.movies[rental.MovieID]
	if !ok || movie.NumberInStock <= 0 {
		return fmt.Errorf("movie not in stock")
	}
	movie.NumberInStock--

	cp := *rental
	m.rentals[rental.ID] = &cp
	return nil
}

func (m *memRentalRepo) CompleteReturn(ctx context.Context, rental *entity.Rental) error {
	stored, ok := m.rentals[rental.ID]
	if !ok || stored.Returned() {
		return fmt.Errorf("rental already processed")
	}

	cp := *rental
	m.rentals[rental.ID] = &cp

	if movie, ok := m.movies.movies[rental.MovieID]; ok {
		movie.NumberInStock++
	}
	return nil
}
