package usecase

import (
	"context"
	"fmt"

	"video-rental/internal/data/entity"

	"github.com/google/uuid"
)

// In-memory repositories backing the service tests.

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)}
}

func (f *fakeCustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	cp := *c
	f.customers[c.ID] = &cp
	return nil
}

func (f *fakeCustomerRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	c, ok := f.customers[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCustomerRepo) FindAll(ctx context.Context) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range f.customers {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeCustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	if _, ok := f.customers[c.ID]; !ok {
		return fmt.Errorf("customer not found")
	}
	cp := *c
	f.customers[c.ID] = &cp
	return nil
}

func (f *fakeCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.customers[id]; !ok {
		return fmt.Errorf("customer not found")
	}
	delete(f.customers, id)
	return nil
}

type fakeGenreRepo struct {
	genres map[uuid.UUID]*entity.Genre
}

func newFakeGenreRepo() *fakeGenreRepo {
	return &fakeGenreRepo{genres: make(map[uuid.UUID]*entity.Genre)}
}

func (f *fakeGenreRepo) Create(ctx context.Context, g *entity.Genre) error {
	cp := *g
	f.genres[g.ID] = &cp
	return nil
}

func (f *fakeGenreRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Genre, error) {
	g, ok := f.genres[id]
	if !ok {
		return nil, nil
	}
	cp := *g
	return &cp, nil
}

func (f *fakeGenreRepo) FindAll(ctx context.Context) ([]*entity.Genre, error) {
	var out []*entity.Genre
	for _, g := range f.genres {
		cp := *g
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeGenreRepo) Update(ctx context.Context, g *entity.Genre) error {
	if _, ok := f.genres[g.ID]; !ok {
		return fmt.Errorf("genre not found")
	}
	cp := *g
	f.genres[g.ID] = &cp
	return nil
}

func (f *fakeGenreRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.genres[id]; !ok {
		return fmt.Errorf("genre not found")
	}
	delete(f.genres, id)
	return nil
}

type fakeMovieRepo struct {
	movies map[uuid.UUID]*entity.Movie
}

func newFakeMovieRepo() *fakeMovieRepo {
	return &fakeMovieRepo{movies: make(map[uuid.UUID]*entity.Movie)}
}

func (f *fakeMovieRepo) Create(ctx context.Context, m *entity.Movie) error {
	cp := *m
	f.movies[m.ID] = &cp
	return nil
}

func (f *fakeMovieRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	m, ok := f.movies[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (f *fakeMovieRepo) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	var out []*entity.Movie
	for _, m := range f.movies {
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeMovieRepo) Update(ctx context.Context, m *entity.Movie) error {
	if _, ok := f.movies[m.ID]; !ok {
		return fmt.Errorf("movie not found")
	}
	cp := *m
	f.movies[m.ID] = &cp
	return nil
}

func (f *fakeMovieRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.movies[id]; !ok {
		return fmt.Errorf("movie not found")
	}
	delete(f.movies, id)
	return nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *entity.User) error {
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(ctx context.Context) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, u *entity.User) error {
	if _, ok := f.users[u.ID]; !ok {
		return fmt.Errorf("user not found")
	}
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.users[id]; !ok {
		return fmt.Errorf("user not found")
	}
	delete(f.users, id)
	return nil
}

// fakeRentalRepo mimics the transactional stock coupling of the real one.
type fakeRentalRepo struct {
	rentals map[uuid.UUID]*entity.Rental
	movies  *fakeMovieRepo
}

func newFakeRentalRepo(movies *fakeMovieRepo) *fakeRentalRepo {
	return &fakeRentalRepo{
		rentals: make(map[uuid.UUID]*entity.Rental),
		movies:  movies,
	}
}

func (f *fakeRentalRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Rental, error) {
	r, ok := f.rentals[id]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRentalRepo) FindAll(ctx context.Context) ([]*entity.Rental, error) {
	var out []*entity.Rental
	for _, r := range f.rentals {
		cp := *r
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeRentalRepo) FindByCustomerAndMovie(ctx context.Context, customerID, movieID uuid.UUID) (*entity.Rental, error) {
	var latest *entity.Rental
	for _, r := range f.rentals {
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

func (f *fakeRentalRepo) CreateWithStock(ctx context.Context, rental *entity.Rental) error {
	movie, ok := f.movies.movies[rental.MovieID]
	if !ok || movie.NumberInStock == 0 {
		return fmt.Errorf("movie not in stock")
	}
	movie.NumberInStock--

	cp := *rental
	f.rentals[rental.ID] = &cp
	return nil
}

func (f *fakeRentalRepo) CompleteReturn(ctx context.Context, rental *entity.Rental) error {
	stored, ok := f.rentals[rental.ID]
	if !ok || stored.DateReturned != nil {
		return fmt.Errorf("rental already processed")
	}
	stored.DateReturned = rental.DateReturned
	stored.RentalCost = rental.RentalCost

	if movie, ok := f.movies.movies[rental.MovieID]; ok {
		movie.NumberInStock++
	}
	return nil
}
