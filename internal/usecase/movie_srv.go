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

type MovieService interface {
	GetMovies(ctx context.Context) ([]response.MovieResponse, error)
	GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error)
	CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error)
	UpdateMovie(ctx context.Context, movieID string, req *request.MovieRequest) (*response.MovieResponse, error)
	DeleteMovie(ctx context.Context, movieID string) (*response.MovieResponse, error)
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(repo *repository.Repository, log *zap.Logger) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetMovies(ctx context.Context) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get movies: %w", err)
	}

	return response.MoviesToResponse(movies), nil
}

func (s *movieService) GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	movie, err := s.findMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	genre, err := s.resolveGenre(ctx, req.GenreID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	movie := &entity.Movie{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title: req.Title,
		// Snapshot of the genre as it is right now
		GenreID:         genre.ID,
		GenreName:       genre.Name,
		NumberInStock:   req.NumberInStock,
		DailyRentalRate: req.DailyRentalRate,
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie created",
		zap.String("movie_id", movie.ID.String()),
		zap.String("title", movie.Title),
		zap.String("genre", genre.Name),
	)

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) UpdateMovie(ctx context.Context, movieID string, req *request.MovieRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	movie, err := s.findMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}

	genre, err := s.resolveGenre(ctx, req.GenreID)
	if err != nil {
		return nil, err
	}

	movie.Title = req.Title
	movie.GenreID = genre.ID
	movie.GenreName = genre.Name
	movie.NumberInStock = req.NumberInStock
	movie.DailyRentalRate = req.DailyRentalRate
	movie.UpdatedAt = time.Now()

	if err := s.repo.Movie.Update(ctx, movie); err != nil {
		return nil, fmt.Errorf("update movie: %w", err)
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) DeleteMovie(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	movie, err := s.findMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Movie.Delete(ctx, movie.ID); err != nil {
		return nil, fmt.Errorf("delete movie: %w", err)
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) findMovie(ctx context.Context, movieID string) (*entity.Movie, error) {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return nil, fmt.Errorf("movie not found")
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie not found")
	}

	return movie, nil
}

// resolveGenre maps a body genreId to an existing genre. Unlike path ids,
// a bad genreId is a client error, not a missing resource.
func (s *movieService) resolveGenre(ctx context.Context, genreID string) (*entity.Genre, error) {
	id, err := uuid.Parse(genreID)
	if err != nil {
		return nil, fmt.Errorf("invalid genre id")
	}

	genre, err := s.repo.Genre.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("check genre: %w", err)
	}
	if genre == nil {
		return nil, fmt.Errorf("invalid genre id")
	}

	return genre, nil
}
