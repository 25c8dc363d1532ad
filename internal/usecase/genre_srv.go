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

type GenreService interface {
	GetGenres(ctx context.Context) ([]response.GenreResponse, error)
	GetGenreByID(ctx context.Context, genreID string) (*response.GenreResponse, error)
	CreateGenre(ctx context.Context, req *request.GenreRequest) (*response.GenreResponse, error)
	UpdateGenre(ctx context.Context, genreID string, req *request.GenreRequest) (*response.GenreResponse, error)
	DeleteGenre(ctx context.Context, genreID string) (*response.GenreResponse, error)
}

type genreService struct {
	repo repository.GenreRepository
	log  *zap.Logger
}

func NewGenreService(repo repository.GenreRepository, log *zap.Logger) GenreService {
	return &genreService{
		repo: repo,
		log:  log.With(zap.String("service", "genre")),
	}
}

func (s *genreService) GetGenres(ctx context.Context) ([]response.GenreResponse, error) {
	genres, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get genres: %w", err)
	}

	return response.GenresToResponse(genres), nil
}

func (s *genreService) GetGenreByID(ctx context.Context, genreID string) (*response.GenreResponse, error) {
	genre, err := s.findGenre(ctx, genreID)
	if err != nil {
		return nil, err
	}

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *genreService) CreateGenre(ctx context.Context, req *request.GenreRequest) (*response.GenreResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create genre validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	genre := &entity.Genre{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name: req.Name,
	}

	if err := s.repo.Create(ctx, genre); err != nil {
		return nil, fmt.Errorf("create genre: %w", err)
	}

	s.log.Info("Genre created",
		zap.String("genre_id", genre.ID.String()),
		zap.String("name", genre.Name),
	)

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *genreService) UpdateGenre(ctx context.Context, genreID string, req *request.GenreRequest) (*response.GenreResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update genre validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	genre, err := s.findGenre(ctx, genreID)
	if err != nil {
		return nil, err
	}

	// Movies keep their genre snapshot; renames do not propagate
	genre.Name = req.Name

	if err := s.repo.Update(ctx, genre); err != nil {
		return nil, fmt.Errorf("update genre: %w", err)
	}

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *genreService) DeleteGenre(ctx context.Context, genreID string) (*response.GenreResponse, error) {
	genre, err := s.findGenre(ctx, genreID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, genre.ID); err != nil {
		return nil, fmt.Errorf("delete genre: %w", err)
	}

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *genreService) findGenre(ctx context.Context, genreID string) (*entity.Genre, error) {
	id, err := uuid.Parse(genreID)
	if err != nil {
		return nil, fmt.Errorf("genre not found")
	}

	genre, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find genre: %w", err)
	}
	if genre == nil {
		return nil, fmt.Errorf("genre not found")
	}

	return genre, nil
}
