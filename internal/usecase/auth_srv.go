package usecase

import (
	"context"
	"fmt"

	"video-rental/internal/data/repository"
	"video-rental/internal/dto/request"
	"video-rental/internal/dto/response"
	"video-rental/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	// Login checks credentials and returns a signed auth token
	Login(ctx context.Context, req *request.LoginRequest) (string, error)
	// IssueToken signs a token for an existing user id
	IssueToken(userID uuid.UUID, isAdmin bool) (string, error)
	// CurrentUser resolves the authenticated caller
	CurrentUser(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(repo *repository.Repository, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (string, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return "", fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return "", fmt.Errorf("find user: %w", err)
	}

	// Same message for unknown email and wrong password
	if user == nil {
		s.log.Warn("Login for unknown email", zap.String("email", req.Email))
		return "", fmt.Errorf("invalid email or password")
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Login with wrong password", zap.String("user_id", user.ID.String()))
		return "", fmt.Errorf("invalid email or password")
	}

	token, err := utils.GenerateAuthToken(s.config.JWT.Secret, user.ID, user.IsAdmin)
	if err != nil {
		s.log.Error("Failed to sign token", zap.Error(err))
		return "", fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))
	return token, nil
}

func (s *authService) IssueToken(userID uuid.UUID, isAdmin bool) (string, error) {
	return utils.GenerateAuthToken(s.config.JWT.Secret, userID, isAdmin)
}

func (s *authService) CurrentUser(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}
