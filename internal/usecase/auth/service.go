package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/johnquangdev/tubeblog/internal/domain/entities"
	"github.com/johnquangdev/tubeblog/internal/domain/repositories"
	ucerrors "github.com/johnquangdev/tubeblog/internal/usecase/errors"
	"github.com/johnquangdev/tubeblog/pkg/jwt"
)

// Service handles local username/password authentication
type Service struct {
	userRepo   repositories.UserRepository
	jwtManager *jwt.Manager
	logger     *zap.Logger
	hashCost   int
}

// NewService creates a new auth service
func NewService(userRepo repositories.UserRepository, jwtManager *jwt.Manager, logger *zap.Logger) *Service {
	return &Service{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		logger:     logger,
		hashCost:   bcrypt.DefaultCost,
	}
}

// AuthResult is returned by signup, login and refresh
type AuthResult struct {
	User         *entities.User
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// Register creates an active user without issuing tokens
func (s *Service) Register(ctx context.Context, username, email, password string) (*entities.User, error) {
	if strings.TrimSpace(password) == "" {
		return nil, fmt.Errorf("%w: %v", ucerrors.ErrInvalidInput, entities.ErrInvalidPassword)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entities.NewUser(username, email, string(hash))
	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ucerrors.ErrInvalidInput, err)
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, entities.ErrUserAlreadyExists) {
			return nil, fmt.Errorf("%w: username %q", ucerrors.ErrAlreadyExists, user.Username)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("👤 User registered",
			zap.String("user_id", user.ID.String()),
			zap.String("username", user.Username),
		)
	}
	return user, nil
}

// Signup registers a user and logs them in
func (s *Service) Signup(ctx context.Context, username, email, password string) (*AuthResult, error) {
	user, err := s.Register(ctx, username, email, password)
	if err != nil {
		return nil, err
	}
	return s.issueTokens(user)
}

// Login checks the credentials and issues a token pair
func (s *Service) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	user, err := s.userRepo.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, ucerrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ucerrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ucerrors.ErrUserNotActive
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil && s.logger != nil {
		s.logger.Warn("Failed to update last login", zap.String("user_id", user.ID.String()), zap.Error(err))
	}
	user.UpdateLastLogin()

	return s.issueTokens(user)
}

// Refresh exchanges a refresh token for a new access token
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*AuthResult, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ucerrors.ErrTokenInvalid, err)
	}

	user, err := s.activeUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &AuthResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.jwtManager.GetAccessExpiry().Seconds()),
	}, nil
}

// ValidateAccessToken returns the active user an access token belongs to
func (s *Service) ValidateAccessToken(ctx context.Context, token string) (*entities.User, error) {
	claims, err := s.jwtManager.ValidateAccessToken(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ucerrors.ErrTokenInvalid, err)
	}
	return s.activeUser(ctx, claims.UserID)
}

// Me returns the current user
func (s *Service) Me(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, ucerrors.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// DeleteUser removes a user by username together with their articles
func (s *Service) DeleteUser(ctx context.Context, username string) (*entities.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, ucerrors.ErrNotFound
		}
		return nil, err
	}

	if err := s.userRepo.Delete(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}
	return user, nil
}

func (s *Service) activeUser(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, ucerrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if !user.IsActive {
		return nil, ucerrors.ErrUserNotActive
	}
	return user, nil
}

func (s *Service) issueTokens(user *entities.User) (*AuthResult, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &AuthResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.jwtManager.GetAccessExpiry().Seconds()),
	}, nil
}
