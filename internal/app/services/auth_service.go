package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tumelo/reportal/internal/app/models"
	"github.com/tumelo/reportal/internal/app/repositories"
	"github.com/tumelo/reportal/internal/pkg/apperrors"
	"github.com/tumelo/reportal/internal/pkg/auth"
	"github.com/tumelo/reportal/internal/pkg/validation"
)

// authService implements AuthService over the user store.
type authService struct {
	users  UserStore
	jwt    *auth.JWTService
	logger zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(users UserStore, jwt *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authService{users: users, jwt: jwt, logger: logger}
}

// Register creates a new user account. The email uniqueness constraint does
// the duplicate detection; a violation surfaces as ErrEmailAlreadyExists.
func (s *authService) Register(ctx context.Context, name, email, password, role string) (*models.User, error) {
	if !validation.IsValidRole(role) {
		return nil, apperrors.NewBadRequestError("Invalid role")
	}
	if !validation.IsValidEmail(email) {
		return nil, apperrors.NewBadRequestError("Invalid email address")
	}
	if len(password) < validation.PasswordMinLength {
		return nil, apperrors.NewBadRequestError(
			fmt.Sprintf("Password must be at least %d characters", validation.PasswordMinLength))
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to hash password during registration")
		return nil, err
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: hashed,
		Role:     models.Role(role),
	}

	id, err := s.users.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, repositories.ErrEmailExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, err
	}

	user.ID = id
	user.Password = ""
	return user, nil
}

// Login verifies credentials under the hash-or-plaintext policy and returns
// the user with a signed session token.
func (s *authService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !auth.VerifyPassword(password, user.Password) {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user)
	if err != nil {
		s.logger.Error().Err(err).Int64("userID", user.ID).Msg("Failed to sign session token")
		return nil, "", err
	}

	user.Password = ""
	return user, token, nil
}

// GetProfile returns the user behind a validated session token.
func (s *authService) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	user.Password = ""
	return user, nil
}
