package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/tumelo/reportal/internal/app/models"
	"github.com/tumelo/reportal/internal/app/repositories"
	"github.com/tumelo/reportal/internal/pkg/apperrors"
	"github.com/tumelo/reportal/internal/pkg/auth"
)

// TempLecturerPassword is assigned to PRL-added lecturers until they change
// it. Stored hashed; logging in with the plaintext value still works.
const TempLecturerPassword = "temp123"

// lecturerService implements LecturerService over the user store.
type lecturerService struct {
	users  UserStore
	logger zerolog.Logger
}

// NewLecturerService creates a new LecturerService
func NewLecturerService(users UserStore, logger zerolog.Logger) LecturerService {
	return &lecturerService{users: users, logger: logger}
}

func (s *lecturerService) ListLecturers(ctx context.Context) ([]*models.User, error) {
	return s.users.ListLecturers(ctx)
}

// AddLecturer creates a lecturer account with the temporary password.
func (s *lecturerService) AddLecturer(ctx context.Context, name, email string) (int64, error) {
	hashed, err := auth.HashPassword(TempLecturerPassword)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to hash temporary lecturer password")
		return 0, err
	}

	lecturer := &models.User{
		Name:     name,
		Email:    email,
		Password: hashed,
		Role:     models.RoleLecturer,
	}

	id, err := s.users.CreateUser(ctx, lecturer)
	if err != nil {
		if errors.Is(err, repositories.ErrEmailExists) {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		return 0, err
	}

	return id, nil
}
