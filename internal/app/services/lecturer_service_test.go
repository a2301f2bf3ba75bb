package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/tumelo/reportal/internal/app/models"
	"github.com/tumelo/reportal/internal/app/repositories"
	"github.com/tumelo/reportal/internal/pkg/apperrors"
	"github.com/tumelo/reportal/internal/pkg/auth"
)

func TestLecturerService_AddLecturer(t *testing.T) {
	users := new(MockUserStore)
	users.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		// The temporary password is stored hashed but still verifies
		return u.Role == models.RoleLecturer &&
			auth.LooksHashed(u.Password) &&
			auth.VerifyPassword(TempLecturerPassword, u.Password)
	})).Return(int64(21), nil)

	svc := NewLecturerService(users, zerolog.Nop())
	id, err := svc.AddLecturer(context.Background(), "Tsepo Molefe", "tsepo@luct.ac.ls")

	assert.NoError(t, err)
	assert.Equal(t, int64(21), id)
	users.AssertExpectations(t)
}

func TestLecturerService_AddLecturer_DuplicateEmail(t *testing.T) {
	users := new(MockUserStore)
	users.On("CreateUser", mock.Anything, mock.Anything).Return(int64(0), repositories.ErrEmailExists)

	svc := NewLecturerService(users, zerolog.Nop())
	_, err := svc.AddLecturer(context.Background(), "X", "taken@luct.ac.ls")

	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestLecturerService_ListLecturers(t *testing.T) {
	users := new(MockUserStore)
	users.On("ListLecturers", mock.Anything).Return([]*models.User{
		{ID: 2, Name: "Mpho Khaketla", Role: models.RoleLecturer},
		{ID: 5, Name: "Tsepo Molefe", Role: models.RoleLecturer},
	}, nil)

	svc := NewLecturerService(users, zerolog.Nop())
	lecturers, err := svc.ListLecturers(context.Background())

	assert.NoError(t, err)
	assert.Len(t, lecturers, 2)
}
