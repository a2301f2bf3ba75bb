package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/tumelo/reportal/internal/app/models"
	"github.com/tumelo/reportal/internal/app/repositories"
	"github.com/tumelo/reportal/internal/pkg/apperrors"
	"github.com/tumelo/reportal/internal/pkg/auth"
)

func newTestAuthService(users UserStore) AuthService {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "reportal-test",
	})
	return NewAuthService(users, jwtService, zerolog.Nop())
}

func TestAuthService_Register(t *testing.T) {
	users := new(MockUserStore)
	users.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		// The stored password must be a digest, never the raw input
		return u.Email == "lineo@luct.ac.ls" &&
			u.Role == models.RoleStudent &&
			auth.LooksHashed(u.Password) &&
			auth.VerifyPassword("secret12", u.Password)
	})).Return(int64(7), nil)

	svc := newTestAuthService(users)
	user, err := svc.Register(context.Background(), "Lineo Mahao", "lineo@luct.ac.ls", "secret12", "student")

	assert.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.Empty(t, user.Password)
	users.AssertExpectations(t)
}

func TestAuthService_Register_InvalidRole(t *testing.T) {
	users := new(MockUserStore)
	svc := newTestAuthService(users)

	_, err := svc.Register(context.Background(), "X", "x@y.z", "secret12", "dean")

	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	users.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestAuthService_Register_InvalidEmail(t *testing.T) {
	users := new(MockUserStore)
	svc := newTestAuthService(users)

	for _, email := range []string{"not-an-email", "missing@tld", "@luct.ac.ls", ""} {
		_, err := svc.Register(context.Background(), "X", email, "secret12", "student")
		assert.ErrorIs(t, err, apperrors.ErrBadRequest, "email %q must be rejected", email)
	}
	users.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestAuthService_Register_PasswordTooShort(t *testing.T) {
	users := new(MockUserStore)
	svc := newTestAuthService(users)

	_, err := svc.Register(context.Background(), "X", "x@luct.ac.ls", "short", "student")

	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	users.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	users := new(MockUserStore)
	users.On("CreateUser", mock.Anything, mock.Anything).Return(int64(0), repositories.ErrEmailExists)

	svc := newTestAuthService(users)
	_, err := svc.Register(context.Background(), "X", "taken@luct.ac.ls", "secret12", "lecturer")

	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestAuthService_Login_HashedPassword(t *testing.T) {
	hashed, err := auth.HashPassword("secret12")
	assert.NoError(t, err)

	users := new(MockUserStore)
	users.On("GetUserByEmail", mock.Anything, "lineo@luct.ac.ls").Return(&models.User{
		ID:       7,
		Email:    "lineo@luct.ac.ls",
		Password: hashed,
		Role:     models.RoleStudent,
	}, nil)

	svc := newTestAuthService(users)
	user, token, err := svc.Login(context.Background(), "lineo@luct.ac.ls", "secret12")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Empty(t, user.Password)
}

func TestAuthService_Login_LegacyPlaintextPassword(t *testing.T) {
	users := new(MockUserStore)
	users.On("GetUserByEmail", mock.Anything, "naleli@luct.ac.ls").Return(&models.User{
		ID:       3,
		Email:    "naleli@luct.ac.ls",
		Password: "password123",
		Role:     models.RolePRL,
	}, nil)

	svc := newTestAuthService(users)
	user, token, err := svc.Login(context.Background(), "naleli@luct.ac.ls", "password123")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, int64(3), user.ID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	hashed, err := auth.HashPassword("secret12")
	assert.NoError(t, err)

	users := new(MockUserStore)
	users.On("GetUserByEmail", mock.Anything, "lineo@luct.ac.ls").Return(&models.User{
		ID:       7,
		Email:    "lineo@luct.ac.ls",
		Password: hashed,
	}, nil)

	svc := newTestAuthService(users)
	_, _, err = svc.Login(context.Background(), "lineo@luct.ac.ls", "wrong")

	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	users := new(MockUserStore)
	users.On("GetUserByEmail", mock.Anything, "nobody@luct.ac.ls").Return(nil, repositories.ErrNotFound)

	svc := newTestAuthService(users)
	_, _, err := svc.Login(context.Background(), "nobody@luct.ac.ls", "whatever")

	// Unknown account and bad password are indistinguishable to the caller
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_GetProfile_NotFound(t *testing.T) {
	users := new(MockUserStore)
	users.On("GetUserByID", mock.Anything, int64(99)).Return(nil, repositories.ErrNotFound)

	svc := newTestAuthService(users)
	_, err := svc.GetProfile(context.Background(), 99)

	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
