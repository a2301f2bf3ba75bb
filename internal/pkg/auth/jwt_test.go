package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tumelo/reportal/internal/app/models"
)

func newTestJWTService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "reportal-test",
	})
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService(time.Hour)

	user := &models.User{
		ID:    42,
		Email: "lineo@luct.ac.ls",
		Role:  models.RoleStudent,
	}

	token, err := svc.GenerateToken(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateAndExtractClaims(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "lineo@luct.ac.ls", claims.Email)
	assert.Equal(t, "student", claims.Role)
	assert.Equal(t, "reportal-test", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := newTestJWTService(-time.Minute)

	token, err := svc.GenerateToken(&models.User{ID: 1, Email: "a@b.c", Role: models.RolePL})
	assert.NoError(t, err)

	_, err = svc.ValidateAndExtractClaims(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTService_WrongSecret(t *testing.T) {
	svc := newTestJWTService(time.Hour)
	token, err := svc.GenerateToken(&models.User{ID: 1, Email: "a@b.c", Role: models.RolePRL})
	assert.NoError(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "different", AccessTokenExp: time.Hour})
	_, err = other.ValidateAndExtractClaims(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractBearerToken(t *testing.T) {
	testCases := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{"valid bearer", "Bearer abc.def.ghi", "abc.def.ghi", nil},
		{"missing prefix", "abc.def.ghi", "", ErrInvalidFormat},
		{"empty token", "Bearer ", "", ErrInvalidFormat},
		{"empty header", "", "", ErrInvalidFormat},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			token, err := ExtractBearerToken(tc.header)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, token)
		})
	}
}
