package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	hashed, err := HashPassword("secret12")
	assert.NoError(t, err)
	assert.True(t, LooksHashed(hashed))
	assert.NotEqual(t, "secret12", hashed)
}

func TestHashPassword_AlreadyHashedIsNotRehashed(t *testing.T) {
	hashed, err := HashPassword("secret12")
	assert.NoError(t, err)

	again, err := HashPassword(hashed)
	assert.NoError(t, err)
	assert.Equal(t, hashed, again)
}

func TestVerifyPassword(t *testing.T) {
	hashed, err := HashPassword("secret12")
	assert.NoError(t, err)

	testCases := []struct {
		name     string
		password string
		stored   string
		want     bool
	}{
		{"correct password against hash", "secret12", hashed, true},
		{"wrong password against hash", "wrong", hashed, false},
		{"legacy plaintext match", "password123", "password123", true},
		{"legacy plaintext mismatch", "password124", "password123", false},
		{"hash value as password against plaintext", hashed, "password123", false},
		{"empty against empty plaintext", "", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, VerifyPassword(tc.password, tc.stored))
		})
	}
}

func TestLooksHashed(t *testing.T) {
	assert.False(t, LooksHashed("password123"))
	assert.False(t, LooksHashed(""))
	assert.True(t, LooksHashed("$2a$10$abcdefghijklmnopqrstuv"))
	assert.True(t, LooksHashed("$2b$10$abcdefghijklmnopqrstuv"))
	assert.True(t, LooksHashed("$2y$10$abcdefghijklmnopqrstuv"))
}

func TestHashPassword_UsesConfiguredCost(t *testing.T) {
	hashed, err := HashPassword("secret12")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(hashed, "$2a$10$"))
}
