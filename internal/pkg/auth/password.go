package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// BcryptCost matches the cost the portal has always used for stored digests.
const BcryptCost = 10

// HashPassword hashes a plaintext password with bcrypt.
// If the value already looks like a bcrypt digest it is returned unchanged,
// so a client resubmitting an already-hashed value does not get double-hashed.
func HashPassword(password string) (string, error) {
	if LooksHashed(password) {
		return password, nil
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// VerifyPassword checks a plaintext password against the stored value.
// Hashed values are compared with bcrypt; anything else falls back to direct
// string equality for legacy and seed accounts that predate hashing.
func VerifyPassword(password, stored string) bool {
	if LooksHashed(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}
	return password == stored
}

// LooksHashed reports whether a stored value carries a bcrypt prefix.
func LooksHashed(stored string) bool {
	return strings.HasPrefix(stored, "$2a$") ||
		strings.HasPrefix(stored, "$2b$") ||
		strings.HasPrefix(stored, "$2y$")
}
