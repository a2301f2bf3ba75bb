package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// EmailPattern is the accepted email shape for registration
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// PasswordMinLength is the minimum accepted password length
	PasswordMinLength = 6
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

// ValidRoles are the roles a user can register with
var ValidRoles = map[string]bool{
	"student":  true,
	"lecturer": true,
	"prl":      true,
	"pl":       true,
}

// IsValidRole reports whether the role is one of the four known roles
func IsValidRole(role string) bool {
	return ValidRoles[role]
}

// IsValidEmail reports whether the email matches the accepted shape
func IsValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(email)
}
