package validation

import (
	"fmt"
	"regexp"
	"strings"

	"pyquest/internal/models"
)

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_\-]{3,24}$`)

// ValidationError represents a validation error on one form field
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateUsername checks the username format. Usernames are case-sensitive
// identifiers, matched exactly at login.
func ValidateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return ValidationError{Field: "username", Message: "username is required"}
	}
	if !usernameRegex.MatchString(username) {
		return ValidationError{Field: "username", Message: "username must be 3-24 letters, numbers, - or _"}
	}
	return nil
}

// ValidatePassword checks if a password meets requirements
func ValidatePassword(password string) error {
	if password == "" {
		return ValidationError{Field: "password", Message: "password is required"}
	}
	if len(password) < 8 {
		return ValidationError{Field: "password", Message: "password must be at least 8 characters"}
	}
	if len(password) > 100 {
		return ValidationError{Field: "password", Message: "password must be at most 100 characters"}
	}
	return nil
}

// ValidateAvatar checks the avatar tag against the fixed set
func ValidateAvatar(avatar string) error {
	if !models.IsValidAvatar(avatar) {
		return ValidationError{Field: "avatar", Message: "unknown avatar"}
	}
	return nil
}
