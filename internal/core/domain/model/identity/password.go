package identity

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"littlelemon/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 72 // bcrypt ignores input beyond 72 bytes
)

// ErrPasswordMismatch is returned by User.CheckPassword for a wrong password.
var ErrPasswordMismatch = errors.New("password does not match")

// HashPassword validates a raw password and returns its bcrypt hash.
func HashPassword(raw string) (string, error) {
	if raw == "" {
		return "", errs.NewValueIsRequiredError("password")
	}
	if n := utf8.RuneCountInString(raw); n < minPasswordLength || len(raw) > maxPasswordLength {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"password",
			fmt.Errorf("must be between %d and %d characters", minPasswordLength, maxPasswordLength),
		)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
