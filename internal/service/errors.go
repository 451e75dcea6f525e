package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials is returned when the email is unknown or the
	// password does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailTaken is returned when registration hits an existing email.
	ErrEmailTaken = errors.New("user with this email already exists")
	// ErrTokenRevoked is returned for tokens invalidated by logout.
	ErrTokenRevoked = errors.New("token has been revoked")
	// ErrSessionNotFound is returned when a session id resolves to nothing.
	ErrSessionNotFound = errors.New("session not found")
)

// ValidationError reports a single invalid input field. It is rejected at
// the boundary before any write happens.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
