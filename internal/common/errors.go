// Package common defines shared constants and sentinel errors used across
// client and server layers of accountkeeper. Callers should use errors.Is to
// match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")
	ErrorConflict = errors.New("already exists")

	// Service-level errors.
	ErrorInternal           = errors.New("internal error")
	ErrorUnauthorized       = errors.New("unauthorized")
	ErrorInvalidCredentials = errors.New("invalid credentials")
	ErrorValidation         = errors.New("validation error")

	// Token verification errors. Exactly one of them is returned by a failed verification.
	ErrTokenMalformed        = errors.New("malformed token")
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")
	ErrTokenExpired          = errors.New("token expired")

	// ErrRefreshTokenReused means the presented refresh token is no longer the
	// one stored for the user: it was rotated, revoked by logout, or lost a race.
	ErrRefreshTokenReused = errors.New("refresh token expired or reused")
)

// ValidationError describes a rejected input field. It matches ErrorValidation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrorValidation.Error(), e.Reason)
	}
	return fmt.Sprintf("%s: %s %s", ErrorValidation.Error(), e.Field, e.Reason)
}

func (e ValidationError) Unwrap() error { return ErrorValidation }

// NewValidationError is a shorthand for building a ValidationError value.
func NewValidationError(field, reason string) error {
	return ValidationError{Field: field, Reason: reason}
}
