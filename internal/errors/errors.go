// Package errors provides domain-specific error types and sentinel errors
// for improved error handling across the application.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common scenarios.
// Use errors.Is() to check these errors in your code.
var (
	// ErrInvalidInput indicates the caller provided a malformed chat request.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownIntent indicates the classifier produced an intent no
	// synthesizer branch recognizes.
	ErrUnknownIntent = errors.New("unknown intent")

	// ErrStorageUnavailable indicates the usage log database is unreachable.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrRateLimitExceeded indicates rate limit has been exceeded.
	ErrRateLimitExceeded = errors.New("rate limit exceeded")
)

// ValidationError represents input validation failures.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// Unwrap makes every ValidationError match ErrInvalidInput via errors.Is.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}
