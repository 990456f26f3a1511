// Package services exposes the transactional operations of the event
// store: source registry, event ingest and reads, connector registry and
// retention.
package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a source, connector, failure or
	// ruleset version does not exist. Entry points fail fast on it
	// without mutating state.
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when a unique key would be violated.
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when request validation fails.
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError wraps field-specific validation errors.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Unwrap makes ValidationError match ErrInvalidInput via errors.Is.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
