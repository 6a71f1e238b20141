package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrValidation = errors.New("validation error")

	// ErrAcquisition is returned when a raw source archive cannot be fetched.
	ErrAcquisition = errors.New("source acquisition failed")

	// ErrOverwriteConflict is returned when an artifact exists and force is not set.
	ErrOverwriteConflict = errors.New("artifact already exists")

	ErrUnknownLanguage = errors.New("unknown language")
	ErrEmptyResult     = errors.New("builder produced no entries")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}
