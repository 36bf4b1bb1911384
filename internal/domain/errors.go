package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Access and lookup errors. Every layer wraps these with %w so that the HTTP
// layer can map them with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrValidation   = errors.New("validation error")
)

// Write conflicts.
var (
	// ErrAlreadyExists reports a unique key taken by another row, such as an
	// account email.
	ErrAlreadyExists = errors.New("already exists")
	// ErrConflict reports that another submission holds the plan record.
	ErrConflict = errors.New("conflict")
	// ErrDuplicateTransaction reports a settlement whose transaction id is
	// already recorded against some plan record.
	ErrDuplicateTransaction = errors.New("duplicate transaction id")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects field errors from one input.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	switch len(e.Errors) {
	case 0:
		return "validation: invalid input"
	case 1:
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	fields := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		fields[i] = fe.Field
	}
	return fmt.Sprintf("validation: %d errors (%s)", len(e.Errors), strings.Join(fields, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
