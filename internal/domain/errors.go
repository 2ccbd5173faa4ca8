package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound         = errors.New("not found")
	ErrAlreadyExists    = errors.New("already exists")
	ErrValidation       = errors.New("validation error")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrInvalidReference = errors.New("invalid reference")
)

// Error is a domain error with a client-facing message.
// Kind is one of the sentinel errors above and decides the HTTP status.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

// Domain errors returned by services.
var (
	ErrToyTypeNotFound    = &Error{Kind: ErrNotFound, Message: "Toy type not found"}
	ErrToyNotFound        = &Error{Kind: ErrNotFound, Message: "Toy not found"}
	ErrCommentNotFound    = &Error{Kind: ErrNotFound, Message: "Comment not found"}
	ErrToyTypeMissing     = &Error{Kind: ErrInvalidReference, Message: "Specified toy type does not exist"}
	ErrUserExists         = &Error{Kind: ErrAlreadyExists, Message: "User already exists"}
	ErrInvalidCredentials = &Error{Kind: ErrUnauthorized, Message: "Invalid username or password"}
	ErrMissingCredentials = &Error{Kind: ErrValidation, Message: "Username and password are required"}
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

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
