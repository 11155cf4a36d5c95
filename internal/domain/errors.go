package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound     = errors.New("not found")
	ErrDuplicate    = errors.New("duplicate")
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
)

// DuplicateMessage is the user-facing text for an alive-identity collision.
const DuplicateMessage = "That form already exists for this rank."

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

// Fields returns the errors as a field -> message map.
// When a field has several messages the first one wins.
func (e *ValidationError) Fields() map[string]string {
	out := make(map[string]string, len(e.Errors))
	for _, fe := range e.Errors {
		if _, ok := out[fe.Field]; !ok {
			out[fe.Field] = fe.Message
		}
	}
	return out
}

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

// DuplicateError reports that an alive form already holds the identity.
// It reads the same whether a pre-check or the unique index caught it.
type DuplicateError struct {
	Identity FormIdentity
}

func (e *DuplicateError) Error() string {
	return DuplicateMessage
}

func (e *DuplicateError) Unwrap() error { return ErrDuplicate }

// NewDuplicateError creates a DuplicateError for the given identity.
func NewDuplicateError(id FormIdentity) *DuplicateError {
	return &DuplicateError{Identity: id}
}

// ErrorKind is the closed set of error classes callers branch on.
type ErrorKind string

const (
	KindValidation     ErrorKind = "validation"
	KindDuplicate      ErrorKind = "duplicate"
	KindNotFound       ErrorKind = "not_found"
	KindUnauthorized   ErrorKind = "unauthorized"
	KindInfrastructure ErrorKind = "internal"
)

func (k ErrorKind) String() string { return string(k) }

// KindOf classifies err. Anything unrecognised, including context
// cancellation and connectivity failures, is KindInfrastructure.
// A nil error has no kind and returns "".
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrDuplicate):
		return KindDuplicate
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrUnauthorized):
		return KindUnauthorized
	default:
		return KindInfrastructure
	}
}
