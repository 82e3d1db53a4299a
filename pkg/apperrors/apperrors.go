// Package apperrors defines the error taxonomy the API maps to HTTP
// statuses: validation (400), not found (404), duplicates (409) and
// store failures (500, details never leaked to clients).
package apperrors

import "errors"

var (
	// ErrNotFound marks a missing id or slug.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate marks a uniqueness violation (e.g. blog slug reuse).
	ErrDuplicate = errors.New("duplicate record")
)

// ValidationError carries field-level detail for a rejected payload.
type ValidationError struct {
	Details interface{}
	wrapped error
}

func NewValidationError(details interface{}, wrapped error) *ValidationError {
	return &ValidationError{Details: details, wrapped: wrapped}
}

func (e *ValidationError) Error() string {
	if e.wrapped != nil {
		return "validation failed: " + e.wrapped.Error()
	}
	return "validation failed"
}

func (e *ValidationError) Unwrap() error { return e.wrapped }
