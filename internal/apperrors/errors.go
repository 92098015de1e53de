package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUserNotFound indicates the username is absent from the identity store.
var ErrUserNotFound = errors.New("user not found")

// ErrInvalidCredentials indicates the password did not match the stored one.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidTransition indicates a workflow transition was attempted on a
// listing that is no longer pending. Approved and rejected are terminal.
var ErrInvalidTransition = errors.New("invalid status transition")

// ErrForbidden indicates the authenticated user's role does not permit the operation.
var ErrForbidden = errors.New("forbidden")

// ValidationError carries the set of missing or invalid fields detected at the
// create boundary. It wraps ErrValidation so callers can match with errors.Is.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s", ErrValidation, strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
