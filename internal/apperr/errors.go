// Package apperr holds the error kinds shared by the scheduling services.
// Not-found and conflict outcomes reuse the store sentinels so that
// errors.Is works the same for errors raised by services and repositories.
package apperr

import (
	"errors"
	"fmt"

	"servicebook/backend/internal/store"
)

var ErrAccessDenied = errors.New("access denied")

type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func Validation(msg string) error {
	return &ValidationError{msg: msg}
}

func Validationf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// ConflictError carries a caller-facing message and matches store.ErrConflict.
type ConflictError struct {
	msg string
}

func (e *ConflictError) Error() string {
	return e.msg
}

func (e *ConflictError) Unwrap() error {
	return store.ErrConflict
}

func Conflict(msg string) error {
	return &ConflictError{msg: msg}
}

// NotFound wraps store.ErrNotFound with the name of the missing resource.
func NotFound(resource string) error {
	return fmt.Errorf("%s %w", resource, store.ErrNotFound)
}

func IsValidation(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}
