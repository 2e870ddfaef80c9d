// Package apperrors holds the error taxonomy shared by the repository and
// handler layers.
package apperrors

import "errors"

var (
	// ErrNotFound means the requested entity (or a non-empty list, where
	// the business rule demands one) is absent from the persistent store.
	// It is never caused by cache unavailability.
	ErrNotFound = errors.New("not found")

	// ErrConflict means the write violates a business rule, e.g. a
	// duplicate review or a reference to a missing related entity.
	ErrConflict = errors.New("conflict")
)

// IsNotFound reports whether err wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflict reports whether err wraps ErrConflict.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}
