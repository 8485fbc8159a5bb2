// Package domainerr defines the two error kinds the domain layer is allowed
// to surface: broken invariants and missing aggregates. Repository and
// service code map everything else onto plain wrapped errors.
package domainerr

import "errors"

// ErrAlreadyExists is returned by Create when the target id is already
// persisted. Duplicate-create behaviour is not part of the repository
// contract proper; callers that care should check with errors.Is.
var ErrAlreadyExists = errors.New("already exists")

// ValidationError signals a violated entity invariant. It is raised at
// construction or mutation time, before anything touches storage.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validation builds a ValidationError with the given message.
func Validation(message string) error {
	return &ValidationError{Message: message}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// NotFoundError signals that a repository operation targeted a row that
// does not exist. The message only identifies the aggregate kind; storage
// detail never leaks through it.
type NotFoundError struct {
	Aggregate string
}

func (e *NotFoundError) Error() string { return e.Aggregate + " not found" }

// NotFound builds a NotFoundError for the given aggregate kind.
func NotFound(aggregate string) error {
	return &NotFoundError{Aggregate: aggregate}
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}
