package models

import (
	"errors"
	"fmt"
)

// ValidationError reports a missing or malformed required input. Handlers
// translate it into an HTTP 400 response.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing or invalid %s", e.Field)
}

// NotFoundError reports that a referenced entity does not exist. Handlers
// translate it into an HTTP 404 response.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// PersistenceError wraps a store read or write failure. Op is the operation
// phrase surfaced to the client ("fetching flights", "creating booking");
// the underlying error is kept for diagnostics. Handlers translate it into
// an HTTP 500 response with the detail attached. Failures are never retried.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("error %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
