package apperror

import (
	"errors"
	"net/http"
)

// ValidationError is returned when a request is malformed or misses a required field.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// BackendError wraps a failure reported by the language-model backend.
// Error() returns the backend message unchanged.
type BackendError struct {
	Err error
}

func Backend(err error) error {
	if err == nil {
		return nil
	}
	return &BackendError{Err: err}
}

func (e *BackendError) Error() string { return e.Err.Error() }
func (e *BackendError) Unwrap() error { return e.Err }

// InternalError covers everything else: I/O failures, programming errors, recovered panics.
type InternalError struct {
	Err error
}

func Internal(err error) error {
	if err == nil {
		return nil
	}
	return &InternalError{Err: err}
}

func (e *InternalError) Error() string { return e.Err.Error() }
func (e *InternalError) Unwrap() error { return e.Err }

// Status maps an error to the HTTP status code of its kind.
// Backend and internal failures share 500; untyped errors are treated as internal.
func Status(err error) int {
	var ve ValidationError
	if errors.As(err, &ve) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
