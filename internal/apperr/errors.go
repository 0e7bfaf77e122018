package apperr

import (
	"fmt"
	"net/http"
)

type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// NotFoundError reports a missing resource or a missing required field of one.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFound(msg string) *NotFoundError {
	return &NotFoundError{Message: msg}
}

// UpstreamError is returned when a remote resource answered with a non-2xx status.
type UpstreamError struct {
	Resource string
	Status   int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("failed to fetch %s: upstream responded %d %s", e.Resource, e.Status, http.StatusText(e.Status))
}

// UnavailableError signals a backend that cannot serve requests at all,
// e.g. missing credentials.
type UnavailableError struct {
	Message string
	Err     error
}

func (e *UnavailableError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

func NewUnavailable(msg string, err error) *UnavailableError {
	return &UnavailableError{Message: msg, Err: err}
}
