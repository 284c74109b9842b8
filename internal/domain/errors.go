package domain

import (
	"errors"
	"fmt"
)

var (
	ErrServiceNotFound        = errors.New("selected service not found")
	ErrInvalidServiceDuration = errors.New("invalid service duration")
	ErrMalformedSlot          = errors.New("malformed time slot")
)

var (
	ErrValidation     = errors.New("validation error")
	ErrSubmitInFlight = errors.New("submission already in progress")
)

// InvalidDraftError carries the per-field messages of a failed validation
// pass. It wraps ErrValidation so callers can classify it with errors.Is.
type InvalidDraftError struct {
	Fields ValidationErrors
}

func (e *InvalidDraftError) Error() string {
	return fmt.Sprintf("%v: %d invalid fields", ErrValidation, len(e.Fields))
}

func (e *InvalidDraftError) Unwrap() error {
	return ErrValidation
}

// RemoteError is a non-2xx reply from the remote booking service. Message is
// the server-provided text, empty when the body carried none.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("booking service returned status %d", e.StatusCode)
}
