package domain

import (
	"errors"
	"fmt"
)

// ErrUpstreamUnavailable covers network and decode failures against an
// upstream service, where no server-provided message exists.
var ErrUpstreamUnavailable = errors.New("upstream service unavailable")

// ValidationError is a pre-flight form rejection. It is raised before any
// upstream request is issued and carries the field it concerns so callers
// can surface it inline.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a field-specific validation failure.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// UpstreamError is a non-2xx application response from an upstream service,
// with the message extracted from its body when one was present.
type UpstreamError struct {
	Service    string
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s service returned status %d", e.Service, e.StatusCode)
}
