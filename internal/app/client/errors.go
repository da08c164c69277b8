package client

import (
	"errors"
	"fmt"
)

// Error taxonomy for everything that can go wrong between the client and the
// catalog backend. Transport produces NetworkError / HTTPError / SetupError;
// the quote workflow adds ValidationError and the in-flight guard sentinel.

// NetworkError means no response was received at all: connectivity failure,
// DNS, or the per-call timeout.
type NetworkError struct {
	Timeout bool
	Err     error
}

func (e *NetworkError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("network error (timeout): %v", e.Err)
	}
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPError is a response with status >= 400. Message carries the backend's
// "message" or "error" body field when one was present.
type HTTPError struct {
	Status  int
	Body    []byte
	Message string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error (status %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server error (status %d)", e.Status)
}

// SetupError is a malformed request that never left the client.
type SetupError struct {
	Err error
}

func (e *SetupError) Error() string { return fmt.Sprintf("request setup error: %v", e.Err) }

func (e *SetupError) Unwrap() error { return e.Err }

// ValidationError identifies the first quote-form field that failed the
// non-empty check, in form order.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string { return fmt.Sprintf("field %q must not be empty", e.Field) }

var (
	// ErrSubmitInFlight rejects a second submit while one is still running.
	ErrSubmitInFlight = errors.New("quote submission already in flight")

	// ErrTemplateUnavailable marks the soft failure of remote template
	// resolution; submission success is unaffected.
	ErrTemplateUnavailable = errors.New("message template unavailable")
)

// UserMessage extracts a human-presentable message from any client error,
// preferring what the backend said.
func UserMessage(err error) string {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) && httpErr.Message != "" {
		return httpErr.Message
	}
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return "Unable to connect to server. Please check your internet connection."
	}
	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return valErr.Error()
	}
	return "Something went wrong. Please try again."
}
