package api

import (
	"errors"
	"fmt"

	"github.com/escrow-tf/steamweb/steamlang"
)

var (
	// ErrTransport matches any *TransportError via errors.Is.
	ErrTransport = errors.New("steam web api transport error")
	// ErrDeserialization matches any *DeserializationError via errors.Is.
	ErrDeserialization = errors.New("steam web api deserialization error")
	// ErrMissingResponse is reported when a body decodes but has no "response" field.
	ErrMissingResponse = errors.New(`response body has no "response" field`)
)

// TransportError means the call could not complete or Steam answered with a
// failure. StatusCode is zero when no HTTP response was received.
type TransportError struct {
	StatusCode int
	EResult    steamlang.EResult
	Message    string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("request failed: %v", e.Err)
	}

	text := fmt.Sprintf("steam responded with status %d", e.StatusCode)
	if e.EResult != steamlang.InvalidResult {
		text += fmt.Sprintf(", result %v", e.EResult)
	}
	if e.Message != "" {
		text += ": " + e.Message
	}
	if e.Err != nil {
		text += ": " + e.Err.Error()
	}
	return text
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// DeserializationError means the body did not match the expected envelope or
// payload shape.
type DeserializationError struct {
	Message string
	Err     error
}

func (e *DeserializationError) Error() string {
	return "couldn't decode response: " + e.Message
}

func (e *DeserializationError) Unwrap() error {
	return e.Err
}

func (e *DeserializationError) Is(target error) bool {
	return target == ErrDeserialization
}

// Error tags a failure with the endpoint that produced it. Err is always a
// *TransportError or a *DeserializationError.
type Error struct {
	Endpoint Endpoint
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Endpoint, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Classify converts an executor error into an endpoint-tagged *Error. Errors of
// unknown type are treated as transport failures.
func Classify(endpoint Endpoint, err error) error {
	if err == nil {
		return nil
	}

	var tagged *Error
	if errors.As(err, &tagged) {
		return &Error{Endpoint: endpoint, Err: tagged.Err}
	}

	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return &Error{Endpoint: endpoint, Err: transportErr}
	}

	var deserializationErr *DeserializationError
	if errors.As(err, &deserializationErr) {
		return &Error{Endpoint: endpoint, Err: deserializationErr}
	}

	return &Error{Endpoint: endpoint, Err: &TransportError{Err: err}}
}
