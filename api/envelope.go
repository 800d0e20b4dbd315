package api

import (
	"bytes"
	"context"
	"encoding/json"
)

// Envelope is the {"response": ...} wrapper around every payload returned by
// the methods this package calls.
type Envelope[T any] struct {
	Response T `json:"response"`
}

// UnmarshalJSON fails with ErrMissingResponse when the response field is
// absent or null.
func (e *Envelope[T]) UnmarshalJSON(data []byte) error {
	var raw struct {
		Response json.RawMessage `json:"response"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if len(raw.Response) == 0 || bytes.Equal(raw.Response, []byte("null")) {
		return ErrMissingResponse
	}

	return json.Unmarshal(raw.Response, &e.Response)
}

func (e Envelope[T]) Unwrap() T {
	return e.Response
}

// Call sends request, unwraps the envelope and tags any failure with the
// request's endpoint.
func Call[T any](ctx context.Context, transport Transport, request Request) (*T, error) {
	var envelope Envelope[T]
	if err := transport.Send(ctx, request, &envelope); err != nil {
		return nil, Classify(request.Endpoint(), err)
	}

	payload := envelope.Unwrap()
	return &payload, nil
}
