package tutor

import (
	"errors"
	"fmt"

	"github.com/mykeomos/Newton-law-tutor/internal/newton"
	"github.com/mykeomos/Newton-law-tutor/internal/units"
)

// Request failure kinds. The taxonomy is closed: every error a solve
// call can surface maps onto one of these, and the transport layer
// answers all of them with HTTP 400.
const (
	InvalidInput         = "InvalidInput"
	UnitError            = "UnitError"
	DegenerateInputError = "DegenerateInputError"
)

// RequestError is the structured failure handed to the transport
// layer. It marshals directly into the error body of the API.
type RequestError struct {
	Kind    string `json:"error"`
	Message string `json:"message"`
	cause   error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *RequestError) Unwrap() error { return e.cause }

func invalidInputf(format string, args ...any) *RequestError {
	return &RequestError{Kind: InvalidInput, Message: fmt.Sprintf(format, args...)}
}

// AsRequestError folds any pipeline failure into the closed taxonomy.
// Unknown errors are treated as bad input rather than leaked as 500s.
func AsRequestError(err error) *RequestError {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr
	}
	var unitErr *units.UnitError
	if errors.As(err, &unitErr) {
		return &RequestError{Kind: UnitError, Message: unitErr.Error(), cause: err}
	}
	var valueErr *units.ValueError
	if errors.As(err, &valueErr) {
		return &RequestError{Kind: InvalidInput, Message: valueErr.Error(), cause: err}
	}
	var degErr *newton.DegenerateInputError
	if errors.As(err, &degErr) {
		return &RequestError{Kind: DegenerateInputError, Message: degErr.Error(), cause: err}
	}
	var givenErr *newton.GivenError
	if errors.As(err, &givenErr) {
		return &RequestError{Kind: InvalidInput, Message: givenErr.Error(), cause: err}
	}
	return &RequestError{Kind: InvalidInput, Message: err.Error(), cause: err}
}
