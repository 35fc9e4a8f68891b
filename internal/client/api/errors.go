package api

import (
	"errors"

	"github.com/dmitrijs2005/fieldkeeper/internal/validate"
)

var (
	// ErrAuthenticationRequired: no token for an authenticated operation.
	ErrAuthenticationRequired = errors.New("authentication required")
	// ErrTransport: DNS, connection or read failure.
	ErrTransport = errors.New("transport error")
	// ErrServer: non-2xx HTTP status.
	ErrServer = errors.New("server error")
	// ErrMalformedResponse: 2xx body is not the JSON the operation expects.
	ErrMalformedResponse = errors.New("malformed response")
	// ErrValidation: a client-side field check failed.
	ErrValidation = validate.ErrInvalid
	// ErrRejected: 2xx response whose body resolved to a failure verdict.
	ErrRejected = errors.New("request rejected")
)

// Error is the single error type returned by Client operations.
type Error struct {
	Op      string
	Kind    error
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	case e.Kind != nil:
		return e.Kind.Error()
	default:
		return "unknown error"
	}
}

func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func validationError(op string, err error) error {
	return &Error{Op: op, Kind: ErrValidation, Message: err.Error(), Err: err}
}
