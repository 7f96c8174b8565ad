// Package errors provides the error taxonomy for the client SDK.
// Every operation fails with exactly one *Error whose Kind tells the caller
// how the request went wrong; retry policy is left to the caller.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies a failed operation.
type Kind int

const (
	// KindTransport covers connection, DNS, TLS and timeout failures as well
	// as context cancellation. No response was received.
	KindTransport Kind = iota + 1
	// KindAuth is a 401 or 403 response.
	KindAuth
	// KindNotFound is a 404 response.
	KindNotFound
	// KindValidation is a 400 or 422 response.
	KindValidation
	// KindServer is any 5xx response.
	KindServer
	// KindDeserialization is a 2xx response whose body did not match the
	// expected shape.
	KindDeserialization
	// KindUnexpectedStatus is any other non-2xx response.
	KindUnexpectedStatus
)

// String returns a human-readable representation of the error kind.
func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "TransportError"
	case KindAuth:
		return "AuthError"
	case KindNotFound:
		return "NotFoundError"
	case KindValidation:
		return "ValidationError"
	case KindServer:
		return "ServerError"
	case KindDeserialization:
		return "DeserializationError"
	case KindUnexpectedStatus:
		return "UnexpectedStatus"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Sentinels for errors.Is checks. An *Error matches the sentinel of its Kind.
var (
	ErrTransport        = stderrors.New("transport error")
	ErrAuth             = stderrors.New("authentication failed")
	ErrNotFound         = stderrors.New("resource not found")
	ErrValidation       = stderrors.New("validation failed")
	ErrServer           = stderrors.New("server error")
	ErrDeserialization  = stderrors.New("unexpected response body")
	ErrUnexpectedStatus = stderrors.New("unexpected status")
)

var sentinels = map[Kind]error{
	KindTransport:        ErrTransport,
	KindAuth:             ErrAuth,
	KindNotFound:         ErrNotFound,
	KindValidation:       ErrValidation,
	KindServer:           ErrServer,
	KindDeserialization:  ErrDeserialization,
	KindUnexpectedStatus: ErrUnexpectedStatus,
}

// Error is the single error type returned by every client operation.
type Error struct {
	Kind       Kind
	Op         string // operation name, e.g. "get route"
	StatusCode int    // 0 when no response was received
	Body       string // raw response body for diagnostics
	Message    string // server-provided detail, when the body carried one
	Err        error  // transport or decoder cause
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.StatusCode > 0 && e.Message != "":
		return fmt.Sprintf("%s: %s: HTTP %d: %s", e.Op, e.Kind, e.StatusCode, e.Message)
	case e.StatusCode > 0 && e.Err != nil:
		return fmt.Sprintf("%s: %s: HTTP %d: %v", e.Op, e.Kind, e.StatusCode, e.Err)
	case e.StatusCode > 0:
		return fmt.Sprintf("%s: %s: HTTP %d", e.Op, e.Kind, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel matching by kind.
func (e *Error) Is(target error) bool {
	s, ok := sentinels[e.Kind]
	return ok && s == target
}

// KindOf returns the Kind of err, or 0 when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return 0
}
