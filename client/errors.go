package client

import (
	"errors"

	apierrors "github.com/jelmer/ridewithgps-go/client/internal/errors"
)

// Error is returned by every failed operation. Use errors.As to inspect the
// status code and body, or errors.Is against the sentinels below.
type Error = apierrors.Error

// ErrorKind classifies an Error.
type ErrorKind = apierrors.Kind

const (
	KindTransport        = apierrors.KindTransport
	KindAuth             = apierrors.KindAuth
	KindNotFound         = apierrors.KindNotFound
	KindValidation       = apierrors.KindValidation
	KindServer           = apierrors.KindServer
	KindDeserialization  = apierrors.KindDeserialization
	KindUnexpectedStatus = apierrors.KindUnexpectedStatus
)

// Re-export sentinels so callers compare against a single symbol.
var (
	ErrTransport        = apierrors.ErrTransport
	ErrAuth             = apierrors.ErrAuth
	ErrNotFound         = apierrors.ErrNotFound
	ErrValidation       = apierrors.ErrValidation
	ErrServer           = apierrors.ErrServer
	ErrDeserialization  = apierrors.ErrDeserialization
	ErrUnexpectedStatus = apierrors.ErrUnexpectedStatus
)

// KindOf returns the kind of err, or 0 when err is not an *Error.
func KindOf(err error) ErrorKind { return apierrors.KindOf(err) }

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsAuth reports whether err is a 401 or 403 from the API.
func IsAuth(err error) bool { return errors.Is(err, ErrAuth) }
