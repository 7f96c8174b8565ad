package errors

import (
	"encoding/json"
	"maps"
	"net/http"
	"slices"
	"strings"
)

// KindForStatus maps a non-2xx HTTP status code to an error kind.
func KindForStatus(statusCode int) Kind {
	switch {
	case statusCode == http.StatusUnauthorized, statusCode == http.StatusForbidden:
		return KindAuth
	case statusCode == http.StatusNotFound:
		return KindNotFound
	case statusCode == http.StatusBadRequest, statusCode == http.StatusUnprocessableEntity:
		return KindValidation
	case statusCode >= 500 && statusCode < 600:
		return KindServer
	default:
		return KindUnexpectedStatus
	}
}

// Classify builds the error for a non-2xx response. It has no side effects
// and needs no network, so it is usable directly in tests.
func Classify(op string, statusCode int, body []byte) *Error {
	return &Error{
		Kind:       KindForStatus(statusCode),
		Op:         op,
		StatusCode: statusCode,
		Body:       string(body),
		Message:    serverMessage(body),
	}
}

// NewTransportError wraps a failure that happened before any response was
// received. The cause stays reachable through errors.Is / errors.As.
func NewTransportError(op string, err error) *Error {
	return &Error{Kind: KindTransport, Op: op, Err: err}
}

// NewDeserializationError wraps a decode failure of a 2xx body.
func NewDeserializationError(op string, statusCode int, body []byte, err error) *Error {
	return &Error{
		Kind:       KindDeserialization,
		Op:         op,
		StatusCode: statusCode,
		Body:       string(body),
		Err:        err,
	}
}

// serverMessage extracts validation or error detail from common JSON error
// shapes: {"error": "..."}, {"message": "..."}, {"errors": [...]} and
// {"errors": {"field": ["..."]}}. Non-JSON bodies yield "".
func serverMessage(body []byte) string {
	var payload struct {
		Error   json.RawMessage `json:"error"`
		Message string          `json:"message"`
		Errors  json.RawMessage `json:"errors"`
	}
	if len(body) == 0 || json.Unmarshal(body, &payload) != nil {
		return ""
	}
	var parts []string
	if s := rawString(payload.Error); s != "" {
		parts = append(parts, s)
	}
	if payload.Message != "" {
		parts = append(parts, payload.Message)
	}
	parts = append(parts, flattenErrors(payload.Errors)...)
	return strings.Join(parts, "; ")
}

func rawString(raw json.RawMessage) string {
	var s string
	if len(raw) > 0 && json.Unmarshal(raw, &s) == nil {
		return s
	}
	return ""
}

func flattenErrors(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var list []string
	if json.Unmarshal(raw, &list) == nil {
		return list
	}
	var fields map[string][]string
	if json.Unmarshal(raw, &fields) == nil {
		out := make([]string, 0, len(fields))
		for _, name := range slices.Sorted(maps.Keys(fields)) {
			out = append(out, name+" "+strings.Join(fields[name], ", "))
		}
		return out
	}
	if s := rawString(raw); s != "" {
		return []string{s}
	}
	return nil
}
