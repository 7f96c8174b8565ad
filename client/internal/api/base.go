// Package api implements one function per RideWithGPS endpoint. Every
// function performs exactly one request through the given resty client and
// returns either the decoded value or a classified *errors.Error.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/go-resty/resty/v2"

	apierrors "github.com/jelmer/ridewithgps-go/client/internal/errors"
)

// call describes a single request.
type call struct {
	op     string
	method string
	path   string // may contain {placeholders} filled from params
	params map[string]string
	query  url.Values
	body   any

	// required top-level keys of the response; each must be present and non-null
	required []string
}

// execute sends the request and returns the raw body of a 2xx response.
// Non-2xx responses are classified; no request is ever retried.
func execute(ctx context.Context, rc *resty.Client, c call) (int, []byte, error) {
	req := rc.R().SetContext(ctx)
	if len(c.params) > 0 {
		req.SetPathParams(c.params)
	}
	if len(c.query) > 0 {
		req.SetQueryParamsFromValues(c.query)
	}
	if c.body != nil {
		req.SetBody(c.body)
	}

	resp, err := req.Execute(c.method, c.path)
	if err != nil {
		return 0, nil, apierrors.NewTransportError(c.op, err)
	}
	if !resp.IsSuccess() {
		return resp.StatusCode(), nil, apierrors.Classify(c.op, resp.StatusCode(), resp.Body())
	}
	return resp.StatusCode(), resp.Body(), nil
}

// fetch executes c and decodes the body into T.
func fetch[T any](ctx context.Context, rc *resty.Client, c call) (*T, error) {
	status, body, err := execute(ctx, rc, c)
	if err != nil {
		return nil, err
	}
	out, err := decode[T](body, c.required...)
	if err != nil {
		return nil, apierrors.NewDeserializationError(c.op, status, body, err)
	}
	return out, nil
}

// fetchWrapped executes c and returns the object found under key, e.g.
// {"route": {...}}. A missing key is a deserialization failure.
func fetchWrapped[T any](ctx context.Context, rc *resty.Client, c call, key string) (*T, error) {
	status, body, err := execute(ctx, rc, c)
	if err != nil {
		return nil, err
	}
	wrapper, err := decode[map[string]json.RawMessage](body, key)
	if err != nil {
		return nil, apierrors.NewDeserializationError(c.op, status, body, err)
	}
	out, err := decode[T]((*wrapper)[key])
	if err != nil {
		return nil, apierrors.NewDeserializationError(c.op, status, body, fmt.Errorf("%s: %w", key, err))
	}
	return out, nil
}

// discard executes c and ignores any 2xx body.
func discard(ctx context.Context, rc *resty.Client, c call) error {
	_, _, err := execute(ctx, rc, c)
	return err
}

// decode parses body into T. A null or empty body, a missing or null
// required key and a failed Validate all mean the body has the wrong shape.
func decode[T any](body []byte, required ...string) (*T, error) {
	if isNull(body) {
		return nil, errNullBody
	}
	if len(required) > 0 {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(body, &obj); err != nil {
			return nil, err
		}
		for _, key := range required {
			if raw, ok := obj[key]; !ok || isNull(raw) {
				return nil, &missingKeyError{key: key}
			}
		}
	}

	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, err
	}
	if v, ok := any(&out).(validator); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	return &out, nil
}

// validator is implemented by response types with required fields.
type validator interface {
	Validate() error
}

var errNullBody = errors.New("empty or null response body")

func isNull(raw []byte) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

type missingKeyError struct{ key string }

func (e *missingKeyError) Error() string { return "response has no " + strconv.Quote(e.key) + " key" }

func idParam(id uint64) map[string]string {
	return map[string]string{"id": strconv.FormatUint(id, 10)}
}
