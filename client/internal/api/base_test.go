package api

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/go-resty/resty/v2"

	apierrors "github.com/jelmer/ridewithgps-go/client/internal/errors"
)

func TestExecute_TransportError(t *testing.T) {
	t.Parallel()
	rc := resty.NewWithClient(&http.Client{Transport: &errRT{}}).SetBaseURL("http://example.invalid")

	_, err := GetRoute(context.Background(), rc, 1)
	if !errors.Is(err, apierrors.ErrTransport) {
		t.Fatalf("expected transport error, got %v", err)
	}
}

func TestExecute_StatusClassification(t *testing.T) {
	t.Parallel()
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, apierrors.ErrAuth},
		{http.StatusForbidden, apierrors.ErrAuth},
		{http.StatusNotFound, apierrors.ErrNotFound},
		{http.StatusUnprocessableEntity, apierrors.ErrValidation},
		{http.StatusBadGateway, apierrors.ErrServer},
		{http.StatusTeapot, apierrors.ErrUnexpectedStatus},
	}
	for _, tc := range cases {
		rc, _ := newServer(t, tc.status, `{"error":"nope"}`)
		_, err := GetTrip(context.Background(), rc, 7)
		if !errors.Is(err, tc.want) {
			t.Fatalf("status %d: expected %v, got %v", tc.status, tc.want, err)
		}
		var e *apierrors.Error
		if !errors.As(err, &e) || e.StatusCode != tc.status {
			t.Fatalf("status %d: missing status on error %v", tc.status, err)
		}
	}
}

func TestFetchWrapped_MissingKey(t *testing.T) {
	t.Parallel()
	rc, _ := newServer(t, http.StatusOK, `{"trip":{"id":1}}`)

	_, err := GetRoute(context.Background(), rc, 1)
	if !errors.Is(err, apierrors.ErrDeserialization) {
		t.Fatalf("expected deserialization error, got %v", err)
	}
}

func TestFetchWrapped_NullKey(t *testing.T) {
	t.Parallel()
	rc, _ := newServer(t, http.StatusOK, `{"event":null}`)

	if _, err := GetEvent(context.Background(), rc, 1); !errors.Is(err, apierrors.ErrDeserialization) {
		t.Fatalf("expected deserialization error, got %v", err)
	}
}

func TestFetch_MalformedBody(t *testing.T) {
	t.Parallel()
	rc, _ := newServer(t, http.StatusOK, `not json`)

	_, err := GetCurrentUser(context.Background(), rc)
	if !errors.Is(err, apierrors.ErrDeserialization) {
		t.Fatalf("expected deserialization error, got %v", err)
	}
}

func TestExecute_CanceledContext(t *testing.T) {
	t.Parallel()
	rc, got := newServer(t, http.StatusOK, `{}`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := GetCurrentUser(ctx, rc)
	if !errors.Is(err, apierrors.ErrTransport) {
		t.Fatalf("expected transport error, got %v", err)
	}
	if got.Method != "" {
		t.Fatalf("request should not have reached the server")
	}
}
