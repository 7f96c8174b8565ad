package client_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	client "github.com/jelmer/ridewithgps-go/client"
	"github.com/jelmer/ridewithgps-go/internal/rwgpstest"
)

// TestEventLifecycle drives create, update, get and delete against a fake
// server that keeps a single event in memory.
func TestEventLifecycle(t *testing.T) {
	srv := rwgpstest.New(t)
	stored := map[string]any{"id": 10}

	srv.HandleFunc(http.MethodPost, "/api/v1/events.json", func(w http.ResponseWriter, r *http.Request) {
		mergeBody(t, r, stored)
		writeEvent(t, w, http.StatusCreated, stored)
	})
	srv.HandleFunc(http.MethodPut, "/api/v1/events/{id}.json", func(w http.ResponseWriter, r *http.Request) {
		mergeBody(t, r, stored)
		writeEvent(t, w, http.StatusOK, stored)
	})
	srv.HandleFunc(http.MethodGet, "/api/v1/events/{id}.json", func(w http.ResponseWriter, r *http.Request) {
		writeEvent(t, w, http.StatusOK, stored)
	})
	srv.Handle(http.MethodDelete, "/api/v1/events/{id}.json", http.StatusNoContent, "")

	c, err := client.New(srv.URL, "k", client.WithAuthToken("tok"))
	require.NoError(t, err)
	ctx := context.Background()

	name := "Sunday Ride"
	vis := client.VisibilityPrivate
	ev, err := c.CreateEvent(ctx, client.EventRequest{Name: &name, Visibility: &vis})
	require.NoError(t, err)
	assert.Equal(t, uint64(10), ev.ID)
	assert.Equal(t, "Sunday Ride", *ev.Name)
	assert.Equal(t, client.VisibilityPrivate, *ev.Visibility)

	loc := "Harbour"
	ev, err = c.UpdateEvent(ctx, ev.ID, client.EventRequest{Location: &loc})
	require.NoError(t, err)
	assert.Equal(t, "Harbour", *ev.Location)
	assert.Equal(t, "Sunday Ride", *ev.Name, "update must not clear unset fields")

	got, err := c.GetEvent(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, ev, got)

	require.NoError(t, c.DeleteEvent(ctx, ev.ID))
	assert.Len(t, srv.Requests(), 4)
}

func mergeBody(t *testing.T, r *http.Request, into map[string]any) {
	t.Helper()
	b, err := io.ReadAll(r.Body)
	require.NoError(t, err)
	var patch map[string]any
	require.NoError(t, json.Unmarshal(b, &patch))
	for k, v := range patch {
		into[k] = v
	}
}

func writeEvent(t *testing.T, w http.ResponseWriter, status int, ev map[string]any) {
	t.Helper()
	b, err := json.Marshal(map[string]any{"event": ev})
	require.NoError(t, err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}
