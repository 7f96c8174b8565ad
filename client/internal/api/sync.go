package api

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/go-resty/resty/v2"

	"github.com/jelmer/ridewithgps-go/client/internal/types"
)

// GetChangesSince lists routes, trips, events and collections changed after
// since. The timestamp is sent as ISO-8601 in UTC.
func GetChangesSince(ctx context.Context, rc *resty.Client, since time.Time) (*types.SyncResponse, error) {
	return fetch[types.SyncResponse](ctx, rc, call{
		op:       "sync",
		method:   http.MethodGet,
		path:     "/api/v1/sync.json",
		query:    url.Values{"since": {FormatSince(since)}},
		required: []string{"items", "server_datetime"},
	})
}

// FormatSince renders t the way the sync endpoint expects it.
func FormatSince(t time.Time) string {
	return strfmt.DateTime(t.UTC()).String()
}
