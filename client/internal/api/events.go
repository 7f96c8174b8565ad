package api

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/jelmer/ridewithgps-go/client/internal/types"
)

func ListEvents(ctx context.Context, rc *resty.Client, params *types.ListEventsParams) (*types.ListResponse[types.Event], error) {
	return fetch[types.ListResponse[types.Event]](ctx, rc, call{
		op:       "list events",
		method:   http.MethodGet,
		path:     "/api/v1/events.json",
		query:    params.Values(),
		required: []string{"results"},
	})
}

func CreateEvent(ctx context.Context, rc *resty.Client, req types.EventRequest) (*types.Event, error) {
	return fetchWrapped[types.Event](ctx, rc, call{
		op:     "create event",
		method: http.MethodPost,
		path:   "/api/v1/events.json",
		body:   req,
	}, "event")
}

func GetEvent(ctx context.Context, rc *resty.Client, id uint64) (*types.Event, error) {
	return fetchWrapped[types.Event](ctx, rc, call{
		op:     "get event",
		method: http.MethodGet,
		path:   "/api/v1/events/{id}.json",
		params: idParam(id),
	}, "event")
}

// UpdateEvent sends only the non-nil fields of req.
func UpdateEvent(ctx context.Context, rc *resty.Client, id uint64, req types.EventRequest) (*types.Event, error) {
	return fetchWrapped[types.Event](ctx, rc, call{
		op:     "update event",
		method: http.MethodPut,
		path:   "/api/v1/events/{id}.json",
		params: idParam(id),
		body:   req,
	}, "event")
}

func DeleteEvent(ctx context.Context, rc *resty.Client, id uint64) error {
	return discard(ctx, rc, call{
		op:     "delete event",
		method: http.MethodDelete,
		path:   "/api/v1/events/{id}.json",
		params: idParam(id),
	})
}
