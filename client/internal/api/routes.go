package api

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/jelmer/ridewithgps-go/client/internal/types"
)

// ListRoutes returns one page of the caller's routes.
func ListRoutes(ctx context.Context, rc *resty.Client, params *types.ListRoutesParams) (*types.ListResponse[types.Route], error) {
	return fetch[types.ListResponse[types.Route]](ctx, rc, call{
		op:       "list routes",
		method:   http.MethodGet,
		path:     "/api/v1/routes.json",
		query:    params.Values(),
		required: []string{"results"},
	})
}

// GetRoute retrieves a route including track points, cues, POIs and photos.
func GetRoute(ctx context.Context, rc *resty.Client, id uint64) (*types.Route, error) {
	return fetchWrapped[types.Route](ctx, rc, call{
		op:     "get route",
		method: http.MethodGet,
		path:   "/api/v1/routes/{id}.json",
		params: idParam(id),
	}, "route")
}

// GetRoutePolyline retrieves the encoded polyline of a route.
func GetRoutePolyline(ctx context.Context, rc *resty.Client, id uint64) (*types.Polyline, error) {
	return fetch[types.Polyline](ctx, rc, call{
		op:       "get route polyline",
		method:   http.MethodGet,
		path:     "/api/v1/routes/{id}/polyline.json",
		params:   idParam(id),
		required: []string{"polyline"},
	})
}

// DeleteRoute removes a route. Any 2xx status counts as success.
func DeleteRoute(ctx context.Context, rc *resty.Client, id uint64) error {
	return discard(ctx, rc, call{
		op:     "delete route",
		method: http.MethodDelete,
		path:   "/api/v1/routes/{id}.json",
		params: idParam(id),
	})
}
