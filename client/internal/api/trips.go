package api

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/jelmer/ridewithgps-go/client/internal/types"
)

// ListTrips returns one page of the caller's trips.
func ListTrips(ctx context.Context, rc *resty.Client, params *types.ListTripsParams) (*types.ListResponse[types.Trip], error) {
	return fetch[types.ListResponse[types.Trip]](ctx, rc, call{
		op:       "list trips",
		method:   http.MethodGet,
		path:     "/api/v1/trips.json",
		query:    params.Values(),
		required: []string{"results"},
	})
}

// GetTrip retrieves a trip including track points, gear and photos.
func GetTrip(ctx context.Context, rc *resty.Client, id uint64) (*types.Trip, error) {
	return fetchWrapped[types.Trip](ctx, rc, call{
		op:     "get trip",
		method: http.MethodGet,
		path:   "/api/v1/trips/{id}.json",
		params: idParam(id),
	}, "trip")
}

// GetTripPolyline retrieves the encoded polyline of a trip.
func GetTripPolyline(ctx context.Context, rc *resty.Client, id uint64) (*types.Polyline, error) {
	return fetch[types.Polyline](ctx, rc, call{
		op:       "get trip polyline",
		method:   http.MethodGet,
		path:     "/api/v1/trips/{id}/polyline.json",
		params:   idParam(id),
		required: []string{"polyline"},
	})
}

// DeleteTrip removes a trip.
func DeleteTrip(ctx context.Context, rc *resty.Client, id uint64) error {
	return discard(ctx, rc, call{
		op:     "delete trip",
		method: http.MethodDelete,
		path:   "/api/v1/trips/{id}.json",
		params: idParam(id),
	})
}
