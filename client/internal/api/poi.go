package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-resty/resty/v2"

	"github.com/jelmer/ridewithgps-go/client/internal/types"
)

// Points of interest are only available to organization accounts.

func ListPointsOfInterest(ctx context.Context, rc *resty.Client, params *types.ListPointsOfInterestParams) (*types.ListResponse[types.PointOfInterest], error) {
	return fetch[types.ListResponse[types.PointOfInterest]](ctx, rc, call{
		op:       "list points of interest",
		method:   http.MethodGet,
		path:     "/api/v1/points_of_interest.json",
		query:    params.Values(),
		required: []string{"results"},
	})
}

func CreatePointOfInterest(ctx context.Context, rc *resty.Client, req types.PointOfInterestRequest) (*types.PointOfInterest, error) {
	return fetchWrapped[types.PointOfInterest](ctx, rc, call{
		op:     "create point of interest",
		method: http.MethodPost,
		path:   "/api/v1/points_of_interest.json",
		body:   req,
	}, "point_of_interest")
}

func GetPointOfInterest(ctx context.Context, rc *resty.Client, id uint64) (*types.PointOfInterest, error) {
	return fetchWrapped[types.PointOfInterest](ctx, rc, call{
		op:     "get point of interest",
		method: http.MethodGet,
		path:   "/api/v1/points_of_interest/{id}.json",
		params: idParam(id),
	}, "point_of_interest")
}

func UpdatePointOfInterest(ctx context.Context, rc *resty.Client, id uint64, req types.PointOfInterestRequest) (*types.PointOfInterest, error) {
	return fetchWrapped[types.PointOfInterest](ctx, rc, call{
		op:     "update point of interest",
		method: http.MethodPut,
		path:   "/api/v1/points_of_interest/{id}.json",
		params: idParam(id),
		body:   req,
	}, "point_of_interest")
}

func DeletePointOfInterest(ctx context.Context, rc *resty.Client, id uint64) error {
	return discard(ctx, rc, call{
		op:     "delete point of interest",
		method: http.MethodDelete,
		path:   "/api/v1/points_of_interest/{id}.json",
		params: idParam(id),
	})
}

// AssociatePointOfInterestWithRoute attaches a POI to a route. Repeating the
// call is as idempotent as the server makes it.
func AssociatePointOfInterestWithRoute(ctx context.Context, rc *resty.Client, poiID, routeID uint64) error {
	return discard(ctx, rc, call{
		op:     "associate point of interest",
		method: http.MethodPost,
		path:   "/api/v1/points_of_interest/{poi_id}/routes/{route_id}.json",
		params: poiRouteParams(poiID, routeID),
	})
}

func DisassociatePointOfInterestFromRoute(ctx context.Context, rc *resty.Client, poiID, routeID uint64) error {
	return discard(ctx, rc, call{
		op:     "disassociate point of interest",
		method: http.MethodDelete,
		path:   "/api/v1/points_of_interest/{poi_id}/routes/{route_id}.json",
		params: poiRouteParams(poiID, routeID),
	})
}

func poiRouteParams(poiID, routeID uint64) map[string]string {
	return map[string]string{
		"poi_id":   strconv.FormatUint(poiID, 10),
		"route_id": strconv.FormatUint(routeID, 10),
	}
}
