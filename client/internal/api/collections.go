package api

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/jelmer/ridewithgps-go/client/internal/types"
)

func ListCollections(ctx context.Context, rc *resty.Client, params *types.ListCollectionsParams) (*types.ListResponse[types.Collection], error) {
	return fetch[types.ListResponse[types.Collection]](ctx, rc, call{
		op:       "list collections",
		method:   http.MethodGet,
		path:     "/api/v1/collections.json",
		query:    params.Values(),
		required: []string{"results"},
	})
}

// GetCollection retrieves a collection with its routes and trips embedded.
func GetCollection(ctx context.Context, rc *resty.Client, id uint64) (*types.Collection, error) {
	return fetchWrapped[types.Collection](ctx, rc, call{
		op:     "get collection",
		method: http.MethodGet,
		path:   "/api/v1/collections/{id}.json",
		params: idParam(id),
	}, "collection")
}

// GetPinnedCollection retrieves the authenticated user's pinned collection.
func GetPinnedCollection(ctx context.Context, rc *resty.Client) (*types.Collection, error) {
	return fetchWrapped[types.Collection](ctx, rc, call{
		op:     "get pinned collection",
		method: http.MethodGet,
		path:   "/api/v1/collections/pinned.json",
	}, "collection")
}
