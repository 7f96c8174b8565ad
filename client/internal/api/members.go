package api

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/jelmer/ridewithgps-go/client/internal/types"
)

// Members are only available to organization accounts.

func ListMembers(ctx context.Context, rc *resty.Client, params *types.ListMembersParams) (*types.ListResponse[types.Member], error) {
	return fetch[types.ListResponse[types.Member]](ctx, rc, call{
		op:       "list members",
		method:   http.MethodGet,
		path:     "/api/v1/members.json",
		query:    params.Values(),
		required: []string{"results"},
	})
}

func GetMember(ctx context.Context, rc *resty.Client, id uint64) (*types.Member, error) {
	return fetchWrapped[types.Member](ctx, rc, call{
		op:     "get member",
		method: http.MethodGet,
		path:   "/api/v1/members/{id}.json",
		params: idParam(id),
	}, "member")
}

// UpdateMember changes role, status or permissions of a member.
func UpdateMember(ctx context.Context, rc *resty.Client, id uint64, req types.UpdateMemberRequest) (*types.Member, error) {
	return fetchWrapped[types.Member](ctx, rc, call{
		op:     "update member",
		method: http.MethodPut,
		path:   "/api/v1/members/{id}.json",
		params: idParam(id),
		body:   req,
	}, "member")
}
