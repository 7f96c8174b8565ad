package api

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/jelmer/ridewithgps-go/client/internal/types"
)

// CreateAuthToken exchanges email and password for an auth token.
func CreateAuthToken(ctx context.Context, rc *resty.Client, email, password string) (*types.AuthToken, error) {
	return fetch[types.AuthToken](ctx, rc, call{
		op:       "create auth token",
		method:   http.MethodPost,
		path:     "/api/v1/auth_tokens",
		body:     types.CreateAuthTokenRequest{Email: email, Password: password},
		required: []string{"auth_token"},
	})
}

// GetCurrentUser returns the user the auth token belongs to.
func GetCurrentUser(ctx context.Context, rc *resty.Client) (*types.User, error) {
	return fetch[types.User](ctx, rc, call{
		op:     "get current user",
		method: http.MethodGet,
		path:   "/api/v1/users/current",
	})
}
