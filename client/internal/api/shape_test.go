package api

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"

	apierrors "github.com/jelmer/ridewithgps-go/client/internal/errors"
)

var time0 = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func TestWrongShapeIsDeserializationError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	cases := []struct {
		name string
		body string
		call func(*resty.Client) error
	}{
		{"login without auth_token", `{"token":"abc123"}`, func(rc *resty.Client) error {
			_, err := CreateAuthToken(ctx, rc, "a@b.c", "pw")
			return err
		}},
		{"login with empty auth_token", `{"auth_token":""}`, func(rc *resty.Client) error {
			_, err := CreateAuthToken(ctx, rc, "a@b.c", "pw")
			return err
		}},
		{"login user without id", `{"auth_token":"abc","user":{"name":"Ada"}}`, func(rc *resty.Client) error {
			_, err := CreateAuthToken(ctx, rc, "a@b.c", "pw")
			return err
		}},
		{"current user without id", `{"name":"Ada"}`, func(rc *resty.Client) error {
			_, err := GetCurrentUser(ctx, rc)
			return err
		}},
		{"current user null", `null`, func(rc *resty.Client) error {
			_, err := GetCurrentUser(ctx, rc)
			return err
		}},
		{"route without id", `{"route":{"name":"x"}}`, func(rc *resty.Client) error {
			_, err := GetRoute(ctx, rc, 1)
			return err
		}},
		{"trip without id", `{"trip":{"name":"x"}}`, func(rc *resty.Client) error {
			_, err := GetTrip(ctx, rc, 1)
			return err
		}},
		{"collection without id", `{"collection":{}}`, func(rc *resty.Client) error {
			_, err := GetPinnedCollection(ctx, rc)
			return err
		}},
		{"event without id", `{"event":{"name":"x"}}`, func(rc *resty.Client) error {
			_, err := GetEvent(ctx, rc, 1)
			return err
		}},
		{"point of interest without id", `{"point_of_interest":{"name":"x"}}`, func(rc *resty.Client) error {
			_, err := GetPointOfInterest(ctx, rc, 1)
			return err
		}},
		{"member without id", `{"member":{"role":"admin"}}`, func(rc *resty.Client) error {
			_, err := GetMember(ctx, rc, 1)
			return err
		}},
		{"polyline null body", `null`, func(rc *resty.Client) error {
			_, err := GetRoutePolyline(ctx, rc, 1)
			return err
		}},
		{"polyline empty body", ``, func(rc *resty.Client) error {
			_, err := GetTripPolyline(ctx, rc, 1)
			return err
		}},
		{"polyline without polyline", `{"parent_id":1}`, func(rc *resty.Client) error {
			_, err := GetRoutePolyline(ctx, rc, 1)
			return err
		}},
		{"list without results", `{}`, func(rc *resty.Client) error {
			_, err := ListRoutes(ctx, rc, nil)
			return err
		}},
		{"list with null results", `{"results":null}`, func(rc *resty.Client) error {
			_, err := ListTrips(ctx, rc, nil)
			return err
		}},
		{"list item without id", `{"results":[{"id":1},{"name":"x"}]}`, func(rc *resty.Client) error {
			_, err := ListEvents(ctx, rc, nil)
			return err
		}},
		{"list body is an array", `[]`, func(rc *resty.Client) error {
			_, err := ListMembers(ctx, rc, nil)
			return err
		}},
		{"sync without items", `{"server_datetime":"2024-03-02T00:00:00Z"}`, func(rc *resty.Client) error {
			_, err := GetChangesSince(ctx, rc, time0)
			return err
		}},
		{"sync without server_datetime", `{"items":[]}`, func(rc *resty.Client) error {
			_, err := GetChangesSince(ctx, rc, time0)
			return err
		}},
		{"sync item without id", `{"items":[{"item_type":"route"}],"server_datetime":"2024-03-02T00:00:00Z"}`, func(rc *resty.Client) error {
			_, err := GetChangesSince(ctx, rc, time0)
			return err
		}},
	}
	for _, tc := range cases {
		rc, _ := newServer(t, http.StatusOK, tc.body)
		err := tc.call(rc)
		if !errors.Is(err, apierrors.ErrDeserialization) {
			t.Fatalf("%s: expected deserialization error, got %v", tc.name, err)
		}
		var e *apierrors.Error
		if !errors.As(err, &e) || e.StatusCode != http.StatusOK || e.Body != tc.body {
			t.Fatalf("%s: error does not carry status and body: %+v", tc.name, err)
		}
	}
}
