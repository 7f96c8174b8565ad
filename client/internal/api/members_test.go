package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/jelmer/ridewithgps-go/client/internal/types"
)

func TestMembers(t *testing.T) {
	t.Parallel()
	rc, got := newServer(t, http.StatusOK, `{"results":[{"id":1,"role":"admin"}],"page_count":1}`)
	res, err := ListMembers(context.Background(), rc, &types.ListMembersParams{Role: ptr("admin"), Status: ptr("active")})
	if err != nil || len(res.Results) != 1 {
		t.Fatalf("unexpected result %+v, %v", res, err)
	}
	if got.Query != "role=admin&status=active" {
		t.Fatalf("unexpected query: %q", got.Query)
	}

	rc, got = newServer(t, http.StatusOK, `{"member":{"id":1,"user":{"id":99}}}`)
	m, err := GetMember(context.Background(), rc, 1)
	if err != nil || m.User == nil || m.User.ID != 99 {
		t.Fatalf("unexpected member %+v, %v", m, err)
	}
	if got.Path != "/api/v1/members/1.json" {
		t.Fatalf("unexpected path: %s", got.Path)
	}
}

func TestUpdateMember(t *testing.T) {
	t.Parallel()
	rc, got := newServer(t, http.StatusOK, `{"member":{"id":1,"role":"editor","permissions":{"manage_routes":true}}}`)

	m, err := UpdateMember(context.Background(), rc, 1, types.UpdateMemberRequest{
		Role:        ptr("editor"),
		Permissions: &types.MemberPermissions{ManageRoutes: ptr(true)},
	})
	if err != nil {
		t.Fatalf("UpdateMember error: %v", err)
	}
	if *m.Role != "editor" || !*m.Permissions.ManageRoutes {
		t.Fatalf("unexpected member: %+v", m)
	}
	if got.Method != http.MethodPut {
		t.Fatalf("unexpected method %s", got.Method)
	}
	var body map[string]any
	_ = json.Unmarshal([]byte(got.Body), &body)
	if body["role"] != "editor" || body["status"] != nil {
		t.Fatalf("unexpected body: %s", got.Body)
	}
}
