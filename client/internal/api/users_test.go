package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
)

func TestCreateAuthToken_Success(t *testing.T) {
	t.Parallel()
	rc, got := newServer(t, http.StatusCreated, `{"auth_token":"abc123","user":{"id":1,"name":"Ada"}}`)

	tok, err := CreateAuthToken(context.Background(), rc, "u@example.com", "pw")
	if err != nil {
		t.Fatalf("CreateAuthToken error: %v", err)
	}
	if tok.AuthToken != "abc123" || tok.User == nil || tok.User.ID != 1 {
		t.Fatalf("unexpected token: %+v", tok)
	}
	if got.Method != http.MethodPost || got.Path != "/api/v1/auth_tokens" {
		t.Fatalf("unexpected request %s %s", got.Method, got.Path)
	}
	var body map[string]string
	if err := json.Unmarshal([]byte(got.Body), &body); err != nil {
		t.Fatalf("body not JSON: %v", err)
	}
	if body["email"] != "u@example.com" || body["password"] != "pw" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestGetCurrentUser_BareObject(t *testing.T) {
	t.Parallel()
	rc, got := newServer(t, http.StatusOK, `{"id":42,"email":"a@b.c","premium":true}`)

	u, err := GetCurrentUser(context.Background(), rc)
	if err != nil {
		t.Fatalf("GetCurrentUser error: %v", err)
	}
	if u.ID != 42 || u.Email == nil || *u.Email != "a@b.c" || u.Premium == nil || !*u.Premium {
		t.Fatalf("unexpected user: %+v", u)
	}
	if got.Path != "/api/v1/users/current" {
		t.Fatalf("unexpected path: %s", got.Path)
	}
}
