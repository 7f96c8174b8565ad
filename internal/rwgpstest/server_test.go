package rwgpstest

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_RecordsAndRoutes(t *testing.T) {
	s := New(t)
	s.Handle(http.MethodGet, "/api/v1/routes/{id:[0-9]+}.json", http.StatusOK, `{"route":{"id":1}}`)

	req, _ := http.NewRequest(http.MethodGet, s.URL+"/api/v1/routes/1.json?a=b", nil)
	req.Header.Set("x-rwgps-api-key", "k")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"route":{"id":1}}`, string(body))

	last := s.Last(t)
	assert.Equal(t, "/api/v1/routes/1.json", last.Path)
	assert.Equal(t, "a=b", last.RawQuery)
	assert.Equal(t, "k", last.Header.Get("x-rwgps-api-key"))
}

func TestServer_UnknownPathIsRecordedAs404(t *testing.T) {
	s := New(t)

	resp, err := http.Post(s.URL+"/nope", "application/json", strings.NewReader(`{"x":1}`))
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Len(t, s.Requests(), 1)
	assert.Equal(t, `{"x":1}`, string(s.Last(t).Body))
}

func TestServer_Vars(t *testing.T) {
	s := New(t)
	s.HandleFunc(http.MethodDelete, "/api/v1/points_of_interest/{poi}/routes/{route}.json", func(w http.ResponseWriter, r *http.Request) {
		v := Vars(r)
		if v["poi"] != "3" || v["route"] != "4" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	req, _ := http.NewRequest(http.MethodDelete, s.URL+"/api/v1/points_of_interest/3/routes/4.json", nil)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}
