// Package rwgpstest provides a fake RideWithGPS API for tests. Routes are
// registered per test with canned responses; every request that reaches the
// server is recorded, matched or not.
package rwgpstest

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/gorilla/mux"
)

// Request is a recorded inbound request.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	// RawQuery preserves the exact encoded query string.
	RawQuery string
	Header   http.Header
	Body     []byte
}

// Server is an httptest.Server routing with gorilla/mux.
type Server struct {
	*httptest.Server

	router *mux.Router

	mu       sync.Mutex
	requests []Request
}

// New starts a server that is closed when the test ends. Unregistered paths
// answer 404 with a JSON error body.
func New(t testing.TB) *Server {
	t.Helper()
	s := &Server{router: mux.NewRouter()}
	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, `{"error":"not found"}`)
	})
	s.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, `{"error":"method not allowed"}`)
	})
	s.Server = httptest.NewServer(http.HandlerFunc(s.record))
	t.Cleanup(s.Close)
	return s
}

func (s *Server) record(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	r.Body = io.NopCloser(bytes.NewReader(body))

	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Method:   r.Method,
		Path:     r.URL.Path,
		Query:    r.URL.Query(),
		RawQuery: r.URL.RawQuery,
		Header:   r.Header.Clone(),
		Body:     body,
	})
	s.mu.Unlock()

	s.router.ServeHTTP(w, r)
}

// Handle answers method+path with a fixed status and JSON body. path may use
// mux variables, e.g. "/api/v1/routes/{id}.json".
func (s *Server) Handle(method, path string, status int, body string) {
	s.HandleFunc(method, path, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, status, body)
	})
}

// HandleFunc registers a custom handler. Use Vars to read path variables.
func (s *Server) HandleFunc(method, path string, h http.HandlerFunc) {
	s.router.HandleFunc(path, h).Methods(method)
}

// Vars returns the path variables of a request routed by the server.
func Vars(r *http.Request) map[string]string { return mux.Vars(r) }

// Requests returns a copy of everything received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// Last returns the most recent request. It fails the test if there is none.
func (s *Server) Last(t testing.TB) Request {
	t.Helper()
	reqs := s.Requests()
	if len(reqs) == 0 {
		t.Fatalf("rwgpstest: no requests received")
	}
	return reqs[len(reqs)-1]
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	if body != "" {
		w.Header().Set("Content-Type", "application/json")
	}
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}
