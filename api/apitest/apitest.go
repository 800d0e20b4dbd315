// Package apitest runs fake Web API servers for binding tests.
package apitest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/escrow-tf/steamweb/api"
)

const TestKey = "TESTKEY0123456789ABCDEF0123456789"

// Server is an httptest server that records the URL of every request.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	requests []*url.URL
}

// NewServer starts a server that serves handler and closes it when the test ends.
func NewServer(t testing.TB, handler http.Handler) *Server {
	t.Helper()

	server := &Server{}
	server.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		server.mu.Lock()
		copied := *r.URL
		server.requests = append(server.requests, &copied)
		server.mu.Unlock()

		handler.ServeHTTP(w, r)
	}))
	t.Cleanup(server.Close)

	return server
}

// Transport returns a transport pointed at the server using TestKey.
func (s *Server) Transport(options ...func(*api.HttpTransportOptions)) *api.HttpTransport {
	transportOptions := api.HttpTransportOptions{
		WebApiKey:  TestKey,
		BaseURL:    s.URL,
		HTTPClient: s.Client(),
	}
	for _, option := range options {
		option(&transportOptions)
	}
	return api.NewTransport(transportOptions)
}

// Requests returns the URLs received so far.
func (s *Server) Requests() []*url.URL {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]*url.URL(nil), s.requests...)
}

// LastRequest returns the most recent URL, or nil.
func (s *Server) LastRequest() *url.URL {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.requests) == 0 {
		return nil
	}
	return s.requests[len(s.requests)-1]
}

// JSON answers every request with status and body.
func JSON(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = fmt.Fprint(w, body)
	}
}

// Routes dispatches on the request path, e.g. "/IStoreService/GetAppList/v1/".
// Unknown paths get a 404.
func Routes(routes map[string]http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handler, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		handler.ServeHTTP(w, r)
	}
}

// Path is the request path the transport uses for endpoint.
func Path(endpoint api.Endpoint) string {
	return "/" + endpoint.Path()
}
