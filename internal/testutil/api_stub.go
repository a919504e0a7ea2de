package testutil

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

// RecordedRequest is one request seen by an APIStub.
type RecordedRequest struct {
	Path  string
	Query string
}

// Responder returns the status code and body for a query. Bodies are JSON
// encoded unless they are a RawBody.
type Responder func(query string) (int, any)

// RawBody is written verbatim instead of being JSON encoded.
type RawBody string

// APIStub is a fake recommendation API that records every request.
type APIStub struct {
	Server *httptest.Server

	mu              sync.Mutex
	requests        []RecordedRequest
	suggestions     Responder
	recommendations Responder
}

// NewAPIStub starts a stub answering /suggestions, /recommendations and
// /health. Both list endpoints answer 200 with an empty array until a
// responder is set. The server is closed when the test ends.
func NewAPIStub(t *testing.T) *APIStub {
	t.Helper()

	s := &APIStub{
		suggestions:     Static(http.StatusOK, []string{}),
		recommendations: Static(http.StatusOK, []any{}),
	}

	r := chi.NewRouter()
	r.Get("/suggestions", s.handle(func() Responder { return s.suggestions }))
	r.Get("/recommendations", s.handle(func() Responder { return s.recommendations }))
	r.Get("/health", s.handle(func() Responder { return Static(http.StatusOK, map[string]string{"status": "ok"}) }))

	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Server.Close)

	return s
}

// Static always answers with the same status and body.
func Static(status int, body any) Responder {
	return func(string) (int, any) { return status, body }
}

func (s *APIStub) URL() string {
	return s.Server.URL
}

func (s *APIStub) OnSuggestions(fn Responder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.suggestions = fn
}

func (s *APIStub) OnRecommendations(fn Responder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recommendations = fn
}

// Requests returns a copy of the requests seen so far.
func (s *APIStub) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]RecordedRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// RequestsTo returns the query values sent to path.
func (s *APIStub) RequestsTo(path string) []string {
	var queries []string
	for _, r := range s.Requests() {
		if r.Path == path {
			queries = append(queries, r.Query)
		}
	}
	return queries
}

func (s *APIStub) handle(responder func() Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("query")

		s.mu.Lock()
		s.requests = append(s.requests, RecordedRequest{Path: r.URL.Path, Query: query})
		fn := responder()
		s.mu.Unlock()

		status, body := fn(query)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if raw, ok := body.(RawBody); ok {
			_, _ = w.Write([]byte(raw))
			return
		}
		_ = json.NewEncoder(w).Encode(body)
	}
}
