package weaviate

// Shared test fixtures: a fake Weaviate instance backed by chi and a
// client pointed at it.

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

// newTestClient starts a fake server with the given routes and returns
// a client wired to it. Extra options are applied on top of the base
// URL. The server is torn down with the test.
func newTestClient(t *testing.T, register func(r chi.Router), opts ...Option) *Client {
	t.Helper()

	r := chi.NewRouter()
	register(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	client, err := New(srv.URL, opts...)
	if err != nil {
		t.Fatalf("New(%q) failed: %v", srv.URL, err)
	}
	return client
}

// writeJSON responds with v encoded as JSON. Handlers run off the test
// goroutine, so failures are reported with Errorf.
func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("encode response: %v", err)
	}
}

// decodeBody decodes the request body into v.
func decodeBody(t *testing.T, r *http.Request, v any) {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		t.Errorf("decode request body: %v", err)
	}
}

// writeError renders Weaviate's error envelope.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": []map[string]string{{"message": msg}},
	})
}
