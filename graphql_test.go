package weaviate

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/kailas-cloud/weaviate-go/graphql"
)

func TestGraphQL_Do(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, func(r chi.Router) {
		r.Post("/v1/graphql", func(w http.ResponseWriter, r *http.Request) {
			var body struct {
				Query string `json:"query"`
			}
			decodeBody(t, r, &body)
			gotQuery = body.Query
			writeJSON(t, w, http.StatusOK, map[string]any{
				"data": map[string]any{
					"Get": map[string]any{
						"Article": []map[string]any{{"title": "go"}},
					},
				},
			})
		})
	})

	q, err := graphql.NewGet("Article", "title")
	if err != nil {
		t.Fatalf("NewGet() error: %v", err)
	}
	doc := q.WithLimit(5).Build()

	res, err := client.GraphQL().Do(context.Background(), doc)
	if err != nil {
		t.Fatalf("Do() error: %v", err)
	}
	if gotQuery != doc.String() {
		t.Errorf("posted query = %q, want %q", gotQuery, doc.String())
	}
	if _, ok := res.Data["Get"]; !ok {
		t.Error("Data has no Get key")
	}
	if res.Errors != nil {
		t.Errorf("Errors = %s, want none", res.Errors)
	}
}

func TestGraphQL_QueryErrorsPassThrough(t *testing.T) {
	client := newTestClient(t, func(r chi.Router) {
		r.Post("/v1/graphql", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(t, w, http.StatusOK, map[string]any{
				"data":   nil,
				"errors": []map[string]any{{"message": "Cannot query field"}},
			})
		})
	})

	res, err := client.GraphQL().Raw(context.Background(), "{ Get { Missing } }")
	if err != nil {
		t.Fatalf("Raw() error: %v", err)
	}
	var msgs []struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(res.Errors, &msgs); err != nil {
		t.Fatalf("decode Errors: %v", err)
	}
	if len(msgs) != 1 || msgs[0].Message != "Cannot query field" {
		t.Errorf("Errors = %s, want one Cannot query field entry", res.Errors)
	}
}

func TestGraphQL_UnprocessableStatus(t *testing.T) {
	client := newTestClient(t, func(r chi.Router) {
		r.Post("/v1/graphql", func(w http.ResponseWriter, _ *http.Request) {
			writeError(w, http.StatusUnprocessableEntity, "syntax error in query")
		})
	})

	_, err := client.GraphQL().Raw(context.Background(), "{ nope")
	if err == nil {
		t.Fatal("Raw() succeeded, want error")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, http.StatusUnprocessableEntity)
	}
	if apiErr.Message != "syntax error in query" {
		t.Errorf("Message = %q, want %q", apiErr.Message, "syntax error in query")
	}
}
