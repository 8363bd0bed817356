package weaviate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/kailas-cloud/weaviate-go/graphql"
)

// GraphQLResponse is a raw GraphQL response. Data maps each top-level
// operation (Get, Aggregate, Explore) to its undecoded payload; Errors
// carries the server's query-level error array verbatim when present.
// The dispatcher never interprets Errors; that is the caller's call.
type GraphQLResponse struct {
	Data   map[string]json.RawMessage `json:"data,omitempty"`
	Errors json.RawMessage            `json:"errors,omitempty"`
}

// GraphQLClient dispatches query documents to /v1/graphql.
type GraphQLClient struct {
	t   *transport
	obs *observer
}

// Do posts one query document. A 2xx answer is decoded and returned
// as-is, including any query-level errors in the body; a non-2xx
// answer is an *APIError carrying the response status. Nothing is
// retried.
func (g *GraphQLClient) Do(ctx context.Context, doc graphql.Document) (_ *GraphQLResponse, err error) {
	start := time.Now()
	defer func() { g.obs.observe("graphql.query", start, err) }()

	body := struct {
		Query string `json:"query"`
	}{Query: doc.String()}

	var out GraphQLResponse
	if err = g.t.do(ctx, http.MethodPost, "/v1/graphql", nil, body, &out); err != nil {
		return nil, fmt.Errorf("graphql query: %w", err)
	}
	return &out, nil
}

// Raw dispatches a query string verbatim, shorthand for
// Do(ctx, graphql.Raw(s)).
func (g *GraphQLClient) Raw(ctx context.Context, s string) (*GraphQLResponse, error) {
	return g.Do(ctx, graphql.Raw(s))
}
