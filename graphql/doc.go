// Package graphql builds Weaviate GraphQL query documents.
//
// A builder accumulates optional clauses through chainable With methods
// and renders them into an immutable Document with Build. Clause values
// are raw GraphQL fragments in Weaviate's native syntax; the package
// never parses or validates them, so malformed fragments are rejected
// by the server at dispatch time.
//
//	query, _ := graphql.NewGet("Article", "title", "url")
//	doc := query.
//	    WithNear(graphql.NearText(`{concepts: ["climate"]}`)).
//	    WithLimit(10).
//	    Build()
//
// Raw wraps a hand-written document for anything the builders cannot
// express.
package graphql
