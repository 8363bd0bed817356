// Package weaviate is a client for the Weaviate vector database. It
// covers the REST surface (schema, objects, batch, backups,
// classification, nodes, modules) and the GraphQL query endpoint.
//
// A Client is constructed once and shared; construction performs no
// I/O:
//
//	client, err := weaviate.New("http://localhost:8080",
//		weaviate.WithAPIKey(os.Getenv("WEAVIATE_API_KEY")),
//		weaviate.WithTimeout(10*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	meta, err := client.Meta(ctx)
//
// Query documents are assembled with the graphql subpackage and
// dispatched through the client:
//
//	q, err := graphql.NewGet("Article", "title", "url")
//	if err != nil {
//		log.Fatal(err)
//	}
//	res, err := client.GraphQL().Do(ctx, q.WithLimit(10).Build())
//
// Every operation issues exactly one HTTP request: no retries, no
// caching, no resilience logic. Server failures surface as *APIError
// carrying the response status.
package weaviate
