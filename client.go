package weaviate

// Client is a Weaviate API client. It groups endpoint wrappers for the
// REST surface (schema, objects, batch, backups, classification,
// nodes, modules) together with a GraphQL query dispatcher. All
// wrappers share a single HTTP client and connection pool.
//
// Construct with New; the zero value is not usable. A Client is safe
// for concurrent use.
type Client struct {
	t   *transport
	obs *observer

	schema         *SchemaClient
	objects        *ObjectsClient
	batch          *BatchClient
	backups        *BackupsClient
	classification *ClassificationClient
	nodes          *NodesClient
	modules        *ModulesClient
	graphql        *GraphQLClient
}

// New creates a Client for the Weaviate instance at baseURL, for
// example "http://localhost:8080". New validates the URL but performs
// no I/O; use Ready to probe the instance.
func New(baseURL string, opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, opt := range opts {
		opt.apply(cfg)
	}

	t, err := newTransport(baseURL, cfg)
	if err != nil {
		return nil, err
	}
	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	return &Client{
		t:              t,
		obs:            obs,
		schema:         &SchemaClient{t: t, obs: obs},
		objects:        &ObjectsClient{t: t, obs: obs},
		batch:          &BatchClient{t: t, obs: obs},
		backups:        &BackupsClient{t: t, obs: obs},
		classification: &ClassificationClient{t: t, obs: obs},
		nodes:          &NodesClient{t: t, obs: obs},
		modules:        &ModulesClient{t: t, obs: obs},
		graphql:        &GraphQLClient{t: t, obs: obs},
	}, nil
}

// Schema accesses the /v1/schema endpoints.
func (c *Client) Schema() *SchemaClient { return c.schema }

// Objects accesses the /v1/objects endpoints.
func (c *Client) Objects() *ObjectsClient { return c.objects }

// Batch accesses the /v1/batch endpoints.
func (c *Client) Batch() *BatchClient { return c.batch }

// Backups accesses the /v1/backups endpoints.
func (c *Client) Backups() *BackupsClient { return c.backups }

// Classification accesses the /v1/classifications endpoints.
func (c *Client) Classification() *ClassificationClient { return c.classification }

// Nodes accesses the /v1/nodes endpoint.
func (c *Client) Nodes() *NodesClient { return c.nodes }

// Modules accesses vectorizer module endpoints under /v1/modules.
func (c *Client) Modules() *ModulesClient { return c.modules }

// GraphQL accesses the /v1/graphql query endpoint.
func (c *Client) GraphQL() *GraphQLClient { return c.graphql }
