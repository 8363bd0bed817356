package weaviate

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Schema is the full class schema of an instance.
type Schema struct {
	Classes []Class `json:"classes"`
}

// Class defines one class of the schema: its properties, vectorizer
// and index configuration. ModuleConfig is kept schemaless since its
// keys depend on the enabled modules.
type Class struct {
	Name                string               `json:"class"`
	Description         string               `json:"description,omitempty"`
	Vectorizer          string               `json:"vectorizer,omitempty"`
	VectorIndexType     string               `json:"vectorIndexType,omitempty"`
	VectorIndexConfig   *VectorIndexConfig   `json:"vectorIndexConfig,omitempty"`
	InvertedIndexConfig *InvertedIndexConfig `json:"invertedIndexConfig,omitempty"`
	ShardingConfig      *ShardingConfig      `json:"shardingConfig,omitempty"`
	ModuleConfig        map[string]any       `json:"moduleConfig,omitempty"`
	Properties          []Property           `json:"properties,omitempty"`
	MultiTenancy        *MultiTenancyConfig  `json:"multiTenancyConfig,omitempty"`
	Replication         *ReplicationConfig   `json:"replicationConfig,omitempty"`
}

// Distance metrics for vector indexes.
const (
	DistanceCosine    = "cosine"
	DistanceDot       = "dot"
	DistanceL2Squared = "l2-squared"
	DistanceHamming   = "hamming"
	DistanceManhattan = "manhattan"
)

// VectorIndexConfig tunes the vector index of a class. Pointer fields
// distinguish "unset, use the server default" from an explicit value.
type VectorIndexConfig struct {
	Distance       string    `json:"distance,omitempty"`
	EF             *int      `json:"ef,omitempty"`
	EFConstruction *int      `json:"efConstruction,omitempty"`
	MaxConnections *int      `json:"maxConnections,omitempty"`
	Skip           *bool     `json:"skip,omitempty"`
	PQ             *PQConfig `json:"pq,omitempty"`
}

// PQConfig enables product quantization on a vector index.
type PQConfig struct {
	Enabled       bool           `json:"enabled"`
	TrainingLimit int            `json:"trainingLimit,omitempty"`
	Segments      int            `json:"segments,omitempty"`
	Centroids     int            `json:"centroids,omitempty"`
	Encoder       *EncoderConfig `json:"encoder,omitempty"`
}

// EncoderConfig selects the product-quantization encoder.
type EncoderConfig struct {
	Type         string `json:"type,omitempty"`
	Distribution string `json:"distribution,omitempty"`
}

// InvertedIndexConfig tunes BM25 scoring and stopword handling.
type InvertedIndexConfig struct {
	BM25                   *BM25Config      `json:"bm25,omitempty"`
	Stopwords              *StopwordsConfig `json:"stopwords,omitempty"`
	IndexTimestamps        bool             `json:"indexTimestamps,omitempty"`
	IndexNullState         bool             `json:"indexNullState,omitempty"`
	IndexPropertyLength    bool             `json:"indexPropertyLength,omitempty"`
	CleanupIntervalSeconds int              `json:"cleanupIntervalSeconds,omitempty"`
}

// BM25Config holds the free parameters of the BM25 ranking function.
type BM25Config struct {
	B  float64 `json:"b"`
	K1 float64 `json:"k1"`
}

// StopwordsConfig selects a stopword preset and per-class deviations
// from it.
type StopwordsConfig struct {
	Preset    string   `json:"preset,omitempty"`
	Additions []string `json:"additions,omitempty"`
	Removals  []string `json:"removals,omitempty"`
}

// ShardingConfig controls how a class is split across a cluster.
type ShardingConfig struct {
	VirtualPerPhysical  int    `json:"virtualPerPhysical,omitempty"`
	DesiredCount        int    `json:"desiredCount,omitempty"`
	DesiredVirtualCount int    `json:"desiredVirtualCount,omitempty"`
	Key                 string `json:"key,omitempty"`
	Strategy            string `json:"strategy,omitempty"`
	Function            string `json:"function,omitempty"`
}

// Tokenization modes for text properties.
const (
	TokenizationWord       = "word"
	TokenizationLowercase  = "lowercase"
	TokenizationWhitespace = "whitespace"
	TokenizationField      = "field"
)

// Property is a single typed attribute of a class. DataType carries
// one primitive type name, or one or more class names for a reference
// property.
type Property struct {
	Name            string         `json:"name"`
	DataType        []string       `json:"dataType"`
	Description     string         `json:"description,omitempty"`
	Tokenization    string         `json:"tokenization,omitempty"`
	IndexFilterable *bool          `json:"indexFilterable,omitempty"`
	IndexSearchable *bool          `json:"indexSearchable,omitempty"`
	ModuleConfig    map[string]any `json:"moduleConfig,omitempty"`
}

// MultiTenancyConfig toggles multi-tenancy for a class.
type MultiTenancyConfig struct {
	Enabled bool `json:"enabled"`
}

// ReplicationConfig sets the replication factor of a class.
type ReplicationConfig struct {
	Factor int `json:"factor,omitempty"`
}

// Shard statuses accepted by UpdateShard.
const (
	ShardStatusReady    = "READY"
	ShardStatusReadOnly = "READONLY"
)

// Shard reports the status of one shard of a class.
type Shard struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// Tenant activity statuses.
const (
	TenantStatusHot  = "HOT"
	TenantStatusCold = "COLD"
)

// Tenant is one tenant of a multi-tenant class.
type Tenant struct {
	Name           string `json:"name"`
	ActivityStatus string `json:"activityStatus,omitempty"`
}

// SchemaClient wraps the /v1/schema endpoints.
type SchemaClient struct {
	t   *transport
	obs *observer
}

// Get fetches the full schema.
func (s *SchemaClient) Get(ctx context.Context) (_ *Schema, err error) {
	start := time.Now()
	defer func() { s.obs.observe("schema.get", start, err) }()

	var out Schema
	if err = s.t.do(ctx, http.MethodGet, "/v1/schema", nil, nil, &out); err != nil {
		return nil, fmt.Errorf("get schema: %w", err)
	}
	return &out, nil
}

// CreateClass adds a class to the schema and returns it as stored,
// with server-side defaults filled in.
func (s *SchemaClient) CreateClass(ctx context.Context, class *Class) (_ *Class, err error) {
	start := time.Now()
	defer func() { s.obs.observe("schema.create_class", start, err) }()

	var out Class
	if err = s.t.do(ctx, http.MethodPost, "/v1/schema", nil, class, &out); err != nil {
		return nil, fmt.Errorf("create class: %w", err)
	}
	return &out, nil
}

// GetClass fetches a single class definition.
func (s *SchemaClient) GetClass(ctx context.Context, name string) (_ *Class, err error) {
	start := time.Now()
	defer func() { s.obs.observe("schema.get_class", start, err) }()

	var out Class
	if err = s.t.do(ctx, http.MethodGet, classPath(name), nil, nil, &out); err != nil {
		return nil, fmt.Errorf("get class: %w", err)
	}
	return &out, nil
}

// UpdateClass replaces the mutable settings of an existing class. The
// class is addressed by class.Name.
func (s *SchemaClient) UpdateClass(ctx context.Context, class *Class) (_ *Class, err error) {
	start := time.Now()
	defer func() { s.obs.observe("schema.update_class", start, err) }()

	var out Class
	if err = s.t.do(ctx, http.MethodPut, classPath(class.Name), nil, class, &out); err != nil {
		return nil, fmt.Errorf("update class: %w", err)
	}
	return &out, nil
}

// DeleteClass removes a class and all of its objects.
func (s *SchemaClient) DeleteClass(ctx context.Context, name string) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("schema.delete_class", start, err) }()

	if err = s.t.do(ctx, http.MethodDelete, classPath(name), nil, nil, nil); err != nil {
		return fmt.Errorf("delete class: %w", err)
	}
	return nil
}

// AddProperty appends a property to an existing class. Existing
// objects get a null value for it.
func (s *SchemaClient) AddProperty(ctx context.Context, class string, prop *Property) (_ *Property, err error) {
	start := time.Now()
	defer func() { s.obs.observe("schema.add_property", start, err) }()

	var out Property
	if err = s.t.do(ctx, http.MethodPost, classPath(class)+"/properties", nil, prop, &out); err != nil {
		return nil, fmt.Errorf("add property: %w", err)
	}
	return &out, nil
}

// Shards lists the shards of a class with their statuses.
func (s *SchemaClient) Shards(ctx context.Context, class string) (_ []Shard, err error) {
	start := time.Now()
	defer func() { s.obs.observe("schema.shards", start, err) }()

	var out []Shard
	if err = s.t.do(ctx, http.MethodGet, classPath(class)+"/shards", nil, nil, &out); err != nil {
		return nil, fmt.Errorf("get shards: %w", err)
	}
	return out, nil
}

// UpdateShard sets the status of one shard, e.g. ShardStatusReadOnly
// before a backup.
func (s *SchemaClient) UpdateShard(ctx context.Context, class, shard, status string) (_ *Shard, err error) {
	start := time.Now()
	defer func() { s.obs.observe("schema.update_shard", start, err) }()

	body := map[string]string{"status": status}
	var out struct {
		Status string `json:"status"`
	}
	path := classPath(class) + "/shards/" + url.PathEscape(shard)
	if err = s.t.do(ctx, http.MethodPut, path, nil, body, &out); err != nil {
		return nil, fmt.Errorf("update shard: %w", err)
	}
	return &Shard{Name: shard, Status: out.Status}, nil
}

// Tenants lists the tenants of a multi-tenant class.
func (s *SchemaClient) Tenants(ctx context.Context, class string) (_ []Tenant, err error) {
	start := time.Now()
	defer func() { s.obs.observe("schema.tenants", start, err) }()

	var out []Tenant
	if err = s.t.do(ctx, http.MethodGet, classPath(class)+"/tenants", nil, nil, &out); err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}
	return out, nil
}

// CreateTenants adds tenants to a multi-tenant class.
func (s *SchemaClient) CreateTenants(ctx context.Context, class string, tenants []Tenant) (_ []Tenant, err error) {
	start := time.Now()
	defer func() { s.obs.observe("schema.create_tenants", start, err) }()

	var out []Tenant
	if err = s.t.do(ctx, http.MethodPost, classPath(class)+"/tenants", nil, tenants, &out); err != nil {
		return nil, fmt.Errorf("create tenants: %w", err)
	}
	return out, nil
}

// UpdateTenants changes the activity status of existing tenants.
func (s *SchemaClient) UpdateTenants(ctx context.Context, class string, tenants []Tenant) (_ []Tenant, err error) {
	start := time.Now()
	defer func() { s.obs.observe("schema.update_tenants", start, err) }()

	var out []Tenant
	if err = s.t.do(ctx, http.MethodPut, classPath(class)+"/tenants", nil, tenants, &out); err != nil {
		return nil, fmt.Errorf("update tenants: %w", err)
	}
	return out, nil
}

// DeleteTenants removes tenants, and their objects, by name.
func (s *SchemaClient) DeleteTenants(ctx context.Context, class string, names []string) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("schema.delete_tenants", start, err) }()

	if err = s.t.do(ctx, http.MethodDelete, classPath(class)+"/tenants", nil, names, nil); err != nil {
		return fmt.Errorf("delete tenants: %w", err)
	}
	return nil
}

func classPath(name string) string {
	return "/v1/schema/" + url.PathEscape(name)
}
