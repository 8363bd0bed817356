package weaviate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ConsistencyLevel selects how many replicas must acknowledge a read
// or write. The zero value leaves the choice to the server.
type ConsistencyLevel string

const (
	ConsistencyOne    ConsistencyLevel = "ONE"
	ConsistencyQuorum ConsistencyLevel = "QUORUM"
	ConsistencyAll    ConsistencyLevel = "ALL"
)

// Object is a single data object of a class. Properties holds the
// attribute values keyed by property name; Vector is only populated
// when explicitly requested or supplied.
type Object struct {
	ID                 uuid.UUID      `json:"id,omitzero"`
	Class              string         `json:"class"`
	Properties         map[string]any `json:"properties,omitempty"`
	Vector             []float32      `json:"vector,omitempty"`
	Tenant             string         `json:"tenant,omitempty"`
	CreationTimeUnix   int64          `json:"creationTimeUnix,omitempty"`
	LastUpdateTimeUnix int64          `json:"lastUpdateTimeUnix,omitempty"`
	VectorWeights      *uint64        `json:"vectorWeights,omitempty"`
	Additional         map[string]any `json:"additional,omitempty"`
}

// ObjectList is one page of a listing.
type ObjectList struct {
	Objects      []Object        `json:"objects"`
	TotalResults int             `json:"totalResults,omitempty"`
	Deprecations json.RawMessage `json:"deprecations,omitempty"`
}

// Beacon addresses an object (or one of its reference properties) in
// Weaviate's beacon URI form.
type Beacon struct {
	Beacon string `json:"beacon"`
}

// NewBeacon points at one object: weaviate://localhost/<class>/<id>.
func NewBeacon(class string, id uuid.UUID) Beacon {
	return Beacon{Beacon: "weaviate://localhost/" + class + "/" + id.String()}
}

// ListParams narrows an object listing. Offset-based and cursor-based
// (After) pagination are mutually exclusive; the cursor form requires
// Class and tolerates no Sort/Order.
type ListParams struct {
	Class   string
	Limit   *int
	Offset  *int
	After   uuid.UUID // exclusive cursor, zero when unused
	Include []string  // e.g. "vector", "classification"
	Sort    []string  // property names
	Order   []string  // "asc" or "desc", positionally matching Sort
	Tenant  string
}

func (p *ListParams) validate() error {
	if p.After == uuid.Nil {
		return nil
	}
	if p.Offset != nil {
		return errors.New("offset and after cursor are mutually exclusive")
	}
	if p.Class == "" {
		return errors.New("after cursor requires class")
	}
	if len(p.Sort) > 0 || len(p.Order) > 0 {
		return errors.New("after cursor cannot be combined with sort")
	}
	return nil
}

func (p *ListParams) values() url.Values {
	v := url.Values{}
	if p.Class != "" {
		v.Set("class", p.Class)
	}
	if p.Limit != nil {
		v.Set("limit", strconv.Itoa(*p.Limit))
	}
	if p.Offset != nil {
		v.Set("offset", strconv.Itoa(*p.Offset))
	}
	if p.After != uuid.Nil {
		v.Set("after", p.After.String())
	}
	if len(p.Include) > 0 {
		v.Set("include", strings.Join(p.Include, ","))
	}
	if len(p.Sort) > 0 {
		v.Set("sort", strings.Join(p.Sort, ","))
	}
	if len(p.Order) > 0 {
		v.Set("order", strings.Join(p.Order, ","))
	}
	if p.Tenant != "" {
		v.Set("tenant", p.Tenant)
	}
	return v
}

// GetParams narrows a single-object fetch.
type GetParams struct {
	Include     []string
	Consistency ConsistencyLevel
	Tenant      string
}

func (p *GetParams) values() url.Values {
	if p == nil {
		return nil
	}
	v := url.Values{}
	if len(p.Include) > 0 {
		v.Set("include", strings.Join(p.Include, ","))
	}
	if p.Consistency != "" {
		v.Set("consistency_level", string(p.Consistency))
	}
	if p.Tenant != "" {
		v.Set("tenant", p.Tenant)
	}
	return v
}

// WriteParams qualifies deletes and reference writes.
type WriteParams struct {
	Consistency ConsistencyLevel
	Tenant      string
}

func (p *WriteParams) values() url.Values {
	if p == nil {
		return nil
	}
	v := url.Values{}
	if p.Consistency != "" {
		v.Set("consistency_level", string(p.Consistency))
	}
	if p.Tenant != "" {
		v.Set("tenant", p.Tenant)
	}
	return v
}

func consistencyValues(cl ConsistencyLevel) url.Values {
	if cl == "" {
		return nil
	}
	return url.Values{"consistency_level": {string(cl)}}
}

// ObjectsClient wraps the /v1/objects endpoints.
type ObjectsClient struct {
	t   *transport
	obs *observer
}

// List fetches a page of objects. A nil params lists everything with
// server defaults.
func (o *ObjectsClient) List(ctx context.Context, p *ListParams) (_ *ObjectList, err error) {
	start := time.Now()
	defer func() { o.obs.observe("objects.list", start, err) }()

	var params url.Values
	if p != nil {
		if err = p.validate(); err != nil {
			return nil, fmt.Errorf("list objects: %w", err)
		}
		params = p.values()
	}

	var out ObjectList
	if err = o.t.do(ctx, http.MethodGet, "/v1/objects", params, nil, &out); err != nil {
		return nil, fmt.Errorf("list objects: %w", err)
	}
	return &out, nil
}

// Create stores a new object and returns it as stored. Leave obj.ID
// zero to let the server assign one.
func (o *ObjectsClient) Create(ctx context.Context, obj *Object, cl ConsistencyLevel) (_ *Object, err error) {
	start := time.Now()
	defer func() { o.obs.observe("objects.create", start, err) }()

	var out Object
	if err = o.t.do(ctx, http.MethodPost, "/v1/objects", consistencyValues(cl), obj, &out); err != nil {
		return nil, fmt.Errorf("create object: %w", err)
	}
	return &out, nil
}

// Get fetches one object by class and id.
func (o *ObjectsClient) Get(ctx context.Context, class string, id uuid.UUID, p *GetParams) (_ *Object, err error) {
	start := time.Now()
	defer func() { o.obs.observe("objects.get", start, err) }()

	var out Object
	if err = o.t.do(ctx, http.MethodGet, objectPath(class, id), p.values(), nil, &out); err != nil {
		return nil, fmt.Errorf("get object: %w", err)
	}
	return &out, nil
}

// Exists reports whether an object is present, without fetching it.
func (o *ObjectsClient) Exists(ctx context.Context, class string, id uuid.UUID) (_ bool, err error) {
	start := time.Now()
	defer func() { o.obs.observe("objects.exists", start, err) }()

	if err = o.t.do(ctx, http.MethodHead, objectPath(class, id), nil, nil, nil); err != nil {
		if statusOf(err) == http.StatusNotFound {
			return false, nil
		}
		return false, fmt.Errorf("check object: %w", err)
	}
	return true, nil
}

// Replace overwrites an object's properties wholesale. The object is
// addressed by obj.Class and obj.ID; properties absent from obj are
// cleared.
func (o *ObjectsClient) Replace(ctx context.Context, obj *Object, cl ConsistencyLevel) (_ *Object, err error) {
	start := time.Now()
	defer func() { o.obs.observe("objects.replace", start, err) }()

	var out Object
	if err = o.t.do(ctx, http.MethodPut, objectPath(obj.Class, obj.ID), consistencyValues(cl), obj, &out); err != nil {
		return nil, fmt.Errorf("replace object: %w", err)
	}
	return &out, nil
}

// Merge updates only the properties present in obj, leaving the rest
// untouched.
func (o *ObjectsClient) Merge(ctx context.Context, obj *Object, cl ConsistencyLevel) (err error) {
	start := time.Now()
	defer func() { o.obs.observe("objects.merge", start, err) }()

	if err = o.t.do(ctx, http.MethodPatch, objectPath(obj.Class, obj.ID), consistencyValues(cl), obj, nil); err != nil {
		return fmt.Errorf("merge object: %w", err)
	}
	return nil
}

// Delete removes one object.
func (o *ObjectsClient) Delete(ctx context.Context, class string, id uuid.UUID, p *WriteParams) (err error) {
	start := time.Now()
	defer func() { o.obs.observe("objects.delete", start, err) }()

	if err = o.t.do(ctx, http.MethodDelete, objectPath(class, id), p.values(), nil, nil); err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}

// Validate checks an object against the schema without storing it. A
// schema violation surfaces as an *APIError from the server.
func (o *ObjectsClient) Validate(ctx context.Context, obj *Object) (err error) {
	start := time.Now()
	defer func() { o.obs.observe("objects.validate", start, err) }()

	if err = o.t.do(ctx, http.MethodPost, "/v1/objects/validate", nil, obj, nil); err != nil {
		return fmt.Errorf("validate object: %w", err)
	}
	return nil
}

// AddReference appends a beacon to a reference property of an object.
func (o *ObjectsClient) AddReference(ctx context.Context, class string, id uuid.UUID, property string, ref Beacon, p *WriteParams) (err error) {
	start := time.Now()
	defer func() { o.obs.observe("objects.add_reference", start, err) }()

	if err = o.t.do(ctx, http.MethodPost, referencePath(class, id, property), p.values(), ref, nil); err != nil {
		return fmt.Errorf("add reference: %w", err)
	}
	return nil
}

// ReplaceReferences sets the full beacon list of a reference property.
func (o *ObjectsClient) ReplaceReferences(ctx context.Context, class string, id uuid.UUID, property string, refs []Beacon, p *WriteParams) (err error) {
	start := time.Now()
	defer func() { o.obs.observe("objects.replace_references", start, err) }()

	if err = o.t.do(ctx, http.MethodPut, referencePath(class, id, property), p.values(), refs, nil); err != nil {
		return fmt.Errorf("replace references: %w", err)
	}
	return nil
}

// DeleteReference removes one beacon from a reference property.
func (o *ObjectsClient) DeleteReference(ctx context.Context, class string, id uuid.UUID, property string, ref Beacon, p *WriteParams) (err error) {
	start := time.Now()
	defer func() { o.obs.observe("objects.delete_reference", start, err) }()

	if err = o.t.do(ctx, http.MethodDelete, referencePath(class, id, property), p.values(), ref, nil); err != nil {
		return fmt.Errorf("delete reference: %w", err)
	}
	return nil
}

func objectPath(class string, id uuid.UUID) string {
	return "/v1/objects/" + url.PathEscape(class) + "/" + id.String()
}

func referencePath(class string, id uuid.UUID, property string) string {
	return objectPath(class, id) + "/references/" + url.PathEscape(property)
}
