package weaviate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Per-item statuses of batch writes.
const (
	BatchStatusSuccess = "SUCCESS"
	BatchStatusFailed  = "FAILED"
	BatchStatusDryRun  = "DRYRUN"
)

// Output verbosity of batch deletes.
const (
	BatchOutputMinimal = "minimal"
	BatchOutputVerbose = "verbose"
)

// BatchResult is the per-item outcome of a batch write.
type BatchResult struct {
	Status string       `json:"status,omitempty"`
	Errors *BatchErrors `json:"errors,omitempty"`
}

// BatchErrors carries the failure messages of one batch item.
type BatchErrors struct {
	Error []BatchErrorMessage `json:"error,omitempty"`
}

type BatchErrorMessage struct {
	Message string `json:"message"`
}

// BatchObject is one element of a batch insert response: the object as
// stored plus its result.
type BatchObject struct {
	Object
	Result BatchResult `json:"result"`
}

// BatchReference links one object to another through a reference
// property, both ends in beacon URI form.
type BatchReference struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Tenant string `json:"tenant,omitempty"`
}

// NewBatchReference builds the from/to beacon pair for one link:
// weaviate://localhost/<fromClass>/<fromID>/<property> pointing at
// weaviate://localhost/<toClass>/<toID>.
func NewBatchReference(fromClass string, fromID uuid.UUID, property, toClass string, toID uuid.UUID) BatchReference {
	return BatchReference{
		From: "weaviate://localhost/" + fromClass + "/" + fromID.String() + "/" + property,
		To:   "weaviate://localhost/" + toClass + "/" + toID.String(),
	}
}

// BatchReferenceResult is one element of a batch reference response.
type BatchReferenceResult struct {
	Result BatchResult `json:"result"`
}

// BatchDeleteRequest selects objects of one class for deletion by
// where-filter. Where is a raw GraphQL-style filter object, passed
// through untouched.
type BatchDeleteRequest struct {
	Match  BatchDeleteMatch `json:"match"`
	Output string           `json:"output,omitempty"`
	DryRun bool             `json:"dryRun,omitempty"`
}

type BatchDeleteMatch struct {
	Class string          `json:"class"`
	Where json.RawMessage `json:"where"`
}

// BatchDeleteResponse echoes the request and reports what matched.
type BatchDeleteResponse struct {
	Match   BatchDeleteMatch   `json:"match"`
	Output  string             `json:"output,omitempty"`
	DryRun  bool               `json:"dryRun,omitempty"`
	Results BatchDeleteResults `json:"results"`
}

type BatchDeleteResults struct {
	Matches    int                 `json:"matches"`
	Limit      int                 `json:"limit,omitempty"`
	Successful int                 `json:"successful"`
	Failed     int                 `json:"failed"`
	Objects    []BatchDeleteObject `json:"objects,omitempty"`
}

// BatchDeleteObject appears in verbose delete output, one per matched
// object.
type BatchDeleteObject struct {
	ID     uuid.UUID    `json:"id"`
	Status string       `json:"status"`
	Errors *BatchErrors `json:"errors,omitempty"`
}

// BatchClient wraps the /v1/batch endpoints.
type BatchClient struct {
	t   *transport
	obs *observer
}

// AddObjects stores many objects in one request. The response carries
// one entry per input object, in order; inspect each Result for
// per-item failures.
func (b *BatchClient) AddObjects(ctx context.Context, objects []Object, cl ConsistencyLevel) (_ []BatchObject, err error) {
	start := time.Now()
	defer func() { b.obs.observe("batch.add_objects", start, err) }()

	body := struct {
		Objects []Object `json:"objects"`
	}{Objects: objects}

	var out []BatchObject
	if err = b.t.do(ctx, http.MethodPost, "/v1/batch/objects", consistencyValues(cl), body, &out); err != nil {
		return nil, fmt.Errorf("batch add objects: %w", err)
	}
	return out, nil
}

// AddReferences creates many cross-references in one request.
func (b *BatchClient) AddReferences(ctx context.Context, refs []BatchReference, cl ConsistencyLevel) (_ []BatchReferenceResult, err error) {
	start := time.Now()
	defer func() { b.obs.observe("batch.add_references", start, err) }()

	var out []BatchReferenceResult
	if err = b.t.do(ctx, http.MethodPost, "/v1/batch/references", consistencyValues(cl), refs, &out); err != nil {
		return nil, fmt.Errorf("batch add references: %w", err)
	}
	return out, nil
}

// DeleteObjects removes every object of a class matching the filter.
// With DryRun set, the response reports what would match without
// deleting anything.
func (b *BatchClient) DeleteObjects(ctx context.Context, req *BatchDeleteRequest, cl ConsistencyLevel) (_ *BatchDeleteResponse, err error) {
	start := time.Now()
	defer func() { b.obs.observe("batch.delete_objects", start, err) }()

	var out BatchDeleteResponse
	if err = b.t.do(ctx, http.MethodDelete, "/v1/batch/objects", consistencyValues(cl), req, &out); err != nil {
		return nil, fmt.Errorf("batch delete objects: %w", err)
	}
	return &out, nil
}
