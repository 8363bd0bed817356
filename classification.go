package weaviate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Classification types.
const (
	ClassificationKNN      = "knn"
	ClassificationZeroshot = "zeroshot"
)

// Classification statuses.
const (
	ClassificationRunning   = "running"
	ClassificationCompleted = "completed"
	ClassificationFailed    = "failed"
)

// ClassificationRequest starts a classification of one class:
// ClassifyProperties are the reference properties to fill in,
// BasedOnProperties the properties to judge by. Filters is a raw
// GraphQL-style filter object restricting source/training objects.
type ClassificationRequest struct {
	Class              string                  `json:"class"`
	Type               string                  `json:"type"`
	ClassifyProperties []string                `json:"classifyProperties"`
	BasedOnProperties  []string                `json:"basedOnProperties,omitempty"`
	Filters            json.RawMessage         `json:"filters,omitempty"`
	Settings           *ClassificationSettings `json:"settings,omitempty"`
}

// ClassificationSettings tunes knn classification.
type ClassificationSettings struct {
	K int `json:"k,omitempty"`
}

// Classification is the server's record of a run. Classification is
// asynchronous: Schedule returns with ClassificationRunning and Get is
// polled until the status settles.
type Classification struct {
	ID                 uuid.UUID               `json:"id"`
	Class              string                  `json:"class"`
	Type               string                  `json:"type"`
	ClassifyProperties []string                `json:"classifyProperties,omitempty"`
	BasedOnProperties  []string                `json:"basedOnProperties,omitempty"`
	Status             string                  `json:"status"`
	Meta               *ClassificationMeta     `json:"meta,omitempty"`
	Settings           *ClassificationSettings `json:"settings,omitempty"`
	Error              string                  `json:"error,omitempty"`
}

// ClassificationMeta carries run timestamps and object counts.
type ClassificationMeta struct {
	Started        time.Time `json:"started,omitzero"`
	Completed      time.Time `json:"completed,omitzero"`
	Count          int       `json:"count,omitempty"`
	CountSucceeded int       `json:"countSucceeded,omitempty"`
	CountFailed    int       `json:"countFailed,omitempty"`
}

// ClassificationClient wraps the /v1/classifications endpoints.
type ClassificationClient struct {
	t   *transport
	obs *observer
}

// Schedule submits a classification run and returns its record, ID
// assigned.
func (c *ClassificationClient) Schedule(ctx context.Context, req *ClassificationRequest) (_ *Classification, err error) {
	start := time.Now()
	defer func() { c.obs.observe("classification.schedule", start, err) }()

	var out Classification
	if err = c.t.do(ctx, http.MethodPost, "/v1/classifications", nil, req, &out); err != nil {
		return nil, fmt.Errorf("schedule classification: %w", err)
	}
	return &out, nil
}

// Get fetches the state of a classification run.
func (c *ClassificationClient) Get(ctx context.Context, id uuid.UUID) (_ *Classification, err error) {
	start := time.Now()
	defer func() { c.obs.observe("classification.get", start, err) }()

	var out Classification
	if err = c.t.do(ctx, http.MethodGet, "/v1/classifications/"+id.String(), nil, nil, &out); err != nil {
		return nil, fmt.Errorf("get classification: %w", err)
	}
	return &out, nil
}
