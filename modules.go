package weaviate

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ContextionaryConcept is the text2vec-contextionary module's view of
// a concept. CamelCased compounds are split into individual words.
type ContextionaryConcept struct {
	ConcatenatedWord *ConcatenatedWord `json:"concatenatedWord,omitempty"`
	IndividualWords  []IndividualWord  `json:"individualWords,omitempty"`
}

// ConcatenatedWord describes a compound concept as a whole.
type ConcatenatedWord struct {
	ConcatenatedWord             string            `json:"concatenatedWord,omitempty"`
	SingleWords                  []string          `json:"singleWords,omitempty"`
	ConcatenatedVector           []float32         `json:"concatenatedVector,omitempty"`
	ConcatenatedNearestNeighbors []NearestNeighbor `json:"concatenatedNearestNeighbors,omitempty"`
}

// IndividualWord is one word of a concept. Present reports whether the
// contextionary knows it at all.
type IndividualWord struct {
	Word    string    `json:"word"`
	Present bool      `json:"present,omitempty"`
	Info    *WordInfo `json:"info,omitempty"`
}

// WordInfo carries a known word's vector and neighborhood.
type WordInfo struct {
	Vector           []float32         `json:"vector,omitempty"`
	NearestNeighbors []NearestNeighbor `json:"nearestNeighbors,omitempty"`
}

type NearestNeighbor struct {
	Word     string  `json:"word"`
	Distance float32 `json:"distance,omitempty"`
}

// Extension teaches the contextionary a custom concept. Weight sets
// how strongly the definition shifts the concept's vector, 0 to 1.
type Extension struct {
	Concept    string  `json:"concept"`
	Definition string  `json:"definition"`
	Weight     float32 `json:"weight"`
}

// ModulesClient wraps vectorizer module endpoints under /v1/modules.
// Only the text2vec-contextionary module exposes a REST surface.
type ModulesClient struct {
	t   *transport
	obs *observer
}

// ContextionaryConcept looks a concept up in the contextionary.
func (m *ModulesClient) ContextionaryConcept(ctx context.Context, concept string) (_ *ContextionaryConcept, err error) {
	start := time.Now()
	defer func() { m.obs.observe("modules.concept", start, err) }()

	var out ContextionaryConcept
	path := "/v1/modules/text2vec-contextionary/concepts/" + url.PathEscape(concept)
	if err = m.t.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, fmt.Errorf("get concept: %w", err)
	}
	return &out, nil
}

// ExtendContextionary adds or overrides a custom concept.
func (m *ModulesClient) ExtendContextionary(ctx context.Context, ext *Extension) (_ *Extension, err error) {
	start := time.Now()
	defer func() { m.obs.observe("modules.extend", start, err) }()

	var out Extension
	path := "/v1/modules/text2vec-contextionary/extensions"
	if err = m.t.do(ctx, http.MethodPost, path, nil, ext, &out); err != nil {
		return nil, fmt.Errorf("extend contextionary: %w", err)
	}
	return &out, nil
}
