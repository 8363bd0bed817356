package graphql

import (
	"strings"
	"testing"
)

func TestExploreBuilder_AlwaysEmitsArgumentBlock(t *testing.T) {
	doc := string(NewExplore().Build())

	if !strings.Contains(doc, "(") || !strings.Contains(doc, ")") {
		t.Errorf("doc = %q, want argument block even when empty", doc)
	}
}

func TestExploreBuilder_LimitBeforeNear(t *testing.T) {
	doc := string(NewExplore().
		WithNear(NearText(`{concepts: ["travel"]}`)).
		WithLimit(3).
		WithFields("beacon", "certainty", "className").
		Build())

	li := strings.Index(doc, "limit:")
	ni := strings.Index(doc, "nearText:")
	if li == -1 || ni == -1 {
		t.Fatalf("missing clause in %q", doc)
	}
	if li > ni {
		t.Errorf("limit rendered after nearText in %q", doc)
	}
	if !strings.Contains(doc, "beacon certainty className") {
		t.Errorf("doc = %q, want joined fields line", doc)
	}
}

func TestExploreBuilder_NearVector(t *testing.T) {
	doc := NewExplore().
		WithNear(NearVector(`{vector: [0.3]}`)).
		WithFields("beacon").
		Build()

	want := `{ Explore ( nearVector: {vector: [0.3]} ) { beacon } }`
	if got := normalize(doc); got != want {
		t.Errorf("normalized doc = %q, want %q", got, want)
	}
}

func TestExploreBuilder_NearReplaces(t *testing.T) {
	doc := string(NewExplore().
		WithNear(NearVector(`{vector: [0.3]}`)).
		WithNear(NearText(`{concepts: ["x"]}`)).
		Build())

	if !strings.Contains(doc, "nearText:") {
		t.Errorf("doc = %q, want nearText clause", doc)
	}
	if strings.Contains(doc, "nearVector:") {
		t.Errorf("doc = %q, replaced nearVector still present", doc)
	}
}

func TestExploreBuilder_BuildIdempotent(t *testing.T) {
	b := NewExplore().WithLimit(2).WithNear(NearText(`{concepts: ["x"]}`))

	if first, second := b.Build(), b.Build(); first != second {
		t.Errorf("Build not idempotent:\nfirst  = %q\nsecond = %q", first, second)
	}
}
