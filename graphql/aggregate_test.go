package graphql

import (
	"strings"
	"testing"
)

func mustAggregate(t *testing.T, class string) *AggregateBuilder {
	t.Helper()
	b, err := NewAggregate(class)
	if err != nil {
		t.Fatalf("NewAggregate: %v", err)
	}
	return b
}

func TestNewAggregate_EmptyClass(t *testing.T) {
	if _, err := NewAggregate(""); err == nil {
		t.Fatal("expected error for empty class name")
	}
}

func TestAggregateBuilder_MetaCountOnly(t *testing.T) {
	doc := string(mustAggregate(t, "Article").WithMetaCount().Build())

	if !strings.Contains(doc, "meta{count}") {
		t.Errorf("doc = %q, want meta{count} in body", doc)
	}
	// Meta-count is a body expression, not a filter clause.
	if strings.Contains(doc, "(") {
		t.Errorf("doc = %q, filter block rendered without filter clauses", doc)
	}
}

func TestAggregateBuilder_NoClauses(t *testing.T) {
	doc := mustAggregate(t, "Article").
		WithFields("wordCount {count maximum mean}").
		Build()

	want := `{ Aggregate { Article { wordCount {count maximum mean} } } }`
	if got := normalize(doc); got != want {
		t.Errorf("normalized doc = %q, want %q", got, want)
	}
}

func TestAggregateBuilder_ClauseOrderFixed(t *testing.T) {
	doc := string(mustAggregate(t, "Article").
		WithLimit(10).
		WithTenant(`"tenantA"`).
		WithObjectLimit(200).
		WithNear(NearText(`{concepts: ["ai"]}`)).
		WithGroupBy(`["author"]`).
		WithWhere(`{operator: Equal}`).
		Build())

	order := []string{"where:", "groupBy:", "nearText:", "objectLimit:", "tenant:", "limit:"}
	last := -1
	for _, clause := range order {
		i := strings.Index(doc, clause)
		if i == -1 {
			t.Fatalf("clause %q missing from %q", clause, doc)
		}
		if i < last {
			t.Errorf("clause %q rendered out of order in %q", clause, doc)
		}
		last = i
	}
}

func TestAggregateBuilder_NearTagged(t *testing.T) {
	doc := string(mustAggregate(t, "Article").
		WithNear(NearVector(`{vector: [0.1, 0.2]}`)).
		WithObjectLimit(100).
		Build())

	if !strings.Contains(doc, `nearVector: {vector: [0.1, 0.2]}`) {
		t.Errorf("doc = %q, want tagged nearVector clause", doc)
	}
}

func TestAggregateBuilder_BuildIdempotent(t *testing.T) {
	b := mustAggregate(t, "Article").WithMetaCount().WithWhere(`{operator: Equal}`)

	if first, second := b.Build(), b.Build(); first != second {
		t.Errorf("Build not idempotent:\nfirst  = %q\nsecond = %q", first, second)
	}
}

func TestAggregateBuilder_FullLayout(t *testing.T) {
	doc := mustAggregate(t, "Article").
		WithMetaCount().
		WithFields("wordCount {count}").
		WithTenant(`"tenantA"`).
		Build()

	want := "{\n" +
		"  Aggregate {\n" +
		"    Article \n" +
		"    (\n" +
		"      tenant: \"tenantA\"\n" +
		"    )\n" +
		"    {\n" +
		"      meta{count}\n" +
		"      wordCount {count}\n" +
		"    }\n" +
		"  }\n" +
		"}"
	if string(doc) != want {
		t.Errorf("doc = %q, want %q", doc, want)
	}
}
