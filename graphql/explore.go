package graphql

import "strings"

// ExploreBuilder assembles a top-level GraphQL Explore query. Explore
// is class-agnostic, so there is no header name and nothing to validate
// at construction.
//
// The server requires a text or vector similarity anchor for Explore;
// the builder does not enforce that, and an anchorless document is
// rejected at dispatch time.
type ExploreBuilder struct {
	fields []string
	limit  *int
	near   NearSelector
}

// NewExplore creates an Explore builder.
func NewExplore() *ExploreBuilder {
	return &ExploreBuilder{}
}

// WithLimit caps the number of returned results.
func (b *ExploreBuilder) WithLimit(limit int) *ExploreBuilder {
	b.limit = &limit
	return b
}

// WithNear sets the similarity anchor, replacing any previous one.
func (b *ExploreBuilder) WithNear(near NearSelector) *ExploreBuilder {
	b.near = near
	return b
}

// WithFields sets the requested result fields (beacon, certainty,
// className, distance), replacing any previous list.
func (b *ExploreBuilder) WithFields(fields ...string) *ExploreBuilder {
	b.fields = fields
	return b
}

// Build renders the query document. Unlike Get and Aggregate, Explore
// always emits its parenthesized argument block, even when empty.
// Read-only and idempotent.
func (b *ExploreBuilder) Build() Document {
	var q strings.Builder
	q.WriteString("{\n  Explore\n")

	q.WriteString("  (\n")
	writeIntClause(&q, "    ", "limit", b.limit)
	if b.near.isSet() {
		q.WriteString("    " + b.near.render() + "\n")
	}
	q.WriteString("  )\n")

	q.WriteString("  {\n")
	if len(b.fields) > 0 {
		q.WriteString("    " + strings.Join(b.fields, " ") + "\n")
	}
	q.WriteString("  }\n}")
	return Document(q.String())
}
