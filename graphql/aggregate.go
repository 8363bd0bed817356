package graphql

import (
	"errors"
	"strings"
)

// AggregateBuilder assembles a GraphQL Aggregate query for one class.
// Same contract as GetBuilder: fixed clause order, last write wins,
// fragments pass through unparsed.
type AggregateBuilder struct {
	class     string
	fields    []string
	metaCount bool

	where       string
	groupBy     string
	near        NearSelector
	objectLimit *int
	tenant      string
	limit       *int
}

// NewAggregate creates an Aggregate builder for class.
func NewAggregate(class string) (*AggregateBuilder, error) {
	if class == "" {
		return nil, errors.New("graphql: class name required")
	}
	return &AggregateBuilder{class: class}, nil
}

// WithWhere sets the where filter fragment.
func (b *AggregateBuilder) WithWhere(where string) *AggregateBuilder {
	b.where = where
	return b
}

// WithGroupBy sets the groupBy property path, e.g. `["author"]`.
func (b *AggregateBuilder) WithGroupBy(groupBy string) *AggregateBuilder {
	b.groupBy = groupBy
	return b
}

// WithNear sets the similarity anchor, replacing any previous one.
func (b *AggregateBuilder) WithNear(near NearSelector) *AggregateBuilder {
	b.near = near
	return b
}

// WithObjectLimit caps how many objects feed the aggregation; the
// server requires a near selector alongside it.
func (b *AggregateBuilder) WithObjectLimit(limit int) *AggregateBuilder {
	b.objectLimit = &limit
	return b
}

// WithTenant scopes the query to one tenant of a multi-tenant class.
func (b *AggregateBuilder) WithTenant(tenant string) *AggregateBuilder {
	b.tenant = tenant
	return b
}

// WithLimit caps the number of returned groups.
func (b *AggregateBuilder) WithLimit(limit int) *AggregateBuilder {
	b.limit = &limit
	return b
}

// WithMetaCount requests the meta{count} aggregate in the body.
func (b *AggregateBuilder) WithMetaCount() *AggregateBuilder {
	b.metaCount = true
	return b
}

// WithFields sets the aggregate field expressions, e.g.
// `wordCount {count maximum mean}`, replacing any previous list.
func (b *AggregateBuilder) WithFields(fields ...string) *AggregateBuilder {
	b.fields = fields
	return b
}

// Build renders the query document. Read-only and idempotent.
func (b *AggregateBuilder) Build() Document {
	var q strings.Builder
	q.WriteString("{\n  Aggregate {\n    ")
	q.WriteString(b.class)
	q.WriteString(" \n")

	if b.hasFilter() {
		q.WriteString("    (\n")
		writeClause(&q, "      ", "where", b.where)
		writeClause(&q, "      ", "groupBy", b.groupBy)
		if b.near.isSet() {
			q.WriteString("      " + b.near.render() + "\n")
		}
		writeIntClause(&q, "      ", "objectLimit", b.objectLimit)
		writeClause(&q, "      ", "tenant", b.tenant)
		writeIntClause(&q, "      ", "limit", b.limit)
		q.WriteString("    )\n")
	}

	q.WriteString("    {\n")
	if b.metaCount {
		q.WriteString("      meta{count}\n")
	}
	if len(b.fields) > 0 {
		q.WriteString("      " + strings.Join(b.fields, " ") + "\n")
	}
	q.WriteString("    }\n  }\n}")
	return Document(q.String())
}

func (b *AggregateBuilder) hasFilter() bool {
	return b.where != "" ||
		b.groupBy != "" ||
		b.near.isSet() ||
		b.objectLimit != nil ||
		b.tenant != "" ||
		b.limit != nil
}
