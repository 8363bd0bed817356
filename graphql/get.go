package graphql

import (
	"errors"
	"strings"
)

// GetBuilder assembles a GraphQL Get query for one class.
//
// Clauses accumulate through the With methods and render in a fixed
// order, so output does not depend on call order. Setting a clause
// twice keeps the second value. Clause fragments pass through unparsed:
// combinations the server forbids (such as after together with where)
// surface as dispatch errors, not build errors.
type GetBuilder struct {
	class      string
	fields     []string
	additional []string

	where   string
	limit   *int
	offset  *int
	near    NearSelector
	bm25    string
	hybrid  string
	groupBy string
	after   string
	tenant  string
	autocut *int
	sort    string
	ask     string
}

// NewGet creates a Get builder for class with the given result fields.
// Fields may be empty, which is only useful together with
// WithAdditional.
func NewGet(class string, fields ...string) (*GetBuilder, error) {
	if class == "" {
		return nil, errors.New("graphql: class name required")
	}
	return &GetBuilder{class: class, fields: fields}, nil
}

// WithWhere sets the where filter fragment, e.g.
// `{path: ["wordCount"], operator: GreaterThan, valueInt: 1000}`.
func (b *GetBuilder) WithWhere(where string) *GetBuilder {
	b.where = where
	return b
}

// WithLimit caps the number of returned objects.
func (b *GetBuilder) WithLimit(limit int) *GetBuilder {
	b.limit = &limit
	return b
}

// WithOffset skips the first offset objects. The server rejects offset
// combined with after.
func (b *GetBuilder) WithOffset(offset int) *GetBuilder {
	b.offset = &offset
	return b
}

// WithNear sets the similarity anchor, replacing any previous one.
func (b *GetBuilder) WithNear(near NearSelector) *GetBuilder {
	b.near = near
	return b
}

// WithBM25 sets the bm25 keyword-search fragment, e.g.
// `{query: "fox", properties: ["title"]}`.
func (b *GetBuilder) WithBM25(bm25 string) *GetBuilder {
	b.bm25 = bm25
	return b
}

// WithHybrid sets the hybrid-search fragment combining vector and
// keyword scoring.
func (b *GetBuilder) WithHybrid(hybrid string) *GetBuilder {
	b.hybrid = hybrid
	return b
}

// WithGroupBy sets the groupBy fragment, e.g.
// `{path: ["author"], groups: 2, objectsPerGroup: 3}`.
func (b *GetBuilder) WithGroupBy(groupBy string) *GetBuilder {
	b.groupBy = groupBy
	return b
}

// WithAfter sets the cursor for exhaustive pagination. The server
// requires a class-scoped query and rejects after combined with
// offset or sort.
func (b *GetBuilder) WithAfter(after string) *GetBuilder {
	b.after = after
	return b
}

// WithTenant scopes the query to one tenant of a multi-tenant class.
func (b *GetBuilder) WithTenant(tenant string) *GetBuilder {
	b.tenant = tenant
	return b
}

// WithAutocut limits results by jumps in the result-score curve.
func (b *GetBuilder) WithAutocut(autocut int) *GetBuilder {
	b.autocut = &autocut
	return b
}

// WithSort sets the sort fragment, e.g. `[{path: ["title"], order: asc}]`.
func (b *GetBuilder) WithSort(sort string) *GetBuilder {
	b.sort = sort
	return b
}

// WithAsk sets the ask fragment for the qna module, e.g.
// `{question: "Who discovered penicillin?"}`.
func (b *GetBuilder) WithAsk(ask string) *GetBuilder {
	b.ask = ask
	return b
}

// WithAdditional requests _additional metadata properties such as id,
// vector or certainty, replacing any previous list.
func (b *GetBuilder) WithAdditional(names ...string) *GetBuilder {
	b.additional = names
	return b
}

// Build renders the query document. It is read-only and idempotent:
// repeated calls on unchanged state produce byte-identical documents.
func (b *GetBuilder) Build() Document {
	var q strings.Builder
	q.WriteString("{\n  Get {\n    ")
	q.WriteString(b.class)
	q.WriteString(" \n")

	if b.hasFilter() {
		q.WriteString("    (\n")
		writeClause(&q, "      ", "where", b.where)
		writeIntClause(&q, "      ", "limit", b.limit)
		writeIntClause(&q, "      ", "offset", b.offset)
		if b.near.isSet() {
			q.WriteString("      " + b.near.render() + "\n")
		}
		writeClause(&q, "      ", "bm25", b.bm25)
		writeClause(&q, "      ", "hybrid", b.hybrid)
		writeClause(&q, "      ", "groupBy", b.groupBy)
		writeClause(&q, "      ", "after", b.after)
		writeClause(&q, "      ", "tenant", b.tenant)
		writeIntClause(&q, "      ", "autocut", b.autocut)
		writeClause(&q, "      ", "sort", b.sort)
		writeClause(&q, "      ", "ask", b.ask)
		q.WriteString("    )\n")
	}

	q.WriteString("    {\n")
	if len(b.fields) > 0 {
		q.WriteString("      " + strings.Join(b.fields, " ") + "\n")
	}
	if len(b.additional) > 0 {
		q.WriteString("      _additional {\n")
		q.WriteString("        " + strings.Join(b.additional, " ") + "\n")
		q.WriteString("      }\n")
	}
	q.WriteString("    }\n  }\n}")
	return Document(q.String())
}

func (b *GetBuilder) hasFilter() bool {
	return b.where != "" ||
		b.limit != nil ||
		b.offset != nil ||
		b.near.isSet() ||
		b.bm25 != "" ||
		b.hybrid != "" ||
		b.groupBy != "" ||
		b.after != "" ||
		b.tenant != "" ||
		b.autocut != nil ||
		b.sort != "" ||
		b.ask != ""
}
