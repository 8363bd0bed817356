package graphql

import (
	"strconv"
	"strings"
)

// Document is a rendered GraphQL query document, ready for dispatch.
// Once built it is opaque text: nothing in this package re-parses or
// rewrites it.
type Document string

// Raw wraps a caller-supplied document as-is, with no validation and no
// transformation. Escape hatch for queries the builders cannot express.
func Raw(s string) Document { return Document(s) }

// String returns the document text.
func (d Document) String() string { return string(d) }

// writeClause renders one `name: value` filter line. Empty values are
// absent clauses and render nothing.
func writeClause(q *strings.Builder, indent, name, value string) {
	if value == "" {
		return
	}
	q.WriteString(indent)
	q.WriteString(name)
	q.WriteString(": ")
	q.WriteString(value)
	q.WriteString("\n")
}

// writeIntClause renders a numeric filter line. A nil pointer is an
// absent clause; an explicitly set zero still renders.
func writeIntClause(q *strings.Builder, indent, name string, value *int) {
	if value == nil {
		return
	}
	writeClause(q, indent, name, strconv.Itoa(*value))
}
