package graphql

import "testing"

func TestRaw_Identity(t *testing.T) {
	// Passthrough must preserve the input exactly, whitespace included.
	tests := []string{
		`{ Get { Article { title } } }`,
		"  {\n\tGet{Article{title}}\n}  ",
		"",
	}
	for _, s := range tests {
		if doc := Raw(s); string(doc) != s {
			t.Errorf("Raw(%q) = %q, want identical text", s, doc)
		}
	}
}

func TestDocument_String(t *testing.T) {
	if got := Raw("{}").String(); got != "{}" {
		t.Errorf("String() = %q, want {}", got)
	}
}
