// Package span provides source-location tokens for the lumen front end.
//
// A Span is provenance, not geometry: transformations carry it through
// unchanged, and nothing in the compiler recomputes a node's span from its
// children. Rendering spans against source text is the concern of the
// diagnostics layer, not this package.
package span

import "fmt"

// Span identifies a half-open byte range [Start, End) in a source file.
//
// Span is a comparable value type so nodes carrying it remain comparable and
// structural equality over trees works with plain ==.
type Span struct {
	// Path is the source file the range refers to. Empty for synthetic nodes.
	Path string `json:"path,omitempty"`

	// Start is the inclusive byte offset of the first character.
	Start int `json:"start"`

	// End is the exclusive byte offset one past the last character.
	End int `json:"end"`
}

// New constructs a span over [start, end) in the given file.
func New(path string, start, end int) Span {
	return Span{Path: path, Start: start, End: end}
}

// String renders the span for error messages, e.g. "main.lm:[4,9)".
// Synthetic spans render without a path prefix.
func (s Span) String() string {
	if s.Path == "" {
		return fmt.Sprintf("[%d,%d)", s.Start, s.End)
	}
	return fmt.Sprintf("%s:[%d,%d)", s.Path, s.Start, s.End)
}

// IsZero reports whether the span is the zero value (no provenance).
func (s Span) IsZero() bool {
	return s == Span{}
}
