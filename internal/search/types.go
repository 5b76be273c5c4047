package search

// Func describes a line search: it returns the lines of contents matching
// query, in the order they appear.
type Func func(query, contents string) []string

// Span is a half-open byte range [Start, End) within a line.
type Span struct {
	Start int
	End   int
}
