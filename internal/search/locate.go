package search

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Locate reports the non-overlapping ranges of line that match query. In
// case-insensitive mode the ranges are found in the lowercased line and mapped
// back to byte offsets of the original. An empty query has no ranges.
func Locate(query, line string, caseSensitive bool) []Span {
	if query == "" {
		return nil
	}
	if caseSensitive {
		return findAll(query, line, nil)
	}

	lowered, offsets := lowerWithOffsets(line)
	return findAll(strings.ToLower(query), lowered, offsets)
}

// findAll scans haystack left to right. When offsets is non-nil, positions in
// haystack are translated through it.
func findAll(needle, haystack string, offsets []int) []Span {
	var spans []Span
	for pos := 0; pos <= len(haystack)-len(needle); {
		idx := strings.Index(haystack[pos:], needle)
		if idx < 0 {
			break
		}
		start, end := pos+idx, pos+idx+len(needle)
		if offsets != nil {
			spans = append(spans, Span{Start: offsets[start], End: offsets[end]})
		} else {
			spans = append(spans, Span{Start: start, End: end})
		}
		pos = end
	}
	return spans
}

// lowerWithOffsets lowercases s rune by rune, the way strings.ToLower does,
// and records for each byte of the result the offset of the rune in s it came
// from. The slice has one extra entry for the end of the string.
func lowerWithOffsets(s string) (string, []int) {
	var b strings.Builder
	b.Grow(len(s))
	offsets := make([]int, 0, len(s)+1)

	for i, r := range s {
		lr := unicode.ToLower(r)
		n := utf8.RuneLen(lr)
		if n < 0 {
			lr, n = utf8.RuneError, utf8.RuneLen(utf8.RuneError)
		}
		b.WriteRune(lr)
		for range n {
			offsets = append(offsets, i)
		}
	}
	offsets = append(offsets, len(s))

	return b.String(), offsets
}
