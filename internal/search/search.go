package search

import "strings"

// For returns Search when caseSensitive is set, SearchCaseInsensitive otherwise.
func For(caseSensitive bool) Func {
	if caseSensitive {
		return Search
	}
	return SearchCaseInsensitive
}

// Search returns every line of contents containing query as a literal substring.
func Search(query, contents string) []string {
	results := make([]string, 0)
	for _, line := range Lines(contents) {
		if strings.Contains(line, query) {
			results = append(results, line)
		}
	}
	return results
}

// SearchCaseInsensitive matches after lowercasing both query and line. The
// returned lines keep their original casing.
func SearchCaseInsensitive(query, contents string) []string {
	query = strings.ToLower(query)

	results := make([]string, 0)
	for _, line := range Lines(contents) {
		if strings.Contains(strings.ToLower(line), query) {
			results = append(results, line)
		}
	}
	return results
}

// Lines splits contents on "\n", dropping the terminator and a "\r" right
// before it. A final line without terminator is kept; a trailing terminator
// does not produce an empty last line.
func Lines(contents string) []string {
	lines := make([]string, 0, strings.Count(contents, "\n")+1)
	for line := range strings.Lines(contents) {
		if trimmed, ok := strings.CutSuffix(line, "\n"); ok {
			line = strings.TrimSuffix(trimmed, "\r")
		}
		lines = append(lines, line)
	}
	return lines
}
