// Package match selects the lines of a text buffer that contain a query.
//
// Returned lines are substrings of the content passed in and share its
// backing storage.
package match

import "strings"

// Lines splits content on "\n" and "\r\n". A final terminator does not yield
// an extra empty line. A lone '\r' is kept as line content.
func Lines(content string) []string {
	var out []string
	for content != "" {
		line, rest, found := strings.Cut(content, "\n")
		if found {
			line = strings.TrimSuffix(line, "\r")
		}
		out = append(out, line)
		content = rest
	}
	return out
}

// SearchExact returns, in file order, every line containing query. Lines are
// returned verbatim.
func SearchExact(query, content string) []string {
	var out []string
	for _, line := range Lines(content) {
		if strings.Contains(line, query) {
			out = append(out, line)
		}
	}
	return out
}

// SearchCaseInsensitive matches on lowercased line and query, and returns
// the original-case line with surrounding whitespace trimmed.
func SearchCaseInsensitive(query, content string) []string {
	q := strings.ToLower(query)
	var out []string
	for _, line := range Lines(content) {
		if strings.Contains(strings.ToLower(line), q) {
			out = append(out, strings.TrimSpace(line))
		}
	}
	return out
}

// Search picks SearchExact or SearchCaseInsensitive.
func Search(query, content string, caseSensitive bool) []string {
	if caseSensitive {
		return SearchExact(query, content)
	}
	return SearchCaseInsensitive(query, content)
}
