package search

import (
	"strings"

	"minigrep/internal/model"
)

// Search returns every line of contents that contains query, in order.
// The returned strings are substrings of contents, not copies.
func Search(query, contents string) []string {
	return collect(contents, buildMatcher(query, false))
}

// SearchCaseInsensitive is Search with query and lines folded to lower case
// before comparison. The original line text is returned.
func SearchCaseInsensitive(query, contents string) []string {
	return collect(contents, buildMatcher(query, true))
}

// Locate numbers the lines returned by Search or SearchCaseInsensitive.
// lines must be in source order, as both searches return them. Matching
// depends only on a line's text, so the k-th result is the k-th line of
// contents with the same text.
func Locate(contents string, lines []string) []model.Match {
	if len(lines) == 0 {
		return nil
	}

	matches := make([]model.Match, 0, len(lines))
	forEachLine(contents, func(number, offset int, line string) {
		if len(matches) < len(lines) && line == lines[len(matches)] {
			matches = append(matches, model.Match{
				Number: number,
				Offset: offset,
				Text:   line,
			})
		}
	})
	return matches
}

// Lines splits contents on "\n". A trailing newline does not produce an
// empty final line and a "\r" directly before "\n" is dropped.
func Lines(contents string) []string {
	var lines []string
	forEachLine(contents, func(_, _ int, line string) {
		lines = append(lines, line)
	})
	return lines
}

func collect(contents string, matcher func(string) bool) []string {
	var results []string
	forEachLine(contents, func(_, _ int, line string) {
		if matcher(line) {
			results = append(results, line)
		}
	})
	return results
}

func forEachLine(contents string, fn func(number, offset int, line string)) {
	offset := 0
	for number := 1; offset < len(contents); number++ {
		end := strings.IndexByte(contents[offset:], '\n')
		next := len(contents)
		if end >= 0 {
			end += offset
			next = end + 1
		} else {
			end = len(contents)
		}

		line := contents[offset:end]
		if end < len(contents) {
			line = strings.TrimSuffix(line, "\r")
		}
		fn(number, offset, line)
		offset = next
	}
}

func buildMatcher(query string, ignoreCase bool) func(string) bool {
	if !ignoreCase {
		return func(line string) bool { return strings.Contains(line, query) }
	}

	folded := strings.ToLower(query)
	return func(line string) bool {
		return strings.Contains(strings.ToLower(line), folded)
	}
}
