package search

import "strings"

// Highlights returns the byte ranges [start, end) of every non-overlapping
// occurrence of query in line. An empty query has no ranges.
//
// With ignoreCase, ranges are only reported when lower-casing keeps the
// line's byte length, so offsets into the folded line stay valid for the
// original.
func Highlights(query, line string, ignoreCase bool) [][2]int {
	if query == "" {
		return nil
	}

	haystack := line
	if ignoreCase {
		haystack = strings.ToLower(line)
		query = strings.ToLower(query)
		if len(haystack) != len(line) {
			return nil
		}
	}

	var ranges [][2]int
	for start := 0; start <= len(haystack)-len(query); {
		idx := strings.Index(haystack[start:], query)
		if idx < 0 {
			break
		}
		idx += start
		ranges = append(ranges, [2]int{idx, idx + len(query)})
		start = idx + len(query)
	}
	return ranges
}
