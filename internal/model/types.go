package model

// Version is the release reported by --version and compared by --update.
const Version = "0.3.1"

// Config holds the parameters of a single search run.
type Config struct {
	Query      string // The substring to look for
	FilePath   string // File whose contents are searched
	IgnoreCase bool   // Fold case before comparing (IGNORE_CASE is set)
}

// Match is one matching line of the searched contents.
type Match struct {
	Number int    `json:"line"`   // 1-based line number
	Offset int    `json:"offset"` // Byte offset of the line start in the contents
	Text   string `json:"text"`   // The original line, without its line break
}

// Result is the outcome of a search run.
type Result struct {
	Query      string  `json:"query"`
	File       string  `json:"file"`
	IgnoreCase bool    `json:"ignore_case"`
	Matches    []Match `json:"matches"`
}

// Lines returns the text of every match, in order.
func (r Result) Lines() []string {
	lines := make([]string, len(r.Matches))
	for i, m := range r.Matches {
		lines[i] = m.Text
	}
	return lines
}
