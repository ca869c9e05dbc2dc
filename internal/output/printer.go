// Package output renders search results to a writer.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"minigrep/internal/model"
)

// Printer writes a search result.
type Printer interface {
	Print(w io.Writer, res model.Result) error
}

// Plain prints one matching line per output line, in source order.
type Plain struct {
	LineNumbers bool
	Highlighter *Highlighter // nil prints lines untouched
}

func (p Plain) Print(w io.Writer, res model.Result) error {
	for _, m := range res.Matches {
		line := m.Text
		if p.Highlighter != nil {
			line = p.Highlighter.Render(res.Query, line, res.IgnoreCase)
		}
		if p.LineNumbers {
			number := fmt.Sprintf("%d:", m.Number)
			if p.Highlighter != nil {
				number = p.Highlighter.Number(number)
			}
			line = number + line
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Count prints only the number of matching lines.
type Count struct{}

func (Count) Print(w io.Writer, res model.Result) error {
	_, err := fmt.Fprintln(w, len(res.Matches))
	return err
}

// JSON prints the whole result as an indented document.
type JSON struct{}

func (JSON) Print(w io.Writer, res model.Result) error {
	if res.Matches == nil {
		res.Matches = []model.Match{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
