package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"minigrep/internal/search"
)

// ColorMode selects when matches are colored.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode validates a --color value.
func ParseColorMode(s string) (ColorMode, error) {
	switch mode := ColorMode(strings.ToLower(s)); mode {
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	}
	return "", fmt.Errorf("invalid color mode %q (want auto, always or never)", s)
}

// Highlighter styles query occurrences for a particular output.
type Highlighter struct {
	match  lipgloss.Style
	number lipgloss.Style
}

// NewHighlighter binds styles to w. In auto mode the color profile is
// detected from w, so pipes and files get plain text.
func NewHighlighter(w io.Writer, mode ColorMode) *Highlighter {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case ColorAlways:
		r.SetColorProfile(termenv.ANSI256)
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}

	return &Highlighter{
		match: r.NewStyle().
			Foreground(lipgloss.Color("205")). // Pinkish
			Bold(true).
			TabWidth(lipgloss.NoTabConversion),
		number: r.NewStyle().
			Foreground(lipgloss.Color("81")). // Sky Blue/Cyan
			TabWidth(lipgloss.NoTabConversion),
	}
}

// Render returns line with every occurrence of query styled.
func (h *Highlighter) Render(query, line string, ignoreCase bool) string {
	ranges := search.Highlights(query, line, ignoreCase)
	if len(ranges) == 0 {
		return line
	}

	var b strings.Builder
	last := 0
	for _, r := range ranges {
		b.WriteString(line[last:r[0]])
		b.WriteString(h.match.Render(line[r[0]:r[1]]))
		last = r[1]
	}
	b.WriteString(line[last:])
	return b.String()
}

// Number styles a line-number prefix.
func (h *Highlighter) Number(s string) string {
	return h.number.Render(s)
}
