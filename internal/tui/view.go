package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"minigrep/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	numberStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // Grey

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")) // Orange
)

func (m AppModel) View() string {
	if m.Loading {
		return fmt.Sprintf("\n  Reading %s... please wait.\n", m.Config.FilePath)
	}
	if m.Err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v\n", m.Err))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("minigrep " + m.Config.FilePath))
	b.WriteString("\n")
	b.WriteString(m.QueryInput.View())
	b.WriteString("\n\n")
	b.WriteString(m.Results.View())
	b.WriteString("\n")
	b.WriteString(m.footer())
	return b.String()
}

func (m AppModel) footer() string {
	mode := model.IconExactCase + " case-sensitive"
	if m.Config.IgnoreCase {
		mode = model.IconIgnoreCase + " ignore case"
	}
	count := fmt.Sprintf("%d of %d lines", len(m.Result.Matches), m.TotalLines)
	return dimStyle.Render(fmt.Sprintf("%s • %s • ctrl+t case • ↑/↓ scroll • esc quit", count, mode))
}

// refresh renders the current matches into the viewport.
func (m *AppModel) refresh() {
	if len(m.Result.Matches) == 0 {
		m.Results.SetContent(dimStyle.Render("  " + model.IconNoMatch + " no matching lines"))
		return
	}

	width := len(fmt.Sprint(m.Result.Matches[len(m.Result.Matches)-1].Number))

	var b strings.Builder
	for i, match := range m.Result.Matches {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(numberStyle.Render(fmt.Sprintf("%*d %s ", width, match.Number, model.IconSeparator)))
		if m.Highlighter != nil {
			b.WriteString(m.Highlighter.Render(m.Result.Query, match.Text, m.Result.IgnoreCase))
		} else {
			b.WriteString(match.Text)
		}
	}
	m.Results.SetContent(b.String())
}
