package tui

import (
	"minigrep/internal/model"
	"minigrep/internal/output"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// AppModel holds the TUI state.
type AppModel struct {
	// Data
	Config     model.Config
	Contents   string
	TotalLines int
	Result     model.Result
	Loading    bool
	Err        error

	// UI State
	WindowSize tea.WindowSizeMsg

	// Components
	QueryInput  textinput.Model
	Results     viewport.Model
	Highlighter *output.Highlighter
}

// InitialModel returns the initial state for browsing cfg.FilePath.
func InitialModel(cfg model.Config, hl *output.Highlighter) AppModel {
	ti := textinput.New()
	ti.Prompt = model.IconPrompt + " "
	ti.Placeholder = "Query..."
	ti.CharLimit = 256
	ti.Width = 40
	ti.SetValue(cfg.Query)
	ti.Focus()

	return AppModel{
		Config:      cfg,
		Loading:     true,
		QueryInput:  ti,
		Results:     viewport.New(80, 20),
		Highlighter: hl,
	}
}
