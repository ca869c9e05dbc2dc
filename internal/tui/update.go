package tui

import (
	"minigrep/internal/app"
	"minigrep/internal/model"
	"minigrep/internal/search"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// MsgContentsReady carries the file contents once loaded.
type MsgContentsReady string

// MsgError indicates an error occurred.
type MsgError error

// chromeHeight is the number of rows used by the title, input and footer.
const chromeHeight = 5

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		m.Results.Width = msg.Width
		m.Results.Height = max(msg.Height-chromeHeight, 1)
		m.QueryInput.Width = max(msg.Width-10, 10)
		m.refresh()
		return m, nil

	case MsgContentsReady:
		m.Loading = false
		m.Contents = string(msg)
		m.TotalLines = len(search.Lines(m.Contents))
		m.performSearch()
		return m, nil

	case MsgError:
		m.Err = msg
		m.Loading = false
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlT:
			m.Config.IgnoreCase = !m.Config.IgnoreCase
			m.performSearch()
			return m, nil
		case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown:
			m.Results, cmd = m.Results.Update(msg)
			return m, cmd
		}

		before := m.QueryInput.Value()
		m.QueryInput, cmd = m.QueryInput.Update(msg)
		if m.QueryInput.Value() != before {
			m.Config.Query = m.QueryInput.Value()
			m.performSearch()
		}
		return m, cmd
	}

	m.QueryInput, cmd = m.QueryInput.Update(msg)
	return m, cmd
}

func (m *AppModel) performSearch() {
	if m.Loading || m.Err != nil {
		return
	}
	m.Result = app.Match(m.Config, m.Contents)
	m.refresh()
	m.Results.GotoTop()
}

// LoadContentsCmd reads the file in the background.
func LoadContentsCmd(filePath string) tea.Cmd {
	return func() tea.Msg {
		contents, err := model.ReadContents(filePath)
		if err != nil {
			return MsgError(err)
		}
		return MsgContentsReady(contents)
	}
}

// Init starts loading the file.
func (m AppModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, LoadContentsCmd(m.Config.FilePath))
}
