// Package tui renders one board session in the terminal using bubbletea.
// The model is single-threaded inside the bubbletea event loop; every key
// press is handled to completion before the next one.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"svw.info/sudoku-board/internal/domain"
	"svw.info/sudoku-board/internal/session"
)

// Model drives an in-process session from keyboard input.
type Model struct {
	sess *session.Session
	view session.View

	cursor domain.CellCoord
	keys   keyMap
	help   help.Model

	quitting bool
}

// NewModel starts the TUI on the given session.
func NewModel(s *session.Session) Model {
	return Model{
		sess: s,
		view: s.Snapshot(),
		keys: defaultKeyMap(),
		help: help.New(),
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Up):
			if m.cursor.Row > 0 {
				m.cursor.Row--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor.Row < 8 {
				m.cursor.Row++
			}
		case key.Matches(msg, m.keys.Left):
			if m.cursor.Col > 0 {
				m.cursor.Col--
			}
		case key.Matches(msg, m.keys.Right):
			if m.cursor.Col < 8 {
				m.cursor.Col++
			}
		case key.Matches(msg, m.keys.Digit):
			m.view = m.sess.EditCell(m.cursor, msg.String())
		case key.Matches(msg, m.keys.Clear):
			m.view = m.sess.EditCell(m.cursor, "")
		case key.Matches(msg, m.keys.Validate):
			m.view = m.sess.Validate()
		case key.Matches(msg, m.keys.Reset):
			m.view = m.sess.Reset()
		}
	}
	return m, nil
}
