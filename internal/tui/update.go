package tui

import (
	"log/slog"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state == StateExiting {
		return m, nil
	}

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width != m.width || msg.Height != m.height {
			slog.Debug("resize", "width", msg.Width, "height", msg.Height)
		}
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	}

	if m.state == StateEditing {
		m.refresh()
	}
	return m, cmd
}

// handleKey applies the transition for a single key event.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Cancel):
		m.state = StateExiting
		slog.Debug("exit", "reason", "cancel")
		return tea.Quit

	case key.Matches(msg, keys.Select):
		if len(m.matches) == 0 {
			return nil
		}
		m.chosen = m.matches[m.selected].Line.Text
		m.hasChoice = true
		m.state = StateExiting
		slog.Debug("exit", "reason", "select", "line", m.matches[m.selected].Line.Number)
		return tea.Quit

	case key.Matches(msg, keys.Up):
		m.selected = max(0, m.selected-1)

	case key.Matches(msg, keys.Down):
		if len(m.matches) > 0 {
			m.selected = min(len(m.matches)-1, m.selected+1)
		}

	case key.Matches(msg, keys.Backspace):
		if len(m.query) > 0 {
			m.query = m.query[:len(m.query)-1]
		}
		m.markDirty()

	default:
		if rs := printable(msg); len(rs) > 0 {
			m.query = append(m.query, rs...)
			m.markDirty()
		}
	}
	return nil
}

// markDirty records a query mutation.
func (m *Model) markDirty() {
	m.dirty = true
	m.selected = 0
}

// printable returns the characters a key event inserts into the query, or
// nil for keys that insert nothing.
func printable(msg tea.KeyMsg) []rune {
	if msg.Alt {
		return nil
	}
	switch msg.Type {
	case tea.KeySpace:
		return []rune{' '}
	case tea.KeyRunes:
		rs := make([]rune, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			if unicode.IsPrint(r) {
				rs = append(rs, r)
			}
		}
		return rs
	}
	return nil
}
