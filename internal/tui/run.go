package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/shnupta/pick/internal/config"
	"github.com/shnupta/pick/internal/source"
)

// Run starts an interactive session over lines and blocks until the user
// confirms a line or cancels. It returns the chosen line's original text and
// whether one was chosen.
//
// Keys are read from the controlling terminal rather than stdin, which may
// be the pipe the lines came from, and frames are drawn on stderr so stdout
// only ever carries the result. The terminal is restored before Run returns,
// on every path.
func Run(lines []source.Line, cfg config.Config) (string, bool, error) {
	// Colour detection must follow the stream frames are drawn on.
	lipgloss.SetDefaultRenderer(lipgloss.NewRenderer(os.Stderr))

	p := tea.NewProgram(
		New(lines, cfg),
		tea.WithAltScreen(),
		tea.WithInputTTY(),
		tea.WithOutput(os.Stderr),
	)

	final, err := p.Run()
	if err != nil {
		return "", false, fmt.Errorf("terminal: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return "", false, fmt.Errorf("unexpected model type %T", final)
	}
	line, chosen := m.Chosen()
	return line, chosen, nil
}
