package tui

import (
	"strconv"
	"strings"

	"github.com/shnupta/pick/internal/domain"
)

func (m Model) View() string {
	if m.state == StateExiting || !m.ready {
		return ""
	}

	f := domain.BuildFrame(m.width, string(m.query), m.matches, m.selected)

	var sb strings.Builder

	// Query line, with the cursor drawn right after the text.
	sb.WriteString(f.Query)
	sb.WriteString(m.styles.Cursor.Render(" "))
	sb.WriteString("\n")

	sb.WriteString(m.statusLine())
	sb.WriteString("\n")
	sb.WriteString(m.styles.Separator.Render(f.Separator))

	for _, e := range f.Entries {
		marker := unselectedMarker
		if e.Selected {
			marker = m.styles.Marker.Render(selectedMarker)
		}
		sb.WriteString("\n")
		sb.WriteString(marker)
		sb.WriteString(m.styles.Gutter.Render(e.Number))
		sb.WriteString(domain.NumberSep)
		sb.WriteString(e.Text)
	}

	if f.NoMatches {
		sb.WriteString("\n")
		sb.WriteString(m.styles.NoMatches.Render(domain.NoMatchesText))
	}

	return sb.String()
}

// statusLine renders the key help followed by the terminal width.
func (m Model) statusLine() string {
	return m.styles.Status.Render(m.help.ShortHelpView(keys.ShortHelp()) + " | " + strconv.Itoa(m.width))
}
