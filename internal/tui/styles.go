package tui

import (
	"strings"

	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

const (
	selectedMarker   = "-> "
	unselectedMarker = "   "
)

// flavour is the part of a catppuccin flavour the interface draws with.
type flavour interface {
	Mauve() catppuccin.Color
	Red() catppuccin.Color
	Overlay1() catppuccin.Color
	Subtext0() catppuccin.Color
	Surface2() catppuccin.Color
}

// Styles holds the lipgloss styles for each part of the frame.
type Styles struct {
	Marker    lipgloss.Style
	Gutter    lipgloss.Style
	Status    lipgloss.Style
	Separator lipgloss.Style
	Cursor    lipgloss.Style
	NoMatches lipgloss.Style
}

// NewStyles returns the styles for a catppuccin theme name. Unknown names
// fall back to mocha.
func NewStyles(theme string) Styles {
	f := themeFlavour(theme)
	col := func(c catppuccin.Color) lipgloss.Color { return lipgloss.Color(c.Hex) }

	return Styles{
		Marker: lipgloss.NewStyle().
			Foreground(col(f.Mauve())).
			Bold(true),
		Gutter: lipgloss.NewStyle().
			Foreground(col(f.Overlay1())),
		Status: lipgloss.NewStyle().
			Foreground(col(f.Subtext0())),
		Separator: lipgloss.NewStyle().
			Foreground(col(f.Surface2())),
		Cursor: lipgloss.NewStyle().
			Reverse(true),
		NoMatches: lipgloss.NewStyle().
			Foreground(col(f.Red())).
			Italic(true),
	}
}

func themeFlavour(theme string) flavour {
	switch strings.ToLower(theme) {
	case "latte":
		return catppuccin.Latte
	case "frappe", "frappé":
		return catppuccin.Frappe
	case "macchiato":
		return catppuccin.Macchiato
	default:
		return catppuccin.Mocha
	}
}
