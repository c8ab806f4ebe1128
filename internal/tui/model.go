package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shnupta/pick/internal/config"
	"github.com/shnupta/pick/internal/domain"
	"github.com/shnupta/pick/internal/fuzzy"
	"github.com/shnupta/pick/internal/source"
)

// Model is the root BubbleTea model. It owns the session state: the query,
// the current matches and the selection.
type Model struct {
	// Input
	lines  []source.Line
	filter []domain.FilterOption

	// Query
	query []rune
	dirty bool // query changed since the last recompute

	// Matches
	matches  []domain.Match
	capacity int // capacity the matches were computed with
	selected int

	// Dimensions
	width  int
	height int
	ready  bool // a WindowSizeMsg has been received

	// Result
	state     State
	chosen    string
	hasChoice bool

	styles Styles
	help   help.Model
}

// New returns a Model searching lines, configured by cfg.
func New(lines []source.Line, cfg config.Config) Model {
	filter := []domain.FilterOption{domain.WithHighlight(fuzzy.SGR(cfg.Highlight))}
	if cfg.RankAll {
		filter = append(filter, domain.WithRankAll())
	}

	return Model{
		lines:   lines,
		filter:  filter,
		dirty:   true,
		matches: []domain.Match{},
		state:   StateEditing,
		styles:  NewStyles(cfg.Theme),
		help:    help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Query returns the current query text.
func (m Model) Query() string {
	return string(m.query)
}

// Matches returns the current matches in display order.
func (m Model) Matches() []domain.Match {
	return m.matches
}

// Selected returns the index of the selected match.
func (m Model) Selected() int {
	return m.selected
}

// State returns the session state.
func (m Model) State() State {
	return m.state
}

// Chosen returns the original text of the confirmed line. ok is false if
// the session ended without a selection.
func (m Model) Chosen() (line string, ok bool) {
	return m.chosen, m.hasChoice
}

// refresh recomputes the matches when the query changed or the terminal
// height changed the capacity. Nothing is computed before the size is known.
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	capacity := domain.Capacity(m.height)
	if !m.dirty && capacity == m.capacity {
		return
	}

	m.matches = domain.Recompute(m.lines, string(m.query), capacity, m.filter...)
	m.capacity = capacity
	m.dirty = false
	m.clampSelection()

	slog.Debug("recompute",
		"query_len", len(m.query),
		"matches", len(m.matches),
		"capacity", capacity,
	)
}

// clampSelection keeps selected within [0, len(matches)), or 0 when empty.
func (m *Model) clampSelection() {
	if m.selected >= len(m.matches) {
		m.selected = max(0, len(m.matches)-1)
	}
	if m.selected < 0 {
		m.selected = 0
	}
}
