package domain

import (
	"sort"

	"github.com/shnupta/pick/internal/fuzzy"
	"github.com/shnupta/pick/internal/source"
)

// reservedRows is the number of terminal rows not available for matches:
// the query line, the status line, the separator and a margin.
const reservedRows = 5

// Match is a line that matched the current query.
type Match struct {
	Line        source.Line
	Highlighted string
	Score       int
}

// Capacity returns how many matches fit on a terminal with the given rows.
func Capacity(rows int) int {
	return max(0, rows-reservedRows)
}

type filterOptions struct {
	highlight fuzzy.Highlight
	rankAll   bool
}

// FilterOption configures Recompute.
type FilterOption func(*filterOptions)

// WithHighlight sets the markers wrapped around matched runes.
func WithHighlight(h fuzzy.Highlight) FilterOption {
	return func(o *filterOptions) { o.highlight = h }
}

// WithRankAll ranks every matching line before applying the capacity, so a
// late line with a better score can displace an earlier one.
func WithRankAll() FilterOption {
	return func(o *filterOptions) { o.rankAll = true }
}

// Recompute matches query against lines and returns at most capacity
// matches ordered by ascending score. Equal scores keep source order.
//
// By default only the first capacity matching lines in source order are
// ranked; later lines are never considered even if they would score better.
// WithRankAll lifts that restriction.
func Recompute(lines []source.Line, query string, capacity int, opts ...FilterOption) []Match {
	o := filterOptions{highlight: fuzzy.DefaultHighlight}
	for _, opt := range opts {
		opt(&o)
	}
	if capacity <= 0 {
		return []Match{}
	}

	limit := capacity
	if o.rankAll {
		limit = len(lines)
	}

	matches := make([]Match, 0, min(limit, len(lines)))
	for _, l := range lines {
		if len(matches) == limit {
			break
		}
		res, ok := o.highlight.Match(query, l.Text)
		if !ok {
			continue
		}
		matches = append(matches, Match{Line: l, Highlighted: res.Text, Score: res.Score})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score < matches[j].Score
	})

	if len(matches) > capacity {
		matches = matches[:capacity]
	}
	return matches
}
