package domain

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/shnupta/pick/internal/fuzzy"
)

const (
	// Ellipsis marks a truncated entry.
	Ellipsis = "..."
	// NoMatchesText is shown when a non-empty query matches nothing.
	NoMatchesText = "No matches found"

	// NumberSep separates the line number from the text.
	NumberSep = ": "
)

// Entry is one rendered match row.
type Entry struct {
	Selected bool
	// Number is the 1-based line number, right-aligned to the gutter width.
	Number string
	// Text is the highlighted line, truncated to fit and terminated by a
	// reset sequence.
	Text string
}

// Frame is the layout of one screen, independent of styling.
type Frame struct {
	Query     string
	Separator string
	Entries   []Entry
	NoMatches bool
}

// BuildFrame lays out the query, separator and match rows for a terminal of
// the given width. The matches are assumed to already fit the capacity.
func BuildFrame(width int, query string, matches []Match, selected int) Frame {
	f := Frame{
		Query:     query,
		Separator: strings.Repeat("-", max(0, width)),
		NoMatches: query != "" && len(matches) == 0,
	}
	if len(matches) == 0 {
		return f
	}

	gutter := GutterWidth(matches)
	// The number column and its separator share the row with the text. A cut
	// entry ends up one column wider than the threshold TruncateEntry checks,
	// so one more column is held back to keep every row inside width.
	textWidth := width - gutter - len(NumberSep) - 1
	f.Entries = make([]Entry, len(matches))
	for i, m := range matches {
		num := strconv.Itoa(m.Line.Number)
		if pad := gutter - len(num); pad > 0 {
			num = strings.Repeat(" ", pad) + num
		}
		f.Entries[i] = Entry{
			Selected: i == selected,
			Number:   num,
			Text:     TruncateEntry(m.Highlighted, textWidth),
		}
	}
	return f
}

// GutterWidth returns the width of the line-number column: the number of
// digits in the encoded length of the longest highlighted text among
// matches, highlight markers included.
func GutterWidth(matches []Match) int {
	widest := -1
	for _, m := range matches {
		widest = max(widest, len(m.Highlighted))
	}
	if widest < 0 {
		return 0
	}
	return len(strconv.Itoa(widest))
}

// TruncateEntry fits highlighted text to a row of the given width, which
// starts with a three-column selection marker.
// Text wider than width-3 columns is cut to width-5 columns followed by an
// ellipsis. Widths ignore escape sequences. The result always ends with a
// reset so a cut highlight does not bleed into the next row.
func TruncateEntry(highlighted string, width int) string {
	if ansi.StringWidth(highlighted) > width-3 {
		return ansi.Truncate(highlighted, max(0, width-5), "") + Ellipsis + fuzzy.Reset
	}
	return highlighted + fuzzy.Reset
}
