package domain

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/shnupta/pick/internal/fuzzy"
	"github.com/shnupta/pick/internal/source"
)

func TestTruncateEntry(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"fits", "hello", 10, "hello"},
		{"exactly width-3", "hello", 8, "hello"},
		{"one over", "hello!", 8, "hel..."},
		{"long line", "hello world", 8, "hel..."},
		{"tiny width", "hello", 2, "..."},
		{"empty", "", 10, ""},
		{"wide runes", "日本語テキスト", 10, "日本..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateEntry(tt.input, tt.width)
			if !strings.HasSuffix(got, fuzzy.Reset) {
				t.Errorf("TruncateEntry(%q, %d) = %q, missing reset", tt.input, tt.width, got)
			}
			if plain := ansi.Strip(got); plain != tt.want {
				t.Errorf("TruncateEntry(%q, %d) = %q, want %q", tt.input, tt.width, plain, tt.want)
			}
		})
	}
}

func TestTruncateEntry_IgnoresHighlightMarkers(t *testing.T) {
	res, _ := fuzzy.Match("hello", "hello")
	// Five highlighted runes carry far more bytes than columns.
	got := TruncateEntry(res.Text, 8)
	if ansi.Strip(got) != "hello" {
		t.Errorf("highlighted text was truncated: %q", ansi.Strip(got))
	}
}

func TestGutterWidth(t *testing.T) {
	short := Match{Line: source.Line{Number: 1}, Highlighted: "abc"}
	long := Match{Line: source.Line{Number: 2}, Highlighted: strings.Repeat("x", 120)}

	if got := GutterWidth(nil); got != 0 {
		t.Errorf("GutterWidth(nil) = %d, want 0", got)
	}
	if got := GutterWidth([]Match{short}); got != 1 {
		t.Errorf("GutterWidth(short) = %d, want 1", got)
	}
	if got := GutterWidth([]Match{short, long}); got != 3 {
		t.Errorf("GutterWidth(short, long) = %d, want 3", got)
	}
}

func TestGutterWidth_CountsHighlightMarkers(t *testing.T) {
	res, ok := fuzzy.Match("ap", "apple")
	if !ok {
		t.Fatal("expected a match")
	}
	m := Match{Line: source.Line{Number: 1, Text: "apple"}, Highlighted: res.Text, Score: res.Score}

	// "apple" is 5 columns but 27 bytes once "a" and "p" are wrapped.
	if len(res.Text) != 27 {
		t.Fatalf("highlighted length = %d, want 27", len(res.Text))
	}
	if got := GutterWidth([]Match{m}); got != 2 {
		t.Errorf("GutterWidth(highlighted apple) = %d, want 2", got)
	}
}

func TestBuildFrame_RowsFitWidth(t *testing.T) {
	lines := testLines(strings.Repeat("x", 100), "short", "x y x y x y x y x y x y x y x y x y x y x y x y")
	for _, query := range []string{"", "x", "xyx"} {
		matches := Recompute(lines, query, 10)
		for width := 16; width <= 60; width++ {
			f := BuildFrame(width, query, matches, 0)
			for _, e := range f.Entries {
				row := "-> " + e.Number + NumberSep + e.Text
				if w := ansi.StringWidth(row); w > width {
					t.Errorf("query %q width %d: row %q is %d columns", query, width, ansi.Strip(row), w)
				}
			}
		}
	}

	f := BuildFrame(20, "", Recompute(testLines(strings.Repeat("x", 100)), "", 10), 0)
	if got := ansi.Strip(f.Entries[0].Text); !strings.HasSuffix(got, Ellipsis) {
		t.Errorf("long entry = %q, want an ellipsis", got)
	}
}

func TestBuildFrame(t *testing.T) {
	matches := Recompute(testLines("apple", "banana", "grape"), "ap", 10)
	f := BuildFrame(20, "ap", matches, 1)

	if f.Query != "ap" {
		t.Errorf("Query = %q", f.Query)
	}
	if f.Separator != strings.Repeat("-", 20) {
		t.Errorf("Separator = %q", f.Separator)
	}
	if f.NoMatches {
		t.Error("NoMatches should be false")
	}
	if len(f.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(f.Entries))
	}

	// Highlighted texts are 27 bytes long with markers, so the gutter is two
	// digits wide.
	first, second := f.Entries[0], f.Entries[1]
	if first.Selected || !second.Selected {
		t.Errorf("selection flags = %v, %v", first.Selected, second.Selected)
	}
	if first.Number != " 1" || second.Number != " 3" {
		t.Errorf("numbers = %q, %q", first.Number, second.Number)
	}
	if ansi.Strip(first.Text) != "apple" || ansi.Strip(second.Text) != "grape" {
		t.Errorf("texts = %q, %q", ansi.Strip(first.Text), ansi.Strip(second.Text))
	}
}

func TestBuildFrame_RightAlignsNumbers(t *testing.T) {
	lines := testLines(strings.Repeat("a", 100), "a")
	lines[1].Number = 7
	f := BuildFrame(200, "", Recompute(lines, "", 10), 0)
	if f.Entries[0].Number != "  1" || f.Entries[1].Number != "  7" {
		t.Errorf("numbers = %q, %q", f.Entries[0].Number, f.Entries[1].Number)
	}
}

func TestBuildFrame_NoMatches(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{"empty query", "", false},
		{"query without matches", "zz", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := BuildFrame(10, tt.query, nil, 0)
			if f.NoMatches != tt.want {
				t.Errorf("NoMatches = %v, want %v", f.NoMatches, tt.want)
			}
			if len(f.Entries) != 0 {
				t.Errorf("expected no entries, got %d", len(f.Entries))
			}
		})
	}
}

func TestBuildFrame_ZeroWidth(t *testing.T) {
	f := BuildFrame(0, "", nil, 0)
	if f.Separator != "" {
		t.Errorf("Separator = %q, want empty", f.Separator)
	}
}
