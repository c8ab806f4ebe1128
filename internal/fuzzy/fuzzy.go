// Package fuzzy implements ordered-subsequence matching with gap scoring.
//
// A pattern matches a text when its runes appear in the text in order,
// compared case-insensitively. The score counts the unmatched runes that sit
// between the first and last matched rune, so lower scores mean tighter
// matches and 0 means the pattern occurs contiguously.
package fuzzy

import (
	"strings"
	"unicode"
)

// Reset is the SGR sequence that clears all text attributes.
const Reset = "\x1b[0m"

// Highlight is the pair of markers wrapped around every matched rune.
type Highlight struct {
	Start string
	End   string
}

// DefaultHighlight renders matched runes bold red.
var DefaultHighlight = SGR("1;31")

// SGR returns a Highlight that starts with the given SGR parameters
// (for example "1;31") and ends with Reset.
func SGR(params string) Highlight {
	return Highlight{Start: "\x1b[" + params + "m", End: Reset}
}

// Result is a successful match.
type Result struct {
	// Text is the input text with matched runes wrapped in highlight markers.
	Text string
	// Score is the gap cost of the best start position.
	Score int
}

// Match reports whether pattern fuzzy-matches text using DefaultHighlight.
func Match(pattern, text string) (Result, bool) {
	return DefaultHighlight.Match(pattern, text)
}

// Match reports whether pattern fuzzy-matches text. Every position holding
// the pattern's first rune is tried as a start for a greedy scan, and the
// start with the lowest gap cost is kept; ties go to the earliest start.
func (h Highlight) Match(pattern, text string) (Result, bool) {
	if pattern == "" {
		return Result{Text: text}, true
	}
	if text == "" {
		return Result{}, false
	}

	p := []rune(pattern)
	t := []rune(text)

	best, bestStart := -1, 0
	for start, r := range t {
		if !equalFold(r, p[0]) {
			continue
		}
		score, ok := scan(p, t[start:])
		if !ok {
			// Later starts see a suffix of this text, so they cannot
			// complete the pattern either.
			break
		}
		if best < 0 || score < best {
			best, bestStart = score, start
		}
	}
	if best < 0 {
		return Result{}, false
	}
	return Result{Text: h.annotate(p, t, bestStart), Score: best}, true
}

// scan walks t greedily, matching p in order. It returns the gap cost and
// whether all of p was consumed.
func scan(p, t []rune) (int, bool) {
	matched, gaps := 0, 0
	for _, r := range t {
		if matched == len(p) {
			break
		}
		if equalFold(r, p[matched]) {
			matched++
		} else if matched > 0 {
			gaps++
		}
	}
	return gaps, matched == len(p)
}

// annotate rebuilds t with the runes matched from start wrapped in markers.
func (h Highlight) annotate(p, t []rune, start int) string {
	var sb strings.Builder
	sb.Grow(len(t) + len(p)*(len(h.Start)+len(h.End)))
	sb.WriteString(string(t[:start]))

	matched := 0
	for _, r := range t[start:] {
		if matched < len(p) && equalFold(r, p[matched]) {
			sb.WriteString(h.Start)
			sb.WriteRune(r)
			sb.WriteString(h.End)
			matched++
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func equalFold(a, b rune) bool {
	return a == b || unicode.ToLower(a) == unicode.ToLower(b)
}
