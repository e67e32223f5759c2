package width

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	xwidth "golang.org/x/text/width"
)

// Terminal measures widths in terminal cells and indexes the lines of the
// text it was created over.
type Terminal struct {
	lines         lineIndex
	cond          *runewidth.Condition
	ambiguousWide bool
	cache         []int8
}

// TerminalOption configures a Terminal.
type TerminalOption func(*Terminal)

// WithAmbiguousWide measures East Asian ambiguous characters as two cells.
func WithAmbiguousWide(wide bool) TerminalOption {
	return func(t *Terminal) {
		t.ambiguousWide = wide
	}
}

// NewTerminal creates a Terminal provider over text.
func NewTerminal(text string, opts ...TerminalOption) *Terminal {
	t := &Terminal{
		lines: newLineIndex([]rune(text)),
		cond:  runewidth.NewCondition(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.cond.EastAsianWidth = false
	return t
}

// CharWidth returns the cell width of c.
func (t *Terminal) CharWidth(c rune) int {
	if xwidth.LookupRune(c).Kind() == xwidth.EastAsianAmbiguous {
		if t.ambiguousWide {
			return 2
		}
		return 1
	}
	return t.cond.RuneWidth(c)
}

// StringWidth returns the cell width of s, measured per grapheme cluster.
func (t *Terminal) StringWidth(s string, zeroWidth string) int {
	total := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		rs := g.Runes()
		if isZeroWidth(rs[0], zeroWidth) {
			continue
		}
		if len(rs) == 1 {
			total += t.CharWidth(rs[0])
			continue
		}
		total += g.Width()
	}
	return total
}

// SpaceWidth returns 1.
func (t *Terminal) SpaceWidth() int { return 1 }

// OffsetWidth returns the width of the character at a text offset, using
// the cache filled by InitCharWidths when available.
func (t *Terminal) OffsetWidth(offset int) int {
	if offset < 0 || offset >= len(t.lines.text) {
		return 0
	}
	if offset < len(t.cache) && t.cache[offset] >= 0 {
		return int(t.cache[offset])
	}
	return t.CharWidth(t.lines.text[offset])
}

// InitCharWidths precomputes widths for text offsets [start, end).
func (t *Terminal) InitCharWidths(start, end int) {
	n := len(t.lines.text)
	start, end = max(start, 0), min(end, n)
	if start >= end {
		return
	}
	if len(t.cache) < end {
		grown := make([]int8, end)
		copy(grown, t.cache)
		for i := len(t.cache); i < end; i++ {
			grown[i] = -1
		}
		t.cache = grown
	}
	for i := start; i < end; i++ {
		t.cache[i] = int8(t.CharWidth(t.lines.text[i]))
	}
}

// LineCount returns the number of lines in the text.
func (t *Terminal) LineCount() int { return t.lines.lineCount() }

// LineChars returns the content of line without its newline.
func (t *Terminal) LineChars(line int) (string, bool) {
	start, ok := t.lines.start(line)
	if !ok {
		return "", false
	}
	end, _ := t.lines.end(line)
	return string(t.lines.text[start:end]), true
}

// LineStart returns the offset of the first character of line.
func (t *Terminal) LineStart(line int) (int, bool) { return t.lines.start(line) }

// LineEnd returns the offset just past the last character of line,
// excluding the newline.
func (t *Terminal) LineEnd(line int) (int, bool) { return t.lines.end(line) }

// OffsetLineStart returns the start of the line containing offset.
func (t *Terminal) OffsetLineStart(offset int) (int, bool) {
	line, ok := t.lines.lineOf(offset)
	if !ok {
		return 0, false
	}
	return t.lines.start(line)
}

// OffsetLineEnd returns the end of the line containing offset.
func (t *Terminal) OffsetLineEnd(offset int) (int, bool) {
	line, ok := t.lines.lineOf(offset)
	if !ok {
		return 0, false
	}
	return t.lines.end(line)
}

// OffsetLineNumber returns the zero-based line containing offset.
func (t *Terminal) OffsetLineNumber(offset int) (int, bool) {
	return t.lines.lineOf(offset)
}
