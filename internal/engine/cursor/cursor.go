package cursor

import (
	"github.com/dshills/smartseq/internal/engine/safe"
	"github.com/dshills/smartseq/internal/engine/width"
)

// Cursor is a mutable position over a bounded sequence. Every query is
// derived from the current index and the sequence content; nothing is
// cached, so the cursor stays consistent if the index moves.
//
// A line runs from the character after the previous '\n' (or the start of
// the sequence) through its own terminating '\n' (or the end of the
// sequence). The line content excludes that '\n'.
type Cursor struct {
	chars    safe.Bounded
	index    int
	provider width.Provider
}

// Option configures a Cursor.
type Option func(*Cursor)

// WithWidthProvider measures non-tab characters with p in visual column
// queries.
func WithWidthProvider(p width.Provider) Option {
	return func(c *Cursor) {
		if p != nil {
			c.provider = p
		}
	}
}

// New creates a cursor over chars at index, clamped into range.
func New(chars safe.Bounded, index int, opts ...Option) *Cursor {
	c := &Cursor{chars: chars, provider: width.Default}
	for _, opt := range opts {
		opt(c)
	}
	c.index = chars.SafeIndex(index)
	return c
}

// Chars returns the underlying sequence.
func (c *Cursor) Chars() safe.Bounded { return c.chars }

// Errors returns the error cell of the underlying sequence.
func (c *Cursor) Errors() *safe.Errors { return c.chars.Errors() }

// Index returns the current index.
func (c *Cursor) Index() int { return c.index }

// SetIndex moves the cursor, clamping into [0, Len()].
func (c *Cursor) SetIndex(index int) {
	c.index = c.chars.SafeIndex(index)
}

// Move shifts the cursor by delta.
func (c *Cursor) Move(delta int) {
	c.SetIndex(c.index + delta)
}

// Char returns the character at the cursor. At the end of the sequence
// this is the after-end sentinel and counts an error.
func (c *Cursor) Char() rune { return c.chars.CharAt(c.index) }

func isSpaceOrTab(r rune) bool { return r == ' ' || r == '\t' }

func (c *Cursor) lineStartAt(index int) int {
	for i := index - 1; i >= 0; i-- {
		if c.chars.CharAt(i) == '\n' {
			return i + 1
		}
	}
	return 0
}

func (c *Cursor) lineEndAt(index int) int {
	n := c.chars.Len()
	for i := index; i < n; i++ {
		if c.chars.CharAt(i) == '\n' {
			return i + 1
		}
	}
	return n
}

// terminated reports whether the line ending at end has a '\n'.
func (c *Cursor) terminated(start, end int) bool {
	return end > start && c.chars.CharAt(end-1) == '\n'
}

func (c *Cursor) contentEndAt(index int) int {
	start, end := c.lineStartAt(index), c.lineEndAt(index)
	if c.terminated(start, end) {
		return end - 1
	}
	return end
}

func (c *Cursor) firstNonBlankAt(index int) int {
	i, end := c.lineStartAt(index), c.contentEndAt(index)
	for i < end && isSpaceOrTab(c.chars.CharAt(i)) {
		i++
	}
	return i
}

func (c *Cursor) afterLastNonBlankAt(index int) int {
	first := c.firstNonBlankAt(index)
	i := c.contentEndAt(index)
	for i > first && isSpaceOrTab(c.chars.CharAt(i-1)) {
		i--
	}
	return i
}

// StartOfLine returns the offset of the first character of the line.
func (c *Cursor) StartOfLine() int { return c.lineStartAt(c.index) }

// EndOfLine returns the offset just past the line, including its '\n'.
func (c *Cursor) EndOfLine() int { return c.lineEndAt(c.index) }

// LineContentEnd returns EndOfLine without the terminating '\n'.
func (c *Cursor) LineContentEnd() int { return c.contentEndAt(c.index) }

// FirstNonBlank returns the offset of the first character on the line
// that is not a space or tab, or LineContentEnd for a blank line.
func (c *Cursor) FirstNonBlank() int { return c.firstNonBlankAt(c.index) }

// AfterLastNonBlank returns the offset just past the last character on
// the line that is not a space or tab. It is never before FirstNonBlank.
func (c *Cursor) AfterLastNonBlank() int { return c.afterLastNonBlankAt(c.index) }

// LastNonBlank returns the offset of the last non-blank character on the
// line, or FirstNonBlank for a blank line.
func (c *Cursor) LastNonBlank() int {
	first, after := c.FirstNonBlank(), c.AfterLastNonBlank()
	if after > first {
		return after - 1
	}
	return first
}

// IsEmptyLine reports whether the line has no content.
func (c *Cursor) IsEmptyLine() bool {
	return c.LineContentEnd() == c.StartOfLine()
}

// IsBlankLine reports whether the line holds only spaces and tabs.
func (c *Cursor) IsBlankLine() bool {
	return c.FirstNonBlank() == c.LineContentEnd()
}

// Indent returns the number of leading blank characters on the line.
func (c *Cursor) Indent() int {
	return c.FirstNonBlank() - c.StartOfLine()
}

// Column returns the character count from the start of the line.
func (c *Cursor) Column() int {
	return c.index - c.StartOfLine()
}

// ColumnOf returns the column of index within its own line.
func (c *Cursor) ColumnOf(index int) int {
	index = c.chars.SafeIndex(index)
	return index - c.lineStartAt(index)
}

// TabExpandedColumnOf returns the visual column of index within its line,
// with tabs advancing to the next multiple of tabSize.
func (c *Cursor) TabExpandedColumnOf(index, tabSize int) int {
	index = c.chars.SafeIndex(index)
	start := c.lineStartAt(index)
	line := make([]rune, 0, index-start)
	for i := start; i < index; i++ {
		line = append(line, c.chars.CharAt(i))
	}
	return width.NewTabStops(tabSize).Column(line, 0, c.provider)
}

// TabExpandedColumn returns the visual column of the cursor.
func (c *Cursor) TabExpandedColumn(tabSize int) int {
	return c.TabExpandedColumnOf(c.index, tabSize)
}

// TabExpandedIndent returns the visual width of the line's indent.
func (c *Cursor) TabExpandedIndent(tabSize int) int {
	return c.TabExpandedColumnOf(c.FirstNonBlank(), tabSize)
}

// EndOfPreviousLine returns the offset of the '\n' ending the previous
// line. On the first line it counts an error and returns 0.
func (c *Cursor) EndOfPreviousLine() int {
	return c.endOfPreviousLineAt(c.index)
}

func (c *Cursor) endOfPreviousLineAt(index int) int {
	return c.chars.SafeIndex(c.lineStartAt(index) - 1)
}

// StartOfNextLine returns the offset of the first character of the next
// line. On the last line it counts an error and returns Len().
func (c *Cursor) StartOfNextLine() int {
	return c.startOfNextLineAt(c.index)
}

func (c *Cursor) startOfNextLineAt(index int) int {
	start, end := c.lineStartAt(index), c.lineEndAt(index)
	if !c.terminated(start, end) {
		c.chars.Errors().Add()
	}
	return end
}

// EndOfPreviousSkipLines is EndOfPreviousLine after skipping lines more
// line boundaries backwards. Running off the start counts one error and
// returns 0.
func (c *Cursor) EndOfPreviousSkipLines(lines int) int {
	errs := c.chars.Errors()
	before := errs.Count()
	pos := c.endOfPreviousLineAt(c.index)
	for ; lines > 0 && errs.Count() == before; lines-- {
		pos = c.endOfPreviousLineAt(pos)
	}
	if errs.Count() != before {
		return 0
	}
	return pos
}

// StartOfNextSkipLines is StartOfNextLine after skipping lines more line
// boundaries forwards. Running off the end counts one error and returns
// Len().
func (c *Cursor) StartOfNextSkipLines(lines int) int {
	errs := c.chars.Errors()
	before := errs.Count()
	pos := c.startOfNextLineAt(c.index)
	for ; lines > 0 && errs.Count() == before; lines-- {
		pos = c.startOfNextLineAt(pos)
	}
	if errs.Count() != before {
		return c.chars.Len()
	}
	return pos
}

func (c *Cursor) slice(start, end int) *safe.Sequence {
	return c.chars.SubSequence(start, end)
}

// BeforeIndexChars returns [0, index).
func (c *Cursor) BeforeIndexChars() *safe.Sequence { return c.slice(0, c.index) }

// AfterIndexChars returns [index, Len()).
func (c *Cursor) AfterIndexChars() *safe.Sequence { return c.slice(c.index, c.chars.Len()) }

// LineChars returns the whole line including its '\n'.
func (c *Cursor) LineChars() *safe.Sequence { return c.slice(c.StartOfLine(), c.EndOfLine()) }

// LineContentChars returns the line without its '\n'.
func (c *Cursor) LineContentChars() *safe.Sequence {
	return c.slice(c.StartOfLine(), c.LineContentEnd())
}

// StartOfLineToIndexChars returns [StartOfLine, index).
func (c *Cursor) StartOfLineToIndexChars() *safe.Sequence {
	return c.slice(c.StartOfLine(), c.index)
}

// IndexToEndOfLineChars returns [index, EndOfLine).
func (c *Cursor) IndexToEndOfLineChars() *safe.Sequence {
	return c.slice(c.index, c.EndOfLine())
}

// FirstToLastNonBlankLineChars returns the line content with leading and
// trailing blanks removed.
func (c *Cursor) FirstToLastNonBlankLineChars() *safe.Sequence {
	return c.slice(c.FirstNonBlank(), c.AfterLastNonBlank())
}

// FirstNonBlankToEndOfLineChars returns [FirstNonBlank, EndOfLine).
func (c *Cursor) FirstNonBlankToEndOfLineChars() *safe.Sequence {
	return c.slice(c.FirstNonBlank(), c.EndOfLine())
}

// StartOfLineToLastNonBlankChars returns [StartOfLine, AfterLastNonBlank).
func (c *Cursor) StartOfLineToLastNonBlankChars() *safe.Sequence {
	return c.slice(c.StartOfLine(), c.AfterLastNonBlank())
}

// FirstNonBlankToIndexChars returns [FirstNonBlank, index), empty when the
// cursor is inside the indent.
func (c *Cursor) FirstNonBlankToIndexChars() *safe.Sequence {
	return c.slice(min(c.FirstNonBlank(), c.index), c.index)
}

// IndexToLastNonBlankChars returns [index, AfterLastNonBlank), empty when
// the cursor is in the trailing blanks.
func (c *Cursor) IndexToLastNonBlankChars() *safe.Sequence {
	return c.slice(c.index, max(c.AfterLastNonBlank(), c.index))
}

// String renders the current line with ">|<" marking the cursor.
func (c *Cursor) String() string {
	return c.StartOfLineToIndexChars().String() + ">|<" + c.IndexToEndOfLineChars().String()
}
