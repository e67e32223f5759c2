package cursor

import (
	"testing"

	"github.com/dshills/smartseq/internal/engine/safe"
	"github.com/dshills/smartseq/internal/engine/width"
)

func newCursor(text string, index int) *Cursor {
	return New(safe.New(safe.String(text)), index)
}

func TestLineQueries(t *testing.T) {
	c := newCursor("  foo\n  bar\n", 8)
	if got := c.StartOfLine(); got != 6 {
		t.Errorf("StartOfLine() = %d, want 6", got)
	}
	if got := c.Indent(); got != 2 {
		t.Errorf("Indent() = %d, want 2", got)
	}
	if got := c.FirstNonBlank(); got != 8 {
		t.Errorf("FirstNonBlank() = %d, want 8", got)
	}
	if got := c.EndOfLine(); got != 12 {
		t.Errorf("EndOfLine() = %d, want 12", got)
	}
	if got := c.LastNonBlank(); got != 10 {
		t.Errorf("LastNonBlank() = %d, want 10", got)
	}
	if got := c.Column(); got != 2 {
		t.Errorf("Column() = %d, want 2", got)
	}
	if c.Errors().Count() != 0 {
		t.Errorf("unexpected errors: %d", c.Errors().Count())
	}
}

func TestBlankAndEmptyLines(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		index int
		empty bool
		blank bool
	}{
		{"empty middle", "a\n\nb", 2, true, true},
		{"blank middle", "a\n \t\nb", 3, false, true},
		{"content", "a\n x\nb", 3, false, false},
		{"empty buffer", "", 0, true, true},
		{"final empty line", "a\n", 2, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCursor(tt.text, tt.index)
			if got := c.IsEmptyLine(); got != tt.empty {
				t.Errorf("IsEmptyLine() = %v, want %v", got, tt.empty)
			}
			if got := c.IsBlankLine(); got != tt.blank {
				t.Errorf("IsBlankLine() = %v, want %v", got, tt.blank)
			}
		})
	}
}

func TestSetIndexClamps(t *testing.T) {
	c := newCursor("abc", 0)
	c.SetIndex(10)
	if c.Index() != 3 {
		t.Errorf("Index() = %d, want 3", c.Index())
	}
	c.Move(-10)
	if c.Index() != 0 {
		t.Errorf("Index() = %d, want 0", c.Index())
	}
	if c.Errors().Count() != 2 {
		t.Errorf("errors = %d, want 2", c.Errors().Count())
	}
}

func TestPreviousAndNextLines(t *testing.T) {
	text := "one\ntwo\nthree\nfour"
	c := newCursor(text, 9) // inside "three"
	errs := c.Errors()

	if got := c.EndOfPreviousLine(); got != 7 {
		t.Errorf("EndOfPreviousLine() = %d, want 7", got)
	}
	if got := c.StartOfNextLine(); got != 14 {
		t.Errorf("StartOfNextLine() = %d, want 14", got)
	}
	if got := c.EndOfPreviousSkipLines(1); got != 3 {
		t.Errorf("EndOfPreviousSkipLines(1) = %d, want 3", got)
	}
	if got := c.StartOfNextSkipLines(0); got != 14 {
		t.Errorf("StartOfNextSkipLines(0) = %d, want 14", got)
	}
	if errs.Count() != 0 {
		t.Fatalf("unexpected errors: %d", errs.Count())
	}

	if got := c.EndOfPreviousSkipLines(5); got != 0 {
		t.Errorf("EndOfPreviousSkipLines(5) = %d, want 0", got)
	}
	if errs.Count() != 1 {
		t.Errorf("errors after overshoot = %d, want 1", errs.Count())
	}
	if got := c.StartOfNextSkipLines(5); got != len(text) {
		t.Errorf("StartOfNextSkipLines(5) = %d, want %d", got, len(text))
	}
	if errs.Count() != 2 {
		t.Errorf("errors after overshoot = %d, want 2", errs.Count())
	}
	if c.Index() != 9 {
		t.Errorf("skip queries moved the cursor to %d", c.Index())
	}
}

func TestFirstLineHasNoPrevious(t *testing.T) {
	c := newCursor("abc\ndef", 1)
	if got := c.EndOfPreviousLine(); got != 0 {
		t.Errorf("EndOfPreviousLine() = %d, want 0", got)
	}
	if c.Errors().Count() != 1 {
		t.Errorf("errors = %d, want 1", c.Errors().Count())
	}
}

func TestCharSlicesConsistent(t *testing.T) {
	text := "x\n  ab cd  \ny"
	for i := 0; i <= len(text); i++ {
		c := newCursor(text, i)
		line := c.LineChars().String()
		joined := c.StartOfLineToIndexChars().String() + c.IndexToEndOfLineChars().String()
		if joined != line {
			t.Errorf("index %d: %q + split = %q, want %q", i, c.String(), joined, line)
		}
		if c.Errors().Count() != 0 {
			t.Errorf("index %d: errors = %d", i, c.Errors().Count())
		}
	}

	c := newCursor(text, 5)
	tests := []struct {
		name string
		got  *safe.Sequence
		want string
	}{
		{"line", c.LineChars(), "  ab cd  \n"},
		{"content", c.LineContentChars(), "  ab cd  "},
		{"trimmed", c.FirstToLastNonBlankLineChars(), "ab cd"},
		{"first non-blank to end", c.FirstNonBlankToEndOfLineChars(), "ab cd  \n"},
		{"start to last non-blank", c.StartOfLineToLastNonBlankChars(), "  ab cd"},
		{"first non-blank to index", c.FirstNonBlankToIndexChars(), "a"},
		{"index to last non-blank", c.IndexToLastNonBlankChars(), "b cd"},
		{"before index", c.BeforeIndexChars(), "x\n  a"},
		{"after index", c.AfterIndexChars(), "b cd  \ny"},
	}
	for _, tt := range tests {
		if got := tt.got.String(); got != tt.want {
			t.Errorf("%s = %q, want %q", tt.name, got, tt.want)
		}
	}
	if got := c.String(); got != "  a>|<b cd  \n" {
		t.Errorf("String() = %q", got)
	}
}

func TestTabExpandedColumns(t *testing.T) {
	c := newCursor("\tx\n a\tb", 2)
	if got := c.TabExpandedColumn(4); got != 5 {
		t.Errorf("TabExpandedColumn(4) = %d, want 5", got)
	}
	if got := c.TabExpandedIndent(4); got != 4 {
		t.Errorf("TabExpandedIndent(4) = %d, want 4", got)
	}
	if got := c.TabExpandedColumnOf(6, 4); got != 4 {
		t.Errorf("TabExpandedColumnOf(6, 4) = %d, want 4", got)
	}
	if got := c.ColumnOf(6); got != 3 {
		t.Errorf("ColumnOf(6) = %d, want 3", got)
	}

	wide := New(safe.New(safe.String("日\tx")), 2, WithWidthProvider(width.NewTerminal("")))
	if got := wide.TabExpandedColumn(4); got != 4 {
		t.Errorf("wide TabExpandedColumn = %d, want 4", got)
	}
}

func TestCursorOverWindow(t *testing.T) {
	r := safe.NewRange(safe.String("skip\n  row\nrest"))
	r.SetStartIndex(5)
	r.SetEndIndex(11)
	c := New(r, 3)
	if got := c.LineChars().String(); got != "  row\n" {
		t.Errorf("LineChars() = %q", got)
	}
	if got := c.Indent(); got != 2 {
		t.Errorf("Indent() = %d", got)
	}
}
