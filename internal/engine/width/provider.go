package width

// Provider measures character display widths and optionally indexes the
// lines of a text. Line accessors report ok=false when the provider has
// no line index or the argument is out of range.
type Provider interface {
	// CharWidth returns the display width of c.
	CharWidth(c rune) int

	// StringWidth returns the display width of s. Characters listed in
	// zeroWidth are measured as zero wide.
	StringWidth(s string, zeroWidth string) int

	// SpaceWidth returns the width of a space.
	SpaceWidth() int

	LineChars(line int) (string, bool)
	LineStart(line int) (int, bool)
	LineEnd(line int) (int, bool)
	OffsetLineStart(offset int) (int, bool)
	OffsetLineEnd(offset int) (int, bool)
	OffsetLineNumber(offset int) (int, bool)

	// InitCharWidths precomputes widths for text offsets [start, end).
	InitCharWidths(start, end int)
}

// Unity is the trivial provider: every character is one column wide and
// no line information is available.
type Unity struct{}

// Default is the provider used when none is configured.
var Default Provider = Unity{}

// CharWidth returns 1.
func (Unity) CharWidth(rune) int { return 1 }

// StringWidth returns the number of characters in s not listed in zeroWidth.
func (Unity) StringWidth(s string, zeroWidth string) int {
	n := 0
	for _, c := range s {
		if !isZeroWidth(c, zeroWidth) {
			n++
		}
	}
	return n
}

// SpaceWidth returns 1.
func (Unity) SpaceWidth() int { return 1 }

func (Unity) LineChars(int) (string, bool)     { return "", false }
func (Unity) LineStart(int) (int, bool)        { return 0, false }
func (Unity) LineEnd(int) (int, bool)          { return 0, false }
func (Unity) OffsetLineStart(int) (int, bool)  { return 0, false }
func (Unity) OffsetLineEnd(int) (int, bool)    { return 0, false }
func (Unity) OffsetLineNumber(int) (int, bool) { return 0, false }
func (Unity) InitCharWidths(int, int)          {}

func isZeroWidth(c rune, zeroWidth string) bool {
	for _, z := range zeroWidth {
		if z == c {
			return true
		}
	}
	return false
}
