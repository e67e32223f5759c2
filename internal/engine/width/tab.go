package width

// DefaultTabSize is used when a non-positive tab size is requested.
const DefaultTabSize = 4

// TabStops computes tab-stop columns for a fixed tab size.
type TabStops struct {
	size int
}

// NewTabStops creates tab stops every size columns.
func NewTabStops(size int) TabStops {
	if size < 1 {
		size = DefaultTabSize
	}
	return TabStops{size: size}
}

// Size returns the tab size.
func (t TabStops) Size() int {
	if t.size < 1 {
		return DefaultTabSize
	}
	return t.size
}

// Next returns the tab stop a tab at col advances to.
func (t TabStops) Next(col int) int {
	return col + t.Advance(col)
}

// Advance returns how many columns a tab at col expands to.
func (t TabStops) Advance(col int) int {
	return t.Size() - (col % t.Size())
}

// IsStop reports whether col is a tab stop.
func (t TabStops) IsStop(col int) bool {
	return col%t.Size() == 0
}

// Prev returns the tab stop before col, or 0.
func (t TabStops) Prev(col int) int {
	if col <= 0 {
		return 0
	}
	if col%t.Size() == 0 {
		return col - t.Size()
	}
	return (col / t.Size()) * t.Size()
}

// Column returns the visual column reached after measuring chars starting
// at column start. A newline resets the column to zero. A nil provider
// measures every character as one column.
func (t TabStops) Column(chars []rune, start int, p Provider) int {
	if p == nil {
		p = Default
	}
	col := start
	for _, c := range chars {
		switch c {
		case '\t':
			col = t.Next(col)
		case '\n':
			col = 0
		default:
			col += p.CharWidth(c)
		}
	}
	return col
}

// ExpandedWidth returns the visual width of s with tabs expanded.
func (t TabStops) ExpandedWidth(s string) int {
	return t.Column([]rune(s), 0, nil)
}

// Expand returns s with tabs replaced by spaces.
func (t TabStops) Expand(s string) string {
	out := make([]rune, 0, len(s))
	col := 0
	for _, c := range s {
		switch c {
		case '\t':
			for n := t.Advance(col); n > 0; n-- {
				out = append(out, ' ')
			}
			col = t.Next(col)
		case '\n':
			out = append(out, c)
			col = 0
		default:
			out = append(out, c)
			col++
		}
	}
	return string(out)
}
