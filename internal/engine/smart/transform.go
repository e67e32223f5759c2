package smart

import (
	"unicode"

	"github.com/dshills/smartseq/internal/engine/width"
)

// Mapper is a named character-to-character transform. Mappers compare by
// pointer: two mapped nodes splice only when they share the same Mapper.
type Mapper struct {
	name string
	fn   func(rune) rune
}

// NewMapper creates a mapper.
func NewMapper(name string, fn func(rune) rune) *Mapper {
	return &Mapper{name: name, fn: fn}
}

// Name returns the mapper's name.
func (m *Mapper) Name() string { return m.name }

// Map transforms one character.
func (m *Mapper) Map(c rune) rune { return m.fn(c) }

// Built-in mappers.
var (
	LowerCase = NewMapper("lowercase", unicode.ToLower)
	UpperCase = NewMapper("uppercase", unicode.ToUpper)
)

func newMapped(base *Node, m *Mapper) *Node {
	if !base.variable && base.length == 0 {
		return emptyNode
	}
	return &Node{
		kind:     KindMapped,
		length:   base.length,
		serial:   NextVersion(),
		variable: base.variable,
		base:     base,
		mapper:   m,
	}
}

func newReversed(base *Node) *Node {
	if !base.variable && base.length == 0 {
		return emptyNode
	}
	return &Node{
		kind:     KindReversed,
		length:   base.length,
		serial:   NextVersion(),
		variable: base.variable,
		base:     base,
	}
}

// newReplaced shows repl in place of base. The first min(len) characters
// of repl map to the matching characters of base; the rest are unmapped.
func newReplaced(base *Node, repl []rune) *Node {
	if len(repl) == 0 {
		return emptyNode
	}
	if !base.variable && base.length == 0 {
		return NewLeaf(repl, 0, nil)
	}
	return &Node{
		kind:     KindReplaced,
		length:   len(repl),
		serial:   NextVersion(),
		variable: base.variable,
		chars:    repl,
		base:     base,
	}
}

// Mapped returns n with every character passed through m. Mapping an
// already mapped node with the same mapper returns it unchanged.
func (n *Node) Mapped(m *Mapper) *Node {
	base := n.Original()
	if base.kind == KindMapped && base.mapper == m {
		return base
	}
	return newMapped(base, m)
}

// Lowercase returns n mapped to lower case.
func (n *Node) Lowercase() *Node { return n.Mapped(LowerCase) }

// Uppercase returns n mapped to upper case.
func (n *Node) Uppercase() *Node { return n.Mapped(UpperCase) }

// Reversed returns n read backwards. Each character still tracks to its
// own source offset.
func (n *Node) Reversed() *Node {
	base := n.Original()
	if base.kind == KindReversed {
		return base.base
	}
	return newReversed(base)
}

// ReplacedWith returns repl shown in place of n. Characters of repl past
// n's length track to the gap after n's last character.
func (n *Node) ReplacedWith(repl string) *Node {
	return newReplaced(n.Original(), []rune(repl))
}

var spaceRun = []rune("                                                                ")

func spaces(count int) []rune {
	if count <= len(spaceRun) {
		return spaceRun[:count:count]
	}
	out := make([]rune, count)
	for i := range out {
		out[i] = ' '
	}
	return out
}

// ExpandTabs replaces every tab with the spaces that reach the next
// multiple of tabSize. Columns restart after each newline.
func (n *Node) ExpandTabs(tabSize int) *Node {
	return n.ExpandTabsWith(width.NewTabStops(tabSize), nil)
}

// ExpandTabsWith is ExpandTabs with explicit tab stops, measuring other
// characters with p. A nil p measures every character as one column.
func (n *Node) ExpandTabsWith(stops width.TabStops, p width.Provider) *Node {
	if p == nil {
		p = width.Default
	}
	chars := n.CachedProxy().chars
	var parts []*Node
	last, col := 0, 0
	for i, c := range chars {
		switch c {
		case '\t':
			advance := stops.Advance(col)
			parts = append(parts, n.sub(last, i), newReplaced(n.sub(i, i+1), spaces(advance)))
			col += advance
			last = i + 1
		case '\n':
			col = 0
		default:
			col += p.CharWidth(c)
		}
	}
	if parts == nil {
		return n
	}
	parts = append(parts, n.sub(last, len(chars)))
	return concat(parts)
}
