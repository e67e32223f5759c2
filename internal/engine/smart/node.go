package smart

import (
	"sort"
	"sync/atomic"

	"github.com/dshills/smartseq/internal/engine/safe"
	"github.com/dshills/smartseq/internal/engine/tracking"
)

// Kind tags the variant a Node holds.
type Kind uint8

const (
	// KindLeaf is a run of characters taken from one source.
	KindLeaf Kind = iota
	// KindComposite is the concatenation of its children.
	KindComposite
	// KindMapped applies a Mapper to every character of its base.
	KindMapped
	// KindReversed reads its base backwards.
	KindReversed
	// KindReplaced shows replacement characters in place of its base.
	KindReplaced
	// KindProxy is a flat, version-stamped copy of another node.
	KindProxy
	// KindSlot follows the current content of a Slot.
	KindSlot
)

var kindNames = [...]string{"leaf", "composite", "mapped", "reversed", "replaced", "proxy", "slot"}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Node is an immutable character sequence that remembers where each of
// its characters came from. Nodes are shared freely between trees; no
// operation modifies a published node.
//
// Node implements safe.Chars. CharAt panics on an out-of-range index like
// a slice does; wrap a node with Safe for clamped access.
type Node struct {
	kind     Kind
	length   int
	serial   uint64
	variable bool

	// leaf, proxy and replaced characters
	chars  []rune
	origin int
	source *tracking.Source

	// composite
	children []*Node
	offsets  []int
	dynamic  atomic.Pointer[layout]

	// mapped, reversed and replaced wrap base; a proxy copies base
	base   *Node
	mapper *Mapper

	frozen       *Node
	proxyVersion uint64

	slot *Slot

	proxy atomic.Pointer[Node]
	snap  atomic.Pointer[tracking.Snapshot]
}

var emptyNode = &Node{kind: KindLeaf}

// Empty returns the shared empty node.
func Empty() *Node { return emptyNode }

// NewLeaf creates a leaf over chars, whose first character sits at origin
// in src. The slice is shared, never written. A nil src gets a fresh
// anonymous source.
func NewLeaf(chars []rune, origin int, src *tracking.Source) *Node {
	if len(chars) == 0 {
		return emptyNode
	}
	if src == nil {
		src = tracking.NewSource("")
	}
	return &Node{
		kind:   KindLeaf,
		length: len(chars),
		serial: NextVersion(),
		chars:  chars,
		origin: origin,
		source: src,
	}
}

// FromRunes creates a leaf over chars starting at offset 0 of src.
func FromRunes(chars []rune, src *tracking.Source) *Node {
	return NewLeaf(chars, 0, src)
}

// FromString creates a leaf over s starting at offset 0 of src.
func FromString(s string, src *tracking.Source) *Node {
	return NewLeaf([]rune(s), 0, src)
}

// Literal creates a leaf over s with its own anonymous source. Use it for
// text an edit inserts rather than text read from a document.
func Literal(s string) *Node {
	return FromString(s, nil)
}

// Repeat creates a literal of count copies of c.
func Repeat(c rune, count int) *Node {
	if count <= 0 {
		return emptyNode
	}
	chars := make([]rune, count)
	for i := range chars {
		chars[i] = c
	}
	return NewLeaf(chars, 0, nil)
}

// Kind returns the variant tag.
func (n *Node) Kind() Kind { return n.kind }

// IsLeaf reports whether n is a leaf.
func (n *Node) IsLeaf() bool { return n.kind == KindLeaf }

// IsComposite reports whether n is a composite.
func (n *Node) IsComposite() bool { return n.kind == KindComposite }

// IsVariable reports whether n's content can change because it reaches a
// Slot.
func (n *Node) IsVariable() bool { return n.variable }

// Source returns the source of a leaf, or nil for other kinds.
func (n *Node) Source() *tracking.Source { return n.source }

// Origin returns the source offset of a leaf's first character.
func (n *Node) Origin() int { return n.origin }

// Children returns a copy of a composite's children.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// Len returns the number of characters.
func (n *Node) Len() int {
	if !n.variable {
		return n.length
	}
	switch n.kind {
	case KindComposite:
		offs := n.layout()
		return offs[len(offs)-1]
	case KindSlot:
		return n.slot.Get().Len()
	case KindReplaced:
		return len(n.chars)
	}
	return n.base.Len()
}

// IsEmpty reports whether n has no characters.
func (n *Node) IsEmpty() bool { return n.Len() == 0 }

// childAt returns the child holding index and the index within it.
func (n *Node) childAt(index int) (int, int) {
	offs := n.layout()
	k := sort.Search(len(n.children), func(k int) bool { return offs[k+1] > index })
	return k, index - offs[k]
}

// CharAt returns the character at index.
func (n *Node) CharAt(index int) rune {
	switch n.kind {
	case KindComposite:
		k, local := n.childAt(index)
		return n.children[k].CharAt(local)
	case KindMapped:
		return n.mapper.Map(n.base.CharAt(index))
	case KindReversed:
		return n.base.CharAt(n.Len() - 1 - index)
	case KindSlot:
		return n.slot.Get().CharAt(index)
	}
	return n.chars[index]
}

// AppendRunes appends n's characters to dst.
func (n *Node) AppendRunes(dst []rune) []rune {
	switch n.kind {
	case KindComposite:
		for _, c := range n.children {
			dst = c.AppendRunes(dst)
		}
		return dst
	case KindMapped:
		start := len(dst)
		dst = n.base.AppendRunes(dst)
		for i := start; i < len(dst); i++ {
			dst[i] = n.mapper.Map(dst[i])
		}
		return dst
	case KindReversed:
		start := len(dst)
		dst = n.base.AppendRunes(dst)
		for i, j := start, len(dst)-1; i < j; i, j = i+1, j-1 {
			dst[i], dst[j] = dst[j], dst[i]
		}
		return dst
	case KindSlot:
		return n.slot.Get().AppendRunes(dst)
	}
	return append(dst, n.chars...)
}

// Runes returns a copy of n's characters.
func (n *Node) Runes() []rune {
	return n.AppendRunes(make([]rune, 0, n.Len()))
}

// String returns n's content.
func (n *Node) String() string {
	return string(n.CachedProxy().chars)
}

// Depth returns the height of the tree under n; a leaf has depth 1.
func (n *Node) Depth() int {
	switch n.kind {
	case KindComposite:
		d := 0
		for _, c := range n.children {
			d = max(d, c.Depth())
		}
		return d + 1
	case KindMapped, KindReversed, KindReplaced:
		return n.base.Depth() + 1
	case KindSlot:
		return n.slot.Get().Depth()
	}
	return 1
}

// Safe wraps n in a bounded sequence for clamped, counted access.
func (n *Node) Safe(opts ...safe.Option) *safe.Sequence {
	return safe.New(n.CachedProxy(), opts...)
}

// Equivalent reports whether n and other hold the same characters,
// regardless of tree shape or provenance.
func (n *Node) Equivalent(other safe.Chars) bool {
	if o, ok := other.(*Node); ok {
		if o == n {
			return true
		}
		if o == nil {
			return n.Len() == 0
		}
		other = o.CachedProxy()
	}
	if other == nil || n.Len() != other.Len() {
		return false
	}
	for i, c := range n.CachedProxy().chars {
		if c != other.CharAt(i) {
			return false
		}
	}
	return true
}
