package smart

import "sync/atomic"

// versionSerial generates version stamps.
var versionSerial atomic.Uint64

// NextVersion returns a new version stamp, greater than every stamp
// handed out before it.
func NextVersion() uint64 {
	return versionSerial.Add(1)
}

// layout holds the cumulative child offsets of a composite as of a
// version.
type layout struct {
	version uint64
	offsets []int
}

// Version returns the version stamp of n's current content. It changes
// only when a Slot reachable from n is set; for every other node it is
// fixed at construction.
func (n *Node) Version() uint64 {
	if !n.variable {
		return n.serial
	}
	v := n.serial
	switch n.kind {
	case KindSlot:
		v = max(v, n.slot.Version(), n.slot.Get().Version())
	case KindComposite:
		for _, c := range n.children {
			if c.variable {
				v = max(v, c.Version())
			}
		}
	default:
		v = max(v, n.base.Version())
	}
	return v
}

// layout returns the cumulative offsets of a composite's children:
// child k covers [offs[k], offs[k+1]).
func (n *Node) layout() []int {
	if !n.variable {
		return n.offsets
	}
	v := n.Version()
	if l := n.dynamic.Load(); l != nil && l.version == v {
		return l.offsets
	}
	offs := cumulative(n.children)
	n.dynamic.Store(&layout{version: v, offsets: offs})
	return offs
}

func cumulative(children []*Node) []int {
	offs := make([]int, len(children)+1)
	for i, c := range children {
		offs[i+1] = offs[i] + c.Len()
	}
	return offs
}

// freeze returns a node with n's current content that no Slot can change.
func (n *Node) freeze() *Node {
	if !n.variable {
		return n
	}
	switch n.kind {
	case KindSlot:
		return n.slot.Get().freeze()
	case KindComposite:
		children := make([]*Node, len(n.children))
		for i, c := range n.children {
			children[i] = c.freeze()
		}
		return newComposite(children)
	case KindMapped:
		return newMapped(n.base.freeze(), n.mapper)
	case KindReversed:
		return newReversed(n.base.freeze())
	case KindReplaced:
		return newReplaced(n.base.freeze(), n.chars)
	}
	return n
}
