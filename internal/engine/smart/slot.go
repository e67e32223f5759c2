package smart

import "sync/atomic"

// Slot is a mutable holder of a node. Its Node view follows whatever the
// slot currently holds, so trees built over the view change content when
// the slot is set, and proxies taken of them go stale.
//
// A slot must never hold a tree that contains its own view.
type Slot struct {
	node    atomic.Pointer[Node]
	version atomic.Uint64
	view    *Node
}

// NewSlot creates a slot holding initial, or Empty when nil.
func NewSlot(initial *Node) *Slot {
	s := &Slot{}
	s.view = &Node{kind: KindSlot, serial: NextVersion(), variable: true, slot: s}
	s.Set(initial)
	return s
}

// Set replaces the held node and advances the slot's version.
func (s *Slot) Set(n *Node) {
	if n == nil {
		n = emptyNode
	}
	s.node.Store(n)
	s.version.Store(NextVersion())
}

// Get returns the held node.
func (s *Slot) Get() *Node { return s.node.Load() }

// Version returns the version stamp of the last Set.
func (s *Slot) Version() uint64 { return s.version.Load() }

// Node returns the view that follows the slot's content.
func (s *Slot) Node() *Node { return s.view }
