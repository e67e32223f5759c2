package smart

import (
	"github.com/dshills/smartseq/internal/engine/interval"
	"github.com/dshills/smartseq/internal/engine/safe"
)

// Editor applies edits to nodes and counts every clamped bound in a
// shared error cell. The Node edit methods behave the same but discard
// the count.
//
// Edits rebuild through AppendOptimized, so the result is one flat
// composite of spliced segments and an edit costs time linear in the
// segment count, not the tree height. Untouched source text stays a
// single segment, which keeps that count small for typical documents.
type Editor struct {
	errs *safe.Errors
}

// NewEditor creates an editor counting into errs. A nil errs gets a fresh
// cell.
func NewEditor(errs *safe.Errors) *Editor {
	if errs == nil {
		errs = safe.NewErrors()
	}
	return &Editor{errs: errs}
}

// Errors returns the editor's error cell.
func (e *Editor) Errors() *safe.Errors { return e.errs }

func (e *Editor) bounds(n *Node, start, end int) interval.Interval {
	return safe.New(n, safe.WithErrors(e.errs)).SafeRange(start, end)
}

// SubSequence returns n[start:end) with clamped bounds.
func (e *Editor) SubSequence(n *Node, start, end int) *Node {
	r := e.bounds(n, start, end)
	return n.sub(r.Start(), r.End())
}

// Insert returns n with seq inserted at index.
func (e *Editor) Insert(n, seq *Node, index int) *Node {
	i := safe.New(n, safe.WithErrors(e.errs)).SafeIndex(index)
	if seq == nil {
		seq = emptyNode
	}
	return n.sub(0, i).AppendOptimized(seq, n.sub(i, n.Len()))
}

// Delete returns n without [start, end).
func (e *Editor) Delete(n *Node, start, end int) *Node {
	return e.Replace(n, nil, start, end)
}

// Replace returns n with [start, end) replaced by seq.
func (e *Editor) Replace(n, seq *Node, start, end int) *Node {
	r := e.bounds(n, start, end)
	if seq == nil {
		seq = emptyNode
	}
	return n.sub(0, r.Start()).AppendOptimized(seq, n.sub(r.End(), n.Len()))
}

func quiet() *Editor { return &Editor{} }

// SubSequence returns n[start:end) with bounds clamped into range.
// Fixed content is shared, not copied; the content of a Slot is captured
// as of the call.
func (n *Node) SubSequence(start, end int) *Node {
	return quiet().SubSequence(n, start, end)
}

// Insert returns n with seq inserted at index.
func (n *Node) Insert(seq *Node, index int) *Node {
	return quiet().Insert(n, seq, index)
}

// Delete returns n without [start, end).
func (n *Node) Delete(start, end int) *Node {
	return quiet().Delete(n, start, end)
}

// Replace returns n with [start, end) replaced by seq.
func (n *Node) Replace(seq *Node, start, end int) *Node {
	return quiet().Replace(n, seq, start, end)
}

// sub returns n[start:end) for a valid range.
func (n *Node) sub(start, end int) *Node {
	length := n.Len()
	if start == 0 && end == length && !n.variable {
		return n
	}
	if start >= end {
		return emptyNode
	}
	switch n.kind {
	case KindLeaf:
		return NewLeaf(n.chars[start:end], n.origin+start, n.source)
	case KindProxy:
		return n.frozen.sub(start, end)
	case KindSlot:
		return n.slot.Get().freeze().sub(start, end)
	case KindMapped:
		return newMapped(n.base.sub(start, end), n.mapper)
	case KindReversed:
		return newReversed(n.base.sub(length-end, length-start))
	case KindReplaced:
		lb := n.base.Len()
		return newReplaced(n.base.sub(min(start, lb), min(end, lb)), n.chars[start:end])
	}

	offs := n.layout()
	var parts []*Node
	for k, c := range n.children {
		cs, ce := offs[k], offs[k+1]
		if ce <= start || cs >= end {
			continue
		}
		parts = append(parts, c.sub(max(start, cs)-cs, min(end, ce)-cs))
	}
	return concat(parts)
}
