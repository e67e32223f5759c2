package smart

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/dshills/smartseq/internal/engine/tracking"
)

// TrackedSourceLocation returns where the character at index came from.
// The index is clamped into range; an empty node yields
// tracking.NoCharacter, which is never exact.
// Characters inserted by a replacement that have no counterpart in the
// replaced text yield a bracket around the last replaced character.
func (n *Node) TrackedSourceLocation(index int) tracking.Location {
	length := n.Len()
	if length == 0 {
		return tracking.NoCharacter
	}
	return n.locate(min(max(index, 0), length-1))
}

func (n *Node) locate(i int) tracking.Location {
	switch n.kind {
	case KindComposite:
		k, local := n.childAt(i)
		return n.children[k].locate(local).Shifted(i - local)
	case KindMapped:
		return n.base.locate(i)
	case KindReversed:
		length := n.Len()
		return n.base.locate(length - 1 - i).Mirrored(length)
	case KindReplaced:
		lb := n.base.Len()
		if i < lb {
			return n.base.locate(i)
		}
		if lb == 0 {
			return tracking.Location{Index: i, PrevIndex: i, NextIndex: i}
		}
		prev := n.base.locate(lb - 1)
		return tracking.NewLocation(i, prev.Offset, prev.Source).
			WithPrevClosest(prev.Index, prev.Offset, prev.Source).
			WithNextClosest(prev.Index, prev.Offset, prev.Source)
	case KindProxy:
		return n.frozen.locate(i)
	case KindSlot:
		return n.slot.Get().locate(i)
	}
	return tracking.NewLocation(i, n.origin+i, n.source)
}

// Mappings returns the runs of n's characters that map exactly to a
// source, in index order, with contiguous runs merged.
func (n *Node) Mappings() []tracking.Mapping {
	return n.appendMappings(nil, 0)
}

func (n *Node) appendMappings(ms []tracking.Mapping, at int) []tracking.Mapping {
	switch n.kind {
	case KindLeaf:
		return tracking.AppendMapping(ms, tracking.Mapping{
			Index: at, Len: len(n.chars), Source: n.source, Offset: n.origin, Step: 1,
		})
	case KindComposite:
		offs := n.layout()
		for k, c := range n.children {
			ms = c.appendMappings(ms, at+offs[k])
		}
		return ms
	case KindMapped:
		return n.base.appendMappings(ms, at)
	case KindReversed:
		length := n.Len()
		inner := n.base.appendMappings(nil, 0)
		for j := len(inner) - 1; j >= 0; j-- {
			m := inner[j]
			ms = tracking.AppendMapping(ms, tracking.Mapping{
				Index:  at + length - m.Index - m.Len,
				Len:    m.Len,
				Source: m.Source,
				Offset: m.OffsetAt(m.Index + m.Len - 1),
				Step:   -m.Step,
			})
		}
		return ms
	case KindReplaced:
		limit := min(n.base.Len(), len(n.chars))
		for _, m := range n.base.appendMappings(nil, 0) {
			if m.Index >= limit {
				break
			}
			m.Len = min(m.Len, limit-m.Index)
			ms = tracking.AppendMapping(ms, m.Shifted(at))
		}
		return ms
	case KindProxy:
		return n.frozen.appendMappings(ms, at)
	case KindSlot:
		return n.slot.Get().appendMappings(ms, at)
	}
	return ms
}

// LocationSnapshot returns the source index of n's current content. The
// snapshot is cached on n until n's version advances.
func (n *Node) LocationSnapshot() *tracking.Snapshot {
	v := n.Version()
	if s := n.snap.Load(); s != nil && s.Version == v {
		return s
	}
	s := tracking.NewSnapshot("", n.Len(), v, n.Mappings())
	n.snap.Store(s)
	return s
}

// TrackedLocation finds where offset of src lives in n. It returns false
// when no character of n comes from src. The result is exact when a
// character maps to offset and a bracket of the nearest mapped characters
// otherwise; when several characters map to offset the leftmost wins.
func (n *Node) TrackedLocation(src *tracking.Source, offset int) (tracking.Location, bool) {
	if src == nil {
		return tracking.Location{}, false
	}
	return n.LocationSnapshot().TrackedLocation(src, offset)
}

// Sources returns the set of sources n's characters come from.
func (n *Node) Sources() mapset.Set[*tracking.Source] {
	return n.LocationSnapshot().Sources()
}
