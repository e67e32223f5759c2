package smart

// newComposite creates a composite over children as given, keeping empty
// children in place.
func newComposite(children []*Node) *Node {
	n := &Node{
		kind:     KindComposite,
		serial:   NextVersion(),
		children: children,
	}
	for _, c := range children {
		if c.variable {
			n.variable = true
			break
		}
	}
	if !n.variable {
		n.offsets = cumulative(children)
		n.length = n.offsets[len(children)]
	}
	return n
}

// concat joins parts, dropping fixed empty parts and avoiding a composite
// when at most one part is left.
func concat(parts []*Node) *Node {
	kept := make([]*Node, 0, len(parts))
	for _, p := range parts {
		if p == nil || (!p.variable && p.length == 0) {
			continue
		}
		kept = append(kept, p)
	}
	switch len(kept) {
	case 0:
		return emptyNode
	case 1:
		return kept[0]
	}
	return newComposite(kept)
}

// Segmented creates a composite whose children are exactly parts, empty
// ones included, so that Children lines up with parts.
func Segmented(parts ...*Node) *Node {
	children := make([]*Node, len(parts))
	for i, p := range parts {
		if p == nil {
			p = emptyNode
		}
		children[i] = p
	}
	return newComposite(children)
}

// Append returns n followed by others.
func (n *Node) Append(others ...*Node) *Node {
	parts := make([]*Node, 0, len(others)+1)
	parts = append(parts, n)
	parts = append(parts, others...)
	return concat(parts)
}

// AppendOptimized returns the same content as Append, but flattens the
// operands and splices every adjacent pair that can be spliced, so long
// runs of untouched source text stay a single leaf. The result is flat:
// its cost is linear in the number of segments.
func (n *Node) AppendOptimized(others ...*Node) *Node {
	parts := n.Flattened(nil)
	for _, o := range others {
		if o != nil {
			parts = o.Flattened(parts)
		}
	}
	out := make([]*Node, 0, len(parts))
	for _, p := range parts {
		if k := len(out); k > 0 {
			if s, ok := out[k-1].SplicedWith(p); ok {
				out[k-1] = s
				continue
			}
		}
		out = append(out, p)
	}
	return concat(out)
}

// Flattened appends n's decomposition, left to right, to out: the
// children of fixed composites recursively, the content a proxy was taken
// from, and every other non-empty node as itself.
func (n *Node) Flattened(out []*Node) []*Node {
	if n.variable {
		return append(out, n)
	}
	if n.length == 0 {
		return out
	}
	if n.kind == KindProxy {
		return n.frozen.Flattened(out)
	}
	if n.kind == KindComposite {
		for _, c := range n.children {
			out = c.Flattened(out)
		}
		return out
	}
	return append(out, n)
}

// SplicedWith merges n and o into one node when o continues n in source
// order: two leaves of the same source with o starting where n ends, or
// mapped or reversed nodes whose bases splice. A composite splices
// through its last child. Nodes that reach a Slot never splice.
func (n *Node) SplicedWith(o *Node) (*Node, bool) {
	if o == nil || n.variable || o.variable {
		return nil, false
	}
	if o.length == 0 {
		return n, true
	}
	if n.length == 0 {
		return o, true
	}
	switch {
	case n.kind == KindLeaf && o.kind == KindLeaf:
		if n.source != o.source || n.origin+len(n.chars) != o.origin {
			return nil, false
		}
		return NewLeaf(joinRunes(n.chars, o.chars), n.origin, n.source), true

	case n.kind == KindComposite:
		last := len(n.children) - 1
		s, ok := n.children[last].SplicedWith(o)
		if !ok {
			return nil, false
		}
		children := make([]*Node, len(n.children))
		copy(children, n.children)
		children[last] = s
		return newComposite(children), true

	case n.kind == KindMapped && o.kind == KindMapped && n.mapper == o.mapper:
		s, ok := n.base.SplicedWith(o.base)
		if !ok {
			return nil, false
		}
		return newMapped(s, n.mapper), true

	case n.kind == KindReversed && o.kind == KindReversed:
		s, ok := o.base.SplicedWith(n.base)
		if !ok {
			return nil, false
		}
		return newReversed(s), true
	}
	return nil, false
}

// joinRunes returns a followed by b, reusing a's backing array when b
// already sits right after a in it.
func joinRunes(a, b []rune) []rune {
	if len(a) < cap(a) && &a[:len(a)+1][len(a)] == &b[0] && len(a)+len(b) <= cap(a) {
		return a[:len(a)+len(b)]
	}
	out := make([]rune, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
