package smart

import (
	"github.com/sanity-io/litter"
)

// dumpNode is the debug view of a Node.
type dumpNode struct {
	Kind     string
	Len      int
	Version  uint64
	Text     string
	Source   string
	Origin   int
	Mapper   string
	Children []dumpNode
	Base     *dumpNode
}

var dumpOptions = litter.Options{
	HideZeroValues:    true,
	StripPackageNames: true,
}

// Dump renders the structure of n for debugging.
func Dump(n *Node) string {
	return dumpOptions.Sdump(describe(n))
}

func describe(n *Node) dumpNode {
	d := dumpNode{
		Kind:    n.kind.String(),
		Len:     n.Len(),
		Version: n.Version(),
	}
	switch n.kind {
	case KindLeaf:
		d.Text = string(n.chars)
		d.Source = n.source.String()
		d.Origin = n.origin
	case KindComposite:
		for _, c := range n.children {
			d.Children = append(d.Children, describe(c))
		}
	case KindMapped, KindReversed, KindReplaced:
		if n.mapper != nil {
			d.Mapper = n.mapper.Name()
		}
		if n.kind == KindReplaced {
			d.Text = string(n.chars)
		}
		b := describe(n.base)
		d.Base = &b
	case KindProxy:
		d.Text = string(n.chars)
		b := describe(n.frozen)
		d.Base = &b
	case KindSlot:
		b := describe(n.slot.Get())
		d.Base = &b
	}
	return d
}
