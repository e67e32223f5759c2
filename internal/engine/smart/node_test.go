package smart

import (
	"strings"
	"testing"

	"github.com/dshills/smartseq/internal/engine/safe"
	"github.com/dshills/smartseq/internal/engine/tracking"
)

func TestNewLeaf(t *testing.T) {
	src := tracking.NewSource("doc")
	n := FromString("hello", src)

	if n.Kind() != KindLeaf {
		t.Errorf("Kind() = %v, want leaf", n.Kind())
	}
	if n.Len() != 5 {
		t.Errorf("Len() = %d, want 5", n.Len())
	}
	if n.Source() != src {
		t.Error("Source() should be the source passed in")
	}
	if n.String() != "hello" {
		t.Errorf("String() = %q, want %q", n.String(), "hello")
	}
	if n.Depth() != 1 {
		t.Errorf("Depth() = %d, want 1", n.Depth())
	}
	if n.IsVariable() {
		t.Error("leaf should not be variable")
	}
}

func TestEmpty(t *testing.T) {
	if !Empty().IsEmpty() {
		t.Error("Empty() should be empty")
	}
	if FromString("", nil) != Empty() {
		t.Error("empty leaf should be the shared empty node")
	}
	if Repeat('x', 0) != Empty() {
		t.Error("Repeat with zero count should be empty")
	}
	if got := Repeat('-', 3).String(); got != "---" {
		t.Errorf("Repeat('-', 3) = %q", got)
	}
}

func TestLiteralSourcesAreDistinct(t *testing.T) {
	a := Literal("a")
	b := Literal("a")
	if a.Source() == nil || a.Source() == b.Source() {
		t.Error("each literal should get its own anonymous source")
	}
}

func TestAppend(t *testing.T) {
	n := Literal("hello").Append(Literal(" world"))

	if n.String() != "hello world" {
		t.Errorf("String() = %q, want %q", n.String(), "hello world")
	}
	if n.Kind() != KindComposite {
		t.Errorf("Kind() = %v, want composite", n.Kind())
	}
	if n.Len() != 11 {
		t.Errorf("Len() = %d, want 11", n.Len())
	}
	if c := n.CharAt(6); c != 'w' {
		t.Errorf("CharAt(6) = %q, want 'w'", c)
	}
}

func TestAppendDropsEmpty(t *testing.T) {
	a := Literal("abc")
	if got := a.Append(Empty(), nil); got != a {
		t.Error("appending nothing should return the receiver")
	}
	if got := Empty().Append(a); got != a {
		t.Error("appending to empty should return the operand")
	}
}

func TestAppendOptimizedSplices(t *testing.T) {
	src := tracking.NewSource("doc")
	text := []rune("hello world")
	a := NewLeaf(text[:5], 0, src)
	b := NewLeaf(text[5:], 5, src)

	n := a.AppendOptimized(b)
	if !n.IsLeaf() {
		t.Fatalf("Kind() = %v, want leaf", n.Kind())
	}
	if n.String() != "hello world" {
		t.Errorf("String() = %q", n.String())
	}
	if n.Origin() != 0 || n.Source() != src {
		t.Error("spliced leaf should keep the first origin and source")
	}
	if &n.chars[0] != &text[0] {
		t.Error("adjacent runs should share the backing array")
	}
}

func TestAppendOptimizedCopiesDisjointRuns(t *testing.T) {
	src := tracking.NewSource("doc")
	a := NewLeaf([]rune("hello"), 0, src)
	b := NewLeaf([]rune(" world"), 5, src)

	n := a.AppendOptimized(b)
	if !n.IsLeaf() || n.String() != "hello world" {
		t.Errorf("got %v %q, want spliced leaf", n.Kind(), n.String())
	}
}

func TestAppendOptimizedDifferentSources(t *testing.T) {
	a := Literal("hello")
	b := Literal(" world")

	n := a.AppendOptimized(b)
	if n.Kind() != KindComposite {
		t.Fatalf("Kind() = %v, want composite", n.Kind())
	}
	if n.Depth() != 2 {
		t.Errorf("Depth() = %d, want 2", n.Depth())
	}
	if parts := n.Flattened(nil); len(parts) != 2 {
		t.Errorf("Flattened() has %d parts, want 2", len(parts))
	}
}

func TestAppendOptimizedFlattens(t *testing.T) {
	src := tracking.NewSource("doc")
	doc := FromString("abcdefgh", src)

	nested := doc.SubSequence(0, 2).Append(doc.SubSequence(2, 4).Append(Literal("X")))
	n := nested.AppendOptimized(doc.SubSequence(4, 8))

	if n.String() != "abcdXefgh" {
		t.Errorf("String() = %q", n.String())
	}
	if n.Depth() != 2 {
		t.Errorf("Depth() = %d, want 2", n.Depth())
	}
	if got := len(n.Children()); got != 3 {
		t.Errorf("children = %d, want 3", got)
	}
}

func TestSubSequence(t *testing.T) {
	src := tracking.NewSource("doc")
	leaf := FromString("0123456789", src)
	comp := leaf.SubSequence(0, 3).Append(Literal("abc"), leaf.SubSequence(3, 10))

	tests := []struct {
		name       string
		node       *Node
		start, end int
		want       string
	}{
		{"leaf middle", leaf, 2, 5, "234"},
		{"leaf whole", leaf, 0, 10, "0123456789"},
		{"leaf clamped", leaf, -3, 100, "0123456789"},
		{"leaf inverted", leaf, 6, 4, ""},
		{"composite across", comp, 2, 7, "2abc3"},
		{"composite inside child", comp, 4, 5, "b"},
		{"composite tail", comp, 10, 13, "789"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.node.SubSequence(tt.start, tt.end)
			if got.String() != tt.want {
				t.Errorf("SubSequence(%d, %d) = %q, want %q", tt.start, tt.end, got.String(), tt.want)
			}
		})
	}
}

func TestSubSequenceSharesWhole(t *testing.T) {
	n := Literal("abc")
	if n.SubSequence(0, 3) != n {
		t.Error("whole-range SubSequence of fixed content should return the receiver")
	}
	sub := n.SubSequence(1, 3)
	if sub.Origin() != 1 || sub.Source() != n.Source() {
		t.Errorf("sub leaf origin = %d, want 1 with same source", sub.Origin())
	}
}

func TestEquivalent(t *testing.T) {
	abcd := Literal("ab").Append(Literal("c")).Append(Literal("d"))

	tests := []struct {
		name  string
		other safe.Chars
		want  bool
	}{
		{"flat node", Literal("abcd"), true},
		{"plain chars", safe.String("abcd"), true},
		{"different char", Literal("abce"), false},
		{"different length", Literal("abc"), false},
		{"self", abcd, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := abcd.Equivalent(tt.other); got != tt.want {
				t.Errorf("Equivalent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRunesIsCopy(t *testing.T) {
	text := []rune("abc")
	n := FromRunes(text, nil)
	r := n.Runes()
	r[0] = 'z'
	if text[0] != 'a' || n.String() != "abc" {
		t.Error("Runes() should return a copy")
	}
}

func TestSafe(t *testing.T) {
	errs := safe.NewErrors()
	s := Literal("ab").Append(Literal("cd")).Safe(safe.WithErrors(errs))

	if s.CharAt(10) != safe.NullChar {
		t.Error("out-of-range CharAt should return the sentinel")
	}
	if errs.Count() != 1 {
		t.Errorf("Count() = %d, want 1", errs.Count())
	}
	if s.String() != "abcd" {
		t.Errorf("String() = %q", s.String())
	}
}

func TestDump(t *testing.T) {
	slot := NewSlot(Literal("x"))
	n := Literal("ab").Append(slot.Node()).Lowercase()

	out := Dump(n)
	for _, want := range []string{"mapped", "composite", "slot", "lowercase", `"ab"`} {
		if !strings.Contains(out, want) {
			t.Errorf("Dump() missing %s:\n%s", want, out)
		}
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindLeaf, "leaf"},
		{KindComposite, "composite"},
		{KindMapped, "mapped"},
		{KindReversed, "reversed"},
		{KindReplaced, "replaced"},
		{KindProxy, "proxy"},
		{KindSlot, "slot"},
		{Kind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
