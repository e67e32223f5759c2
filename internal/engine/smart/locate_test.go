package smart

import (
	"testing"
	"testing/quick"

	"github.com/dshills/smartseq/internal/engine/tracking"
)

func TestTrackedLocationRoundTrip(t *testing.T) {
	a := tracking.NewSource("a")
	b := tracking.NewSource("b")
	docA := FromString("hello world", a)
	docB := FromString("HELLO", b)

	n := docA.SubSequence(0, 6).Append(
		docB.SubSequence(1, 3),
		docA.SubSequence(6, 11).Uppercase(),
		Literal("!"),
	)

	for i := 0; i < n.Len(); i++ {
		loc := n.TrackedSourceLocation(i)
		if !loc.IsExact() {
			t.Fatalf("index %d -> %v, want exact", i, loc)
		}
		back, ok := n.TrackedLocation(loc.Source, loc.Offset)
		if !ok || !back.IsExact() || back.Index != i {
			t.Errorf("index %d -> %v -> %v", i, loc, back)
		}
	}
}

func TestTrackedLocationRoundTripQuick(t *testing.T) {
	src := tracking.NewSource("doc")
	doc := FromString("the quick brown fox jumps over the lazy dog", src)

	f := func(cuts [4]uint8) bool {
		n := doc
		for k := 0; k < len(cuts); k += 2 {
			length := n.Len()
			if length == 0 {
				break
			}
			start := int(cuts[k]) % length
			end := start + int(cuts[k+1])%4
			n = n.Delete(start, end).Insert(Literal("#"), start)
		}
		for i := 0; i < n.Len(); i++ {
			loc := n.TrackedSourceLocation(i)
			back, ok := n.TrackedLocation(loc.Source, loc.Offset)
			if !ok || back.Index != i {
				return false
			}
		}
		return true
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestTrackedLocationBracket(t *testing.T) {
	src := tracking.NewSource("doc")
	doc := FromString("0123456789", src)

	tests := []struct {
		name                    string
		node                    *Node
		offset                  int
		index, prevIdx, nextIdx int
		prevOff, nextOff        int
	}{
		{"deleted middle", doc.Delete(2, 4), 3, 2, 1, 2, 1, 4},
		{"deleted first", doc.Delete(2, 4), 2, 2, 1, 2, 1, 4},
		{"deleted prefix", doc.Delete(0, 3), 1, 0, 0, 0, 3, 3},
		{"deleted suffix", doc.Delete(7, 10), 8, 7, 6, 6, 6, 6},
		{"replaced tail", doc.Replace(Literal("xyz"), 6, 10), 8, 6, 5, 5, 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, ok := tt.node.TrackedLocation(src, tt.offset)
			if !ok {
				t.Fatal("source should be found")
			}
			if loc.Offset != tt.offset || loc.Source != src {
				t.Errorf("primary = %v, want offset %d", loc, tt.offset)
			}
			if loc.Index != tt.index || loc.PrevIndex != tt.prevIdx || loc.NextIndex != tt.nextIdx {
				t.Errorf("got %v, want index %d bracket [%d, %d]", loc, tt.index, tt.prevIdx, tt.nextIdx)
			}
			if loc.PrevOffset != tt.prevOff || loc.NextOffset != tt.nextOff {
				t.Errorf("bracket offsets = [%d, %d], want [%d, %d]", loc.PrevOffset, loc.NextOffset, tt.prevOff, tt.nextOff)
			}
		})
	}
}

func TestTrackedLocationMissing(t *testing.T) {
	n := Literal("abc")

	if _, ok := n.TrackedLocation(tracking.NewSource("other"), 0); ok {
		t.Error("unknown source should not be found")
	}
	if _, ok := n.TrackedLocation(nil, 0); ok {
		t.Error("nil source should not be found")
	}
}

func TestTrackedLocationLeftmostWins(t *testing.T) {
	src := tracking.NewSource("doc")
	doc := FromString("ab", src)
	n := doc.Append(Literal("-"), doc)

	loc, ok := n.TrackedLocation(src, 1)
	if !ok || loc.Index != 1 {
		t.Errorf("TrackedLocation(1) = %v, want index 1", loc)
	}
}

func TestTrackedSourceLocationClamps(t *testing.T) {
	src := tracking.NewSource("doc")
	n := FromString("abc", src)

	if loc := n.TrackedSourceLocation(-5); loc.Offset != 0 || loc.Index != 0 {
		t.Errorf("TrackedSourceLocation(-5) = %v", loc)
	}
	if loc := n.TrackedSourceLocation(100); loc.Offset != 2 || loc.Index != 2 {
		t.Errorf("TrackedSourceLocation(100) = %v", loc)
	}
	if loc := Empty().TrackedSourceLocation(0); loc != tracking.NoCharacter || loc.IsExact() {
		t.Errorf("empty node location = %v, want NoCharacter", loc)
	}
}

func TestMappingsMerge(t *testing.T) {
	src := tracking.NewSource("doc")
	doc := FromString("abcdef", src)

	n := doc.SubSequence(0, 3).Append(doc.SubSequence(3, 6))
	if n.Kind() != KindComposite {
		t.Fatalf("Kind() = %v, want composite", n.Kind())
	}
	ms := n.Mappings()
	if len(ms) != 1 || ms[0].Len != 6 || ms[0].Offset != 0 {
		t.Errorf("Mappings() = %+v, want one run of 6", ms)
	}
}

func TestSources(t *testing.T) {
	a := tracking.NewSource("a")
	b := tracking.NewSource("b")
	lit := Literal("-")
	n := FromString("x", a).Append(lit, FromString("y", b))

	s := n.Sources()
	if s.Cardinality() != 3 {
		t.Errorf("Cardinality() = %d, want 3", s.Cardinality())
	}
	if !s.Contains(a, b, lit.Source()) {
		t.Error("Sources() should hold every leaf source")
	}
}

func TestLocationSnapshotCached(t *testing.T) {
	n := Literal("ab").Append(Literal("cd"))
	first := n.LocationSnapshot()
	if n.LocationSnapshot() != first {
		t.Error("snapshot should be cached for a fixed node")
	}
	if first.Len() != 4 {
		t.Errorf("Len() = %d, want 4", first.Len())
	}
}
