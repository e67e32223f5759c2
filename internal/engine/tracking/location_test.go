package tracking

import "testing"

func TestSourceIdentity(t *testing.T) {
	a, b := NewSource("doc"), NewSource("doc")
	if a == b || a.ID() == b.ID() {
		t.Error("sources with the same name must be distinct")
	}
	if a.String() != "doc" {
		t.Errorf("String() = %q", a.String())
	}
	anon := NewSource("")
	if anon.String() != anon.ID().String() {
		t.Errorf("anonymous String() = %q", anon.String())
	}
	var none *Source
	if none.Name() != "" || none.String() != "<nil>" {
		t.Error("nil source accessors")
	}
}

func TestLocationExact(t *testing.T) {
	src := NewSource("s")
	l := NewLocation(3, 7, src)
	if !l.IsExact() {
		t.Fatal("NewLocation should be exact")
	}
	if l.WithPrevClosest(2, 6, src).IsExact() {
		t.Error("bracketed location reported exact")
	}
	if l.WithIndex(3, 7, NewSource("other")).IsExact() {
		t.Error("mixed sources reported exact")
	}
	if NoCharacter.IsExact() {
		t.Error("NoCharacter reported exact")
	}
	shifted := l.Shifted(10)
	if shifted.Index != 13 || shifted.PrevIndex != 13 || shifted.NextIndex != 13 || shifted.Offset != 7 {
		t.Errorf("Shifted = %+v", shifted)
	}
}

func TestLocationMirrored(t *testing.T) {
	src := NewSource("s")
	l := NewLocation(4, 9, src).WithPrevClosest(3, 8, src).WithNextClosest(6, 12, src)
	m := l.Mirrored(10)
	if m.Index != 5 || m.PrevIndex != 3 || m.NextIndex != 6 {
		t.Errorf("Mirrored indexes = %d [%d, %d]", m.Index, m.PrevIndex, m.NextIndex)
	}
	if m.PrevOffset != 12 || m.NextOffset != 8 {
		t.Errorf("Mirrored offsets = [%d, %d]", m.PrevOffset, m.NextOffset)
	}
	if back := m.Mirrored(10); back != l {
		t.Errorf("double mirror = %+v, want %+v", back, l)
	}
}

func TestMapping(t *testing.T) {
	src := NewSource("s")
	fwd := Mapping{Index: 2, Len: 3, Source: src, Offset: 10, Step: 1}
	if got := fwd.OffsetAt(4); got != 12 {
		t.Errorf("OffsetAt = %d", got)
	}
	if i, ok := fwd.IndexOf(11); !ok || i != 3 {
		t.Errorf("IndexOf(11) = %d, %v", i, ok)
	}
	if _, ok := fwd.IndexOf(13); ok {
		t.Error("IndexOf past run should fail")
	}

	rev := Mapping{Index: 0, Len: 3, Source: src, Offset: 5, Step: -1}
	if !rev.SourceSpan().Equal(fwd.SourceSpan().WithRange(3, 6)) {
		t.Errorf("SourceSpan = %v", rev.SourceSpan())
	}
	if i, ok := rev.IndexOf(3); !ok || i != 2 {
		t.Errorf("reversed IndexOf(3) = %d, %v", i, ok)
	}
}

func TestAppendMappingMerges(t *testing.T) {
	src, other := NewSource("a"), NewSource("b")
	tests := []struct {
		name string
		in   []Mapping
		want int
	}{
		{"contiguous forward", []Mapping{{0, 2, src, 0, 1}, {2, 3, src, 2, 1}}, 1},
		{"gap in source", []Mapping{{0, 2, src, 0, 1}, {2, 3, src, 5, 1}}, 2},
		{"different source", []Mapping{{0, 2, src, 0, 1}, {2, 3, other, 2, 1}}, 2},
		{"single chars backwards", []Mapping{{0, 1, src, 5, 1}, {1, 1, src, 4, 1}, {2, 1, src, 3, 1}}, 1},
		{"direction change", []Mapping{{0, 2, src, 0, 1}, {2, 2, src, 1, -1}}, 2},
		{"empty skipped", []Mapping{{0, 2, src, 0, 1}, {2, 0, other, 0, 1}, {2, 1, src, 2, 1}}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ms []Mapping
			for _, m := range tt.in {
				ms = AppendMapping(ms, m)
			}
			if len(ms) != tt.want {
				t.Errorf("len = %d, want %d: %+v", len(ms), tt.want, ms)
			}
		})
	}

	var ms []Mapping
	for _, m := range []Mapping{{0, 1, src, 5, 1}, {1, 1, src, 4, 1}} {
		ms = AppendMapping(ms, m)
	}
	if ms[0].Step != -1 || ms[0].OffsetAt(1) != 4 {
		t.Errorf("merged backwards run = %+v", ms[0])
	}
}
