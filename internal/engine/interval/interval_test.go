package interval

import (
	"sort"
	"testing"
	"testing/quick"
)

func ordered(a, b int8) Interval {
	if a > b {
		a, b = b, a
	}
	return New(int(a), int(b))
}

func TestNullIsTagged(t *testing.T) {
	if !Null.IsNull() {
		t.Fatal("Null.IsNull() = false")
	}
	if Empty.IsNull() {
		t.Error("Empty.IsNull() = true")
	}
	for _, r := range []Interval{New(0, 0), New(1, 0), New(-1, -2)} {
		if r.IsNull() || r.Equal(Null) {
			t.Errorf("%v compares as Null", r)
		}
	}
	if !Null.Equal(Null) {
		t.Error("Null should equal Null")
	}
}

func TestWithPreservesUnchanged(t *testing.T) {
	r := New(2, 5)
	if got := r.WithStart(2); got != r {
		t.Errorf("WithStart(2) = %v, want %v", got, r)
	}
	if got := r.WithEnd(7); !got.Equal(New(2, 7)) {
		t.Errorf("WithEnd(7) = %v", got)
	}
	if got := Null.WithRange(0, 0); got.IsNull() {
		t.Error("WithRange on Null should produce a real interval")
	}
	if got := r.Shift(3); !got.Equal(New(5, 8)) {
		t.Errorf("Shift(3) = %v", got)
	}
}

func TestIntersectAndExclude(t *testing.T) {
	tests := []struct {
		name      string
		a, b      Interval
		intersect Interval
		exclude   Interval
	}{
		{"disjoint", New(0, 3), New(5, 8), Empty, New(0, 3)},
		{"touching", New(0, 3), New(3, 8), Empty, New(0, 3)},
		{"overlap right", New(0, 5), New(3, 8), New(3, 5), New(0, 3)},
		{"overlap left", New(3, 8), New(0, 5), New(3, 5), New(5, 8)},
		{"covered", New(3, 5), New(0, 8), New(3, 5), Empty},
		{"inner", New(0, 8), New(3, 5), New(3, 5), New(0, 8)},
		{"same", New(2, 4), New(2, 4), New(2, 4), Empty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); !got.Equal(tt.intersect) {
				t.Errorf("Intersect = %v, want %v", got, tt.intersect)
			}
			if got := tt.a.Exclude(tt.b); !got.Equal(tt.exclude) {
				t.Errorf("Exclude = %v, want %v", got, tt.exclude)
			}
		})
	}
}

func TestIncludeNull(t *testing.T) {
	r := New(2, 4)
	if got := r.Include(Null); got != r {
		t.Errorf("Include(Null) = %v, want %v", got, r)
	}
	if got := Null.Include(r); !got.Equal(r) || got.IsNull() {
		t.Errorf("Null.Include = %v, want %v", got, r)
	}
	if got := r.Include(New(7, 9)); !got.Equal(New(2, 9)) {
		t.Errorf("Include = %v", got)
	}
	if got := Null.IncludeIndex(5); !got.Equal(New(5, 6)) {
		t.Errorf("IncludeIndex = %v", got)
	}
}

func TestAdjacency(t *testing.T) {
	r := New(3, 6)
	if !r.IsAdjacentToIndex(2) || !r.IsAdjacentToIndex(6) || r.IsAdjacentToIndex(4) {
		t.Error("IsAdjacentToIndex wrong")
	}
	if !r.IsAdjacentBefore(New(6, 9)) || !r.IsAdjacentAfter(New(0, 3)) {
		t.Error("interval adjacency wrong")
	}
	if r.IsAdjacentTo(New(4, 9)) {
		t.Error("overlapping intervals are not adjacent")
	}
	if !r.IsLast(5) || r.IsLast(6) {
		t.Error("IsLast wrong")
	}
	if !r.ContainsIndex(3) || r.ContainsIndex(6) {
		t.Error("ContainsIndex wrong")
	}
}

func TestCompareOrder(t *testing.T) {
	list := []Interval{New(2, 3), New(0, 1), New(2, 9), New(0, 5), New(2, 5)}
	sort.Slice(list, func(i, j int) bool { return list[i].Compare(list[j]) < 0 })
	want := []Interval{New(0, 5), New(0, 1), New(2, 9), New(2, 5), New(2, 3)}
	for i := range want {
		if !list[i].Equal(want[i]) {
			t.Fatalf("sorted[%d] = %v, want %v (all %v)", i, list[i], want[i], list)
		}
	}
}

func TestSpanRoundTrip(t *testing.T) {
	r := New(4, 11)
	s := r.ToSpan()
	if !r.EqualSpan(s) || !FromSpan(s).Equal(r) {
		t.Errorf("span round trip failed: %v -> %+v", r, s)
	}
	if Null.EqualSpan(Span{}) {
		t.Error("Null should not equal any span")
	}
	if s.Len() != r.Span() {
		t.Errorf("Len = %d, want %d", s.Len(), r.Span())
	}
}

func TestIntersectEmptyIffDisjointProperty(t *testing.T) {
	f := func(a, b, c, d int8) bool {
		x, y := ordered(a, b), ordered(c, d)
		return x.Intersect(y).IsEmpty() == x.DoesNotOverlap(y)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestIncludeContainsBothProperty(t *testing.T) {
	f := func(a, b, c, d int8) bool {
		x, y := ordered(a, b), ordered(c, d)
		u := x.Include(y)
		return u.Contains(x) && u.Contains(y)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestExcludeIncludeRestoresProperty(t *testing.T) {
	f := func(p, q, r, s int8) bool {
		v := []int{int(p), int(q), int(r), int(s)}
		sort.Ints(v)
		outer, inner := New(v[0], v[3]), New(v[1], v[2])
		return outer.Exclude(inner).Include(inner).Contains(outer)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}
