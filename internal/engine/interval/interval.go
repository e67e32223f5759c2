package interval

import "fmt"

// Interval is a half-open range [Start, End).
type Interval struct {
	start int
	end   int
	null  bool
}

var (
	// Empty is the canonical empty interval [0, 0).
	Empty = Interval{}

	// Null is the "no interval" sentinel.
	Null = Interval{null: true}
)

// New creates an interval from start and end offsets.
func New(start, end int) Interval {
	return Interval{start: start, end: end}
}

// Start returns the inclusive start offset.
func (r Interval) Start() int { return r.start }

// End returns the exclusive end offset.
func (r Interval) End() int { return r.end }

// Span returns End - Start.
func (r Interval) Span() int { return r.end - r.start }

// IsNull reports whether r is the Null sentinel.
func (r Interval) IsNull() bool { return r.null }

// IsNotNull reports whether r is a real interval.
func (r Interval) IsNotNull() bool { return !r.null }

// String returns a human-readable representation of the interval.
func (r Interval) String() string {
	if r.null {
		return "NULL"
	}
	return fmt.Sprintf("[%d, %d)", r.start, r.end)
}

// WithStart returns r with a new start offset.
func (r Interval) WithStart(start int) Interval {
	if start == r.start && !r.null {
		return r
	}
	return Interval{start: start, end: r.end}
}

// WithEnd returns r with a new end offset.
func (r Interval) WithEnd(end int) Interval {
	if end == r.end && !r.null {
		return r
	}
	return Interval{start: r.start, end: end}
}

// WithRange returns an interval with both offsets replaced.
func (r Interval) WithRange(start, end int) Interval {
	if start == r.start && end == r.end && !r.null {
		return r
	}
	return Interval{start: start, end: end}
}

// Shift returns r moved by delta.
func (r Interval) Shift(delta int) Interval {
	if r.null || delta == 0 {
		return r
	}
	return Interval{start: r.start + delta, end: r.end + delta}
}

// Equal reports whether both intervals have the same bounds.
// Null is only equal to Null.
func (r Interval) Equal(o Interval) bool {
	if r.null || o.null {
		return r.null == o.null
	}
	return r.start == o.start && r.end == o.end
}

// IsEmpty reports whether r covers no offsets.
func (r Interval) IsEmpty() bool {
	return r.start >= r.end
}

// Overlaps reports whether r and o share at least one offset.
func (r Interval) Overlaps(o Interval) bool {
	return max(r.start, o.start) < min(r.end, o.end)
}

// DoesNotOverlap is the negation of Overlaps.
func (r Interval) DoesNotOverlap(o Interval) bool {
	return !r.Overlaps(o)
}

// Contains reports whether o lies entirely within r.
func (r Interval) Contains(o Interval) bool {
	return r.start <= o.start && o.end <= r.end
}

// ProperlyContains reports whether o lies strictly inside r on both ends.
func (r Interval) ProperlyContains(o Interval) bool {
	return r.start < o.start && o.end < r.end
}

// IsContainedBy reports whether r lies entirely within o.
func (r Interval) IsContainedBy(o Interval) bool {
	return o.Contains(r)
}

// IsProperlyContainedBy reports whether r lies strictly inside o.
func (r Interval) IsProperlyContainedBy(o Interval) bool {
	return o.ProperlyContains(r)
}

// ContainsIndex reports whether index is in [Start, End).
func (r Interval) ContainsIndex(index int) bool {
	return index >= r.start && index < r.end
}

// IsStart reports whether index is the start offset.
func (r Interval) IsStart(index int) bool { return index == r.start }

// IsEnd reports whether index is the end offset.
func (r Interval) IsEnd(index int) bool { return index == r.end }

// IsLast reports whether index is the last offset inside r.
func (r Interval) IsLast(index int) bool {
	return index >= r.start && index == r.end-1
}

// IsAdjacentToIndex reports whether index touches r from either side
// without being inside it.
func (r Interval) IsAdjacentToIndex(index int) bool {
	return index == r.start-1 || index == r.end
}

// IsAdjacentBeforeIndex reports whether r ends right at index.
func (r Interval) IsAdjacentBeforeIndex(index int) bool { return r.end == index }

// IsAdjacentAfterIndex reports whether r starts right after index.
func (r Interval) IsAdjacentAfterIndex(index int) bool { return r.start-1 == index }

// IsAdjacentTo reports whether r and o touch end to start.
func (r Interval) IsAdjacentTo(o Interval) bool {
	return r.start == o.end || r.end == o.start
}

// IsAdjacentBefore reports whether r ends where o starts.
func (r Interval) IsAdjacentBefore(o Interval) bool { return r.end == o.start }

// IsAdjacentAfter reports whether r starts where o ends.
func (r Interval) IsAdjacentAfter(o Interval) bool { return r.start == o.end }

// Intersect returns the overlap of r and o, or Empty if they are disjoint.
func (r Interval) Intersect(o Interval) Interval {
	start := max(r.start, o.start)
	end := min(r.end, o.end)
	if start >= end {
		return Empty
	}
	return r.WithRange(start, end)
}

// Exclude trims the part of o that overlaps an end of r. An o strictly
// inside r leaves r unchanged. If nothing remains the result is Empty.
func (r Interval) Exclude(o Interval) Interval {
	start := r.start
	if start >= o.start && start < o.end {
		start = o.end
	}
	end := r.end
	if end <= o.end && end > o.start {
		end = o.start
	}
	if start >= end {
		return Empty
	}
	return r.WithRange(start, end)
}

// Include returns the bounding interval of r and o. Including Null is a
// no-op and including into Null adopts o.
func (r Interval) Include(o Interval) Interval {
	if o.null {
		return r
	}
	if r.null {
		return o
	}
	return r.WithRange(min(r.start, o.start), max(r.end, o.end))
}

// IncludeIndex extends r so that index is inside it.
func (r Interval) IncludeIndex(index int) Interval {
	return r.Include(Interval{start: index, end: index + 1})
}

// ExpandToInclude is an alias of Include.
func (r Interval) ExpandToInclude(o Interval) Interval {
	return r.Include(o)
}

// Compare orders by start ascending, then by end descending, so that
// among equal starts the wider interval comes first. Null sorts first.
func (r Interval) Compare(o Interval) int {
	switch {
	case r.null || o.null:
		if r.null == o.null {
			return 0
		}
		if r.null {
			return -1
		}
		return 1
	case r.start < o.start:
		return -1
	case r.start > o.start:
		return 1
	case r.end > o.end:
		return -1
	case r.end < o.end:
		return 1
	}
	return 0
}
