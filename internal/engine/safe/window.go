package safe

import "github.com/dshills/smartseq/internal/engine/interval"

// Range is a movable [start, end) window over a raw Sequence. The
// embedded accessors (CharAt, SafeIndex, SubSequence, ...) work in window
// coordinates; the Raw* accessors work in raw coordinates and may read
// outside the window.
//
// An inverted window (start > end) is tolerated and treated as empty,
// but every windowed accessor invoked against it records an error.
type Range struct {
	raw        *Sequence
	start, end int
}

// NewRange creates a Range over chars with the window covering everything.
func NewRange(chars Chars, opts ...Option) *Range {
	return New(chars, opts...).Window()
}

// RawLen returns the raw sequence length.
func (r *Range) RawLen() int { return r.raw.Len() }

// Raw returns the raw sequence.
func (r *Range) Raw() *Sequence { return r.raw }

// Errors returns the shared error cell.
func (r *Range) Errors() *Errors { return r.raw.errs }

// StartIndex returns the raw offset of the window start.
func (r *Range) StartIndex() int { return r.start }

// EndIndex returns the raw offset of the window end.
func (r *Range) EndIndex() int { return r.end }

// SetStartIndex moves the window start, clamped to [0, RawLen()].
func (r *Range) SetStartIndex(index int) {
	r.start = r.raw.SafeIndex(index)
}

// SetEndIndex moves the window end, clamped to [0, RawLen()].
func (r *Range) SetEndIndex(index int) {
	r.end = r.raw.SafeIndex(index)
}

// Window returns the current window in raw coordinates. An inverted
// window is returned as is.
func (r *Range) Window() interval.Interval {
	return interval.New(r.start, r.end)
}

// view materializes the current window as a Sequence.
func (r *Range) view() *Sequence {
	lo, hi := r.start, r.end
	if lo > hi {
		r.raw.errs.Add()
		hi = lo
	}
	return r.raw.derive(r.raw.lo+lo, r.raw.lo+hi)
}

// Len returns the window length; an inverted window has length 0.
func (r *Range) Len() int {
	return max(r.end-r.start, 0)
}

// IsEmpty reports whether the window is empty or inverted.
func (r *Range) IsEmpty() bool { return r.start >= r.end }

// CharAt returns the character at a window-relative index.
func (r *Range) CharAt(index int) rune { return r.view().CharAt(index) }

// FirstChar returns the first character of the window.
func (r *Range) FirstChar() rune { return r.view().FirstChar() }

// LastChar returns the last character of the window.
func (r *Range) LastChar() rune { return r.view().LastChar() }

// IsBlank reports whether the window is empty or all blank.
func (r *Range) IsBlank() bool { return r.view().IsBlank() }

// SafeIndex clamps a window-relative index to [0, Len()].
func (r *Range) SafeIndex(index int) int { return r.view().SafeIndex(index) }

// SafeInclusiveIndex clamps a window-relative index to [0, Len()-1].
func (r *Range) SafeInclusiveIndex(index int) int { return r.view().SafeInclusiveIndex(index) }

// SafeRange clamps a window-relative range.
func (r *Range) SafeRange(start, end int) interval.Interval { return r.view().SafeRange(start, end) }

// SubSequence returns a window-relative sub-sequence.
func (r *Range) SubSequence(start, end int) *Sequence { return r.view().SubSequence(start, end) }

// String returns the window content.
func (r *Range) String() string { return r.view().String() }

// SafeRawIndex clamps a raw index to [0, RawLen()].
func (r *Range) SafeRawIndex(index int) int { return r.raw.SafeIndex(index) }

// SafeRawInclusiveIndex clamps a raw index to [0, RawLen()-1].
func (r *Range) SafeRawInclusiveIndex(index int) int { return r.raw.SafeInclusiveIndex(index) }

// SafeRawRange clamps a raw range.
func (r *Range) SafeRawRange(start, end int) interval.Interval { return r.raw.SafeRange(start, end) }

// RawSubSequence returns raw[start:end) as an independent Range.
func (r *Range) RawSubSequence(start, end int) *Range {
	return r.raw.SubSequence(start, end).Window()
}

// SubRange returns the current window as an independent Range.
func (r *Range) SubRange() *Range {
	return r.view().Window()
}

// BeforeStart returns raw[0:start) as an independent Range.
func (r *Range) BeforeStart() *Range {
	return r.raw.derive(r.raw.lo, r.raw.lo+r.start).Window()
}

// AfterEnd returns raw[end:RawLen()) as an independent Range.
func (r *Range) AfterEnd() *Range {
	return r.raw.derive(r.raw.lo+r.end, r.raw.hi).Window()
}
