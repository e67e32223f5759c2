package safe

import (
	"strings"

	"github.com/dshills/smartseq/internal/engine/interval"
)

// NullChar is the default character returned for out-of-range reads.
const NullChar rune = 0

// Bounded is the read surface shared by Sequence and Range.
type Bounded interface {
	Chars
	Errors() *Errors
	SafeIndex(index int) int
	SafeInclusiveIndex(index int) int
	SafeRange(start, end int) interval.Interval
	SubSequence(start, end int) *Sequence
	String() string
}

// Option configures a Sequence or Range during creation.
type Option func(*Sequence)

// WithErrors shares an existing error cell instead of allocating one.
func WithErrors(errs *Errors) Option {
	return func(s *Sequence) {
		if errs != nil {
			s.errs = errs
		}
	}
}

// WithSentinels sets the characters returned for reads before the start
// and at or after the end.
func WithSentinels(beforeStart, afterEnd rune) Option {
	return func(s *Sequence) {
		s.beforeStart = beforeStart
		s.afterEnd = afterEnd
	}
}

// Sequence is a bounds-checked view of chars[lo:hi].
type Sequence struct {
	chars       Chars
	lo, hi      int
	errs        *Errors
	beforeStart rune
	afterEnd    rune
}

// New creates a Sequence over all of chars.
func New(chars Chars, opts ...Option) *Sequence {
	if chars == nil {
		chars = Runes(nil)
	}
	s := &Sequence{
		chars:       chars,
		hi:          chars.Len(),
		beforeStart: NullChar,
		afterEnd:    NullChar,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.errs == nil {
		s.errs = NewErrors()
	}
	return s
}

// derive returns a sequence over chars[lo:hi] carrying s's error cell
// and sentinels.
func (s *Sequence) derive(lo, hi int) *Sequence {
	return &Sequence{
		chars:       s.chars,
		lo:          lo,
		hi:          hi,
		errs:        s.errs,
		beforeStart: s.beforeStart,
		afterEnd:    s.afterEnd,
	}
}

// Len returns the number of characters in the sequence.
func (s *Sequence) Len() int { return s.hi - s.lo }

// Errors returns the shared error cell.
func (s *Sequence) Errors() *Errors { return s.errs }

// BeforeStartChar returns the sentinel for negative indexes.
func (s *Sequence) BeforeStartChar() rune { return s.beforeStart }

// AfterEndChar returns the sentinel for indexes at or past the end.
func (s *Sequence) AfterEndChar() rune { return s.afterEnd }

// CharAt returns the character at index, or a sentinel (counting one
// error) when index is out of range.
func (s *Sequence) CharAt(index int) rune {
	if index < 0 {
		s.errs.Add()
		return s.beforeStart
	}
	if index >= s.Len() {
		s.errs.Add()
		return s.afterEnd
	}
	return s.chars.CharAt(s.lo + index)
}

// FirstChar returns the first character or the after-end sentinel.
func (s *Sequence) FirstChar() rune { return s.CharAt(0) }

// LastChar returns the last character or the before-start sentinel.
func (s *Sequence) LastChar() rune { return s.CharAt(s.Len() - 1) }

// SafeIndex clamps index to [0, Len()].
func (s *Sequence) SafeIndex(index int) int {
	n := s.Len()
	result := index
	switch {
	case index < 0 || n == 0:
		result = 0
	case index > n:
		result = n
	}
	if result != index {
		s.errs.Add()
	}
	return result
}

// SafeInclusiveIndex clamps index to [0, Len()-1], or to 0 when empty.
func (s *Sequence) SafeInclusiveIndex(index int) int {
	n := s.Len()
	result := index
	switch {
	case index < 0 || n == 0:
		result = 0
	case index >= n:
		result = n - 1
	}
	if result != index {
		s.errs.Add()
	}
	return result
}

// SafeRange clamps both bounds into [0, Len()]. An inverted result
// collapses to an empty interval at the clamped end.
func (s *Sequence) SafeRange(start, end int) interval.Interval {
	safeStart := s.SafeIndex(start)
	safeEnd := s.SafeIndex(end)
	if safeStart > safeEnd {
		s.errs.Add()
		safeStart = safeEnd
	}
	return interval.New(safeStart, safeEnd)
}

// SubSequence returns the clamped sub-sequence [start, end) sharing this
// sequence's error cell and sentinels.
func (s *Sequence) SubSequence(start, end int) *Sequence {
	r := s.SafeRange(start, end)
	return s.derive(s.lo+r.Start(), s.lo+r.End())
}

// IsEmpty reports whether the sequence has no characters.
func (s *Sequence) IsEmpty() bool { return s.Len() == 0 }

// IsBlank reports whether the sequence is empty or holds only blanks.
func (s *Sequence) IsBlank() bool {
	return s.CountLeading(IsBlankChar) == s.Len()
}

// CountLeading returns the number of leading characters matching pred.
func (s *Sequence) CountLeading(pred func(rune) bool) int {
	n := s.Len()
	for i := 0; i < n; i++ {
		if !pred(s.chars.CharAt(s.lo + i)) {
			return i
		}
	}
	return n
}

// CountTrailing returns the number of trailing characters matching pred.
func (s *Sequence) CountTrailing(pred func(rune) bool) int {
	n := s.Len()
	for i := n - 1; i >= 0; i-- {
		if !pred(s.chars.CharAt(s.lo + i)) {
			return n - 1 - i
		}
	}
	return n
}

// IndexOf returns the first index >= from holding c, or -1.
func (s *Sequence) IndexOf(c rune, from int) int {
	for i := max(from, 0); i < s.Len(); i++ {
		if s.chars.CharAt(s.lo+i) == c {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the last index < before holding c, or -1.
func (s *Sequence) LastIndexOf(c rune, before int) int {
	for i := min(before, s.Len()) - 1; i >= 0; i-- {
		if s.chars.CharAt(s.lo+i) == c {
			return i
		}
	}
	return -1
}

// Runes copies the sequence content.
func (s *Sequence) Runes() []rune {
	return AppendChars(make([]rune, 0, s.Len()), s.chars, s.lo, s.hi)
}

// String returns the sequence content.
func (s *Sequence) String() string {
	var b strings.Builder
	b.Grow(s.Len())
	for i := s.lo; i < s.hi; i++ {
		b.WriteRune(s.chars.CharAt(i))
	}
	return b.String()
}

// Window returns a Range whose raw sequence is s and whose window covers
// all of it.
func (s *Sequence) Window() *Range {
	return &Range{raw: s, start: 0, end: s.Len()}
}
