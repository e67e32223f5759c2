package interval

// Span is the plain offset pair used when handing ranges across package
// boundaries (reports, configuration, JSON).
type Span struct {
	StartOffset int `json:"start" yaml:"start" toml:"start"`
	EndOffset   int `json:"end" yaml:"end" toml:"end"`
}

// ToSpan converts r to its carrier form. Null converts to the zero Span.
func (r Interval) ToSpan() Span {
	if r.null {
		return Span{}
	}
	return Span{StartOffset: r.start, EndOffset: r.end}
}

// FromSpan converts a carrier back to an Interval.
func FromSpan(s Span) Interval {
	return Interval{start: s.StartOffset, end: s.EndOffset}
}

// EqualSpan reports whether r has the same bounds as s.
func (r Interval) EqualSpan(s Span) bool {
	return !r.null && r.start == s.StartOffset && r.end == s.EndOffset
}

// Len returns the span length.
func (s Span) Len() int { return s.EndOffset - s.StartOffset }
