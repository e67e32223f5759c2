package tracking

import "github.com/dshills/smartseq/internal/engine/interval"

// Mapping is a run of Len consecutive text indexes starting at Index whose
// characters come from Source. Index maps to Offset; each following index
// maps to Offset+Step, where Step is 1 for forward text and -1 for text
// read backwards.
type Mapping struct {
	Index  int
	Len    int
	Source *Source
	Offset int
	Step   int
}

// IndexSpan returns the text indexes covered.
func (m Mapping) IndexSpan() interval.Interval {
	return interval.New(m.Index, m.Index+m.Len)
}

// SourceSpan returns the source offsets covered.
func (m Mapping) SourceSpan() interval.Interval {
	if m.Step < 0 {
		return interval.New(m.Offset-m.Len+1, m.Offset+1)
	}
	return interval.New(m.Offset, m.Offset+m.Len)
}

// OffsetAt returns the source offset of a text index inside the run.
func (m Mapping) OffsetAt(index int) int {
	return m.Offset + (index-m.Index)*m.step()
}

// IndexOf returns the text index of a source offset inside the run.
func (m Mapping) IndexOf(offset int) (int, bool) {
	if !m.SourceSpan().ContainsIndex(offset) {
		return 0, false
	}
	return m.Index + (offset-m.Offset)*m.step(), true
}

// Shifted returns m moved by delta text indexes.
func (m Mapping) Shifted(delta int) Mapping {
	m.Index += delta
	return m
}

func (m Mapping) step() int {
	if m.Step < 0 {
		return -1
	}
	return 1
}

// AppendMapping appends m to ms, merging it into the last run when the two
// are contiguous in both text and source.
func AppendMapping(ms []Mapping, m Mapping) []Mapping {
	if m.Len <= 0 {
		return ms
	}
	m.Step = m.step()
	if m.Len == 1 {
		m.Step = 1
	}
	if n := len(ms); n > 0 {
		last := &ms[n-1]
		if last.Source == m.Source && last.Index+last.Len == m.Index {
			step := last.step()
			if last.Len == 1 {
				step = m.Offset - last.Offset
			}
			if (step == 1 || step == -1) &&
				(m.Len == 1 || m.Step == step) &&
				last.Offset+last.Len*step == m.Offset {
				last.Len += m.Len
				last.Step = step
				return ms
			}
		}
	}
	return append(ms, m)
}
