package tracking

import "fmt"

// Location relates an index in a text to an offset in a source. An exact
// location has all three index, offset and source triples equal. Otherwise
// Prev* and Next* hold the closest exact mappings bracketing the point.
type Location struct {
	Index     int
	PrevIndex int
	NextIndex int

	Offset     int
	PrevOffset int
	NextOffset int

	Source     *Source
	PrevSource *Source
	NextSource *Source
}

// NoCharacter is the location of an index in an empty text. Its brackets
// point before the text, so it is never exact.
var NoCharacter = Location{PrevIndex: -1, NextIndex: -1}

// NewLocation returns an exact location.
func NewLocation(index, offset int, src *Source) Location {
	return Location{
		Index: index, PrevIndex: index, NextIndex: index,
		Offset: offset, PrevOffset: offset, NextOffset: offset,
		Source: src, PrevSource: src, NextSource: src,
	}
}

// IsExact reports whether the location is an exact mapping.
func (l Location) IsExact() bool {
	return l.Index == l.PrevIndex && l.Index == l.NextIndex &&
		l.Source == l.PrevSource && l.Source == l.NextSource
}

// WithIndex returns l with the primary triple replaced.
func (l Location) WithIndex(index, offset int, src *Source) Location {
	l.Index, l.Offset, l.Source = index, offset, src
	return l
}

// WithPrevClosest returns l with the lower bracket replaced.
func (l Location) WithPrevClosest(index, offset int, src *Source) Location {
	l.PrevIndex, l.PrevOffset, l.PrevSource = index, offset, src
	return l
}

// WithNextClosest returns l with the upper bracket replaced.
func (l Location) WithNextClosest(index, offset int, src *Source) Location {
	l.NextIndex, l.NextOffset, l.NextSource = index, offset, src
	return l
}

// Shifted returns l with every index moved by delta.
func (l Location) Shifted(delta int) Location {
	l.Index += delta
	l.PrevIndex += delta
	l.NextIndex += delta
	return l
}

// Mirrored maps l into a text of length n read backwards: index i becomes
// n-1-i and the brackets swap sides.
func (l Location) Mirrored(n int) Location {
	return Location{
		Index: n - 1 - l.Index, PrevIndex: n - 1 - l.NextIndex, NextIndex: n - 1 - l.PrevIndex,
		Offset: l.Offset, PrevOffset: l.NextOffset, NextOffset: l.PrevOffset,
		Source: l.Source, PrevSource: l.NextSource, NextSource: l.PrevSource,
	}
}

// String returns a human-readable representation of the location.
func (l Location) String() string {
	if l.IsExact() {
		return fmt.Sprintf("%d->%v:%d", l.Index, l.Source, l.Offset)
	}
	return fmt.Sprintf("%d->%v:%d [%d->%v:%d, %d->%v:%d]",
		l.Index, l.Source, l.Offset,
		l.PrevIndex, l.PrevSource, l.PrevOffset,
		l.NextIndex, l.NextSource, l.NextOffset)
}
