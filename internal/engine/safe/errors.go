package safe

import "sync/atomic"

// Errors counts soft bounds violations. A nil *Errors is valid: every
// method on it is a no-op reporting zero. Errors is safe for concurrent
// use.
type Errors struct {
	count atomic.Int64
	last  atomic.Int64
}

// ErrorSnapshot is an immutable copy of an Errors cell.
type ErrorSnapshot struct {
	Count int
	Last  int
}

// NewErrors creates an empty error cell.
func NewErrors() *Errors {
	return &Errors{}
}

// Count returns the number of violations recorded.
func (e *Errors) Count() int {
	if e == nil {
		return 0
	}
	return int(e.count.Load())
}

// Last returns the count at the last Mark.
func (e *Errors) Last() int {
	if e == nil {
		return 0
	}
	e.normalize()
	return int(e.last.Load())
}

// Add records one violation and returns the count before it.
func (e *Errors) Add() int {
	if e == nil {
		return 0
	}
	return int(e.count.Add(1) - 1)
}

// Clear resets the count to zero.
func (e *Errors) Clear() {
	if e == nil {
		return
	}
	e.count.Store(0)
	e.normalize()
}

// HadErrors reports whether violations happened since the last Mark.
func (e *Errors) HadErrors() bool {
	if e == nil {
		return false
	}
	e.normalize()
	return e.count.Load() != e.last.Load()
}

// Mark remembers the current count.
func (e *Errors) Mark() {
	if e == nil {
		return
	}
	e.last.Store(e.count.Load())
}

// HadErrorsAndMark combines HadErrors and Mark.
func (e *Errors) HadErrorsAndMark() bool {
	had := e.HadErrors()
	e.Mark()
	return had
}

// Snapshot returns a copy of the current state.
func (e *Errors) Snapshot() ErrorSnapshot {
	if e == nil {
		return ErrorSnapshot{}
	}
	e.normalize()
	return ErrorSnapshot{Count: int(e.count.Load()), Last: int(e.last.Load())}
}

// Restore resets the cell to a previously taken snapshot.
func (e *Errors) Restore(s ErrorSnapshot) {
	if e == nil {
		return
	}
	e.count.Store(int64(s.Count))
	e.last.Store(int64(s.Last))
	e.normalize()
}

// Since returns how many violations were recorded after s was taken.
func (e *Errors) Since(s ErrorSnapshot) int {
	return e.Count() - s.Count
}

// last may never exceed count.
func (e *Errors) normalize() {
	for {
		last, count := e.last.Load(), e.count.Load()
		if last <= count || e.last.CompareAndSwap(last, count) {
			return
		}
	}
}
