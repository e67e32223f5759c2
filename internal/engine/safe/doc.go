// Package safe provides bounds-safe character sequences.
//
// Cursor arithmetic over text routinely computes positions one past either
// end of a line or buffer. Instead of failing, every accessor in this
// package clamps its arguments into range, records the violation in a shared
// Errors cell, and continues. Callers audit the cell afterwards:
//
//	errs := safe.NewErrors()
//	seq := safe.New(safe.String(text), safe.WithErrors(errs))
//	before := errs.Snapshot()
//	runAlgorithm(seq)
//	if errs.Count() != before.Count {
//		log.Warn("algorithm overshot")
//	}
//
// Sequence is the bounded sequence. Range adds a movable window over a
// longer raw sequence with both window-relative and raw accessors.
//
// Derived sequences (SubSequence, window views) share the Errors cell of
// the sequence they came from so that violations anywhere in a chain show
// up at the root.
//
// None of the types here are safe for concurrent use.
package safe
