// Package interval provides the half-open integer interval used as the
// coordinate carrier throughout the engine.
//
// An Interval is an immutable value. Every With*-style operation returns a
// new value; the receiver is never modified. A dedicated Null interval marks
// "no range yet" and is distinguished from every constructible interval by a
// tag, so no (start, end) pair a caller builds can ever compare as Null.
//
// Intersect and Exclude collapse to the canonical Empty interval [0, 0)
// rather than to Null when nothing is left.
package interval
