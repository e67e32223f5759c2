// Package cursor provides line-aware navigation over bounded sequences.
//
// A Cursor holds a single index into a safe.Bounded sequence and answers
// line, column, indent and blank-line questions relative to it. It is built
// only from the bounded sequence's primitives, so positions that would fall
// outside the text are clamped and counted in the sequence's error cell
// rather than failing.
//
// Basic usage:
//
//	seq := safe.New(safe.String("  foo\n  bar\n"))
//	c := cursor.New(seq, 8)
//	c.StartOfLine()   // 6
//	c.Indent()        // 2
//	c.FirstNonBlank() // 8
//
// The character slices returned by the *Chars methods are consistent with
// each other: StartOfLineToIndexChars followed by IndexToEndOfLineChars is
// exactly LineChars.
package cursor
