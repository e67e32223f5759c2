// Package smart provides versioned, source-tracking character sequences.
//
// A Node is an immutable tree of characters. Leaves hold runs of text read
// from a tracking.Source at a known offset; composites concatenate their
// children; mapped, reversed and replaced nodes transform a base node
// lazily. Every edit (Insert, Delete, Replace, Append) returns a new node
// that shares all unchanged subtrees with its operands.
//
// # Source Tracking
//
// Any character can be traced back to its origin with
// TrackedSourceLocation, and any source offset can be found in the current
// text with TrackedLocation:
//
//	src := tracking.NewSource("README.md")
//	doc := smart.FromString("hello world", src)
//	edited := doc.Replace(smart.Literal("there"), 6, 11)
//	loc := edited.TrackedSourceLocation(0) // exact: src offset 0
//	at, _ := edited.TrackedLocation(src, 8) // bracket: offset 8 was replaced
//
// AppendOptimized splices adjacent leaves of the same source back into one
// leaf when they are contiguous in that source, which keeps trees shallow
// under many small edits of a large document.
//
// # Versions and Proxies
//
// Reading a deep composite costs a tree descent per character.
// CachedProxy returns a flat copy stamped with the node's version and
// caches it. A fixed tree never changes version, so its proxy never goes
// stale. A Slot is the one mutable holder: trees built over Slot.Node
// follow the slot's content, their version advances on every Slot.Set,
// and proxies taken before that report IsStale.
//
// Published nodes are safe for concurrent readers. Slots may be set from
// one goroutine at a time while others read.
package smart
