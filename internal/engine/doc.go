// Package engine provides the Document facade over the smartseq
// sub-packages.
//
// A Document holds one source text and the tree its edits have produced.
// Every character of the current tree knows which source offset it came
// from, so after any chain of edits the document can answer where an
// index came from and where an original offset lives now.
//
// # Architecture
//
// The engine is built on several sub-packages:
//
//   - interval: half-open [start, end) ranges with a distinct NULL value
//   - safe: bounds-clamping sequences and windows sharing an error cell
//   - smart: immutable, versioned, source-tracking node trees
//   - tracking: sources, locations and per-source mapping snapshots
//   - cursor: line and column queries around an index
//   - width: character widths, line lookup and tab stops
//   - history: undo/redo over immutable trees
//
// # Thread Safety
//
// All Document operations are thread-safe. Reads take a read lock and
// return immutable trees, so callers can keep using a tree after the
// document has moved on.
//
// # Basic Usage
//
//	doc := engine.New("table.md", "| a\t| b |\n")
//
//	doc.ExpandTabs()
//	doc.Replace(2, 3, "alpha")
//
//	loc := doc.SourceOf(2)      // where "alpha" came from: unmapped literal
//	at, _ := doc.Locate(5)      // where original offset 5 lives now
//
//	doc.Undo()
//
// # Soft Errors
//
// Indices outside the content are clamped, never rejected. Each clamp
// adds one to the error cell returned by Errors; an edit that clamped is
// logged at Warn level:
//
//	mark := doc.Errors().Snapshot()
//	doc.Delete(-1, 100)
//	n := doc.Errors().Since(mark) // 2
//
// # Staleness
//
// Proxy returns a flat copy of the current content that is reused until
// the next edit. After an edit the old copy reports IsStale, and Proxy
// builds a fresh one:
//
//	p := doc.Proxy()
//	doc.Insert(0, ">")
//	p.IsStale() // true
//
// # Checkpoints
//
// Checkpoint records the current tree and its source index by name. The
// recorded index answers location queries for that moment; the tree can
// be restored as an undoable edit:
//
//	id := doc.Checkpoint("before-align")
//	// ... edits ...
//	doc.RestoreCheckpoint(id)
//
// # Error Handling
//
// The package defines several errors:
//
//   - ErrReadOnly: Edit on a read-only document
//   - ErrNilTransform: Apply without a usable tree
//   - ErrNothingToUndo: Undo stack is empty
//   - ErrNothingToRedo: Redo stack is empty
//   - ErrSnapshotNotFound: Requested checkpoint does not exist
package engine
