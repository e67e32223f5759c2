// Package history provides undo/redo over immutable sequence trees.
//
// Because smart nodes are never modified, an edit is fully described by
// the tree before it and the tree after it. A Revision records that pair;
// undoing restores the Before tree and redoing restores the After tree.
// Nothing is re-executed, so undo and redo cannot fail part way.
//
// # History Stack
//
//	h := NewHistory(1000) // Max 1000 undo entries
//
//	h.Push("Insert", before, after)
//
//	tree, err := h.Undo() // tree == before
//	tree, err = h.Redo()  // tree == after
//
// # Grouping
//
// Revisions pushed between BeginGroup and EndGroup collapse into one
// undo unit spanning the first Before to the last After:
//
//	h.BeginGroup("Align Table")
//	// ... multiple edits ...
//	h.EndGroup()
package history
