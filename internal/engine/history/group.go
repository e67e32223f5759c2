package history

import "github.com/dshills/smartseq/internal/engine/smart"

// GroupScope provides a convenient way to group revisions using defer.
// Usage:
//
//	func alignTable(doc *engine.Document, h *History) {
//	    defer h.GroupScope("Align Table").End()
//	    // ... multiple edits ...
//	}
type GroupScope struct {
	history *History
	active  bool
}

// GroupScope starts a new group scope.
// Call End() or use with defer to properly close the group.
func (h *History) GroupScope(name string) *GroupScope {
	h.BeginGroup(name)
	return &GroupScope{
		history: h,
		active:  true,
	}
}

// End ends the group scope.
// Safe to call multiple times; only the first call has effect.
func (g *GroupScope) End() {
	if g.active {
		g.history.EndGroup()
		g.active = false
	}
}

// Cancel cancels the group scope without recording a revision.
func (g *GroupScope) Cancel() {
	if g.active {
		g.history.CancelGroup()
		g.active = false
	}
}

// Transaction runs fn within a grouped undo context.
// If fn returns an error, the revisions fn recorded are dropped.
// Otherwise, the group is ended normally. Inside an enclosing group the
// transaction neither ends nor cancels that group.
func (h *History) Transaction(name string, fn func() error) error {
	opened, mark := h.beginTransaction(name)

	if err := fn(); err != nil {
		if opened {
			h.CancelGroup()
		} else {
			h.truncateGroup(mark)
		}
		return err
	}

	if opened {
		h.EndGroup()
	}
	return nil
}

// beginTransaction opens a group unless one is active. It reports whether
// it opened one and how many revisions the active group held.
func (h *History) beginTransaction(name string) (bool, int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.grouping {
		return false, len(h.groupRevs)
	}
	h.grouping = true
	h.groupName = name
	h.groupRevs = nil
	return true, 0
}

// truncateGroup drops the grouped revisions recorded after mark.
func (h *History) truncateGroup(mark int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.grouping && mark < len(h.groupRevs) {
		h.groupRevs = h.groupRevs[:mark]
	}
}

// Checkpoint represents a point in history that can be returned to.
type Checkpoint struct {
	undoDepth int
}

// CreateCheckpoint creates a checkpoint at the current history position.
func (h *History) CreateCheckpoint() Checkpoint {
	h.mu.Lock()
	defer h.mu.Unlock()
	return Checkpoint{undoDepth: len(h.undoStack)}
}

// UndoToCheckpoint undoes every revision since the checkpoint and
// returns the tree to restore, or nil when nothing was undone.
func (h *History) UndoToCheckpoint(cp Checkpoint) (*smart.Node, error) {
	var tree *smart.Node
	for h.UndoCount() > cp.undoDepth {
		t, err := h.Undo()
		if err != nil {
			return tree, err
		}
		tree = t
	}
	return tree, nil
}

// RedoToCheckpoint redoes revisions up to the checkpoint depth and
// returns the tree to restore, or nil when nothing was redone.
func (h *History) RedoToCheckpoint(cp Checkpoint) (*smart.Node, error) {
	var tree *smart.Node
	for h.UndoCount() < cp.undoDepth && h.CanRedo() {
		t, err := h.Redo()
		if err != nil {
			return tree, err
		}
		tree = t
	}
	return tree, nil
}
