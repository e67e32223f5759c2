package engine

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/dshills/smartseq/internal/engine/cursor"
	"github.com/dshills/smartseq/internal/engine/history"
	"github.com/dshills/smartseq/internal/engine/safe"
	"github.com/dshills/smartseq/internal/engine/smart"
	"github.com/dshills/smartseq/internal/engine/tracking"
	"github.com/dshills/smartseq/internal/engine/width"
	"github.com/dshills/smartseq/internal/logging"
)

// Re-export commonly used types for convenience.
type (
	// Node is an immutable, source-tracking character sequence.
	Node = smart.Node

	// Location relates a document index to a source offset.
	Location = tracking.Location

	// SnapshotID identifies a checkpoint.
	SnapshotID = tracking.SnapshotID

	// Snapshot is the source index of a checkpoint.
	Snapshot = tracking.Snapshot

	// Info describes one undo or redo entry.
	Info = history.Info
)

// Document is the facade over one source text and the tree its edits
// have produced. The current tree lives in a Slot, so View and Proxy
// follow edits and proxies taken before an edit report stale.
//
// All operations are thread-safe. Out-of-range indices never fail: they
// are clamped and counted in the document's error cell.
type Document struct {
	mu sync.RWMutex

	name     string
	source   *tracking.Source
	original *smart.Node
	slot     *smart.Slot

	errs        *safe.Errors
	history     *history.History
	snapshots   *tracking.SnapshotManager
	checkpoints map[tracking.SnapshotID]*smart.Node
	logger      *logging.Logger
	metrics     *Metrics

	// Configuration
	tabSize        int
	beforeStart    rune
	afterEnd       rune
	provider       width.Provider
	maxUndoEntries int
	readOnly       bool
}

// New creates a document named name over text.
func New(name, text string, opts ...Option) *Document {
	d := &Document{
		name:           name,
		source:         tracking.NewSource(name),
		errs:           safe.NewErrors(),
		logger:         logging.Nop(),
		tabSize:        DefaultTabSize,
		beforeStart:    safe.NullChar,
		afterEnd:       safe.NullChar,
		provider:       width.Default,
		maxUndoEntries: DefaultMaxUndoEntries,
	}

	for _, opt := range opts {
		opt(d)
	}

	if d.metrics == nil {
		d.metrics = NewMetrics()
	}
	d.logger = d.logger.WithField("document", name)
	d.history = history.NewHistory(d.maxUndoEntries)
	d.snapshots = tracking.NewSnapshotManager()
	d.checkpoints = make(map[tracking.SnapshotID]*smart.Node)

	d.original = smart.FromString(text, d.source)
	d.slot = smart.NewSlot(d.original)
	return d
}

// NewFromReader creates a document named name from everything r yields.
func NewFromReader(name string, r io.Reader, opts ...Option) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return New(name, string(data), opts...), nil
}

// ============================================================================
// Read Operations
// ============================================================================

// Name returns the document name.
func (d *Document) Name() string { return d.name }

// Source returns the identity every original character tracks to.
func (d *Document) Source() *tracking.Source { return d.source }

// Original returns the tree the document was created with.
func (d *Document) Original() *smart.Node { return d.original }

// Tree returns the current tree. The tree is immutable; later edits do
// not change it.
func (d *Document) Tree() *smart.Node {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.slot.Get()
}

// View returns a node that always shows the current content.
func (d *Document) View() *smart.Node { return d.slot.Node() }

// Text returns the current content.
func (d *Document) Text() string { return d.Tree().String() }

// Len returns the current length in characters.
func (d *Document) Len() int { return d.Tree().Len() }

// IsEmpty reports whether the document has no characters.
func (d *Document) IsEmpty() bool { return d.Len() == 0 }

// Version returns the version of the current content. It advances with
// every edit, undo and redo.
func (d *Document) Version() uint64 { return d.slot.Node().Version() }

// Proxy returns a flat copy of the current content. The copy is reused
// until the next edit, after which it reports IsStale.
func (d *Document) Proxy() *smart.Node { return d.slot.Node().CachedProxy() }

// Sequence returns the current content as a bounded sequence counting
// into the document's error cell.
func (d *Document) Sequence() *safe.Sequence {
	return d.Tree().Safe(
		safe.WithErrors(d.errs),
		safe.WithSentinels(d.beforeStart, d.afterEnd),
	)
}

// Cursor returns a cursor over the current content at index.
func (d *Document) Cursor(index int) *cursor.Cursor {
	return cursor.New(d.Sequence(), index, cursor.WithWidthProvider(d.provider))
}

// SourceOf returns where the character at index came from.
func (d *Document) SourceOf(index int) tracking.Location {
	return d.Tree().TrackedSourceLocation(index)
}

// Locate returns where offset of the original text lives now. It returns
// false once no original character survives.
func (d *Document) Locate(offset int) (tracking.Location, bool) {
	return d.Tree().TrackedLocation(d.source, offset)
}

// Errors returns the document's error cell.
func (d *Document) Errors() *safe.Errors { return d.errs }

// ============================================================================
// Edit Operations
// ============================================================================

// edit runs fn against the current tree and commits its result as one
// undo entry.
func (d *Document) edit(description string, fn func(e *smart.Editor, tree *smart.Node) *smart.Node) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	log := d.logger.WithField("edit", description)
	if d.readOnly {
		d.metrics.RecordRejected()
		log.Debug("rejected edit on read-only document")
		return ErrReadOnly
	}

	start := time.Now()
	mark := d.errs.Snapshot()
	before := d.slot.Get()
	after := fn(smart.NewEditor(d.errs), before)
	if after == nil {
		return ErrNilTransform
	}

	delta := d.errs.Since(mark)
	d.metrics.RecordEdit(time.Since(start), delta)
	if after != before {
		d.slot.Set(after)
		d.history.Push(description, before, after)
	}

	log = log.WithFields(map[string]any{"len": after.Len(), "version": d.slot.Version()})
	log.Debug("applied edit")
	if delta != 0 {
		log.Warn("edit clamped %d out-of-range bounds", delta)
	}
	return nil
}

func (d *Document) bounded(tree *smart.Node) *safe.Sequence {
	return safe.New(tree, safe.WithErrors(d.errs))
}

// Insert inserts text at index and returns the index just past it.
func (d *Document) Insert(index int, text string) (int, error) {
	end := 0
	err := d.edit("Insert", func(_ *smart.Editor, tree *smart.Node) *smart.Node {
		at := d.bounded(tree).SafeIndex(index)
		seq := smart.Literal(text)
		end = at + seq.Len()
		return tree.Insert(seq, at)
	})
	return end, err
}

// Delete removes [start, end).
func (d *Document) Delete(start, end int) error {
	return d.edit("Delete", func(e *smart.Editor, tree *smart.Node) *smart.Node {
		return e.Delete(tree, start, end)
	})
}

// Replace replaces [start, end) with text and returns the index just
// past the new text.
func (d *Document) Replace(start, end int, text string) (int, error) {
	newEnd := 0
	err := d.edit("Replace", func(_ *smart.Editor, tree *smart.Node) *smart.Node {
		r := d.bounded(tree).SafeRange(start, end)
		seq := smart.Literal(text)
		newEnd = r.Start() + seq.Len()
		return tree.Replace(seq, r.Start(), r.End())
	})
	return newEnd, err
}

// ExpandTabs replaces every tab with spaces up to the next tab stop,
// measuring other characters with the document's width provider.
func (d *Document) ExpandTabs() error {
	return d.edit("Expand Tabs", func(_ *smart.Editor, tree *smart.Node) *smart.Node {
		return tree.ExpandTabsWith(width.NewTabStops(d.tabSize), d.provider)
	})
}

// Apply replaces the current tree with fn's result as one undo entry. fn
// runs under the document lock and must not call back into d.
func (d *Document) Apply(description string, fn func(*smart.Node) *smart.Node) error {
	if fn == nil {
		return ErrNilTransform
	}
	return d.edit(description, func(_ *smart.Editor, tree *smart.Node) *smart.Node {
		return fn(tree)
	})
}

// ============================================================================
// Undo/Redo
// ============================================================================

// Undo restores the tree before the last edit.
func (d *Document) Undo() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	tree, err := d.history.Undo()
	if err != nil {
		return err
	}
	d.slot.Set(tree)
	d.metrics.RecordUndo()
	d.logger.Debug("undo")
	return nil
}

// Redo restores the tree after the last undone edit.
func (d *Document) Redo() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	tree, err := d.history.Redo()
	if err != nil {
		return err
	}
	d.slot.Set(tree)
	d.metrics.RecordRedo()
	d.logger.Debug("redo")
	return nil
}

// CanUndo returns true if undo is available.
func (d *Document) CanUndo() bool { return d.history.CanUndo() }

// CanRedo returns true if redo is available.
func (d *Document) CanRedo() bool { return d.history.CanRedo() }

// UndoCount returns the number of undo entries available.
func (d *Document) UndoCount() int { return d.history.UndoCount() }

// RedoCount returns the number of redo entries available.
func (d *Document) RedoCount() int { return d.history.RedoCount() }

// UndoInfo describes the available undo entries, oldest first.
func (d *Document) UndoInfo() []Info { return d.history.UndoInfo() }

// BeginUndoGroup starts grouping edits into one undo entry.
func (d *Document) BeginUndoGroup(name string) { d.history.BeginGroup(name) }

// EndUndoGroup ends the current undo group.
func (d *Document) EndUndoGroup() { d.history.EndGroup() }

// CancelUndoGroup drops the current group. Its edits still stand.
func (d *Document) CancelUndoGroup() { d.history.CancelGroup() }

// ClearHistory removes all undo/redo history.
func (d *Document) ClearHistory() { d.history.Clear() }

// Transaction runs fn as one undo entry. If fn fails, the document is
// rolled back to the tree it had before fn ran.
func (d *Document) Transaction(name string, fn func() error) error {
	start := d.Tree()
	err := d.history.Transaction(name, fn)
	if err != nil {
		d.mu.Lock()
		d.slot.Set(start)
		d.mu.Unlock()
		d.logger.WithField("transaction", name).Warn("rolled back: %v", err)
	}
	return err
}

// ============================================================================
// Checkpoints
// ============================================================================

// Checkpoint records the current tree and its source index under name.
// A checkpoint with the same name is replaced.
func (d *Document) Checkpoint(name string) SnapshotID {
	d.mu.Lock()
	defer d.mu.Unlock()

	if old, ok := d.snapshots.GetByName(name); ok && name != "" {
		delete(d.checkpoints, old.ID)
	}
	tree := d.slot.Get()
	snap := tracking.NewSnapshot(name, tree.Len(), tree.Version(), tree.Mappings())
	id := d.snapshots.Add(snap)
	d.checkpoints[id] = tree
	return id
}

// GetCheckpoint returns the source index recorded by a checkpoint.
func (d *Document) GetCheckpoint(id SnapshotID) (*Snapshot, error) {
	snap, ok := d.snapshots.Get(id)
	if !ok {
		return nil, ErrSnapshotNotFound
	}
	return snap, nil
}

// GetCheckpointByName returns the source index recorded under name.
func (d *Document) GetCheckpointByName(name string) (*Snapshot, error) {
	snap, ok := d.snapshots.GetByName(name)
	if !ok {
		return nil, ErrSnapshotNotFound
	}
	return snap, nil
}

// CheckpointText returns the content recorded by a checkpoint.
func (d *Document) CheckpointText(id SnapshotID) (string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	tree, ok := d.checkpoints[id]
	if !ok {
		return "", ErrSnapshotNotFound
	}
	return tree.String(), nil
}

// RestoreCheckpoint makes the checkpoint's tree current, as an undoable
// edit.
func (d *Document) RestoreCheckpoint(id SnapshotID) error {
	d.mu.RLock()
	tree, ok := d.checkpoints[id]
	d.mu.RUnlock()
	if !ok {
		return ErrSnapshotNotFound
	}
	return d.edit("Restore Checkpoint", func(*smart.Editor, *smart.Node) *smart.Node {
		return tree
	})
}

// DeleteCheckpoint removes a checkpoint.
func (d *Document) DeleteCheckpoint(id SnapshotID) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.snapshots.Delete(id); err != nil {
		return err
	}
	delete(d.checkpoints, id)
	return nil
}

// ListCheckpoints returns all checkpoints in creation order.
func (d *Document) ListCheckpoints() []*Snapshot { return d.snapshots.List() }

// CheckpointCount returns the number of checkpoints.
func (d *Document) CheckpointCount() int { return d.snapshots.Count() }

// ============================================================================
// Configuration
// ============================================================================

// TabSize returns the tab size.
func (d *Document) TabSize() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.tabSize
}

// SetTabSize sets the tab size. Non-positive sizes are ignored.
func (d *Document) SetTabSize(size int) {
	if size <= 0 {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.tabSize = size
}

// IsReadOnly returns true if the document rejects edits.
func (d *Document) IsReadOnly() bool { return d.readOnly }

// Metrics returns the document's metrics.
func (d *Document) Metrics() *Metrics { return d.metrics }
