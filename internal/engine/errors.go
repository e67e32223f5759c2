package engine

import (
	"errors"

	"github.com/dshills/smartseq/internal/engine/history"
	"github.com/dshills/smartseq/internal/engine/tracking"
)

// Errors returned by document operations. Out-of-range indices are not
// errors; they are clamped and counted in the document's error cell.
var (
	// ErrNothingToUndo indicates the undo stack is empty.
	ErrNothingToUndo = history.ErrNothingToUndo

	// ErrNothingToRedo indicates the redo stack is empty.
	ErrNothingToRedo = history.ErrNothingToRedo

	// ErrSnapshotNotFound indicates a checkpoint was not found.
	ErrSnapshotNotFound = tracking.ErrSnapshotNotFound

	// ErrReadOnly indicates an edit was attempted on a read-only document.
	ErrReadOnly = errors.New("document is read-only")

	// ErrNilTransform indicates Apply was given a nil function or the
	// function returned a nil tree.
	ErrNilTransform = errors.New("transform returned no tree")
)
