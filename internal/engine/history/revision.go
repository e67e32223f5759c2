package history

import (
	"time"

	"github.com/dshills/smartseq/internal/engine/smart"
)

// Revision is one undo unit: the tree before an edit and the tree after.
type Revision struct {
	Description string
	Before      *smart.Node
	After       *smart.Node
	Timestamp   time.Time
}

// NewRevision creates a revision stamped with the current time.
func NewRevision(description string, before, after *smart.Node) *Revision {
	return &Revision{
		Description: description,
		Before:      before,
		After:       after,
		Timestamp:   time.Now(),
	}
}

// LenDelta returns the change in length the revision made.
func (r *Revision) LenDelta() int {
	return lenOf(r.After) - lenOf(r.Before)
}

// IsNoop reports whether the revision left the content unchanged.
func (r *Revision) IsNoop() bool {
	if r.Before == r.After {
		return true
	}
	if r.Before == nil || r.After == nil {
		return lenOf(r.Before) == lenOf(r.After)
	}
	return r.Before.Equivalent(r.After)
}

// Info returns the read-only summary of r.
func (r *Revision) Info() Info {
	return Info{
		Description: r.Description,
		Timestamp:   r.Timestamp,
		LenDelta:    r.LenDelta(),
	}
}

// Info provides read-only info about a revision.
// Used for displaying undo/redo history.
type Info struct {
	Description string    // Human-readable description
	Timestamp   time.Time // When the edit happened
	LenDelta    int       // Positive for insertions, negative for deletions
}

func lenOf(n *smart.Node) int {
	if n == nil {
		return 0
	}
	return n.Len()
}
