package engine

import (
	"sync/atomic"
	"time"
)

// Metrics counts document activity. All methods are safe for concurrent
// use.
type Metrics struct {
	editCount   atomic.Uint64
	editTotalNs atomic.Int64
	editMinNs   atomic.Int64
	editMaxNs   atomic.Int64
	lastEditNs  atomic.Int64

	softErrors   atomic.Uint64
	faultyEdits  atomic.Uint64
	undoCount    atomic.Uint64
	redoCount    atomic.Uint64
	rejectedEdit atomic.Uint64

	startTime atomic.Int64
}

const noMin = 1<<63 - 1

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	m := &Metrics{}
	m.Reset()
	return m
}

// RecordEdit records one edit taking duration that added softErrors to
// the document's error cell.
func (m *Metrics) RecordEdit(duration time.Duration, softErrors int) {
	ns := duration.Nanoseconds()

	m.editCount.Add(1)
	m.editTotalNs.Add(ns)
	m.lastEditNs.Store(ns)
	if softErrors > 0 {
		m.softErrors.Add(uint64(softErrors))
		m.faultyEdits.Add(1)
	}

	for {
		old := m.editMinNs.Load()
		if ns >= old || m.editMinNs.CompareAndSwap(old, ns) {
			break
		}
	}
	for {
		old := m.editMaxNs.Load()
		if ns <= old || m.editMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordUndo records an undo.
func (m *Metrics) RecordUndo() { m.undoCount.Add(1) }

// RecordRedo records a redo.
func (m *Metrics) RecordRedo() { m.redoCount.Add(1) }

// RecordRejected records an edit refused by a read-only document.
func (m *Metrics) RecordRejected() { m.rejectedEdit.Add(1) }

// Snapshot returns a point-in-time view of the metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	count := m.editCount.Load()

	var avg int64
	if count > 0 {
		avg = m.editTotalNs.Load() / int64(count)
	}
	minNs := m.editMinNs.Load()
	if minNs == noMin {
		minNs = 0
	}

	return MetricsSnapshot{
		Uptime:        time.Since(time.Unix(0, m.startTime.Load())),
		EditCount:     count,
		AvgEditNs:     avg,
		MinEditNs:     minNs,
		MaxEditNs:     m.editMaxNs.Load(),
		LastEditNs:    m.lastEditNs.Load(),
		SoftErrors:    m.softErrors.Load(),
		FaultyEdits:   m.faultyEdits.Load(),
		UndoCount:     m.undoCount.Load(),
		RedoCount:     m.redoCount.Load(),
		RejectedEdits: m.rejectedEdit.Load(),
	}
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.editCount.Store(0)
	m.editTotalNs.Store(0)
	m.editMinNs.Store(noMin)
	m.editMaxNs.Store(0)
	m.lastEditNs.Store(0)
	m.softErrors.Store(0)
	m.faultyEdits.Store(0)
	m.undoCount.Store(0)
	m.redoCount.Store(0)
	m.rejectedEdit.Store(0)
	m.startTime.Store(time.Now().UnixNano())
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	Uptime        time.Duration
	EditCount     uint64
	AvgEditNs     int64
	MinEditNs     int64
	MaxEditNs     int64
	LastEditNs    int64
	SoftErrors    uint64
	FaultyEdits   uint64
	UndoCount     uint64
	RedoCount     uint64
	RejectedEdits uint64
}

// FaultRate returns the percentage of edits that counted soft errors.
func (s MetricsSnapshot) FaultRate() float64 {
	if s.EditCount == 0 {
		return 0
	}
	return float64(s.FaultyEdits) / float64(s.EditCount) * 100
}
