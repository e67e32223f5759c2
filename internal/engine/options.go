package engine

import (
	"github.com/dshills/smartseq/internal/engine/history"
	"github.com/dshills/smartseq/internal/engine/safe"
	"github.com/dshills/smartseq/internal/engine/width"
	"github.com/dshills/smartseq/internal/logging"
)

// Default configuration values.
const (
	DefaultTabSize        = width.DefaultTabSize
	DefaultMaxUndoEntries = history.DefaultMaxEntries
)

// Option configures a Document during creation.
type Option func(*Document)

// WithTabSize sets the tab size used by ExpandTabs and cursor columns.
func WithTabSize(size int) Option {
	return func(d *Document) {
		if size > 0 {
			d.tabSize = size
		}
	}
}

// WithLogger sets the logger edits are reported to.
func WithLogger(l *logging.Logger) Option {
	return func(d *Document) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithSentinels sets the characters returned for reads before the start
// and past the end of the document.
func WithSentinels(beforeStart, afterEnd rune) Option {
	return func(d *Document) {
		d.beforeStart = beforeStart
		d.afterEnd = afterEnd
	}
}

// WithWidthProvider sets how character widths are measured for tab
// expansion and columns.
func WithWidthProvider(p width.Provider) Option {
	return func(d *Document) {
		if p != nil {
			d.provider = p
		}
	}
}

// WithErrors makes the document count soft errors into errs, so several
// documents can report into one cell.
func WithErrors(errs *safe.Errors) Option {
	return func(d *Document) {
		if errs != nil {
			d.errs = errs
		}
	}
}

// WithMaxUndoEntries sets the maximum number of undo history entries.
func WithMaxUndoEntries(max int) Option {
	return func(d *Document) {
		if max > 0 {
			d.maxUndoEntries = max
		}
	}
}

// WithMetrics makes the document record into m.
func WithMetrics(m *Metrics) Option {
	return func(d *Document) {
		if m != nil {
			d.metrics = m
		}
	}
}

// WithReadOnly creates a read-only document.
// Edits will return ErrReadOnly.
func WithReadOnly() Option {
	return func(d *Document) {
		d.readOnly = true
	}
}
