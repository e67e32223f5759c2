package config

// LeftAlignMarker controls the ':' marker on left-aligned columns.
type LeftAlignMarker int

const (
	// LeftAlignMarkerRemove drops the marker.
	LeftAlignMarkerRemove LeftAlignMarker = -1
	// LeftAlignMarkerAsIs keeps the marker only where the source had one.
	LeftAlignMarkerAsIs LeftAlignMarker = 0
	// LeftAlignMarkerAdd always writes the marker.
	LeftAlignMarkerAdd LeftAlignMarker = 1
)

// CaptionHandling controls the table caption line.
type CaptionHandling int

const (
	CaptionAsIs        CaptionHandling = 0
	CaptionAdd         CaptionHandling = 2
	CaptionRemoveEmpty CaptionHandling = 3
	CaptionRemove      CaptionHandling = 4
)

// CaptionSpaces controls the spaces inside caption brackets.
type CaptionSpaces int

const (
	CaptionSpacesRemove CaptionSpaces = -1
	CaptionSpacesAsIs   CaptionSpaces = 0
	CaptionSpacesAdd    CaptionSpaces = 1
)

// TableFormat is the policy a table formatter reads. The sequence
// packages never consult it; the CLI uses TrimCells when it splits cells.
type TableFormat struct {
	// LeadTrailPipes writes '|' at the start and end of every row.
	LeadTrailPipes bool
	// SpaceAroundPipe pads cell text with one space on each side.
	SpaceAroundPipe bool
	// AdjustColumnWidth pads cells to a common column width.
	AdjustColumnWidth bool
	// ApplyColumnAlignment aligns cell text per the separator row.
	ApplyColumnAlignment bool
	// FillMissingColumns adds empty cells to short rows.
	FillMissingColumns bool
	// TrimCells strips surrounding blanks from cell text.
	TrimCells bool

	LeftAlignMarker LeftAlignMarker
	Caption         CaptionHandling
	CaptionSpaces   CaptionSpaces
}

// DefaultTableFormat returns the default table policy.
func DefaultTableFormat() TableFormat {
	return TableFormat{
		LeadTrailPipes:       true,
		SpaceAroundPipe:      true,
		AdjustColumnWidth:    true,
		ApplyColumnAlignment: true,
		FillMissingColumns:   true,
		TrimCells:            false,
		LeftAlignMarker:      LeftAlignMarkerAdd,
		Caption:              CaptionAsIs,
		CaptionSpaces:        CaptionSpacesAsIs,
	}
}

// DocumentConfig holds the settings applied to every engine.Document.
type DocumentConfig struct {
	// TabSize is the tab stop interval used for columns and tab expansion.
	TabSize int
	// ExpandTabs replaces tabs with spaces right after loading.
	ExpandTabs bool
	// MaxUndoEntries bounds the undo stack. Zero uses the engine default.
	MaxUndoEntries int
	// ReadOnly rejects every edit.
	ReadOnly bool
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string
}
