// Package config loads smartseq settings.
//
// Settings are merged from layers, higher layers overriding lower:
//
//	runtime      Config.Set
//	environment  SMARTSEQ_* variables
//	file         TOML or YAML settings file
//	defaults     built in
//
// The merged map is validated against the known settings before any
// typed section is read.
//
// # Basic Usage
//
//	cfg := config.New(config.WithFile("smartseq.toml"))
//	if err := cfg.Load(ctx); err != nil {
//	    return err
//	}
//	table := cfg.Table()
//	doc := cfg.Document()
//
// # Environment Variables
//
// SMARTSEQ_<SECTION>_<NAME> sets section.name, with NAME converted to
// camelCase: SMARTSEQ_TABLE_TRIM_CELLS sets table.trimCells. The short
// forms SMARTSEQ_LOG_LEVEL, SMARTSEQ_TAB_SIZE, SMARTSEQ_EXPAND_TABS and
// SMARTSEQ_TRIM_CELLS are also recognized.
//
// # Settings
//
//	table.leadTrailPipes        bool  true
//	table.spaceAroundPipe       bool  true
//	table.adjustColumnWidth     bool  true
//	table.applyColumnAlignment  bool  true
//	table.fillMissingColumns    bool  true
//	table.trimCells             bool  false
//	table.leftAlignMarker       int   1   (-1 remove, 0 as is, 1 add)
//	table.caption               int   0   (0 as is, 2 add, 3 remove empty, 4 remove)
//	table.captionSpaces         int   0   (-1 remove, 0 as is, 1 add)
//	document.tabSize            int   4
//	document.expandTabs         bool  false
//	document.maxUndoEntries     int   1000
//	document.readOnly           bool  false
//	logging.level               string info
package config
