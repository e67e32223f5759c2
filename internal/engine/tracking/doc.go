// Package tracking maps characters of derived text back to their origin.
//
// Every character that came from an input document carries a source
// identity (a *Source) and an offset in that source. Editing produces new
// text whose characters still resolve to those pairs; characters inserted
// by an edit have no origin of their own.
//
// # Core Components
//
//   - [Source]: opaque identity of an input buffer
//   - [Location]: the answer to "where did this character come from" or
//     "where does this source offset live now", either exact or a bracket
//     of the nearest exact points before and after
//   - [Mapping]: a run of consecutive text indexes mapped to consecutive
//     source offsets
//   - [Snapshot]: per-source sorted mappings answering repeated inverse
//     queries quickly
//   - [SnapshotManager]: named snapshots kept as checkpoints
//
// # Inverse Queries
//
// When several runs map the same source offset, the one with the lowest
// text index wins. When no run maps the offset, the result brackets it
// between the closest mapped offsets below and above; its Index is the
// position just after the lower bracket, which is where text deleted at
// that offset would have been.
package tracking
