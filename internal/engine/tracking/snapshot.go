package tracking

import (
	"errors"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
)

// Errors returned by snapshot operations.
var (
	ErrSnapshotNotFound = errors.New("snapshot not found")
)

// SnapshotID uniquely identifies a snapshot.
type SnapshotID uint64

// snapshotIDCounter generates unique snapshot IDs.
var snapshotIDCounter uint64

// NewSnapshotID generates a new unique snapshot ID.
func NewSnapshotID() SnapshotID {
	return SnapshotID(atomic.AddUint64(&snapshotIDCounter, 1))
}

// Snapshot indexes the mappings of a text by source for fast inverse
// queries. Snapshots are immutable and can be safely shared across
// goroutines.
type Snapshot struct {
	// ID uniquely identifies this snapshot.
	ID SnapshotID

	// Name is the human-readable name for this snapshot, if any.
	Name string

	// Timestamp when this snapshot was created.
	Timestamp time.Time

	// Version is the version of the text the snapshot was taken from.
	Version uint64

	length   int
	bySource map[*Source][]Mapping
	sources  mapset.Set[*Source]
}

// NewSnapshot builds a snapshot from the mappings of a text of the given
// length. Mappings may be in any order.
func NewSnapshot(name string, length int, version uint64, mappings []Mapping) *Snapshot {
	s := &Snapshot{
		ID:        NewSnapshotID(),
		Name:      name,
		Timestamp: time.Now(),
		Version:   version,
		length:    length,
		bySource:  make(map[*Source][]Mapping),
		sources:   mapset.NewThreadUnsafeSet[*Source](),
	}
	for _, m := range mappings {
		if m.Len <= 0 {
			continue
		}
		s.bySource[m.Source] = append(s.bySource[m.Source], m)
		s.sources.Add(m.Source)
	}
	for _, ms := range s.bySource {
		sort.Slice(ms, func(i, j int) bool {
			if c := ms[i].SourceSpan().Compare(ms[j].SourceSpan()); c != 0 {
				return c < 0
			}
			return ms[i].Index < ms[j].Index
		})
	}
	return s
}

// Len returns the length of the text the snapshot was taken from.
func (s *Snapshot) Len() int { return s.length }

// Sources returns the set of sources with at least one mapped character.
// The returned set is a copy.
func (s *Snapshot) Sources() mapset.Set[*Source] {
	return s.sources.Clone()
}

// Mappings returns the runs for src sorted by source offset.
func (s *Snapshot) Mappings(src *Source) []Mapping {
	ms := s.bySource[src]
	out := make([]Mapping, len(ms))
	copy(out, ms)
	return out
}

// TrackedLocation finds where offset of src lives in the text. It returns
// false when src has no mapped characters. Otherwise the result is exact
// when some character maps to offset, and a bracket otherwise.
func (s *Snapshot) TrackedLocation(src *Source, offset int) (Location, bool) {
	ms, ok := s.bySource[src]
	if !ok || len(ms) == 0 {
		return Location{}, false
	}

	// Runs starting after offset cannot contain it.
	upper := sort.Search(len(ms), func(i int) bool {
		return ms[i].SourceSpan().Start() > offset
	})

	found := false
	best := 0
	prevOffset, prevIndex, hasPrev := 0, 0, false
	for _, m := range ms[:upper] {
		if index, ok := m.IndexOf(offset); ok {
			if !found || index < best {
				best, found = index, true
			}
			continue
		}
		last := m.SourceSpan().End() - 1
		index, _ := m.IndexOf(last)
		if !hasPrev || last > prevOffset || (last == prevOffset && index < prevIndex) {
			prevOffset, prevIndex, hasPrev = last, index, true
		}
	}
	if found {
		return NewLocation(best, offset, src), true
	}

	nextOffset, nextIndex, hasNext := 0, 0, false
	for _, m := range ms[upper:] {
		first := m.SourceSpan().Start()
		if hasNext && first > nextOffset {
			break
		}
		index, _ := m.IndexOf(first)
		if !hasNext || index < nextIndex {
			nextOffset, nextIndex, hasNext = first, index, true
		}
	}

	switch {
	case hasPrev && hasNext:
	case hasPrev:
		nextOffset, nextIndex = prevOffset, prevIndex
	default:
		prevOffset, prevIndex = nextOffset, nextIndex
	}

	index := nextIndex
	if hasPrev {
		index = prevIndex + 1
	}
	return Location{
		Index: index, PrevIndex: prevIndex, NextIndex: nextIndex,
		Offset: offset, PrevOffset: prevOffset, NextOffset: nextOffset,
		Source: src, PrevSource: src, NextSource: src,
	}, true
}

// SnapshotManager keeps named snapshots.
// All operations are thread-safe.
type SnapshotManager struct {
	mu        sync.RWMutex
	snapshots map[SnapshotID]*Snapshot
	byName    map[string]*Snapshot
}

// NewSnapshotManager creates a new snapshot manager.
func NewSnapshotManager() *SnapshotManager {
	return &SnapshotManager{
		snapshots: make(map[SnapshotID]*Snapshot),
		byName:    make(map[string]*Snapshot),
	}
}

// Add stores snap. A snapshot with the same name is replaced.
func (sm *SnapshotManager) Add(snap *Snapshot) SnapshotID {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if existing, ok := sm.byName[snap.Name]; ok && snap.Name != "" {
		delete(sm.snapshots, existing.ID)
	}
	sm.snapshots[snap.ID] = snap
	if snap.Name != "" {
		sm.byName[snap.Name] = snap
	}
	return snap.ID
}

// Get retrieves a snapshot by ID.
func (sm *SnapshotManager) Get(id SnapshotID) (*Snapshot, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	snap, ok := sm.snapshots[id]
	return snap, ok
}

// GetByName retrieves a snapshot by name.
func (sm *SnapshotManager) GetByName(name string) (*Snapshot, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	snap, ok := sm.byName[name]
	return snap, ok
}

// Delete removes a snapshot by ID.
func (sm *SnapshotManager) Delete(id SnapshotID) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	snap, ok := sm.snapshots[id]
	if !ok {
		return ErrSnapshotNotFound
	}
	delete(sm.snapshots, id)
	if snap.Name != "" && sm.byName[snap.Name] == snap {
		delete(sm.byName, snap.Name)
	}
	return nil
}

// List returns all snapshots sorted by creation order.
func (sm *SnapshotManager) List() []*Snapshot {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	out := make([]*Snapshot, 0, len(sm.snapshots))
	for _, snap := range sm.snapshots {
		out = append(out, snap)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Count returns the number of stored snapshots.
func (sm *SnapshotManager) Count() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.snapshots)
}
