package tracking

import "github.com/google/uuid"

// Source identifies an input buffer. Sources compare by pointer.
type Source struct {
	id   uuid.UUID
	name string
}

// NewSource creates a new source identity.
func NewSource(name string) *Source {
	return &Source{id: uuid.New(), name: name}
}

// ID returns the unique ID of the source.
func (s *Source) ID() uuid.UUID {
	if s == nil {
		return uuid.Nil
	}
	return s.id
}

// Name returns the name given at creation.
func (s *Source) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

// String returns the name, or the ID for unnamed sources.
func (s *Source) String() string {
	if s == nil {
		return "<nil>"
	}
	if s.name != "" {
		return s.name
	}
	return s.id.String()
}
