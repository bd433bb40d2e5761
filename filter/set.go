package filter

import (
	"sync"

	"github.com/google/uuid"

	"github.com/gaborage/go-beams/event"
)

// Set is the ordered filter collection owned by a single destination.
// Mutations and evaluations may happen from different goroutines; the set
// guards itself with a read-write mutex.
type Set struct {
	mu      sync.RWMutex
	filters []Filter
}

// NewSet returns an empty filter set.
func NewSet() *Set {
	return &Set{}
}

// Add appends a filter to the set. Level-target filters are exclusive: adding
// one removes every level-target filter already present, so at most one
// minimum-level gate is active at a time.
func (s *Set) Add(f Filter) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if f.target == TargetLevel {
		kept := s.filters[:0]
		for _, existing := range s.filters {
			if existing.target != TargetLevel {
				kept = append(kept, existing)
			}
		}
		s.filters = kept
	}
	s.filters = append(s.filters, f)
}

// Remove removes the filter with the same identity as f. Removing a filter
// that is not present is a no-op.
func (s *Set) Remove(f Filter) {
	s.RemoveID(f.id)
}

// RemoveID removes the filter with the given id, if present.
func (s *Set) RemoveID(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, f := range s.filters {
		if f.id == id {
			s.filters = append(s.filters[:i], s.filters[i+1:]...)
			return
		}
	}
}

// Len returns the number of filters in the set.
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.filters)
}

// Count returns the number of filters inspecting the given target.
func (s *Set) Count(target Target) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, f := range s.filters {
		if f.target == target {
			n++
		}
	}
	return n
}

// HasMessageFilters reports whether any message-target filter is present.
// Callers use this to skip building expensive message strings when no filter
// needs them.
func (s *Set) HasMessageFilters() bool {
	return s.Count(TargetMessage) > 0
}

// ShouldLog evaluates the event against the set. The event passes when every
// required filter matches and, if any non-required filters exist, at least
// one of them matches.
func (s *Set) ShouldLog(e event.Event) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	hasOptional := false
	optionalPassed := false

	for _, f := range s.filters {
		if f.required {
			if !f.Apply(e) {
				return false
			}
			continue
		}
		hasOptional = true
		if f.Apply(e) {
			optionalPassed = true
		}
	}

	return !hasOptional || optionalPassed
}
