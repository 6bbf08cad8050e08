/*
Package skipset defines the set of application IDs excluded from bulk alias
generation.
*/
package skipset

import "sort"

// Set holds the skipped application IDs. The zero value is not usable; use New.
type Set struct {
	ids map[string]struct{}
}

// New returns a set seeded with the given IDs.
func New(ids ...string) *Set {
	s := &Set{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return s
}

// Contains reports whether appID is in the set.
func (s *Set) Contains(appID string) bool {
	_, ok := s.ids[appID]
	return ok
}

// Add inserts appID. Adding an already-present ID is a no-op; the return
// value reports whether the set changed.
func (s *Set) Add(appID string) bool {
	if _, ok := s.ids[appID]; ok {
		return false
	}
	s.ids[appID] = struct{}{}
	return true
}

// Remove deletes appID. Removing an absent ID is a no-op; the return value
// reports whether the set changed.
func (s *Set) Remove(appID string) bool {
	if _, ok := s.ids[appID]; !ok {
		return false
	}
	delete(s.ids, appID)
	return true
}

// IDs returns the members sorted, for deterministic listing and persistence.
func (s *Set) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of skipped IDs.
func (s *Set) Len() int {
	return len(s.ids)
}
