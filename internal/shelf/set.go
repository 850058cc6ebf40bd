// Package shelf classifies library paths into shelves: top-level library
// folders that act as collection categories. Folder names that look like
// misplaced artist or album directories are flagged as suspicious instead
// of being registered as shelves.
package shelf

import "sort"

// Default shelf names every library starts with.
const (
	DefaultShelf         = "Standard"
	DefaultIncomingShelf = "Incoming"
)

// Set holds the known shelf names.
type Set struct {
	names map[string]struct{}
}

// NewSet returns a set containing the given names.
func NewSet(names ...string) *Set {
	s := &Set{names: make(map[string]struct{}, len(names))}
	for _, n := range names {
		s.Add(n)
	}
	return s
}

// DefaultSet returns a set seeded with the default shelves.
func DefaultSet() *Set {
	return NewSet(DefaultShelf, DefaultIncomingShelf)
}

// Add inserts a name. Empty names are ignored.
func (s *Set) Add(name string) {
	if name == "" {
		return
	}
	s.names[name] = struct{}{}
}

// Remove deletes a name from the set.
func (s *Set) Remove(name string) {
	delete(s.names, name)
}

// Has reports whether the name is a known shelf.
func (s *Set) Has(name string) bool {
	_, ok := s.names[name]
	return ok
}

// Names returns all shelf names in sorted order.
func (s *Set) Names() []string {
	out := make([]string, 0, len(s.names))
	for n := range s.names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of known shelves.
func (s *Set) Len() int {
	return len(s.names)
}
