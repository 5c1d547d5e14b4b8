package index

import "sort"

// IDSet is a set of identifiers.
type IDSet map[string]struct{}

// NewIDSet creates a set holding ids.
func NewIDSet(ids ...string) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add inserts id in the set.
func (s IDSet) Add(id string) {
	s[id] = struct{}{}
}

// Contains reports whether id is in the set.
func (s IDSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of identifiers in the set.
func (s IDSet) Len() int {
	return len(s)
}

// Sorted returns the identifiers in lexicographic order.
func (s IDSet) Sorted() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Difference returns the identifiers of s that are not in other.
func (s IDSet) Difference(other IDSet) IDSet {
	diff := make(IDSet)
	for id := range s {
		if !other.Contains(id) {
			diff.Add(id)
		}
	}
	return diff
}
