package index

import "strings"

// Denylist holds substrings of identifiers that must never be reported as unused.
type Denylist []string

// Allows reports whether id contains none of the denylisted substrings.
func (d Denylist) Allows(id string) bool {
	for _, entry := range d {
		if strings.Contains(id, entry) {
			return false
		}
	}
	return true
}

// Filter returns the identifiers of ids allowed by the denylist.
func (d Denylist) Filter(ids IDSet) IDSet {
	filtered := make(IDSet, len(ids))
	for id := range ids {
		if d.Allows(id) {
			filtered.Add(id)
		}
	}
	return filtered
}
