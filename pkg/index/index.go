package index

// ResourceIndex is a read-only view over the records of one indexing run.
// Every derived view is recomputed on each call.
type ResourceIndex struct {
	files []FileRecord
}

// New creates a ResourceIndex over a copy of records.
func New(records []FileRecord) *ResourceIndex {
	return &ResourceIndex{files: append([]FileRecord(nil), records...)}
}

// Merge concatenates the record lists of several walks.
func Merge(lists ...[]FileRecord) []FileRecord {
	var total int
	for _, list := range lists {
		total += len(list)
	}

	merged := make([]FileRecord, 0, total)
	for _, list := range lists {
		merged = append(merged, list...)
	}
	return merged
}

// Files returns a copy of the underlying records.
func (r *ResourceIndex) Files() []FileRecord {
	return append([]FileRecord(nil), r.files...)
}

// Definitions maps each declared identifier to the paths declaring it.
func (r *ResourceIndex) Definitions() *MultiMap {
	m := NewMultiMap()
	for _, f := range r.files {
		for _, id := range f.Declared {
			m.Add(id, f.Path)
		}
	}
	return m
}

// Usages maps each referenced identifier to the paths referencing it.
func (r *ResourceIndex) Usages() *MultiMap {
	m := NewMultiMap()
	for _, f := range r.files {
		for _, id := range f.Referenced {
			m.Add(id, f.Path)
		}
	}
	return m
}

// DefinedIDs returns the set of declared identifiers.
func (r *ResourceIndex) DefinedIDs() IDSet {
	s := make(IDSet)
	for _, f := range r.files {
		for _, id := range f.Declared {
			s.Add(id)
		}
	}
	return s
}

// UsedIDs returns the set of referenced identifiers.
func (r *ResourceIndex) UsedIDs() IDSet {
	s := make(IDSet)
	for _, f := range r.files {
		for _, id := range f.Referenced {
			s.Add(id)
		}
	}
	return s
}

// UnusedIDs returns the declared identifiers that are never referenced.
func (r *ResourceIndex) UnusedIDs() IDSet {
	return r.DefinedIDs().Difference(r.UsedIDs())
}
