package index

// MultiMap maps identifiers to an ordered list of values.
// Keys keep their first insertion order and values keep their insertion order, duplicates included.
type MultiMap struct {
	keys   []string
	values map[string][]string
}

// NewMultiMap creates an empty MultiMap.
func NewMultiMap() *MultiMap {
	return &MultiMap{values: make(map[string][]string)}
}

// Add appends value to the list of key.
func (m *MultiMap) Add(key, value string) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = append(m.values[key], value)
}

// Get returns the values of key, or nil if the key is absent.
func (m *MultiMap) Get(key string) []string {
	values, ok := m.values[key]
	if !ok {
		return nil
	}
	return append([]string(nil), values...)
}

// Keys returns the keys in first insertion order.
func (m *MultiMap) Keys() []string {
	return append([]string(nil), m.keys...)
}

// Len returns the number of distinct keys.
func (m *MultiMap) Len() int {
	return len(m.keys)
}
