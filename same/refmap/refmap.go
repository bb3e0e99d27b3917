package refmap

// New builds an empty identity-keyed map.
func New[T, V any]() *Map[T, V] {
	return &Map[T, V]{entries: make(map[*T]V)}
}

// Map associates values with references, keyed by identity. Storing under a
// second handle to one object overwrites; storing under an equal-but-distinct
// object does not.
type Map[T, V any] struct {
	entries map[*T]V
}

// Add stores value under the identity of key.
func (m *Map[T, V]) Add(key *T, value V) {
	m.entries[key] = value
}

// Get retrieves the value stored under the identity of key.
func (m *Map[T, V]) Get(key *T) (V, error) {
	value, ok := m.entries[key]
	if !ok {
		var zero V
		return zero, ErrKeyNotFound
	}
	return value, nil
}

// Has reports whether a value is stored under the identity of key.
func (m *Map[T, V]) Has(key *T) bool {
	_, ok := m.entries[key]
	return ok
}

// Remove deletes the value stored under the identity of key.
func (m *Map[T, V]) Remove(key *T) {
	delete(m.entries, key)
}

// Len returns the number of distinct keys.
func (m *Map[T, V]) Len() int {
	return len(m.entries)
}

// Clear removes all entries.
func (m *Map[T, V]) Clear() {
	clear(m.entries)
}

// Keys returns the key references in unspecified order.
func (m *Map[T, V]) Keys() []*T {
	keys := make([]*T, 0, len(m.entries))
	for p := range m.entries {
		keys = append(keys, p)
	}
	return keys
}

// Each calls fn for every entry until fn returns false.
func (m *Map[T, V]) Each(fn func(*T, V) bool) {
	for p, v := range m.entries {
		if !fn(p, v) {
			return
		}
	}
}
