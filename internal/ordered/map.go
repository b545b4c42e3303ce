// Package ordered provides a small insertion-ordered map.
//
// The Program aggregates (imports, aliases, circuits, functions, global
// consts) must survive reduction with their key sets and iteration order
// intact, which Go's built-in map cannot guarantee. This wrapper keeps keys
// in first-insertion order; re-setting an existing key updates the value in
// place without moving it.
package ordered

// Map is an insertion-ordered map from K to V.
//
// The zero value is ready to use. Map is not safe for concurrent mutation.
type Map[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// NewMap returns an empty ordered map.
func NewMap[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{values: make(map[K]V)}
}

// Set inserts or updates the value for key. A new key is appended to the
// iteration order; an existing key keeps its position.
func (m *Map[K, V]) Set(key K, value V) {
	if m.values == nil {
		m.values = make(map[K]V)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value for key and whether it was present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.values[key]
	return ok
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return len(m.keys)
}

// Keys returns the keys in insertion order. The slice is a copy.
func (m *Map[K, V]) Keys() []K {
	out := make([]K, len(m.keys))
	copy(out, m.keys)
	return out
}

// Range calls fn for each entry in insertion order. Iteration stops if fn
// returns false.
func (m *Map[K, V]) Range(fn func(key K, value V) bool) {
	for _, k := range m.keys {
		if !fn(k, m.values[k]) {
			return
		}
	}
}
