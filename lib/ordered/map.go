// Package ordered provides an insertion-ordered map.
//
// Overwriting an existing key keeps the key at its original position; only
// keys that were never present (or were deleted) are appended. Iteration
// always follows that order.
package ordered

import "iter"

// Map is an insertion-ordered map. The zero value is not usable; call New.
//
// Map is not safe for concurrent mutation. Callers guard it the same way
// they would guard a built-in map.
type Map[K comparable, V any] struct {
	index map[K]int
	keys  []K
	vals  []V
}

// New returns an empty map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{index: make(map[K]int)}
}

// Set inserts or overwrites the value for key. An overwrite keeps the
// original position. Reports whether an existing value was replaced.
func (m *Map[K, V]) Set(key K, value V) bool {
	if i, ok := m.index[key]; ok {
		m.vals[i] = value
		return true
	}
	m.index[key] = len(m.keys)
	m.keys = append(m.keys, key)
	m.vals = append(m.vals, value)
	return false
}

// Get returns the value stored for key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	i, ok := m.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	return m.vals[i], true
}

// Delete removes key. Later entries shift down one position; their relative
// order is unchanged. Reports whether the key was present.
func (m *Map[K, V]) Delete(key K) bool {
	i, ok := m.index[key]
	if !ok {
		return false
	}
	delete(m.index, key)
	m.keys = append(m.keys[:i], m.keys[i+1:]...)
	m.vals = append(m.vals[:i], m.vals[i+1:]...)
	for j := i; j < len(m.keys); j++ {
		m.index[m.keys[j]] = j
	}
	return true
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return len(m.keys)
}

// Keys returns a copy of the keys in order.
func (m *Map[K, V]) Keys() []K {
	out := make([]K, len(m.keys))
	copy(out, m.keys)
	return out
}

// Values returns a copy of the values in order.
func (m *Map[K, V]) Values() []V {
	out := make([]V, len(m.vals))
	copy(out, m.vals)
	return out
}

// All iterates over the entries in order. The map must not be mutated while
// iterating.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i, k := range m.keys {
			if !yield(k, m.vals[i]) {
				return
			}
		}
	}
}
