package slots

import "sync"

// Map holds one value per key and is safe for concurrent use.
type Map[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]V
}

// New creates an empty Map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		entries: make(map[K]V),
	}
}

// Get returns the value in the slot for key and whether the slot is populated.
func (m *Map[K, V]) Get(key K) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.entries[key]
	return v, ok
}

// Store overwrites the slot for key.
func (m *Map[K, V]) Store(key K, value V) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
}

// GetOrCreate returns the value in the slot for key, populating it with
// factory first if the slot is empty. The boolean reports whether factory ran.
func (m *Map[K, V]) GetOrCreate(key K, factory func() V) (V, bool) {
	m.mu.RLock()
	v, ok := m.entries[key]
	m.mu.RUnlock()
	if ok {
		return v, false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Another goroutine may have filled the slot between the two locks.
	if v, ok := m.entries[key]; ok {
		return v, false
	}

	v = factory()
	m.entries[key] = v
	return v, true
}

// Delete empties the slot for key. Deleting an empty slot is a no-op.
// It reports whether a value was removed.
func (m *Map[K, V]) Delete(key K) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[key]; !ok {
		return false
	}
	delete(m.entries, key)
	return true
}

// Len returns the number of populated slots.
func (m *Map[K, V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Keys returns the keys of all populated slots in no particular order.
func (m *Map[K, V]) Keys() []K {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]K, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	return keys
}

// Range calls fn for every populated slot until fn returns false.
// It iterates over a snapshot, so fn may mutate the map.
func (m *Map[K, V]) Range(fn func(K, V) bool) {
	m.mu.RLock()
	snapshot := make(map[K]V, len(m.entries))
	for k, v := range m.entries {
		snapshot[k] = v
	}
	m.mu.RUnlock()

	for k, v := range snapshot {
		if !fn(k, v) {
			return
		}
	}
}
