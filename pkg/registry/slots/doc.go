// Package slots provides a concurrency-safe map of per-key slots with
// get-or-create semantics.
//
// The worker-scoped registry keeps one slot per worker ID in a Map. Each
// worker only ever touches its own key, but workers come and go concurrently,
// so the map itself is guarded with a sync.RWMutex.
//
// # Lazy Population
//
// GetOrCreate populates an empty slot with the result of a factory:
//
//	m := slots.New[uint64, *Session]()
//	s := m.GetOrCreate(7, func() *Session {
//	    return newSession("7")
//	})
//
// The factory runs at most once per key, even when several goroutines race
// on the same empty slot. Store replaces a slot unconditionally and Delete
// empties it again.
//
// # Iteration
//
// Range walks a snapshot taken under the read lock, so callbacks may call
// Store or Delete without deadlocking.
package slots
