package registry

import (
	"context"
	"sync"
)

// countingMetrics counts lifecycle events per variant.
type countingMetrics struct {
	mu      sync.Mutex
	reinit  map[string]int
	created map[string]int
	lookups int
}

func (m *countingMetrics) RecordReinitialize(_ context.Context, variant string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.reinit == nil {
		m.reinit = make(map[string]int)
	}
	m.reinit[variant]++
}

func (m *countingMetrics) RecordSlotCreated(_ context.Context, variant string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.created == nil {
		m.created = make(map[string]int)
	}
	m.created[variant]++
}

func (m *countingMetrics) RecordLookup(context.Context, string, bool, float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lookups++
}

func (m *countingMetrics) createdCount(variant string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.created[variant]
}
