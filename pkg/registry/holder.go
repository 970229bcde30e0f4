package registry

import (
	"sync"

	"github.com/google/uuid"
	"github.com/randalmurphal/poeaa-registry/pkg/registry/finder"
)

// holder is the state shared by both registry variants: an instance ID and
// the person finder reference.
type holder struct {
	id        string
	newFinder func() finder.Finder

	mu           sync.RWMutex
	personFinder finder.Finder
}

func (h *holder) init(newFinder func() finder.Finder) {
	h.id = uuid.New().String()
	h.newFinder = newFinder
	h.personFinder = newFinder()
}

// ID returns the unique identifier of this instance.
func (h *holder) ID() string {
	return h.id
}

// PersonFinder returns the finder currently held by this instance.
func (h *holder) PersonFinder() finder.Finder {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.personFinder
}

// SetPersonFinder replaces the held finder. Passing nil restores the
// instance's default finder.
func (h *holder) SetPersonFinder(f finder.Finder) {
	if f == nil {
		f = h.newFinder()
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.personFinder = f
}
