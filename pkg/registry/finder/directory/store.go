// Package directory provides person storage backing the directory finder.
package directory

import (
	"context"
	"errors"
	"fmt"
)

// Entry is one stored person. LastName is the key: a directory holds at
// most one entry per last name.
type Entry struct {
	FirstName string
	LastName  string
}

// Store persists directory entries.
// Implementations must be safe for concurrent use.
type Store interface {
	// Put stores e, overwriting any entry with the same last name.
	Put(ctx context.Context, e Entry) error

	// Get returns the entry for lastName.
	// Returns ErrNotFound if no entry exists.
	Get(ctx context.Context, lastName string) (Entry, error)

	// List returns all entries ordered by last name, or nil if there are none.
	List(ctx context.Context) ([]Entry, error)

	// Delete removes the entry for lastName.
	// Returns nil if no entry exists.
	Delete(ctx context.Context, lastName string) error

	// Close releases any resources (connections, files).
	Close() error
}

// Sentinel errors for directory operations.
var (
	// ErrNotFound indicates no entry exists for the last name.
	ErrNotFound = errors.New("directory entry not found")

	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("directory store closed")

	// ErrInvalidEntry indicates an entry without a last name.
	ErrInvalidEntry = errors.New("directory entry requires a last name")
)

// Drivers accepted by Open.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

// Open creates a store for the named driver. path is ignored for the
// memory driver; for sqlite it is a file path or ":memory:".
func Open(driver, path string) (Store, error) {
	switch driver {
	case "", DriverMemory:
		return NewMemoryStore(), nil
	case DriverSQLite:
		if path == "" {
			return nil, fmt.Errorf("sqlite directory requires a path")
		}
		return NewSQLiteStore(path)
	default:
		return nil, fmt.Errorf("unknown directory driver %q", driver)
	}
}

func validate(e Entry) error {
	if e.LastName == "" {
		return ErrInvalidEntry
	}
	return nil
}
