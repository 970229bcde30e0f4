package finder

import (
	"context"
	"errors"

	"github.com/randalmurphal/poeaa-registry/pkg/registry/finder/directory"
)

// DirectoryFinder looks people up in a directory.Store.
type DirectoryFinder struct {
	store directory.Store
}

var _ Finder = (*DirectoryFinder)(nil)

// NewDirectoryFinder returns a Finder reading from store.
// The finder does not own the store and never closes it.
func NewDirectoryFinder(store directory.Store) *DirectoryFinder {
	return &DirectoryFinder{store: store}
}

// FindByLastName implements Finder.
func (f *DirectoryFinder) FindByLastName(ctx context.Context, lastName string) (Result, error) {
	e, err := f.store.Get(ctx, lastName)
	if errors.Is(err, directory.ErrNotFound) {
		return NotFound(), nil
	}
	if err != nil {
		return NotFound(), &LookupError{Finder: string(KindDirectory), LastName: lastName, Err: err}
	}
	return Found(Person{FirstName: e.FirstName, LastName: e.LastName}), nil
}
