package registry

import "errors"

// ErrUninitialized indicates a worker slot was still empty after lazy
// population. It signals a broken invariant in slot storage and is raised
// as a panic, never returned.
var ErrUninitialized = errors.New("registry slot uninitialized")
