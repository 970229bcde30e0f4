// Package finder defines the person lookup capability held by registries
// and its variants.
package finder

import (
	"context"
	"errors"
	"fmt"

	"github.com/randalmurphal/poeaa-registry/pkg/registry/finder/directory"
)

// Finder resolves a last name to a person.
//
// A missing person is a NotFound Result, not an error. The error return is
// reserved for failures of a backing store.
type Finder interface {
	FindByLastName(ctx context.Context, lastName string) (Result, error)
}

// Kind selects a Finder variant.
type Kind string

// Finder kinds accepted by New.
const (
	KindAlways    Kind = "always"
	KindNever     Kind = "never"
	KindDirectory Kind = "directory"
)

// DefaultFirstName is the name AlwaysFinding fabricates.
const DefaultFirstName = "John"

// Sentinel errors for finder construction.
var (
	// ErrUnknownKind indicates New was asked for a kind it does not know.
	ErrUnknownKind = errors.New("unknown finder kind")

	// ErrNoStore indicates a directory finder was requested without a store.
	ErrNoStore = errors.New("directory finder requires a store")
)

// LookupError wraps a backing store failure during a lookup.
type LookupError struct {
	// Finder is the name of the finder that failed.
	Finder string
	// LastName is the name being looked up.
	LastName string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *LookupError) Error() string {
	return fmt.Sprintf("finder %s: lookup %q: %v", e.Finder, e.LastName, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *LookupError) Unwrap() error {
	return e.Err
}

type config struct {
	firstName string
	store     directory.Store
}

// Option configures New.
type Option func(*config)

// WithFirstName sets the first name an always-finding finder fabricates.
// Empty names are ignored.
func WithFirstName(name string) Option {
	return func(c *config) {
		if name != "" {
			c.firstName = name
		}
	}
}

// WithStore sets the store a directory finder reads from.
func WithStore(store directory.Store) Option {
	return func(c *config) {
		c.store = store
	}
}

// New builds the Finder variant named by kind.
func New(kind Kind, opts ...Option) (Finder, error) {
	cfg := config{firstName: DefaultFirstName}
	for _, opt := range opts {
		opt(&cfg)
	}

	switch kind {
	case KindAlways:
		return AlwaysFinding{FirstName: cfg.firstName}, nil
	case KindNever:
		return NeverFinding{}, nil
	case KindDirectory:
		if cfg.store == nil {
			return nil, ErrNoStore
		}
		return NewDirectoryFinder(cfg.store), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// Factory returns a constructor that builds a fresh Finder of kind on every
// call. The options are validated once, up front.
func Factory(kind Kind, opts ...Option) (func() Finder, error) {
	if _, err := New(kind, opts...); err != nil {
		return nil, err
	}
	return func() Finder {
		f, _ := New(kind, opts...)
		return f
	}, nil
}
