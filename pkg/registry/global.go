package registry

import (
	"context"
	"sync/atomic"

	"github.com/randalmurphal/poeaa-registry/pkg/registry/finder"
	"github.com/randalmurphal/poeaa-registry/pkg/registry/observability"
)

// Registry is the instance held by a Global.
type Registry struct {
	holder
}

func newRegistry(newFinder func() finder.Finder) *Registry {
	r := &Registry{}
	r.init(newFinder)
	return r
}

// Global is a process-wide cell holding exactly one *Registry.
// The zero value is ready to use with default options; its instance is
// created on the first Current or Reinitialize.
type Global struct {
	slot atomic.Pointer[Registry]
	opts options
}

// NewGlobal creates a cell already populated with a default instance.
func NewGlobal(opts ...Option) *Global {
	g := &Global{opts: applyOptions(opts)}
	g.slot.Store(newRegistry(g.opts.newFinder))
	return g
}

// Reinitialize replaces the current instance with a fresh one holding a new
// default finder. Changes made to the previous instance are not carried over.
func (g *Global) Reinitialize() {
	opts := g.options()
	next := newRegistry(opts.newFinder)
	prev := g.slot.Swap(next)

	var prevID string
	if prev != nil {
		prevID = prev.ID()
	}
	opts.metrics.RecordReinitialize(context.Background(), observability.VariantGlobal)
	observability.LogReinitialize(opts.logger, observability.VariantGlobal, prevID, next.ID())
}

// Current returns the instance presently in the cell. It never returns nil.
func (g *Global) Current() *Registry {
	if r := g.slot.Load(); r != nil {
		return r
	}
	g.slot.CompareAndSwap(nil, newRegistry(g.options().newFinder))
	return g.slot.Load()
}

// options returns the cell's options, or the defaults for a zero Global.
func (g *Global) options() options {
	if g.opts.newFinder == nil {
		return defaultOptions()
	}
	return g.opts
}

var defaultGlobal atomic.Pointer[Global]

func init() {
	defaultGlobal.Store(NewGlobal())
}

// Default returns the process-wide Global used by Current and Reinitialize.
func Default() *Global {
	return defaultGlobal.Load()
}

// SetDefault installs g as the process-wide Global and returns the previous
// one. A nil g is ignored.
func SetDefault(g *Global) *Global {
	if g == nil {
		return Default()
	}
	return defaultGlobal.Swap(g)
}

// Current returns the instance held by the process-wide Global.
func Current() *Registry {
	return Default().Current()
}

// Reinitialize replaces the instance held by the process-wide Global.
func Reinitialize() {
	Default().Reinitialize()
}
