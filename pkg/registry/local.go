package registry

import (
	"context"
	"slices"

	"github.com/randalmurphal/poeaa-registry/pkg/registry/finder"
	"github.com/randalmurphal/poeaa-registry/pkg/registry/observability"
	"github.com/randalmurphal/poeaa-registry/pkg/registry/slots"
)

// LocalRegistry is the instance held in one worker's slot of a ThreadLocal.
type LocalRegistry struct {
	holder
	tag string
}

func newLocalRegistry(id WorkerID, newFinder func() finder.Finder) *LocalRegistry {
	r := &LocalRegistry{tag: id.String()}
	r.init(newFinder)
	return r
}

// Tag returns the ID of the worker that created this instance.
func (r *LocalRegistry) Tag() string {
	return r.tag
}

// Releaser drops whatever state it keeps for the worker in ctx.
type Releaser interface {
	Release(ctx context.Context)
}

// ThreadLocal keeps one *LocalRegistry per worker. Workers never see each
// other's instances.
type ThreadLocal struct {
	slots *slots.Map[WorkerID, *LocalRegistry]
	opts  options
}

var _ Releaser = (*ThreadLocal)(nil)

// NewThreadLocal creates a registry with every worker slot empty.
func NewThreadLocal(opts ...Option) *ThreadLocal {
	return &ThreadLocal{
		slots: slots.New[WorkerID, *LocalRegistry](),
		opts:  applyOptions(opts),
	}
}

// Reinitialize stores a fresh instance, tagged with the calling worker's ID,
// in the calling worker's slot. Other workers' slots are untouched.
func (t *ThreadLocal) Reinitialize(ctx context.Context) {
	id := WorkerFrom(ctx)
	next := newLocalRegistry(id, t.opts.newFinder)

	var prevID string
	if prev, ok := t.slots.Get(id); ok {
		prevID = prev.ID()
	}
	t.slots.Store(id, next)

	t.opts.metrics.RecordReinitialize(ctx, observability.VariantThreadLocal)
	observability.LogReinitialize(
		observability.EnrichLogger(t.opts.logger, observability.VariantThreadLocal, id.String()),
		observability.VariantThreadLocal, prevID, next.ID())
}

// Current returns the calling worker's instance, creating it on first use.
// Repeated calls from one worker return the same instance until that worker
// calls Reinitialize.
func (t *ThreadLocal) Current(ctx context.Context) *LocalRegistry {
	id := WorkerFrom(ctx)
	r, created := t.slots.GetOrCreate(id, func() *LocalRegistry {
		return newLocalRegistry(id, t.opts.newFinder)
	})
	if r == nil {
		panic(ErrUninitialized)
	}
	if created {
		t.opts.metrics.RecordSlotCreated(ctx, observability.VariantThreadLocal)
		observability.LogSlotCreated(t.opts.logger, r.Tag(), r.ID())
	}
	return r
}

// Release empties the calling worker's slot. The next Current from that
// worker creates a new instance.
func (t *ThreadLocal) Release(ctx context.Context) {
	id := WorkerFrom(ctx)
	if t.slots.Delete(id) {
		observability.LogSlotReleased(t.opts.logger, id.String())
	}
}

// ReleaseAll empties every worker slot and returns how many were dropped.
func (t *ThreadLocal) ReleaseAll() int {
	n := 0
	t.slots.Range(func(id WorkerID, _ *LocalRegistry) bool {
		if t.slots.Delete(id) {
			n++
			observability.LogSlotReleased(t.opts.logger, id.String())
		}
		return true
	})
	return n
}

// Workers returns the IDs of workers with a populated slot, in ascending order.
func (t *ThreadLocal) Workers() []WorkerID {
	ids := t.slots.Keys()
	slices.Sort(ids)
	return ids
}

// Len returns the number of populated worker slots.
func (t *ThreadLocal) Len() int {
	return t.slots.Len()
}
