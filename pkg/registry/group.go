package registry

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Group runs functions on their own workers and waits for them.
// Each function gets a context carrying a fresh WorkerID; when it returns,
// every Releaser given to NewGroup drops that worker's state.
type Group struct {
	eg        *errgroup.Group
	ctx       context.Context
	releasers []Releaser
}

// NewGroup returns a Group whose workers derive from ctx. The first
// function to return an error cancels the context passed to the others.
func NewGroup(ctx context.Context, releasers ...Releaser) *Group {
	eg, egCtx := errgroup.WithContext(ctx)
	return &Group{eg: eg, ctx: egCtx, releasers: releasers}
}

// SetLimit bounds the number of workers running at once.
// A negative value means no limit.
func (g *Group) SetLimit(n int) {
	g.eg.SetLimit(n)
}

// Go runs fn on a new worker.
func (g *Group) Go(fn func(ctx context.Context) error) {
	wctx := NewWorker(g.ctx)
	g.eg.Go(func() error {
		defer g.release(wctx)
		return fn(wctx)
	})
}

// Wait blocks until every worker has returned and reports the first error.
func (g *Group) Wait() error {
	return g.eg.Wait()
}

func (g *Group) release(ctx context.Context) {
	for _, r := range g.releasers {
		r.Release(ctx)
	}
}
