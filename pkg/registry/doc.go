/*
Package registry provides two variants of the Registry pattern around a
person lookup capability: a process-wide Global registry and a
worker-scoped ThreadLocal registry.

# Global Registry

A Global is a single cell holding the current *Registry. Every caller that
asks for Current sees the same instance until someone calls Reinitialize,
which swaps in a fresh instance with a default finder:

	reg := registry.Current()
	reg.SetPersonFinder(finder.NeverFinding{})

	res, _ := registry.Current().PersonFinder().FindByLastName(ctx, "Doe")
	fmt.Println(res.Found()) // false

	registry.Reinitialize()
	res, _ = registry.Current().PersonFinder().FindByLastName(ctx, "Doe")
	fmt.Println(res) // John Doe

The package-level Current and Reinitialize operate on a default Global
created at package init. Tests and applications that want an explicitly
owned cell create their own with NewGlobal and pass it around.

The slot is an atomic pointer: a reader observes either the old or the new
instance in full, never a mix. Reinitialize replaces the instance, it never
merges state from the previous one. Holders of the old instance may keep
using it; it is simply no longer reachable through the cell.

# Worker-Scoped Registry

Go does not expose goroutine identity, so a worker's identity travels in its
context.Context. NewWorker derives a context carrying a fresh WorkerID;
contexts without one belong to RootWorker.

Every context that never went through NewWorker maps to the same
RootWorker slot, so goroutines started with such a context share one
instance. Give each spawned goroutine its own worker, either with
NewWorker or by starting it through a Group:

	go func(ctx context.Context) {
	    reg := tl.Current(ctx) // this goroutine's own instance
	    _ = reg
	}(registry.NewWorker(ctx))

	tl := registry.NewThreadLocal()

	g := registry.NewGroup(ctx, tl)
	g.Go(func(ctx context.Context) error {
	    reg := tl.Current(ctx)       // created lazily, tagged with this worker's ID
	    same := tl.Current(ctx)      // same instance
	    _ = reg == same              // true
	    tl.Reinitialize(ctx)         // fresh instance for this worker only
	    return nil
	})
	err := g.Wait()

Each instance carries a Tag recorded when it was created; it identifies the
creating worker and never changes. Tags exist to make isolation observable,
nothing routes on them.

# Wiring From Configuration

Setup turns config.Settings into a Global and a ThreadLocal sharing one
finder factory, logger, and metrics recorder.
*/
package registry
