package registry

import (
	"context"
	"strconv"
	"sync/atomic"
)

// WorkerID identifies a worker: a goroutine, or a tree of goroutines, that
// shares one context lineage.
type WorkerID uint64

// RootWorker is the ID of any context that never passed through NewWorker.
const RootWorker WorkerID = 1

// String returns the decimal form used as an instance tag.
func (id WorkerID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

var lastWorker atomic.Uint64

func init() {
	lastWorker.Store(uint64(RootWorker))
}

type workerKey struct{}

// NewWorker returns a child of ctx identified by a fresh, process-unique
// WorkerID.
func NewWorker(ctx context.Context) context.Context {
	return WithWorker(ctx, WorkerID(lastWorker.Add(1)))
}

// WithWorker returns a child of ctx identified by id. Callers that pick
// their own IDs are responsible for keeping them unique.
func WithWorker(ctx context.Context, id WorkerID) context.Context {
	return context.WithValue(ctx, workerKey{}, id)
}

// WorkerFrom returns the worker identity carried by ctx, or RootWorker.
func WorkerFrom(ctx context.Context) WorkerID {
	if ctx == nil {
		return RootWorker
	}
	if id, ok := ctx.Value(workerKey{}).(WorkerID); ok {
		return id
	}
	return RootWorker
}
