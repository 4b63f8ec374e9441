// Package dispatch implements the process-wide queued-call dispatch: a
// concurrent map from goroutine identity to a FIFO of pending packaged
// calls, drained explicitly by its owning goroutine.
//
// Grounded on the teacher's internal/queue.go EffectQueue/SettledQueue
// enqueue-then-drain shape (Enqueue appends, a drain method clears-then-
// runs), rekeyed from effect-type to goroutine identity via goid.Get(), the
// same identity source the teacher uses for its per-goroutine runtime
// lookup (internal/runtime_default.go).
package dispatch

import (
	"sync"

	"github.com/petermattis/goid"
)

type bucket struct {
	mu   sync.Mutex
	jobs []func()
}

var buckets sync.Map // int64 (goroutine id) -> *bucket

func bucketFor(owner int64) *bucket {
	if v, ok := buckets.Load(owner); ok {
		return v.(*bucket)
	}
	b := &bucket{}
	actual, _ := buckets.LoadOrStore(owner, b)
	return actual.(*bucket)
}

// Enqueue appends fn to owner's FIFO bucket. fn runs the next time owner
// calls DispatchQueuedCalls.
func Enqueue(owner int64, fn func()) {
	b := bucketFor(owner)
	b.mu.Lock()
	b.jobs = append(b.jobs, fn)
	b.mu.Unlock()
}

// DispatchQueuedCalls drains the calling goroutine's own bucket, running
// every pending job in FIFO enqueue order. Jobs enqueued by a job running
// during this drain are not run until the next call.
func DispatchQueuedCalls() {
	b := bucketFor(goid.Get())

	b.mu.Lock()
	jobs := b.jobs
	b.jobs = nil
	b.mu.Unlock()

	for _, fn := range jobs {
		fn()
	}
}
