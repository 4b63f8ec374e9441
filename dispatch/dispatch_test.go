package dispatch

import (
	"sync"
	"testing"

	"github.com/petermattis/goid"
	"github.com/stretchr/testify/assert"
)

func TestDispatchQueuedCallsDrainsOwnBucketInFIFOOrder(t *testing.T) {
	var order []int
	owner := goid.Get()

	Enqueue(owner, func() { order = append(order, 1) })
	Enqueue(owner, func() { order = append(order, 2) })
	Enqueue(owner, func() { order = append(order, 3) })

	DispatchQueuedCalls()

	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestDispatchQueuedCallsOnlyDrainsCallingGoroutine(t *testing.T) {
	var mu sync.Mutex
	ran := false

	done := make(chan struct{})
	go func() {
		defer close(done)
		Enqueue(goid.Get(), func() {
			mu.Lock()
			ran = true
			mu.Unlock()
		})
	}()
	<-done

	// draining here, on a different goroutine, must not run the other
	// goroutine's job.
	DispatchQueuedCalls()

	mu.Lock()
	defer mu.Unlock()
	assert.False(t, ran)
}

func TestDispatchQueuedCallsIsIdempotentWhenEmpty(t *testing.T) {
	assert.NotPanics(t, func() { DispatchQueuedCalls() })
}
