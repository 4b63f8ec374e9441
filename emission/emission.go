// Package emission implements the per-goroutine emission context: the
// {current-connection, abort-flag} pair a slot can query to answer "who am
// I?" and "stop emission" without the signal plumbing either through.
//
// Grounded on the teacher's sig/sig.go (activeOwners sync.Map keyed by
// goid.Get()) and internal/context.go's push/restore-on-defer scoping
// discipline, adapted from "current owner/computation" to "current
// connection/abort flag".
package emission

import (
	"sync"

	"github.com/petermattis/goid"

	"github.com/fayce66/rocket/conn"
)

type context struct {
	mu      sync.Mutex
	current *conn.Connection
	aborted bool
}

var contexts sync.Map // int64 (goroutine id) -> *context

func current() *context {
	gid := goid.Get()
	if v, ok := contexts.Load(gid); ok {
		return v.(*context)
	}
	ctx := &context{}
	actual, _ := contexts.LoadOrStore(gid, ctx)
	return actual.(*context)
}

// Current returns a handle to the currently executing slot's node. Outside a
// slot it returns an empty handle rather than nil, matching the spec's
// "valid only inside a slot" contract.
func Current() *conn.Connection {
	ctx := current()
	ctx.mu.Lock()
	defer ctx.mu.Unlock()
	if ctx.current == nil {
		return &conn.Connection{}
	}
	return ctx.current
}

// Abort sets the innermost emission's abort flag on the calling goroutine.
// It does not disconnect remaining slots; they simply are not invoked this
// emission.
func Abort() {
	ctx := current()
	ctx.mu.Lock()
	defer ctx.mu.Unlock()
	ctx.aborted = true
}

// Aborted reports whether the calling goroutine's innermost emission has
// been aborted.
func Aborted() bool {
	ctx := current()
	ctx.mu.Lock()
	defer ctx.mu.Unlock()
	return ctx.aborted
}

// BeginEmission pushes a fresh abort scope (saving and resetting the
// abort flag) and returns a function that restores the prior value. Nested
// emissions on the same goroutine each get their own scope, so
// Abort affects only the innermost one.
func BeginEmission() (end func()) {
	ctx := current()
	ctx.mu.Lock()
	prev := ctx.aborted
	ctx.aborted = false
	ctx.mu.Unlock()

	return func() {
		ctx.mu.Lock()
		ctx.aborted = prev
		ctx.mu.Unlock()
	}
}

// BeginSlot pushes c as the current connection for the duration of one slot
// call and returns a function that restores the previous value.
func BeginSlot(c *conn.Connection) (end func()) {
	ctx := current()
	ctx.mu.Lock()
	prev := ctx.current
	ctx.current = c
	ctx.mu.Unlock()

	return func() {
		ctx.mu.Lock()
		ctx.current = prev
		ctx.mu.Unlock()
	}
}
