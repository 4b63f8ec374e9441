package rocket

import (
	"github.com/fayce66/rocket/conn"
	"github.com/fayce66/rocket/dispatch"
	"github.com/fayce66/rocket/emission"
)

// CurrentConnection returns a handle to the currently executing slot's
// connection. Valid only from inside a slot; outside one it returns an
// empty handle rather than nil.
func CurrentConnection() *conn.Connection {
	return emission.Current()
}

// AbortEmission stops the calling goroutine's innermost emission after the
// current slot returns. Slots already skipped or visited are unaffected;
// remaining slots in this emission are simply not invoked.
func AbortEmission() {
	emission.Abort()
}

// DispatchQueuedCalls runs every call queued against the calling goroutine
// since the last call, in FIFO order. Required to make progress on any
// signal connected with ConnectQueued from this goroutine.
func DispatchQueuedCalls() {
	dispatch.DispatchQueuedCalls()
}
