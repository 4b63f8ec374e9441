package rocket

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fayce66/rocket/collector"
	"github.com/fayce66/rocket/conn"
)

// Scenario A: two void slots run in connection order.
func TestScenarioA(t *testing.T) {
	sig := NewVoidSignal0(SingleThreaded)

	var out []string
	sig.Connect(func() { out = append(out, "A") }, 0)
	sig.Connect(func() { out = append(out, "B") }, 0)

	assert.NoError(t, sig.Emit())
	assert.Equal(t, []string{"A", "B"}, out)
}

// Scenario B: default collector keeps the last (only) return value.
func TestScenarioB(t *testing.T) {
	sig := NewSignal1[int, int](SingleThreaded)
	sig.Connect(func(x int) int { return x + 1 }, 0)

	got, err := sig.Invoke(41)
	assert.NoError(t, err)
	assert.Equal(t, collector.Optional[int]{Value: 42, Valid: true}, got)
}

// Scenario C: range collector returns every value in emission order.
func TestScenarioC(t *testing.T) {
	sig := NewSignal1[float64, float64](SingleThreaded)
	sig.Connect(math.Sin, 0)
	sig.Connect(math.Cos, 0)

	got, err := sig.InvokeRange(math.Pi)
	assert.NoError(t, err)
	assert.Equal(t, []float64{math.Sin(math.Pi), math.Cos(math.Pi)}, got)
}

// Scenario D: a slot that disconnects itself mid-emission runs exactly once,
// ever, regardless of how many more times the signal fires.
func TestScenarioD(t *testing.T) {
	sig := NewVoidSignal0(SingleThreaded)

	var out []string
	sig.Connect(func() {
		CurrentConnection().Disconnect()
		out = append(out, "once")
	}, 0)

	assert.NoError(t, sig.Emit())
	assert.NoError(t, sig.Emit())
	assert.NoError(t, sig.Emit())
	assert.Equal(t, []string{"once"}, out)
}

// Scenario E: abort_emission stops the current emission before later slots run.
func TestScenarioE(t *testing.T) {
	sig := NewVoidSignal0(SingleThreaded)

	var out []string
	sig.Connect(func() {
		AbortEmission()
		out = append(out, "first")
	}, 0)
	sig.Connect(func() { out = append(out, "second") }, 0)

	assert.NoError(t, sig.Emit())
	assert.Equal(t, []string{"first"}, out)
}

// Scenario F: a destroyed trackable's slots are disconnected and never invoked.
func TestScenarioF(t *testing.T) {
	sig := NewVoidSignal0(SingleThreaded)

	called := false
	receiver := &conn.Trackable{}
	sig.ConnectTracked(receiver, func() { called = true }, 0)

	assert.NoError(t, receiver.Close())
	assert.NoError(t, sig.Emit())
	assert.False(t, called)
}

// Invariant 1: disconnection is one-way.
func TestInvariantDisconnectIsOneWay(t *testing.T) {
	sig := NewVoidSignal0(SingleThreaded)
	h := sig.Connect(func() {}, 0)

	assert.True(t, h.IsConnected())
	h.Disconnect()
	assert.False(t, h.IsConnected())
	h.Disconnect()
	assert.False(t, h.IsConnected())
}

// Invariant 2: Len tracks connected nodes through connect and disconnect.
func TestInvariantLenTracksConnections(t *testing.T) {
	sig := NewVoidSignal0(SingleThreaded)
	assert.Equal(t, 0, sig.Len())
	assert.True(t, sig.Empty())

	h1 := sig.Connect(func() {}, 0)
	sig.Connect(func() {}, 0)
	assert.Equal(t, 2, sig.Len())

	h1.Disconnect()
	assert.Equal(t, 1, sig.Len())
}

// Invariant 3: emission order equals insertion order.
func TestInvariantEmissionOrderIsInsertionOrder(t *testing.T) {
	sig := NewVoidSignal0(SingleThreaded)
	var out []int
	for i := 0; i < 5; i++ {
		i := i
		sig.Connect(func() { out = append(out, i) }, 0)
	}

	assert.NoError(t, sig.Emit())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, out)
}

// Invariant 4: a slot that disconnects itself during emission is not
// re-invoked in the same emission, even when other slots still run after it.
func TestInvariantSelfDisconnectNotReinvokedSameEmission(t *testing.T) {
	sig := NewVoidSignal0(SingleThreaded)
	var out []string

	sig.Connect(func() {
		CurrentConnection().Disconnect()
		out = append(out, "self")
	}, 0)
	sig.Connect(func() { out = append(out, "other") }, 0)

	assert.NoError(t, sig.Emit())
	assert.Equal(t, []string{"self", "other"}, out)
	assert.Equal(t, 1, sig.Len())
}

// Invariant 5: connect_as_first_slot during emission is not visited this round.
func TestInvariantConnectFirstDuringEmissionSkipsCurrentRound(t *testing.T) {
	sig := NewVoidSignal0(SingleThreaded)
	var out []string

	sig.Connect(func() {
		out = append(out, "original")
		sig.Connect(func() { out = append(out, "inserted-first") }, ConnectFirst)
	}, 0)

	assert.NoError(t, sig.Emit())
	assert.Equal(t, []string{"original"}, out)

	out = nil
	assert.NoError(t, sig.Emit())
	assert.Equal(t, []string{"inserted-first", "original"}, out)
}

// Invariant 6: a handle outlives the signal's own references and keeps
// reporting disconnected once the underlying node is erased.
func TestInvariantHandleOutlivesSignal(t *testing.T) {
	var h *conn.Connection
	func() {
		sig := NewVoidSignal0(SingleThreaded)
		h = sig.Connect(func() {}, 0)
		sig.DisconnectAll()
	}()

	assert.False(t, h.IsConnected())
}

// Invariant 7: a trackable's destruction disconnects its handles before any
// later emission can reach them.
func TestInvariantTrackableDisconnectsBeforeReinvocation(t *testing.T) {
	sig := NewVoidSignal0(SingleThreaded)
	count := 0

	receiver := &conn.Trackable{}
	h := sig.ConnectTracked(receiver, func() { count++ }, 0)

	assert.NoError(t, sig.Emit())
	assert.Equal(t, 1, count)

	assert.NoError(t, receiver.Close())
	assert.False(t, h.IsConnected())

	assert.NoError(t, sig.Emit())
	assert.Equal(t, 1, count)
}

// Invariant 8: a blocked slot is skipped; others still run.
func TestInvariantBlockSkipsOnlyThatSlot(t *testing.T) {
	sig := NewVoidSignal0(SingleThreaded)
	var out []string

	blocked := sig.Connect(func() { out = append(out, "blocked") }, 0)
	sig.Connect(func() { out = append(out, "unblocked") }, 0)

	blocked.Block()
	assert.NoError(t, sig.Emit())
	assert.Equal(t, []string{"unblocked"}, out)

	out = nil
	blocked.Unblock()
	assert.NoError(t, sig.Emit())
	assert.Equal(t, []string{"blocked", "unblocked"}, out)
}

// Invariant 9: first/last/minimum/maximum/range collectors each report the
// expected aggregate over emission order.
func TestInvariantCollectors(t *testing.T) {
	build := func() *Signal1[int, int] {
		sig := NewSignal1[int, int](SingleThreaded)
		sig.Connect(func(x int) int { return x + 3 }, 0)
		sig.Connect(func(x int) int { return x + 1 }, 0)
		sig.Connect(func(x int) int { return x + 2 }, 0)
		return sig
	}

	first, err := build().InvokeFirst(0)
	assert.NoError(t, err)
	assert.Equal(t, collector.Optional[int]{Value: 3, Valid: true}, first)

	last, err := build().Invoke(0)
	assert.NoError(t, err)
	assert.Equal(t, collector.Optional[int]{Value: 2, Valid: true}, last)

	min, err := Min1[int, int](build(), 0)
	assert.NoError(t, err)
	assert.Equal(t, collector.Optional[int]{Value: 1, Valid: true}, min)

	max, err := Max1[int, int](build(), 0)
	assert.NoError(t, err)
	assert.Equal(t, collector.Optional[int]{Value: 3, Valid: true}, max)

	rng, err := build().InvokeRange(0)
	assert.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2}, rng)
}

// Invariant 10: in MT mode a queued slot connected from thread T runs only on
// thread T, only when T calls DispatchQueuedCalls, and in FIFO order.
func TestInvariantQueuedDispatchIsFIFOPerOwnerThread(t *testing.T) {
	sig := NewVoidSignal1[int](MultiThreaded)

	var mu sync.Mutex
	var out []int

	owner := make(chan struct{})
	drained := make(chan struct{})
	connected := make(chan struct{})

	go func() {
		sig.Connect(func(n int) {
			mu.Lock()
			out = append(out, n)
			mu.Unlock()
		}, ConnectQueued)
		close(connected)
		<-owner
		DispatchQueuedCalls()
		close(drained)
	}()
	<-connected

	for i := 0; i < 3; i++ {
		assert.NoError(t, sig.Emit(i))
	}

	mu.Lock()
	assert.Empty(t, out)
	mu.Unlock()

	close(owner)
	<-drained

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{0, 1, 2}, out)
}
