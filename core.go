package rocket

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/petermattis/goid"

	"github.com/fayce66/rocket/conn"
	"github.com/fayce66/rocket/dispatch"
	"github.com/fayce66/rocket/list"
)

// Policy selects a signal's threading model.
type Policy int

const (
	// SingleThreaded signals take no lock; all operations are presumed to
	// run on one goroutine (re-entrant emission on that goroutine is safe).
	SingleThreaded Policy = iota

	// MultiThreaded signals own a shared mutex and support queued
	// connections dispatched through a specific goroutine's mailbox.
	MultiThreaded
)

// ConnectFlags is a bitset of connection options.
type ConnectFlags uint8

const (
	// ConnectQueued routes the slot's execution through the connecting
	// goroutine's dispatch mailbox (MultiThreaded signals only).
	ConnectQueued ConnectFlags = 1 << iota

	// ConnectFirst inserts the new slot just after the signal's head
	// instead of just before its tail; it will not be visited by an
	// emission already in progress.
	ConnectFirst
)

// ErrSlotInvocation wraps one or more recovered slot panics. A signal's
// Invoke/Emit methods join every recovered panic from one emission behind
// this sentinel when CollectErrors is true.
var ErrSlotInvocation = errors.New("rocket: slot invocation error")

// core is the arity-independent machinery shared by every SignalN/
// VoidSignalN: the stable list of connection nodes, the signal's lock (nil
// in single-threaded mode), and the connection-sequence counter.
type core struct {
	mu  *sync.Mutex
	lst *list.List[*conn.Node]
	seq atomic.Uint64

	// CollectErrors controls whether a recovered slot panic is surfaced as
	// an error from Invoke/Emit (true, the default) or silently swallowed
	// — the deliberate trade spec.md §7 describes for hosts without
	// exception unwinding.
	CollectErrors bool
}

func newCore(policy Policy) *core {
	c := &core{lst: list.New[*conn.Node](), CollectErrors: true}
	if policy == MultiThreaded {
		c.mu = &sync.Mutex{}
	}
	return c
}

func (c *core) lock() {
	if c.mu != nil {
		c.mu.Lock()
	}
}

func (c *core) unlock() {
	if c.mu != nil {
		c.mu.Unlock()
	}
}

func (c *core) connect(slot any, flags ConnectFlags) *conn.Connection {
	c.lock()
	defer c.unlock()

	node := conn.NewNode(slot, c.mu, c.seq.Add(1))
	if flags&ConnectQueued != 0 && c.mu != nil {
		node.Queued = true
		node.OwnerThread = goid.Get()
	}

	var elem *list.Node[*conn.Node]
	if flags&ConnectFirst != 0 {
		elem = c.lst.InsertBefore(c.lst.Head().Next(), node)
	} else {
		elem = c.lst.PushBack(node)
	}
	return conn.NewConnection(elem, c.lst)
}

// Len returns the number of currently connected slots.
func (c *core) Len() int {
	c.lock()
	defer c.unlock()
	return c.lst.Len()
}

// Empty reports whether the signal has no connected slots.
func (c *core) Empty() bool {
	c.lock()
	defer c.unlock()
	return c.lst.Empty()
}

// DisconnectAll disconnects every currently connected slot.
func (c *core) DisconnectAll() {
	c.lock()
	defer c.unlock()
	c.lst.Clear()
}

type safeResult[R any] struct {
	value R
	err   error
}

// runNode executes call — the type-asserted invocation of n's slot — honoring
// n's queued-dispatch policy: a direct/same-goroutine call runs immediately,
// a queued call bound to another goroutine is packaged and enqueued, and
// since this variant has a return value the emitter waits for it.
func runNode[R any](n *conn.Node, collectErrors bool, call func() R) (R, error) {
	do := func() (R, error) { return safeCall(collectErrors, call) }

	if n.Queued && n.OwnerThread != goid.Get() {
		resultCh := make(chan safeResult[R], 1)
		dispatch.Enqueue(n.OwnerThread, func() {
			v, err := do()
			resultCh <- safeResult[R]{value: v, err: err}
		})
		res := <-resultCh
		return res.value, res.err
	}
	return do()
}

// runNodeVoid is runNode's counterpart for signals with no return value: a
// queued call bound to another goroutine is fire-and-forget, per spec.md
// §4.5/§9 — the emitter does not wait, and any error raised by that slot is
// not observed by this emission.
func runNodeVoid(n *conn.Node, collectErrors bool, call func()) error {
	safe := func() (err error) {
		defer func() {
			if r := recover(); r != nil && collectErrors {
				err = fmt.Errorf("%w: %v", ErrSlotInvocation, r)
			}
		}()
		call()
		return nil
	}

	if n.Queued && n.OwnerThread != goid.Get() {
		dispatch.Enqueue(n.OwnerThread, func() { safe() })
		return nil
	}
	return safe()
}

func safeCall[R any](collectErrors bool, call func() R) (ret R, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero R
			ret = zero
			if collectErrors {
				err = fmt.Errorf("%w: %v", ErrSlotInvocation, r)
			}
		}
	}()
	ret = call()
	return
}
