// Package conn implements the connection node and connection handle: the
// external, reference-counted currency of slot lifetime management, plus
// the scoped-disconnect and trackable-receiver helpers built on top of it.
package conn

import (
	"sync"
	"sync/atomic"
)

// Node is a connection's payload inside a signal's stable list: the erased
// slot callable, its blocked flag, and — in multi-threaded mode — the
// identity of the goroutine it must be dispatched to and a shared back-
// reference to the owning signal's lock.
type Node struct {
	// Slot holds the erased callable; the signal package type-asserts it
	// back to the concrete func(Args...) R it connected.
	Slot any

	// OwnerThread is the goroutine id a queued connection must execute on.
	// Meaningless unless Queued is set.
	OwnerThread int64

	// Queued marks this node as a queued connection (MT only).
	Queued bool

	// Lock is the signal's shared mutex, or nil in single-threaded mode.
	// Kept on the node itself so Disconnect stays well-defined even after
	// the owning signal has gone away.
	Lock *sync.Mutex

	seq     uint64
	blocked atomic.Bool
}

// NewNode constructs a node carrying slot, to be linked into a signal's list
// by the caller. seq orders connections for Connection.Less.
func NewNode(slot any, lock *sync.Mutex, seq uint64) *Node {
	return &Node{Slot: slot, Lock: lock, seq: seq}
}

// Blocked reports the node's blocked flag.
func (n *Node) Blocked() bool { return n.blocked.Load() }

// SetBlocked sets the node's blocked flag. The emission loop skips blocked
// nodes without removing them.
func (n *Node) SetBlocked(v bool) { n.blocked.Store(v) }
