package conn

import "github.com/fayce66/rocket/list"

// Connection is a shared handle to a connection node. It is the currency of
// user-visible slot lifetime management: it outlives its owning signal's
// list membership, and its observable state switches from connected to
// disconnected atomically with respect to emissions.
//
// The zero value (and a nil *Connection) behave as the spec's "empty
// handle": IsConnected reports false and the mutators are no-ops. This is
// what CurrentConnection returns when called outside a slot.
type Connection struct {
	elem *list.Node[*Node]
	lst  *list.List[*Node]
}

// NewConnection wraps elem, a node already linked into lst, as a handle.
func NewConnection(elem *list.Node[*Node], lst *list.List[*Node]) *Connection {
	return &Connection{elem: elem, lst: lst}
}

// Node returns the underlying connection node, or nil for an empty handle.
func (c *Connection) Node() *Node {
	if c == nil || c.elem == nil {
		return nil
	}
	return c.elem.Value
}

// IsConnected reports whether the node is still linked into its signal.
func (c *Connection) IsConnected() bool {
	return c != nil && c.elem != nil && c.elem.Connected()
}

// IsBlocked reports the node's blocked flag. A disconnected node can still
// be queried.
func (c *Connection) IsBlocked() bool {
	n := c.Node()
	return n != nil && n.Blocked()
}

// Block sets the node's blocked flag, taking the signal's lock first in
// multi-threaded mode so the flag is ordered against an in-flight emission.
func (c *Connection) Block() {
	n := c.Node()
	if n == nil {
		return
	}
	if n.Lock != nil {
		n.Lock.Lock()
		defer n.Lock.Unlock()
	}
	n.SetBlocked(true)
}

// Unblock clears the node's blocked flag lock-free; it is a plain boolean
// observed by the emission loop.
func (c *Connection) Unblock() {
	if n := c.Node(); n != nil {
		n.SetBlocked(false)
	}
}

// Disconnect unlinks the node from the signal's list. Safe to call more than
// once, and safe on an already-disconnected or empty handle.
func (c *Connection) Disconnect() {
	if c == nil || c.elem == nil || c.lst == nil {
		return
	}
	n := c.elem.Value
	if n.Lock != nil {
		n.Lock.Lock()
		defer n.Lock.Unlock()
	}
	c.lst.Erase(c.elem)
}

// Equal reports whether a and b refer to the same node.
func (c *Connection) Equal(o *Connection) bool {
	if c == nil || o == nil {
		return c == o
	}
	return c.elem == o.elem
}

// Less orders connections by connection sequence number, for use in sorted
// containers; it has no meaning beyond providing a stable total order.
func (c *Connection) Less(o *Connection) bool {
	cn, on := c.Node(), o.Node()
	if cn == nil {
		return on != nil
	}
	if on == nil {
		return false
	}
	return cn.seq < on.seq
}

// Swap exchanges the nodes referred to by a and b.
func Swap(a, b *Connection) {
	a.elem, b.elem = b.elem, a.elem
	a.lst, b.lst = b.lst, a.lst
}
