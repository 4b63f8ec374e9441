package conn

import "sync"

// ScopedConnection wraps a Connection and disconnects it when Close is
// called. Go has no destructors, so where the source relies on scope exit to
// disconnect, callers here are expected to `defer sc.Close()` — the same
// explicit-lifecycle discipline the teacher's owner.Dispose uses in place of
// a destructor.
type ScopedConnection struct {
	*Connection
}

// NewScopedConnection wraps c.
func NewScopedConnection(c *Connection) *ScopedConnection {
	return &ScopedConnection{Connection: c}
}

// Close disconnects the wrapped connection. Idempotent.
func (s *ScopedConnection) Close() error {
	s.Disconnect()
	return nil
}

// ScopedConnectionContainer aggregates connections and disconnects all of
// them when Close is called.
type ScopedConnectionContainer struct {
	mu    sync.Mutex
	conns []*Connection
}

// Add registers conn to be disconnected on Close.
func (c *ScopedConnectionContainer) Add(conn *Connection) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conns = append(c.conns, conn)
}

// Close disconnects every registered connection and empties the container.
func (c *ScopedConnectionContainer) Close() error {
	c.mu.Lock()
	conns := c.conns
	c.conns = nil
	c.mu.Unlock()

	for _, conn := range conns {
		conn.Disconnect()
	}
	return nil
}

// ScopedConnectionBlocker blocks a connection for the scope's lifetime,
// unblocking it on Close only if it was the one to set the flag — nested
// blockers on an already-blocked connection are idempotent.
type ScopedConnectionBlocker struct {
	conn     *Connection
	didBlock bool
}

// NewScopedConnectionBlocker blocks c unless it is already blocked.
func NewScopedConnectionBlocker(c *Connection) *ScopedConnectionBlocker {
	b := &ScopedConnectionBlocker{conn: c}
	if !c.IsBlocked() {
		c.Block()
		b.didBlock = true
	}
	return b
}

// Close unblocks the connection if this blocker was the one that blocked it.
func (b *ScopedConnectionBlocker) Close() error {
	if b.didBlock {
		b.conn.Unblock()
	}
	return nil
}
