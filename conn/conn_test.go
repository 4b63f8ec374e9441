package conn

import (
	"testing"

	"github.com/fayce66/rocket/list"
	"github.com/stretchr/testify/assert"
)

func newTestConnection(lst *list.List[*Node]) *Connection {
	n := NewNode(func() {}, nil, 1)
	elem := lst.PushBack(n)
	return NewConnection(elem, lst)
}

func TestConnection(t *testing.T) {
	t.Run("lifecycle", func(t *testing.T) {
		lst := list.New[*Node]()
		c := newTestConnection(lst)

		assert.True(t, c.IsConnected())
		assert.False(t, c.IsBlocked())

		c.Block()
		assert.True(t, c.IsBlocked())
		c.Unblock()
		assert.False(t, c.IsBlocked())

		c.Disconnect()
		assert.False(t, c.IsConnected())
		// disconnect never un-disconnects
		c.Disconnect()
		assert.False(t, c.IsConnected())
	})

	t.Run("empty handle is safe to query", func(t *testing.T) {
		var c *Connection
		assert.False(t, c.IsConnected())
		assert.False(t, c.IsBlocked())
		c.Block()
		c.Unblock()
		c.Disconnect()

		empty := &Connection{}
		assert.False(t, empty.IsConnected())
	})

	t.Run("equal compares underlying node", func(t *testing.T) {
		lst := list.New[*Node]()
		a := newTestConnection(lst)
		b := newTestConnection(lst)

		assert.True(t, a.Equal(a))
		assert.False(t, a.Equal(b))
	})
}

func TestScopedConnection(t *testing.T) {
	lst := list.New[*Node]()
	c := newTestConnection(lst)

	sc := NewScopedConnection(c)
	assert.True(t, sc.IsConnected())

	sc.Close()
	assert.False(t, sc.IsConnected())
}

func TestScopedConnectionContainer(t *testing.T) {
	lst := list.New[*Node]()
	a := newTestConnection(lst)
	b := newTestConnection(lst)

	var container ScopedConnectionContainer
	container.Add(a)
	container.Add(b)

	container.Close()

	assert.False(t, a.IsConnected())
	assert.False(t, b.IsConnected())
}

func TestScopedConnectionBlocker(t *testing.T) {
	t.Run("blocks and unblocks", func(t *testing.T) {
		lst := list.New[*Node]()
		c := newTestConnection(lst)

		b := NewScopedConnectionBlocker(c)
		assert.True(t, c.IsBlocked())

		b.Close()
		assert.False(t, c.IsBlocked())
	})

	t.Run("nested blocker does not unblock an already-blocked connection", func(t *testing.T) {
		lst := list.New[*Node]()
		c := newTestConnection(lst)
		c.Block()

		b := NewScopedConnectionBlocker(c)
		assert.True(t, c.IsBlocked())

		b.Close()
		assert.True(t, c.IsBlocked(), "blocker didn't set the flag, so it shouldn't clear it")
	})
}

func TestTrackable(t *testing.T) {
	lst := list.New[*Node]()
	a := newTestConnection(lst)
	b := newTestConnection(lst)

	var tr Trackable
	tr.AddTrackedConnection(a)
	tr.AddTrackedConnection(b)

	assert.True(t, a.IsConnected())
	assert.True(t, b.IsConnected())

	tr.Close()

	assert.False(t, a.IsConnected())
	assert.False(t, b.IsConnected())
}
