// Package list implements the stable doubly-linked list the rest of this
// module builds its connection bookkeeping on: an element's address never
// changes, and a reference retained past erasure remains dereferenceable and
// advances to a still-live successor.
package list

// Node is one element of a List. A freshly erased node has Prev == nil (its
// tombstone state) while Next still points at whatever followed it, so any
// reference retained before the erase can keep walking the list forward.
type Node[T any] struct {
	prev, next *Node[T]

	// Value is the payload carried by this node.
	Value T
}

// Next returns the node that follows n, including past erasure.
func (n *Node[T]) Next() *Node[T] { return n.next }

// Prev returns the node that precedes n, or nil if n is the head sentinel or
// a tombstone.
func (n *Node[T]) Prev() *Node[T] { return n.prev }

// Connected reports whether n is still linked into its list.
func (n *Node[T]) Connected() bool { return n.prev != nil }

// List is a sentinel-headed doubly-linked list of reference-counted-by-the-
// garbage-collector nodes. The zero value is not usable; use New.
type List[T any] struct {
	head, tail *Node[T]
	size       int
}

// New returns an empty list.
func New[T any]() *List[T] {
	head := &Node[T]{}
	tail := &Node[T]{}
	head.next = tail
	tail.prev = head
	return &List[T]{head: head, tail: tail}
}

// Head returns the sentinel preceding the first element.
func (l *List[T]) Head() *Node[T] { return l.head }

// Tail returns the sentinel following the last element.
func (l *List[T]) Tail() *Node[T] { return l.tail }

// Len returns the number of connected nodes.
func (l *List[T]) Len() int { return l.size }

// Empty reports whether the list has no connected nodes.
func (l *List[T]) Empty() bool { return l.size == 0 }

// InsertBefore links a new node carrying v immediately before mark and
// returns it. mark must currently be connected (or be the tail sentinel).
func (l *List[T]) InsertBefore(mark *Node[T], v T) *Node[T] {
	n := &Node[T]{Value: v, prev: mark.prev, next: mark}
	mark.prev.next = n
	mark.prev = n
	l.size++
	return n
}

// PushBack appends v and returns its node.
func (l *List[T]) PushBack(v T) *Node[T] {
	return l.InsertBefore(l.tail, v)
}

// PushFront prepends v and returns its node.
func (l *List[T]) PushFront(v T) *Node[T] {
	return l.InsertBefore(l.head.next, v)
}

// Erase unlinks n from the list, turning it into a tombstone: n.Prev becomes
// nil but n.Next is left untouched, so any iterator that already captured n
// can still advance past it. Erase is idempotent — erasing an already-erased
// node is a no-op.
func (l *List[T]) Erase(n *Node[T]) {
	if n.prev == nil {
		return
	}
	prev, next := n.prev, n.next
	prev.next = next
	next.prev = prev
	n.prev = nil
	l.size--
}

// Clear unlinks every node from Prev and points each node's Next at the
// tail, so any in-flight iterator converges on the (now empty) tail
// instead of being left dangling.
func (l *List[T]) Clear() {
	for cur := l.head.next; cur != l.tail; {
		next := cur.next
		cur.prev = nil
		cur.next = l.tail
		cur = next
	}
	l.head.next = l.tail
	l.tail.prev = l.head
	l.size = 0
}
