package datastruct

import (
	"iter"

	"go.llib.dev/iterlab/pkg/iterkit"
)

// LinkedList is a doubly linked list.
// The zero value is an empty list ready to use.
//
// Its cursors walk the nodes from head to tail, while Backward follows the prev links,
// so the list can be scanned from both ends without copying it.
type LinkedList[T any] struct {
	head *node[T]
	tail *node[T]
	n    int
}

type node[T any] struct {
	v    T
	prev *node[T]
	next *node[T]
}

// Append links the values after the tail, keeping their order.
func (ll *LinkedList[T]) Append(vs ...T) {
	for _, v := range vs {
		n := &node[T]{v: v, prev: ll.tail}
		if ll.tail == nil {
			ll.head = n
		} else {
			ll.tail.next = n
		}
		ll.tail = n
		ll.n++
	}
}

// Prepend links the values before the head, keeping their order:
// after Prepend(1, 2) the list starts with 1, 2.
func (ll *LinkedList[T]) Prepend(vs ...T) {
	for i := len(vs) - 1; 0 <= i; i-- {
		n := &node[T]{v: vs[i], next: ll.head}
		if ll.head == nil {
			ll.tail = n
		} else {
			ll.head.prev = n
		}
		ll.head = n
		ll.n++
	}
}

func (ll *LinkedList[T]) Len() int {
	if ll == nil {
		return 0
	}
	return ll.n
}

// All yields the elements from the head to the tail.
func (ll *LinkedList[T]) All() iter.Seq[T] {
	return iterkit.Seq[T](ll)
}

// Backward yields the elements from the tail to the head.
func (ll *LinkedList[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if ll == nil {
			return
		}
		for n := ll.tail; n != nil; n = n.prev {
			if !yield(n.v) {
				return
			}
		}
	}
}

// Cursor returns a cursor positioned at the head of the list.
// Appending is fine while a cursor is in use, unlinking nodes is not.
func (ll *LinkedList[T]) Cursor() iterkit.Cursor[T] {
	if ll == nil {
		return &listCursor[T]{}
	}
	return &listCursor[T]{at: ll.head}
}

type listCursor[T any] struct {
	at *node[T]
}

func (c *listCursor[T]) Value() T   { return c.at.v }
func (c *listCursor[T]) Done() bool { return c.at == nil }

func (c *listCursor[T]) Next() {
	if c.at != nil {
		c.at = c.at.next
	}
}
