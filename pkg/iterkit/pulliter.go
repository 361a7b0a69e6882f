package iterkit

import (
	"iter"
)

///////////////////////////////////////////// Pull Cursor /////////////////////////////////////////////////////

// FromSeq turns an iter.Seq into a Cursor by pulling its values one at a time.
// The returned stop function releases the underlying pull iterator,
// and it must be called once the cursor is no longer needed, even if it was not drained.
//
// The cursor is single use: it reflects one walk of the sequence.
func FromSeq[T any](seq iter.Seq[T]) (Cursor[T], func()) {
	next, stop := iter.Pull(seq)
	c := &pullCursor[T]{next: next, stop: stop}
	c.Next()
	return c, c.Close
}

type pullCursor[T any] struct {
	next func() (T, bool)
	stop func()
	val  T
	done bool
}

func (c *pullCursor[T]) Next() {
	if c.done {
		return
	}
	v, ok := c.next()
	if !ok {
		c.Close()
		return
	}
	c.val = v
}

func (c *pullCursor[T]) Value() T {
	return c.val
}

func (c *pullCursor[T]) Done() bool {
	return c.done
}

func (c *pullCursor[T]) Close() {
	if c.done {
		return
	}
	c.done = true
	c.stop()
	var zero T
	c.val = zero
}
