// Package iterkit provides lazy, single-pass sequence adapters built around a small cursor protocol.
//
// # Summary
//
// A Cursor is a position marker into a sequence.
// It can produce the element at its current position, advance by one step,
// and tell whether it reached the end of the sequence.
// Anything that can hand out a fresh Cursor is a Forward sequence,
// which makes it usable with the adapters of this package, like Zip.
//
// Range generates an arithmetic progression without materialising it,
// and Zip walks two Forward sequences in lockstep, producing pairs until the shorter one runs out.
// Both of them can also be consumed as an iter.Seq, so they work with a plain range loop.
//
// # Ownership
//
// Adapters are views. Zip, Slice and the cursors they hand out only borrow the underlying containers.
// The caller has to keep those containers alive and structurally unmodified while a cursor over them is in use.
//
// # Resources
//
// https://en.wikipedia.org/wiki/Iterator_pattern
// https://en.wikipedia.org/wiki/Generator_(computer_programming)
package iterkit

import (
	"iter"
)

// Cursor is a forward-only position marker into a sequence.
//
// The protocol is the classic "current / advance / done" triple:
//
//	for c := seq.Cursor(); !c.Done(); c.Next() {
//		v := c.Value()
//	}
type Cursor[T any] interface {
	// Value returns the element at the current position without advancing.
	// It is only valid while Done reports false.
	Value() T
	// Next advances the cursor by a single position.
	Next()
	// Done reports whether the cursor reached the end marker of its sequence.
	Done() bool
}

// Forward is a sequence which supports forward traversal.
// Each Cursor call returns a new cursor positioned at the first element.
type Forward[T any] interface {
	Cursor() Cursor[T]
}

// Bidirectional is a sequence which can be walked from both of its ends.
type Bidirectional[T any] interface {
	// All yields the elements from the first to the last.
	All() iter.Seq[T]
	// Backward yields the elements from the last to the first.
	Backward() iter.Seq[T]
	// Len returns the number of elements.
	Len() int
}

// Seq drives a fresh cursor of the Forward sequence and yields its values.
func Seq[T any](f Forward[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := f.Cursor(); !c.Done(); c.Next() {
			if !yield(c.Value()) {
				return
			}
		}
	}
}

// Collect materialises an iter.Seq into a slice.
func Collect[T any](i iter.Seq[T]) []T {
	if i == nil {
		return nil
	}
	var vs = make([]T, 0)
	for v := range i {
		vs = append(vs, v)
	}
	return vs
}

// CollectCursor drains the cursor and returns the values it produced.
func CollectCursor[T any](c Cursor[T]) []T {
	var vs = make([]T, 0)
	for ; !c.Done(); c.Next() {
		vs = append(vs, c.Value())
	}
	return vs
}

// Count drains the cursor and returns how many elements it had left.
func Count[T any](c Cursor[T]) int {
	var n int
	for ; !c.Done(); c.Next() {
		n++
	}
	return n
}
