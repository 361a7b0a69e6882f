package iterkit

import (
	"iter"
	"slices"
)

// Slice returns a non-owning view of the slice which supports both forward and backward traversal.
func Slice[T any](slice []T) SliceView[T] {
	return SliceView[T]{s: slice}
}

// SliceView is a Forward and Bidirectional sequence over a borrowed slice.
type SliceView[T any] struct {
	s []T
}

var (
	_ Forward[any]       = SliceView[any]{}
	_ Bidirectional[any] = SliceView[any]{}
)

func (v SliceView[T]) Len() int {
	return len(v.s)
}

func (v SliceView[T]) All() iter.Seq[T] {
	return slices.Values(v.s)
}

func (v SliceView[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(v.s) - 1; 0 <= i; i-- {
			if !yield(v.s[i]) {
				return
			}
		}
	}
}

func (v SliceView[T]) Cursor() Cursor[T] {
	return &sliceCursor[T]{s: v.s}
}

type sliceCursor[T any] struct {
	s     []T
	index int
}

func (c *sliceCursor[T]) Value() T { return c.s[c.index] }
func (c *sliceCursor[T]) Next()    { c.index++ }
func (c *sliceCursor[T]) Done() bool {
	return len(c.s) <= c.index
}
