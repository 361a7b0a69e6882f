package datastruct

import (
	"cmp"
	"iter"
	"slices"

	"go.llib.dev/iterlab/pkg/iterkit"
)

// SortedSet keeps unique values in ascending order.
//
// The zero value is an empty set ready to use.
type SortedSet[T cmp.Ordered] struct {
	vs []T
}

func (s *SortedSet[T]) Add(vs ...T) {
	for _, v := range vs {
		s.add(v)
	}
}

func (s *SortedSet[T]) add(v T) {
	index, found := slices.BinarySearch(s.vs, v)
	if found {
		return
	}
	s.vs = slices.Insert(s.vs, index, v)
}

func (s *SortedSet[T]) Has(v T) bool {
	_, found := slices.BinarySearch(s.vs, v)
	return found
}

func (s *SortedSet[T]) Len() int {
	return len(s.vs)
}

func (s *SortedSet[T]) ToSlice() []T {
	return slices.Clone(s.vs)
}

// All yields the values from the smallest to the largest.
func (s *SortedSet[T]) All() iter.Seq[T] {
	return iterkit.Slice(s.vs).All()
}

// Backward yields the values from the largest to the smallest.
func (s *SortedSet[T]) Backward() iter.Seq[T] {
	return iterkit.Slice(s.vs).Backward()
}

// Cursor borrows the set, adding values while a cursor is in use is not supported.
func (s *SortedSet[T]) Cursor() iterkit.Cursor[T] {
	return iterkit.Slice(s.vs).Cursor()
}
