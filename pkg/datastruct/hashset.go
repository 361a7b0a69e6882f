package datastruct

import (
	"iter"
	"maps"
)

func MakeSet[T comparable](vs ...T) Set[T] {
	var set Set[T]
	set.Add(vs...)
	return set
}

// Set is a hashed set.
// Its iteration order is unspecified,
// use iterkit.ZipSeqs or iterkit.FromSeq to pair it with other sequences.
type Set[T comparable] struct {
	vs map[T]struct{}
}

func (s *Set[T]) Add(vs ...T) {
	if s.vs == nil {
		s.vs = make(map[T]struct{})
	}
	for _, v := range vs {
		s.vs[v] = struct{}{}
	}
}

func (s Set[T]) Has(v T) bool {
	if s.vs == nil {
		return false
	}
	_, ok := s.vs[v]
	return ok
}

func (s Set[T]) Len() int {
	return len(s.vs)
}

func (s Set[T]) ToSlice() []T {
	var out []T
	for v := range s.vs {
		out = append(out, v)
	}
	return out
}

func (s Set[T]) All() iter.Seq[T] {
	return maps.Keys(s.vs)
}
