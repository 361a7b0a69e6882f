// Package algokit implements classic single-pass scan algorithms over iter.Seq.
//
// Positions are zero-based indexes into the walked sequence.
// When nothing is found, the returned position is the end marker,
// which equals the number of elements in the sequence, the same way sort.Search reports it.
package algokit

import (
	"cmp"
	"iter"
)

// AllOf reports whether every element satisfies the predicate.
// An empty sequence satisfies it vacuously.
func AllOf[T any](seq iter.Seq[T], pred func(T) bool) bool {
	for v := range seq {
		if !pred(v) {
			return false
		}
	}
	return true
}

// AnyOf reports whether at least one element satisfies the predicate.
func AnyOf[T any](seq iter.Seq[T], pred func(T) bool) bool {
	for v := range seq {
		if pred(v) {
			return true
		}
	}
	return false
}

// NoneOf reports whether no element satisfies the predicate.
func NoneOf[T any](seq iter.Seq[T], pred func(T) bool) bool {
	return !AnyOf(seq, pred)
}

// OneOf reports whether exactly one element satisfies the predicate.
// The scan stops at the second match.
func OneOf[T any](seq iter.Seq[T], pred func(T) bool) bool {
	var found bool
	for v := range seq {
		if !pred(v) {
			continue
		}
		if found {
			return false
		}
		found = true
	}
	return found
}

// Count returns how many elements satisfy the predicate.
func Count[T any](seq iter.Seq[T], pred func(T) bool) int {
	var n int
	for v := range seq {
		if pred(v) {
			n++
		}
	}
	return n
}

// IsSorted reports whether every adjacent pair is in strictly ascending order.
// Repeated values therefore make a sequence unsorted,
// use IsSortedFunc with a non-strict comparator to allow them.
func IsSorted[T cmp.Ordered](seq iter.Seq[T]) bool {
	return IsSortedFunc(seq, Less[T])
}

// IsSortedFunc reports whether comp(x, next) holds for every adjacent pair of the sequence.
func IsSortedFunc[T any](seq iter.Seq[T], comp func(a, b T) bool) bool {
	var (
		prev T
		ok   bool
	)
	for v := range seq {
		if ok && !comp(prev, v) {
			return false
		}
		prev, ok = v, true
	}
	return true
}

// IsPartitioned reports whether all the elements satisfying pred come before those which don't.
func IsPartitioned[T any](seq iter.Seq[T], pred func(T) bool) bool {
	var failed bool
	for v := range seq {
		if pred(v) {
			if failed {
				return false
			}
			continue
		}
		failed = true
	}
	return true
}
