package algokit

import "cmp"

// Less is the default strict ordering.
func Less[T cmp.Ordered](a, b T) bool {
	return cmp.Less(a, b)
}

// Equal is the default symmetric predicate.
func Equal[T comparable](a, b T) bool {
	return a == b
}

// EqualTo returns a predicate matching elements equal to v.
func EqualTo[T comparable](v T) func(T) bool {
	return func(o T) bool { return o == v }
}

func Not[T any](pred func(T) bool) func(T) bool {
	return func(v T) bool { return !pred(v) }
}
