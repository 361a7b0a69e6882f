package algokit

import "iter"

// FindIf returns the position of the first element satisfying pred,
// or the end marker when there is none.
func FindIf[T any](seq iter.Seq[T], pred func(T) bool) int {
	var i int
	for v := range seq {
		if pred(v) {
			return i
		}
		i++
	}
	return i
}

// FindIfNot returns the position of the first element not satisfying pred.
func FindIfNot[T any](seq iter.Seq[T], pred func(T) bool) int {
	return FindIf(seq, Not(pred))
}

// FindLast returns the position of the last element satisfying pred,
// or the end marker when there is none.
//
// The whole sequence is walked forward, remembering the most recent match,
// so it works on sequences that can't be walked backward.
func FindLast[T any](seq iter.Seq[T], pred func(T) bool) int {
	var (
		i    int
		last = -1
	)
	for v := range seq {
		if pred(v) {
			last = i
		}
		i++
	}
	if last < 0 {
		return i
	}
	return last
}

// FindNot returns the position of the first element which differs from value.
func FindNot[T comparable](seq iter.Seq[T], value T) int {
	return FindIfNot(seq, EqualTo(value))
}

// FindBackward returns the position of the last element equal to value.
func FindBackward[T comparable](seq iter.Seq[T], value T) int {
	return FindLast(seq, EqualTo(value))
}
