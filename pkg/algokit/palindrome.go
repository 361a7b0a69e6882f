package algokit

import (
	"iter"

	"go.llib.dev/iterlab/pkg/iterkit"
)

// IsPalindrome reports whether the sequence reads the same from both of its ends.
func IsPalindrome[T comparable](r iterkit.Bidirectional[T]) bool {
	return IsPalindromeFunc(r, Equal[T])
}

// IsPalindromeFunc walks inward from both ends at once,
// and reports whether eq holds for every mirrored pair.
// The middle element of an odd length sequence is not compared with anything.
func IsPalindromeFunc[T any](r iterkit.Bidirectional[T], eq func(a, b T) bool) bool {
	half := r.Len() / 2
	if half == 0 {
		return true
	}
	next, stop := iter.Pull(r.Backward())
	defer stop()
	var i int
	for v := range r.All() {
		if half <= i {
			break
		}
		w, ok := next()
		if !ok || !eq(v, w) {
			return false
		}
		i++
	}
	return true
}
