package iterkit

import (
	"iter"
)

// Pair is a combined element of two sequences.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip combines two Forward sequences into a sequence of pairs.
// The i-th pair holds the i-th element of a and the i-th element of b,
// and the sequence ends as soon as either of them runs out,
// so its length is the length of the shorter source.
//
// The sources can be of different kinds and element types,
// like a Slice of ints paired with a datastruct.SortedSet of strings.
//
// Zip borrows a and b, nothing is copied up front.
// Both of them have to outlive the use of the returned ZipSeq,
// and they must not be structurally modified while one of its cursors is active.
func Zip[A, B any](a Forward[A], b Forward[B]) ZipSeq[A, B] {
	return ZipSeq[A, B]{a: a, b: b}
}

// ZipSeq is the lazy pair sequence returned by Zip.
type ZipSeq[A, B any] struct {
	a Forward[A]
	b Forward[B]
}

// Cursor returns a new ZipCursor positioned at the first pair.
func (z ZipSeq[A, B]) Cursor() Cursor[Pair[A, B]] {
	return z.Begin()
}

// Begin is the typed version of Cursor.
func (z ZipSeq[A, B]) Begin() *ZipCursor[A, B] {
	return &ZipCursor[A, B]{a: z.a.Cursor(), b: z.b.Cursor()}
}

// All yields the pairs as key-value tuples,
// which makes destructuring possible in a range loop:
//
//	for n, s := range iterkit.Zip(ns, ss).All() {}
func (z ZipSeq[A, B]) All() iter.Seq2[A, B] {
	return func(yield func(A, B) bool) {
		for c := z.Begin(); !c.Done(); c.Next() {
			if !yield(c.a.Value(), c.b.Value()) {
				return
			}
		}
	}
}

// Pairs yields the combined elements as Pair values.
func (z ZipSeq[A, B]) Pairs() iter.Seq[Pair[A, B]] {
	return Seq[Pair[A, B]](z)
}

// ZipCursor advances two cursors in lockstep.
type ZipCursor[A, B any] struct {
	a Cursor[A]
	b Cursor[B]
}

// Value returns a copy of both current elements.
func (c *ZipCursor[A, B]) Value() Pair[A, B] {
	return Pair[A, B]{First: c.a.Value(), Second: c.b.Value()}
}

// Next advances both cursors, regardless of their state.
func (c *ZipCursor[A, B]) Next() {
	c.a.Next()
	c.b.Next()
}

// Done reports true as soon as either of the cursors is done.
func (c *ZipCursor[A, B]) Done() bool {
	return c.a.Done() || c.b.Done()
}

// ZipSeqs is Zip for plain iter.Seq sources.
// It is useful when a source has no cursor of its own, like a hashed set or a generator function.
// The pairs are yielded until the shorter sequence is exhausted.
func ZipSeqs[A, B any](a iter.Seq[A], b iter.Seq[B]) iter.Seq2[A, B] {
	return func(yield func(A, B) bool) {
		nextB, stopB := iter.Pull(b)
		defer stopB()
		for va := range a {
			vb, ok := nextB()
			if !ok {
				return
			}
			if !yield(va, vb) {
				return
			}
		}
	}
}
