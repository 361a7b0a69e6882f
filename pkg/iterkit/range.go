package iterkit

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Number is the set of types a Range can be built from.
type Number interface {
	constraints.Integer | constraints.Float
}

// Range is an arithmetic progression from start towards end, advancing by step.
// The end value itself is never part of the progression.
//
// Range is an immutable description, it can be iterated any number of times.
// Each Cursor walks the progression lazily, so even a very long Range costs no memory.
//
// With a floating point T, values accumulate rounding error exactly like repeated addition does.
// No compensation is made for it, and overflow or NaN handling is left to T's arithmetic.
// An integer Range whose values wrap around before reaching end never finishes,
// for example RangeStep[uint8](250, 255, 2) goes 252, 254, 0, 2, ... forever.
type Range[T Number] struct {
	start T
	end   T
	step  T
}

// RangeTo returns the progression of [0, end) with a step of one.
func RangeTo[T Number](end T) Range[T] {
	return Range[T]{end: end, step: 1}
}

// RangeBetween returns the progression of [start, end) with a step of one.
func RangeBetween[T Number](start, end T) Range[T] {
	return Range[T]{start: start, end: end, step: 1}
}

// RangeStep returns the progression from start towards end advancing by step.
// A negative step counts downwards, in which case start should be greater than end.
// When start is already past end in the direction of the step, the Range is empty.
//
// A zero step would never reach the end, so RangeStep rejects it with ErrInvalidArgument.
func RangeStep[T Number](start, end, step T) (Range[T], error) {
	if step == 0 {
		return Range[T]{}, ErrInvalidArgument.F("range step cannot be zero (start: %v, end: %v)", start, end)
	}
	return Range[T]{start: start, end: end, step: step}, nil
}

// Start is the first value of the progression, unless the Range is empty.
func (r Range[T]) Start() T { return r.start }

// End is the exclusive bound of the progression.
func (r Range[T]) End() T { return r.end }

// Step is the distance between two consecutive values.
func (r Range[T]) Step() T { return r.step }

// Cursor returns a new RangeCursor at the start of the progression.
func (r Range[T]) Cursor() Cursor[T] {
	return r.Begin()
}

// Begin is the typed version of Cursor.
func (r Range[T]) Begin() *RangeCursor[T] {
	c := &RangeCursor[T]{value: r.start, end: r.end, step: r.step}
	if c.isPastEnd() {
		c.value = c.end
	}
	return c
}

// All yields the values of the progression.
func (r Range[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := r.Begin(); !c.Done(); c.Next() {
			if !yield(c.Value()) {
				return
			}
		}
	}
}

// RangeCursor walks a Range.
// Once the cursor would step over the end of the range, its value is clamped to the end value,
// which is what marks it as done.
type RangeCursor[T Number] struct {
	value T
	end   T
	step  T
}

func (c *RangeCursor[T]) Value() T {
	return c.value
}

func (c *RangeCursor[T]) Next() {
	c.value += c.step
	if !c.isWithinBounds() {
		c.value = c.end
	}
}

func (c *RangeCursor[T]) Done() bool {
	return c.value == c.end
}

func (c *RangeCursor[T]) isWithinBounds() bool {
	if 0 < c.step {
		return c.value < c.end
	}
	return c.value > c.end
}

func (c *RangeCursor[T]) isPastEnd() bool {
	return (c.step < 0 && c.value < c.end) ||
		(0 < c.step && c.value > c.end)
}
