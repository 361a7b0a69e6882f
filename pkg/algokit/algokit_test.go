package algokit_test

import (
	"fmt"
	"slices"
	"testing"

	"go.llib.dev/iterlab/pkg/algokit"
	"go.llib.dev/iterlab/pkg/datastruct"
	"go.llib.dev/iterlab/pkg/iterkit"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"
)

func isEven(n int) bool { return n%2 == 0 }

func ExampleOneOf() {
	vs := []int{1, 3, 4, 7}
	fmt.Println(algokit.OneOf(slices.Values(vs), isEven))
	// Output: true
}

func ExampleIsSortedFunc() {
	desc := []int{5, 3, 1}
	fmt.Println(algokit.IsSortedFunc(slices.Values(desc), func(a, b int) bool { return a > b }))
	// Output: true
}

func TestQuantifiers(t *testing.T) {
	s := testcase.NewSpec(t)

	values := let.Var(s, func(t *testcase.T) []int {
		return random.Slice(t.Random.IntBetween(0, 10), func() int {
			return t.Random.IntBetween(0, 20)
		})
	})

	s.Then("AllOf agrees with the count of matches", func(t *testcase.T) {
		n := algokit.Count(slices.Values(values.Get(t)), isEven)
		assert.Equal(t, n == len(values.Get(t)), algokit.AllOf(slices.Values(values.Get(t)), isEven))
	})

	s.Then("AnyOf agrees with the count of matches", func(t *testcase.T) {
		n := algokit.Count(slices.Values(values.Get(t)), isEven)
		assert.Equal(t, 0 < n, algokit.AnyOf(slices.Values(values.Get(t)), isEven))
	})

	s.Then("NoneOf agrees with the count of matches", func(t *testcase.T) {
		n := algokit.Count(slices.Values(values.Get(t)), isEven)
		assert.Equal(t, n == 0, algokit.NoneOf(slices.Values(values.Get(t)), isEven))
	})

	s.Then("OneOf agrees with the count of matches", func(t *testcase.T) {
		n := algokit.Count(slices.Values(values.Get(t)), isEven)
		assert.Equal(t, n == 1, algokit.OneOf(slices.Values(values.Get(t)), isEven))
	})

	s.When("the sequence is empty", func(s *testcase.Spec) {
		values.Let(s, func(t *testcase.T) []int { return nil })

		s.Then("AllOf and NoneOf hold vacuously while AnyOf and OneOf don't", func(t *testcase.T) {
			seq := slices.Values(values.Get(t))
			assert.True(t, algokit.AllOf(seq, isEven))
			assert.True(t, algokit.NoneOf(seq, isEven))
			assert.False(t, algokit.AnyOf(seq, isEven))
			assert.False(t, algokit.OneOf(seq, isEven))
		})
	})

	s.Test("OneOf stops at the second match", func(t *testcase.T) {
		var visited int
		seq := func(yield func(int) bool) {
			for _, v := range []int{2, 1, 4, 6, 8} {
				visited++
				if !yield(v) {
					return
				}
			}
		}
		assert.False(t, algokit.OneOf(seq, isEven))
		assert.Equal(t, 3, visited)
	})

	s.Test("AllOf over a range", func(t *testcase.T) {
		r, err := iterkit.RangeStep(0, 100, 2)
		assert.NoError(t, err)
		assert.True(t, algokit.AllOf(r.All(), isEven))
	})
}

func TestIsSorted(t *testing.T) {
	s := testcase.NewSpec(t)

	values := let.Var(s, func(t *testcase.T) []int {
		return random.Slice(t.Random.IntBetween(0, 6), func() int {
			return t.Random.IntBetween(0, 5)
		})
	})
	pairwise := func(vs []int, comp func(a, b int) bool) bool {
		for i := 1; i < len(vs); i++ {
			if !comp(vs[i-1], vs[i]) {
				return false
			}
		}
		return true
	}

	s.Then("it agrees with comparing adjacent pairs", func(t *testcase.T) {
		exp := pairwise(values.Get(t), algokit.Less[int])
		assert.Equal(t, exp, algokit.IsSorted(slices.Values(values.Get(t))))
	})

	s.Then("it agrees with comparing adjacent pairs in descending order", func(t *testcase.T) {
		desc := func(a, b int) bool { return a > b }
		exp := pairwise(values.Get(t), desc)
		assert.Equal(t, exp, algokit.IsSortedFunc(slices.Values(values.Get(t)), desc))
	})

	s.Test("ascending", func(t *testcase.T) {
		assert.True(t, algokit.IsSorted(slices.Values([]int{1, 2, 3, 4, 5})))
		assert.False(t, algokit.IsSorted(slices.Values([]int{1, 3, 2, 4, 5})))
	})

	s.Test("repeated values are not strictly sorted", func(t *testcase.T) {
		assert.False(t, algokit.IsSorted(slices.Values([]int{1, 2, 2, 3})))
		lessOrEqual := func(a, b int) bool { return a <= b }
		assert.True(t, algokit.IsSortedFunc(slices.Values([]int{1, 2, 2, 3}), lessOrEqual))
	})

	s.Test("empty and singleton sequences are sorted", func(t *testcase.T) {
		assert.True(t, algokit.IsSorted(slices.Values([]int{})))
		assert.True(t, algokit.IsSorted(slices.Values([]int{t.Random.Int()})))
	})

	s.Test("containers", func(t *testcase.T) {
		var set datastruct.SortedSet[string]
		set.Add("c", "a", "b", "a")
		assert.True(t, algokit.IsSorted(set.All()))
		assert.True(t, algokit.IsSortedFunc(set.Backward(), func(a, b string) bool { return a > b }))

		r, err := iterkit.RangeStep[float64](10, 0, -0.5)
		assert.NoError(t, err)
		assert.False(t, algokit.IsSorted(r.All()))
	})
}

func TestIsPartitioned(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("matching elements first", func(t *testcase.T) {
		assert.True(t, algokit.IsPartitioned(slices.Values([]int{2, 4, 6, 1, 3}), isEven))
	})

	s.Test("a match after a mismatch", func(t *testcase.T) {
		assert.False(t, algokit.IsPartitioned(slices.Values([]int{2, 1, 4}), isEven))
	})

	s.Test("all or none matching", func(t *testcase.T) {
		assert.True(t, algokit.IsPartitioned(slices.Values([]int{2, 4}), isEven))
		assert.True(t, algokit.IsPartitioned(slices.Values([]int{1, 3}), isEven))
		assert.True(t, algokit.IsPartitioned(slices.Values([]int{}), isEven))
	})

	s.Test("it agrees with sorting by the predicate", func(t *testcase.T) {
		vs := random.Slice(t.Random.IntBetween(0, 10), t.Random.Int)
		slices.SortStableFunc(vs, func(a, b int) int {
			switch {
			case isEven(a) == isEven(b):
				return 0
			case isEven(a):
				return -1
			default:
				return 1
			}
		})
		assert.True(t, algokit.IsPartitioned(slices.Values(vs), isEven))
	})
}
