package check_test

import (
	"testing"

	"github.com/katalvlaran/rcheck/check"
	"github.com/katalvlaran/rcheck/gen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// S1: sum is invariant under reversal for any list of ints.
func TestSearch_SumEqualsSumOfReverse_NoCounterexample(t *testing.T) {
	prop := func(xs []int) bool {
		sum := func(ys []int) int {
			total := 0
			for _, y := range ys {
				total += y
			}
			return total
		}
		reversed := make([]int, len(xs))
		for i, x := range xs {
			reversed[len(xs)-1-i] = x
		}
		return sum(xs) == sum(reversed)
	}

	outcome := check.Search(prop, gen.Collection(gen.Arbitrary[int]()), 1, 200)
	assert.False(t, outcome.Failed)
	assert.Equal(t, 200, outcome.TrialsRun)
}

// S2: a list never containing zero is false in general, and the
// minimized counterexample is the singleton list [0].
func TestSearch_ListNeverContainsZero_ShrinksToSingleZero(t *testing.T) {
	prop := func(xs []int) bool {
		for _, x := range xs {
			if x == 0 {
				return false
			}
		}
		return true
	}

	outcome := check.Search(prop, gen.Collection(gen.Arbitrary[int]()), 1, 500)
	require.True(t, outcome.Failed)
	assert.Equal(t, []int{0}, outcome.Value)
}

// S3: sampling is pure and deterministic in (size, seed).
func TestSample_DeterministicInRange(t *testing.T) {
	a := check.Sample(10, gen.Ranged(0, 5), 42)
	b := check.Sample(10, gen.Ranged(0, 5), 42)

	assert.Equal(t, a, b)
	assert.GreaterOrEqual(t, a, 0)
	assert.Less(t, a, 5)
}

// S4: a pair whose components sum to 42 is found and shrunk; the
// minimized pair always reproduces the failure, though which exact
// minimal pair shrinking lands on depends on where in the component
// shrink order the search happens to commit (see DESIGN.md).
func TestSearch_PairSumNot42_FindsConsistentCounterexample(t *testing.T) {
	prop := func(p gen.Pair[int, int]) bool {
		return p.First+p.Second != 42
	}

	outcome := check.Search(prop, gen.PairOf(gen.Ranged(0, 100), gen.Ranged(0, 100)), 1, 500)
	require.True(t, outcome.Failed)
	assert.Equal(t, 42, outcome.Value.First+outcome.Value.Second)
	assert.GreaterOrEqual(t, outcome.Value.First, 0)
	assert.GreaterOrEqual(t, outcome.Value.Second, 0)
}

// S5: a string is always shorter than 5 is false, and the minimized
// counterexample is five copies of the simplest character.
func TestSearch_StringTooShort_ShrinksToFiveLowercaseA(t *testing.T) {
	prop := func(s string) bool {
		return len(s) < 5
	}

	outcome := check.Search(prop, gen.Arbitrary[string](), 1, 500)
	require.True(t, outcome.Failed)
	assert.Equal(t, "aaaaa", outcome.Value)
}

// S6: a predicate that can never be satisfied raises GenerationFailure.
func TestSuchThat_AlwaysFalsePredicate_RaisesGenerationFailure(t *testing.T) {
	g := gen.SuchThat(gen.Ranged(0, 10), func(x int) bool { return x > 100 })
	_, err := gen.Safe(func() int {
		return check.Sample(10, g, 1)
	})
	require.Error(t, err)
	var gf *gen.GenerationFailure
	assert.ErrorAs(t, err, &gf)
}
