package check_test

import (
	"fmt"

	"github.com/katalvlaran/rcheck/check"
	"github.com/katalvlaran/rcheck/gen"
)

// ExampleSearch demonstrates a property that holds across every trial.
func ExampleSearch() {
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
	fmt.Println("counterexample found:", outcome.Failed)

	// Output:
	// counterexample found: false
}

// ExampleSearch_shrinksToZero demonstrates a falsifiable property whose
// search finds a failure and minimizes it to a single zero.
func ExampleSearch_shrinksToZero() {
	prop := func(xs []int) bool {
		for _, x := range xs {
			if x == 0 {
				return false
			}
		}
		return true
	}

	outcome := check.Search(prop, gen.Collection(gen.Arbitrary[int]()), 1, 500)
	fmt.Println("counterexample:", outcome.Value)

	// Output:
	// counterexample: [0]
}

// ExampleSample demonstrates that sampling is pure: the same seed always
// produces the same value, and the value always respects the generator's
// bounds.
func ExampleSample() {
	a := check.Sample(10, gen.Ranged(0, 5), 42)
	b := check.Sample(10, gen.Ranged(0, 5), 42)
	fmt.Println("deterministic:", a == b, "in range:", a >= 0 && a < 5)

	// Output:
	// deterministic: true in range: true
}
