package gen_test

import (
	"fmt"

	"github.com/katalvlaran/rcheck/gen"
	"github.com/katalvlaran/rcheck/random"
	"github.com/katalvlaran/rcheck/shrink"
)

// ExampleRanged demonstrates that every value Ranged draws falls within
// its half-open bound.
func ExampleRanged() {
	g := gen.Ranged(0, 10)
	ctx := gen.NewContext(random.NewSource(1))
	v := g.Generate(ctx)
	fmt.Println("in range:", v >= 0 && v < 10)

	// Output:
	// in range: true
}

// ExampleCollection demonstrates that a Collection's drawn length never
// exceeds the context's size.
func ExampleCollection() {
	g := gen.Collection(gen.Arbitrary[int]())
	ctx := gen.NewContext(random.NewSource(1))
	ctx.Size = 20
	xs := g.Generate(ctx)
	fmt.Println("length within bound:", len(xs) <= 20)

	// Output:
	// length within bound: true
}

// ExampleCharacter_shrink demonstrates the canonical simplicity order
// Character's Shrink offers candidates in.
func ExampleCharacter_shrink() {
	g := gen.Character()
	fmt.Println(string(shrink.Collect(g.Shrink('3'))))

	// Output:
	// abcABC12
}
