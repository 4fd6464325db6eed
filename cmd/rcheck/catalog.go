package main

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/rcheck/check"
	"github.com/katalvlaran/rcheck/gen"
)

// demoOutcome erases a RunRecord[T] to something main can report without
// knowing T, since the catalog mixes properties over several result types.
type demoOutcome struct {
	RunID       uuid.UUID
	Failed      bool
	TrialsRun   int
	Value       any
	ShrinkSteps int
}

// demoProperty is one entry in the built-in catalog runDemo wires
// flags/env down to.
type demoProperty interface {
	Name() string
	Run(seed uint64, trials, workers int) demoOutcome
}

type typedDemoProperty[T any] struct {
	name string
	gen  gen.Generator[T]
	prop check.PropertyFunc[T]
}

func (p typedDemoProperty[T]) Name() string { return p.name }

func (p typedDemoProperty[T]) Run(seed uint64, trials, workers int) demoOutcome {
	var outcome check.Outcome[T]
	if workers > 1 {
		outcome = check.SearchConcurrent(p.prop, p.gen, seed, trials, workers)
	} else {
		outcome = check.Search(p.prop, p.gen, seed, trials)
	}
	record := check.NewRunRecord(seed, outcome.TrialsRun, outcome)
	return demoOutcome{
		RunID:       record.RunID,
		Failed:      outcome.Failed,
		TrialsRun:   outcome.TrialsRun,
		Value:       outcome.Value,
		ShrinkSteps: outcome.ShrinkSteps,
	}
}

// demoCatalog is the handful of properties the CLI exercises: one that
// always holds, and a couple that are deliberately false so a run actually
// demonstrates shrinking.
func demoCatalog() []demoProperty {
	return []demoProperty{
		typedDemoProperty[[]int]{
			name: "sum_invariant_under_reversal",
			gen:  gen.Collection(gen.Arbitrary[int]()),
			prop: func(xs []int) bool {
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
			},
		},
		typedDemoProperty[[]int]{
			name: "list_never_contains_zero",
			gen:  gen.Collection(gen.Arbitrary[int]()),
			prop: func(xs []int) bool {
				for _, x := range xs {
					if x == 0 {
						return false
					}
				}
				return true
			},
		},
		typedDemoProperty[string]{
			name: "string_always_shorter_than_five",
			gen:  gen.Arbitrary[string](),
			prop: func(s string) bool {
				return len(s) < 5
			},
		},
	}
}

func runOne(p demoProperty, seed uint64, trials, workers int) demoOutcome {
	return p.Run(seed, trials, workers)
}
