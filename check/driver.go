package check

import (
	"fmt"

	"github.com/katalvlaran/rcheck/gen"
	"github.com/katalvlaran/rcheck/random"
)

// PropertyFunc is a predicate a trial's generated value must satisfy.
// Returning false, or panicking, both count as a failing trial; a panic
// is recovered and treated exactly like a false return, so ordinary
// testify-style assertion helpers that panic on failure work as a
// PropertyFunc body without any adapter.
type PropertyFunc[T any] func(v T) bool

// searchConfig holds Search's optional knobs, set via SearchOption.
type searchConfig struct {
	maxShrinkSteps int
}

// SearchOption configures a Search or SearchConcurrent call.
type SearchOption func(*searchConfig)

// WithMaxShrinkSteps bounds how many candidates the shrink search will
// try before giving up and returning the best counterexample found so
// far. Zero (the default) means unbounded.
func WithMaxShrinkSteps(n int) SearchOption {
	return func(c *searchConfig) { c.maxShrinkSteps = n }
}

func buildConfig(opts []SearchOption) *searchConfig {
	cfg := &searchConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Sample draws a single value from g at the given size, with no property
// attached and no shrink tree built — useful for inspecting what a
// generator actually produces.
func Sample[T any](size int, g gen.Generator[T], seed uint64) T {
	ctx := gen.NewContext(random.NewSource(seed))
	ctx.Size = size
	return g.Generate(ctx)
}

// Search runs prop against up to trials independently-seeded values drawn
// from g. On the first failing trial it shrinks the failing value to a
// local minimum and returns a Counterexample; if every trial passes it
// returns a NoCounterexample.
func Search[T any](prop PropertyFunc[T], g gen.Generator[T], seed uint64, trials int, opts ...SearchOption) Outcome[T] {
	cfg := buildConfig(opts)
	root := random.NewSource(seed)

	for trial := 0; trial < trials; trial++ {
		trialStream := root.Split(uint64(trial))
		ctx := gen.NewContext(trialStream)
		node := gen.NewRoot(rootGenerator(g))

		v, err := gen.Safe(func() T { return node.Value(ctx).(T) })
		if err != nil {
			logger.WithField("trial", trial).WithError(err).Warn("check: discarding trial after generation failure")
			continue
		}

		if evalProperty(prop, v) {
			continue
		}

		logger.WithFields(map[string]any{"trial": trial, "seed": seed}).Warn("check: counterexample found, shrinking")
		final, steps := gen.ShrinkSearch(ctx, node, propertyCheck(prop), cfg.maxShrinkSteps)
		logger.WithFields(map[string]any{"shrink_steps": steps}).Warn("check: shrink search finished")
		return Counterexample[T](final.(T), steps)
	}

	return NoCounterexample[T](trials)
}

// evalProperty calls prop(v), recovering a panic into a plain false.
func evalProperty[T any](prop PropertyFunc[T], v T) (passed bool) {
	defer func() {
		if r := recover(); r != nil {
			passed = false
		}
	}()
	return prop(v)
}

// propertyCheck adapts a PropertyFunc into the type-erased gen.PropertyCheck
// the shrink search operates on.
func propertyCheck[T any](prop PropertyFunc[T]) gen.PropertyCheck {
	return func(value any) (bool, error) {
		v, ok := value.(T)
		if !ok {
			return false, fmt.Errorf("check: shrink candidate has unexpected type %T", value)
		}
		return evalProperty(prop, v), nil
	}
}

// rootGenerator wraps g in an identity Map so the node ShrinkSearch starts
// from always has a parent slot above the root generator's own node. Without
// this, a generator's own Shrink override (Collection's chunk removal, say)
// would never run when that generator is passed to Search directly, since
// the recursive walk only value-shrinks nodes it visits as someone else's
// child, never the root itself.
func rootGenerator[T any](g gen.Generator[T]) gen.Generator[T] {
	return gen.Map(g, func(v T) T { return v })
}
