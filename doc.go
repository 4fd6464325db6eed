// Package rcheck is a property-based testing library: write a predicate
// over arbitrary-but-structured values, and rcheck searches for an input
// that breaks it, then minimizes whatever it finds down to the smallest
// reproducible counterexample.
//
// 🚀 What is rcheck?
//
//	A small, dependency-light library that brings together:
//		• A deterministic, splittable random source (random/)
//		• A lazy, composable shrink-candidate algebra (shrink/)
//		• A generator combinator library backed by a rose tree, so every
//		  generated value carries its own minimization strategy (gen/)
//		• A property driver that runs trials, shrinks failures, and reports
//		  a reproducible run record (check/)
//		• A demonstration CLI wiring the above to flags, env vars, and a
//		  config file (cmd/rcheck/)
//
// ✨ Why choose rcheck?
//
//   - Deterministic — same seed, same counterexample, every time
//   - Composable — generators are ordinary values; build new ones by
//     combining existing ones, never by subclassing
//   - Minimal by construction — shrinking falls out of the same rose tree
//     that generation builds, not a separate bolt-on pass
//
// Under the hood, everything is organized under six subpackages:
//
//	random/    — deterministic, splittable pseudo-random streams
//	shrink/    — lazy shrink-candidate iterators and their combinators
//	gen/       — the Generator[T] algebra and the rose-tree shrink engine
//	arbitrary/ — the public default-generator registry for a type
//	check/     — Search, Sample, SearchConcurrent, and run records
//	cmd/rcheck/ — a demonstration CLI over the above
//
// Quick example:
//
//	prop := func(xs []int) bool {
//		sum := 0
//		for _, x := range xs {
//			sum += x
//		}
//		return sum >= 0 || len(xs) > 0
//	}
//	outcome := check.Search(prop, gen.Collection(gen.Arbitrary[int]()), 1, 200)
//	if outcome.Failed {
//		fmt.Println("counterexample:", outcome.Value)
//	}
package rcheck
