// Package arbitrary is the public extension point for registering and
// looking up default generators by type.
//
// It is a thin, one-directional wrapper over gen's own type-indexed
// registry: gen needs RegisterArbitrary/Arbitrary internally (Character,
// NonZero, and the built-in numeric defaults all look themselves up
// through it), so the registry itself lives in gen to avoid a package
// cycle. This package just gives the lookup a name matching how callers
// outside gen are expected to spell it.
package arbitrary

import "github.com/katalvlaran/rcheck/gen"

// Register installs g as the default generator for T, visible to every
// subsequent call to For[T]() or gen.Arbitrary[T]() anywhere in the
// process.
func Register[T any](g gen.Generator[T]) {
	gen.RegisterArbitrary[T](g)
}

// For returns a Generator[T] that defers to whatever is currently
// registered for T.
func For[T any]() gen.Generator[T] {
	return gen.Arbitrary[T]()
}
