package gen

import "github.com/katalvlaran/rcheck/shrink"

// mapGen applies f to the value inner draws. f's pre-image x is tracked as
// a single rose child, so the generic recursive search can still shrink
// it — and recompute f(x') automatically, since Generate always re-derives
// the result from the (possibly patched) child — even though plain Map has
// no Shrink override of its own and so never offers a direct [U] → [U]
// candidate when it is itself the node being replaced by an ancestor.
//
// That asymmetry is intentional and matches the generator this is modeled
// on: mapping loses the information needed to invert a U candidate back
// into a T to feed f, so without more the honest default is "no shrink of
// my own, but recursion into my pre-image still works." Callers who do
// know an inverse can use MapInvertible instead.
type mapGen[T, U any] struct {
	Base[U]
	inner Generator[T]
	f     func(T) U
}

// Map returns a Generator[U] that draws a T from inner and applies f.
func Map[T, U any](inner Generator[T], f func(T) U) Generator[U] {
	return &mapGen[T, U]{inner: inner, f: f}
}

func (m *mapGen[T, U]) Generate(ctx *Context) U {
	return m.f(Pick(ctx, m.inner))
}

// mapInvertibleGen is Map plus a caller-supplied inverse, used to recover
// a real Shrink: shrinking happens on the pre-image via inner.Shrink, then
// each candidate is mapped forward through f again.
type mapInvertibleGen[T, U any] struct {
	inner Generator[T]
	f     func(T) U
	inv   func(U) T
}

// MapInvertible returns a Generator[U] like Map, but with inv supplying an
// exact inverse of f so that Shrink can work directly on U by shrinking
// the recovered pre-image and mapping candidates back through f.
func MapInvertible[T, U any](inner Generator[T], f func(T) U, inv func(U) T) Generator[U] {
	return &mapInvertibleGen[T, U]{inner: inner, f: f, inv: inv}
}

func (m *mapInvertibleGen[T, U]) Generate(ctx *Context) U {
	return m.f(Pick(ctx, m.inner))
}

func (m *mapInvertibleGen[T, U]) Shrink(v U) shrink.Iterator[U] {
	return shrink.Map(m.inner.Shrink(m.inv(v)), m.f)
}
