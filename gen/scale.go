package gen

import "github.com/katalvlaran/rcheck/shrink"

// scaleGen runs inner with ctx.Size replaced by f(ctx.Size) rather than a
// fixed value, so the relationship to the ambient size is preserved
// (useful for, e.g., halving how aggressively a nested collection grows
// relative to its parent).
type scaleGen[T any] struct {
	inner Generator[T]
	f     func(int) int
}

// Scale returns a Generator[T] identical to inner except that its size is
// computed from the ambient size by f instead of used as-is.
func Scale[T any](f func(int) int, inner Generator[T]) Generator[T] {
	return &scaleGen[T]{inner: inner, f: f}
}

func (g *scaleGen[T]) Generate(ctx *Context) T {
	restore := ctx.LetSize(g.f(ctx.Size))
	defer restore()
	return Pick(ctx, g.inner)
}

func (g *scaleGen[T]) Shrink(v T) shrink.Iterator[T] {
	return g.inner.Shrink(v)
}
