package gen

import "github.com/katalvlaran/rcheck/shrink"

// resizeGen runs inner with ctx.Size pinned to a fixed value, regardless
// of the ambient size the caller is using.
type resizeGen[T any] struct {
	inner Generator[T]
	size  int
}

// Resize returns a Generator[T] identical to inner except that it always
// generates as though the context's size were fixed at size. Shrink is
// delegated unchanged to inner: size only affects Generate.
func Resize[T any](size int, inner Generator[T]) Generator[T] {
	return &resizeGen[T]{inner: inner, size: size}
}

func (g *resizeGen[T]) Generate(ctx *Context) T {
	restore := ctx.LetSize(g.size)
	defer restore()
	return Pick(ctx, g.inner)
}

func (g *resizeGen[T]) Shrink(v T) shrink.Iterator[T] {
	return g.inner.Shrink(v)
}
