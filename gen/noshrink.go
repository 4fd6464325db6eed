package gen

// noShrinkGen delegates Generate to inner but always reports an empty
// shrink sequence, regardless of what inner.Shrink would have produced.
// Wrap a generator in NoShrink when its value is structural (an id, a key
// that must stay stable across a test) rather than a candidate the search
// should ever try to simplify.
type noShrinkGen[T any] struct {
	Base[T]
	inner Generator[T]
}

// NoShrink returns a Generator[T] that behaves like inner for generation
// but never shrinks.
func NoShrink[T any](inner Generator[T]) Generator[T] {
	return &noShrinkGen[T]{inner: inner}
}

func (g *noShrinkGen[T]) Generate(ctx *Context) T {
	restore := ctx.LetNoShrink(true)
	defer restore()
	return g.inner.Generate(ctx)
}
