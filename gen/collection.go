package gen

import "github.com/katalvlaran/rcheck/shrink"

// collectionGen draws a length uniformly from [0, ctx.Size], then that
// many independent elements from elem.
//
// Unlike Vector, Collection overrides Shrink: removing a contiguous chunk
// changes how many rose children the node has, which the generic
// recursive search (built only to replace an existing position's value,
// never to add or remove positions) cannot express. Collection sidesteps
// that entirely by shrinking at the value level — RemoveChunks and
// EachElement both operate on a plain []T, not on the tree — and the
// result is spliced back in as a single pinned replacement for
// Collection's whole node. Because the replacement is pinned, none of its
// elements get their own subtree in the process; any finer per-character
// shrinking the element type could still do (e.g. Character) happens
// through EachElement calling elem.Shrink directly on each value, not
// through further tree recursion.
type collectionGen[T any] struct {
	elem Generator[T]
}

// Collection returns a Generator[[]T] producing slices of length in
// [0, size], inclusive of size, each element drawn independently from
// elem.
func Collection[T any](elem Generator[T]) Generator[[]T] {
	return &collectionGen[T]{elem: elem}
}

func (c *collectionGen[T]) Generate(ctx *Context) []T {
	n := Pick(ctx, Resize(DefaultSize, Ranged(0, ctx.Size+1)))
	out := make([]T, n)
	for i := range out {
		out[i] = Pick(ctx, c.elem)
	}
	return out
}

func (c *collectionGen[T]) Shrink(v []T) shrink.Iterator[[]T] {
	return shrink.Sequentially(
		shrink.RemoveChunks(v),
		shrink.EachElement(v, c.elem.Shrink),
	)
}
