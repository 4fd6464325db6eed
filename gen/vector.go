package gen

// vectorGen draws exactly n independent values from elem and returns them
// as a slice. The length is fixed at construction time, not drawn.
//
// Vector has no Shrink override: each element is tracked as its own rose
// child (elem bound once per position), so the generic recursive shrink
// search already shrinks each position in turn by calling elem.Shrink on
// it — exactly the eachElement behavior a fixed-length container needs,
// with no extra code required here.
type vectorGen[T any] struct {
	Base[[]T]
	n    int
	elem Generator[T]
}

// Vector returns a Generator[[]T] producing slices of exactly n elements,
// each drawn independently from elem.
func Vector[T any](n int, elem Generator[T]) Generator[[]T] {
	if n < 0 {
		panic("gen: Vector requires n >= 0")
	}
	return &vectorGen[T]{n: n, elem: elem}
}

func (v *vectorGen[T]) Generate(ctx *Context) []T {
	out := make([]T, v.n)
	for i := range out {
		out[i] = Pick(ctx, v.elem)
	}
	return out
}
