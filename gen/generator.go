package gen

import (
	"fmt"

	"github.com/katalvlaran/rcheck/shrink"
)

// Generator produces values of T and proposes smaller candidates for a T
// it already produced.
//
// Generate must be a pure function of ctx.Stream and ctx.Size: calling it
// twice with the same stream state and size must produce the same value.
// This is what lets the rose tree replay a node's value after its siblings
// change without re-drawing randomness it already consumed.
//
// Shrink has no default on the interface itself; combinators that don't
// override it get shrink.Nothing via Base.
type Generator[T any] interface {
	Generate(ctx *Context) T
	Shrink(v T) shrink.Iterator[T]
}

// Base gives a combinator struct a default empty Shrink by embedding it.
// Most combinators that rely on the rose tree's structural recursion to
// shrink their children (OneOf, Vector, TupleOf3, PairOf) embed Base and
// never need to write a Shrink method at all.
type Base[T any] struct{}

func (Base[T]) Shrink(T) shrink.Iterator[T] {
	return shrink.Nothing[T]()
}

// erasedGenerator is the type-erased view of a Generator[T] used to store
// heterogeneous generators on a single Node type. erasedAdapter is the
// only implementation; it exists so rose.go never needs a type parameter
// on Node itself even though every position in a tree carries a different
// T.
type erasedGenerator interface {
	generateAny(ctx *Context) any
	shrinkAny(v any) shrink.Iterator[any]
	name() string
}

type erasedAdapter[T any] struct {
	g Generator[T]
}

func (a erasedAdapter[T]) generateAny(ctx *Context) any {
	return a.g.Generate(ctx)
}

func (a erasedAdapter[T]) shrinkAny(v any) shrink.Iterator[any] {
	return shrink.Map(a.g.Shrink(v.(T)), func(t T) any { return t })
}

func (a erasedAdapter[T]) name() string {
	return typeName[T]()
}

func erase[T any](g Generator[T]) erasedGenerator {
	return erasedAdapter[T]{g: g}
}

func typeName[T any]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}

// Pick draws a value from g. If ctx carries a current rose node and is not
// inside a no-shrink scope, the draw is routed through that node's next
// child at this call's position, making the draw part of the shrink tree;
// otherwise g.Generate(ctx) is called directly.
//
// Every combinator that composes sub-generators must draw them with Pick,
// never Generate, or the composition becomes opaque to the shrink search.
func Pick[T any](ctx *Context, g Generator[T]) T {
	if ctx.current == nil || ctx.noShrink {
		return g.Generate(ctx)
	}
	child := ctx.current.nextChildFor(erase(g))
	return child.value(ctx).(T)
}
