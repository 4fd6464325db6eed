package gen

import "github.com/katalvlaran/rcheck/random"

// DefaultSize is the nominal size new top-level contexts start at, and the
// size OneOf's branch-index pick and similarly size-agnostic combinators
// use internally regardless of the ambient size.
const DefaultSize = 100

// Context carries everything a Generator needs to draw a value: the random
// stream, the current size parameter, the no-shrink flag, and (while a
// value is being materialized through a rose tree) the node whose children
// Pick should route draws through.
//
// A Context is never shared between goroutines; each independent
// generation stream owns one.
type Context struct {
	Stream   *random.Source
	Size     int
	noShrink bool
	current  *Node

	splitCounter uint64
}

// NewContext builds a context over stream at DefaultSize with no current
// rose node installed — suitable for a bare Generate call outside any
// shrink tree (Sample uses this).
func NewContext(stream *random.Source) *Context {
	return &Context{Stream: stream, Size: DefaultSize}
}

// Split returns a child Source derived from ctx.Stream without advancing
// ctx.Stream itself. Combinators that need to hand an independent stream
// to sub-generators (so that, e.g., drawing a length and drawing elements
// don't interact) call this directly; Pick does not call it, since a rose
// node already isolates its children's replay by position.
func (ctx *Context) Split() *random.Source {
	ctx.splitCounter++
	return ctx.Stream.Split(ctx.splitCounter)
}

// LetSize overrides ctx.Size for the duration of the caller's scope and
// returns a restore function. Idiomatic use is a defer right after the
// call:
//
//	restore := ctx.LetSize(newSize)
//	defer restore()
func (ctx *Context) LetSize(size int) (restore func()) {
	prev := ctx.Size
	ctx.Size = size
	return func() { ctx.Size = prev }
}

// LetNoShrink overrides the no-shrink flag for the duration of the
// caller's scope.
func (ctx *Context) LetNoShrink(v bool) (restore func()) {
	prev := ctx.noShrink
	ctx.noShrink = v
	return func() { ctx.noShrink = prev }
}

// NoShrink reports whether the context is currently inside a no-shrink
// scope (set by the NoShrink combinator, and internally by SuchThat, which
// retries draws without tracking them in the shrink tree).
func (ctx *Context) NoShrink() bool {
	return ctx.noShrink
}

// letCurrentNode overrides the node Pick routes through and returns a
// restore function. Passing nil suppresses tree-tracked draws entirely:
// Pick falls back to calling Generate directly.
func (ctx *Context) letCurrentNode(n *Node) (restore func()) {
	prev := ctx.current
	ctx.current = n
	return func() { ctx.current = prev }
}

// drawUntracked runs g at the given size with no rose node installed and
// the no-shrink flag set, so nested Pick calls inside g fall back to plain
// Generate calls instead of growing the caller's tree. SuchThat's retry
// loop uses this so that a rejected draw leaves no trace in the shrink
// tree.
func drawUntracked[T any](ctx *Context, size int, g Generator[T]) T {
	restoreSize := ctx.LetSize(size)
	defer restoreSize()
	restoreNode := ctx.letCurrentNode(nil)
	defer restoreNode()
	restoreFlag := ctx.LetNoShrink(true)
	defer restoreFlag()
	return g.Generate(ctx)
}
