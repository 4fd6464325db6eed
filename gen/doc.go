// Package gen is the generator combinator algebra and the rose-tree
// engine that backs it.
//
// A Generator[T] knows how to produce a T (Generate) and how to propose
// smaller candidates for a T it already produced (Shrink). Every
// combinator in this package — Constant, Ranged, SuchThat, OneOf, Vector,
// Collection, PairOf, TupleOf3, Map, Resize, Scale, NoShrink, Rescue,
// Character, and the sign-constrained integer wrappers — builds a
// Generator[T] out of smaller ones.
//
// Every draw, whether made directly by a caller or nested inside another
// combinator, funnels through Pick. Pick is what makes the shrink tree
// possible: when a Context has a current rose-tree node installed, Pick
// routes the draw through that node's children instead of calling Generate
// directly, so the exact structure of a composite value's decomposition is
// recorded and can later be walked by the shrink search.
//
// Concurrency: a *Context is never shared between goroutines. Each
// goroutine (each SearchConcurrent worker, each independent Sample call)
// builds its own Context over its own random.Source.
package gen
