// Package shrink implements the lazy shrink-candidate iterator algebra.
//
// An Iterator[T] is a finite, forward-only, exhaustible sequence of
// candidate "smaller" values for some T that a Generator produced. The
// algebra here is deliberately small and closed: Nothing, ConstantSeq, Map,
// Sequentially, EachElement and RemoveChunks are composed by the gen
// package's combinators to build every generator's Shrink method.
//
// Ordering matters throughout: earlier candidates from an Iterator are
// considered more aggressive shrinks, and the shrink search in the rose
// tree engine commits to the first candidate that still fails its
// property, so callers should order iterators from most to least
// aggressive.
package shrink
