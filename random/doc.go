// Package random provides the deterministic, splittable pseudo-random
// stream that underlies every draw made by a Generator.
//
// A Source is seeded once and then split along a path of integer labels;
// the same (seed, path) always reaches the same internal state and so
// always yields the same sequence of words. This is what makes shrink
// replay meaningful: re-materializing a rose-tree node with the same seed
// and the same position in the tree reproduces the exact random state that
// produced it the first time.
//
// The generator is SplitMix64. It is not cryptographically secure and is
// not intended to be; it only needs to pass basic statistical sanity and
// to split cheaply and deterministically.
package random
