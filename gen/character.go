package gen

import "github.com/katalvlaran/rcheck/shrink"

// canonicalChars is the fixed simplicity ordering Character's Shrink
// draws from: lowercase letters first, then uppercase, then digits.
var canonicalChars = []rune{'a', 'b', 'c', 'A', 'B', 'C', '1', '2', '3'}

// characterGen draws either an ASCII code point in [1, 128) or a nonzero
// Arbitrary[rune] (which, like every built-in signed Arbitrary, lies in
// [-size, size]), choosing between the two uniformly.
type characterGen struct {
	Base[rune]
}

// Character returns a Generator[rune] suited for building human-readable
// strings via Collection(Character()).
func Character() Generator[rune] {
	return &characterGen{}
}

func (characterGen) Generate(ctx *Context) rune {
	return Pick(ctx, OneOf[rune](
		Map(Ranged(1, 128), func(b int) rune { return rune(b) }),
		NonZero[rune](),
	))
}

// Shrink offers every canonical character strictly before v in the
// a<b<c<A<B<C<1<2<3 order, starting from 'a' — the most aggressive
// candidate first, same as the integer shrinkers in builtins.go offering
// 0 before anything closer to the original value. A v that is itself one
// of those nine anchors the cutoff at its own position; any other v
// (most draws, since few of Character's draws land on one of the nine)
// is treated as coming after all of them, so the full canonical list is
// offered — generalizing past the switch-fallthrough on exactly nine
// cases the generator this is modeled on uses, which otherwise leaves
// every other rune unshrinkable.
func (characterGen) Shrink(v rune) shrink.Iterator[rune] {
	idx := len(canonicalChars)
	for i, c := range canonicalChars {
		if c == v {
			idx = i
			break
		}
	}
	if idx <= 0 {
		return shrink.Nothing[rune]()
	}
	out := make([]rune, idx)
	copy(out, canonicalChars[:idx])
	return shrink.ConstantSeq(out)
}
