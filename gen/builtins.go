package gen

import "github.com/katalvlaran/rcheck/shrink"

// arbitrarySignedGen draws a value in [-size, size] and shrinks it toward
// zero.
type arbitrarySignedGen[T SignedInteger] struct{}

func (arbitrarySignedGen[T]) Generate(ctx *Context) T {
	size := ctx.Size
	if size < 1 {
		size = 1
	}
	return Pick(ctx, Ranged(T(-size), T(size)+1))
}

func (arbitrarySignedGen[T]) Shrink(v T) shrink.Iterator[T] {
	return shrink.ConstantSeq(shrinkTowardZeroSigned(v))
}

// arbitraryUnsignedGen draws a value in [0, size] and shrinks it toward
// zero.
type arbitraryUnsignedGen[T UnsignedInteger] struct{}

func (arbitraryUnsignedGen[T]) Generate(ctx *Context) T {
	size := ctx.Size
	if size < 1 {
		size = 1
	}
	return Pick(ctx, Ranged(T(0), T(size)+1))
}

func (arbitraryUnsignedGen[T]) Shrink(v T) shrink.Iterator[T] {
	return shrink.ConstantSeq(shrinkTowardZeroUnsigned(v))
}

// shrinkTowardZeroSigned produces the same candidate sequence a default
// integer shrinker produces: zero first, then successively narrower
// +/- pairs obtained by repeatedly halving the distance between zero and
// v, converging on v itself without ever reaching it.
func shrinkTowardZeroSigned[T SignedInteger](v T) []T {
	if v == 0 {
		return nil
	}
	out := []T{0}
	for d := v; d != 0; {
		d = d / 2
		if d == 0 {
			break
		}
		cand := v - d
		out = append(out, cand)
		if cand != -cand {
			out = append(out, -cand)
		}
	}
	return out
}

// shrinkTowardZeroUnsigned is shrinkTowardZeroSigned without the negated
// half of each pair, since an unsigned value has no negative counterpart.
func shrinkTowardZeroUnsigned[T UnsignedInteger](v T) []T {
	if v == 0 {
		return nil
	}
	out := []T{0}
	for d := v; d != 0; {
		d = d / 2
		if d == 0 {
			break
		}
		out = append(out, v-d)
	}
	return out
}

type arbitraryBoolGen struct{}

func (arbitraryBoolGen) Generate(ctx *Context) bool {
	return ctx.Stream.Intn(2) == 1
}

func (arbitraryBoolGen) Shrink(v bool) shrink.Iterator[bool] {
	if v {
		return shrink.ConstantSeq([]bool{false})
	}
	return shrink.Nothing[bool]()
}

func init() {
	RegisterArbitrary[int](arbitrarySignedGen[int]{})
	RegisterArbitrary[int8](arbitrarySignedGen[int8]{})
	RegisterArbitrary[int16](arbitrarySignedGen[int16]{})
	RegisterArbitrary[int32](arbitrarySignedGen[int32]{})
	RegisterArbitrary[int64](arbitrarySignedGen[int64]{})

	RegisterArbitrary[uint](arbitraryUnsignedGen[uint]{})
	RegisterArbitrary[uint8](arbitraryUnsignedGen[uint8]{})
	RegisterArbitrary[uint16](arbitraryUnsignedGen[uint16]{})
	RegisterArbitrary[uint32](arbitraryUnsignedGen[uint32]{})
	RegisterArbitrary[uint64](arbitraryUnsignedGen[uint64]{})

	RegisterArbitrary[bool](arbitraryBoolGen{})

	RegisterArbitrary[string](MapInvertible(
		Collection(Character()),
		func(rs []rune) string { return string(rs) },
		func(s string) []rune { return []rune(s) },
	))
}
