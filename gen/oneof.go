package gen

// oneOfGen picks one of several same-typed generators uniformly and
// delegates to it.
//
// OneOf has no Shrink override of its own: the rose tree records two
// children for every draw — the index pick and the chosen branch's draw —
// and the generic recursive shrink search (see shrink_search.go) recurses
// into the chosen branch's own subtree exactly as it would for any other
// generator. The search can also replace the index child with a smaller
// index, but that does not switch alternatives: on re-materialization the
// branch position reuses its existing child, so the chosen alternative and
// its value stay as first drawn.
type oneOfGen[T any] struct {
	Base[T]
	alternatives []Generator[T]
}

// OneOf returns a Generator[T] that draws uniformly from alternatives. It
// panics if alternatives is empty.
func OneOf[T any](alternatives ...Generator[T]) Generator[T] {
	if len(alternatives) == 0 {
		panic("gen: OneOf requires at least one alternative")
	}
	return &oneOfGen[T]{alternatives: alternatives}
}

func (g *oneOfGen[T]) Generate(ctx *Context) T {
	idx := Pick(ctx, Resize(DefaultSize, Ranged(0, len(g.alternatives))))
	return Pick(ctx, g.alternatives[idx])
}

// weightedAlt pairs a generator with its relative selection weight for
// Frequency.
type weightedAlt[T any] struct {
	Weight int
	Gen    Generator[T]
}

// Weighted builds one Frequency alternative.
func Weighted[T any](weight int, g Generator[T]) weightedAlt[T] {
	return weightedAlt[T]{Weight: weight, Gen: g}
}

// frequencyGen is OneOf with non-uniform selection: alternatives with a
// larger weight are proportionally more likely to be picked.
type frequencyGen[T any] struct {
	Base[T]
	alts  []weightedAlt[T]
	total int
}

// Frequency returns a Generator[T] that picks among alts with probability
// proportional to each alternative's weight. It panics if alts is empty or
// every weight is non-positive.
func Frequency[T any](alts ...weightedAlt[T]) Generator[T] {
	if len(alts) == 0 {
		panic("gen: Frequency requires at least one alternative")
	}
	total := 0
	for _, a := range alts {
		if a.Weight > 0 {
			total += a.Weight
		}
	}
	if total == 0 {
		panic("gen: Frequency requires at least one positive weight")
	}
	return &frequencyGen[T]{alts: alts, total: total}
}

func (g *frequencyGen[T]) Generate(ctx *Context) T {
	n := Pick(ctx, Resize(DefaultSize, Ranged(0, g.total)))
	for _, a := range g.alts {
		if a.Weight <= 0 {
			continue
		}
		if n < a.Weight {
			return Pick(ctx, a.Gen)
		}
		n -= a.Weight
	}
	// Unreachable given total is the sum of the positive weights, but the
	// compiler can't see that.
	return Pick(ctx, g.alts[len(g.alts)-1].Gen)
}
