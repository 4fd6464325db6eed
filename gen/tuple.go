package gen

// Pair is the result type of PairOf.
type Pair[A, B any] struct {
	First  A
	Second B
}

// pairGen draws First then Second, tracking each as its own rose child.
//
// No Shrink override: the generic recursive search walks child 0 (First)
// to exhaustion — recursing into it and falling back to its own Shrink —
// before ever looking at child 1 (Second), which is exactly "shrink the
// first component fully with the second held fixed, then move on."
type pairGen[A, B any] struct {
	Base[Pair[A, B]]
	first  Generator[A]
	second Generator[B]
}

// PairOf returns a Generator[Pair[A, B]] drawing First from first and
// Second from second independently.
func PairOf[A, B any](first Generator[A], second Generator[B]) Generator[Pair[A, B]] {
	return &pairGen[A, B]{first: first, second: second}
}

func (p *pairGen[A, B]) Generate(ctx *Context) Pair[A, B] {
	a := Pick(ctx, p.first)
	b := Pick(ctx, p.second)
	return Pair[A, B]{First: a, Second: b}
}

// Triple is the result type of TupleOf3.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// tripleGen is TupleOf for three independently-typed components, built
// the same way pairGen is: no Shrink override, each component tracked as
// its own rose child and shrunk in order by the generic search.
type tripleGen[A, B, C any] struct {
	Base[Triple[A, B, C]]
	first  Generator[A]
	second Generator[B]
	third  Generator[C]
}

// TupleOf3 returns a Generator[Triple[A, B, C]] drawing each component
// independently, in order.
func TupleOf3[A, B, C any](first Generator[A], second Generator[B], third Generator[C]) Generator[Triple[A, B, C]] {
	return &tripleGen[A, B, C]{first: first, second: second, third: third}
}

func (t *tripleGen[A, B, C]) Generate(ctx *Context) Triple[A, B, C] {
	a := Pick(ctx, t.first)
	b := Pick(ctx, t.second)
	c := Pick(ctx, t.third)
	return Triple[A, B, C]{First: a, Second: b, Third: c}
}
