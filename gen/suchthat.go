package gen

// maxSuchThatRetries bounds how many times SuchThat grows the draw size
// looking for a value that satisfies its predicate before giving up.
const maxSuchThatRetries = 100

// suchThatGen filters inner by pred, growing the size parameter by one on
// every rejection so that, e.g., filtering out zero from an integer
// generator that draws within [-size, size] doesn't retry forever at a
// size too small to ever produce a nonzero value.
//
// Retries draw inner untracked: a rejected attempt leaves no trace in the
// shrink tree, so SuchThat's own node ends up with no children of its
// own. It has no Shrink override either, matching the generator it is
// modeled on — a SuchThat value only gets smaller if whatever wraps it
// (Collection's removeChunks, say) replaces it wholesale.
type suchThatGen[T any] struct {
	Base[T]
	inner Generator[T]
	pred  func(T) bool
}

// SuchThat returns a Generator[T] that draws from inner and keeps redrawing,
// at increasing size, until pred accepts the value. It raises a
// GenerationFailure if pred has not accepted anything after
// maxSuchThatRetries attempts.
func SuchThat[T any](inner Generator[T], pred func(T) bool) Generator[T] {
	return &suchThatGen[T]{inner: inner, pred: pred}
}

func (g *suchThatGen[T]) Generate(ctx *Context) T {
	size := ctx.Size
	for attempt := 0; ; attempt++ {
		if attempt >= maxSuchThatRetries {
			Fail("SuchThat", "exhausted retries without satisfying predicate")
		}
		v := drawUntracked(ctx, size, g.inner)
		if g.pred(v) {
			return v
		}
		size++
	}
}
