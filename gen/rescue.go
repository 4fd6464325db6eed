package gen

// rescueGen runs inner and, if it raises a GenerationFailure, calls
// catcher with the failure reason to produce a fallback value instead of
// letting the failure propagate.
//
// Rescue only intercepts this package's own failure signal. A plain Go
// panic unrelated to generation (a programming error in a caller-supplied
// predicate, say) is not a GenerationFailure and passes straight through.
type rescueGen[T any] struct {
	Base[T]
	inner   Generator[T]
	catcher func(reason string) T
}

// Rescue returns a Generator[T] that falls back to catcher(reason) if
// inner raises a GenerationFailure instead of producing a value.
func Rescue[T any](inner Generator[T], catcher func(reason string) T) Generator[T] {
	return &rescueGen[T]{inner: inner, catcher: catcher}
}

func (g *rescueGen[T]) Generate(ctx *Context) T {
	v, err := Safe(func() T { return Pick(ctx, g.inner) })
	if err != nil {
		return g.catcher(err.Error())
	}
	return v
}
