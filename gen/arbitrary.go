package gen

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/katalvlaran/rcheck/shrink"
)

// registry maps a reflect.Type to the Generator[T] (stored as any)
// registered for it via RegisterArbitrary. init() in builtins.go seeds it
// with the built-in numeric, bool, rune and string defaults; callers can
// register their own types the same way, or shadow a built-in default by
// registering over it.
var registry sync.Map

// RegisterArbitrary installs g as the default generator for T. Later
// registrations for the same T replace earlier ones; builtins.go's init
// runs first, so application code loaded afterward can freely override
// any built-in default.
func RegisterArbitrary[T any](g Generator[T]) {
	registry.Store(arbitraryKey[T](), g)
}

// Arbitrary returns a Generator[T] that looks up whatever is currently
// registered for T on every call, rather than capturing the registration
// that existed when Arbitrary[T]() was called. This makes it safe to call
// Arbitrary[T]() once at package init time, before an application has
// registered its own override.
func Arbitrary[T any]() Generator[T] {
	return &arbitraryGen[T]{}
}

type arbitraryGen[T any] struct{}

func (arbitraryGen[T]) lookup() Generator[T] {
	v, ok := registry.Load(arbitraryKey[T]())
	if !ok {
		var zero T
		Fail("Arbitrary", fmt.Sprintf("no Arbitrary registered for %T; call gen.RegisterArbitrary[%T](...) first", zero, zero))
	}
	g, ok := v.(Generator[T])
	if !ok {
		var zero T
		Fail("Arbitrary", fmt.Sprintf("registry entry for %T has the wrong type", zero))
	}
	return g
}

func (a arbitraryGen[T]) Generate(ctx *Context) T {
	return Pick(ctx, a.lookup())
}

func (a arbitraryGen[T]) Shrink(v T) shrink.Iterator[T] {
	return a.lookup().Shrink(v)
}

func arbitraryKey[T any]() reflect.Type {
	var zero T
	return reflect.TypeOf(&zero).Elem()
}
