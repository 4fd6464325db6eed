package gen

import "fmt"

// GenerationFailure marks a generator that gave up: SuchThat exhausted its
// retry budget, a registry lookup found no Arbitrary for a type, or a
// caller-supplied Rescue catcher decided the failure was not recoverable.
//
// Generate has no error return (see Generator), so a GenerationFailure is
// raised via panic and recovered at the nearest trial boundary — Safe, or
// the driver loops in package check. Code outside Generate never observes
// a raw panic; it observes an error.
type GenerationFailure struct {
	Generator string
	Reason    string
}

func (e *GenerationFailure) Error() string {
	return fmt.Sprintf("gen: %s: %s", e.Generator, e.Reason)
}

// Fail raises a GenerationFailure for the named generator. It never
// returns.
func Fail(generator, reason string) {
	panic(&GenerationFailure{Generator: generator, Reason: reason})
}

// Safe runs fn and converts any GenerationFailure panic it raises into an
// error. Panics that are not *GenerationFailure propagate unchanged: Safe
// is a boundary for this package's own failure signal, not a general
// recover-everything net.
func Safe[T any](fn func() T) (result T, err error) {
	defer func() {
		if r := recover(); r != nil {
			if gf, ok := r.(*GenerationFailure); ok {
				err = gf
				return
			}
			panic(r)
		}
	}()
	result = fn()
	return result, nil
}
