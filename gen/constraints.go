package gen

// SignedInteger is the set of built-in signed integer types Ranged,
// Arbitrary and the sign-constrained wrappers (NonZero, Positive,
// Negative) support.
type SignedInteger interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInteger is the set of built-in unsigned integer types those
// same combinators support.
type UnsignedInteger interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is the union Ranged itself is defined over: any built-in
// integer type, signed or unsigned.
type Integer interface {
	SignedInteger | UnsignedInteger
}
