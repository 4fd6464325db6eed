package random

// goldenGamma is the SplitMix64 golden-ratio increment. Any odd constant
// works; this one is the value used by the reference SplitMix64 and Java's
// java.util.SplitableRandom, chosen for its good bit-avalanche properties.
const goldenGamma = 0x9E3779B97F4A7C15

// Source is a deterministic, splittable pseudo-random stream.
//
// A Source is cheap to copy by value conceptually but is carried as a
// pointer here because NextUint64 mutates internal state; callers that
// need an independent stream must call Split, never copy the struct and
// mutate both.
type Source struct {
	state uint64
}

// NewSource seeds a fresh Source. The same seed always produces the same
// sequence of NextUint64 results and the same Split children.
func NewSource(seed uint64) *Source {
	return &Source{state: seed}
}

// NextUint64 consumes and returns the next word of the stream.
func (s *Source) NextUint64() uint64 {
	s.state += goldenGamma
	return mix64(s.state)
}

// Intn returns a value uniformly distributed over [0, n) using rejection
// sampling against the smallest power-of-two mask covering n, avoiding the
// modulo bias of `NextUint64() % n`. Panics if n <= 0.
func (s *Source) Intn(n int) int {
	if n <= 0 {
		panic("random: Intn requires n > 0")
	}
	un := uint64(n)
	mask := maskFor(un)
	for {
		v := s.NextUint64() & mask
		if v < un {
			return int(v)
		}
	}
}

// Float64 returns a value in [0, 1) derived from the next word's top 53
// bits, matching the precision of a float64 mantissa.
func (s *Source) Float64() float64 {
	return float64(s.NextUint64()>>11) / (1 << 53)
}

// Split derives an independent child stream from this Source's current
// state and the given path label. Splitting does not consume this
// Source's own stream (repeated splits with the same label from the same
// parent state yield identical children); advancing the parent via
// NextUint64 first changes what any later Split(label) will produce,
// which is exactly the desired "one child per distinct tree position"
// behavior used by the rose tree engine.
func (s *Source) Split(label uint64) *Source {
	child := mix64(s.state ^ (label*goldenGamma + 1))
	return &Source{state: child}
}

// maskFor returns the smallest (1<<k)-1 mask with 1<<k >= n.
func maskFor(n uint64) uint64 {
	mask := uint64(1)
	for mask < n {
		mask <<= 1
	}
	return mask - 1
}

// mix64 is SplitMix64's output mixing function (MurmurHash3-style
// finalizer), applied to a running state word to produce a well-avalanched
// 64-bit output.
func mix64(z uint64) uint64 {
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}
