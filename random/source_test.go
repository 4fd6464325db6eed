package random_test

import (
	"testing"

	"github.com/katalvlaran/rcheck/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSource_Deterministic(t *testing.T) {
	a := random.NewSource(42)
	b := random.NewSource(42)

	for i := 0; i < 100; i++ {
		require.Equal(t, a.NextUint64(), b.NextUint64())
	}
}

func TestSource_DifferentSeedsDiverge(t *testing.T) {
	a := random.NewSource(1)
	b := random.NewSource(2)

	assert.NotEqual(t, a.NextUint64(), b.NextUint64())
}

func TestSource_SplitDeterministic(t *testing.T) {
	parent1 := random.NewSource(7)
	parent2 := random.NewSource(7)

	childA := parent1.Split(3)
	childB := parent2.Split(3)

	assert.Equal(t, childA.NextUint64(), childB.NextUint64())
}

func TestSource_SplitLabelsDiverge(t *testing.T) {
	parent := random.NewSource(7)

	childA := parent.Split(1)
	childB := parent.Split(2)

	assert.NotEqual(t, childA.NextUint64(), childB.NextUint64())
}

func TestSource_SplitIndependentOfParentConsumption(t *testing.T) {
	// Splitting must not itself advance the parent stream.
	parent := random.NewSource(99)
	_ = parent.Split(5)
	next := parent.NextUint64()

	parent2 := random.NewSource(99)
	next2 := parent2.NextUint64()

	assert.Equal(t, next, next2)
}

func TestSource_IntnBounds(t *testing.T) {
	s := random.NewSource(123)
	for i := 0; i < 1000; i++ {
		v := s.Intn(7)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 7)
	}
}

func TestSource_IntnPanicsOnNonPositive(t *testing.T) {
	s := random.NewSource(1)
	assert.Panics(t, func() { s.Intn(0) })
	assert.Panics(t, func() { s.Intn(-1) })
}

func TestSource_Float64Range(t *testing.T) {
	s := random.NewSource(55)
	for i := 0; i < 1000; i++ {
		v := s.Float64()
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}
