package gen_test

import (
	"testing"

	"github.com/katalvlaran/rcheck/gen"
	"github.com/katalvlaran/rcheck/random"
	"github.com/katalvlaran/rcheck/shrink"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharacter_ProducesNonZeroRune(t *testing.T) {
	g := gen.Character()
	ctx := gen.NewContext(random.NewSource(4))
	for i := 0; i < 500; i++ {
		assert.NotEqual(t, rune(0), g.Generate(ctx))
	}
}

func TestCharacter_ShrinkOfCanonicalMinimumIsEmpty(t *testing.T) {
	g := gen.Character()
	require.Empty(t, shrink.Collect(g.Shrink('a')))
}

func TestCharacter_ShrinkOffersStrictlySimplerCandidatesInCanonicalOrder(t *testing.T) {
	g := gen.Character()
	got := shrink.Collect(g.Shrink('3'))
	want := []rune{'a', 'b', 'c', 'A', 'B', 'C', '1', '2'}
	assert.Equal(t, want, got)
}

func TestCharacter_ShrinkOfUnknownRuneOffersFullCanonicalList(t *testing.T) {
	g := gen.Character()
	got := shrink.Collect(g.Shrink('@'))
	want := []rune{'a', 'b', 'c', 'A', 'B', 'C', '1', '2', '3'}
	assert.Equal(t, want, got)
}
