package gen_test

import (
	"testing"

	"github.com/katalvlaran/rcheck/gen"
	"github.com/katalvlaran/rcheck/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuchThat_FiltersValues(t *testing.T) {
	g := gen.SuchThat(gen.Ranged(0, 10), func(v int) bool { return v%2 == 0 })
	ctx := gen.NewContext(random.NewSource(3))
	for i := 0; i < 200; i++ {
		v := g.Generate(ctx)
		assert.Equal(t, 0, v%2)
	}
}

func TestSuchThat_GivesUpAndRaisesGenerationFailure(t *testing.T) {
	g := gen.SuchThat(gen.Ranged(0, 10), func(int) bool { return false })
	_, err := gen.Safe(func() int {
		return g.Generate(gen.NewContext(random.NewSource(1)))
	})
	require.Error(t, err)
	var gf *gen.GenerationFailure
	assert.ErrorAs(t, err, &gf)
}

func TestNonZero_NeverProducesZero(t *testing.T) {
	g := gen.NonZero[int]()
	ctx := gen.NewContext(random.NewSource(11))
	for i := 0; i < 200; i++ {
		assert.NotEqual(t, 0, g.Generate(ctx))
	}
}

func TestPositive_AlwaysGreaterThanZero(t *testing.T) {
	g := gen.Positive[int]()
	ctx := gen.NewContext(random.NewSource(12))
	for i := 0; i < 200; i++ {
		assert.Greater(t, g.Generate(ctx), 0)
	}
}

func TestNegative_AlwaysLessThanZero(t *testing.T) {
	g := gen.Negative[int]()
	ctx := gen.NewContext(random.NewSource(13))
	for i := 0; i < 200; i++ {
		assert.Less(t, g.Generate(ctx), 0)
	}
}
