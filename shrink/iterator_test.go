package shrink_test

import (
	"testing"

	"github.com/katalvlaran/rcheck/shrink"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNothing_Empty(t *testing.T) {
	it := shrink.Nothing[int]()
	_, ok := it.Next()
	assert.False(t, ok)
}

func TestConstantSeq_YieldsInOrderOnce(t *testing.T) {
	it := shrink.ConstantSeq([]int{3, 1, 2})
	require.Equal(t, []int{3, 1, 2}, shrink.Collect(it))
}

func TestMap_AppliesFunction(t *testing.T) {
	it := shrink.Map[int, string](shrink.ConstantSeq([]int{1, 2, 3}), func(x int) string {
		if x == 2 {
			return "two"
		}
		return "other"
	})
	require.Equal(t, []string{"other", "two", "other"}, shrink.Collect(it))
}

func TestSequentially_AThenB(t *testing.T) {
	it := shrink.Sequentially(shrink.ConstantSeq([]int{1, 2}), shrink.ConstantSeq([]int{3, 4}))
	require.Equal(t, []int{1, 2, 3, 4}, shrink.Collect(it))
}

func TestEachElement_ExhaustsPositionBeforeNext(t *testing.T) {
	xs := []int{10, 20}
	per := func(x int) shrink.Iterator[int] {
		return shrink.ConstantSeq([]int{x - 1, x - 2})
	}
	got := shrink.Collect(shrink.EachElement(xs, per))
	want := [][]int{
		{9, 20}, {8, 20}, // position 0 exhausted first
		{10, 19}, {10, 18}, // then position 1
	}
	require.Equal(t, want, got)
}

func TestEachElement_EmptyPerProducesNothingForThatPosition(t *testing.T) {
	xs := []int{1, 2, 3}
	per := func(x int) shrink.Iterator[int] {
		if x == 2 {
			return shrink.Nothing[int]()
		}
		return shrink.ConstantSeq([]int{0})
	}
	got := shrink.Collect(shrink.EachElement(xs, per))
	want := [][]int{{0, 2, 3}, {1, 2, 0}}
	require.Equal(t, want, got)
}

func TestRemoveChunks_LargestFirst(t *testing.T) {
	got := shrink.Collect(shrink.RemoveChunks([]int{1, 2, 3, 4}))
	require.NotEmpty(t, got)
	// First candidate removes the entire slice.
	assert.Equal(t, []int{}, got[0])
	// Last pass (chunk size 1) must include every single-element removal.
	singles := map[string]bool{}
	for _, c := range got {
		if len(c) == 3 {
			singles[sliceKey(c)] = true
		}
	}
	assert.True(t, singles[sliceKey([]int{2, 3, 4})])
	assert.True(t, singles[sliceKey([]int{1, 3, 4})])
	assert.True(t, singles[sliceKey([]int{1, 2, 4})])
	assert.True(t, singles[sliceKey([]int{1, 2, 3})])
}

func TestRemoveChunks_EmptyInput(t *testing.T) {
	got := shrink.Collect(shrink.RemoveChunks([]int{}))
	assert.Nil(t, got)
}

func TestRemoveChunks_SingleElement(t *testing.T) {
	got := shrink.Collect(shrink.RemoveChunks([]int{7}))
	require.Len(t, got, 1)
	assert.Equal(t, []int{}, got[0])
}

func sliceKey(xs []int) string {
	s := ""
	for _, x := range xs {
		s += string(rune('0' + x))
	}
	return s
}
