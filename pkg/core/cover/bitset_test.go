package cover

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/matthiaskaeding/setcover/pkg/core/index"
)

func TestMakeBitSet(t *testing.T) {
	b := MakeBitSet(70, []index.ElementID{0, 63, 64, 69, 69})
	assert.Len(t, b, 2)
	assert.Equal(t, 4, b.Count())
	assert.True(t, b.Contains(0))
	assert.True(t, b.Contains(63))
	assert.True(t, b.Contains(64))
	assert.True(t, b.Contains(69))
	assert.False(t, b.Contains(1))
}

func TestMakeUncovered_MasksExcessBits(t *testing.T) {
	testCases := []struct {
		universe int
		words    int
	}{
		{0, 0},
		{1, 1},
		{64, 1},
		{65, 2},
		{130, 3},
	}
	for _, tc := range testCases {
		b := makeUncovered(tc.universe)
		assert.Len(t, b, tc.words, "universe %d", tc.universe)
		assert.Equal(t, tc.universe, b.Count(), "universe %d", tc.universe)
	}
}

func TestCoverageGain(t *testing.T) {
	set := MakeBitSet(100, []index.ElementID{1, 50, 80, 99})
	uncovered := makeUncovered(100)
	assert.Equal(t, 4, CoverageGain(set, uncovered))

	// Clearing covered elements reduces the gain.
	covered := MakeBitSet(100, []index.ElementID{50, 99})
	for i := range uncovered {
		uncovered[i] &^= covered[i]
	}
	assert.Equal(t, 2, CoverageGain(set, uncovered))
}
