package cover_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthiaskaeding/setcover/pkg/core/cover"
	"github.com/matthiaskaeding/setcover/pkg/core/index"
)

// buildIndex is a test helper constructing an index from set contents.
func buildIndex(t *testing.T, setContents [][]int, numElements int) *index.Index {
	t.Helper()
	var pairs []index.Pair
	for s, elements := range setContents {
		for _, e := range elements {
			pairs = append(pairs, index.Pair{Set: index.SetID(s), Element: index.ElementID(e)})
		}
	}
	ix, err := index.Build(pairs, len(setContents), numElements)
	require.NoError(t, err)
	return ix
}

func TestTracker_InitialScores(t *testing.T) {
	ix := buildIndex(t, [][]int{{0, 1, 2}, {1, 2}, {}}, 3)
	tracker := cover.NewTracker(ix)

	assert.Equal(t, int32(3), tracker.Score(0))
	assert.Equal(t, int32(2), tracker.Score(1))
	assert.Equal(t, int32(0), tracker.Score(2))
	assert.Equal(t, 0, tracker.CoveredCount())
	assert.Equal(t, 3, tracker.UncoveredCount())
}

func TestTracker_MarkCoveredDecrementsAffectedSets(t *testing.T) {
	ix := buildIndex(t, [][]int{{0, 1}, {1, 2}, {2}}, 3)
	tracker := cover.NewTracker(ix)

	assert.Equal(t, []index.SetID{0, 1}, tracker.AffectedSets(1))

	require.True(t, tracker.MarkCovered(1))
	assert.Equal(t, int32(1), tracker.Score(0))
	assert.Equal(t, int32(1), tracker.Score(1))
	assert.Equal(t, int32(1), tracker.Score(2))
	assert.True(t, tracker.IsCovered(1))
	assert.Equal(t, 1, tracker.CoveredCount())
	assert.Equal(t, 2, tracker.UncoveredCount())
}

func TestTracker_MarkCoveredIsIdempotent(t *testing.T) {
	ix := buildIndex(t, [][]int{{0, 1}, {1, 2}}, 3)
	tracker := cover.NewTracker(ix)

	require.True(t, tracker.MarkCovered(1))
	assert.False(t, tracker.MarkCovered(1))
	// Scores must not drift on the repeated call.
	assert.Equal(t, int32(1), tracker.Score(0))
	assert.Equal(t, int32(1), tracker.Score(1))
	assert.Equal(t, 1, tracker.CoveredCount())
}
