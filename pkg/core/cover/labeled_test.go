package cover_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthiaskaeding/setcover/pkg/core/cover"
)

func TestSolveLabeled_StringLabels(t *testing.T) {
	input := map[string][]string{
		"A": {"x", "y"},
		"B": {"y", "z"},
		"C": {"z"},
	}

	result, err := cover.SolveLabeled(input, cover.Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, result.Sets)
	assert.Equal(t, cover.StatusFullCover, result.Dense.Status)
	assert.Equal(t, 3, result.Dense.CoveredCount)
	assert.Equal(t, 0, result.Dense.UncoveredCount)
}

func TestSolveLabeled_TieGoesToLowestLabel(t *testing.T) {
	// Two disjoint equal-size sets: dense ids follow ascending label
	// order, so "alpha" wins the tie against "beta".
	input := map[string][]string{
		"beta":  {"a", "b"},
		"alpha": {"c", "d"},
	}

	result, err := cover.SolveLabeled(input, cover.Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, result.Sets)
}

func TestSolveLabeled_IntLabels(t *testing.T) {
	input := map[int][]int{
		1: {1, 2, 3, 4, 5, 6},
		2: {1, 2, 7},
		3: {3, 4, 8},
		4: {5, 6, 9},
		5: {7, 8, 9, 10},
	}

	result, err := cover.SolveLabeled(input, cover.Options{})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 5}, result.Sets)
	assert.Equal(t, cover.StatusFullCover, result.Dense.Status)
}

func TestSolveLabeled_EmptyInput(t *testing.T) {
	result, err := cover.SolveLabeled(map[string][]string{}, cover.Options{})
	require.NoError(t, err)
	assert.Empty(t, result.Sets)
	assert.Equal(t, cover.StatusFullCover, result.Dense.Status)
}

func TestSolveLabeled_EmptySetNeverChosen(t *testing.T) {
	input := map[string][]string{
		"full":  {"a", "b", "c"},
		"empty": {},
	}

	result, err := cover.SolveLabeled(input, cover.Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"full"}, result.Sets)
}
