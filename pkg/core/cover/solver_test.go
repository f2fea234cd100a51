package cover_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthiaskaeding/setcover/pkg/core/cover"
	"github.com/matthiaskaeding/setcover/pkg/core/index"
)

var allVariants = []cover.Variant{cover.VariantStandard, cover.VariantBitvec, cover.VariantTextbook}

// solveAll runs every variant over the same index and requires that
// they agree before returning the standard result.
func solveAll(t *testing.T, ix *index.Index, opts cover.Options) *cover.Result {
	t.Helper()
	var reference *cover.Result
	for _, variant := range allVariants {
		opts.Variant = variant
		result, err := cover.Solve(ix, opts)
		require.NoError(t, err, "variant %s", variant)
		require.True(t, cover.Verify(ix, result), "variant %s failed verification", variant)
		if reference == nil {
			reference = result
		} else {
			require.Equal(t, reference, result, "variant %s disagrees with %s", variant, allVariants[0])
		}
	}
	return reference
}

func TestSolve_GreedyWithTieBreak(t *testing.T) {
	// score(A)=2, score(B)=2, score(C)=1: the A/B tie goes to A, then B
	// covers the rest. C is never needed.
	ix := buildIndex(t, [][]int{
		{0, 1}, // A
		{1, 2}, // B
		{2},    // C
	}, 3)

	result := solveAll(t, ix, cover.Options{})
	assert.Equal(t, []index.SetID{0, 1}, result.Sets)
	assert.Equal(t, []cover.Step{{Set: 0, NewlyCovered: 2}, {Set: 1, NewlyCovered: 1}}, result.Steps)
	assert.Equal(t, cover.StatusFullCover, result.Status)
	assert.Equal(t, 3, result.CoveredCount)
	assert.Equal(t, 0, result.UncoveredCount)
	assert.Equal(t, 2, result.StepsTaken)
}

func TestSolve_SingleSetCoversUniverse(t *testing.T) {
	ix := buildIndex(t, [][]int{
		{0, 1},
		{0, 1, 2, 3, 4},
		{2, 3},
	}, 5)

	result := solveAll(t, ix, cover.Options{})
	assert.Equal(t, []index.SetID{1}, result.Sets)
	assert.Equal(t, 1, result.StepsTaken)
	assert.Equal(t, cover.StatusFullCover, result.Status)
}

func TestSolve_ZeroSetsNonzeroElements(t *testing.T) {
	ix, err := index.Build(nil, 0, 5)
	require.NoError(t, err)

	result := solveAll(t, ix, cover.Options{})
	assert.Empty(t, result.Sets)
	assert.Equal(t, cover.StatusResidualUncoverable, result.Status)
	assert.Equal(t, 5, result.UncoveredCount)
	assert.Equal(t, 0, result.CoveredCount)
}

func TestSolve_DisjointSetsOrderedBySizeThenID(t *testing.T) {
	ix := buildIndex(t, [][]int{
		{0, 1, 2},    // size 3
		{3, 4},       // size 2
		{5, 6, 7, 8}, // size 4
		{9},          // size 1
	}, 10)

	result := solveAll(t, ix, cover.Options{})
	assert.Equal(t, []index.SetID{2, 0, 1, 3}, result.Sets)
	assert.Equal(t, cover.StatusFullCover, result.Status)
	assert.Equal(t, 0, result.UncoveredCount)
}

func TestSolve_EmptyUniverse(t *testing.T) {
	ix, err := index.Build(nil, 0, 0)
	require.NoError(t, err)

	result := solveAll(t, ix, cover.Options{})
	assert.Empty(t, result.Sets)
	assert.Equal(t, cover.StatusFullCover, result.Status)
	assert.Equal(t, 0, result.UncoveredCount)
}

func TestSolve_ResidualUncoverable(t *testing.T) {
	// Elements 3 and 4 are in no set.
	ix := buildIndex(t, [][]int{{0, 1}, {1, 2}}, 5)

	result := solveAll(t, ix, cover.Options{})
	assert.Equal(t, []index.SetID{0, 1}, result.Sets)
	assert.Equal(t, cover.StatusResidualUncoverable, result.Status)
	assert.Equal(t, 3, result.CoveredCount)
	assert.Equal(t, 2, result.UncoveredCount)
}

func TestSolve_IterationCap(t *testing.T) {
	ix := buildIndex(t, [][]int{
		{0, 1, 2},
		{3, 4},
		{5},
	}, 6)

	result := solveAll(t, ix, cover.Options{MaxIterations: 2})
	assert.Equal(t, []index.SetID{0, 1}, result.Sets)
	assert.Equal(t, cover.StatusIterationCap, result.Status)
	assert.Equal(t, 2, result.StepsTaken)
	assert.Equal(t, 5, result.CoveredCount)
	assert.Equal(t, 1, result.UncoveredCount)
}

func TestSolve_CostWeightedRanking(t *testing.T) {
	// Set 0 covers more raw elements, but its cost makes set 1 the
	// better first pick: 4/4=1 versus 3/1=3.
	ix := buildIndex(t, [][]int{
		{0, 1, 2, 3},
		{0, 1, 2},
	}, 4)
	opts := cover.Options{Costs: []float64{4, 1}}

	result := solveAll(t, ix, opts)
	assert.Equal(t, []index.SetID{1, 0}, result.Sets)
	assert.Equal(t, []cover.Step{{Set: 1, NewlyCovered: 3}, {Set: 0, NewlyCovered: 1}}, result.Steps)
	assert.Equal(t, cover.StatusFullCover, result.Status)
}

func TestSolve_OptionErrors(t *testing.T) {
	ix := buildIndex(t, [][]int{{0}}, 1)

	testCases := []struct {
		name string
		opts cover.Options
	}{
		{"unknown variant", cover.Options{Variant: "greedy-optimal"}},
		{"unknown tie-break", cover.Options{TieBreak: "highest-id"}},
		{"wrong cost count", cover.Options{Costs: []float64{1, 2}}},
		{"non-positive cost", cover.Options{Costs: []float64{0}}},
		{"negative cap", cover.Options{MaxIterations: -1}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := cover.Solve(ix, tc.opts)
			assert.ErrorIs(t, err, cover.ErrOptions)
		})
	}
}

func TestSolve_DuplicatePairsAreIdempotent(t *testing.T) {
	base := []index.Pair{
		{Set: 0, Element: 0}, {Set: 0, Element: 1},
		{Set: 1, Element: 1}, {Set: 1, Element: 2},
		{Set: 2, Element: 2},
	}
	doubled := append(append([]index.Pair{}, base...), base...)

	onceIx, err := index.Build(base, 3, 3)
	require.NoError(t, err)
	twiceIx, err := index.Build(doubled, 3, 3)
	require.NoError(t, err)

	onceResult, err := cover.Solve(onceIx, cover.Options{})
	require.NoError(t, err)
	twiceResult, err := cover.Solve(twiceIx, cover.Options{})
	require.NoError(t, err)
	assert.Equal(t, onceResult, twiceResult)
}

func TestSolve_Deterministic(t *testing.T) {
	ix := randomIndex(t, 300, 60, 5_000, 42)

	first, err := cover.Solve(ix, cover.Options{})
	require.NoError(t, err)
	second, err := cover.Solve(ix, cover.Options{})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSolver_StepwiseMonotonicProgress(t *testing.T) {
	ix := randomIndex(t, 100, 40, 1_500, 9)
	solver, err := cover.NewSolver(ix, cover.Options{})
	require.NoError(t, err)

	uncovered := solver.Tracker().UncoveredCount()
	for !solver.Done() {
		step, err := solver.Step()
		if err != nil {
			assert.ErrorIs(t, err, cover.ErrSolveComplete)
			break
		}
		// Every committed selection must strictly reduce the uncovered count.
		next := solver.Tracker().UncoveredCount()
		assert.Positive(t, step.NewlyCovered)
		assert.Equal(t, uncovered-step.NewlyCovered, next)
		uncovered = next
	}
	require.True(t, solver.Done())

	// Further steps keep reporting completion without changing the result.
	final := *solver.Result()
	_, err = solver.Step()
	assert.ErrorIs(t, err, cover.ErrSolveComplete)
	assert.Equal(t, final, *solver.Result())

	// No duplicate selections.
	seen := make(map[index.SetID]bool)
	for _, s := range solver.Result().Sets {
		assert.False(t, seen[s], "set %d chosen twice", s)
		seen[s] = true
	}
}

func TestSolver_RejectsScanVariants(t *testing.T) {
	ix := buildIndex(t, [][]int{{0}}, 1)
	_, err := cover.NewSolver(ix, cover.Options{Variant: cover.VariantBitvec})
	assert.ErrorIs(t, err, cover.ErrOptions)
}

func TestSolve_VariantsAgreeOnRandomInstances(t *testing.T) {
	for _, seed := range []int64{1, 2, 3} {
		ix := randomIndex(t, 150, 48, 2_000, seed)
		solveAll(t, ix, cover.Options{})

		// Also with a cost vector derived from the same seed.
		rng := rand.New(rand.NewSource(seed))
		costs := make([]float64, ix.NumSets())
		for i := range costs {
			costs[i] = 0.5 + rng.Float64()*4
		}
		solveAll(t, ix, cover.Options{Costs: costs})
	}
}

// randomIndex builds a reproducible random membership index.
func randomIndex(t *testing.T, numSets, numElements, numRows int, seed int64) *index.Index {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	pairs := make([]index.Pair, numRows)
	for i := range pairs {
		pairs[i] = index.Pair{
			Set:     index.SetID(rng.Intn(numSets)),
			Element: index.ElementID(rng.Intn(numElements)),
		}
	}
	ix, err := index.Build(pairs, numSets, numElements)
	require.NoError(t, err)
	return ix
}
