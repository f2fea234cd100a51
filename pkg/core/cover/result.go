package cover

import (
	"github.com/matthiaskaeding/setcover/pkg/core/index"
	"github.com/matthiaskaeding/setcover/pkg/core/sets"
)

// Status describes why a solve terminated.
type Status string

const (
	// StatusRunning means the selector loop has not terminated yet.
	StatusRunning Status = "RUNNING"
	// StatusFullCover means every element of the universe is covered.
	StatusFullCover Status = "FULL_COVER"
	// StatusResidualUncoverable means no remaining set can add coverage
	// while elements are still uncovered. The solution is best-effort.
	StatusResidualUncoverable Status = "RESIDUAL_UNCOVERABLE"
	// StatusIterationCap means the external iteration cap was hit before
	// full coverage. The solution is partial.
	StatusIterationCap Status = "ITERATION_CAP"
)

// Step records the diagnostics of a single selection.
type Step struct {
	Set index.SetID
	// NewlyCovered is the number of elements this selection moved from
	// uncovered to covered. It is always positive.
	NewlyCovered int
}

// Result is the assembled outcome of a solve: the chosen sets in
// selection order plus coverage diagnostics.
type Result struct {
	// Sets lists the chosen sets in the order the greedy loop picked
	// them. No set appears twice.
	Sets []index.SetID
	// Steps carries per-selection diagnostics, aligned with Sets.
	Steps []Step

	CoveredCount   int
	UncoveredCount int
	StepsTaken     int
	Status         Status
}

// Verify checks that the union of the chosen sets' elements matches the
// covered partition exactly. It exists for callers (and tests) that
// want an independent confirmation of the coverage invariant.
func Verify(idx *index.Index, r *Result) bool {
	union := make(sets.Set[index.ElementID])
	for _, s := range r.Sets {
		for _, e := range idx.SetElements(s) {
			union.Add(e)
		}
	}
	return len(union) == r.CoveredCount
}
