package cover

import (
	"github.com/matthiaskaeding/setcover/pkg/core/index"
)

// solveTextbook is the naive greedy loop: re-scan every candidate each
// round and pick the one covering the most uncovered elements. It is
// O(sets × iterations) and exists as a reference oracle for the
// optimized variants; all three produce identical solutions.
func solveTextbook(idx *index.Index, opts Options) *Result {
	tracker := NewTracker(idx)
	used := make([]bool, idx.NumSets())
	result := &Result{Status: StatusRunning}

	for tracker.UncoveredCount() > 0 {
		if opts.MaxIterations > 0 && result.StepsTaken >= opts.MaxIterations {
			finishScan(result, tracker, StatusIterationCap)
			return result
		}

		best := -1
		bestPriority := 0.0
		for id := 0; id < idx.NumSets(); id++ {
			if used[id] {
				continue
			}
			gain := 0
			for _, e := range idx.SetElements(index.SetID(id)) {
				if !tracker.IsCovered(e) {
					gain++
				}
			}
			// Strict comparison over ascending ids keeps the lowest id on ties.
			if p := opts.priority(id, int32(gain)); gain > 0 && p > bestPriority {
				bestPriority = p
				best = id
			}
		}
		if best < 0 {
			finishScan(result, tracker, StatusResidualUncoverable)
			return result
		}

		used[best] = true
		newly := 0
		for _, e := range idx.SetElements(index.SetID(best)) {
			if tracker.MarkCovered(e) {
				newly++
			}
		}
		result.Sets = append(result.Sets, index.SetID(best))
		result.Steps = append(result.Steps, Step{Set: index.SetID(best), NewlyCovered: newly})
		result.StepsTaken++
	}

	finishScan(result, tracker, StatusFullCover)
	return result
}

// finishScan freezes the diagnostics of a scan-based variant.
func finishScan(result *Result, tracker *Tracker, status Status) {
	result.Status = status
	result.CoveredCount = tracker.CoveredCount()
	result.UncoveredCount = tracker.UncoveredCount()
}
