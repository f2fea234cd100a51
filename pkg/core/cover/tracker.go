package cover

import (
	"github.com/matthiaskaeding/setcover/pkg/core/index"
)

// Tracker owns the mutable coverage state of a solve: the covered /
// uncovered partition of the universe and the authoritative remaining
// score of every set. It is mutated by exactly one selector loop and is
// never shared across goroutines.
type Tracker struct {
	idx          *index.Index
	covered      []bool
	coveredCount int
	remaining    []int32
}

// NewTracker initializes the tracker with the whole universe uncovered,
// so every set starts with a remaining score equal to its size.
func NewTracker(idx *index.Index) *Tracker {
	t := &Tracker{
		idx:       idx,
		covered:   make([]bool, idx.NumElements()),
		remaining: make([]int32, idx.NumSets()),
	}
	for s := 0; s < idx.NumSets(); s++ {
		t.remaining[s] = int32(idx.SetSize(index.SetID(s)))
	}
	return t
}

// Score returns the live remaining score of the given set: the number
// of its elements still uncovered. This is the authoritative value any
// cached priority must be validated against.
func (t *Tracker) Score(s index.SetID) int32 {
	return t.remaining[s]
}

// IsCovered reports whether the element has been covered.
func (t *Tracker) IsCovered(e index.ElementID) bool {
	return t.covered[e]
}

// CoveredCount returns the number of covered elements.
func (t *Tracker) CoveredCount() int { return t.coveredCount }

// UncoveredCount returns the number of elements still uncovered.
func (t *Tracker) UncoveredCount() int { return t.idx.NumElements() - t.coveredCount }

// AffectedSets returns the sets containing the given element, i.e. the
// sets whose remaining score changes when the element becomes covered.
func (t *Tracker) AffectedSets(e index.ElementID) []index.SetID {
	return t.idx.ElementSets(e)
}

// MarkCovered moves an element from uncovered to covered and decrements
// the remaining score of every affected set, keeping the score table
// consistent with the coverage state at all times. It is idempotent:
// marking an already covered element is a no-op and returns false.
func (t *Tracker) MarkCovered(e index.ElementID) bool {
	if t.covered[e] {
		return false
	}
	t.covered[e] = true
	t.coveredCount++
	for _, s := range t.AffectedSets(e) {
		t.remaining[s]--
	}
	return true
}
