package cover

import (
	"math/bits"

	"github.com/matthiaskaeding/setcover/pkg/core/index"
)

const wordBits = 64

// BitSet is a fixed-size bit vector over the dense element universe,
// stored as 64-bit words.
type BitSet []uint64

// NewBitSet returns an all-zero bit set sized for the given universe.
func NewBitSet(universeSize int) BitSet {
	return make(BitSet, (universeSize+wordBits-1)/wordBits)
}

// MakeBitSet builds the bit vector representation of a set's elements.
func MakeBitSet(universeSize int, elements []index.ElementID) BitSet {
	b := NewBitSet(universeSize)
	for _, e := range elements {
		b[int(e)/wordBits] |= 1 << (int(e) % wordBits)
	}
	return b
}

// makeUncovered returns a bit set with every universe element set,
// masking off the excess bits of the last word.
func makeUncovered(universeSize int) BitSet {
	b := NewBitSet(universeSize)
	for i := range b {
		b[i] = ^uint64(0)
	}
	if excess := len(b)*wordBits - universeSize; excess > 0 && len(b) > 0 {
		b[len(b)-1] &= ^uint64(0) >> excess
	}
	return b
}

// Count returns the number of set bits.
func (b BitSet) Count() int {
	total := 0
	for _, w := range b {
		total += bits.OnesCount64(w)
	}
	return total
}

// Contains reports whether bit i is set.
func (b BitSet) Contains(i int) bool {
	return b[i/wordBits]&(1<<(i%wordBits)) != 0
}

// CoverageGain counts the elements of the set that are still uncovered.
func CoverageGain(set, uncovered BitSet) int {
	gain := 0
	for i, w := range set {
		gain += bits.OnesCount64(w & uncovered[i])
	}
	return gain
}

// solveBitvec re-scans all candidates each round like the textbook
// variant, but represents sets as bit vectors so each gain is a handful
// of word-level popcounts. Same tie-breaking, same solutions.
func solveBitvec(idx *index.Index, opts Options) *Result {
	universe := idx.NumElements()
	setBits := make([]BitSet, idx.NumSets())
	for id := 0; id < idx.NumSets(); id++ {
		setBits[id] = MakeBitSet(universe, idx.SetElements(index.SetID(id)))
	}

	uncovered := makeUncovered(universe)
	remaining := universe
	used := make([]bool, idx.NumSets())
	result := &Result{Status: StatusRunning}

	for remaining > 0 {
		if opts.MaxIterations > 0 && result.StepsTaken >= opts.MaxIterations {
			finishBitvec(result, universe, remaining, StatusIterationCap)
			return result
		}

		best := -1
		bestPriority := 0.0
		for id := 0; id < idx.NumSets(); id++ {
			if used[id] {
				continue
			}
			gain := CoverageGain(setBits[id], uncovered)
			if p := opts.priority(id, int32(gain)); gain > 0 && p > bestPriority {
				bestPriority = p
				best = id
			}
		}
		if best < 0 {
			finishBitvec(result, universe, remaining, StatusResidualUncoverable)
			return result
		}

		used[best] = true
		newly := 0
		for i, w := range setBits[best] {
			newly += bits.OnesCount64(w & uncovered[i])
			uncovered[i] &^= w
		}
		remaining -= newly
		result.Sets = append(result.Sets, index.SetID(best))
		result.Steps = append(result.Steps, Step{Set: index.SetID(best), NewlyCovered: newly})
		result.StepsTaken++
	}

	finishBitvec(result, universe, remaining, StatusFullCover)
	return result
}

// finishBitvec freezes the diagnostics of the bit vector variant.
func finishBitvec(result *Result, universe, remaining int, status Status) {
	result.Status = status
	result.CoveredCount = universe - remaining
	result.UncoveredCount = remaining
}
