package cover

import "fmt"

// Variant selects the selection strategy. All variants implement the
// same greedy heuristic with identical tie-breaking, so they produce
// identical solutions; they differ only in how candidate scores are
// maintained.
type Variant string

const (
	// VariantStandard maintains remaining scores incrementally and ranks
	// candidates through a lazily invalidated max-priority queue. This is
	// the default and the only variant suitable for large inputs.
	VariantStandard Variant = "greedy-standard"
	// VariantBitvec represents sets as bit vectors and re-scans all
	// candidates each round using word-level popcounts.
	VariantBitvec Variant = "greedy-bitvec"
	// VariantTextbook is the naive re-scan implementation, kept as a
	// reference oracle for the optimized variants.
	VariantTextbook Variant = "greedy-textbook"
)

// TieBreak selects how candidates with equal priority are ordered.
type TieBreak string

// TieBreakLowestID picks the set with the smallest dense id. It is the
// only documented rule.
const TieBreakLowestID TieBreak = "lowest-id"

// Options configures a solve. The zero value selects the standard
// variant with lowest-id tie-breaking, no cost weighting and no
// iteration cap.
type Options struct {
	Variant  Variant
	TieBreak TieBreak

	// Costs optionally assigns a positive cost per set, indexed by dense
	// set id. When present, candidates are ranked by score divided by
	// cost instead of raw score.
	Costs []float64

	// MaxIterations caps the number of selections. Zero means unlimited.
	// Hitting the cap is not an error; the partial result carries
	// StatusIterationCap.
	MaxIterations int
}

// withDefaults fills in the documented defaults for unset fields.
func (o Options) withDefaults() Options {
	if o.Variant == "" {
		o.Variant = VariantStandard
	}
	if o.TieBreak == "" {
		o.TieBreak = TieBreakLowestID
	}
	return o
}

// validate rejects options the engine cannot honor, before any work is done.
func (o Options) validate(numSets int) error {
	switch o.Variant {
	case VariantStandard, VariantBitvec, VariantTextbook:
	default:
		return fmt.Errorf("%w: unknown variant %q, must be %q, %q or %q", ErrOptions, o.Variant, VariantStandard, VariantBitvec, VariantTextbook)
	}
	if o.TieBreak != TieBreakLowestID {
		return fmt.Errorf("%w: unknown tie-break %q, must be %q", ErrOptions, o.TieBreak, TieBreakLowestID)
	}
	if o.Costs != nil {
		if len(o.Costs) != numSets {
			return fmt.Errorf("%w: %d costs for %d sets", ErrOptions, len(o.Costs), numSets)
		}
		for s, c := range o.Costs {
			if c <= 0 {
				return fmt.Errorf("%w: set %d has non-positive cost %v", ErrOptions, s, c)
			}
		}
	}
	if o.MaxIterations < 0 {
		return fmt.Errorf("%w: negative iteration cap %d", ErrOptions, o.MaxIterations)
	}
	return nil
}

// priority ranks a candidate: raw score, or score weighted by cost.
func (o Options) priority(set int, score int32) float64 {
	if o.Costs == nil {
		return float64(score)
	}
	return float64(score) / o.Costs[set]
}
