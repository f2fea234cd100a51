package index

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/matthiaskaeding/setcover/pkg/logging"
)

// Build constructs an Index from membership pairs and the declared
// dense-id bounds. It validates every pair before allocating anything,
// so a failed build has no observable side effect.
func Build(pairs []Pair, numSets, numElements int) (*Index, error) {
	if err := validateBounds(pairs, numSets, numElements); err != nil {
		return nil, err
	}
	if err := validatePairs(pairs, 0, numSets, numElements); err != nil {
		return nil, err
	}

	ix := &Index{
		numSets:     numSets,
		numElements: numElements,
		setElements: make([][]ElementID, numSets),
		elementSets: make([][]SetID, numElements),
	}

	// Count first so each adjacency list is allocated exactly once.
	setCounts := make([]int32, numSets)
	elementCounts := make([]int32, numElements)
	for _, p := range pairs {
		setCounts[p.Set]++
		elementCounts[p.Element]++
	}
	for s, n := range setCounts {
		if n > 0 {
			ix.setElements[s] = make([]ElementID, 0, n)
		}
	}
	for e, n := range elementCounts {
		if n > 0 {
			ix.elementSets[e] = make([]SetID, 0, n)
		}
	}

	for _, p := range pairs {
		ix.setElements[p.Set] = append(ix.setElements[p.Set], p.Element)
		ix.elementSets[p.Element] = append(ix.elementSets[p.Element], p.Set)
	}
	dedupRange(ix, 0, numSets, 0, numElements)

	logging.Debugf("IndexBuilder: Built index from %d rows (%d sets, %d elements).", len(pairs), numSets, numElements)
	return ix, nil
}

// partial holds the adjacency fragments built from one chunk of input rows.
type partial struct {
	setElements [][]ElementID
	elementSets [][]SetID
}

// BuildParallel behaves exactly like Build but fans the row scan out
// across workers. Each worker only appends to its own partial adjacency,
// so no synchronization is needed until the final merge. The merged
// result is identical to the sequential build because every list is
// sorted and deduplicated afterwards.
func BuildParallel(ctx context.Context, pairs []Pair, numSets, numElements, workers int) (*Index, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers == 1 || len(pairs) < 2*workers {
		return Build(pairs, numSets, numElements)
	}

	if err := validateBounds(pairs, numSets, numElements); err != nil {
		return nil, err
	}

	chunk := (len(pairs) + workers - 1) / workers
	partials := make([]partial, workers)

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, len(pairs))
		if lo >= hi {
			continue
		}
		part := &partials[w]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rows := pairs[lo:hi]
			if err := validatePairs(rows, lo, numSets, numElements); err != nil {
				return err
			}
			part.setElements = make([][]ElementID, numSets)
			part.elementSets = make([][]SetID, numElements)
			for _, p := range rows {
				part.setElements[p.Set] = append(part.setElements[p.Set], p.Element)
				part.elementSets[p.Element] = append(part.elementSets[p.Element], p.Set)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ix := &Index{
		numSets:     numSets,
		numElements: numElements,
		setElements: make([][]ElementID, numSets),
		elementSets: make([][]SetID, numElements),
	}

	// Merge by concatenation, then sort+dedup each list. The dedup pass
	// is itself embarrassingly parallel across disjoint id ranges.
	for s := 0; s < numSets; s++ {
		total := 0
		for w := range partials {
			total += len(partials[w].setElements[s])
		}
		if total == 0 {
			continue
		}
		merged := make([]ElementID, 0, total)
		for w := range partials {
			merged = append(merged, partials[w].setElements[s]...)
		}
		ix.setElements[s] = merged
	}
	for e := 0; e < numElements; e++ {
		total := 0
		for w := range partials {
			total += len(partials[w].elementSets[e])
		}
		if total == 0 {
			continue
		}
		merged := make([]SetID, 0, total)
		for w := range partials {
			merged = append(merged, partials[w].elementSets[e]...)
		}
		ix.elementSets[e] = merged
	}

	dg, _ := errgroup.WithContext(ctx)
	setStride := (numSets + workers - 1) / workers
	elemStride := (numElements + workers - 1) / workers
	for w := 0; w < workers; w++ {
		setLo := min(w*setStride, numSets)
		setHi := min(setLo+setStride, numSets)
		elemLo := min(w*elemStride, numElements)
		elemHi := min(elemLo+elemStride, numElements)
		if setLo >= setHi && elemLo >= elemHi {
			continue
		}
		dg.Go(func() error {
			dedupRange(ix, setLo, setHi, elemLo, elemHi)
			return nil
		})
	}
	if err := dg.Wait(); err != nil {
		return nil, err
	}

	logging.Debugf("IndexBuilder: Built index from %d rows across %d workers (%d sets, %d elements).", len(pairs), workers, numSets, numElements)
	return ix, nil
}

// dedupRange sorts and deduplicates the adjacency lists in the given id ranges.
func dedupRange(ix *Index, setLo, setHi, elemLo, elemHi int) {
	for s := setLo; s < setHi; s++ {
		ix.setElements[s] = sortDedupElements(ix.setElements[s])
	}
	for e := elemLo; e < elemHi; e++ {
		ix.elementSets[e] = sortDedupSets(ix.elementSets[e])
	}
}

// validateBounds rejects declared counts that cannot hold the input.
func validateBounds(pairs []Pair, numSets, numElements int) error {
	if numSets < 0 || numElements < 0 {
		return fmt.Errorf("%w: negative bounds (numSets=%d, numElements=%d)", ErrInput, numSets, numElements)
	}
	if len(pairs) > 0 && (numSets == 0 || numElements == 0) {
		return fmt.Errorf("%w: %d membership rows but declared bounds are numSets=%d, numElements=%d", ErrInput, len(pairs), numSets, numElements)
	}
	return nil
}

// validatePairs rejects any id outside its declared dense range. The
// offset is only used to report absolute row numbers from chunked scans.
func validatePairs(pairs []Pair, offset, numSets, numElements int) error {
	for i, p := range pairs {
		if p.Set < 0 || int(p.Set) >= numSets {
			return fmt.Errorf("%w: row %d has set id %d outside range [0,%d)", ErrInput, offset+i, p.Set, numSets)
		}
		if p.Element < 0 || int(p.Element) >= numElements {
			return fmt.Errorf("%w: row %d has element id %d outside range [0,%d)", ErrInput, offset+i, p.Element, numElements)
		}
	}
	return nil
}
