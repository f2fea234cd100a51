package cover

import (
	"cmp"
	"sort"

	"github.com/samber/lo"

	"github.com/matthiaskaeding/setcover/pkg/core/index"
	"github.com/matthiaskaeding/setcover/pkg/core/mapping"
)

// LabeledResult is a Result translated back to caller labels.
type LabeledResult[K cmp.Ordered] struct {
	// Sets lists the chosen set labels in selection order.
	Sets []K
	// Dense carries the dense-id result with the full diagnostics.
	Dense *Result
}

// SolveLabeled covers arbitrarily labeled sets of arbitrary elements.
// Dense set ids are assigned in ascending label order, so the lowest-id
// tie-break becomes a lowest-label tie-break; element ids are assigned
// in first-seen order over that same traversal. Options.Costs, when
// given, is indexed by that ascending label order.
func SolveLabeled[K cmp.Ordered, E comparable](input map[K][]E, opts Options) (*LabeledResult[K], error) {
	keys := lo.Keys(input)
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	setDict := mapping.New[K]()
	elemDict := mapping.New[E]()
	rows := 0
	for _, k := range keys {
		setDict.Add(k)
		rows += len(input[k])
	}

	pairs := make([]index.Pair, 0, rows)
	for _, k := range keys {
		sid, _ := setDict.ID(k)
		for _, e := range input[k] {
			pairs = append(pairs, index.Pair{
				Set:     index.SetID(sid),
				Element: index.ElementID(elemDict.Add(e)),
			})
		}
	}

	idx, err := index.Build(pairs, setDict.Len(), elemDict.Len())
	if err != nil {
		return nil, err
	}
	result, err := Solve(idx, opts)
	if err != nil {
		return nil, err
	}

	chosen := lo.Map(result.Sets, func(id index.SetID, _ int) K {
		label, _ := setDict.Label(int(id))
		return label
	})
	return &LabeledResult[K]{Sets: chosen, Dense: result}, nil
}
