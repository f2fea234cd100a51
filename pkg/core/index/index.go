// Package index converts raw (set, element) membership pairs into the
// inverted adjacency structures the cover engine selects against.
package index

import "sort"

// SetID identifies a candidate set as a dense, zero-based integer.
type SetID int32

// ElementID identifies a universe element as a dense, zero-based integer.
type ElementID int32

// Pair is a single membership row: element belongs to set.
// Repeated pairs are idempotent.
type Pair struct {
	Set     SetID
	Element ElementID
}

// Index holds the two inverted views of the membership relation.
// Both adjacency lists are sorted by id and free of duplicates, so
// construction is reproducible for a given input.
type Index struct {
	numSets     int
	numElements int
	setElements [][]ElementID
	elementSets [][]SetID
}

// NumSets returns the declared number of candidate sets.
func (ix *Index) NumSets() int { return ix.numSets }

// NumElements returns the declared size of the universe.
func (ix *Index) NumElements() int { return ix.numElements }

// SetElements returns the sorted, unique elements of the given set.
// The returned slice is owned by the index and must not be mutated.
func (ix *Index) SetElements(s SetID) []ElementID { return ix.setElements[s] }

// ElementSets returns the sorted, unique sets containing the given element.
// The returned slice is owned by the index and must not be mutated.
func (ix *Index) ElementSets(e ElementID) []SetID { return ix.elementSets[e] }

// SetSize returns the number of distinct elements in the given set.
func (ix *Index) SetSize(s SetID) int { return len(ix.setElements[s]) }

// sortDedupElements sorts a list of element ids and removes duplicates in place.
func sortDedupElements(list []ElementID) []ElementID {
	if len(list) < 2 {
		return list
	}
	sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
	out := list[:1]
	for _, id := range list[1:] {
		if id != out[len(out)-1] {
			out = append(out, id)
		}
	}
	return out
}

// sortDedupSets sorts a list of set ids and removes duplicates in place.
func sortDedupSets(list []SetID) []SetID {
	if len(list) < 2 {
		return list
	}
	sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
	out := list[:1]
	for _, id := range list[1:] {
		if id != out[len(out)-1] {
			out = append(out, id)
		}
	}
	return out
}
