// Package sets provides utility functions for common operations on sets and slices.
// Sets are represented as map[T]struct{} for efficient lookups.
package sets

import (
	"cmp"
	"sort"
)

// Set represents a collection of unique values.
type Set[T comparable] map[T]struct{}

// Make converts a slice into a Set for efficient lookups.
// Duplicates in the slice are removed.
func Make[T comparable](slice []T) Set[T] {
	set := make(Set[T], len(slice))
	for _, item := range slice {
		set[item] = struct{}{}
	}
	return set
}

// Add inserts an element into the set.
func (s Set[T]) Add(item T) {
	s[item] = struct{}{}
}

// Contains reports whether the element is present in the set.
func (s Set[T]) Contains(item T) bool {
	_, found := s[item]
	return found
}

// Union returns a new set containing all elements present in either set a or set b.
func Union[T comparable](a, b Set[T]) Set[T] {
	result := make(Set[T], len(a)+len(b))
	for k := range a {
		result[k] = struct{}{}
	}
	for k := range b {
		result[k] = struct{}{}
	}
	return result
}

// Intersection returns a new set containing only the elements present in both set a and set b.
func Intersection[T comparable](a, b Set[T]) Set[T] {
	// For efficiency, iterate over the smaller set.
	if len(a) > len(b) {
		a, b = b, a
	}

	result := make(Set[T])
	for k := range a {
		if _, found := b[k]; found {
			result[k] = struct{}{}
		}
	}
	return result
}

// Subtract returns a new set containing elements from set a that are not present in set b.
func Subtract[T comparable](a, b Set[T]) Set[T] {
	result := make(Set[T])
	for k := range a {
		if _, found := b[k]; !found {
			result[k] = struct{}{}
		}
	}
	return result
}

// Equal checks if two sets contain the exact same elements.
func Equal[T comparable](a, b Set[T]) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, found := b[k]; !found {
			return false
		}
	}
	return true
}

// Copy returns a new set containing all elements from the original set.
func Copy[T comparable](original Set[T]) Set[T] {
	result := make(Set[T], len(original))
	for k := range original {
		result[k] = struct{}{}
	}
	return result
}

// Sorted converts a Set into a new, sorted slice of its elements.
func Sorted[T cmp.Ordered](set Set[T]) []T {
	slice := make([]T, 0, len(set))
	for k := range set {
		slice = append(slice, k)
	}
	sort.Slice(slice, func(i, j int) bool { return slice[i] < slice[j] })
	return slice
}
