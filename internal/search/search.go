// Package search implements bisection over sorted slices.
package search

import "cmp"

// NotFound is returned by IterativeSearch when the target is absent.
const NotFound = -1

// IterativeSearch returns the index of an element equal to target in sorted,
// or NotFound. sorted must be in ascending order; the result is unspecified
// otherwise. With duplicates, any matching index may be returned.
func IterativeSearch[T cmp.Ordered](sorted []T, target T) int {
	low, high := 0, len(sorted)-1
	for low <= high {
		mid := low + (high-low)/2
		switch c := cmp.Compare(sorted[mid], target); {
		case c == 0:
			return mid
		case c > 0:
			high = mid - 1
		default:
			low = mid + 1
		}
	}
	return NotFound
}
