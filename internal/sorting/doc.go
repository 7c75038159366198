// Package sorting implements the in-place float32 sort and search kernels
// behind vector.Sort and vector.BinarySearch.
//
// # Sort
//
// Float32s is a hybrid QuickSort:
//
//   - NaNs are first moved to the tail of the slice; they end up there
//     regardless of direction and take no part in comparisons.
//   - Partitions pick their pivot by median-of-three over the first, middle
//     and last element, oriented by the sort direction.
//   - Ranges shorter than insertionThreshold are finished with insertion sort.
//   - The smaller partition is sorted recursively and the larger one is
//     handled by the enclosing loop, bounding stack depth to O(log n).
//
// The sort is not stable. -0 and +0 compare equal; infinities sort to the
// extremes.
//
// # Search
//
// Search is a tolerance-aware binary search over an ascending slice: an
// element matches when |element - target| <= tolerance. The first match hit
// by the bisection is returned, which is not necessarily the lowest matching
// index when several elements fall inside the tolerance band.
package sorting
