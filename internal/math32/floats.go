// Package math32 provides float32 reductions used by the vector statistics.
// This is an internal package - external users should use the vector package.
//
// Accumulation happens in float64 and results are narrowed by the caller.
package math32

import "math"

// IsNaN reports whether f is an IEEE 754 "not-a-number" value.
func IsNaN(f float32) bool {
	return f != f
}

// HasNaN reports whether any element of a is NaN.
func HasNaN(a []float32) bool {
	for _, v := range a {
		if v != v {
			return true
		}
	}
	return false
}

// Sum returns the sum of a.
func Sum(a []float32) float64 {
	var sum float64
	for _, v := range a {
		sum += float64(v)
	}

	return sum
}

// Mean returns the arithmetic mean of a. a must not be empty.
func Mean(a []float32) float64 {
	return Sum(a) / float64(len(a))
}

// PopulationStdev returns the standard deviation of a with divisor len(a).
// a must not be empty.
func PopulationStdev(a []float32) float64 {
	mean := Mean(a)

	var acc float64
	for _, v := range a {
		d := float64(v) - mean
		acc += d * d
	}

	return math.Sqrt(acc / float64(len(a)))
}

// Min returns the smallest non-NaN element of a.
// ok is false if a has no non-NaN element.
func Min(a []float32) (minVal float32, ok bool) {
	for _, v := range a {
		if v != v {
			continue
		}
		if !ok || v < minVal {
			minVal, ok = v, true
		}
	}
	return minVal, ok
}

// Max returns the largest non-NaN element of a.
// ok is false if a has no non-NaN element.
func Max(a []float32) (maxVal float32, ok bool) {
	for _, v := range a {
		if v != v {
			continue
		}
		if !ok || v > maxVal {
			maxVal, ok = v, true
		}
	}
	return maxVal, ok
}

// CumSum writes the running sum of src into dst. len(dst) must be >= len(src).
func CumSum(dst, src []float32) {
	var sum float64
	for i, v := range src {
		sum += float64(v)
		dst[i] = float32(sum)
	}
}

// Reverse reverses a in place.
func Reverse(a []float32) {
	for i, j := 0, len(a)-1; i < j; i, j = i+1, j-1 {
		a[i], a[j] = a[j], a[i]
	}
}
