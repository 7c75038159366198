package sorting

// NotFound is returned by Search when no element is within tolerance.
const NotFound = -1

// Search returns the index of an element of the ascending slice a with
// |a[i] - target| <= tolerance, or NotFound. target and tolerance must not be
// NaN and tolerance must not be negative.
func Search(a []float32, target, tolerance float32) int {
	low, high := 0, len(a)-1
	for low <= high {
		mid := low + (high-low)/2
		v := a[mid]

		if v == target {
			return mid
		}
		diff := v - target
		if diff < 0 {
			diff = -diff
		}
		if diff <= tolerance {
			return mid
		}

		if v < target {
			low = mid + 1
		} else {
			// NaN tail elements compare false and steer the search left.
			high = mid - 1
		}
	}
	return NotFound
}
