package sorting

// Direction is the order produced by Float32s.
type Direction uint8

const (
	// Ascending sorts smallest first.
	Ascending Direction = iota
	// Descending sorts largest first.
	Descending
)

func (d Direction) String() string {
	switch d {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return "unknown"
	}
}

// insertionThreshold is the range length below which insertion sort takes over.
const insertionThreshold = 10

// Float32s sorts a in place in direction dir. NaNs are placed at the end.
func Float32s(a []float32, dir Direction) {
	n := partitionNaN(a)
	if n < 2 {
		return
	}
	quicksort(a[:n], 0, n-1, dir)
}

// IsSorted reports whether a is sorted in direction dir with all NaNs at the end.
func IsSorted(a []float32, dir Direction) bool {
	n := len(a)
	for n > 0 && a[n-1] != a[n-1] {
		n--
	}
	for i := 0; i < n; i++ {
		if a[i] != a[i] {
			return false
		}
		if i > 0 && before(a[i], a[i-1], dir) {
			return false
		}
	}
	return true
}

// partitionNaN moves every NaN behind the non-NaN elements and returns the
// number of non-NaN elements.
func partitionNaN(a []float32) int {
	j := 0
	for i, v := range a {
		if v == v {
			a[i], a[j] = a[j], a[i]
			j++
		}
	}
	return j
}

func before(x, y float32, dir Direction) bool {
	if dir == Descending {
		return x > y
	}
	return x < y
}

// medianOfThree returns the index of the median of a[i], a[j], a[k] under dir.
func medianOfThree(a []float32, i, j, k int, dir Direction) int {
	if before(a[i], a[j], dir) {
		if before(a[j], a[k], dir) {
			return j
		}
		if before(a[i], a[k], dir) {
			return k
		}
		return i
	}
	if before(a[i], a[k], dir) {
		return i
	}
	if before(a[j], a[k], dir) {
		return k
	}
	return j
}

func insertionSort(a []float32, low, high int, dir Direction) {
	for i := low + 1; i <= high; i++ {
		key := a[i]
		j := i - 1
		for j >= low && before(key, a[j], dir) {
			a[j+1] = a[j]
			j--
		}
		a[j+1] = key
	}
}

// partition is a Lomuto partition of a[low..high] around the median-of-three
// pivot. It returns the final pivot position.
func partition(a []float32, low, high int, dir Direction) int {
	mid := low + (high-low)/2
	if p := medianOfThree(a, low, mid, high, dir); p != high {
		a[p], a[high] = a[high], a[p]
	}

	pivot := a[high]
	i := low - 1
	for j := low; j < high; j++ {
		if before(a[j], pivot, dir) {
			i++
			a[i], a[j] = a[j], a[i]
		}
	}
	a[i+1], a[high] = a[high], a[i+1]
	return i + 1
}

func quicksort(a []float32, low, high int, dir Direction) {
	for low < high {
		if high-low < insertionThreshold {
			insertionSort(a, low, high, dir)
			return
		}

		p := partition(a, low, high, dir)

		if p-low < high-p {
			quicksort(a, low, p-1, dir)
			low = p + 1
		} else {
			quicksort(a, p+1, high, dir)
			high = p - 1
		}
	}
}
