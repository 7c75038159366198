package vector

import (
	"github.com/hupe1980/floatc"
	"github.com/hupe1980/floatc/internal/math32"
	"github.com/hupe1980/floatc/internal/sorting"
)

// Direction is a sort order.
type Direction = sorting.Direction

const (
	Ascending  = sorting.Ascending
	Descending = sorting.Descending
)

// NotFound is the index BinarySearch reports when no element matches.
const NotFound = sorting.NotFound

// Sort orders the elements of v in place. NaNs are moved to the end in both
// directions. The sort is not stable.
func (v *Vector) Sort(dir Direction) error {
	const op = "sort"
	if err := v.check(op); err != nil {
		return err
	}
	if dir != Ascending && dir != Descending {
		return floatc.Errorf(op, floatc.ErrInvalidArgument, "unknown direction %d", dir)
	}
	sorting.Float32s(v.data[:v.length], dir)
	return nil
}

// Reverse reverses the elements of v in place.
func (v *Vector) Reverse() error {
	if err := v.checkNotEmpty("reverse"); err != nil {
		return err
	}
	math32.Reverse(v.data[:v.length])
	return nil
}

// BinarySearch returns the index of an element x with |x-target| <= tolerance,
// or NotFound. v must be in ascending order unless sortFirst is set, in which
// case v is sorted ascending in place before searching.
//
// When several elements match, the index of whichever one the search probes
// first is returned.
func (v *Vector) BinarySearch(target, tolerance float32, sortFirst bool) (int, error) {
	const op = "binary_search"
	if err := v.checkNotEmpty(op); err != nil {
		return NotFound, err
	}
	if math32.IsNaN(target) || math32.IsNaN(tolerance) {
		return NotFound, floatc.Errorf(op, floatc.ErrInvalidArgument, "target and tolerance must not be NaN")
	}
	if tolerance < 0 {
		return NotFound, floatc.Errorf(op, floatc.ErrInvalidArgument, "negative tolerance %g", tolerance)
	}

	if sortFirst {
		sorting.Float32s(v.data[:v.length], Ascending)
	}
	return sorting.Search(v.data[:v.length], target, tolerance), nil
}
