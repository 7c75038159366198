package vector

import (
	"github.com/hupe1980/floatc"
	"github.com/hupe1980/floatc/internal/math32"
)

// Min returns the smallest element of v, ignoring NaNs.
func (v *Vector) Min() (float32, error) {
	const op = "min"
	if err := v.checkStats(op); err != nil {
		return 0, err
	}
	m, ok := math32.Min(v.data[:v.length])
	if !ok {
		return 0, floatc.Errorf(op, floatc.ErrInvalidArgument, "every element is NaN")
	}
	return m, nil
}

// Max returns the largest element of v, ignoring NaNs.
func (v *Vector) Max() (float32, error) {
	const op = "max"
	if err := v.checkStats(op); err != nil {
		return 0, err
	}
	m, ok := math32.Max(v.data[:v.length])
	if !ok {
		return 0, floatc.Errorf(op, floatc.ErrInvalidArgument, "every element is NaN")
	}
	return m, nil
}

// Sum returns the sum of the elements. NaN elements are rejected; infinities
// propagate.
func (v *Vector) Sum() (float32, error) {
	const op = "sum"
	if err := v.checkFinite(op); err != nil {
		return 0, err
	}
	return float32(math32.Sum(v.data[:v.length])), nil
}

// Average returns the arithmetic mean of the elements.
func (v *Vector) Average() (float32, error) {
	const op = "average"
	if err := v.checkFinite(op); err != nil {
		return 0, err
	}
	return float32(math32.Mean(v.data[:v.length])), nil
}

// Stdev returns the population standard deviation. v needs at least two
// elements.
func (v *Vector) Stdev() (float32, error) {
	const op = "stdev"
	if err := v.check(op); err != nil {
		return 0, err
	}
	if v.length < 2 {
		return 0, floatc.Errorf(op, floatc.ErrEmpty, "need at least 2 elements, have %d", v.length)
	}
	if math32.HasNaN(v.data[:v.length]) {
		return 0, floatc.Errorf(op, floatc.ErrInvalidArgument, "vector contains NaN")
	}
	return float32(math32.PopulationStdev(v.data[:v.length])), nil
}

// CumulativeSum returns a new dynamic vector whose i-th element is the sum of
// the first i+1 elements of v. The result uses the options of v.
func (v *Vector) CumulativeSum() (*Vector, error) {
	const op = "cumulative_sum"
	if err := v.checkStats(op); err != nil {
		return nil, err
	}
	out, err := newVector(op, v.length, v.opts)
	if err != nil {
		return nil, err
	}
	math32.CumSum(out.data, v.data[:v.length])
	out.length = v.length
	return out, nil
}

func (v *Vector) checkStats(op string) error {
	if err := v.check(op); err != nil {
		return err
	}
	if v.length == 0 {
		return floatc.Errorf(op, floatc.ErrInvalidArgument, "vector is empty")
	}
	return nil
}

func (v *Vector) checkFinite(op string) error {
	if err := v.checkStats(op); err != nil {
		return err
	}
	if math32.HasNaN(v.data[:v.length]) {
		return floatc.Errorf(op, floatc.ErrInvalidArgument, "vector contains NaN")
	}
	return nil
}
