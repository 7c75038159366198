package vector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/floatc"
	"github.com/hupe1980/floatc/internal/sorting"
	"github.com/hupe1980/floatc/testutil"
)

var nan32 = float32(math.NaN())

func TestSort(t *testing.T) {
	tests := []struct {
		name string
		in   []float32
		dir  Direction
		want []float32
	}{
		{"Ascending", []float32{3, 1, 2}, Ascending, []float32{1, 2, 3}},
		{"Descending", []float32{3, 1, 2}, Descending, []float32{3, 2, 1}},
		{"Single", []float32{7}, Ascending, []float32{7}},
		{"Duplicates", []float32{2, 1, 2, 1}, Ascending, []float32{1, 1, 2, 2}},
		{"Infinities", []float32{float32(math.Inf(1)), 0, float32(math.Inf(-1))}, Ascending,
			[]float32{float32(math.Inf(-1)), 0, float32(math.Inf(1))}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := mustFromSlice(t, tt.in...)
			require.NoError(t, v.Sort(tt.dir))
			assert.Equal(t, tt.want, v.Values())
		})
	}

	t.Run("Empty", func(t *testing.T) {
		v, err := New(1)
		require.NoError(t, err)
		defer v.Close()
		require.NoError(t, v.Sort(Ascending))
	})

	t.Run("UnknownDirection", func(t *testing.T) {
		v := mustFromSlice(t, 1, 2)
		assert.ErrorIs(t, v.Sort(Direction(9)), floatc.ErrInvalidArgument)
	})
}

func TestSortNaN(t *testing.T) {
	for _, dir := range []Direction{Ascending, Descending} {
		t.Run(dir.String(), func(t *testing.T) {
			v := mustFromSlice(t, nan32, 3, nan32, 1, 2)
			require.NoError(t, v.Sort(dir))

			vals := v.Values()
			assert.True(t, sorting.IsSorted(vals, dir))
			assert.True(t, vals[3] != vals[3])
			assert.True(t, vals[4] != vals[4])
		})
	}
}

func TestSortRandom(t *testing.T) {
	rng := testutil.NewRNG(4711)

	for _, n := range []int{2, 9, 10, 11, 100, 1000} {
		for _, dir := range []Direction{Ascending, Descending} {
			v := mustFromSlice(t, rng.FloatsWithSpecials(n, 0.05)...)

			require.NoError(t, v.Sort(dir))
			first := v.Values()
			assert.True(t, sorting.IsSorted(first, dir), "n=%d dir=%s", n, dir)

			require.NoError(t, v.Sort(dir))
			assert.Equal(t, canonical(first), canonical(v.Values()), "sort must be idempotent")
		}
	}
}

// canonical maps every NaN to one bit pattern and -0 to +0, since the sort
// does not order equal-comparing values.
func canonical(a []float32) []uint32 {
	out := make([]uint32, len(a))
	for i, f := range a {
		switch {
		case f != f:
			out[i] = 0x7fc00000
		case f == 0:
			out[i] = 0
		default:
			out[i] = math.Float32bits(f)
		}
	}
	return out
}

func TestBinarySearch(t *testing.T) {
	v := mustFromSlice(t, 1, 2.5, 4, 8)

	tests := []struct {
		name      string
		target    float32
		tolerance float32
		want      int
	}{
		{"Exact", 4, 0, 2},
		{"WithinTolerance", 2.45, 0.1, 1},
		{"First", 1, 0, 0},
		{"Last", 8, 0, 3},
		{"Missing", 5, 0.5, NotFound},
		{"BelowAll", -10, 1, NotFound},
		{"AboveAll", 100, 1, NotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.BinarySearch(tt.target, tt.tolerance, false)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("InvalidArguments", func(t *testing.T) {
		_, err := v.BinarySearch(nan32, 0, false)
		assert.ErrorIs(t, err, floatc.ErrInvalidArgument)
		_, err = v.BinarySearch(1, nan32, false)
		assert.ErrorIs(t, err, floatc.ErrInvalidArgument)
		_, err = v.BinarySearch(1, -1, false)
		assert.ErrorIs(t, err, floatc.ErrInvalidArgument)
	})

	t.Run("Empty", func(t *testing.T) {
		e, err := New(1)
		require.NoError(t, err)
		defer e.Close()
		_, err = e.BinarySearch(1, 0, false)
		assert.ErrorIs(t, err, floatc.ErrEmpty)
	})

	t.Run("SortFirst", func(t *testing.T) {
		u := mustFromSlice(t, 9, 3, 7, 1)
		got, err := u.BinarySearch(7, 0, true)
		require.NoError(t, err)
		assert.Equal(t, 2, got)
		assert.Equal(t, []float32{1, 3, 7, 9}, u.Values())
	})
}

func TestBinarySearchFindsEveryElement(t *testing.T) {
	rng := testutil.NewRNG(42)
	v := mustFromSlice(t, rng.Floats(500)...)
	require.NoError(t, v.Sort(Ascending))

	for i, x := range v.All() {
		got, err := v.BinarySearch(x, 0, false)
		require.NoError(t, err)
		require.NotEqual(t, NotFound, got, "element %d", i)
		assert.Equal(t, x, v.data[got])
	}
}
