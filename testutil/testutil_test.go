package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloats(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.Floats(64)

	assert.Len(t, v, 64)
	for _, f := range v {
		assert.GreaterOrEqual(t, f, float32(-1000))
		assert.Less(t, f, float32(1000))
	}
}

func TestFloatsWithSpecials(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.FloatsWithSpecials(1000, 1)

	var nan, inf int
	for _, f := range v {
		switch {
		case f != f:
			nan++
		case math.IsInf(float64(f), 0):
			inf++
		default:
			assert.Equal(t, float32(0), f)
		}
	}
	assert.Positive(t, nan)
	assert.Positive(t, inf)

	none := rng.FloatsWithSpecials(100, 0)
	for _, f := range none {
		assert.False(t, f != f)
	}
}

func TestUniqueKeys(t *testing.T) {
	rng := NewRNG(4711)

	keys := rng.UniqueKeys(500, 4)

	require.Len(t, keys, 500)
	seen := make(map[string]bool)
	for _, k := range keys {
		assert.False(t, seen[k], "duplicate key %q", k)
		assert.NotEmpty(t, k)
		assert.LessOrEqual(t, len(k), 4)
		seen[k] = true
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	v1 := rng.Floats(10)
	k1 := rng.Key(8)

	rng.Reset()
	v2 := rng.Floats(10)
	k2 := rng.Key(8)

	assert.Equal(t, v1, v2)
	assert.Equal(t, k1, k2)
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestMemoryTracker(t *testing.T) {
	rc := MemoryTracker(8)

	require.NoError(t, rc.AcquireMemory(8))
	assert.Error(t, rc.AcquireMemory(1))
	rc.ReleaseMemory(8)
	assert.Equal(t, int64(0), rc.MemoryUsage())
}
