package floatc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/floatc/resource"
)

func TestApplyOptionsDefaults(t *testing.T) {
	o := ApplyOptions()

	require.NotNil(t, o.Logger)
	assert.Equal(t, NoopMetricsCollector{}, o.Metrics)
	assert.Nil(t, o.Resources)
	assert.Equal(t, DefaultBucketCount, o.BucketCount)
	assert.InDelta(t, DefaultLoadFactor, o.LoadFactor, 0)
}

func TestOptions(t *testing.T) {
	rc := resource.NewController(resource.Config{MemoryLimitBytes: 64})
	mc := &BasicMetricsCollector{}

	o := ApplyOptions(
		WithResourceController(rc),
		WithMetricsCollector(mc),
		WithBucketCount(64),
		WithLoadFactor(0.5),
		nil,
	)
	assert.Same(t, rc, o.Resources)
	assert.Same(t, mc, o.Metrics)
	assert.Equal(t, 64, o.BucketCount)
	assert.InDelta(t, 0.5, o.LoadFactor, 0)

	t.Run("IgnoresOutOfDomainValues", func(t *testing.T) {
		o := ApplyOptions(WithBucketCount(0), WithLoadFactor(1.5), WithLoadFactor(-1))
		assert.Equal(t, DefaultBucketCount, o.BucketCount)
		assert.InDelta(t, DefaultLoadFactor, o.LoadFactor, 0)
	})

	t.Run("NilResetsToNoop", func(t *testing.T) {
		o := ApplyOptions(WithMetricsCollector(nil), WithLogger(nil))
		assert.Equal(t, NoopMetricsCollector{}, o.Metrics)
		require.NotNil(t, o.Logger)
	})

	t.Run("Inherit", func(t *testing.T) {
		derived := ApplyOptions(Inherit(o))
		assert.Equal(t, o, derived)
	})
}

func TestBasicMetricsCollector(t *testing.T) {
	mc := &BasicMetricsCollector{}

	mc.RecordGrow(2, 4)
	mc.RecordGrow(4, 8)
	mc.RecordShrink(8, 5)
	mc.RecordRehash(16, 32)
	mc.RecordRehash(32, 64)
	mc.RecordRehash(16, 32)
	mc.RecordAllocFailure()

	assert.Equal(t, BasicMetricsStats{
		Grows:         2,
		GrownElements: 6,
		Shrinks:       1,
		Rehashes:      3,
		MaxBuckets:    64,
		AllocFailures: 1,
	}, mc.GetStats())
}

type sized struct{ n int }

func (s *sized) Len() int {
	if s == nil {
		return InvalidSize
	}
	return s.n
}

func (s *sized) Cap() int { return s.Len() }

func TestContainerHelpers(t *testing.T) {
	assert.Equal(t, 3, Len(&sized{n: 3}))
	assert.Equal(t, 3, Cap(&sized{n: 3}))
	assert.Equal(t, InvalidSize, Len(nil))
	assert.Equal(t, InvalidSize, Cap(nil))

	var typedNil *sized
	assert.Equal(t, InvalidSize, Len(typedNil))
}
