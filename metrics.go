package floatc

import (
	"sync/atomic"
)

// MetricsCollector defines an interface for collecting container metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordGrow is called after a dynamic vector grew from one capacity to another.
	RecordGrow(from, to int)

	// RecordShrink is called after a dynamic vector was trimmed.
	RecordShrink(from, to int)

	// RecordRehash is called after a dictionary resized its bucket array.
	RecordRehash(from, to int)

	// RecordAllocFailure is called when a memory reservation was refused.
	RecordAllocFailure()
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordGrow(int, int)   {}
func (NoopMetricsCollector) RecordShrink(int, int) {}
func (NoopMetricsCollector) RecordRehash(int, int) {}
func (NoopMetricsCollector) RecordAllocFailure()   {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	Grows         atomic.Int64
	GrownElements atomic.Int64
	Shrinks       atomic.Int64
	Rehashes      atomic.Int64
	MaxBuckets    atomic.Int64
	AllocFailures atomic.Int64
}

// RecordGrow implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrow(from, to int) {
	b.Grows.Add(1)
	b.GrownElements.Add(int64(to - from))
}

// RecordShrink implements MetricsCollector.
func (b *BasicMetricsCollector) RecordShrink(from, to int) {
	b.Shrinks.Add(1)
}

// RecordRehash implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRehash(from, to int) {
	b.Rehashes.Add(1)
	for {
		cur := b.MaxBuckets.Load()
		if int64(to) <= cur || b.MaxBuckets.CompareAndSwap(cur, int64(to)) {
			return
		}
	}
}

// RecordAllocFailure implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAllocFailure() {
	b.AllocFailures.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		Grows:         b.Grows.Load(),
		GrownElements: b.GrownElements.Load(),
		Shrinks:       b.Shrinks.Load(),
		Rehashes:      b.Rehashes.Load(),
		MaxBuckets:    b.MaxBuckets.Load(),
		AllocFailures: b.AllocFailures.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector.
type BasicMetricsStats struct {
	Grows         int64
	GrownElements int64
	Shrinks       int64
	Rehashes      int64
	MaxBuckets    int64
	AllocFailures int64
}
