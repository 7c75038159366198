// Package testutil provides testing utilities for floatc.
//
// This package is intended for use in tests and benchmarks only.
//
// # Random Data
//
//	rng := testutil.NewRNG(seed)
//	vals := rng.Floats(128)                    // uniform [-1000, 1000)
//	odd := rng.FloatsWithSpecials(128, 0.1)    // ~10% NaN, ±Inf, ±0
//	keys := rng.UniqueKeys(100, 8)
//
// # Allocation Tracking
//
//	rc := testutil.MemoryTracker(0)
//	v, _ := vector.New(4, floatc.WithResourceController(rc))
//	_ = v.Close()
//	// rc.MemoryUsage() == 0
package testutil
