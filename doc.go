// Package floatc provides float32 containers for Go: a growable vector, a
// string to float32 dictionary and a dictionary of vectors.
//
// This package holds what the containers share: errors, logging, metrics,
// options and the Container interface. The containers themselves live in
// the vector and dict packages.
//
// # Quick Start
//
//	v, _ := vector.New(8)
//	defer v.Close()
//	_ = v.Append(3.14)
//	_ = v.Sort(vector.Ascending)
//
//	d, _ := dict.New()
//	defer d.Close()
//	_ = d.Insert("temperature", 23.5)
//
// # Errors
//
// Every fallible operation returns an error wrapping one of the sentinels
// (ErrInvalidArgument, ErrOutOfRange, ErrEmpty, ErrOutOfMemory,
// ErrKeyExists, ErrKeyNotFound, ErrPermissionDenied). Use errors.Is, or
// KindOf to switch on the category:
//
//	if _, err := v.At(10); floatc.KindOf(err) == floatc.KindOutOfRange {
//	    // ...
//	}
//
// # Memory Budgets
//
// Containers account their buffers against an optional resource.Controller.
// With a limit set, allocations beyond it fail with ErrOutOfMemory and leave
// the container unchanged:
//
//	rc := resource.NewController(resource.Config{MemoryLimitBytes: 1 << 20})
//	v, err := vector.New(1024, floatc.WithResourceController(rc))
//
// # Observability
//
//	v, _ := vector.New(8,
//	    floatc.WithLogger(floatc.NewJSONLogger(slog.LevelDebug)),
//	    floatc.WithMetricsCollector(&floatc.BasicMetricsCollector{}),
//	)
//
// # Key Features
//
//   - Static (caller storage) and dynamic (owned, growing) vectors
//   - Hybrid quicksort with NaNs ordered last, tolerance binary search
//   - Float64-accumulated statistics
//   - Chained hash dictionaries with CRC32-C hashing and automatic resize
//   - Explicit ownership transfer into vector dictionaries
package floatc
