// Package conv provides safe integer conversion and arithmetic utilities.
//
// These functions perform bounds checking to prevent integer overflow
// when converting between integer types or when computing capacities and
// byte sizes.
//
// Use cases:
//   - Vector growth arithmetic (doubling, fixed increments, element byte sizes)
//   - Converting bucket indices to the uint32 domain of roaring bitmaps
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices, bounded counters), use direct type casts instead to avoid overhead.
package conv
