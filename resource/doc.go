// Package resource implements memory accounting for floatc containers.
//
// Every dynamic vector buffer, dictionary bucket array and dictionary entry
// reserves its bytes from a Controller before it is allocated and returns them
// when it is trimmed, removed or closed:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 64 << 20, // 64MB limit
//	})
//
//	v, err := vector.New(1024, floatc.WithResourceController(rc))
//	if errors.Is(err, floatc.ErrOutOfMemory) {
//	    // reservation refused, nothing was allocated
//	}
//	defer v.Close()
//
// With MemoryLimitBytes == 0 the controller only tracks usage. Tests use this
// as an allocation-tracking harness: once every container is closed,
// MemoryUsage returns to zero.
//
// # Nil Safety
//
// All methods handle nil Controller gracefully - they become no-ops.
// This allows optional resource limiting without nil checks everywhere.
package resource
