package conv

import (
	"fmt"
	"math"
)

// IntToUint32 converts int to uint32 safely.
func IntToUint32(v int) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (negative)", v)
	}
	// On 64-bit systems, int can exceed uint32 max; on 32-bit, this is always false
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (too large)", v)
	}
	return uint32(v), nil
}

// AddInt returns a+b for non-negative operands, or an error if the sum overflows int.
func AddInt(a, b int) (int, error) {
	if a < 0 || b < 0 {
		return 0, fmt.Errorf("integer overflow: %d + %d has a negative operand", a, b)
	}
	if a > math.MaxInt-b {
		return 0, fmt.Errorf("integer overflow: %d + %d exceeds max int", a, b)
	}
	return a + b, nil
}

// MulInt returns a*b for non-negative operands, or an error if the product overflows int.
func MulInt(a, b int) (int, error) {
	if a < 0 || b < 0 {
		return 0, fmt.Errorf("integer overflow: %d * %d has a negative operand", a, b)
	}
	if a != 0 && b > math.MaxInt/a {
		return 0, fmt.Errorf("integer overflow: %d * %d exceeds max int", a, b)
	}
	return a * b, nil
}

// ByteSize returns n*elemSize as int64, or an error if it overflows int.
func ByteSize(n, elemSize int) (int64, error) {
	size, err := MulInt(n, elemSize)
	if err != nil {
		return 0, err
	}
	return int64(size), nil
}
