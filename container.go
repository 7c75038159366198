package floatc

import "math"

// InvalidSize is the size reported for a nil or closed container.
const InvalidSize = math.MaxInt

// Container is implemented by every floatc container.
//
// For vectors Cap is the element capacity; for dictionaries it is the bucket
// count. Both methods are nil-safe and report InvalidSize for a nil receiver.
type Container interface {
	Len() int
	Cap() int
}

// Len returns c.Len(), or InvalidSize if c is nil.
func Len(c Container) int {
	if c == nil {
		return InvalidSize
	}
	return c.Len()
}

// Cap returns c.Cap(), or InvalidSize if c is nil.
func Cap(c Container) int {
	if c == nil {
		return InvalidSize
	}
	return c.Cap()
}
