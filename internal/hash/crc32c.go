package hash

import (
	"hash/crc32"
	"unsafe"
)

var castagnoli = crc32.MakeTable(crc32.Castagnoli)

// CRC32C computes the CRC32-Castagnoli checksum of data.
func CRC32C(data []byte) uint32 {
	return crc32.Checksum(data, castagnoli)
}

// String computes the CRC32-Castagnoli hash of s without copying it.
func String(s string) uint32 {
	if len(s) == 0 {
		return 0
	}
	b := unsafe.Slice(unsafe.StringData(s), len(s)) //nolint:gosec // read-only view of the string bytes
	return CRC32C(b)
}

// Bucket maps key onto one of n buckets (hash(key) mod n). n must be positive.
func Bucket(key string, n uint32) uint32 {
	return String(key) % n
}
