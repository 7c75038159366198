// Package hash maps dictionary keys to buckets.
//
// Keys are hashed with CRC32-Castagnoli. The hash is unseeded, so bucket
// placement and iteration order are stable across processes:
//
//	idx := hash.Bucket(key, uint32(len(buckets)))
package hash
