// Package hashtable implements the chained hash table shared by dict.Dict
// and vector.Dict.
//
// Keys are hashed with CRC32C and mapped to a bucket with hash mod
// bucket count. Each bucket holds a singly-linked chain; new entries are
// prepended. Buckets holding at least one entry are tracked in a roaring
// bitmap, which gives the populated-bucket count and lets iteration skip
// empty buckets.
//
// Memory for the bucket array and for each entry (including its key) is
// reserved from the configured resource.Controller before it is allocated.
// A refused reservation fails the operation with floatc.ErrOutOfMemory and
// leaves the table unchanged; a refused resize is skipped and the table keeps
// working at a higher load factor.
package hashtable
