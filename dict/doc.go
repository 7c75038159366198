// Package dict provides a string to float32 hash dictionary.
//
// Keys are hashed with CRC32-Castagnoli into chained buckets. The bucket
// count doubles once the entry count exceeds the load factor (0.7 by
// default) and never shrinks.
//
//	d, err := dict.New()
//	if err != nil {
//		return err
//	}
//	defer d.Close()
//
//	_ = d.Insert("temperature", 23.5)
//	t, err := d.Get("temperature")
package dict
