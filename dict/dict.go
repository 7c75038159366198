package dict

import (
	"iter"

	"github.com/hupe1980/floatc"
	"github.com/hupe1980/floatc/internal/hashtable"
	"github.com/hupe1980/floatc/vector"
)

// Dict maps string keys to float32 values.
//
// A Dict is not safe for concurrent use. Mutating it from inside ForEach or
// All fails with floatc.ErrInvalidArgument.
type Dict struct {
	table *hashtable.Table[float32]
}

// New creates an empty dictionary.
//
// The initial bucket count and the load factor come from
// floatc.WithBucketCount and floatc.WithLoadFactor.
func New(optFns ...floatc.Option) (*Dict, error) {
	t, err := hashtable.New[float32](floatc.ApplyOptions(optFns...), nil)
	if err != nil {
		return nil, err
	}
	return &Dict{table: t}, nil
}

// Insert adds key with value. It fails with floatc.ErrKeyExists if key is
// already present.
func (d *Dict) Insert(key string, value float32) error {
	if err := d.check("insert"); err != nil {
		return err
	}
	return d.table.Insert(key, value)
}

// Get returns the value stored under key.
func (d *Dict) Get(key string) (float32, error) {
	const op = "get"
	if err := d.check(op); err != nil {
		return 0, err
	}
	v, ok := d.table.Get(key)
	if !ok {
		return 0, floatc.NewKeyError(op, key, floatc.ErrKeyNotFound)
	}
	return v, nil
}

// Update replaces the value stored under key.
func (d *Dict) Update(key string, value float32) error {
	if err := d.check("update"); err != nil {
		return err
	}
	_, err := d.table.Update(key, value)
	return err
}

// Remove deletes key and returns its value.
func (d *Dict) Remove(key string) (float32, error) {
	if err := d.check("remove"); err != nil {
		return 0, err
	}
	return d.table.Remove(key)
}

// Has reports whether key is present.
func (d *Dict) Has(key string) bool {
	return d.valid() && d.table.Has(key)
}

// Clear removes every entry. The bucket count is kept.
func (d *Dict) Clear() error {
	if err := d.check("clear"); err != nil {
		return err
	}
	return d.table.Clear()
}

// Close releases the dictionary.
func (d *Dict) Close() error {
	if err := d.check("close"); err != nil {
		return err
	}
	return d.table.Close()
}

// Copy returns an independent copy with the same bucket count and
// iteration order.
func (d *Dict) Copy() (*Dict, error) {
	if err := d.check("copy"); err != nil {
		return nil, err
	}
	t, err := d.table.Clone(func(v float32) (float32, error) { return v, nil })
	if err != nil {
		return nil, err
	}
	return &Dict{table: t}, nil
}

// Merge returns a new dictionary holding the entries of a and b. For keys
// present in both, the value of b wins if overwrite is set, the value of a
// otherwise. The result takes its configuration from a.
func Merge(a, b *Dict, overwrite bool) (*Dict, error) {
	const op = "merge"
	if err := a.check(op); err != nil {
		return nil, err
	}
	if err := b.check(op); err != nil {
		return nil, err
	}

	out, err := a.Copy()
	if err != nil {
		return nil, err
	}

	for key, v := range b.table.All() {
		if out.table.Has(key) {
			if !overwrite {
				continue
			}
			_, err = out.table.Update(key, v)
		} else {
			err = out.table.Insert(key, v)
		}
		if err != nil {
			_ = out.Close()
			return nil, err
		}
	}
	return out, nil
}

// ForEach calls fn for every entry, bucket by bucket.
func (d *Dict) ForEach(fn func(key string, value float32)) error {
	const op = "for_each"
	if err := d.check(op); err != nil {
		return err
	}
	if fn == nil {
		return floatc.Errorf(op, floatc.ErrInvalidArgument, "callback is nil")
	}
	d.table.ForEach(fn)
	return nil
}

// All returns an iterator over all entries in ForEach order.
func (d *Dict) All() iter.Seq2[string, float32] {
	if !d.valid() {
		return func(func(string, float32) bool) {}
	}
	return d.table.All()
}

// Keys returns all keys in ForEach order.
func (d *Dict) Keys() []string {
	if !d.valid() {
		return nil
	}
	keys := make([]string, 0, d.table.Len())
	for k := range d.table.All() {
		keys = append(keys, k)
	}
	return keys
}

// Values returns a new dynamic vector with all values in ForEach order. The
// vector uses the options of d and must be closed by the caller.
func (d *Dict) Values() (*vector.Vector, error) {
	if err := d.check("values"); err != nil {
		return nil, err
	}
	v, err := vector.New(max(d.table.Len(), 1), floatc.Inherit(d.table.Options()))
	if err != nil {
		return nil, err
	}
	for _, x := range d.table.All() {
		if err := v.Append(x); err != nil {
			_ = v.Close()
			return nil, err
		}
	}
	return v, nil
}

// Len returns the number of entries, or floatc.InvalidSize.
func (d *Dict) Len() int {
	if !d.valid() {
		return floatc.InvalidSize
	}
	return d.table.Len()
}

// Cap returns the bucket count, or floatc.InvalidSize.
func (d *Dict) Cap() int {
	return d.BucketCount()
}

// BucketCount returns the number of buckets, or floatc.InvalidSize.
func (d *Dict) BucketCount() int {
	if !d.valid() {
		return floatc.InvalidSize
	}
	return d.table.BucketCount()
}

// PopulatedBuckets returns the number of non-empty buckets, or floatc.InvalidSize.
func (d *Dict) PopulatedBuckets() int {
	if !d.valid() {
		return floatc.InvalidSize
	}
	return d.table.PopulatedBuckets()
}

func (d *Dict) valid() bool {
	return d != nil && d.table != nil && !d.table.Closed()
}

func (d *Dict) check(op string) error {
	if d == nil || d.table == nil {
		return floatc.Errorf(op, floatc.ErrInvalidArgument, "dictionary is nil")
	}
	if d.table.Closed() {
		return floatc.Errorf(op, floatc.ErrInvalidArgument, "dictionary is closed")
	}
	return nil
}
