package vector

import (
	"iter"

	"github.com/hupe1980/floatc"
	"github.com/hupe1980/floatc/internal/hashtable"
)

// Dict maps string keys to vectors it owns.
//
// Vectors handed to Insert are adopted: the caller's handle is moved-from and
// the stored vector is released by Remove, Clear or Close. Vectors returned by
// Get, CreateEntry and iteration are borrowed; calling Close on them fails
// with floatc.ErrPermissionDenied.
type Dict struct {
	table *hashtable.Table[*Vector]
}

// NewDict creates an empty vector dictionary.
func NewDict(optFns ...floatc.Option) (*Dict, error) {
	return newDict(floatc.ApplyOptions(optFns...))
}

func newDict(opts floatc.Options) (*Dict, error) {
	t, err := hashtable.New[*Vector](opts, (*Vector).release)
	if err != nil {
		return nil, err
	}
	return &Dict{table: t}, nil
}

// Insert adopts v under key.
//
// On success v is left moved-from. On failure (nil or static vector, duplicate
// key, memory refused) v is untouched and still owned by the caller.
func (d *Dict) Insert(key string, v *Vector) error {
	const op = "insert"
	if err := d.check(op); err != nil {
		return err
	}
	if err := v.check(op); err != nil {
		return err
	}
	if err := v.checkTransferable(op); err != nil {
		return err
	}

	return d.table.InsertFunc(key, func() (*Vector, error) {
		m, err := v.Move()
		if err != nil {
			return nil, err
		}
		m.owner = d
		return m, nil
	})
}

// CreateEntry stores a new empty vector of capacity sizeHint under key and
// returns it borrowed.
func (d *Dict) CreateEntry(key string, sizeHint int) (*Vector, error) {
	const op = "create_entry"
	if err := d.check(op); err != nil {
		return nil, err
	}
	if sizeHint < 1 {
		return nil, floatc.Errorf(op, floatc.ErrInvalidArgument, "size hint must be positive, got %d", sizeHint)
	}

	var created *Vector
	err := d.table.InsertFunc(key, func() (*Vector, error) {
		v, err := newVector(op, sizeHint, d.table.Options())
		if err != nil {
			return nil, err
		}
		v.owner = d
		created = v
		return v, nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Get returns the vector stored under key. The dictionary keeps ownership.
func (d *Dict) Get(key string) (*Vector, error) {
	const op = "get"
	if err := d.check(op); err != nil {
		return nil, err
	}
	v, ok := d.table.Get(key)
	if !ok {
		return nil, floatc.NewKeyError(op, key, floatc.ErrKeyNotFound)
	}
	return v, nil
}

// Remove deletes key and releases its vector.
func (d *Dict) Remove(key string) error {
	const op = "remove"
	if err := d.check(op); err != nil {
		return err
	}
	v, err := d.table.Remove(key)
	if err != nil {
		return err
	}
	v.release()
	return nil
}

// Has reports whether key is present.
func (d *Dict) Has(key string) bool {
	return d.valid() && d.table.Has(key)
}

// Clear removes and releases every entry. The bucket array is kept.
func (d *Dict) Clear() error {
	if err := d.check("clear"); err != nil {
		return err
	}
	return d.table.Clear()
}

// Close releases every vector and the dictionary itself.
func (d *Dict) Close() error {
	if err := d.check("close"); err != nil {
		return err
	}
	return d.table.Close()
}

// Copy returns a deep copy of d. Every vector is cloned; the copy has the same
// bucket count and iteration order.
func (d *Dict) Copy() (*Dict, error) {
	if err := d.check("copy"); err != nil {
		return nil, err
	}

	dst := &Dict{}
	t, err := d.table.Clone(func(v *Vector) (*Vector, error) {
		return dst.adoptClone("copy", v)
	})
	if err != nil {
		return nil, err
	}
	dst.table = t
	return dst, nil
}

// MergeDicts returns a new dictionary holding deep copies of the entries of a
// and b. For keys present in both, b wins if overwrite is set, a otherwise.
// The result takes its configuration from a.
func MergeDicts(a, b *Dict, overwrite bool) (*Dict, error) {
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
		if err := out.mergeEntry(key, v, overwrite); err != nil {
			_ = out.Close()
			return nil, err
		}
	}
	return out, nil
}

func (d *Dict) mergeEntry(key string, v *Vector, overwrite bool) error {
	if !d.table.Has(key) {
		return d.table.InsertFunc(key, func() (*Vector, error) {
			return d.adoptClone("merge", v)
		})
	}
	if !overwrite {
		return nil
	}

	c, err := d.adoptClone("merge", v)
	if err != nil {
		return err
	}
	old, err := d.table.Update(key, c)
	if err != nil {
		c.release()
		return err
	}
	old.release()
	return nil
}

func (d *Dict) adoptClone(op string, v *Vector) (*Vector, error) {
	if v.storage == Static {
		return nil, floatc.Errorf(op, floatc.ErrPermissionDenied, "stored vector is static")
	}
	c, err := v.Clone()
	if err != nil {
		return nil, err
	}
	c.owner = d
	return c, nil
}

// ForEach calls fn with every key and its borrowed vector. fn must not
// mutate d.
func (d *Dict) ForEach(fn func(key string, v *Vector)) error {
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

// All returns an iterator over keys and borrowed vectors in ForEach order.
func (d *Dict) All() iter.Seq2[string, *Vector] {
	if !d.valid() {
		return func(func(string, *Vector) bool) {}
	}
	return d.table.All()
}

// Keys returns the keys in ForEach order.
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
