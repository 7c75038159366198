package hashtable

import (
	"context"
	"iter"
	"strings"
	"unsafe"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/floatc"
	"github.com/hupe1980/floatc/internal/conv"
	"github.com/hupe1980/floatc/internal/hash"
)

var bucketSize = int64(unsafe.Sizeof(uintptr(0)))

type entry[V any] struct {
	key   string
	value V
	next  *entry[V]
}

// Table is a chained hash table keyed by string.
//
// Entries are prepended to the chain of bucket hash(key) mod BucketCount().
// After an insert pushes Len()/BucketCount() above the load factor, the
// bucket count doubles and every entry is rehashed. The bucket count never
// shrinks.
//
// A Table is not safe for concurrent use. Mutating a table from inside
// ForEach or All fails with floatc.ErrInvalidArgument.
type Table[V any] struct {
	buckets   []*entry[V]
	size      uint32
	occupied  *roaring.Bitmap
	count     int
	opts      floatc.Options
	logger    *floatc.Logger
	release   func(V)
	entrySize int64
	iterating int
}

// New creates a table with opts.BucketCount buckets. release, if not nil, is
// called for every value the table destroys (Clear, Close).
func New[V any](opts floatc.Options, release func(V)) (*Table[V], error) {
	n := opts.BucketCount
	if n <= 0 {
		n = floatc.DefaultBucketCount
	}
	if opts.LoadFactor <= 0 || opts.LoadFactor > 1 {
		opts.LoadFactor = floatc.DefaultLoadFactor
	}
	if opts.Logger == nil {
		opts.Logger = floatc.NoopLogger()
	}
	if opts.Metrics == nil {
		opts.Metrics = floatc.NoopMetricsCollector{}
	}
	size, err := conv.IntToUint32(n)
	if err != nil {
		return nil, floatc.Errorf("new", floatc.ErrOutOfRange, "bucket count: %v", err)
	}

	t := &Table[V]{
		occupied:  roaring.New(),
		opts:      opts,
		logger:    opts.Logger.WithContainer("hashtable"),
		release:   release,
		entrySize: int64(unsafe.Sizeof(entry[V]{})),
	}

	if err := t.reserve("new", int64(n)*bucketSize); err != nil {
		return nil, err
	}
	t.buckets = make([]*entry[V], n)
	t.size = size

	return t, nil
}

// Options returns the resolved options of the table.
func (t *Table[V]) Options() floatc.Options {
	return t.opts
}

// Len returns the number of entries.
func (t *Table[V]) Len() int {
	return t.count
}

// BucketCount returns the number of buckets.
func (t *Table[V]) BucketCount() int {
	return len(t.buckets)
}

// PopulatedBuckets returns the number of buckets holding at least one entry.
func (t *Table[V]) PopulatedBuckets() int {
	return int(t.occupied.GetCardinality())
}

// Closed reports whether Close was called.
func (t *Table[V]) Closed() bool {
	return t.buckets == nil
}

// Get returns the value stored under key.
func (t *Table[V]) Get(key string) (V, bool) {
	if e := t.find(key); e != nil {
		return e.value, true
	}
	var zero V
	return zero, false
}

// Has reports whether key is present.
func (t *Table[V]) Has(key string) bool {
	return t.find(key) != nil
}

// Insert adds key with value v.
func (t *Table[V]) Insert(key string, v V) error {
	return t.InsertFunc(key, func() (V, error) { return v, nil })
}

// InsertFunc adds key with the value produced by newValue.
//
// newValue is only called once every other precondition (key absent, entry
// memory reserved) holds, so a failing insert never consumes a value. If
// newValue fails, the table is left unchanged and its error is returned.
func (t *Table[V]) InsertFunc(key string, newValue func() (V, error)) error {
	const op = "insert"
	if err := t.checkMutable(op); err != nil {
		return err
	}

	idx := hash.Bucket(key, t.size)
	for e := t.buckets[idx]; e != nil; e = e.next {
		if e.key == key {
			return floatc.NewKeyError(op, key, floatc.ErrKeyExists)
		}
	}

	size := t.entryBytes(key)
	if err := t.reserve(op, size); err != nil {
		return err
	}

	v, err := newValue()
	if err != nil {
		t.opts.Resources.ReleaseMemory(size)
		return err
	}

	t.link(idx, &entry[V]{key: strings.Clone(key), value: v})
	t.maybeGrow()

	return nil
}

// Update replaces the value stored under key and returns the previous one.
// The previous value is not released.
func (t *Table[V]) Update(key string, v V) (V, error) {
	const op = "update"
	var zero V
	if err := t.checkMutable(op); err != nil {
		return zero, err
	}

	e := t.find(key)
	if e == nil {
		return zero, floatc.NewKeyError(op, key, floatc.ErrKeyNotFound)
	}
	old := e.value
	e.value = v
	return old, nil
}

// Remove unlinks key and returns its value. The value is not released.
func (t *Table[V]) Remove(key string) (V, error) {
	const op = "remove"
	var zero V
	if err := t.checkMutable(op); err != nil {
		return zero, err
	}

	idx := hash.Bucket(key, t.size)
	var prev *entry[V]
	for e := t.buckets[idx]; e != nil; prev, e = e, e.next {
		if e.key != key {
			continue
		}
		if prev == nil {
			t.buckets[idx] = e.next
		} else {
			prev.next = e.next
		}
		if t.buckets[idx] == nil {
			t.occupied.Remove(idx)
		}
		t.count--
		t.opts.Resources.ReleaseMemory(t.entryBytes(e.key))
		return e.value, nil
	}
	return zero, floatc.NewKeyError(op, key, floatc.ErrKeyNotFound)
}

// Clear destroys every entry but keeps the bucket array.
func (t *Table[V]) Clear() error {
	if err := t.checkMutable("clear"); err != nil {
		return err
	}
	t.clear()
	return nil
}

// Close destroys every entry and releases the bucket array. Further calls
// on the table fail with floatc.ErrInvalidArgument.
func (t *Table[V]) Close() error {
	if err := t.checkMutable("close"); err != nil {
		return err
	}
	t.clear()
	t.opts.Resources.ReleaseMemory(int64(len(t.buckets)) * bucketSize)
	t.buckets = nil
	return nil
}

// ForEach calls fn for every entry, bucket by bucket and chain by chain.
func (t *Table[V]) ForEach(fn func(key string, v V)) {
	for k, v := range t.All() {
		fn(k, v)
	}
}

// All returns an iterator over all entries in ForEach order.
func (t *Table[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		t.iterating++
		defer func() { t.iterating-- }()

		it := t.occupied.Iterator()
		for it.HasNext() {
			for e := t.buckets[it.Next()]; e != nil; e = e.next {
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}

// Clone returns a deep copy of t with the same bucket layout and visitation
// order. cloneValue copies each value; on failure every value cloned so far
// is released and the partial copy is discarded.
func (t *Table[V]) Clone(cloneValue func(V) (V, error)) (*Table[V], error) {
	if t.Closed() {
		return nil, floatc.Errorf("clone", floatc.ErrInvalidArgument, "table is closed")
	}

	opts := t.opts
	opts.BucketCount = len(t.buckets)
	dst, err := New[V](opts, t.release)
	if err != nil {
		return nil, err
	}

	it := t.occupied.Iterator()
	for it.HasNext() {
		idx := it.Next()
		var tail *entry[V]
		for e := t.buckets[idx]; e != nil; e = e.next {
			size := dst.entryBytes(e.key)
			if err := dst.reserve("clone", size); err != nil {
				_ = dst.Close()
				return nil, err
			}
			v, err := cloneValue(e.value)
			if err != nil {
				dst.opts.Resources.ReleaseMemory(size)
				_ = dst.Close()
				return nil, err
			}

			n := &entry[V]{key: e.key, value: v}
			if tail == nil {
				dst.buckets[idx] = n
				dst.occupied.Add(idx)
			} else {
				tail.next = n
			}
			tail = n
			dst.count++
		}
	}

	return dst, nil
}

func (t *Table[V]) find(key string) *entry[V] {
	if t.Closed() {
		return nil
	}
	for e := t.buckets[hash.Bucket(key, t.size)]; e != nil; e = e.next {
		if e.key == key {
			return e
		}
	}
	return nil
}

func (t *Table[V]) link(idx uint32, e *entry[V]) {
	if t.buckets[idx] == nil {
		t.occupied.Add(idx)
	}
	e.next = t.buckets[idx]
	t.buckets[idx] = e
	t.count++
}

func (t *Table[V]) clear() {
	it := t.occupied.Iterator()
	for it.HasNext() {
		idx := it.Next()
		for e := t.buckets[idx]; e != nil; {
			next := e.next
			if t.release != nil {
				t.release(e.value)
			}
			t.opts.Resources.ReleaseMemory(t.entryBytes(e.key))
			e.next = nil
			e = next
		}
		t.buckets[idx] = nil
	}
	t.occupied.Clear()
	t.count = 0
}

// maybeGrow doubles the bucket count once the load factor is exceeded. A
// refused or impossible resize leaves the table valid at a higher load.
func (t *Table[V]) maybeGrow() {
	from := len(t.buckets)
	if float64(t.count)/float64(from) <= t.opts.LoadFactor {
		return
	}

	ctx := context.Background()
	to, err := conv.MulInt(from, 2)
	var size uint32
	if err == nil {
		size, err = conv.IntToUint32(to)
	}
	if err != nil {
		err = floatc.Errorf("rehash", floatc.ErrOutOfRange, "bucket count: %v", err)
	} else {
		err = t.reserve("rehash", int64(to)*bucketSize)
	}
	if err != nil {
		t.logger.LogRehash(ctx, from, to, t.count, err)
		return
	}

	buckets := make([]*entry[V], to)
	occupied := roaring.New()

	it := t.occupied.Iterator()
	for it.HasNext() {
		for e := t.buckets[it.Next()]; e != nil; {
			next := e.next
			idx := hash.Bucket(e.key, size)
			if buckets[idx] == nil {
				occupied.Add(idx)
			}
			e.next = buckets[idx]
			buckets[idx] = e
			e = next
		}
	}

	t.buckets = buckets
	t.size = size
	t.occupied = occupied
	t.opts.Resources.ReleaseMemory(int64(from) * bucketSize)

	t.opts.Metrics.RecordRehash(from, to)
	t.logger.LogRehash(ctx, from, to, t.count, nil)
}

func (t *Table[V]) entryBytes(key string) int64 {
	return t.entrySize + int64(len(key))
}

func (t *Table[V]) reserve(op string, bytes int64) error {
	if err := t.opts.Resources.AcquireMemory(bytes); err != nil {
		t.opts.Metrics.RecordAllocFailure()
		t.logger.LogAllocFailure(context.Background(), op, bytes)
		return floatc.Errorf(op, floatc.ErrOutOfMemory, "%v", err)
	}
	return nil
}

func (t *Table[V]) checkMutable(op string) error {
	if t.Closed() {
		return floatc.Errorf(op, floatc.ErrInvalidArgument, "table is closed")
	}
	if t.iterating > 0 {
		return floatc.Errorf(op, floatc.ErrInvalidArgument, "table mutated during iteration")
	}
	return nil
}
