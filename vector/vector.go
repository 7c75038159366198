package vector

import (
	"context"
	"iter"
	"slices"

	"github.com/hupe1980/floatc"
	"github.com/hupe1980/floatc/internal/conv"
)

// Storage is the storage class of a Vector.
type Storage uint8

const (
	// Static vectors are views over caller-provided storage. They never grow
	// and are never released through the vector API.
	Static Storage = iota
	// Dynamic vectors own their buffer and grow on demand.
	Dynamic
)

func (s Storage) String() string {
	switch s {
	case Static:
		return "static"
	case Dynamic:
		return "dynamic"
	default:
		return "unknown"
	}
}

const (
	elemSize = 4

	// growThreshold is the capacity below which growth doubles.
	growThreshold = 1 << 20
	// growIncrement is the fixed number of elements added at or above growThreshold.
	growIncrement = 1 << 20
)

type state uint8

const (
	stateInvalid state = iota
	stateLive
	stateMoved
	stateClosed
)

// Vector is a contiguous run of float32 values.
//
// len(data) is the capacity; data[length:] is always zero. A Vector is not
// safe for concurrent use.
type Vector struct {
	data    []float32
	length  int
	storage Storage
	state   state
	owner   *Dict
	opts    floatc.Options
	logger  *floatc.Logger
}

// New creates a dynamic vector with the given initial capacity.
//
// The buffer is zero-initialized. New fails with floatc.ErrInvalidArgument if
// capacity < 1, floatc.ErrOutOfRange if the buffer size overflows, and
// floatc.ErrOutOfMemory if the configured resource controller refuses it.
func New(capacity int, optFns ...floatc.Option) (*Vector, error) {
	return newVector("new", capacity, floatc.ApplyOptions(optFns...))
}

// NewStatic creates a static vector over storage. Its capacity is
// len(storage) and its length is 0. storage is zeroed.
//
// The vector borrows storage: it never grows beyond it, and Close refuses to
// release it.
func NewStatic(storage []float32) *Vector {
	clear(storage)
	opts := floatc.ApplyOptions()
	return &Vector{
		data:    storage[:len(storage):len(storage)],
		storage: Static,
		state:   stateLive,
		opts:    opts,
		logger:  opts.Logger,
	}
}

// FromSlice creates a dynamic vector holding a copy of values.
func FromSlice(values []float32, optFns ...floatc.Option) (*Vector, error) {
	v, err := newVector("from_slice", max(len(values), 1), floatc.ApplyOptions(optFns...))
	if err != nil {
		return nil, err
	}
	v.length = copy(v.data, values)
	return v, nil
}

func newVector(op string, capacity int, opts floatc.Options) (*Vector, error) {
	if capacity < 1 {
		return nil, floatc.Errorf(op, floatc.ErrInvalidArgument, "capacity must be positive, got %d", capacity)
	}
	bytes, err := conv.ByteSize(capacity, elemSize)
	if err != nil {
		return nil, floatc.Errorf(op, floatc.ErrOutOfRange, "%v", err)
	}

	v := &Vector{
		storage: Dynamic,
		state:   stateLive,
		opts:    opts,
		logger:  opts.Logger.WithContainer("vector"),
	}
	if err := v.reserve(op, bytes); err != nil {
		return nil, err
	}
	v.data = make([]float32, capacity)

	return v, nil
}

// Close releases the buffer of a dynamic vector. The handle is unusable
// afterwards.
//
// Closing a vector owned by a Dict fails with floatc.ErrPermissionDenied.
// Closing a static, nil, closed or moved-from vector fails with
// floatc.ErrInvalidArgument.
func (v *Vector) Close() error {
	const op = "close"
	if err := v.check(op); err != nil {
		return err
	}
	if v.storage == Static {
		return floatc.Errorf(op, floatc.ErrInvalidArgument, "static vector storage is owned by the caller")
	}
	if v.owner != nil {
		return floatc.Errorf(op, floatc.ErrPermissionDenied, "vector is owned by a dictionary")
	}
	v.release()
	return nil
}

func (v *Vector) release() {
	v.opts.Resources.ReleaseMemory(int64(len(v.data)) * elemSize)
	v.data = nil
	v.length = 0
	v.owner = nil
	v.state = stateClosed
}

// IsValid reports whether v can be used (not nil, closed or moved-from).
func (v *Vector) IsValid() bool {
	return v != nil && v.state == stateLive
}

// Len returns the number of elements, or floatc.InvalidSize for an invalid vector.
func (v *Vector) Len() int {
	if !v.IsValid() {
		return floatc.InvalidSize
	}
	return v.length
}

// Cap returns the capacity, or floatc.InvalidSize for an invalid vector.
func (v *Vector) Cap() int {
	if !v.IsValid() {
		return floatc.InvalidSize
	}
	return len(v.data)
}

// Storage returns the storage class of v.
func (v *Vector) Storage() Storage {
	if v == nil {
		return Static
	}
	return v.storage
}

// Append adds value at the end of v, growing a dynamic vector when full.
func (v *Vector) Append(value float32) error {
	const op = "append"
	if err := v.check(op); err != nil {
		return err
	}
	if err := v.ensureSpare(op); err != nil {
		return err
	}
	v.data[v.length] = value
	v.length++
	return nil
}

// Prepend adds value at index 0, shifting every element one slot right.
func (v *Vector) Prepend(value float32) error {
	const op = "prepend"
	if err := v.check(op); err != nil {
		return err
	}
	if err := v.ensureSpare(op); err != nil {
		return err
	}
	copy(v.data[1:v.length+1], v.data[:v.length])
	v.data[0] = value
	v.length++
	return nil
}

// Insert places value at index, shifting elements at and after index one
// slot right. index must be in [0, Len()]; index == Len() appends.
func (v *Vector) Insert(index int, value float32) error {
	const op = "insert"
	if err := v.check(op); err != nil {
		return err
	}
	if index < 0 || index > v.length {
		return &floatc.IndexError{Op: op, Index: index, Len: v.length}
	}
	if err := v.ensureSpare(op); err != nil {
		return err
	}
	if index < v.length {
		copy(v.data[index+1:v.length+1], v.data[index:v.length])
	}
	v.data[index] = value
	v.length++
	return nil
}

// At returns the element at index i.
func (v *Vector) At(i int) (float32, error) {
	const op = "at"
	if err := v.check(op); err != nil {
		return 0, err
	}
	if i < 0 || i >= v.length {
		return 0, &floatc.IndexError{Op: op, Index: i, Len: v.length}
	}
	return v.data[i], nil
}

// Set overwrites the element at index i. Length and capacity are unchanged.
func (v *Vector) Set(i int, value float32) error {
	const op = "set"
	if err := v.check(op); err != nil {
		return err
	}
	if v.length == 0 {
		return floatc.Errorf(op, floatc.ErrInvalidArgument, "vector is empty")
	}
	if i < 0 || i >= v.length {
		return &floatc.IndexError{Op: op, Index: i, Len: v.length}
	}
	v.data[i] = value
	return nil
}

// PopBack removes and returns the last element.
func (v *Vector) PopBack() (float32, error) {
	const op = "pop_back"
	if err := v.checkNotEmpty(op); err != nil {
		return 0, err
	}
	v.length--
	value := v.data[v.length]
	v.data[v.length] = 0
	return value, nil
}

// PopFront removes and returns the first element, shifting the rest left.
func (v *Vector) PopFront() (float32, error) {
	const op = "pop_front"
	if err := v.checkNotEmpty(op); err != nil {
		return 0, err
	}
	return v.removeAt(0), nil
}

// PopAt removes and returns the element at index, shifting later elements left.
func (v *Vector) PopAt(index int) (float32, error) {
	const op = "pop_at"
	if err := v.checkNotEmpty(op); err != nil {
		return 0, err
	}
	if index < 0 || index >= v.length {
		return 0, &floatc.IndexError{Op: op, Index: index, Len: v.length}
	}
	return v.removeAt(index), nil
}

func (v *Vector) removeAt(index int) float32 {
	value := v.data[index]
	copy(v.data[index:v.length-1], v.data[index+1:v.length])
	v.length--
	v.data[v.length] = 0
	return value
}

// Trim shrinks the capacity of a dynamic vector to its length.
// Static vectors and vectors without spare capacity are left as they are.
func (v *Vector) Trim() error {
	const op = "trim"
	if err := v.checkNotEmpty(op); err != nil {
		return err
	}
	if v.storage == Static || v.length == len(v.data) {
		return nil
	}

	from := len(v.data)
	if err := v.resize(op, v.length); err != nil {
		v.logger.LogTrim(context.Background(), from, v.length, err)
		return err
	}
	v.opts.Metrics.RecordShrink(from, v.length)
	v.logger.LogTrim(context.Background(), from, v.length, nil)
	return nil
}

// Clear sets the length to 0 and zeroes the used elements. Capacity is kept.
func (v *Vector) Clear() error {
	if err := v.check("clear"); err != nil {
		return err
	}
	clear(v.data[:v.length])
	v.length = 0
	return nil
}

// Values returns a copy of the elements.
func (v *Vector) Values() []float32 {
	if !v.IsValid() {
		return nil
	}
	return slices.Clone(v.data[:v.length])
}

// All returns an iterator over index/value pairs.
func (v *Vector) All() iter.Seq2[int, float32] {
	return func(yield func(int, float32) bool) {
		if !v.IsValid() {
			return
		}
		for i := 0; i < v.length; i++ {
			if !yield(i, v.data[i]) {
				return
			}
		}
	}
}

// Clone returns a dynamic deep copy of v with the same length and capacity.
//
// Without options the clone inherits the configuration of v.
func (v *Vector) Clone(optFns ...floatc.Option) (*Vector, error) {
	const op = "clone"
	if err := v.check(op); err != nil {
		return nil, err
	}
	opts := v.opts
	if len(optFns) > 0 {
		opts = floatc.ApplyOptions(optFns...)
	}
	c, err := newVector(op, max(len(v.data), 1), opts)
	if err != nil {
		return nil, err
	}
	c.length = copy(c.data, v.data[:v.length])
	return c, nil
}

// Move transfers ownership of the buffer of a dynamic vector to a new handle.
//
// v is left in a moved-from state in which every operation fails with
// floatc.ErrInvalidArgument. Static and dictionary-owned vectors cannot be
// moved (floatc.ErrPermissionDenied).
func (v *Vector) Move() (*Vector, error) {
	const op = "move"
	if err := v.check(op); err != nil {
		return nil, err
	}
	if err := v.checkTransferable(op); err != nil {
		return nil, err
	}

	m := &Vector{
		data:    v.data,
		length:  v.length,
		storage: v.storage,
		state:   stateLive,
		opts:    v.opts,
		logger:  v.logger,
	}
	v.data = nil
	v.length = 0
	v.state = stateMoved
	return m, nil
}

func (v *Vector) checkTransferable(op string) error {
	if v.storage == Static {
		return floatc.Errorf(op, floatc.ErrPermissionDenied, "static vector cannot be transferred")
	}
	if v.owner != nil {
		return floatc.Errorf(op, floatc.ErrPermissionDenied, "vector is owned by a dictionary")
	}
	return nil
}

// ensureSpare makes room for one more element.
func (v *Vector) ensureSpare(op string) error {
	if v.length < len(v.data) {
		return nil
	}
	if v.storage == Static {
		return floatc.Errorf(op, floatc.ErrInvalidArgument, "static vector capacity %d exhausted", len(v.data))
	}

	from := len(v.data)
	to, err := nextCapacity(from)
	if err != nil {
		err = floatc.Errorf(op, floatc.ErrOutOfRange, "%v", err)
		v.logger.LogGrow(context.Background(), from, to, err)
		return err
	}
	if err := v.resize(op, to); err != nil {
		v.logger.LogGrow(context.Background(), from, to, err)
		return err
	}
	v.opts.Metrics.RecordGrow(from, to)
	v.logger.LogGrow(context.Background(), from, to, nil)
	return nil
}

// nextCapacity applies the growth policy: double below growThreshold,
// otherwise add growIncrement.
func nextCapacity(capacity int) (int, error) {
	if capacity < growThreshold {
		return conv.MulInt(max(capacity, 1), 2)
	}
	return conv.AddInt(capacity, growIncrement)
}

// resize reallocates the buffer to capacity elements. The old buffer stays
// accounted until the copy is done; on failure v is unchanged.
func (v *Vector) resize(op string, capacity int) error {
	bytes, err := conv.ByteSize(capacity, elemSize)
	if err != nil {
		return floatc.Errorf(op, floatc.ErrOutOfRange, "%v", err)
	}
	if err := v.reserve(op, bytes); err != nil {
		return err
	}

	data := make([]float32, capacity)
	copy(data, v.data[:v.length])
	v.opts.Resources.ReleaseMemory(int64(len(v.data)) * elemSize)
	v.data = data
	return nil
}

func (v *Vector) reserve(op string, bytes int64) error {
	if err := v.opts.Resources.AcquireMemory(bytes); err != nil {
		v.opts.Metrics.RecordAllocFailure()
		v.logger.LogAllocFailure(context.Background(), op, bytes)
		return floatc.Errorf(op, floatc.ErrOutOfMemory, "%v", err)
	}
	return nil
}

func (v *Vector) check(op string) error {
	if v == nil {
		return floatc.Errorf(op, floatc.ErrInvalidArgument, "vector is nil")
	}
	switch v.state {
	case stateLive:
		return nil
	case stateMoved:
		return floatc.Errorf(op, floatc.ErrInvalidArgument, "vector was moved")
	case stateClosed:
		return floatc.Errorf(op, floatc.ErrInvalidArgument, "vector is closed")
	default:
		return floatc.Errorf(op, floatc.ErrInvalidArgument, "vector is not initialized")
	}
}

func (v *Vector) checkNotEmpty(op string) error {
	if err := v.check(op); err != nil {
		return err
	}
	if v.length == 0 {
		return floatc.Errorf(op, floatc.ErrEmpty, "vector is empty")
	}
	return nil
}
