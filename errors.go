package floatc

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for a nil or invalidated handle, a missing
	// required input, or a value outside the accepted domain (e.g. NaN tolerance).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange is returned when an index is outside the valid bound for an
	// operation, or when a size computation would overflow.
	ErrOutOfRange = errors.New("out of range")

	// ErrEmpty is returned when an operation needs elements and none are present.
	ErrEmpty = errors.New("empty container")

	// ErrOutOfMemory is returned when an allocation is refused. The receiving
	// container is left unchanged.
	ErrOutOfMemory = errors.New("out of memory")

	// ErrKeyExists is returned when an insert targets a key that is already present.
	ErrKeyExists = errors.New("key already exists")

	// ErrKeyNotFound is returned when a lookup, update or remove targets an absent key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrPermissionDenied is returned when the storage class or ownership of a
	// vector forbids the operation (closing a static or dictionary-owned vector,
	// adopting a static vector).
	ErrPermissionDenied = errors.New("permission denied")
)

// Kind classifies an error returned by floatc.
type Kind uint8

const (
	KindNone Kind = iota
	KindInvalidArgument
	KindOutOfRange
	KindEmpty
	KindOutOfMemory
	KindKeyExists
	KindKeyNotFound
	KindPermissionDenied
	KindUnknown
)

var kindNames = [...]string{
	KindNone:             "none",
	KindInvalidArgument:  "invalid argument",
	KindOutOfRange:       "out of range",
	KindEmpty:            "empty container",
	KindOutOfMemory:      "out of memory",
	KindKeyExists:        "key exists",
	KindKeyNotFound:      "key not found",
	KindPermissionDenied: "permission denied",
	KindUnknown:          "unknown",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// KindOf reports the kind of err. A nil error is KindNone; errors that do not
// originate from floatc are KindUnknown.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrInvalidArgument):
		return KindInvalidArgument
	case errors.Is(err, ErrOutOfRange):
		return KindOutOfRange
	case errors.Is(err, ErrEmpty):
		return KindEmpty
	case errors.Is(err, ErrOutOfMemory):
		return KindOutOfMemory
	case errors.Is(err, ErrKeyExists):
		return KindKeyExists
	case errors.Is(err, ErrKeyNotFound):
		return KindKeyNotFound
	case errors.Is(err, ErrPermissionDenied):
		return KindPermissionDenied
	default:
		return KindUnknown
	}
}

// IndexError indicates an index outside [0, Len) (or [0, Len] for inserts).
//
// errors.Is(err, ErrOutOfRange) reports true for an *IndexError.
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d out of range [0:%d]", e.Op, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrOutOfRange }

// KeyError indicates a dictionary operation failed because of the presence or
// absence of Key.
//
// The underlying sentinel (ErrKeyExists or ErrKeyNotFound) can be accessed via
// errors.Unwrap.
type KeyError struct {
	Op    string
	Key   string
	cause error
}

// NewKeyError returns a *KeyError wrapping cause.
func NewKeyError(op, key string, cause error) *KeyError {
	return &KeyError{Op: op, Key: key, cause: cause}
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Key, e.cause)
}

func (e *KeyError) Unwrap() error { return e.cause }

// OpError annotates an error with the operation that produced it.
type OpError struct {
	Op  string
	Err error
}

// NewOpError returns an *OpError, or nil if err is nil.
func NewOpError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Err: err}
}

func (e *OpError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *OpError) Unwrap() error { return e.Err }

// Errorf returns an *OpError whose message is formatted from format and args
// and which unwraps to kind.
func Errorf(op string, kind error, format string, args ...any) error {
	return NewOpError(op, fmt.Errorf("%w: "+format, append([]any{kind}, args...)...))
}
