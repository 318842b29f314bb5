package merkle

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the errors the core can return, matching the error
// taxonomy in the design's error handling section. Invalid (a failed
// verification) is represented as a plain boolean result, not an error: it
// is a negative answer, not a system failure.
type ErrorKind int

const (
	// BadArgument means the caller violated an input contract.
	BadArgument ErrorKind = iota + 1
	// IndexOutOfRange means a leaf index was outside [0, leaf_count).
	IndexOutOfRange
	// NotFound means prove_first_matching found no matching leaf.
	NotFound
	// AllocationFailed is part of the taxonomy for memory exhaustion, but
	// no allocation failure produces it: the Go runtime aborts the process
	// on out-of-memory before any error can be returned. Build returns it
	// only from its internal "no root" branch, which its argument checks
	// make unreachable.
	AllocationFailed
	// BadProof means verify observed a structurally inconsistent proof.
	BadProof
)

func (k ErrorKind) String() string {
	switch k {
	case BadArgument:
		return "bad_argument"
	case IndexOutOfRange:
		return "index_out_of_range"
	case NotFound:
		return "not_found"
	case AllocationFailed:
		return "allocation_failed"
	case BadProof:
		return "bad_proof"
	default:
		return "unknown"
	}
}

// Error is the concrete error type returned by every fallible operation in
// this package. It carries a Kind so callers can branch on the taxonomy
// without string matching.
type Error struct {
	kind ErrorKind
	msg  string
}

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return fmt.Sprintf("merkle: %s: %s", e.kind, e.msg)
}

// Kind returns the error's taxonomy classification.
func (e *Error) Kind() ErrorKind { return e.kind }

// KindOf extracts the ErrorKind from err if it (or something it wraps) is a
// *Error. The second return value is false for errors from outside this
// package, including nil.
func KindOf(err error) (ErrorKind, bool) {
	var me *Error
	if errors.As(err, &me) {
		return me.kind, true
	}
	return 0, false
}
