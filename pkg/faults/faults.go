// Package faults defines the semantic error kinds used across the drill
// catalog: missing file, division by zero, missing mapping key, index out of
// range, and invalid conversion. Kinds are sentinels matched through
// errors.Is/As, and Classify maps raw standard-library failures onto them so
// drills can report a human-readable category at the point of use.
package faults

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
)

// Kind is a marker interface implemented by all semantic error kinds created
// with NewKind. It allows distinguishing semantic kinds from ordinary errors.
type Kind interface {
	error
	isKind()
}

// kind is an unexported implementation of Kind used as a sentinel value for a
// semantic error category.
type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind (a sentinel) with the provided
// name. Kinds are comparable and can be used with errors.Is/As through the
// faults.Error wrapper.
func NewKind(name string) Kind { return kind{s: name} }

// The kinds below are exactly the failure categories the drill material
// exercises. Anything that does not fit one of them is ErrInternal.
var (
	// ErrFileMissing indicates a file or directory that does not exist.
	ErrFileMissing = NewKind("FILE_MISSING")
	// ErrDivideByZero indicates a division with a zero divisor.
	ErrDivideByZero = NewKind("DIVIDE_BY_ZERO")
	// ErrKeyMissing indicates a lookup against a mapping key that is absent.
	ErrKeyMissing = NewKind("KEY_MISSING")
	// ErrIndexRange indicates an index outside the bounds of a sequence.
	ErrIndexRange = NewKind("INDEX_RANGE")
	// ErrBadConversion indicates a value that cannot be converted to the
	// requested type (e.g. a non-numeric string parsed as an integer).
	ErrBadConversion = NewKind("BAD_CONVERSION")
	// ErrInternal indicates a failure outside the drill taxonomy.
	ErrInternal = NewKind("INTERNAL")
)

// Error represents a semantic error carrying a kind (sentinel), an optional
// wrapped cause and an optional message. It fully supports errors.Is/errors.As
// and unwrapping: matching succeeds against either the kind sentinel or the
// wrapped cause.
//
// Error string formatting:
//   - If both msg and cause are set: "<msg>: <cause>"
//   - If only msg is set: "<msg>"
//   - If only cause is set: "<cause>"
//   - If neither is set: the kind's Error() string.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With constructs a new semantic error with the given kind and a
// human-readable message. Use Wrap if you also want to attach a concrete
// cause.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a new semantic error with the given kind, wrapping the
// provided cause and attaching a message.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates a semantic error carrying only the kind without extra
// message or concrete cause.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	default:
		if e.kind != nil {
			return e.kind.Error()
		}

		return "unknown error"
	}
}

// Unwrap returns the wrapped cause, enabling errors.Unwrap/Is/As to traverse
// the underlying chain.
func (e *Error) Unwrap() error { return e.err }

// Is enables matching against either the semantic kind sentinel or the
// wrapped cause in the chain.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}
	if e.err != nil && errors.Is(e.err, target) {
		return true
	}

	return false
}

// As enables type assertions against either the semantic kind sentinel or the
// wrapped cause in the chain.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}
	if e.err != nil && errors.As(e.err, target) {
		return true
	}

	return false
}

// Kind returns the semantic kind sentinel associated with this error, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to this error.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause (may be nil).
func (e *Error) Cause() error { return e.err }

// KindOf extracts the semantic kind from anywhere in err's chain. It returns
// nil when err is nil and ErrInternal when no kind is present.
func KindOf(err error) Kind {
	if err == nil {
		return nil
	}

	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return ErrInternal
}

// Classify maps a raw error onto the drill taxonomy. Standard-library
// failures the drills provoke (missing files, failed integer parses) are
// recognized directly; errors already carrying a kind keep it; anything else
// becomes ErrInternal. A nil error classifies to nil.
func Classify(err error) Kind {
	if err == nil {
		return nil
	}

	var k Kind
	if errors.As(err, &k) {
		return k
	}

	if errors.Is(err, fs.ErrNotExist) {
		return ErrFileMissing
	}

	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return ErrBadConversion
	}

	return ErrInternal
}
