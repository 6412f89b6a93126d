// Package gfaerr defines the closed set of error kinds raised by this
// module's parsing, validation, editing, and traversal operations.
package gfaerr

import (
	"errors"
	"fmt"
)

// Kind is one of the eight error kinds the GFA core can raise. The set is
// closed: no caller should switch on a Kind value it doesn't recognize from
// this list.
type Kind int

const (
	// FormatError reports a field that doesn't match its datatype's syntax.
	FormatError Kind = iota
	// TypeError reports a predefined tag used with the wrong datatype.
	TypeError
	// NotFoundError reports a missing required tag or segment (a "bang"
	// accessor call, or a segment! lookup that misses).
	NotFoundError
	// NotUniqueError reports an identity collision: a segment, path, or
	// group name that already names a real record.
	NotUniqueError
	// InconsistencyError reports a duplicate tag name on one record, or a
	// broken structural invariant.
	InconsistencyError
	// VersionError reports a field or record valid only in the other GFA
	// version.
	VersionError
	// ArgumentError reports a caller-supplied parameter out of range, such
	// as a negative multiplication factor.
	ArgumentError
	// RuntimeError reports an unsupported runtime case: a non-M CIGAR
	// during linear-path merge, or a mutation attempted on a virtual
	// record.
	RuntimeError
)

// String names the Kind for error messages and test failure output.
func (k Kind) String() string {
	switch k {
	case FormatError:
		return "FormatError"
	case TypeError:
		return "TypeError"
	case NotFoundError:
		return "NotFoundError"
	case NotUniqueError:
		return "NotUniqueError"
	case InconsistencyError:
		return "InconsistencyError"
	case VersionError:
		return "VersionError"
	case ArgumentError:
		return "ArgumentError"
	case RuntimeError:
		return "RuntimeError"
	default:
		return "UnknownError"
	}
}

// Error is the concrete error type for every failure this module raises.
// Op names the operation or record field that failed (e.g. "tag:LN",
// "rename", "multiply_segment"); Message is a human-readable detail; Cause,
// if non-nil, is wrapped and reachable via errors.Unwrap/errors.As.
type Error struct {
	Kind    Kind
	Op      string
	Message string
	Cause   error
}

// New creates an *Error with no wrapped cause.
func New(kind Kind, op, message string) *Error {
	return &Error{Kind: kind, Op: op, Message: message}
}

// Wrap creates an *Error that wraps an existing error as its cause.
func Wrap(kind Kind, op string, cause error) *Error {
	return &Error{Kind: kind, Op: op, Message: cause.Error(), Cause: cause}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Op, e.Message)
}

// Unwrap exposes the wrapped cause, if any, to errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether err is a *gfaerr.Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
