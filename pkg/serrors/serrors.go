// Package serrors defines semantic error kinds shared across layers. A kind
// says what went wrong (not found, timed out, ...) independently of the
// concrete cause, so probes, storage and the HTTP layer can agree on meaning
// while keeping the original error for logs.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a semantic error category created with NewKind.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind.
func NewKind(name string) Kind { return kind{s: name} }

var (
	// ErrNotFound reports a missing entity or an absent record.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrUnauthorized reports missing or invalid credentials.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrBadRequest reports invalid caller input.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrInternal reports an unexpected failure.
	ErrInternal = NewKind("INTERNAL")
	// ErrTimeout reports an expired deadline or a cancelled operation.
	ErrTimeout = NewKind("TIMEOUT")
	// ErrUnavailable reports a transport or upstream failure.
	ErrUnavailable = NewKind("UNAVAILABLE")
	// ErrRateLimited reports too many requests.
	ErrRateLimited = NewKind("RATE_LIMITED")
)

// Error carries a kind, an optional cause and an optional message.
// errors.Is and errors.As match either the kind or anything in the cause chain.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With creates an error of kind k with a formatted message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap creates an error of kind k around err with a formatted message.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates an error carrying only its kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// KindOf returns the kind of the first *Error found in err's chain, or nil.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.kind
	}

	return nil
}

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
	case e.kind != nil:
		return e.kind.Error()
	default:
		return "unknown error"
	}
}

func (e *Error) Unwrap() error { return e.err }

func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}

	return e.err != nil && errors.Is(e.err, target)
}

func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}

	return e.err != nil && errors.As(e.err, target)
}

// Kind returns the kind, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the attached message.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped error, or nil.
func (e *Error) Cause() error { return e.err }
