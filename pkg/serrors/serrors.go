// Package serrors provides semantic errors: a sentinel Kind describing the
// failure category plus an optional message and wrapped cause. The message of
// an Error is what ends up in the error field of a check result, so it is kept
// human-readable and stable.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a marker interface implemented by all semantic error kinds created
// with NewKind.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind (a sentinel). Kinds are comparable
// and match through errors.Is/As on an *Error.
func NewKind(name string) Kind { return kind{s: name} }

// Kinds used by the VAT check pipeline.
var (
	// ErrBadRequest indicates the caller supplied an unusable VAT number.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrInternal indicates an unexpected condition inside the checker.
	ErrInternal = NewKind("INTERNAL")
	// ErrUnavailable indicates VIES answered with a non-200 status.
	ErrUnavailable = NewKind("UNAVAILABLE")
	// ErrNetwork indicates the request never got an HTTP response.
	ErrNetwork = NewKind("NETWORK")
	// ErrEmptyResponse indicates VIES answered 200 with no body.
	ErrEmptyResponse = NewKind("EMPTY_RESPONSE")
	// ErrMalformedResponse indicates the body is not a usable SOAP envelope.
	ErrMalformedResponse = NewKind("MALFORMED_RESPONSE")
	// ErrFault indicates VIES answered with a SOAP Fault.
	ErrFault = NewKind("SOAP_FAULT")
)

// Error is a semantic error carrying a kind, an optional wrapped cause and an
// optional message.
//
// errors.Is and errors.As match either the kind or the wrapped cause.
//
// Error() yields "<msg>: <cause>", "<msg>", "<cause>" or the kind name,
// depending on which parts are set.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With constructs a semantic error with the given kind and message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a semantic error with the given kind wrapping err. An empty
// msgFmt makes Error() return the cause's text unchanged.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	msg := msgFmt
	if len(args) > 0 {
		msg = fmt.Sprintf(msgFmt, args...)
	}

	return &Error{kind: k, err: err, msg: msg}
}

// KindOnly creates a semantic error carrying only the kind.
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

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error { return e.err }

// Is matches either the kind sentinel or the wrapped cause.
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

// As extracts either the kind sentinel or a type from the wrapped cause chain.
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

// Kind returns the semantic kind, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to this error.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause (may be nil).
func (e *Error) Cause() error { return e.err }

// KindOf returns the kind of the first *Error found in err's chain, or nil
// when err carries no semantic kind.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.kind
	}

	return nil
}
