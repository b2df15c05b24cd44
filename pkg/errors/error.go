// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package errors

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/openlogs/infra/pkg/errors/codes"
	"github.com/openlogs/infra/pkg/errors/repository"
	pkgerrors "github.com/pkg/errors"
	"golang.org/x/text/encoding"
)

// Error is the apex error. It wraps exactly one leaf cause, or a free text
// message, under a Kind. It renders as "<Prefix># <cause>" and supports
// errors.Is/As through Unwrap.
//
// Build values with the From* constructors or with the classifier From.
type Error struct {
	kind  Kind
	text  string
	cause error
}

var (
	ErrNotImplemented error = &Error{kind: KindNotImplemented}
	ErrUnknown        error = &Error{kind: KindUnknown}
)

// Error renders the error using the fixed display rule of its kind.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if d, ok := e.cause.(detached); ok && d.whole {
		return d.text
	}
	info := kinds[e.kind]
	if info.fixed != "" {
		return info.fixed
	}
	if e.cause != nil {
		return info.prefix + e.cause.Error()
	}
	return info.prefix + e.text
}

// Unwrap returns the leaf cause.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Kind returns the leaf family of e.
func (e *Error) Kind() Kind {
	if e == nil {
		return 0
	}
	return e.kind
}

// Is matches a payload-less Error of the same kind, so ErrNotImplemented
// and Sentinel values work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return t.kind == e.kind && t.cause == nil && t.text == ""
}

// StackTrace returns the stack captured for KindOther errors.
func (e *Error) StackTrace() pkgerrors.StackTrace {
	type stackTracer interface {
		StackTrace() pkgerrors.StackTrace
	}
	if st, ok := e.Unwrap().(stackTracer); ok {
		return st.StackTrace()
	}
	return nil
}

// Sentinel returns a payload-less Error of kind k for use with errors.Is.
func Sentinel(k Kind) error {
	return &Error{kind: k}
}

// KindOf returns the kind of the first Error in err's tree, or 0.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return 0
}

// HasKind reports whether err is an Error of kind k.
func HasKind(err error, k Kind) bool {
	return KindOf(err) == k
}

// GetCode extracts the client-facing code carried by err.
// Returns a zero Code if there is none.
func GetCode(err error) codes.Code {
	var c codes.Code
	if errors.As(err, &c) {
		return c
	}
	return codes.Code{}
}

// ToCode returns the client-facing code for err. Errors that carry none
// become ServerInternalError holding their detached rendering.
func ToCode(err error) codes.Code {
	if err == nil {
		return codes.Code{}
	}
	if c := GetCode(err); !c.IsZero() {
		return c
	}
	return codes.ServerInternalError(Detach(err).Error())
}

// StatusCode returns the HTTP status for err.
// Returns 500 Internal Server Error if the error carries no code.
func StatusCode(err error) int {
	code := GetCode(err)
	if code.IsZero() {
		return 500
	}
	return code.StatusCode()
}

// Shareable reports whether e may be handed to another goroutine as is.
// Only leaves known to be immutable values qualify. Any other cause must go
// through Detach first.
func (e *Error) Shareable() bool {
	if e == nil || e.cause == nil {
		return true
	}
	return shareableLeaf(e.cause)
}

func shareableLeaf(cause error) bool {
	switch c := cause.(type) {
	case detached, codes.Code, *NarrowingError:
		return true
	case *ParseError:
		return c == nil || c.Err == nil || shareableParseCause(c.Err)
	case *repository.Error:
		// Driver failures may keep the driver's own error value.
		return c == nil || c.Kind() != repository.Driver || c.Unwrap() == nil
	case *json.SyntaxError, *json.UnmarshalTypeError, *json.UnsupportedTypeError, *json.InvalidUnmarshalError:
		return true
	}
	return cause == encoding.ErrInvalidUTF8
}

func shareableParseCause(err error) bool {
	switch c := err.(type) {
	case detached:
		return true
	case *strconv.NumError:
		return c != nil && (c.Err == strconv.ErrSyntax || c.Err == strconv.ErrRange)
	}
	return false
}

// Detach returns a copy of e owning no reference to the leaf cause. The
// copy keeps the kind, the rendering and any client-facing code, and is
// safe to read from any goroutine.
func (e *Error) Detach() *Error {
	if e == nil || e.Shareable() {
		return e
	}
	return &Error{kind: e.kind, cause: detached{text: e.causeText(), code: GetCode(e.cause)}}
}

func (e *Error) causeText() string {
	if e.cause != nil {
		return e.cause.Error()
	}
	return e.text
}

// Detach returns an owned copy of err. When err wraps an Error, the copy
// takes that Error's kind and keeps err's whole rendering and code. Errors
// outside the taxonomy are classified first.
func Detach(err error) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		if e == nil {
			return nil
		}
		return e.Detach()
	}
	var e *Error
	if errors.As(err, &e) {
		return &Error{kind: e.kind, cause: detached{text: err.Error(), code: GetCode(err), whole: true}}
	}
	cls, _ := From(err).(*Error)
	return cls.Detach()
}

// detached is the owned rendering of a leaf cause together with the code
// the leaf carried. A whole rendering is shown without the kind prefix.
type detached struct {
	text  string
	code  codes.Code
	whole bool
}

func (d detached) Error() string { return d.text }

func (d detached) Unwrap() error {
	if d.code.IsZero() {
		return nil
	}
	return d.code
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
