// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package repository

import (
	"fmt"

	"github.com/openlogs/infra/pkg/errors/validation"
)

// Error is a persistence failure. Values are immutable once built.
type Error struct {
	kind   Kind
	key    string
	op     string
	detail string
	cause  error
}

// NewKeyNotExists returns the failure for a lookup of a missing key.
func NewKeyNotExists(key string) *Error {
	return &Error{kind: KeyNotExists, key: key}
}

// NewOperationFailed returns the failure for op performed on key.
func NewOperationFailed(op, key string) *Error {
	return &Error{kind: OperationFailed, op: op, key: key}
}

// NewDriver returns a store driver failure carrying detail.
func NewDriver(detail string) *Error {
	return &Error{kind: Driver, detail: detail}
}

// WrapDriver returns a store driver failure for cause, rendering as its text.
func WrapDriver(cause error) *Error {
	if cause == nil {
		return nil
	}
	return &Error{kind: Driver, detail: cause.Error(), cause: cause}
}

// FromValidation lifts a domain validation failure into the persistence
// layer. It returns nil for a nil value, typed or not.
func FromValidation(v validation.Error) *Error {
	var (
		kind  Kind
		isNil bool
	)
	switch x := v.(type) {
	case *validation.GetDashboardError:
		kind, isNil = GetDashboard, x == nil
	case *validation.PutDashboardError:
		kind, isNil = PutDashboard, x == nil
	case *validation.DestinationError:
		kind, isNil = Destination, x == nil
	case *validation.TemplateError:
		kind, isNil = Template, x == nil
	case *validation.PutAlertError:
		kind, isNil = PutAlert, x == nil
	default:
		return nil
	}
	if isNil {
		return nil
	}
	return &Error{kind: kind, cause: v}
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	switch e.kind {
	case KeyNotExists:
		return fmt.Sprintf("key %s does not exist", e.key)
	case OperationFailed:
		return fmt.Sprintf("error %s performing operation on key %s", e.op, e.key)
	case UniqueViolation:
		return "Unique constraint violation"
	case Driver:
		return "DriverError# " + e.detail
	case GetDashboard, PutDashboard, Destination, Template, PutAlert:
		// Entity kinds render the carried validation failure as is.
		return e.innerText()
	default:
		return "unknown repository error"
	}
}

func (e *Error) innerText() string {
	if e.cause == nil {
		return ""
	}
	return e.cause.Error()
}

func (e *Error) Kind() Kind {
	if e == nil {
		return 0
	}
	return e.kind
}

// Key returns the key for KeyNotExists and OperationFailed.
func (e *Error) Key() string {
	if e == nil {
		return ""
	}
	return e.key
}

// Op returns the operation for OperationFailed.
func (e *Error) Op() string {
	if e == nil {
		return ""
	}
	return e.op
}

// Validation returns the carried validation failure for the entity kinds.
func (e *Error) Validation() validation.Error {
	if e == nil {
		return nil
	}
	v, _ := e.cause.(validation.Error)
	return v
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && e != nil && t != nil && t.kind == e.kind
}
