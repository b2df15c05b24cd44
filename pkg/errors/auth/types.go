// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package auth contains the failures raised while verifying bearer tokens.
package auth

import "fmt"

// Kind identifies a token failure.
type Kind uint8

const (
	// KeyNotExists means no signing key matches the token's kid.
	KeyNotExists Kind = iota + 1
	// MissingAttribute means a required header or claim is absent.
	MissingAttribute
	// ValidationFailed means the token could not be verified.
	ValidationFailed
)

// Error is a token verification failure.
type Error struct {
	kind      Kind
	attribute string
	cause     error
}

var (
	ErrKeyNotExists     = &Error{kind: KeyNotExists}
	ErrMissingAttribute = &Error{kind: MissingAttribute}
	ErrValidationFailed = &Error{kind: ValidationFailed}
)

// NewMissingAttribute returns the failure for a token lacking attribute.
func NewMissingAttribute(attribute string) *Error {
	return &Error{kind: MissingAttribute, attribute: attribute}
}

// NewValidationFailed returns a verification failure caused by err.
func NewValidationFailed(err error) *Error {
	return &Error{kind: ValidationFailed, cause: err}
}

func (e *Error) Error() string {
	switch e.kind {
	case KeyNotExists:
		return "No matching JWK found for the given kid"
	case MissingAttribute:
		return fmt.Sprintf("Token doesn't have a %s field", e.attribute)
	default:
		return "Token can't be verified"
	}
}

func (e *Error) Kind() Kind { return e.kind }

// Attribute is only meaningful for MissingAttribute.
func (e *Error) Attribute() string { return e.attribute }

func (e *Error) Unwrap() error { return e.cause }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.kind == e.kind
}
