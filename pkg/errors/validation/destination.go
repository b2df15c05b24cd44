// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package validation

// DestinationKind enumerates referential and identifier checks for alert destinations.
type DestinationKind uint8

const (
	AlertDestTemplateNotFound DestinationKind = iota + 1
	AlertDestEmptyTemplateID
	DestinationConvertingID
)

// DestinationError is returned when an alert destination is rejected or
// cannot be read back.
type DestinationError struct {
	kind   DestinationKind
	detail string
}

var (
	ErrDestTemplateNotFound    = &DestinationError{kind: AlertDestTemplateNotFound}
	ErrDestEmptyTemplateID     = &DestinationError{kind: AlertDestEmptyTemplateID}
	ErrDestinationConvertingID = &DestinationError{kind: DestinationConvertingID}
)

// NewDestinationConvertingID returns the failure for a malformed destination identifier.
func NewDestinationConvertingID(detail string) *DestinationError {
	return &DestinationError{kind: DestinationConvertingID, detail: detail}
}

func (e *DestinationError) Error() string {
	if e == nil {
		return ""
	}
	switch e.kind {
	case AlertDestTemplateNotFound:
		return "alert destination template not found"
	case AlertDestEmptyTemplateID:
		return "alert destination in DB has empty template id"
	default:
		return "error converting destination id: " + e.detail
	}
}

func (e *DestinationError) Kind() DestinationKind { return e.kind }

func (e *DestinationError) Detail() string { return e.detail }

func (e *DestinationError) Entity() string { return EntityDestination }

func (e *DestinationError) Is(target error) bool {
	t, ok := target.(*DestinationError)
	return ok && e != nil && t != nil && t.kind == e.kind
}

func (*DestinationError) sealed() {}

// CheckDestinationTemplate rejects a destination that references no template.
func CheckDestinationTemplate(templateID string) error {
	if templateID == "" {
		return ErrDestEmptyTemplateID
	}
	return nil
}

// TemplateError is returned when a template identifier cannot be parsed.
type TemplateError struct {
	detail string
}

// ErrTemplateConvertingID matches any TemplateError.
var ErrTemplateConvertingID = &TemplateError{}

// NewTemplateConvertingID returns the failure for a malformed template identifier.
func NewTemplateConvertingID(detail string) *TemplateError {
	return &TemplateError{detail: detail}
}

func (e *TemplateError) Error() string {
	if e == nil {
		return ""
	}
	return "error converting template id: " + e.detail
}

func (e *TemplateError) Detail() string { return e.detail }

func (e *TemplateError) Entity() string { return EntityTemplate }

func (e *TemplateError) Is(target error) bool {
	_, ok := target.(*TemplateError)
	return ok
}

func (*TemplateError) sealed() {}
