// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package validation

import "fmt"

// PutAlertKind enumerates checks performed before an alert write.
type PutAlertKind uint8

const (
	// CreateAlertSetID means an identifier was supplied on create.
	CreateAlertSetID PutAlertKind = iota + 1
	// UpdateAlertMissingID means no identifier was supplied on update.
	UpdateAlertMissingID
	UpdateAlertNotFound
	AlertFolderDoesNotExist
	// TriggerThresholdOperator means an operator has no trigger comparison equivalent.
	TriggerThresholdOperator
)

var putAlertMessages = map[PutAlertKind]string{
	CreateAlertSetID:        "cannot provide alert ID when creating an alert",
	UpdateAlertMissingID:    "must provide alert ID when updating an alert",
	UpdateAlertNotFound:     "alert to update not found",
	AlertFolderDoesNotExist: "error putting alert with folder that does not exist",
}

// PutAlertError is returned when an alert write is rejected.
type PutAlertError struct {
	kind     PutAlertKind
	operator string
}

var (
	ErrCreateAlertSetID     = &PutAlertError{kind: CreateAlertSetID}
	ErrUpdateAlertMissingID = &PutAlertError{kind: UpdateAlertMissingID}
	ErrUpdateAlertNotFound  = &PutAlertError{kind: UpdateAlertNotFound}
	ErrAlertFolderNotFound  = &PutAlertError{kind: AlertFolderDoesNotExist}

	// ErrThresholdOperator matches any TriggerThresholdOperator failure.
	ErrThresholdOperator = &PutAlertError{kind: TriggerThresholdOperator}
)

// NewThresholdOperator returns the failure for an operator that cannot be
// used as a trigger threshold. The operator is rendered once, here.
func NewThresholdOperator(op any) *PutAlertError {
	return &PutAlertError{kind: TriggerThresholdOperator, operator: fmt.Sprint(op)}
}

func (e *PutAlertError) Error() string {
	if e == nil {
		return ""
	}
	if e.kind == TriggerThresholdOperator {
		return fmt.Sprintf("cannot convert %s into a trigger threshold operator", e.operator)
	}
	return putAlertMessages[e.kind]
}

func (e *PutAlertError) Kind() PutAlertKind { return e.kind }

// Operator is only meaningful for TriggerThresholdOperator.
func (e *PutAlertError) Operator() string { return e.operator }

func (e *PutAlertError) Entity() string { return EntityPutAlert }

func (e *PutAlertError) Is(target error) bool {
	t, ok := target.(*PutAlertError)
	return ok && e != nil && t != nil && t.kind == e.kind
}

func (*PutAlertError) sealed() {}

// CheckAlertID enforces that an alert identifier is present exactly when
// the write is an update.
func CheckAlertID(create bool, id string) error {
	switch {
	case create && id != "":
		return ErrCreateAlertSetID
	case !create && id == "":
		return ErrUpdateAlertMissingID
	default:
		return nil
	}
}
