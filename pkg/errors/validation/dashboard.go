// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package validation

import "fmt"

// GetDashboardKind enumerates failures while reading a stored dashboard.
type GetDashboardKind uint8

const (
	// UnsupportedVersion means the stored document declares a schema
	// version this reader cannot interpret.
	UnsupportedVersion GetDashboardKind = iota + 1
)

// GetDashboardError is returned when a stored dashboard cannot be read back.
type GetDashboardError struct {
	kind    GetDashboardKind
	version int32
}

// ErrUnsupportedVersion matches any UnsupportedVersion failure regardless of version.
var ErrUnsupportedVersion = &GetDashboardError{kind: UnsupportedVersion}

// NewUnsupportedVersion returns the failure for a dashboard stored with version.
func NewUnsupportedVersion(version int32) *GetDashboardError {
	return &GetDashboardError{kind: UnsupportedVersion, version: version}
}

func (e *GetDashboardError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("dashboard in DB has version %d which cannot be deserialized", e.version)
}

func (e *GetDashboardError) Kind() GetDashboardKind { return e.kind }

// Version returns the schema version found in storage.
func (e *GetDashboardError) Version() int32 { return e.version }

func (e *GetDashboardError) Entity() string { return EntityGetDashboard }

func (e *GetDashboardError) Is(target error) bool {
	t, ok := target.(*GetDashboardError)
	return ok && e != nil && t != nil && t.kind == e.kind
}

func (*GetDashboardError) sealed() {}

// PutDashboardKind enumerates presence checks performed before a dashboard write.
type PutDashboardKind uint8

const (
	DashboardFolderDoesNotExist PutDashboardKind = iota + 1
	MissingDashboardID
	MissingTitle
	MissingOwner
	MissingInnerData
)

var putDashboardMessages = map[PutDashboardKind]string{
	DashboardFolderDoesNotExist: "error putting dashboard with folder that does not exist",
	MissingDashboardID:          "error putting dashboard with missing dashboard_id",
	MissingTitle:                "error putting dashboard with missing title",
	MissingOwner:                "error putting dashboard with missing owner",
}

// PutDashboardError is returned when a dashboard write is rejected.
type PutDashboardError struct {
	kind    PutDashboardKind
	version int32
}

var (
	ErrDashboardFolderNotFound = &PutDashboardError{kind: DashboardFolderDoesNotExist}
	ErrMissingDashboardID      = &PutDashboardError{kind: MissingDashboardID}
	ErrMissingTitle            = &PutDashboardError{kind: MissingTitle}
	ErrMissingOwner            = &PutDashboardError{kind: MissingOwner}

	// ErrMissingInnerData matches any MissingInnerData failure regardless of version.
	ErrMissingInnerData = &PutDashboardError{kind: MissingInnerData}
)

// NewMissingInnerData returns the failure for a dashboard of the given
// version that carries no body for that version.
func NewMissingInnerData(version int32) *PutDashboardError {
	return &PutDashboardError{kind: MissingInnerData, version: version}
}

func (e *PutDashboardError) Error() string {
	if e == nil {
		return ""
	}
	if e.kind == MissingInnerData {
		return fmt.Sprintf("error putting dashboard with missing inner data for version %d", e.version)
	}
	return putDashboardMessages[e.kind]
}

func (e *PutDashboardError) Kind() PutDashboardKind { return e.kind }

// Version is only meaningful for MissingInnerData.
func (e *PutDashboardError) Version() int32 { return e.version }

func (e *PutDashboardError) Entity() string { return EntityPutDashboard }

func (e *PutDashboardError) Is(target error) bool {
	t, ok := target.(*PutDashboardError)
	return ok && e != nil && t != nil && t.kind == e.kind
}

func (*PutDashboardError) sealed() {}
