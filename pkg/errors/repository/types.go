// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package repository contains the persistence layer failures.
//
// Domain validation failures reach the apex error only through this
// package: they are carried by one of the entity kinds below.
package repository

// Kind identifies a persistence failure.
type Kind uint8

const (
	KeyNotExists Kind = iota + 1
	OperationFailed
	UniqueViolation
	Driver

	// Entity kinds, each carrying one validation family.
	GetDashboard
	PutDashboard
	Destination
	Template
	PutAlert
)

var kindNames = map[Kind]string{
	KeyNotExists:    "key_not_exists",
	OperationFailed: "operation_failed",
	UniqueViolation: "unique_violation",
	Driver:          "driver",
	GetDashboard:    "get_dashboard",
	PutDashboard:    "put_dashboard",
	Destination:     "destination",
	Template:        "template",
	PutAlert:        "put_alert",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Sentinels for matching with errors.Is. Payload is ignored when matching.
var (
	ErrKeyNotExists    = &Error{kind: KeyNotExists}
	ErrOperationFailed = &Error{kind: OperationFailed}
	ErrUniqueViolation = &Error{kind: UniqueViolation}
	ErrDriver          = &Error{kind: Driver}
	ErrGetDashboard    = &Error{kind: GetDashboard}
	ErrPutDashboard    = &Error{kind: PutDashboard}
	ErrDestination     = &Error{kind: Destination}
	ErrTemplate        = &Error{kind: Template}
	ErrPutAlert        = &Error{kind: PutAlert}
)
