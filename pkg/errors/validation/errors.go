// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package validation contains the domain validation failures raised before
// any dashboard, alert, destination or template write is attempted.
//
// Values of this package never reach the apex error directly. They are
// carried by the repository package first.
package validation

// Error is implemented by every domain validation failure.
// The set of implementations is closed to this package.
type Error interface {
	error

	// Entity names the domain entity the failure belongs to.
	Entity() string

	sealed()
}

var (
	_ Error = (*GetDashboardError)(nil)
	_ Error = (*PutDashboardError)(nil)
	_ Error = (*PutAlertError)(nil)
	_ Error = (*DestinationError)(nil)
	_ Error = (*TemplateError)(nil)
)

const (
	EntityGetDashboard = "get_dashboard"
	EntityPutDashboard = "put_dashboard"
	EntityPutAlert     = "put_alert"
	EntityDestination  = "destination"
	EntityTemplate     = "template"
)
