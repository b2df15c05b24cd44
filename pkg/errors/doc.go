// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

/*
Package errors provides the apex error of the platform.

# Creating Errors

Every leaf failure family has one constructor. Constructors never fail and
return nil for a nil cause:

	import (
		"github.com/openlogs/infra/pkg/errors"
		"github.com/openlogs/infra/pkg/errors/codes"
		"github.com/openlogs/infra/pkg/errors/repository"
		"github.com/openlogs/infra/pkg/errors/validation"
	)

	err := errors.FromIO(pathErr)
	err := errors.FromNATS(errors.NATSKeyValuePut, natsErr)
	err := errors.FromCode(codes.SearchTimeout("30s"))
	err := errors.Message("Ni! Try again.")

Validation failures travel one layer at a time:

	err := errors.FromDB(repository.FromValidation(validation.ErrMissingTitle))
	// DbError# error putting dashboard with missing title

When the family of an error is not known, From classifies it. From is total:
anything it does not recognise becomes KindOther with a stack trace.

	err := errors.From(clientErr)

# Rendering

Errors render as "<Prefix># <cause>", nesting outermost first. KindNotImplemented
and KindUnknown render fixed text.

# Go Error Compatibility

	// errors.Is reaches the leaf cause and matches kinds
	if errors.Is(err, validation.ErrMissingTitle) { ... }
	if errors.Is(err, errors.Sentinel(errors.KindIO)) { ... }

	// Helper functions
	kind := errors.KindOf(err)
	code := errors.GetCode(err)
	status := errors.StatusCode(err)

# Goroutines

Some leaf families keep references to client state. Before an error crosses
to another goroutine, call Detach: it returns an owned copy with the same kind
and rendering. Shareable reports whether that is needed.
*/
package errors
