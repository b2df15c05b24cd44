// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package errors

import (
	"github.com/openlogs/infra/pkg/errors/codes"
	"github.com/openlogs/infra/pkg/errors/repository"
	pkgerrors "github.com/pkg/errors"
)

// wrap returns nil for a nil cause so a missing failure never becomes one.
func wrap(k Kind, cause error) error {
	if cause == nil {
		return nil
	}
	return &Error{kind: k, cause: cause}
}

func text(k Kind, msg string) error {
	return &Error{kind: k, text: msg}
}

// FromIO wraps a filesystem or stream failure.
func FromIO(err error) error { return wrap(KindIO, err) }

// FromDB wraps a persistence failure. Validation failures must be lifted
// with repository.FromValidation first.
func FromDB(err *repository.Error) error {
	if err == nil {
		return nil
	}
	return &Error{kind: KindDB, cause: err}
}

// FromEtcd wraps a coordination store failure.
func FromEtcd(err error) error { return wrap(KindEtcd, err) }

// FromCache wraps a Redis failure.
func FromCache(err error) error { return wrap(KindCache, err) }

// FromParse wraps a string conversion failure.
func FromParse(err *ParseError) error {
	if err == nil {
		return nil
	}
	return &Error{kind: KindParse, cause: err}
}

// FromNarrowing wraps a numeric narrowing failure.
func FromNarrowing(err *NarrowingError) error {
	if err == nil {
		return nil
	}
	return &Error{kind: KindNarrowing, cause: err}
}

// FromJSON wraps an encoding or decoding failure.
func FromJSON(err error) error { return wrap(KindJSON, err) }

// FromArrow wraps a columnar engine failure.
func FromArrow(err error) error { return wrap(KindArrow, err) }

// WatcherExists reports a second registration of the named watcher.
func WatcherExists(name string) error { return text(KindWatcherExists, name) }

// FromUTF8 wraps a text decoding failure.
func FromUTF8(err error) error { return wrap(KindUTF8, err) }

// FromSQL wraps a relational driver failure.
func FromSQL(err error) error { return wrap(KindSQL, err) }

// FromNATS wraps a failure of the given NATS client operation.
func FromNATS(op NATSOp, err error) error { return wrap(op.kind(), err) }

// Message builds an error from free text.
func Message(msg string) error { return text(KindMessage, msg) }

// FromCode routes a client-facing code through the generic error channel.
func FromCode(c codes.Code) error {
	if c.IsZero() {
		return nil
	}
	return &Error{kind: KindErrorCode, cause: c}
}

// FromHTTP wraps an HTTP client failure.
func FromHTTP(err error) error { return wrap(KindHTTP, err) }

// Resource builds a resource failure from free text.
func Resource(msg string) error { return text(KindResource, msg) }

// Ingestion builds an ingestion pipeline failure from free text.
func Ingestion(msg string) error { return text(KindIngestion, msg) }

// FromIngestion wraps an ingestion pipeline failure, such as a Kafka
// producer error.
func FromIngestion(err error) error { return wrap(KindIngestion, err) }

// WAL builds a write-ahead-log failure from free text.
func WAL(msg string) error { return text(KindWAL, msg) }

// Other wraps an uncategorised failure and records where it was wrapped.
func Other(err error) error {
	if err == nil {
		return nil
	}
	return &Error{kind: KindOther, cause: pkgerrors.WithStack(err)}
}
