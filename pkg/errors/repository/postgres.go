// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package repository

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

const (
	errDuplicate  = "unique_violation"
	errInvalid    = "invalid_text_representation"
	errTruncation = "string_data_right_truncation"
)

// HandleError classifies an error returned by a SQL driver while performing
// op on key. Both pgx and lib/pq errors are recognised.
func HandleError(err error, op, key string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
		return NewKeyNotExists(key)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return ErrUniqueViolation
		case pgerrcode.InvalidTextRepresentation, pgerrcode.StringDataRightTruncationDataException:
			return NewOperationFailed(op, key)
		}
		return WrapDriver(err)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Name() {
		case errDuplicate:
			return ErrUniqueViolation
		case errInvalid, errTruncation:
			return NewOperationFailed(op, key)
		}
		return WrapDriver(err)
	}

	return WrapDriver(err)
}
