// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package api writes errors to HTTP clients as client-facing error codes.
package api

import (
	"context"
	"io"
	"net/http"

	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/openlogs/infra/logger"
	"github.com/openlogs/infra/pkg/errors"
)

const contentType = "application/json"

var _ kithttp.ErrorEncoder = EncodeError

// EncodeError writes the wire form of err's code with the matching status.
func EncodeError(_ context.Context, err error, w http.ResponseWriter) {
	c := errors.ToCode(err)
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(c.StatusCode())
	_, _ = io.WriteString(w, c.Encode())
}

// LoggingErrorEncoder logs the detached error before encoding it.
func LoggingErrorEncoder(l logger.Logger, enc kithttp.ErrorEncoder) kithttp.ErrorEncoder {
	return func(ctx context.Context, err error, w http.ResponseWriter) {
		l.Err("request failed", err)
		enc(ctx, err, w)
	}
}
