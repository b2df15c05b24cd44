// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package tracing records classified errors on OpenTelemetry spans.
package tracing

import (
	"context"

	"github.com/go-kit/kit/endpoint"
	"github.com/openlogs/infra/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	kindKey = "error.kind"
	codeKey = "error.code"
)

// RecordError marks span as failed. The event carries the kind and, when
// present, the client-facing code of the detached error.
func RecordError(span trace.Span, err error) {
	if err == nil {
		return
	}
	d := errors.Detach(err)
	attrs := []attribute.KeyValue{
		attribute.String(kindKey, errors.KindOf(d).String()),
	}
	if c := errors.GetCode(d); !c.IsZero() {
		attrs = append(attrs, attribute.Int(codeKey, c.Code()))
	}
	span.RecordError(d, trace.WithAttributes(attrs...))
	span.SetStatus(otelcodes.Error, d.Error())
}

// Endpoint returns e wrapped in a span named op.
func Endpoint(tracer trace.Tracer, op string, e endpoint.Endpoint) endpoint.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		ctx, span := tracer.Start(ctx, op, trace.WithAttributes(
			attribute.String("operation", op),
		))
		defer span.End()

		resp, err := e(ctx, request)
		RecordError(span, err)
		return resp, err
	}
}
