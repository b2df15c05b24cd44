// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package grpc carries client-facing error codes over gRPC status values.
// The status message holds the wire form of the code.
package grpc

import (
	"context"
	"net/http"

	"github.com/openlogs/infra/pkg/errors"
	"github.com/openlogs/infra/pkg/errors/codes"
	"google.golang.org/grpc"
	grpccodes "google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func grpcCode(httpStatus int) grpccodes.Code {
	switch httpStatus {
	case http.StatusBadRequest:
		return grpccodes.InvalidArgument
	case http.StatusNotFound:
		return grpccodes.NotFound
	case http.StatusRequestTimeout:
		return grpccodes.DeadlineExceeded
	case http.StatusTooManyRequests:
		return grpccodes.ResourceExhausted
	case codes.StatusClientClosedRequest:
		return grpccodes.Canceled
	default:
		return grpccodes.Internal
	}
}

// Status returns the gRPC status for c.
func Status(c codes.Code) *status.Status {
	return status.New(grpcCode(c.StatusCode()), c.Encode())
}

// Error returns the gRPC status error for c.
func Error(c codes.Code) error {
	return Status(c).Err()
}

// FromStatus decodes the code carried by a gRPC status error. It never
// fails: errors that are not statuses become ServerInternalError.
func FromStatus(err error) codes.Code {
	if err == nil {
		return codes.Code{}
	}
	st, ok := status.FromError(err)
	if !ok {
		return codes.ServerInternalError(err.Error())
	}
	return codes.Decode(st.Message())
}

// FromError maps an error onto a gRPC status error. Errors carrying a code
// keep it; any other error becomes ServerInternalError with its rendering.
func FromError(err error) error {
	if err == nil {
		return nil
	}
	return Error(errors.ToCode(err))
}

// UnaryServerInterceptor converts handler errors with FromError.
func UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err != nil {
			return resp, FromError(err)
		}
		return resp, nil
	}
}

// UnaryClientInterceptor converts status errors back into apex errors of
// kind errors.KindErrorCode.
func UnaryClientInterceptor() grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		if err := invoker(ctx, method, req, reply, cc, opts...); err != nil {
			return errors.FromCode(FromStatus(err))
		}
		return nil
	}
}
