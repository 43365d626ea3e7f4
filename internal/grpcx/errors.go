// Package grpcx contains the gRPC plumbing shared by every typed client in
// the SDK: channel construction, auth metadata, translation of transport
// failures into the SDK's error taxonomy, and the cursor pagination driver.
package grpcx

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// The SDK's error taxonomy. Every RPC failure a caller can observe is exactly
// one of these four kinds, never a raw *status.Status. Each carries the
// original server message.

// AuthenticationError indicates a request failed because of a missing or
// invalid authentication token, or insufficient permissions.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string { return e.Message }

// NotFoundError indicates a referenced resource does not exist on the server.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// ArgumentError indicates the caller supplied missing or invalid arguments.
type ArgumentError struct {
	Message string
}

func (e *ArgumentError) Error() string { return e.Message }

// InternalServerError indicates an unexpected server-side fault, and is also
// the fallback for any status code without a more specific mapping.
type InternalServerError struct {
	Message string
}

func (e *InternalServerError) Error() string { return e.Message }

// TranslateError maps a transport failure to the SDK error taxonomy. The
// mapping is total: every non-nil error produces exactly one typed error, and
// codes without a dedicated kind fall through to InternalServerError. A nil
// error stays nil.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}
	// status.FromError treats non-status errors as codes.Unknown, which the
	// fallback below absorbs, keeping the mapping total.
	s, _ := status.FromError(err)
	switch s.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return &AuthenticationError{Message: s.Message()}
	case codes.NotFound:
		return &NotFoundError{Message: s.Message()}
	case codes.InvalidArgument:
		return &ArgumentError{Message: s.Message()}
	default:
		return &InternalServerError{Message: s.Message()}
	}
}

// Invoke calls a single stub method and translates its failure. Every typed
// service method goes through Invoke rather than a channel interceptor, so a
// raised error's origin in diagnostics is the call site itself. On success
// the response passes through unchanged; no retries, no logging.
func Invoke[Req, Resp any](
	ctx context.Context,
	rpc func(context.Context, Req, ...grpc.CallOption) (Resp, error),
	req Req,
	opts ...grpc.CallOption,
) (Resp, error) {
	resp, err := rpc(ctx, req, opts...)
	if err != nil {
		var zero Resp
		return zero, TranslateError(err)
	}
	return resp, nil
}
