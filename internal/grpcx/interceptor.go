package grpcx

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

const authorizationHeader = "authorization"

func withAuthorization(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(authorizationHeader, "Bearer "+token)
	return metadata.NewOutgoingContext(ctx, md)
}

// AuthInterceptor attaches the given token as bearer authorization metadata
// to every unary call on the channel. Metadata already present on the call
// context is preserved.
func AuthInterceptor(token string) grpc.UnaryClientInterceptor {
	return func(
		ctx context.Context,
		method string,
		req, reply any,
		cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker,
		opts ...grpc.CallOption,
	) error {
		return invoker(withAuthorization(ctx, token), method, req, reply, cc, opts...)
	}
}
