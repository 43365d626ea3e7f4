package grpcx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

func TestAuthInterceptorAddsBearerToken(t *testing.T) {
	interceptor := AuthInterceptor("secret-token")

	invoked := false
	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		invoked = true
		md, ok := metadata.FromOutgoingContext(ctx)
		require.True(t, ok)
		require.Equal(t, []string{"Bearer secret-token"}, md.Get(authorizationHeader))
		return nil
	}

	err := interceptor(context.Background(), "/lunaris.v1.DataService/ListDatasets", nil, nil, nil, invoker)
	require.NoError(t, err)
	require.True(t, invoked)
}

func TestAuthInterceptorPreservesExistingMetadata(t *testing.T) {
	interceptor := AuthInterceptor("secret-token")
	ctx := metadata.AppendToOutgoingContext(context.Background(), "x-request-id", "42")

	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, _ := metadata.FromOutgoingContext(ctx)
		require.Equal(t, []string{"42"}, md.Get("x-request-id"))
		require.Equal(t, []string{"Bearer secret-token"}, md.Get(authorizationHeader))
		return nil
	}

	require.NoError(t, interceptor(ctx, "/lunaris.v1.DataService/ListDatasets", nil, nil, nil, invoker))
}
