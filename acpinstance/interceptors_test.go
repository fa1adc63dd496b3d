package acpinstance

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ansys/acp-client-go/pkg/logger"
	"github.com/ansys/acp-client-go/pkg/metrics"
)

func init() {
	logger.Init("error")
}

func TestCollectionFromMethod(t *testing.T) {
	assert.Equal(t, "Material", collectionFromMethod("/ansys.acp.v0.MaterialService/Get"))
	assert.Equal(t, "Model", collectionFromMethod("/ansys.acp.v0.ModelService/Save"))
	assert.Equal(t, "", collectionFromMethod(""))
}

func TestLoggingInterceptorPassesThroughSuccess(t *testing.T) {
	interceptor := LoggingInterceptor()
	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		return nil
	}
	err := interceptor(context.Background(), "/ansys.acp.v0.MaterialService/Get", nil, nil, nil, invoker)
	require.NoError(t, err)
}

func TestLoggingInterceptorPassesThroughError(t *testing.T) {
	interceptor := LoggingInterceptor()
	wantErr := status.Error(codes.NotFound, "not found")
	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		return wantErr
	}
	err := interceptor(context.Background(), "/ansys.acp.v0.MaterialService/Get", nil, nil, nil, invoker)
	assert.True(t, errors.Is(err, wantErr) || err == wantErr)
}

func TestMetricsInterceptorRecordsResult(t *testing.T) {
	m := metrics.InitMetrics("acpinstance_test", "interceptors")
	interceptor := MetricsInterceptor(m)

	okInvoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		return nil
	}
	require.NoError(t, interceptor(context.Background(), "/ansys.acp.v0.FabricService/Get", nil, nil, nil, okInvoker))

	errInvoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		return status.Error(codes.Internal, "boom")
	}
	err := interceptor(context.Background(), "/ansys.acp.v0.FabricService/Get", nil, nil, nil, errInvoker)
	assert.Error(t, err)
}
