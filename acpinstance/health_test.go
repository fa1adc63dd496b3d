package acpinstance_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"

	"github.com/ansys/acp-client-go/acpinstance"
)

func dialBufconn(t *testing.T, lis *bufconn.Listener) *grpc.ClientConn {
	t.Helper()
	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	return conn
}

func startHealthServer(t *testing.T, status grpc_health_v1.HealthCheckResponse_ServingStatus) (*bufconn.Listener, func()) {
	t.Helper()
	lis := bufconn.Listen(1024 * 1024)
	srv := grpc.NewServer()
	h := health.NewServer()
	h.SetServingStatus("", status)
	grpc_health_v1.RegisterHealthServer(srv, h)
	go func() { _ = srv.Serve(lis) }()
	return lis, srv.Stop
}

func TestCheckServerServing(t *testing.T) {
	lis, stop := startHealthServer(t, grpc_health_v1.HealthCheckResponse_SERVING)
	defer stop()

	conn := dialBufconn(t, lis)
	defer conn.Close()

	assert.True(t, acpinstance.CheckServer(context.Background(), conn, time.Second))
}

func TestCheckServerNotServing(t *testing.T) {
	lis, stop := startHealthServer(t, grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	defer stop()

	conn := dialBufconn(t, lis)
	defer conn.Close()

	assert.False(t, acpinstance.CheckServer(context.Background(), conn, time.Second))
}

func TestWaitForServerSucceedsOnceServing(t *testing.T) {
	lis, stop := startHealthServer(t, grpc_health_v1.HealthCheckResponse_SERVING)
	defer stop()

	conn := dialBufconn(t, lis)
	defer conn.Close()

	err := acpinstance.WaitForServer(context.Background(), conn, acpinstance.HealthCheckConfig{
		Timeout:      time.Second,
		PollInterval: 10 * time.Millisecond,
	})
	require.NoError(t, err)
}

func TestWaitForServerTimesOutWhenNeverServing(t *testing.T) {
	lis, stop := startHealthServer(t, grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	defer stop()

	conn := dialBufconn(t, lis)
	defer conn.Close()

	err := acpinstance.WaitForServer(context.Background(), conn, acpinstance.HealthCheckConfig{
		Timeout:      100 * time.Millisecond,
		PollInterval: 10 * time.Millisecond,
	})
	require.Error(t, err)
}

func TestWaitForServerRespectsContextCancellation(t *testing.T) {
	lis, stop := startHealthServer(t, grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	defer stop()

	conn := dialBufconn(t, lis)
	defer conn.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := acpinstance.WaitForServer(ctx, conn, acpinstance.HealthCheckConfig{
		Timeout:      time.Second,
		PollInterval: time.Second,
	})
	require.Error(t, err)
}
