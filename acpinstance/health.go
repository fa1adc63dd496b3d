package acpinstance

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/ansys/acp-client-go/pkg/apperror"
	"github.com/ansys/acp-client-go/pkg/logger"
)

// HealthCheckConfig bounds a single WaitForServer call.
type HealthCheckConfig struct {
	// Timeout is the total time allowed for the server to start serving.
	Timeout time.Duration

	// PollInterval is the wait between unsuccessful checks. Defaults to
	// Timeout/20 if zero.
	PollInterval time.Duration

	// PerCallTimeout bounds a single Check RPC. Defaults to
	// Timeout/3 if zero, the same retry-budget split used for dependent-
	// service health checks.
	PerCallTimeout time.Duration
}

func (c HealthCheckConfig) withDefaults() HealthCheckConfig {
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	if c.PollInterval <= 0 {
		c.PollInterval = c.Timeout / 20
	}
	if c.PerCallTimeout <= 0 {
		c.PerCallTimeout = c.Timeout / 3
	}
	return c
}

// CheckServer sends a single health check request over conn and reports
// whether the server answered SERVING. A real RPC against the standard
// gRPC health service, so WaitForServer can actually succeed on its own.
func CheckServer(ctx context.Context, conn grpc.ClientConnInterface, timeout time.Duration) bool {
	callCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	resp, err := grpc_health_v1.NewHealthClient(conn).Check(callCtx, &grpc_health_v1.HealthCheckRequest{})
	if err != nil {
		return false
	}
	return resp.GetStatus() == grpc_health_v1.HealthCheckResponse_SERVING
}

// WaitForServer repeatedly sends health check requests over conn, returning
// as soon as the server reports SERVING, or a timeout error once
// cfg.Timeout elapses.
func WaitForServer(ctx context.Context, conn grpc.ClientConnInterface, cfg HealthCheckConfig) error {
	cfg = cfg.withDefaults()
	deadline := time.Now().Add(cfg.Timeout)
	attempt := 0
	for {
		attempt++
		if CheckServer(ctx, conn, cfg.PerCallTimeout) {
			logger.Info("acp server is serving", "attempts", attempt)
			return nil
		}
		if time.Now().After(deadline) {
			return apperror.Newf(apperror.KindTimeout, "the gRPC server is not serving requests after %s", cfg.Timeout)
		}
		select {
		case <-ctx.Done():
			return apperror.Wrap(ctx.Err(), apperror.KindTimeout, "waiting for server: "+ctx.Err().Error())
		case <-time.After(cfg.PollInterval):
		}
	}
}
