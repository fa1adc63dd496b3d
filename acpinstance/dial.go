package acpinstance

import (
	"context"
	"time"

	grpcretry "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/retry"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/ansys/acp-client-go/pkg/apperror"
)

// DialConfig configures the transport-level connection to an ACP server.
// It covers only connection mechanics; modeling semantics are untouched.
type DialConfig struct {
	// Address is the "host:port" the gRPC channel dials.
	Address string

	// DialTimeout bounds waiting for the channel to become ready. Zero
	// means Dial returns without waiting for readiness at all.
	DialTimeout time.Duration

	// MaxRetries is the number of retry attempts the retry interceptor
	// makes for a unary call that fails with a retriable code. Zero
	// disables retries.
	MaxRetries uint

	// RetryBackoff is the fixed wait between retry attempts.
	RetryBackoff time.Duration

	// TransportCredentials, if set, replaces the default insecure
	// transport. Most ACP servers run on a trusted local or private
	// network, hence the insecure-by-default dial.
	TransportCredentials credentials.TransportCredentials

	// PerRPCCredentials, if set, is attached to every call (e.g. a
	// TokenCredentials for a bearer-token-secured server).
	PerRPCCredentials credentials.PerRPCCredentials

	// Interceptors are appended after the retry interceptor in the unary
	// chain, in order (logging, metrics, tracing are wired here by
	// Connect when the corresponding config sections are enabled).
	Interceptors []grpc.UnaryClientInterceptor

	// StreamInterceptors are appended after the retry stream interceptor.
	StreamInterceptors []grpc.StreamClientInterceptor
}

// retriableCodes lists only the gRPC codes that indicate a transient,
// safely-retriable failure.
var retriableCodes = []codes.Code{codes.Unavailable, codes.Aborted, codes.DeadlineExceeded}

// Dial opens a gRPC channel to cfg.Address with retry and (if configured)
// authentication. It returns the raw *grpc.ClientConn; callers use Connect
// to get a fully negotiated ACPInstance.
func Dial(ctx context.Context, cfg DialConfig) (*grpc.ClientConn, error) {
	if cfg.Address == "" {
		return nil, apperror.New(apperror.KindInvalidArgument, "acpinstance: DialConfig.Address is required")
	}

	transportCreds := cfg.TransportCredentials
	if transportCreds == nil {
		transportCreds = insecure.NewCredentials()
	}

	var retryOpts []grpcretry.CallOption
	if cfg.MaxRetries > 0 {
		backoff := cfg.RetryBackoff
		if backoff <= 0 {
			backoff = 200 * time.Millisecond
		}
		retryOpts = []grpcretry.CallOption{
			grpcretry.WithBackoff(grpcretry.BackoffLinear(backoff)),
			grpcretry.WithCodes(retriableCodes...),
			grpcretry.WithMax(cfg.MaxRetries),
		}
	}

	unaryChain := make([]grpc.UnaryClientInterceptor, 0, len(cfg.Interceptors)+1)
	if len(retryOpts) > 0 {
		unaryChain = append(unaryChain, grpcretry.UnaryClientInterceptor(retryOpts...))
	}
	unaryChain = append(unaryChain, cfg.Interceptors...)

	streamChain := make([]grpc.StreamClientInterceptor, 0, len(cfg.StreamInterceptors)+1)
	if len(retryOpts) > 0 {
		streamChain = append(streamChain, grpcretry.StreamClientInterceptor(retryOpts...))
	}
	streamChain = append(streamChain, cfg.StreamInterceptors...)

	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(transportCreds),
		grpc.WithChainUnaryInterceptor(unaryChain...),
		grpc.WithChainStreamInterceptor(streamChain...),
	}
	if cfg.PerRPCCredentials != nil {
		opts = append(opts, grpc.WithPerRPCCredentials(cfg.PerRPCCredentials))
	}

	conn, err := grpc.NewClient(cfg.Address, opts...)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.KindUnavailable, "acpinstance: dialing "+cfg.Address+": "+err.Error())
	}

	if cfg.DialTimeout > 0 {
		dialCtx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
		defer cancel()
		conn.Connect()
		for {
			state := conn.GetState()
			if state == connectivity.Ready {
				break
			}
			if !conn.WaitForStateChange(dialCtx, state) {
				conn.Close()
				return nil, apperror.New(apperror.KindUnavailable, "acpinstance: "+cfg.Address+" did not become ready within "+cfg.DialTimeout.String())
			}
		}
	}
	return conn, nil
}
