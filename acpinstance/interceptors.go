package acpinstance

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/ansys/acp-client-go/pkg/logger"
	"github.com/ansys/acp-client-go/pkg/metrics"
	"github.com/ansys/acp-client-go/pkg/telemetry"
)

// collectionFromMethod extracts the resource-type segment of a full gRPC
// method name for metrics/logging labels, e.g.
// "/ansys.acp.v0.MaterialService/Get" -> "Material". A name that doesn't
// match the "<pkg>.<Entity>Service/<rpc>" shape every entity stub follows
// yields whatever precedes its last "/" (after the last ".", if any), with
// any "Service" suffix trimmed.
func collectionFromMethod(fullMethod string) string {
	service := fullMethod
	if idx := strings.LastIndex(service, "/"); idx >= 0 {
		service = service[:idx]
	}
	if idx := strings.LastIndex(service, "."); idx >= 0 {
		service = service[idx+1:]
	}
	return strings.TrimSuffix(service, "Service")
}

// LoggingInterceptor logs every unary RPC at debug (success) or warn
// (error) level with method, collection, duration and gRPC code, in the
// same shape as a server-side logging interceptor but wired as a
// client-side one.
func LoggingInterceptor() grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		start := time.Now()
		err := invoker(ctx, method, req, reply, cc, opts...)
		duration := time.Since(start)
		st, _ := status.FromError(err)
		fields := []any{
			"method", method,
			"collection", collectionFromMethod(method),
			"duration_ms", duration.Milliseconds(),
			"code", st.Code().String(),
		}
		if err != nil {
			logger.Warn("rpc failed", fields...)
		} else {
			logger.Debug("rpc succeeded", fields...)
		}
		return err
	}
}

// StreamLoggingInterceptor is the streaming counterpart of LoggingInterceptor.
func StreamLoggingInterceptor() grpc.StreamClientInterceptor {
	return func(ctx context.Context, desc *grpc.StreamDesc, cc *grpc.ClientConn, method string, streamer grpc.Streamer, opts ...grpc.CallOption) (grpc.ClientStream, error) {
		start := time.Now()
		stream, err := streamer(ctx, desc, cc, method, opts...)
		duration := time.Since(start)
		st, _ := status.FromError(err)
		logger.Debug("rpc stream opened", "method", method, "collection", collectionFromMethod(method), "duration_ms", duration.Milliseconds(), "code", st.Code().String())
		return stream, err
	}
}

// MetricsInterceptor records every unary RPC into m: a count and duration
// per method/collection/status, plus the call's span on the in-flight
// gauge for as long as it is outstanding.
func MetricsInterceptor(m *metrics.Metrics) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		collection := collectionFromMethod(method)

		end := m.TrackInFlight(method)
		defer end()

		timer := m.StartTimer(method, collection)
		err := invoker(ctx, method, req, reply, cc, opts...)
		timer.ObserveDuration()

		result := "ok"
		if err != nil {
			result = "error"
		}
		m.RPCRequestsTotal.WithLabelValues(method, collection, result).Inc()
		return err
	}
}

// TracingInterceptor opens a client span per unary RPC, the client-side
// counterpart of a server interceptor's SpanKindServer span
// (SpanKindClient here).
func TracingInterceptor() grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		ctx, span := telemetry.StartSpan(ctx, method, trace.WithSpanKind(trace.SpanKindClient))
		defer span.End()
		span.SetAttributes(
			attribute.String("rpc.method", method),
			attribute.String("rpc.collection", collectionFromMethod(method)),
		)

		err := invoker(ctx, method, req, reply, cc, opts...)
		if err != nil {
			st, _ := status.FromError(err)
			span.SetStatus(otelcodes.Error, st.Message())
			span.SetAttributes(attribute.String("rpc.grpc.status_code", st.Code().String()))
			span.RecordError(err)
		} else {
			span.SetStatus(otelcodes.Ok, "")
		}
		return err
	}
}
