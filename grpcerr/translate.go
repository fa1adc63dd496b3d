// Package grpcerr implements the Error Translator: the single chokepoint
// that wraps every transport call and turns a gRPC status into a stable
// *apperror.Error with a predictable message shape.
package grpcerr

import (
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ansys/acp-client-go/pkg/apperror"
)

// statusCodeNames mirrors the snake_case status names of the gRPC wire
// protocol (as used by grpc-python's StatusCode), not grpc-go's CamelCase
// codes.Code.String(); the translated message is built against the wire
// name.
var statusCodeNames = map[codes.Code]string{
	codes.OK:                 "ok",
	codes.Canceled:            "cancelled",
	codes.Unknown:             "unknown",
	codes.InvalidArgument:     "invalid_argument",
	codes.DeadlineExceeded:    "deadline_exceeded",
	codes.NotFound:            "not_found",
	codes.AlreadyExists:       "already_exists",
	codes.PermissionDenied:    "permission_denied",
	codes.ResourceExhausted:   "resource_exhausted",
	codes.FailedPrecondition:  "failed_precondition",
	codes.Aborted:             "aborted",
	codes.OutOfRange:          "out_of_range",
	codes.Unimplemented:       "unimplemented",
	codes.Internal:            "internal",
	codes.Unavailable:         "unavailable",
	codes.DataLoss:            "data_loss",
	codes.Unauthenticated:     "unauthenticated",
}

// Translate wraps err, if non-nil, into an *apperror.Error. Non-gRPC errors
// are wrapped as KindRuntime with the original message, preserved as Cause.
// The message shape for gRPC errors is:
//
//	"<first line of server details> (RPC status code <UPPERCASE_NAME>)"
func Translate(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return apperror.Wrap(err, apperror.KindRuntime, err.Error())
	}
	kind := apperror.FromGRPCStatus(st.Code())
	details := firstLine(st.Message())
	name, ok := statusCodeNames[st.Code()]
	if !ok {
		name = strings.ToLower(st.Code().String())
	}
	message := details + " (RPC status code " + strings.ToUpper(name) + ")"
	return apperror.Wrap(err, kind, message)
}

// Call runs fn and translates any error it returns. It is the functional
// shape used by every Stub Store call site: `return grpcerr.Call(func()
// error { ... })`.
func Call(fn func() error) error {
	return Translate(fn())
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
