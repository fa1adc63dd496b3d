// Package apperror provides the client's stable, language-neutral error
// taxonomy and the plumbing to translate gRPC status codes into it and
// back.
package apperror

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Kind is one of the seven error kinds the core ever raises.
type Kind string

const (
	KindInvalidArgument  Kind = "invalid-argument"
	KindNotFound         Kind = "not-found"
	KindRuntime          Kind = "runtime"
	KindTimeout          Kind = "timeout"
	KindPermissionDenied Kind = "permission-denied"
	KindNotImplemented   Kind = "not-implemented"
	KindUnavailable      Kind = "unavailable"
)

// codeToKind is the stable gRPC-status-to-Kind mapping.
var codeToKind = map[codes.Code]Kind{
	codes.InvalidArgument:    KindInvalidArgument,
	codes.NotFound:           KindNotFound,
	codes.OutOfRange:         KindNotFound,
	codes.AlreadyExists:      KindRuntime,
	codes.FailedPrecondition: KindRuntime,
	codes.Aborted:            KindRuntime,
	codes.DataLoss:           KindRuntime,
	codes.Internal:           KindRuntime,
	codes.Unknown:            KindRuntime,
	codes.DeadlineExceeded:   KindTimeout,
	codes.PermissionDenied:   KindPermissionDenied,
	codes.Unauthenticated:    KindPermissionDenied,
	codes.Unimplemented:      KindNotImplemented,
	codes.Unavailable:        KindUnavailable,
}

// kindToCode is the reverse mapping, used by ToGRPC. Kinds that share a
// gRPC code in the forward table (e.g. not-found <- NotFound|OutOfRange)
// pick the most common code on the way back.
var kindToCode = map[Kind]codes.Code{
	KindInvalidArgument:  codes.InvalidArgument,
	KindNotFound:         codes.NotFound,
	KindRuntime:          codes.Internal,
	KindTimeout:          codes.DeadlineExceeded,
	KindPermissionDenied: codes.PermissionDenied,
	KindNotImplemented:   codes.Unimplemented,
	KindUnavailable:      codes.Unavailable,
}

// Error is the concrete error type returned by every core operation that
// fails, whether the failure originated locally or at the far end of an RPC.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the underlying transport error, if any, for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// GRPCStatus lets *Error satisfy status.FromError's optional interface so
// that a client-originated *Error can itself be sent back over the wire
// (relevant when the client is embedded in a larger service).
func (e *Error) GRPCStatus() *status.Status {
	code, ok := kindToCode[e.Kind]
	if !ok {
		code = codes.Unknown
	}
	return status.New(code, e.Message)
}

// New constructs a local-only *Error (no transport cause), for errors
// raised directly by this library rather than translated from a transport
// failure.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf is New with fmt.Sprintf-style formatting.
func Newf(kind Kind, format string, args ...any) *Error {
	return New(kind, fmt.Sprintf(format, args...))
}

// Wrap builds an *Error around an underlying cause.
func Wrap(cause error, kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// Is reports whether err is an *Error with the given Kind.
func Is(err error, kind Kind) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// KindOf extracts the Kind from err, defaulting to KindRuntime for errors
// that are not *Error.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindRuntime
}

// FromGRPCStatus maps a raw gRPC status code to the stable Kind. Unknown
// codes fall back to KindRuntime.
func FromGRPCStatus(code codes.Code) Kind {
	if kind, ok := codeToKind[code]; ok {
		return kind
	}
	return KindRuntime
}

// ToGRPC converts any error into a gRPC error, preserving an existing gRPC
// status untouched and mapping *Error via its Kind. Used when the client's
// own errors need to cross back over a boundary (e.g. a wrapping service).
func ToGRPC(err error) error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.GRPCStatus().Err()
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	return status.Error(codes.Internal, err.Error())
}
