package apperror_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ansys/acp-client-go/pkg/apperror"
)

func TestErrorMessage(t *testing.T) {
	err := apperror.New(apperror.KindInvalidArgument, "bad value")
	assert.Equal(t, "bad value", err.Error())
}

func TestWrapUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := apperror.Wrap(cause, apperror.KindRuntime, "wrapped")
	assert.Equal(t, cause, err.Unwrap())
	assert.True(t, errors.Is(err, cause))
}

func TestIsAndKindOf(t *testing.T) {
	err := apperror.New(apperror.KindNotFound, "missing")
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
	assert.False(t, apperror.Is(err, apperror.KindRuntime))
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	assert.Equal(t, apperror.KindRuntime, apperror.KindOf(errors.New("plain")))
}

func TestFromGRPCStatusMapping(t *testing.T) {
	cases := []struct {
		code codes.Code
		kind apperror.Kind
	}{
		{codes.InvalidArgument, apperror.KindInvalidArgument},
		{codes.NotFound, apperror.KindNotFound},
		{codes.OutOfRange, apperror.KindNotFound},
		{codes.AlreadyExists, apperror.KindRuntime},
		{codes.FailedPrecondition, apperror.KindRuntime},
		{codes.Aborted, apperror.KindRuntime},
		{codes.DataLoss, apperror.KindRuntime},
		{codes.Internal, apperror.KindRuntime},
		{codes.Unknown, apperror.KindRuntime},
		{codes.DeadlineExceeded, apperror.KindTimeout},
		{codes.PermissionDenied, apperror.KindPermissionDenied},
		{codes.Unauthenticated, apperror.KindPermissionDenied},
		{codes.Unimplemented, apperror.KindNotImplemented},
		{codes.Unavailable, apperror.KindUnavailable},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.kind, apperror.FromGRPCStatus(tc.code), "code %v", tc.code)
	}
}

func TestToGRPCRoundTrip(t *testing.T) {
	assert.Nil(t, apperror.ToGRPC(nil))

	err := apperror.New(apperror.KindNotFound, "gone")
	grpcErr := apperror.ToGRPC(err)
	st, ok := status.FromError(grpcErr)
	assert.True(t, ok)
	assert.Equal(t, codes.NotFound, st.Code())

	already := status.Error(codes.Aborted, "conflict")
	assert.Equal(t, already, apperror.ToGRPC(already))

	plain := errors.New("oops")
	st2, _ := status.FromError(apperror.ToGRPC(plain))
	assert.Equal(t, codes.Internal, st2.Code())
}

func TestGRPCStatus(t *testing.T) {
	err := apperror.New(apperror.KindUnavailable, "down")
	assert.Equal(t, codes.Unavailable, err.GRPCStatus().Code())
}
