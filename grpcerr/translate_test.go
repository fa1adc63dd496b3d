package grpcerr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ansys/acp-client-go/grpcerr"
	"github.com/ansys/acp-client-go/pkg/apperror"
)

func TestTranslateNil(t *testing.T) {
	assert.Nil(t, grpcerr.Translate(nil))
}

func TestTranslateMessageShape(t *testing.T) {
	src := status.Error(codes.NotFound, "material 'mat1' does not exist\nextra diagnostic text")
	err := grpcerr.Translate(src)

	var appErr *apperror.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.KindNotFound, appErr.Kind)
	assert.Equal(t, "material 'mat1' does not exist (RPC status code NOT_FOUND)", appErr.Message)
	assert.Equal(t, src, appErr.Unwrap())
}

func TestTranslateEachCode(t *testing.T) {
	cases := map[codes.Code]string{
		codes.InvalidArgument:    "INVALID_ARGUMENT",
		codes.NotFound:           "NOT_FOUND",
		codes.OutOfRange:         "OUT_OF_RANGE",
		codes.AlreadyExists:      "ALREADY_EXISTS",
		codes.FailedPrecondition: "FAILED_PRECONDITION",
		codes.Aborted:            "ABORTED",
		codes.DataLoss:           "DATA_LOSS",
		codes.Internal:           "INTERNAL",
		codes.Unknown:            "UNKNOWN",
		codes.DeadlineExceeded:   "DEADLINE_EXCEEDED",
		codes.PermissionDenied:   "PERMISSION_DENIED",
		codes.Unauthenticated:    "UNAUTHENTICATED",
		codes.Unimplemented:      "UNIMPLEMENTED",
		codes.Unavailable:        "UNAVAILABLE",
	}
	for code, name := range cases {
		err := grpcerr.Translate(status.Error(code, "detail"))
		var appErr *apperror.Error
		require.True(t, errors.As(err, &appErr), "code %v", code)
		assert.Contains(t, appErr.Message, "(RPC status code "+name+")", "code %v", code)
	}
}

func TestTranslateNonGRPCError(t *testing.T) {
	err := grpcerr.Translate(errors.New("local failure"))
	var appErr *apperror.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.KindRuntime, appErr.Kind)
	assert.Equal(t, "local failure", appErr.Message)
}

func TestCallWrapsFunctionError(t *testing.T) {
	err := grpcerr.Call(func() error {
		return status.Error(codes.Unavailable, "server down")
	})
	assert.True(t, apperror.Is(err, apperror.KindUnavailable))

	assert.NoError(t, grpcerr.Call(func() error { return nil }))
}
