package acpinstance_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ansys/acp-client-go/acpinstance"
	"github.com/ansys/acp-client-go/pkg/apperror"
)

func TestDialRequiresAddress(t *testing.T) {
	_, err := acpinstance.Dial(context.Background(), acpinstance.DialConfig{})
	require.Error(t, err)

	var appErr *apperror.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.KindInvalidArgument, appErr.Kind)
}

func TestDialSucceedsWithoutBlockingByDefault(t *testing.T) {
	conn, err := acpinstance.Dial(context.Background(), acpinstance.DialConfig{
		Address: "127.0.0.1:1",
	})
	require.NoError(t, err)
	defer conn.Close()
}

func TestDialTimesOutWhenServerUnreachable(t *testing.T) {
	_, err := acpinstance.Dial(context.Background(), acpinstance.DialConfig{
		Address:     "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
	})
	require.Error(t, err)

	var appErr *apperror.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.KindUnavailable, appErr.Kind)
}

func TestDialWithRetryConfigStillConstructsChannel(t *testing.T) {
	conn, err := acpinstance.Dial(context.Background(), acpinstance.DialConfig{
		Address:      "127.0.0.1:1",
		MaxRetries:   3,
		RetryBackoff: 10 * time.Millisecond,
	})
	require.NoError(t, err)
	defer conn.Close()
}
