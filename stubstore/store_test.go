package stubstore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ansys/acp-client-go/pkg/apperror"
	"github.com/ansys/acp-client-go/stubstore"
)

type fakeStub struct{ id int }

func TestGetCreatesOnce(t *testing.T) {
	calls := 0
	store := stubstore.New(func() *fakeStub {
		calls++
		return &fakeStub{id: calls}
	})

	s1, err := store.Get(true)
	require.NoError(t, err)
	s2, err := store.Get(true)
	require.NoError(t, err)

	assert.Same(t, s1, s2)
	assert.Equal(t, 1, calls)
}

func TestGetOnUnstoredErrors(t *testing.T) {
	store := stubstore.New(func() *fakeStub { return &fakeStub{} })
	_, err := store.Get(false)
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindRuntime))
}
