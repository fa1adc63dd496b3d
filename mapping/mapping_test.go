package mapping_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ansys/acp-client-go/mapping"
	"github.com/ansys/acp-client-go/pkg/apperror"
	"github.com/ansys/acp-client-go/resourcepath"
)

type entry struct {
	path resourcepath.Path
}

func (e *entry) ResourcePath() resourcepath.Path { return e.path }

func newTestMapping(t *testing.T, ids []string) (*mapping.Mapping[*entry], *[]string) {
	t.Helper()
	live := append([]string(nil), ids...)
	list := func(ctx context.Context) ([]*entry, error) {
		out := make([]*entry, len(live))
		for i, id := range live {
			out[i] = &entry{path: resourcepath.FromParts("models", "m1", "rosettes", id)}
		}
		return out, nil
	}
	del := func(ctx context.Context, key string) error {
		for i, id := range live {
			if id == key {
				live = append(live[:i], live[i+1:]...)
				return nil
			}
		}
		return apperror.New(apperror.KindNotFound, "not found")
	}
	return mapping.New(list, del), &live
}

func TestLenKeysValues(t *testing.T) {
	m, _ := newTestMapping(t, []string{"r1", "r2"})
	n, err := m.Len(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	keys, err := m.Keys(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"r1", "r2"}, keys)
}

func TestGetAndContains(t *testing.T) {
	m, _ := newTestMapping(t, []string{"r1"})
	v, ok, err := m.Get(context.Background(), "r1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "r1", v.ResourcePath().UID())

	ok, err = m.Contains(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDeleteMissingErrors(t *testing.T) {
	m, _ := newTestMapping(t, []string{"r1"})
	err := m.Delete(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}

func TestPopAndClear(t *testing.T) {
	m, _ := newTestMapping(t, []string{"r1", "r2"})
	v, err := m.Pop(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, "r1", v.ResourcePath().UID())

	n, err := m.Len(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.NoError(t, m.Clear(context.Background()))
	n, err = m.Len(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestPopItemOnEmptyErrors(t *testing.T) {
	m, _ := newTestMapping(t, nil)
	_, err := m.PopItem(context.Background())
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}

func TestDuplicateIDsRaiseRuntimeError(t *testing.T) {
	list := func(ctx context.Context) ([]*entry, error) {
		return []*entry{
			{path: resourcepath.FromParts("models", "m1", "rosettes", "r1")},
			{path: resourcepath.FromParts("models", "m1", "rosettes", "r1")},
		}, nil
	}
	m := mapping.New(list, func(ctx context.Context, key string) error { return nil })
	_, err := m.Len(context.Background())
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindRuntime))
}
