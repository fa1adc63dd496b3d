package orderedlist_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ansys/acp-client-go/orderedlist"
	"github.com/ansys/acp-client-go/pkg/apperror"
)

func newIntList(t *testing.T, initial []string) *orderedlist.List[string, string] {
	t.Helper()
	store := append([]string(nil), initial...)
	get := func(ctx context.Context) ([]string, error) {
		return append([]string(nil), store...), nil
	}
	set := func(ctx context.Context, values []string) error {
		store = append([]string(nil), values...)
		return nil
	}
	identity := func(v string) (string, error) { return v, nil }
	equal := func(a, b string) bool { return a == b }
	return orderedlist.New(get, set, identity, identity, equal)
}

func TestAppendExtendAll(t *testing.T) {
	l := newIntList(t, nil)
	require.NoError(t, l.Append(context.Background(), "a"))
	require.NoError(t, l.Extend(context.Background(), []string{"b", "c"}))
	all, err := l.All(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, all)
}

func TestAtNegativeIndex(t *testing.T) {
	l := newIntList(t, []string{"a", "b", "c"})
	v, err := l.At(context.Background(), -1)
	require.NoError(t, err)
	assert.Equal(t, "c", v)
}

func TestAtOutOfRange(t *testing.T) {
	l := newIntList(t, []string{"a"})
	_, err := l.At(context.Background(), 5)
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindInvalidArgument))
}

func TestInsertAndRemoveAt(t *testing.T) {
	l := newIntList(t, []string{"a", "c"})
	require.NoError(t, l.Insert(context.Background(), 1, "b"))
	all, err := l.All(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, all)

	require.NoError(t, l.RemoveAt(context.Background(), 1))
	all, err = l.All(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, all)
}

func TestPopDefaultsToLast(t *testing.T) {
	l := newIntList(t, []string{"a", "b", "c"})
	v, err := l.Pop(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "c", v)
	n, err := l.Len(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestRemoveByValue(t *testing.T) {
	l := newIntList(t, []string{"a", "b", "c"})
	require.NoError(t, l.Remove(context.Background(), "b"))
	all, err := l.All(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, all)
}

func TestRemoveMissingErrors(t *testing.T) {
	l := newIntList(t, []string{"a"})
	err := l.Remove(context.Background(), "z")
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}

func TestReverse(t *testing.T) {
	l := newIntList(t, []string{"a", "b", "c"})
	require.NoError(t, l.Reverse(context.Background()))
	all, err := l.All(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "a"}, all)
}

func TestSortByDescending(t *testing.T) {
	l := newIntList(t, []string{"b", "a", "c"})
	require.NoError(t, l.SortBy(context.Background(), func(v string) string { return v }, true))
	all, err := l.All(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "a"}, all)
}

func TestContainsCountIndexOf(t *testing.T) {
	l := newIntList(t, []string{"a", "b", "a"})
	ok, err := l.Contains(context.Background(), "a")
	require.NoError(t, err)
	assert.True(t, ok)

	n, err := l.Count(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	idx, err := l.IndexOf(context.Background(), "b")
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	ok, err = l.Contains(context.Background(), "z")
	require.NoError(t, err)
	assert.False(t, ok)
}
