package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ansys/acp-client-go/pkg/apperror"
	"github.com/ansys/acp-client-go/registry"
	"github.com/ansys/acp-client-go/resourcepath"
	"github.com/ansys/acp-client-go/treeobject"
)

type widget struct{ path resourcepath.Path }

func TestRegisterAndResolve(t *testing.T) {
	registry.Register("registry_test_widgets", func(path resourcepath.Path, server *treeobject.ServerWrapper) (any, error) {
		return &widget{path: path}, nil
	})
	assert.True(t, registry.Registered("registry_test_widgets"))

	path := resourcepath.FromParts("models", "m1", "registry_test_widgets", "w1")
	obj, err := registry.Resolve(path, nil)
	require.NoError(t, err)
	w, ok := obj.(*widget)
	require.True(t, ok)
	assert.Equal(t, path, w.path)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	registry.Register("registry_test_dup", func(path resourcepath.Path, server *treeobject.ServerWrapper) (any, error) {
		return &widget{}, nil
	})
	assert.Panics(t, func() {
		registry.Register("registry_test_dup", func(path resourcepath.Path, server *treeobject.ServerWrapper) (any, error) {
			return &widget{}, nil
		})
	})
}

func TestResolveUnknownLabelErrors(t *testing.T) {
	_, err := registry.Resolve(resourcepath.FromParts("models", "m1", "no_such_collection", "x"), nil)
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindRuntime))
}

type widgetLike interface{ Widget() }

func (w *widget) Widget() {}

func TestResolveAsTypeMismatchErrors(t *testing.T) {
	registry.Register("registry_test_other", func(path resourcepath.Path, server *treeobject.ServerWrapper) (any, error) {
		return &struct{}{}, nil
	})
	_, err := registry.ResolveAs[widgetLike](resourcepath.FromParts("models", "m1", "registry_test_other", "x"), nil)
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindRuntime))
}

func TestResolveAsSuccess(t *testing.T) {
	path := resourcepath.FromParts("models", "m1", "registry_test_widgets", "w2")
	w, err := registry.ResolveAs[widgetLike](path, nil)
	require.NoError(t, err)
	assert.NotNil(t, w)
}
