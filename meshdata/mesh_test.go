package meshdata_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ansys/acp-client-go/meshdata"
	"github.com/ansys/acp-client-go/pkg/apperror"
	"github.com/ansys/acp-client-go/resourcepath"
	"github.com/ansys/acp-client-go/treeobject"
)

type fakeObject struct {
	stored bool
	path   resourcepath.Path
	server *treeobject.ServerWrapper
}

func (f fakeObject) IsStored() bool                 { return f.stored }
func (f fakeObject) ResourcePath() resourcepath.Path { return f.path }
func (f fakeObject) Server() (*treeobject.ServerWrapper, error) {
	if !f.stored {
		return nil, apperror.New(apperror.KindRuntime, "not stored")
	}
	return f.server, nil
}

func storedObject() fakeObject {
	return fakeObject{
		stored: true,
		path:   resourcepath.FromParts("models", "m1", "modeling_groups", "g1"),
		server: &treeobject.ServerWrapper{},
	}
}

func TestMeshElementNodesOf(t *testing.T) {
	mesh := meshdata.Mesh{
		ElementLabels:       []int32{1, 2},
		ElementNodes:        []int32{10, 11, 12, 13},
		ElementNodesOffsets: []int32{0, 3},
	}
	assert.Equal(t, []int32{10, 11, 12}, mesh.ElementNodesOf(0))
	assert.Equal(t, []int32{13}, mesh.ElementNodesOf(1))
}

func TestFetchRejectsUnstoredObject(t *testing.T) {
	_, err := meshdata.Fetch(context.Background(), fakeObject{}, meshdata.ElementScopingAll,
		func(ctx context.Context, server *treeobject.ServerWrapper, path resourcepath.Path, scoping meshdata.ElementScoping) (meshdata.Mesh, error) {
			t.Fatal("provider should not be called for an unstored object")
			return meshdata.Mesh{}, nil
		})
	require.Error(t, err)
}

func TestFetchRejectsNilProvider(t *testing.T) {
	_, err := meshdata.Fetch(context.Background(), storedObject(), meshdata.ElementScopingAll, nil)
	require.Error(t, err)
}

func TestFetchCallsProviderWithResolvedPath(t *testing.T) {
	obj := storedObject()
	want := meshdata.Mesh{NodeLabels: []int32{1, 2, 3}}

	got, err := meshdata.Fetch(context.Background(), obj, meshdata.ElementScopingShell,
		func(ctx context.Context, server *treeobject.ServerWrapper, path resourcepath.Path, scoping meshdata.ElementScoping) (meshdata.Mesh, error) {
			assert.Equal(t, obj.path, path)
			assert.Equal(t, meshdata.ElementScopingShell, scoping)
			return want, nil
		})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
