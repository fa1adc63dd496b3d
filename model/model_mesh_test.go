package model

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ansys/acp-client-go/meshdata"
	"github.com/ansys/acp-client-go/resourcepath"
	"github.com/ansys/acp-client-go/treeobject"
)

func storedModel() *Model {
	return &Model{base: treeobject.NewStored(treeobject.ObjectInfo[*ModelProperties]{
		Info:       treeobject.Info{ResourcePath: resourcepath.FromParts(ModelCollectionLabel, "m1")},
		Properties: &ModelProperties{},
	}, &treeobject.ServerWrapper{})}
}

func TestModelMeshCallsProvider(t *testing.T) {
	m := storedModel()
	want := meshdata.Mesh{NodeLabels: []int32{1, 2}}

	got, err := m.Mesh(context.Background(), meshdata.ElementScopingAll,
		func(ctx context.Context, server *treeobject.ServerWrapper, path resourcepath.Path, scoping meshdata.ElementScoping) (meshdata.Mesh, error) {
			assert.Equal(t, m.base.ResourcePath(), path)
			return want, nil
		})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestModelElementalDataRequestsDeclaredFields(t *testing.T) {
	m := storedModel()

	record, err := m.ElementalData(context.Background(),
		func(ctx context.Context, server *treeobject.ServerWrapper, path resourcepath.Path, scope meshdata.DataScope, fieldNames []string) ([]int32, []meshdata.RawField, error) {
			assert.Equal(t, meshdata.ScopeElemental, scope)
			assert.ElementsMatch(t, ModelElementalDataFields, fieldNames)
			return []int32{1}, []meshdata.RawField{{Name: "thickness", Values: []float64{0.5}}}, nil
		})
	require.NoError(t, err)
	c, ok := record.Field("thickness")
	require.True(t, ok)
	assert.Equal(t, []float64{0.5}, c.Scalars)
}

func TestModelNodalDataRequestsNoFields(t *testing.T) {
	m := storedModel()

	_, err := m.NodalData(context.Background(),
		func(ctx context.Context, server *treeobject.ServerWrapper, path resourcepath.Path, scope meshdata.DataScope, fieldNames []string) ([]int32, []meshdata.RawField, error) {
			assert.Equal(t, meshdata.ScopeNodal, scope)
			assert.Empty(t, fieldNames)
			return []int32{1, 2}, nil, nil
		})
	require.NoError(t, err)
}

func TestModelMeshRejectsUnstored(t *testing.T) {
	m := NewModel("")
	_, err := m.Mesh(context.Background(), meshdata.ElementScopingAll, nil)
	require.Error(t, err)
}
