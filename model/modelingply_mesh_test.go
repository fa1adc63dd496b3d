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

func storedModelingPly() *ModelingPly {
	return &ModelingPly{base: treeobject.NewStored(treeobject.ObjectInfo[*ModelingPlyProperties]{
		Info: treeobject.Info{ResourcePath: resourcepath.FromParts(
			ModelCollectionLabel, "m1", ModelingPlyCollectionLabel, "p1")},
		Properties: &ModelingPlyProperties{},
	}, &treeobject.ServerWrapper{})}
}

func TestModelingPlyElementalDataRequestsDeclaredFields(t *testing.T) {
	p := storedModelingPly()

	_, err := p.ElementalData(context.Background(),
		func(ctx context.Context, server *treeobject.ServerWrapper, path resourcepath.Path, scope meshdata.DataScope, fieldNames []string) ([]int32, []meshdata.RawField, error) {
			assert.Equal(t, meshdata.ScopeElemental, scope)
			assert.ElementsMatch(t, ModelingPlyElementalDataFields, fieldNames)
			return []int32{1}, nil, nil
		})
	require.NoError(t, err)
}

func TestModelingPlyNodalDataRequestsPlyOffset(t *testing.T) {
	p := storedModelingPly()

	record, err := p.NodalData(context.Background(),
		func(ctx context.Context, server *treeobject.ServerWrapper, path resourcepath.Path, scope meshdata.DataScope, fieldNames []string) ([]int32, []meshdata.RawField, error) {
			assert.Equal(t, meshdata.ScopeNodal, scope)
			assert.Equal(t, ModelingPlyNodalDataFields, fieldNames)
			return []int32{1, 2}, []meshdata.RawField{{Name: "ply_offset", Values: []float64{0.1, 0.2}}}, nil
		})
	require.NoError(t, err)
	c, ok := record.Field("ply_offset")
	require.True(t, ok)
	assert.Equal(t, []float64{0.1, 0.2}, c.Scalars)
}
