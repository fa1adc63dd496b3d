package meshdata_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ansys/acp-client-go/meshdata"
	"github.com/ansys/acp-client-go/resourcepath"
	"github.com/ansys/acp-client-go/treeobject"
)

func TestFetchDataClassifiesScalarAndVectorFields(t *testing.T) {
	obj := storedObject()

	record, err := meshdata.FetchData(context.Background(), obj, meshdata.ScopeElemental,
		[]string{"thickness", "normal"},
		func(ctx context.Context, server *treeobject.ServerWrapper, path resourcepath.Path, scope meshdata.DataScope, fieldNames []string) ([]int32, []meshdata.RawField, error) {
			assert.Equal(t, meshdata.ScopeElemental, scope)
			assert.ElementsMatch(t, []string{"thickness", "normal"}, fieldNames)
			labels := []int32{1, 2}
			raw := []meshdata.RawField{
				{Name: "thickness", Values: []float64{0.1, 0.2}},
				{Name: "normal", Values: []float64{0, 0, 1, 0, 0, 1}},
			}
			return labels, raw, nil
		})
	require.NoError(t, err)

	thickness, ok := record.Field("thickness")
	require.True(t, ok)
	assert.False(t, thickness.IsVector())
	assert.Equal(t, []float64{0.1, 0.2}, thickness.Scalars)

	normal, ok := record.Field("normal")
	require.True(t, ok)
	assert.True(t, normal.IsVector())
	assert.Equal(t, [][3]float64{{0, 0, 1}, {0, 0, 1}}, normal.Vectors)
}

func TestFetchDataRejectsMismatchedFieldLength(t *testing.T) {
	obj := storedObject()

	_, err := meshdata.FetchData(context.Background(), obj, meshdata.ScopeNodal,
		[]string{"ply_offset"},
		func(ctx context.Context, server *treeobject.ServerWrapper, path resourcepath.Path, scope meshdata.DataScope, fieldNames []string) ([]int32, []meshdata.RawField, error) {
			return []int32{1, 2, 3}, []meshdata.RawField{{Name: "ply_offset", Values: []float64{1, 2}}}, nil
		})
	require.Error(t, err)
}

func TestFetchDataRejectsUnstoredObject(t *testing.T) {
	_, err := meshdata.FetchData(context.Background(), fakeObject{}, meshdata.ScopeElemental, nil, nil)
	require.Error(t, err)
}

func TestFetchDataRejectsNilProvider(t *testing.T) {
	_, err := meshdata.FetchData(context.Background(), storedObject(), meshdata.ScopeElemental, []string{"thickness"}, nil)
	require.Error(t, err)
}
