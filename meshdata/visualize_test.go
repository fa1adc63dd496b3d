package meshdata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ansys/acp-client-go/meshdata"
)

type fakeVisualizer struct {
	called    bool
	fieldName string
	culling   int
}

func (v *fakeVisualizer) Visualize(mesh meshdata.Mesh, record meshdata.Record, fieldName string, culling int) (any, error) {
	v.called = true
	v.fieldName = fieldName
	v.culling = culling
	return "rendered", nil
}

func TestVisualizeDelegatesToCollaborator(t *testing.T) {
	record := meshdata.Record{Fields: map[string]meshdata.Container{"thickness": {Scalars: []float64{1, 2}}}}
	v := &fakeVisualizer{}

	result, err := meshdata.Visualize(v, meshdata.Mesh{}, record, "thickness", 2)
	require.NoError(t, err)
	assert.Equal(t, "rendered", result)
	assert.True(t, v.called)
	assert.Equal(t, "thickness", v.fieldName)
	assert.Equal(t, 2, v.culling)
}

func TestVisualizeRejectsUnknownField(t *testing.T) {
	record := meshdata.Record{Fields: map[string]meshdata.Container{"thickness": {Scalars: []float64{1}}}}
	v := &fakeVisualizer{}

	_, err := meshdata.Visualize(v, meshdata.Mesh{}, record, "mass", 1)
	require.Error(t, err)
	assert.False(t, v.called)
}
