package resourcepath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ansys/acp-client-go/resourcepath"
)

func TestFromPartsJoinsWithSlash(t *testing.T) {
	p := resourcepath.FromParts("models", "m1", "materials", "mat1")
	assert.Equal(t, "models/m1/materials/mat1", p.String())
}

func TestFromPartsOddPartsPanics(t *testing.T) {
	assert.Panics(t, func() {
		resourcepath.FromParts("models", "m1", "materials")
	})
}

func TestParent(t *testing.T) {
	p := resourcepath.FromParts("models", "m1", "materials", "mat1")
	assert.Equal(t, "models/m1", p.Parent().String())
	assert.True(t, p.Parent().Parent().IsEmpty())
}

func TestCollectionLabelAndUID(t *testing.T) {
	p := resourcepath.FromParts("models", "m1", "materials", "mat1")
	assert.Equal(t, "materials", p.CollectionLabel())
	assert.Equal(t, "mat1", p.UID())
}

func TestEmptyPathIsUnset(t *testing.T) {
	assert.True(t, resourcepath.Empty.IsEmpty())
	assert.Equal(t, "", resourcepath.Empty.CollectionLabel())
	assert.True(t, resourcepath.Empty.Parent().IsEmpty())
}

func TestSharesModel(t *testing.T) {
	m1 := resourcepath.FromParts("models", "m1")
	mat1 := resourcepath.FromParts("models", "m1", "materials", "mat1")
	mat2 := resourcepath.FromParts("models", "m2", "materials", "mat2")

	assert.True(t, resourcepath.SharesModel(m1, mat1))
	assert.False(t, resourcepath.SharesModel(mat1, mat2))
	assert.False(t, resourcepath.SharesModel(m1, resourcepath.Empty))
}

func TestCommonPrefix(t *testing.T) {
	a := resourcepath.FromParts("models", "m1", "materials", "mat1")
	b := resourcepath.FromParts("models", "m1", "fabrics", "fab1")
	c := resourcepath.FromParts("models", "m1")

	require.Equal(t, "models/m1", resourcepath.CommonPrefix(a, b).String())
	assert.Equal(t, "models/m1", resourcepath.CommonPrefix(a, b, c).String())
	assert.True(t, resourcepath.CommonPrefix().IsEmpty())
	assert.True(t, resourcepath.CommonPrefix(resourcepath.Empty).IsEmpty())
}

func TestJoin(t *testing.T) {
	m1 := resourcepath.FromParts("models", "m1")
	full := m1.Join("materials", "mat1")
	assert.Equal(t, "models/m1/materials/mat1", full.String())
	assert.Equal(t, m1.String(), m1.Join().String())
}

func TestFromStringRoundTrip(t *testing.T) {
	p := resourcepath.FromString("models/m1/materials/mat1")
	assert.Equal(t, []string{"models", "m1", "materials", "mat1"}, p.Parts())
}
