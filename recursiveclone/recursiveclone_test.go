package recursiveclone_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ansys/acp-client-go/recursiveclone"
	"github.com/ansys/acp-client-go/resourcepath"
)

type fakeNode struct {
	id         string
	path       resourcepath.Path
	parentPath resourcepath.Path
	children   []recursiveclone.Node
	links      []*fakeLink
	stored     bool
	storedUnder recursiveclone.Node
}

type fakeLink struct {
	target recursiveclone.Node
}

func newFakeNode(id string, path, parentPath resourcepath.Path) *fakeNode {
	return &fakeNode{id: id, path: path, parentPath: parentPath}
}

func (n *fakeNode) ResourcePath() resourcepath.Path { return n.path }
func (n *fakeNode) ParentPath() resourcepath.Path    { return n.parentPath }

func (n *fakeNode) Clone() recursiveclone.Node {
	links := make([]*fakeLink, len(n.links))
	for i, l := range n.links {
		copied := *l
		links[i] = &copied
	}
	return &fakeNode{id: n.id + "-clone", links: links}
}

func (n *fakeNode) ChildObjects() []recursiveclone.Node { return n.children }

func (n *fakeNode) DirectLinks() []recursiveclone.DirectLink {
	out := make([]recursiveclone.DirectLink, len(n.links))
	for i, l := range n.links {
		link := l
		out[i] = recursiveclone.DirectLink{
			Target: link.target,
			Set: func(ctx context.Context, newTarget recursiveclone.Node) error {
				link.target = newTarget
				return nil
			},
		}
	}
	return out
}

func (n *fakeNode) LinkedObjectLists() []recursiveclone.LinkedObjectList { return nil }
func (n *fakeNode) EdgePropertyLists() []recursiveclone.EdgePropertyList { return nil }

func (n *fakeNode) Store(ctx context.Context, parent recursiveclone.Node) error {
	n.stored = true
	n.storedUnder = parent
	return nil
}

func TestCopyClonesAndRewiresLinks(t *testing.T) {
	modelPath := resourcepath.FromParts("models", "m1")
	newModelPath := resourcepath.FromParts("models", "m2")

	material := newFakeNode("mat1", resourcepath.FromParts("models", "m1", "materials", "mat1"), modelPath)
	rosette := newFakeNode("r1", resourcepath.FromParts("models", "m1", "rosettes", "r1"), modelPath)
	rosette.links = []*fakeLink{{target: material}}

	newModel := newFakeNode("m2", newModelPath, resourcepath.Empty)

	created, err := recursiveclone.Copy(
		context.Background(),
		[]recursiveclone.Node{material, rosette},
		[]recursiveclone.ParentMapping{{Original: newFakeNode("m1", modelPath, resourcepath.Empty), New: newModel}},
	)
	require.NoError(t, err)
	require.Len(t, created, 2)

	var clonedRosette *fakeNode
	for _, c := range created {
		if fn, ok := c.(*fakeNode); ok && fn.id == "r1-clone" {
			clonedRosette = fn
		}
	}
	require.NotNil(t, clonedRosette)
	assert.True(t, clonedRosette.stored)
	assert.Same(t, newModel, clonedRosette.storedUnder)

	newLinks := clonedRosette.DirectLinks()
	require.Len(t, newLinks, 1)
	clonedMaterial, ok := newLinks[0].Target.(*fakeNode)
	require.True(t, ok)
	assert.Equal(t, "mat1-clone", clonedMaterial.id)
}

func TestCopyMissingReplacementErrors(t *testing.T) {
	modelPath := resourcepath.FromParts("models", "m1")
	orphan := newFakeNode("orphan", resourcepath.FromParts("models", "m1", "rosettes", "r9"), modelPath)

	_, err := recursiveclone.Copy(context.Background(), []recursiveclone.Node{orphan}, nil)
	require.Error(t, err)
}
