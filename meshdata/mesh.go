// Package meshdata implements the Mesh and Elemental/Nodal Data adapters:
// read-only conversions from the flat parallel arrays a mesh query RPC
// returns into typed numeric containers. Like every other RPC
// surface this library needs, there is no bundled generated client for the
// mesh query service, so the actual round trip is supplied by the caller
// through a Provider closure; this package owns only the array-to-container
// conversion and the scalar-vs-vector decision.
package meshdata

import (
	"context"

	"github.com/ansys/acp-client-go/pkg/apperror"
	"github.com/ansys/acp-client-go/resourcepath"
	"github.com/ansys/acp-client-go/treeobject"
)

// ElementScoping narrows a Mesh query to a subset of an object's elements.
type ElementScoping int

const (
	ElementScopingAll ElementScoping = iota
	ElementScopingShell
	ElementScopingSolid
)

// Mesh is the full mesh associated with a tree object: nodes, elements, and
// the flat connectivity arrays needed to reconstruct each element's node
// list (element_nodes sliced by element_nodes_offsets).
type Mesh struct {
	NodeLabels          []int32
	NodeCoordinates     [][3]float64
	ElementLabels       []int32
	ElementTypes        []int32
	ElementNodes        []int32
	ElementNodesOffsets []int32
}

// ElementNodesOf returns the node indices belonging to element i, sliced out
// of the flat ElementNodes array using ElementNodesOffsets. i is an index
// into ElementLabels, not a label value.
func (m Mesh) ElementNodesOf(i int) []int32 {
	start := m.ElementNodesOffsets[i]
	var end int32
	if i+1 < len(m.ElementNodesOffsets) {
		end = m.ElementNodesOffsets[i+1]
	} else {
		end = int32(len(m.ElementNodes))
	}
	return m.ElementNodes[start:end]
}

// Provider performs the actual GetMeshData RPC for path, scoped by scoping.
// Supplied by the caller, exactly like acpinstance.ServerVersionProvider:
// this library has no generated mesh-query client to call directly.
type Provider func(ctx context.Context, server *treeobject.ServerWrapper, path resourcepath.Path, scoping ElementScoping) (Mesh, error)

// Fetch runs provider against obj's server and resource path. Returns
// KindRuntime if obj is not stored, matching every other server-round-trip
// operation in the core.
func Fetch(ctx context.Context, obj StoredObject, scoping ElementScoping, provider Provider) (Mesh, error) {
	if !obj.IsStored() {
		return Mesh{}, apperror.New(apperror.KindRuntime, "cannot get mesh data from an unstored object")
	}
	server, err := obj.Server()
	if err != nil {
		return Mesh{}, err
	}
	if provider == nil {
		return Mesh{}, apperror.New(apperror.KindNotImplemented, "meshdata: no mesh query provider configured")
	}
	return provider(ctx, server, obj.ResourcePath(), scoping)
}

// StoredObject is the minimal surface Fetch needs from a tree object handle:
// every *treeobject.Base[P] satisfies it.
type StoredObject interface {
	IsStored() bool
	ResourcePath() resourcepath.Path
	Server() (*treeobject.ServerWrapper, error)
}
