package model

import (
	"context"

	"github.com/ansys/acp-client-go/meshdata"
)

// ModelingPlyElementalDataFields lists every field name a modeling ply's
// elemental data query recognizes, grounded on modeling_ply.py's
// ModelingPlyElementalData dataclass.
var ModelingPlyElementalDataFields = []string{
	"normal", "orientation", "reference_direction", "fiber_direction",
	"draped_fiber_direction", "transverse_direction",
	"draped_transverse_direction", "thickness",
}

// ModelingPlyNodalDataFields lists the nodal data fields modeling_ply.py
// declares: just the per-node ply offset.
var ModelingPlyNodalDataFields = []string{"ply_offset"}

// ElementalData queries the server for ModelingPlyElementalDataFields, via
// provider. This library bundles no generated mesh-query client, so the
// caller supplies the actual RPC (see meshdata.DataProvider).
func (p *ModelingPly) ElementalData(ctx context.Context, provider meshdata.DataProvider) (meshdata.Record, error) {
	return meshdata.FetchData(ctx, p.base, meshdata.ScopeElemental, ModelingPlyElementalDataFields, provider)
}

// NodalData queries the server for ModelingPlyNodalDataFields, via
// provider.
func (p *ModelingPly) NodalData(ctx context.Context, provider meshdata.DataProvider) (meshdata.Record, error) {
	return meshdata.FetchData(ctx, p.base, meshdata.ScopeNodal, ModelingPlyNodalDataFields, provider)
}
