package model

import (
	"context"

	"github.com/ansys/acp-client-go/meshdata"
)

// ModelElementalDataFields lists every field name a Model's elemental data
// query recognizes, grounded on model.py's ModelElementalData dataclass.
var ModelElementalDataFields = []string{
	"normal", "thickness", "relative_thickness_correction", "area",
	"price", "volume", "mass", "offset",
}

// Mesh returns the full mesh associated with this model, via provider.
// This library bundles no generated mesh-query client, so the caller
// supplies the actual RPC (see meshdata.Provider).
func (m *Model) Mesh(ctx context.Context, scoping meshdata.ElementScoping, provider meshdata.Provider) (meshdata.Mesh, error) {
	return meshdata.Fetch(ctx, m.base, scoping, provider)
}

// ElementalData queries the server for ModelElementalDataFields, via
// provider. The model has no elemental data fields of its own beyond the
// ones the source declares; callers that need a subset should filter the
// returned Record themselves rather than narrowing the request, to match
// the fixed field list model.py declares.
func (m *Model) ElementalData(ctx context.Context, provider meshdata.DataProvider) (meshdata.Record, error) {
	return meshdata.FetchData(ctx, m.base, meshdata.ScopeElemental, ModelElementalDataFields, provider)
}

// NodalData queries the server for the model's nodal data. model.py
// declares no fields of its own for ModelNodalData (the dataclass carries
// only the inherited node_labels), so this issues the request with an empty
// field list, equivalent to asking only for which nodes exist.
func (m *Model) NodalData(ctx context.Context, provider meshdata.DataProvider) (meshdata.Record, error) {
	return meshdata.FetchData(ctx, m.base, meshdata.ScopeNodal, nil, provider)
}
