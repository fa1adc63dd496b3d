package meshdata

import "github.com/ansys/acp-client-go/pkg/apperror"

func fieldNotFoundError(fieldName string) error {
	return apperror.Newf(apperror.KindInvalidArgument, "meshdata: field %q was not requested in this record", fieldName)
}

// Visualizer is the documented extension point for rendering a Mesh and its
// associated elemental/nodal data: visualization conversion is delegated to
// an optional collaborator and is not part of the core contract. This
// package never implements one; there is no bundled visualization library,
// so every caller that wants a rendered mesh supplies its own Visualizer
// wrapping whatever plotting library it already depends on.
type Visualizer interface {
	// Visualize expands record's labeled field values onto mesh by label
	// lookup and renders the result. culling, when greater than 1, asks the
	// visualizer to render only every nth data point (useful for dense
	// vector fields); a culling of 0 or 1 means render every point.
	Visualize(mesh Mesh, record Record, fieldName string, culling int) (any, error)
}

// Visualize delegates to v, after checking that fieldName was actually
// requested in record. Most callers invoke their Visualizer directly; this
// helper centralizes the one invariant checkable without depending on a
// rendering library: the field must exist.
func Visualize(v Visualizer, mesh Mesh, record Record, fieldName string, culling int) (any, error) {
	if _, ok := record.Field(fieldName); !ok {
		return nil, fieldNotFoundError(fieldName)
	}
	return v.Visualize(mesh, record, fieldName, culling)
}
