package meshdata

import (
	"context"

	"github.com/ansys/acp-client-go/pkg/apperror"
	"github.com/ansys/acp-client-go/resourcepath"
	"github.com/ansys/acp-client-go/treeobject"
)

// DataScope distinguishes an elemental data query (one value per element)
// from a nodal one (one value per node).
type DataScope int

const (
	ScopeElemental DataScope = iota
	ScopeNodal
)

// Container holds one requested field's values, expanded to either a scalar
// or a 3-component vector per label depending on the array width the server
// returned. The adapter never hardcodes which shape a field has; the second
// dimension of the returned array decides.
type Container struct {
	Scalars []float64
	Vectors [][3]float64
}

// IsVector reports whether this field arrived as 3-component rows.
func (c Container) IsVector() bool {
	return c.Vectors != nil
}

// RawField is one field's raw payload as returned over the wire: a flat
// array of float64 whose length is either len(labels) (scalar) or
// 3*len(labels) (vector).
type RawField struct {
	Name   string
	Values []float64
}

// toContainer classifies and reshapes a raw field against labelCount.
func toContainer(labelCount int, raw RawField) (Container, error) {
	switch {
	case labelCount == 0 && len(raw.Values) == 0:
		return Container{Scalars: []float64{}}, nil
	case len(raw.Values) == labelCount:
		return Container{Scalars: raw.Values}, nil
	case len(raw.Values) == labelCount*3:
		vectors := make([][3]float64, labelCount)
		for i := range vectors {
			copy(vectors[i][:], raw.Values[i*3:i*3+3])
		}
		return Container{Vectors: vectors}, nil
	default:
		return Container{}, apperror.Newf(apperror.KindRuntime,
			"meshdata: field %q has %d values, expected %d (scalar) or %d (vector)",
			raw.Name, len(raw.Values), labelCount, labelCount*3)
	}
}

// Record is the generic, declarative-schema result of an elemental or nodal
// data query: labels plus a name-keyed set of Containers, one per field the
// caller requested. Entity packages return Record as-is from their
// ElementalData/NodalData methods (see Model.ElementalData), each passing its
// declared field-name list. Record never needs reflection over a tagged
// struct: the field list is just the slice of names the caller asked for.
type Record struct {
	Scope  DataScope
	Labels []int32
	Fields map[string]Container
}

// Field returns the named container and whether it was present in the
// response.
func (r Record) Field(name string) (Container, bool) {
	c, ok := r.Fields[name]
	return c, ok
}

// DataProvider performs the actual GetElementalData/GetNodalData RPC for
// path, requesting exactly fieldNames. Supplied by the caller; see Provider.
type DataProvider func(ctx context.Context, server *treeobject.ServerWrapper, path resourcepath.Path, scope DataScope, fieldNames []string) (labels []int32, raw []RawField, err error)

// FetchData runs provider for obj and builds a Record from its raw reply,
// reshaping every requested field via toContainer.
func FetchData(ctx context.Context, obj StoredObject, scope DataScope, fieldNames []string, provider DataProvider) (Record, error) {
	if !obj.IsStored() {
		return Record{}, apperror.New(apperror.KindRuntime, "cannot get mesh data from an unstored object")
	}
	server, err := obj.Server()
	if err != nil {
		return Record{}, err
	}
	if provider == nil {
		return Record{}, apperror.New(apperror.KindNotImplemented, "meshdata: no elemental/nodal data provider configured")
	}

	labels, raw, err := provider(ctx, server, obj.ResourcePath(), scope, fieldNames)
	if err != nil {
		return Record{}, err
	}

	fields := make(map[string]Container, len(raw))
	for _, f := range raw {
		container, err := toContainer(len(labels), f)
		if err != nil {
			return Record{}, err
		}
		fields[f.Name] = container
	}

	return Record{Scope: scope, Labels: labels, Fields: fields}, nil
}
