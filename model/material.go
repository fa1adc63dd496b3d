package model

import (
	"context"

	"github.com/ansys/acp-client-go/recursiveclone"
	"github.com/ansys/acp-client-go/registry"
	"github.com/ansys/acp-client-go/resourcepath"
	"github.com/ansys/acp-client-go/stubstore"
	"github.com/ansys/acp-client-go/treeobject"
)

// MaterialCollectionLabel is the resource path collection segment under
// which every model's materials live.
const MaterialCollectionLabel = "materials"

// EngineeringConstants holds the orthotropic elastic constants of a
// material: three moduli, three shear moduli, and three
// Poisson's ratios. A purely isotropic material sets E1==E2==E3,
// G12==G23==G31, and nu12==nu23==nu31.
type EngineeringConstants struct {
	E1, E2, E3       float64
	G12, G23, G31    float64
	Nu12, Nu23, Nu31 float64
}

// MaterialProperties is the wire payload for a Material. Locked and Status
// are server-computed and read-only; PlyType, DensityRho, and
// EngineeringConstants are read-write.
type MaterialProperties struct {
	Locked bool
	Status Status

	PlyType    PlyType
	DensityRho float64

	EngineeringConstants EngineeringConstants
}

// Clone returns a deep copy. Every field is a value type, so a shallow
// struct copy already is one.
func (p *MaterialProperties) Clone() treeobject.Properties {
	clone := *p
	return &clone
}

// LinkedPaths is empty: a material links to nothing else.
func (p *MaterialProperties) LinkedPaths() []resourcepath.Path { return nil }

// ClearLinks is a no-op for the same reason.
func (p *MaterialProperties) ClearLinks() {}

// MaterialStub is the gRPC-facing surface a Material needs.
type MaterialStub = treeobject.FullStub[*MaterialProperties]

// Material is a ply material definition: density plus engineering constants,
// tagged with a role in the layup via PlyType (grounded on
// material.py).
type Material struct {
	base  *treeobject.Base[*MaterialProperties]
	stubs *stubstore.Store[MaterialStub]
}

// NewMaterial creates an unstored material. The density is initialized to
// zero, mirroring Model.create_material's default in the source library.
func NewMaterial(name string, plyType PlyType) *Material {
	if name == "" {
		name = "Material"
	}
	if plyType == "" {
		plyType = PlyTypeUndefined
	}
	return &Material{base: treeobject.NewUnstored(name, &MaterialProperties{PlyType: plyType})}
}

func init() {
	registry.Register(MaterialCollectionLabel, registry.CachedConstructor(MaterialCollectionLabel, func(path resourcepath.Path, server *treeobject.ServerWrapper) *Material {
		return &Material{base: treeobject.NewStored(treeobject.ObjectInfo[*MaterialProperties]{
			Info: treeobject.Info{ResourcePath: path},
		}, server)}
	}))
}

func (m *Material) stub() (MaterialStub, error) {
	server, err := m.base.Server()
	if err != nil {
		return nil, err
	}
	if m.stubs == nil {
		m.stubs = stubstore.New(func() MaterialStub { return newMaterialStub(server.Channel) })
	}
	return m.stubs.Get(m.base.IsStored())
}

// Name returns the material's display name as of the last Get or Put.
func (m *Material) Name() string { return m.base.Name() }

// ResourcePath returns the material's resource path, or resourcepath.Empty
// if unstored.
func (m *Material) ResourcePath() resourcepath.Path { return m.base.ResourcePath() }

// IsStored reports whether the material has server identity.
func (m *Material) IsStored() bool { return m.base.IsStored() }

// Locked reports whether the owning model currently has this material
// locked against edits.
func (m *Material) Locked(ctx context.Context) (bool, error) {
	stub, err := m.stub()
	if err != nil {
		return false, err
	}
	return treeobject.GetScalar(ctx, m.base, stub, "", "locked", func(p *MaterialProperties) bool { return p.Locked })
}

// Status returns the server-computed validity status.
func (m *Material) Status(ctx context.Context) (Status, error) {
	stub, err := m.stub()
	if err != nil {
		return "", err
	}
	return treeobject.GetScalar(ctx, m.base, stub, "", "status", func(p *MaterialProperties) Status { return p.Status })
}

// PlyType returns the material's role in a layup.
func (m *Material) PlyType(ctx context.Context) (PlyType, error) {
	stub, err := m.stub()
	if err != nil {
		return "", err
	}
	return treeobject.GetScalar(ctx, m.base, stub, "", "ply_type", func(p *MaterialProperties) PlyType { return p.PlyType })
}

// SetPlyType updates the material's role in a layup.
func (m *Material) SetPlyType(ctx context.Context, v PlyType) error {
	if err := ValidatePlyType(v); err != nil {
		return err
	}
	stub, err := m.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, m.base, stub, "", "ply_type",
		func(p *MaterialProperties) PlyType { return p.PlyType },
		func(p *MaterialProperties, v PlyType) { p.PlyType = v },
		func(a, b PlyType) bool { return a == b },
		v)
}

// Density returns a handle onto the material's density property set,
// mirroring the source library's nested DensityPropertySet attribute.
func (m *Material) Density() *MaterialDensity { return &MaterialDensity{material: m} }

// MaterialDensity proxies reads and writes into its owning material's
// DensityRho field. It exists as its own type (rather than a bare float
// accessor on Material) to mirror the source library's nested property-set
// attributes, which group related fields under their own namespace.
type MaterialDensity struct {
	material *Material
}

// Rho returns the material's mass density.
func (d *MaterialDensity) Rho(ctx context.Context) (float64, error) {
	stub, err := d.material.stub()
	if err != nil {
		return 0, err
	}
	return treeobject.GetScalar(ctx, d.material.base, stub, "", "density.rho", func(p *MaterialProperties) float64 { return p.DensityRho })
}

// SetRho updates the material's mass density.
func (d *MaterialDensity) SetRho(ctx context.Context, v float64) error {
	stub, err := d.material.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, d.material.base, stub, "", "density.rho",
		func(p *MaterialProperties) float64 { return p.DensityRho },
		func(p *MaterialProperties, v float64) { p.DensityRho = v },
		func(a, b float64) bool { return a == b },
		v)
}

// EngineeringConstants returns the material's elastic constants.
func (m *Material) EngineeringConstants(ctx context.Context) (EngineeringConstants, error) {
	stub, err := m.stub()
	if err != nil {
		return EngineeringConstants{}, err
	}
	return treeobject.GetScalar(ctx, m.base, stub, "", "engineering_constants",
		func(p *MaterialProperties) EngineeringConstants { return p.EngineeringConstants })
}

// SetEngineeringConstants updates the material's elastic constants.
func (m *Material) SetEngineeringConstants(ctx context.Context, v EngineeringConstants) error {
	stub, err := m.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, m.base, stub, "", "engineering_constants",
		func(p *MaterialProperties) EngineeringConstants { return p.EngineeringConstants },
		func(p *MaterialProperties, v EngineeringConstants) { p.EngineeringConstants = v },
		func(a, b EngineeringConstants) bool { return a == b },
		v)
}

// Get refreshes the material's properties from the server.
func (m *Material) Get(ctx context.Context) error {
	stub, err := m.stub()
	if err != nil {
		return err
	}
	return m.base.Get(ctx, stub)
}

// Delete removes the material from its owning model.
func (m *Material) Delete(ctx context.Context) error {
	stub, err := m.stub()
	if err != nil {
		return err
	}
	return m.base.Delete(ctx, stub)
}

func (m *Material) create(ctx context.Context, server *treeobject.ServerWrapper, parentPath resourcepath.Path) error {
	if m.stubs == nil {
		m.stubs = stubstore.New(func() MaterialStub { return newMaterialStub(server.Channel) })
	}
	return m.base.Create(ctx, newMaterialStub(server.Channel), parentPath, MaterialCollectionLabel, server)
}

// ParentPath returns the resource path of the model owning this material.
func (m *Material) ParentPath() resourcepath.Path { return m.base.ResourcePath().Parent() }

// Clone returns an unstored copy sharing this material's current
// properties, for use by recursiveclone.Copy.
func (m *Material) Clone() recursiveclone.Node {
	cloned := m.base.Properties().Clone().(*MaterialProperties)
	return &Material{base: treeobject.NewUnstored(m.base.Name(), cloned)}
}

// CloneUnlinked returns an unstored copy with every link field cleared.
func (m *Material) CloneUnlinked() *Material {
	cloned := m.base.Properties().Clone().(*MaterialProperties)
	cloned.ClearLinks()
	return &Material{base: treeobject.NewUnstored(m.base.Name(), cloned)}
}

// ChildObjects is empty: a material owns no nested tree objects.
func (m *Material) ChildObjects() []recursiveclone.Node { return nil }

// DirectLinks is empty: a material links to nothing else.
func (m *Material) DirectLinks() []recursiveclone.DirectLink { return nil }

// LinkedObjectLists is empty for the same reason.
func (m *Material) LinkedObjectLists() []recursiveclone.LinkedObjectList { return nil }

// EdgePropertyLists is empty for the same reason.
func (m *Material) EdgePropertyLists() []recursiveclone.EdgePropertyList { return nil }

// Store implements recursiveclone.Node by creating this (already-cloned)
// material under parent.
func (m *Material) Store(ctx context.Context, parent recursiveclone.Node) error {
	owner, ok := parent.(materialOwner)
	if !ok {
		return apperrorInvalidParent("material", parent)
	}
	return owner.storeMaterial(ctx, m)
}

// materialOwner is implemented by Model.
type materialOwner interface {
	storeMaterial(ctx context.Context, m *Material) error
}
