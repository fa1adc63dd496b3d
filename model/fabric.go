package model

import (
	"context"

	"github.com/ansys/acp-client-go/recursiveclone"
	"github.com/ansys/acp-client-go/registry"
	"github.com/ansys/acp-client-go/resourcepath"
	"github.com/ansys/acp-client-go/stubstore"
	"github.com/ansys/acp-client-go/treeobject"
)

// FabricCollectionLabel is the resource path collection segment under which
// every model's fabrics live.
const FabricCollectionLabel = "fabrics"

// DropoffMaterialType, CutoffMaterialType, and DrapingMaterialType mirror the
// source library's fabric-specific string enums.
type (
	DropoffMaterialType string
	CutoffMaterialType  string
	DrapingMaterialType string
)

const (
	DropoffMaterialGlobal  DropoffMaterialType = "global"
	DropoffMaterialLocal   DropoffMaterialType = "local"
	DropoffMaterialDefined DropoffMaterialType = "drop_off_material"

	CutoffMaterialComputed CutoffMaterialType = "computed"
	CutoffMaterialDefined  CutoffMaterialType = "cut_off_material"

	DrapingMaterialWoven         DrapingMaterialType = "woven"
	DrapingMaterialUnidirectional DrapingMaterialType = "uni_directional"
)

// FabricProperties is the wire payload for a Fabric. MaterialPath is a link
// field pointing at the Material this fabric is made of.
type FabricProperties struct {
	Locked bool
	Status Status

	MaterialPath resourcepath.Path

	Thickness                float64
	AreaPrice                float64
	IgnoreForPostprocessing  bool
	DropOffMaterialHandling  DropoffMaterialType
	CutOffMaterialHandling   CutoffMaterialType
	DrapingMaterialModel     DrapingMaterialType
	DrapingUDCoefficient     float64
}

// Clone returns a deep copy. The link field is copied as a path value, so a
// shallow struct copy already is a deep copy; ClearLinks blanks it
// afterwards when the caller needs a link-free copy.
func (p *FabricProperties) Clone() treeobject.Properties {
	clone := *p
	return &clone
}

// LinkedPaths returns the fabric's single link, if set.
func (p *FabricProperties) LinkedPaths() []resourcepath.Path {
	if p.MaterialPath.IsEmpty() {
		return nil
	}
	return []resourcepath.Path{p.MaterialPath}
}

// ClearLinks blanks the material link.
func (p *FabricProperties) ClearLinks() { p.MaterialPath = resourcepath.Empty }

// FabricStub is the gRPC-facing surface a Fabric needs.
type FabricStub = treeobject.FullStub[*FabricProperties]

// Fabric is a reinforcement material with layup-relevant thickness and
// pricing, and draping/drop-off/cut-off handling options (grounded on fabric.py).
type Fabric struct {
	base  *treeobject.Base[*FabricProperties]
	stubs *stubstore.Store[FabricStub]
}

// NewFabric creates an unstored fabric. material may be nil.
func NewFabric(name string, material *Material, thickness, areaPrice float64) *Fabric {
	if name == "" {
		name = "Fabric"
	}
	props := &FabricProperties{
		Thickness:            thickness,
		AreaPrice:            areaPrice,
		DropOffMaterialHandling: DropoffMaterialGlobal,
		CutOffMaterialHandling:  CutoffMaterialComputed,
		DrapingMaterialModel:    DrapingMaterialWoven,
	}
	if material != nil {
		props.MaterialPath = material.ResourcePath()
	}
	return &Fabric{base: treeobject.NewUnstored(name, props)}
}

func init() {
	registry.Register(FabricCollectionLabel, registry.CachedConstructor(FabricCollectionLabel, func(path resourcepath.Path, server *treeobject.ServerWrapper) *Fabric {
		return &Fabric{base: treeobject.NewStored(treeobject.ObjectInfo[*FabricProperties]{
			Info: treeobject.Info{ResourcePath: path},
		}, server)}
	}))
}

func (f *Fabric) stub() (FabricStub, error) {
	server, err := f.base.Server()
	if err != nil {
		return nil, err
	}
	if f.stubs == nil {
		f.stubs = stubstore.New(func() FabricStub { return newFabricStub(server.Channel) })
	}
	return f.stubs.Get(f.base.IsStored())
}

// Name returns the fabric's display name as of the last Get or Put.
func (f *Fabric) Name() string { return f.base.Name() }

// ResourcePath returns the fabric's resource path, or resourcepath.Empty if
// unstored.
func (f *Fabric) ResourcePath() resourcepath.Path { return f.base.ResourcePath() }

// IsStored reports whether the fabric has server identity.
func (f *Fabric) IsStored() bool { return f.base.IsStored() }

// Locked reports whether the owning model currently has this fabric locked
// against edits.
func (f *Fabric) Locked(ctx context.Context) (bool, error) {
	stub, err := f.stub()
	if err != nil {
		return false, err
	}
	return treeobject.GetScalar(ctx, f.base, stub, "", "locked", func(p *FabricProperties) bool { return p.Locked })
}

// Status returns the server-computed validity status.
func (f *Fabric) Status(ctx context.Context) (Status, error) {
	stub, err := f.stub()
	if err != nil {
		return "", err
	}
	return treeobject.GetScalar(ctx, f.base, stub, "", "status", func(p *FabricProperties) Status { return p.Status })
}

// Material returns the material this fabric resolves to, or nil if unset.
func (f *Fabric) Material(ctx context.Context) (*Material, error) {
	stub, err := f.stub()
	if err != nil {
		return nil, err
	}
	path, err := treeobject.GetLinkPath(ctx, f.base, stub, "", "material", func(p *FabricProperties) resourcepath.Path { return p.MaterialPath })
	if err != nil {
		return nil, err
	}
	if path.IsEmpty() {
		return nil, nil
	}
	server, err := f.base.Server()
	if err != nil {
		return nil, err
	}
	obj, err := registry.ResolveAs[*Material](path, server)
	if err != nil {
		return nil, err
	}
	return obj, nil
}

// SetMaterial links this fabric to material, which must already be stored.
// A nil material clears the link.
func (f *Fabric) SetMaterial(ctx context.Context, material *Material) error {
	stub, err := f.stub()
	if err != nil {
		return err
	}
	var target treeobject.Linkable
	if material != nil {
		target = materialLinkable{material}
	}
	return treeobject.SetLinkPath(ctx, f.base, stub, "", "material",
		func(p *FabricProperties) resourcepath.Path { return p.MaterialPath },
		func(p *FabricProperties, v resourcepath.Path) { p.MaterialPath = v },
		target, MaterialCollectionLabel)
}

type materialLinkable struct{ m *Material }

func (l materialLinkable) IsStored() bool                  { return l.m.IsStored() }
func (l materialLinkable) ResourcePath() resourcepath.Path { return l.m.ResourcePath() }

// Thickness returns the fabric's per-layer thickness.
func (f *Fabric) Thickness(ctx context.Context) (float64, error) {
	stub, err := f.stub()
	if err != nil {
		return 0, err
	}
	return treeobject.GetScalar(ctx, f.base, stub, "", "thickness", func(p *FabricProperties) float64 { return p.Thickness })
}

// SetThickness updates the fabric's per-layer thickness.
func (f *Fabric) SetThickness(ctx context.Context, v float64) error {
	stub, err := f.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, f.base, stub, "", "thickness",
		func(p *FabricProperties) float64 { return p.Thickness },
		func(p *FabricProperties, v float64) { p.Thickness = v },
		func(a, b float64) bool { return a == b },
		v)
}

// AreaPrice returns the fabric's price per unit area.
func (f *Fabric) AreaPrice(ctx context.Context) (float64, error) {
	stub, err := f.stub()
	if err != nil {
		return 0, err
	}
	return treeobject.GetScalar(ctx, f.base, stub, "", "area_price", func(p *FabricProperties) float64 { return p.AreaPrice })
}

// SetAreaPrice updates the fabric's price per unit area.
func (f *Fabric) SetAreaPrice(ctx context.Context, v float64) error {
	stub, err := f.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, f.base, stub, "", "area_price",
		func(p *FabricProperties) float64 { return p.AreaPrice },
		func(p *FabricProperties, v float64) { p.AreaPrice = v },
		func(a, b float64) bool { return a == b },
		v)
}

// IgnoreForPostprocessing reports whether failure computations skip plies
// made of this fabric.
func (f *Fabric) IgnoreForPostprocessing(ctx context.Context) (bool, error) {
	stub, err := f.stub()
	if err != nil {
		return false, err
	}
	return treeobject.GetScalar(ctx, f.base, stub, "", "ignore_for_postprocessing", func(p *FabricProperties) bool { return p.IgnoreForPostprocessing })
}

// SetIgnoreForPostprocessing updates that flag.
func (f *Fabric) SetIgnoreForPostprocessing(ctx context.Context, v bool) error {
	stub, err := f.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, f.base, stub, "", "ignore_for_postprocessing",
		func(p *FabricProperties) bool { return p.IgnoreForPostprocessing },
		func(p *FabricProperties, v bool) { p.IgnoreForPostprocessing = v },
		func(a, b bool) bool { return a == b },
		v)
}

// DropOffMaterialHandling returns how drop-off elements are materialized in
// solid model extrusion.
func (f *Fabric) DropOffMaterialHandling(ctx context.Context) (DropoffMaterialType, error) {
	stub, err := f.stub()
	if err != nil {
		return "", err
	}
	return treeobject.GetScalar(ctx, f.base, stub, "", "drop_off_material_handling", func(p *FabricProperties) DropoffMaterialType { return p.DropOffMaterialHandling })
}

// SetDropOffMaterialHandling updates that handling mode.
func (f *Fabric) SetDropOffMaterialHandling(ctx context.Context, v DropoffMaterialType) error {
	stub, err := f.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, f.base, stub, "", "drop_off_material_handling",
		func(p *FabricProperties) DropoffMaterialType { return p.DropOffMaterialHandling },
		func(p *FabricProperties, v DropoffMaterialType) { p.DropOffMaterialHandling = v },
		func(a, b DropoffMaterialType) bool { return a == b },
		v)
}

// CutOffMaterialHandling returns how cut-off elements are materialized when
// cut-off geometries are active.
func (f *Fabric) CutOffMaterialHandling(ctx context.Context) (CutoffMaterialType, error) {
	stub, err := f.stub()
	if err != nil {
		return "", err
	}
	return treeobject.GetScalar(ctx, f.base, stub, "", "cut_off_material_handling", func(p *FabricProperties) CutoffMaterialType { return p.CutOffMaterialHandling })
}

// SetCutOffMaterialHandling updates that handling mode.
func (f *Fabric) SetCutOffMaterialHandling(ctx context.Context, v CutoffMaterialType) error {
	stub, err := f.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, f.base, stub, "", "cut_off_material_handling",
		func(p *FabricProperties) CutoffMaterialType { return p.CutOffMaterialHandling },
		func(p *FabricProperties, v CutoffMaterialType) { p.CutOffMaterialHandling = v },
		func(a, b CutoffMaterialType) bool { return a == b },
		v)
}

// DrapingMaterialModel returns the fabric's draping model.
func (f *Fabric) DrapingMaterialModel(ctx context.Context) (DrapingMaterialType, error) {
	stub, err := f.stub()
	if err != nil {
		return "", err
	}
	return treeobject.GetScalar(ctx, f.base, stub, "", "draping_material_model", func(p *FabricProperties) DrapingMaterialType { return p.DrapingMaterialModel })
}

// SetDrapingMaterialModel updates the fabric's draping model.
func (f *Fabric) SetDrapingMaterialModel(ctx context.Context, v DrapingMaterialType) error {
	stub, err := f.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, f.base, stub, "", "draping_material_model",
		func(p *FabricProperties) DrapingMaterialType { return p.DrapingMaterialModel },
		func(p *FabricProperties, v DrapingMaterialType) { p.DrapingMaterialModel = v },
		func(a, b DrapingMaterialType) bool { return a == b },
		v)
}

// DrapingUDCoefficient returns the uni-directional draping model's
// coefficient, in [0, 1].
func (f *Fabric) DrapingUDCoefficient(ctx context.Context) (float64, error) {
	stub, err := f.stub()
	if err != nil {
		return 0, err
	}
	return treeobject.GetScalar(ctx, f.base, stub, "", "draping_ud_coefficient", func(p *FabricProperties) float64 { return p.DrapingUDCoefficient })
}

// SetDrapingUDCoefficient updates the uni-directional draping coefficient.
// Values outside [0, 1] raise KindInvalidArgument.
func (f *Fabric) SetDrapingUDCoefficient(ctx context.Context, v float64) error {
	if v < 0 || v > 1 {
		return apperrorRange("draping_ud_coefficient", v)
	}
	stub, err := f.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, f.base, stub, "", "draping_ud_coefficient",
		func(p *FabricProperties) float64 { return p.DrapingUDCoefficient },
		func(p *FabricProperties, v float64) { p.DrapingUDCoefficient = v },
		func(a, b float64) bool { return a == b },
		v)
}

// Get refreshes the fabric's properties from the server.
func (f *Fabric) Get(ctx context.Context) error {
	stub, err := f.stub()
	if err != nil {
		return err
	}
	return f.base.Get(ctx, stub)
}

// Delete removes the fabric from its owning model.
func (f *Fabric) Delete(ctx context.Context) error {
	stub, err := f.stub()
	if err != nil {
		return err
	}
	return f.base.Delete(ctx, stub)
}

func (f *Fabric) create(ctx context.Context, server *treeobject.ServerWrapper, parentPath resourcepath.Path) error {
	if f.stubs == nil {
		f.stubs = stubstore.New(func() FabricStub { return newFabricStub(server.Channel) })
	}
	return f.base.Create(ctx, newFabricStub(server.Channel), parentPath, FabricCollectionLabel, server)
}

// ParentPath returns the resource path of the model owning this fabric.
func (f *Fabric) ParentPath() resourcepath.Path { return f.base.ResourcePath().Parent() }

// Clone returns an unstored copy sharing this fabric's current properties
// (material link included, still pointing at the original material; a
// recursiveclone.Copy call rewrites it through the replacement map).
func (f *Fabric) Clone() recursiveclone.Node {
	cloned := f.base.Properties().Clone().(*FabricProperties)
	return &Fabric{base: treeobject.NewUnstored(f.base.Name(), cloned)}
}

// CloneUnlinked returns an unstored copy with the material link cleared.
func (f *Fabric) CloneUnlinked() *Fabric {
	cloned := f.base.Properties().Clone().(*FabricProperties)
	cloned.ClearLinks()
	return &Fabric{base: treeobject.NewUnstored(f.base.Name(), cloned)}
}

// ChildObjects is empty: a fabric owns no nested tree objects.
func (f *Fabric) ChildObjects() []recursiveclone.Node { return nil }

// DirectLinks exposes the fabric's single material link.
func (f *Fabric) DirectLinks() []recursiveclone.DirectLink {
	props := f.base.Properties()
	var target recursiveclone.Node
	if !props.MaterialPath.IsEmpty() {
		server, err := f.base.Server()
		if err == nil {
			if m, err := registry.ResolveAs[*Material](props.MaterialPath, server); err == nil {
				target = m
			}
		}
	}
	return []recursiveclone.DirectLink{{
		Target: target,
		Set: func(ctx context.Context, newTarget recursiveclone.Node) error {
			if newTarget == nil {
				f.base.Properties().MaterialPath = resourcepath.Empty
				return nil
			}
			f.base.Properties().MaterialPath = newTarget.ResourcePath()
			return nil
		},
	}}
}

// LinkedObjectLists is empty: a fabric has no link-list fields.
func (f *Fabric) LinkedObjectLists() []recursiveclone.LinkedObjectList { return nil }

// EdgePropertyLists is empty for the same reason.
func (f *Fabric) EdgePropertyLists() []recursiveclone.EdgePropertyList { return nil }

// Store implements recursiveclone.Node by creating this (already-cloned)
// fabric under parent.
func (f *Fabric) Store(ctx context.Context, parent recursiveclone.Node) error {
	owner, ok := parent.(fabricOwner)
	if !ok {
		return apperrorInvalidParent("fabric", parent)
	}
	return owner.storeFabric(ctx, f)
}

// fabricOwner is implemented by Model.
type fabricOwner interface {
	storeFabric(ctx context.Context, f *Fabric) error
}
