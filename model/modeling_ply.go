package model

import (
	"context"

	"github.com/ansys/acp-client-go/orderedlist"
	"github.com/ansys/acp-client-go/recursiveclone"
	"github.com/ansys/acp-client-go/registry"
	"github.com/ansys/acp-client-go/resourcepath"
	"github.com/ansys/acp-client-go/stubstore"
	"github.com/ansys/acp-client-go/treeobject"
)

// ModelingPlyCollectionLabel is the resource path collection segment under
// which every modeling group's plies live.
const ModelingPlyCollectionLabel = "modeling_plies"

// DrapingType selects the draping formulation a modeling ply applies.
type DrapingType string

const (
	DrapingNone          DrapingType = "no_draping"
	DrapingUDTriangle    DrapingType = "ud_triangle"
	DrapingWovenTriangle DrapingType = "woven_triangle"
)

// ModelingPlyProperties is the wire payload for a ModelingPly. Status is
// server-computed and read-only. draping_angle_1_field/draping_angle_2_field
// (lookup-table column links in the source library) and production_plies
// (a read-only derived collection) are not carried here: no lookup-table
// or production-ply entity is part of this library's domain entity set
// (see DESIGN.md). Elemental and nodal data are not properties at all;
// see ElementalData/NodalData below, which query the mesh query service
// directly through the meshdata package.
type ModelingPlyProperties struct {
	Status Status

	PlyMaterialPath       resourcepath.Path
	OrientedSelectionSets []resourcepath.Path

	PlyAngle       float64
	NumberOfLayers int32
	Active         bool
	GlobalPlyNr    int32

	SelectionRules []LinkedSelectionRule

	Draping                     DrapingType
	DrapingSeedPoint            Vector3
	AutoDrapingDirection        bool
	DrapingDirection            Vector3
	DrapingMeshSize             float64
	DrapingThicknessCorrection  bool
}

// Clone returns a deep copy, including every slice-valued field.
func (p *ModelingPlyProperties) Clone() treeobject.Properties {
	clone := *p
	clone.OrientedSelectionSets = append([]resourcepath.Path(nil), p.OrientedSelectionSets...)
	clone.SelectionRules = append([]LinkedSelectionRule(nil), p.SelectionRules...)
	return &clone
}

// LinkedPaths returns the ply material link, every linked oriented
// selection set, and every selection rule reference.
func (p *ModelingPlyProperties) LinkedPaths() []resourcepath.Path {
	out := make([]resourcepath.Path, 0, 1+len(p.OrientedSelectionSets)+len(p.SelectionRules))
	if !p.PlyMaterialPath.IsEmpty() {
		out = append(out, p.PlyMaterialPath)
	}
	out = append(out, p.OrientedSelectionSets...)
	for _, r := range p.SelectionRules {
		if !r.RulePath.IsEmpty() {
			out = append(out, r.RulePath)
		}
	}
	return out
}

// ClearLinks empties every link field in place.
func (p *ModelingPlyProperties) ClearLinks() {
	p.PlyMaterialPath = resourcepath.Empty
	p.OrientedSelectionSets = nil
	for i := range p.SelectionRules {
		p.SelectionRules[i].RulePath = resourcepath.Empty
	}
}

// ModelingPlyStub is the gRPC-facing surface a ModelingPly needs.
type ModelingPlyStub = treeobject.FullStub[*ModelingPlyProperties]

// ModelingPly is one layer of a layup: a ply material extruded over the
// elements named by its oriented selection sets, trimmed by its selection
// rules (grounded on modeling_ply.py).
type ModelingPly struct {
	base  *treeobject.Base[*ModelingPlyProperties]
	stubs *stubstore.Store[ModelingPlyStub]
}

// NewModelingPly creates an unstored modeling ply. plyMaterial may be nil;
// orientedSelectionSets must already be stored.
func NewModelingPly(name string, plyMaterial *Fabric, orientedSelectionSets []*OrientedSelectionSet, plyAngle float64, numberOfLayers int32) (*ModelingPly, error) {
	if name == "" {
		name = "ModelingPly"
	}
	var materialPath resourcepath.Path
	if plyMaterial != nil {
		path, err := treeobject.LinkPathOf(plyMaterial.base)
		if err != nil {
			return nil, err
		}
		materialPath = path
	}
	ossPaths, err := storedPaths(orientedSelectionSets, func(o *OrientedSelectionSet) treeobject.Linkable { return o.base })
	if err != nil {
		return nil, err
	}
	props := &ModelingPlyProperties{
		PlyMaterialPath:            materialPath,
		OrientedSelectionSets:      ossPaths,
		PlyAngle:                   plyAngle,
		NumberOfLayers:             numberOfLayers,
		Active:                     true,
		Draping:                    DrapingNone,
		DrapingDirection:           Vector3{1, 0, 0},
		AutoDrapingDirection:       true,
		DrapingThicknessCorrection: true,
	}
	return &ModelingPly{base: treeobject.NewUnstored(name, props)}, nil
}

func init() {
	registry.Register(ModelingPlyCollectionLabel, registry.CachedConstructor(ModelingPlyCollectionLabel, func(path resourcepath.Path, server *treeobject.ServerWrapper) *ModelingPly {
		return &ModelingPly{base: treeobject.NewStored(treeobject.ObjectInfo[*ModelingPlyProperties]{
			Info: treeobject.Info{ResourcePath: path},
		}, server)}
	}))
}

func (m *ModelingPly) stub() (ModelingPlyStub, error) {
	server, err := m.base.Server()
	if err != nil {
		return nil, err
	}
	if m.stubs == nil {
		m.stubs = stubstore.New(func() ModelingPlyStub { return newModelingPlyStub(server.Channel) })
	}
	return m.stubs.Get(m.base.IsStored())
}

// Name returns the ply's display name as of the last Get or Put.
func (m *ModelingPly) Name() string { return m.base.Name() }

// ResourcePath returns the ply's resource path, or resourcepath.Empty if
// unstored.
func (m *ModelingPly) ResourcePath() resourcepath.Path { return m.base.ResourcePath() }

// IsStored reports whether the ply has server identity.
func (m *ModelingPly) IsStored() bool { return m.base.IsStored() }

// Status returns the server-computed validity status.
func (m *ModelingPly) Status(ctx context.Context) (Status, error) {
	stub, err := m.stub()
	if err != nil {
		return "", err
	}
	return treeobject.GetScalar(ctx, m.base, stub, "", "status", func(p *ModelingPlyProperties) Status { return p.Status })
}

// PlyMaterial resolves the ply's fabric, returning nil if none is set.
func (m *ModelingPly) PlyMaterial(ctx context.Context) (*Fabric, error) {
	stub, err := m.stub()
	if err != nil {
		return nil, err
	}
	path, err := treeobject.GetLinkPath(ctx, m.base, stub, "", "ply_material", func(p *ModelingPlyProperties) resourcepath.Path { return p.PlyMaterialPath })
	if err != nil {
		return nil, err
	}
	if path.IsEmpty() {
		return nil, nil
	}
	server, err := m.base.Server()
	if err != nil {
		return nil, err
	}
	return registry.ResolveAs[*Fabric](path, server)
}

// SetPlyMaterial updates the ply's fabric; a nil target clears it.
func (m *ModelingPly) SetPlyMaterial(ctx context.Context, fabric *Fabric) error {
	stub, err := m.stub()
	if err != nil {
		return err
	}
	var target treeobject.Linkable
	if fabric != nil {
		target = fabric.base
	}
	return treeobject.SetLinkPath(ctx, m.base, stub, "", "ply_material",
		func(p *ModelingPlyProperties) resourcepath.Path { return p.PlyMaterialPath },
		func(p *ModelingPlyProperties, v resourcepath.Path) { p.PlyMaterialPath = v },
		target, FabricCollectionLabel)
}

// PlyAngle returns the design angle between the reference direction and
// the ply's fiber direction.
func (m *ModelingPly) PlyAngle(ctx context.Context) (float64, error) {
	stub, err := m.stub()
	if err != nil {
		return 0, err
	}
	return treeobject.GetScalar(ctx, m.base, stub, "", "ply_angle", func(p *ModelingPlyProperties) float64 { return p.PlyAngle })
}

// SetPlyAngle updates the ply's design angle.
func (m *ModelingPly) SetPlyAngle(ctx context.Context, v float64) error {
	stub, err := m.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, m.base, stub, "", "ply_angle",
		func(p *ModelingPlyProperties) float64 { return p.PlyAngle },
		func(p *ModelingPlyProperties, v float64) { p.PlyAngle = v },
		func(a, b float64) bool { return a == b }, v)
}

// NumberOfLayers returns how many times the ply is generated through the
// thickness.
func (m *ModelingPly) NumberOfLayers(ctx context.Context) (int32, error) {
	stub, err := m.stub()
	if err != nil {
		return 0, err
	}
	return treeobject.GetScalar(ctx, m.base, stub, "", "number_of_layers", func(p *ModelingPlyProperties) int32 { return p.NumberOfLayers })
}

// SetNumberOfLayers updates the layer repeat count.
func (m *ModelingPly) SetNumberOfLayers(ctx context.Context, v int32) error {
	stub, err := m.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, m.base, stub, "", "number_of_layers",
		func(p *ModelingPlyProperties) int32 { return p.NumberOfLayers },
		func(p *ModelingPlyProperties, v int32) { p.NumberOfLayers = v },
		func(a, b int32) bool { return a == b }, v)
}

// Active reports whether this ply is included in downstream analysis.
func (m *ModelingPly) Active(ctx context.Context) (bool, error) {
	stub, err := m.stub()
	if err != nil {
		return false, err
	}
	return treeobject.GetScalar(ctx, m.base, stub, "", "active", func(p *ModelingPlyProperties) bool { return p.Active })
}

// SetActive updates whether this ply is included in downstream analysis.
func (m *ModelingPly) SetActive(ctx context.Context, v bool) error {
	stub, err := m.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, m.base, stub, "", "active",
		func(p *ModelingPlyProperties) bool { return p.Active },
		func(p *ModelingPlyProperties, v bool) { p.Active = v },
		func(a, b bool) bool { return a == b }, v)
}

// GlobalPlyNr returns the ply's global order index. Zero lets the server
// assign a consistent value automatically.
func (m *ModelingPly) GlobalPlyNr(ctx context.Context) (int32, error) {
	stub, err := m.stub()
	if err != nil {
		return 0, err
	}
	return treeobject.GetScalar(ctx, m.base, stub, "", "global_ply_nr", func(p *ModelingPlyProperties) int32 { return p.GlobalPlyNr })
}

// SetGlobalPlyNr updates the ply's global order index.
func (m *ModelingPly) SetGlobalPlyNr(ctx context.Context, v int32) error {
	stub, err := m.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, m.base, stub, "", "global_ply_nr",
		func(p *ModelingPlyProperties) int32 { return p.GlobalPlyNr },
		func(p *ModelingPlyProperties, v int32) { p.GlobalPlyNr = v },
		func(a, b int32) bool { return a == b }, v)
}

// Draping returns the draping formulation applied to this ply.
func (m *ModelingPly) Draping(ctx context.Context) (DrapingType, error) {
	stub, err := m.stub()
	if err != nil {
		return "", err
	}
	return treeobject.GetScalar(ctx, m.base, stub, "", "draping", func(p *ModelingPlyProperties) DrapingType { return p.Draping })
}

// SetDraping updates the draping formulation applied to this ply.
func (m *ModelingPly) SetDraping(ctx context.Context, v DrapingType) error {
	stub, err := m.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, m.base, stub, "", "draping",
		func(p *ModelingPlyProperties) DrapingType { return p.Draping },
		func(p *ModelingPlyProperties, v DrapingType) { p.Draping = v },
		func(a, b DrapingType) bool { return a == b }, v)
}

// DrapingSeedPoint returns the starting point of the draping algorithm.
func (m *ModelingPly) DrapingSeedPoint(ctx context.Context) (Vector3, error) {
	stub, err := m.stub()
	if err != nil {
		return Vector3{}, err
	}
	return treeobject.GetScalar(ctx, m.base, stub, "", "draping_seed_point", func(p *ModelingPlyProperties) Vector3 { return p.DrapingSeedPoint })
}

// SetDrapingSeedPoint updates the draping seed point.
func (m *ModelingPly) SetDrapingSeedPoint(ctx context.Context, v Vector3) error {
	stub, err := m.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, m.base, stub, "", "draping_seed_point",
		func(p *ModelingPlyProperties) Vector3 { return p.DrapingSeedPoint },
		func(p *ModelingPlyProperties, v Vector3) { p.DrapingSeedPoint = v },
		func(a, b Vector3) bool { return a == b }, v)
}

// AutoDrapingDirection reports whether the draping direction is derived
// automatically from the production ply's fiber direction at the seed
// point, rather than from DrapingDirection.
func (m *ModelingPly) AutoDrapingDirection(ctx context.Context) (bool, error) {
	stub, err := m.stub()
	if err != nil {
		return false, err
	}
	return treeobject.GetScalar(ctx, m.base, stub, "", "auto_draping_direction", func(p *ModelingPlyProperties) bool { return p.AutoDrapingDirection })
}

// SetAutoDrapingDirection updates that choice.
func (m *ModelingPly) SetAutoDrapingDirection(ctx context.Context, v bool) error {
	stub, err := m.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, m.base, stub, "", "auto_draping_direction",
		func(p *ModelingPlyProperties) bool { return p.AutoDrapingDirection },
		func(p *ModelingPlyProperties, v bool) { p.AutoDrapingDirection = v },
		func(a, b bool) bool { return a == b }, v)
}

// DrapingDirection returns the primary draping direction used when
// AutoDrapingDirection is false.
func (m *ModelingPly) DrapingDirection(ctx context.Context) (Vector3, error) {
	stub, err := m.stub()
	if err != nil {
		return Vector3{}, err
	}
	return treeobject.GetScalar(ctx, m.base, stub, "", "draping_direction", func(p *ModelingPlyProperties) Vector3 { return p.DrapingDirection })
}

// SetDrapingDirection updates the primary draping direction.
func (m *ModelingPly) SetDrapingDirection(ctx context.Context, v Vector3) error {
	stub, err := m.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, m.base, stub, "", "draping_direction",
		func(p *ModelingPlyProperties) Vector3 { return p.DrapingDirection },
		func(p *ModelingPlyProperties, v Vector3) { p.DrapingDirection = v },
		func(a, b Vector3) bool { return a == b }, v)
}

// DrapingMeshSize returns the mesh size used by the draping algorithm.
func (m *ModelingPly) DrapingMeshSize(ctx context.Context) (float64, error) {
	stub, err := m.stub()
	if err != nil {
		return 0, err
	}
	return treeobject.GetScalar(ctx, m.base, stub, "", "draping_mesh_size", func(p *ModelingPlyProperties) float64 { return p.DrapingMeshSize })
}

// SetDrapingMeshSize updates the draping mesh size.
func (m *ModelingPly) SetDrapingMeshSize(ctx context.Context, v float64) error {
	stub, err := m.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, m.base, stub, "", "draping_mesh_size",
		func(p *ModelingPlyProperties) float64 { return p.DrapingMeshSize },
		func(p *ModelingPlyProperties, v float64) { p.DrapingMeshSize = v },
		func(a, b float64) bool { return a == b }, v)
}

// DrapingThicknessCorrection reports whether draped-ply thickness is
// corrected based on the draping shear angle.
func (m *ModelingPly) DrapingThicknessCorrection(ctx context.Context) (bool, error) {
	stub, err := m.stub()
	if err != nil {
		return false, err
	}
	return treeobject.GetScalar(ctx, m.base, stub, "", "draping_thickness_correction", func(p *ModelingPlyProperties) bool { return p.DrapingThicknessCorrection })
}

// SetDrapingThicknessCorrection updates that choice.
func (m *ModelingPly) SetDrapingThicknessCorrection(ctx context.Context, v bool) error {
	stub, err := m.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, m.base, stub, "", "draping_thickness_correction",
		func(p *ModelingPlyProperties) bool { return p.DrapingThicknessCorrection },
		func(p *ModelingPlyProperties, v bool) { p.DrapingThicknessCorrection = v },
		func(a, b bool) bool { return a == b }, v)
}

// OrientedSelectionSets returns the ply's linked oriented selection sets as
// an ordered, index-addressable list.
func (m *ModelingPly) OrientedSelectionSets() *orderedlist.List[resourcepath.Path, *OrientedSelectionSet] {
	return orderedlist.New(
		func(ctx context.Context) ([]resourcepath.Path, error) {
			stub, err := m.stub()
			if err != nil {
				return nil, err
			}
			return treeobject.GetScalar(ctx, m.base, stub, "", "oriented_selection_sets", func(p *ModelingPlyProperties) []resourcepath.Path { return p.OrientedSelectionSets })
		},
		func(ctx context.Context, values []resourcepath.Path) error {
			stub, err := m.stub()
			if err != nil {
				return err
			}
			return treeobject.SetScalar(ctx, m.base, stub, "", "oriented_selection_sets",
				func(p *ModelingPlyProperties) []resourcepath.Path { return p.OrientedSelectionSets },
				func(p *ModelingPlyProperties, v []resourcepath.Path) { p.OrientedSelectionSets = v },
				func(a, b []resourcepath.Path) bool { return false }, values)
		},
		func(o *OrientedSelectionSet) (resourcepath.Path, error) { return treeobject.LinkPathOf(o.base) },
		func(path resourcepath.Path) (*OrientedSelectionSet, error) {
			server, err := m.base.Server()
			if err != nil {
				return nil, err
			}
			return registry.ResolveAs[*OrientedSelectionSet](path, server)
		},
		func(a, b resourcepath.Path) bool { return a.Equal(b) },
	)
}

// SelectionRules returns the ply's current trimming rules. Mutating the
// returned slice has no effect; use SetSelectionRules to publish changes.
func (m *ModelingPly) SelectionRules(ctx context.Context) ([]LinkedSelectionRule, error) {
	stub, err := m.stub()
	if err != nil {
		return nil, err
	}
	rules, err := treeobject.GetScalar(ctx, m.base, stub, "", "selection_rules", func(p *ModelingPlyProperties) []LinkedSelectionRule { return p.SelectionRules })
	if err != nil {
		return nil, err
	}
	return append([]LinkedSelectionRule(nil), rules...), nil
}

// SetSelectionRules republishes the ply's full trimming rule list.
func (m *ModelingPly) SetSelectionRules(ctx context.Context, rules []LinkedSelectionRule) error {
	stub, err := m.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, m.base, stub, "", "selection_rules",
		func(p *ModelingPlyProperties) []LinkedSelectionRule { return p.SelectionRules },
		func(p *ModelingPlyProperties, v []LinkedSelectionRule) { p.SelectionRules = v },
		func(a, b []LinkedSelectionRule) bool { return false },
		append([]LinkedSelectionRule(nil), rules...))
}

// Get refreshes the ply's properties from the server.
func (m *ModelingPly) Get(ctx context.Context) error {
	stub, err := m.stub()
	if err != nil {
		return err
	}
	return m.base.Get(ctx, stub)
}

// Delete removes the ply from its owning modeling group.
func (m *ModelingPly) Delete(ctx context.Context) error {
	stub, err := m.stub()
	if err != nil {
		return err
	}
	return m.base.Delete(ctx, stub)
}

func (m *ModelingPly) create(ctx context.Context, server *treeobject.ServerWrapper, parentPath resourcepath.Path) error {
	if m.stubs == nil {
		m.stubs = stubstore.New(func() ModelingPlyStub { return newModelingPlyStub(server.Channel) })
	}
	return m.base.Create(ctx, newModelingPlyStub(server.Channel), parentPath, ModelingPlyCollectionLabel, server)
}

// ParentPath returns the resource path of the modeling group owning this
// ply.
func (m *ModelingPly) ParentPath() resourcepath.Path { return m.base.ResourcePath().Parent() }

// Clone returns an unstored copy sharing this ply's current properties, for
// use by recursiveclone.Copy.
func (m *ModelingPly) Clone() recursiveclone.Node {
	cloned := m.base.Properties().Clone().(*ModelingPlyProperties)
	return &ModelingPly{base: treeobject.NewUnstored(m.base.Name(), cloned)}
}

// CloneUnlinked returns an unstored copy with every link field cleared.
func (m *ModelingPly) CloneUnlinked() *ModelingPly {
	cloned := m.base.Properties().Clone().(*ModelingPlyProperties)
	cloned.ClearLinks()
	return &ModelingPly{base: treeobject.NewUnstored(m.base.Name(), cloned)}
}

// ChildObjects is empty: a modeling ply owns no nested tree objects (its
// production plies are server-derived and not part of this library's
// domain entity set).
func (m *ModelingPly) ChildObjects() []recursiveclone.Node { return nil }

// DirectLinks exposes the ply's single-valued ply material link.
func (m *ModelingPly) DirectLinks() []recursiveclone.DirectLink {
	props := m.base.Properties()
	var target recursiveclone.Node
	if !props.PlyMaterialPath.IsEmpty() {
		if server, err := m.base.Server(); err == nil {
			if fabric, err := registry.ResolveAs[*Fabric](props.PlyMaterialPath, server); err == nil {
				target = fabric
			}
		}
	}
	return []recursiveclone.DirectLink{{
		Target: target,
		Set: func(ctx context.Context, newTarget recursiveclone.Node) error {
			if newTarget == nil {
				props.PlyMaterialPath = resourcepath.Empty
				return nil
			}
			props.PlyMaterialPath = newTarget.ResourcePath()
			return nil
		},
	}}
}

// LinkedObjectLists exposes the ply's linked oriented selection sets.
func (m *ModelingPly) LinkedObjectLists() []recursiveclone.LinkedObjectList {
	props := m.base.Properties()
	server, _ := m.base.Server()
	return []recursiveclone.LinkedObjectList{
		resolvedLinkList(server, props.OrientedSelectionSets,
			func(p resourcepath.Path) { props.OrientedSelectionSets = append(props.OrientedSelectionSets, p) },
			func() { props.OrientedSelectionSets = nil }),
	}
}

// EdgePropertyLists exposes the ply's trimming rule list.
func (m *ModelingPly) EdgePropertyLists() []recursiveclone.EdgePropertyList {
	return selectionRuleEdgeList(&m.base.Properties().SelectionRules)
}

// Store implements recursiveclone.Node by creating this (already-cloned)
// ply under parent.
func (m *ModelingPly) Store(ctx context.Context, parent recursiveclone.Node) error {
	owner, ok := parent.(modelingPlyOwner)
	if !ok {
		return apperrorInvalidParent("modeling ply", parent)
	}
	return owner.storeModelingPly(ctx, m)
}

// modelingPlyOwner is implemented by ModelingGroup.
type modelingPlyOwner interface {
	storeModelingPly(ctx context.Context, m *ModelingPly) error
}
