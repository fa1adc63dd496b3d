package model

import (
	"context"

	"github.com/ansys/acp-client-go/filetransfer"
	"github.com/ansys/acp-client-go/handlecache"
	"github.com/ansys/acp-client-go/mapping"
	"github.com/ansys/acp-client-go/pkg/apperror"
	"github.com/ansys/acp-client-go/recursiveclone"
	"github.com/ansys/acp-client-go/registry"
	"github.com/ansys/acp-client-go/resourcepath"
	"github.com/ansys/acp-client-go/stubstore"
	"github.com/ansys/acp-client-go/treeobject"
)

// ModelCollectionLabel is the resource path collection segment under which
// every server instance's models live.
const ModelCollectionLabel = "models"

// UnitSystem reports the unit system a model was loaded or created with. It
// is server-computed and read-only.
type UnitSystem string

const (
	UnitSystemUndefined UnitSystem = "undefined"
	UnitSystemMPA       UnitSystem = "mpa"
	UnitSystemSI        UnitSystem = "si"
	UnitSystemTON       UnitSystem = "ton"
	UnitSystemBFT       UnitSystem = "bft"
	UnitSystemBIN       UnitSystem = "bin"
)

// ModelProperties is the wire payload for a Model, the root container every
// other domain entity nests under (grounded on model.py).
//
// The lookup-table-backed fe-format/unit-system-at-import options and the
// server's resolved "cache update results" (analysis plies, locked status
// per solid model) are not modeled as scalar properties: they are either
// one-shot load-time arguments or already reachable by reading the
// affected entities directly.
type ModelProperties struct {
	UseNodalThicknesses         bool
	DrapingOffsetCorrection     bool
	AngleTolerance              float64
	RelativeThicknessTolerance  float64
	MinimumAnalysisPlyThickness float64
	UnitSystem                  UnitSystem
}

// Clone returns a copy. Every field is a value type, so a shallow struct
// copy already is one.
func (p *ModelProperties) Clone() treeobject.Properties {
	clone := *p
	return &clone
}

// LinkedPaths is empty: a model's own properties link to nothing; its
// children carry their own links.
func (p *ModelProperties) LinkedPaths() []resourcepath.Path { return nil }

// ClearLinks is a no-op for the same reason.
func (p *ModelProperties) ClearLinks() {}

// ModelStub is the gRPC-facing surface a Model needs: the usual
// creatable/editable/readable/listable operations, plus the handful of
// model-scoped RPCs that act on the whole tree rather than a single
// property.
type ModelStub interface {
	treeobject.FullStub[*ModelProperties]

	// Update recomputes server-derived state (e.g. analysis plies, solid
	// model caches) for the model at path.
	Update(ctx context.Context, path resourcepath.Path, relationsOnly bool) error

	// SaveToFile persists the full model (.acph5) to serverPath.
	SaveToFile(ctx context.Context, path resourcepath.Path, serverPath string, saveCache bool) error

	// SaveAnalysisModel persists the resolved analysis model to serverPath.
	SaveAnalysisModel(ctx context.Context, path resourcepath.Path, serverPath string) error

	// SaveShellCompositeDefinitions exports the shell lay-up as HDF5 to
	// serverPath, for consumption by downstream post-processing tools.
	SaveShellCompositeDefinitions(ctx context.Context, path resourcepath.Path, serverPath string) error
}

// Model is the root of a composite lay-up: it owns every material, fabric,
// rosette, element set, oriented selection set, modeling group, solid
// model, and selection rule in the tree (grounded on
// model.py).
//
// SolidModel and the five selection rule types are not reachable from
// Model in the indexed source this library was distilled from, but each is
// a fully self-contained, independently resolvable entity central to the
// domain; exposing them as top-level collections here (rather than leaving
// them creatable only via recursiveclone.Copy or direct path construction)
// is a supplemented feature, not a spec deviation.
type Model struct {
	base  *treeobject.Base[*ModelProperties]
	stubs *stubstore.Store[ModelStub]

	materials             *handlecache.Cache[Material]
	fabrics               *handlecache.Cache[Fabric]
	rosettes              *handlecache.Cache[Rosette]
	elementSets           *handlecache.Cache[ElementSet]
	orientedSelectionSets *handlecache.Cache[OrientedSelectionSet]
	modelingGroups        *handlecache.Cache[ModelingGroup]
	solidModels           *handlecache.Cache[SolidModel]
	parallelRules         *handlecache.Cache[ParallelSelectionRule]
	cylindricalRules      *handlecache.Cache[CylindricalSelectionRule]
	sphericalRules        *handlecache.Cache[SphericalSelectionRule]
	booleanRules          *handlecache.Cache[BooleanSelectionRule]
	cutoffRules           *handlecache.Cache[CutoffSelectionRule]
}

// NewModel creates an unstored model. Use acpinstance to store it against a
// running server.
func NewModel(name string) *Model {
	if name == "" {
		name = "ACP Model"
	}
	props := &ModelProperties{
		AngleTolerance:              1.0,
		RelativeThicknessTolerance:  0.01,
		MinimumAnalysisPlyThickness: 1e-6,
	}
	return &Model{base: treeobject.NewUnstored(name, props)}
}

func init() {
	registry.Register(ModelCollectionLabel, registry.CachedConstructor(ModelCollectionLabel, func(path resourcepath.Path, server *treeobject.ServerWrapper) *Model {
		return &Model{base: treeobject.NewStored(treeobject.ObjectInfo[*ModelProperties]{
			Info: treeobject.Info{ResourcePath: path},
		}, server)}
	}))
}

func (m *Model) stub() (ModelStub, error) {
	server, err := m.base.Server()
	if err != nil {
		return nil, err
	}
	if m.stubs == nil {
		m.stubs = stubstore.New(func() ModelStub { return newModelStub(server.Channel) })
	}
	return m.stubs.Get(m.base.IsStored())
}

// Name returns the model's display name as of the last Get or Put.
func (m *Model) Name() string { return m.base.Name() }

// ResourcePath returns the model's resource path, or resourcepath.Empty if
// unstored.
func (m *Model) ResourcePath() resourcepath.Path { return m.base.ResourcePath() }

// IsStored reports whether the model has server identity.
func (m *Model) IsStored() bool { return m.base.IsStored() }

// UseNodalThicknesses reports whether section computation uses nodal
// (rather than element) thicknesses.
func (m *Model) UseNodalThicknesses(ctx context.Context) (bool, error) {
	stub, err := m.stub()
	if err != nil {
		return false, err
	}
	return treeobject.GetScalar(ctx, m.base, stub, "", "use_nodal_thicknesses", func(p *ModelProperties) bool { return p.UseNodalThicknesses })
}

// SetUseNodalThicknesses updates that choice.
func (m *Model) SetUseNodalThicknesses(ctx context.Context, v bool) error {
	stub, err := m.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, m.base, stub, "", "use_nodal_thicknesses",
		func(p *ModelProperties) bool { return p.UseNodalThicknesses },
		func(p *ModelProperties, v bool) { p.UseNodalThicknesses = v },
		func(a, b bool) bool { return a == b }, v)
}

// DrapingOffsetCorrection reports whether lay-up thickness is considered in
// draping analysis.
func (m *Model) DrapingOffsetCorrection(ctx context.Context) (bool, error) {
	stub, err := m.stub()
	if err != nil {
		return false, err
	}
	return treeobject.GetScalar(ctx, m.base, stub, "", "draping_offset_correction", func(p *ModelProperties) bool { return p.DrapingOffsetCorrection })
}

// SetDrapingOffsetCorrection updates that choice.
func (m *Model) SetDrapingOffsetCorrection(ctx context.Context, v bool) error {
	stub, err := m.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, m.base, stub, "", "draping_offset_correction",
		func(p *ModelProperties) bool { return p.DrapingOffsetCorrection },
		func(p *ModelProperties, v bool) { p.DrapingOffsetCorrection = v },
		func(a, b bool) bool { return a == b }, v)
}

// AngleTolerance returns the section computation angle tolerance, in
// degrees.
func (m *Model) AngleTolerance(ctx context.Context) (float64, error) {
	stub, err := m.stub()
	if err != nil {
		return 0, err
	}
	return treeobject.GetScalar(ctx, m.base, stub, "", "angle_tolerance", func(p *ModelProperties) float64 { return p.AngleTolerance })
}

// SetAngleTolerance updates the angle tolerance.
func (m *Model) SetAngleTolerance(ctx context.Context, v float64) error {
	stub, err := m.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, m.base, stub, "", "angle_tolerance",
		func(p *ModelProperties) float64 { return p.AngleTolerance },
		func(p *ModelProperties, v float64) { p.AngleTolerance = v },
		func(a, b float64) bool { return a == b }, v)
}

// RelativeThicknessTolerance returns the section computation relative
// thickness tolerance.
func (m *Model) RelativeThicknessTolerance(ctx context.Context) (float64, error) {
	stub, err := m.stub()
	if err != nil {
		return 0, err
	}
	return treeobject.GetScalar(ctx, m.base, stub, "", "relative_thickness_tolerance", func(p *ModelProperties) float64 { return p.RelativeThicknessTolerance })
}

// SetRelativeThicknessTolerance updates the relative thickness tolerance.
func (m *Model) SetRelativeThicknessTolerance(ctx context.Context, v float64) error {
	stub, err := m.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, m.base, stub, "", "relative_thickness_tolerance",
		func(p *ModelProperties) float64 { return p.RelativeThicknessTolerance },
		func(p *ModelProperties, v float64) { p.RelativeThicknessTolerance = v },
		func(a, b float64) bool { return a == b }, v)
}

// MinimumAnalysisPlyThickness returns the section computation minimum
// analysis ply thickness, in the model's length unit.
func (m *Model) MinimumAnalysisPlyThickness(ctx context.Context) (float64, error) {
	stub, err := m.stub()
	if err != nil {
		return 0, err
	}
	return treeobject.GetScalar(ctx, m.base, stub, "", "minimum_analysis_ply_thickness", func(p *ModelProperties) float64 { return p.MinimumAnalysisPlyThickness })
}

// SetMinimumAnalysisPlyThickness updates the minimum analysis ply
// thickness.
func (m *Model) SetMinimumAnalysisPlyThickness(ctx context.Context, v float64) error {
	stub, err := m.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, m.base, stub, "", "minimum_analysis_ply_thickness",
		func(p *ModelProperties) float64 { return p.MinimumAnalysisPlyThickness },
		func(p *ModelProperties, v float64) { p.MinimumAnalysisPlyThickness = v },
		func(a, b float64) bool { return a == b }, v)
}

// UnitSystem returns the model's unit system.
func (m *Model) UnitSystem(ctx context.Context) (UnitSystem, error) {
	stub, err := m.stub()
	if err != nil {
		return "", err
	}
	return treeobject.GetScalar(ctx, m.base, stub, "", "unit_system", func(p *ModelProperties) UnitSystem { return p.UnitSystem })
}

// Update recomputes server-derived state for the model: analysis plies,
// solid model caches, and similar materialized views. With relationsOnly
// set, only cross-object relations are recomputed, skipping the heavier
// mesh-derived views.
func (m *Model) Update(ctx context.Context, relationsOnly bool) error {
	stub, err := m.stub()
	if err != nil {
		return err
	}
	return stub.Update(ctx, m.base.ResourcePath(), relationsOnly)
}

// Save persists the full model to path. saveCache controls whether update
// results (analysis plies, solid models) are included.
func (m *Model) Save(ctx context.Context, path string, saveCache bool) error {
	stub, err := m.stub()
	if err != nil {
		return err
	}
	server, err := m.base.Server()
	if err != nil {
		return err
	}
	return filetransfer.AutoDownload(ctx, server.FileTransfer, path, func(exportPath string) error {
		return stub.SaveToFile(ctx, m.base.ResourcePath(), exportPath, saveCache)
	})
}

// SaveAnalysisModel persists the resolved analysis model to path.
func (m *Model) SaveAnalysisModel(ctx context.Context, path string) error {
	stub, err := m.stub()
	if err != nil {
		return err
	}
	server, err := m.base.Server()
	if err != nil {
		return err
	}
	return filetransfer.AutoDownload(ctx, server.FileTransfer, path, func(exportPath string) error {
		return stub.SaveAnalysisModel(ctx, m.base.ResourcePath(), exportPath)
	})
}

// ExportShellCompositeDefinitions writes the shell lay-up as HDF5 to path,
// for consumption by downstream post-processing tools.
func (m *Model) ExportShellCompositeDefinitions(ctx context.Context, path string) error {
	stub, err := m.stub()
	if err != nil {
		return err
	}
	server, err := m.base.Server()
	if err != nil {
		return err
	}
	return filetransfer.AutoDownload(ctx, server.FileTransfer, path, func(exportPath string) error {
		return stub.SaveShellCompositeDefinitions(ctx, m.base.ResourcePath(), exportPath)
	})
}

// Materials returns a read-through keyed view over the model's materials.
func (m *Model) Materials() *mapping.Mapping[*Material] {
	return mapping.New(
		func(ctx context.Context) ([]*Material, error) {
			server, err := m.base.Server()
			if err != nil {
				return nil, err
			}
			stub := newMaterialStub(server.Channel)
			collectionPath := resourcepath.FromString(m.base.ResourcePath().String() + "/" + MaterialCollectionLabel)
			infos, err := stub.List(ctx, collectionPath)
			if err != nil {
				return nil, err
			}
			if m.materials == nil {
				m.materials = handlecache.New[Material]()
			}
			out := make([]*Material, len(infos))
			for i, oi := range infos {
				key := oi.Info.ResourcePath.String()
				out[i] = m.materials.FromObjectInfo(key, func() *Material { return &Material{base: treeobject.NewStored(oi, server)} })
			}
			return out, nil
		},
		func(ctx context.Context, key string) error {
			server, err := m.base.Server()
			if err != nil {
				return err
			}
			stub := newMaterialStub(server.Channel)
			material, found := m.materials.Lookup(key)
			if !found {
				return apperror.Newf(apperror.KindNotFound, "no material cached for %s", key)
			}
			if err := material.base.Delete(ctx, stub); err != nil {
				return err
			}
			m.materials.Evict(key)
			return nil
		},
	)
}

// CreateMaterial stores material under this model and registers it in the
// model's handle cache.
func (m *Model) CreateMaterial(ctx context.Context, material *Material) (*Material, error) {
	server, err := m.base.Server()
	if err != nil {
		return nil, err
	}
	if err := material.create(ctx, server, m.base.ResourcePath()); err != nil {
		return nil, err
	}
	if m.materials == nil {
		m.materials = handlecache.New[Material]()
	}
	key := material.ResourcePath().String()
	return m.materials.FromObjectInfo(key, func() *Material { return material }), nil
}

func (m *Model) storeMaterial(ctx context.Context, material *Material) error {
	_, err := m.CreateMaterial(ctx, material)
	return err
}

// Fabrics returns a read-through keyed view over the model's fabrics.
func (m *Model) Fabrics() *mapping.Mapping[*Fabric] {
	return mapping.New(
		func(ctx context.Context) ([]*Fabric, error) {
			server, err := m.base.Server()
			if err != nil {
				return nil, err
			}
			stub := newFabricStub(server.Channel)
			collectionPath := resourcepath.FromString(m.base.ResourcePath().String() + "/" + FabricCollectionLabel)
			infos, err := stub.List(ctx, collectionPath)
			if err != nil {
				return nil, err
			}
			if m.fabrics == nil {
				m.fabrics = handlecache.New[Fabric]()
			}
			out := make([]*Fabric, len(infos))
			for i, oi := range infos {
				key := oi.Info.ResourcePath.String()
				out[i] = m.fabrics.FromObjectInfo(key, func() *Fabric { return &Fabric{base: treeobject.NewStored(oi, server)} })
			}
			return out, nil
		},
		func(ctx context.Context, key string) error {
			server, err := m.base.Server()
			if err != nil {
				return err
			}
			stub := newFabricStub(server.Channel)
			fabric, found := m.fabrics.Lookup(key)
			if !found {
				return apperror.Newf(apperror.KindNotFound, "no fabric cached for %s", key)
			}
			if err := fabric.base.Delete(ctx, stub); err != nil {
				return err
			}
			m.fabrics.Evict(key)
			return nil
		},
	)
}

// CreateFabric stores fabric under this model and registers it in the
// model's handle cache.
func (m *Model) CreateFabric(ctx context.Context, fabric *Fabric) (*Fabric, error) {
	server, err := m.base.Server()
	if err != nil {
		return nil, err
	}
	if err := fabric.create(ctx, server, m.base.ResourcePath()); err != nil {
		return nil, err
	}
	if m.fabrics == nil {
		m.fabrics = handlecache.New[Fabric]()
	}
	key := fabric.ResourcePath().String()
	return m.fabrics.FromObjectInfo(key, func() *Fabric { return fabric }), nil
}

func (m *Model) storeFabric(ctx context.Context, fabric *Fabric) error {
	_, err := m.CreateFabric(ctx, fabric)
	return err
}

// Rosettes returns a read-through keyed view over the model's rosettes.
func (m *Model) Rosettes() *mapping.Mapping[*Rosette] {
	return mapping.New(
		func(ctx context.Context) ([]*Rosette, error) {
			server, err := m.base.Server()
			if err != nil {
				return nil, err
			}
			stub := newRosetteStub(server.Channel)
			collectionPath := resourcepath.FromString(m.base.ResourcePath().String() + "/" + RosetteCollectionLabel)
			infos, err := stub.List(ctx, collectionPath)
			if err != nil {
				return nil, err
			}
			if m.rosettes == nil {
				m.rosettes = handlecache.New[Rosette]()
			}
			out := make([]*Rosette, len(infos))
			for i, oi := range infos {
				key := oi.Info.ResourcePath.String()
				out[i] = m.rosettes.FromObjectInfo(key, func() *Rosette { return &Rosette{base: treeobject.NewStored(oi, server)} })
			}
			return out, nil
		},
		func(ctx context.Context, key string) error {
			server, err := m.base.Server()
			if err != nil {
				return err
			}
			stub := newRosetteStub(server.Channel)
			rosette, found := m.rosettes.Lookup(key)
			if !found {
				return apperror.Newf(apperror.KindNotFound, "no rosette cached for %s", key)
			}
			if err := rosette.base.Delete(ctx, stub); err != nil {
				return err
			}
			m.rosettes.Evict(key)
			return nil
		},
	)
}

// CreateRosette stores rosette under this model and registers it in the
// model's handle cache.
func (m *Model) CreateRosette(ctx context.Context, rosette *Rosette) (*Rosette, error) {
	server, err := m.base.Server()
	if err != nil {
		return nil, err
	}
	if err := rosette.create(ctx, server, m.base.ResourcePath()); err != nil {
		return nil, err
	}
	if m.rosettes == nil {
		m.rosettes = handlecache.New[Rosette]()
	}
	key := rosette.ResourcePath().String()
	return m.rosettes.FromObjectInfo(key, func() *Rosette { return rosette }), nil
}

func (m *Model) storeRosette(ctx context.Context, rosette *Rosette) error {
	_, err := m.CreateRosette(ctx, rosette)
	return err
}

// ElementSets returns a read-through keyed view over the model's element
// sets.
func (m *Model) ElementSets() *mapping.Mapping[*ElementSet] {
	return mapping.New(
		func(ctx context.Context) ([]*ElementSet, error) {
			server, err := m.base.Server()
			if err != nil {
				return nil, err
			}
			stub := newElementSetStub(server.Channel)
			collectionPath := resourcepath.FromString(m.base.ResourcePath().String() + "/" + ElementSetCollectionLabel)
			infos, err := stub.List(ctx, collectionPath)
			if err != nil {
				return nil, err
			}
			if m.elementSets == nil {
				m.elementSets = handlecache.New[ElementSet]()
			}
			out := make([]*ElementSet, len(infos))
			for i, oi := range infos {
				key := oi.Info.ResourcePath.String()
				out[i] = m.elementSets.FromObjectInfo(key, func() *ElementSet { return &ElementSet{base: treeobject.NewStored(oi, server)} })
			}
			return out, nil
		},
		func(ctx context.Context, key string) error {
			server, err := m.base.Server()
			if err != nil {
				return err
			}
			stub := newElementSetStub(server.Channel)
			set, found := m.elementSets.Lookup(key)
			if !found {
				return apperror.Newf(apperror.KindNotFound, "no element set cached for %s", key)
			}
			if err := set.base.Delete(ctx, stub); err != nil {
				return err
			}
			m.elementSets.Evict(key)
			return nil
		},
	)
}

// CreateElementSet stores set under this model and registers it in the
// model's handle cache.
func (m *Model) CreateElementSet(ctx context.Context, set *ElementSet) (*ElementSet, error) {
	server, err := m.base.Server()
	if err != nil {
		return nil, err
	}
	if err := set.create(ctx, server, m.base.ResourcePath()); err != nil {
		return nil, err
	}
	if m.elementSets == nil {
		m.elementSets = handlecache.New[ElementSet]()
	}
	key := set.ResourcePath().String()
	return m.elementSets.FromObjectInfo(key, func() *ElementSet { return set }), nil
}

func (m *Model) storeElementSet(ctx context.Context, set *ElementSet) error {
	_, err := m.CreateElementSet(ctx, set)
	return err
}

// OrientedSelectionSets returns a read-through keyed view over the model's
// oriented selection sets.
func (m *Model) OrientedSelectionSets() *mapping.Mapping[*OrientedSelectionSet] {
	return mapping.New(
		func(ctx context.Context) ([]*OrientedSelectionSet, error) {
			server, err := m.base.Server()
			if err != nil {
				return nil, err
			}
			stub := newOrientedSelectionSetStub(server.Channel)
			collectionPath := resourcepath.FromString(m.base.ResourcePath().String() + "/" + OrientedSelectionSetCollectionLabel)
			infos, err := stub.List(ctx, collectionPath)
			if err != nil {
				return nil, err
			}
			if m.orientedSelectionSets == nil {
				m.orientedSelectionSets = handlecache.New[OrientedSelectionSet]()
			}
			out := make([]*OrientedSelectionSet, len(infos))
			for i, oi := range infos {
				key := oi.Info.ResourcePath.String()
				out[i] = m.orientedSelectionSets.FromObjectInfo(key, func() *OrientedSelectionSet {
					return &OrientedSelectionSet{base: treeobject.NewStored(oi, server)}
				})
			}
			return out, nil
		},
		func(ctx context.Context, key string) error {
			server, err := m.base.Server()
			if err != nil {
				return err
			}
			stub := newOrientedSelectionSetStub(server.Channel)
			set, found := m.orientedSelectionSets.Lookup(key)
			if !found {
				return apperror.Newf(apperror.KindNotFound, "no oriented selection set cached for %s", key)
			}
			if err := set.base.Delete(ctx, stub); err != nil {
				return err
			}
			m.orientedSelectionSets.Evict(key)
			return nil
		},
	)
}

// CreateOrientedSelectionSet stores set under this model and registers it
// in the model's handle cache.
func (m *Model) CreateOrientedSelectionSet(ctx context.Context, set *OrientedSelectionSet) (*OrientedSelectionSet, error) {
	server, err := m.base.Server()
	if err != nil {
		return nil, err
	}
	if err := set.create(ctx, server, m.base.ResourcePath()); err != nil {
		return nil, err
	}
	if m.orientedSelectionSets == nil {
		m.orientedSelectionSets = handlecache.New[OrientedSelectionSet]()
	}
	key := set.ResourcePath().String()
	return m.orientedSelectionSets.FromObjectInfo(key, func() *OrientedSelectionSet { return set }), nil
}

func (m *Model) storeOrientedSelectionSet(ctx context.Context, set *OrientedSelectionSet) error {
	_, err := m.CreateOrientedSelectionSet(ctx, set)
	return err
}

// ModelingGroups returns a read-through keyed view over the model's
// modeling groups.
func (m *Model) ModelingGroups() *mapping.Mapping[*ModelingGroup] {
	return mapping.New(
		func(ctx context.Context) ([]*ModelingGroup, error) {
			server, err := m.base.Server()
			if err != nil {
				return nil, err
			}
			stub := newModelingGroupStub(server.Channel)
			collectionPath := resourcepath.FromString(m.base.ResourcePath().String() + "/" + ModelingGroupCollectionLabel)
			infos, err := stub.List(ctx, collectionPath)
			if err != nil {
				return nil, err
			}
			if m.modelingGroups == nil {
				m.modelingGroups = handlecache.New[ModelingGroup]()
			}
			out := make([]*ModelingGroup, len(infos))
			for i, oi := range infos {
				key := oi.Info.ResourcePath.String()
				out[i] = m.modelingGroups.FromObjectInfo(key, func() *ModelingGroup {
					return &ModelingGroup{base: treeobject.NewStored(oi, server)}
				})
			}
			return out, nil
		},
		func(ctx context.Context, key string) error {
			server, err := m.base.Server()
			if err != nil {
				return err
			}
			stub := newModelingGroupStub(server.Channel)
			group, found := m.modelingGroups.Lookup(key)
			if !found {
				return apperror.Newf(apperror.KindNotFound, "no modeling group cached for %s", key)
			}
			if err := group.base.Delete(ctx, stub); err != nil {
				return err
			}
			m.modelingGroups.Evict(key)
			return nil
		},
	)
}

// CreateModelingGroup stores group under this model and registers it in the
// model's handle cache.
func (m *Model) CreateModelingGroup(ctx context.Context, group *ModelingGroup) (*ModelingGroup, error) {
	server, err := m.base.Server()
	if err != nil {
		return nil, err
	}
	if err := group.create(ctx, server, m.base.ResourcePath()); err != nil {
		return nil, err
	}
	if m.modelingGroups == nil {
		m.modelingGroups = handlecache.New[ModelingGroup]()
	}
	key := group.ResourcePath().String()
	return m.modelingGroups.FromObjectInfo(key, func() *ModelingGroup { return group }), nil
}

func (m *Model) storeModelingGroup(ctx context.Context, group *ModelingGroup) error {
	_, err := m.CreateModelingGroup(ctx, group)
	return err
}

// SolidModels returns a read-through keyed view over the model's solid
// models.
func (m *Model) SolidModels() *mapping.Mapping[*SolidModel] {
	return mapping.New(
		func(ctx context.Context) ([]*SolidModel, error) {
			server, err := m.base.Server()
			if err != nil {
				return nil, err
			}
			stub := newSolidModelStub(server.Channel)
			collectionPath := resourcepath.FromString(m.base.ResourcePath().String() + "/" + SolidModelCollectionLabel)
			infos, err := stub.List(ctx, collectionPath)
			if err != nil {
				return nil, err
			}
			if m.solidModels == nil {
				m.solidModels = handlecache.New[SolidModel]()
			}
			out := make([]*SolidModel, len(infos))
			for i, oi := range infos {
				key := oi.Info.ResourcePath.String()
				out[i] = m.solidModels.FromObjectInfo(key, func() *SolidModel { return &SolidModel{base: treeobject.NewStored(oi, server)} })
			}
			return out, nil
		},
		func(ctx context.Context, key string) error {
			server, err := m.base.Server()
			if err != nil {
				return err
			}
			stub := newSolidModelStub(server.Channel)
			solidModel, found := m.solidModels.Lookup(key)
			if !found {
				return apperror.Newf(apperror.KindNotFound, "no solid model cached for %s", key)
			}
			if err := solidModel.base.Delete(ctx, stub); err != nil {
				return err
			}
			m.solidModels.Evict(key)
			return nil
		},
	)
}

// CreateSolidModel stores solidModel under this model and registers it in
// the model's handle cache.
func (m *Model) CreateSolidModel(ctx context.Context, solidModel *SolidModel) (*SolidModel, error) {
	server, err := m.base.Server()
	if err != nil {
		return nil, err
	}
	if err := solidModel.create(ctx, server, m.base.ResourcePath()); err != nil {
		return nil, err
	}
	if m.solidModels == nil {
		m.solidModels = handlecache.New[SolidModel]()
	}
	key := solidModel.ResourcePath().String()
	return m.solidModels.FromObjectInfo(key, func() *SolidModel { return solidModel }), nil
}

func (m *Model) storeSolidModel(ctx context.Context, solidModel *SolidModel) error {
	_, err := m.CreateSolidModel(ctx, solidModel)
	return err
}

// ParallelSelectionRules returns a read-through keyed view over the model's
// parallel selection rules.
func (m *Model) ParallelSelectionRules() *mapping.Mapping[*ParallelSelectionRule] {
	return mapping.New(
		func(ctx context.Context) ([]*ParallelSelectionRule, error) {
			server, err := m.base.Server()
			if err != nil {
				return nil, err
			}
			stub := newParallelSelectionRuleStub(server.Channel)
			collectionPath := resourcepath.FromString(m.base.ResourcePath().String() + "/" + ParallelSelectionRuleCollectionLabel)
			infos, err := stub.List(ctx, collectionPath)
			if err != nil {
				return nil, err
			}
			if m.parallelRules == nil {
				m.parallelRules = handlecache.New[ParallelSelectionRule]()
			}
			out := make([]*ParallelSelectionRule, len(infos))
			for i, oi := range infos {
				key := oi.Info.ResourcePath.String()
				out[i] = m.parallelRules.FromObjectInfo(key, func() *ParallelSelectionRule {
					return &ParallelSelectionRule{base: treeobject.NewStored(oi, server)}
				})
			}
			return out, nil
		},
		func(ctx context.Context, key string) error {
			server, err := m.base.Server()
			if err != nil {
				return err
			}
			stub := newParallelSelectionRuleStub(server.Channel)
			rule, found := m.parallelRules.Lookup(key)
			if !found {
				return apperror.Newf(apperror.KindNotFound, "no parallel selection rule cached for %s", key)
			}
			if err := rule.base.Delete(ctx, stub); err != nil {
				return err
			}
			m.parallelRules.Evict(key)
			return nil
		},
	)
}

// CreateParallelSelectionRule stores rule under this model.
func (m *Model) CreateParallelSelectionRule(ctx context.Context, rule *ParallelSelectionRule) (*ParallelSelectionRule, error) {
	server, err := m.base.Server()
	if err != nil {
		return nil, err
	}
	if err := rule.create(ctx, server, m.base.ResourcePath()); err != nil {
		return nil, err
	}
	if m.parallelRules == nil {
		m.parallelRules = handlecache.New[ParallelSelectionRule]()
	}
	key := rule.ResourcePath().String()
	return m.parallelRules.FromObjectInfo(key, func() *ParallelSelectionRule { return rule }), nil
}

func (m *Model) storeParallelSelectionRule(ctx context.Context, rule *ParallelSelectionRule) error {
	_, err := m.CreateParallelSelectionRule(ctx, rule)
	return err
}

// CylindricalSelectionRules returns a read-through keyed view over the
// model's cylindrical selection rules.
func (m *Model) CylindricalSelectionRules() *mapping.Mapping[*CylindricalSelectionRule] {
	return mapping.New(
		func(ctx context.Context) ([]*CylindricalSelectionRule, error) {
			server, err := m.base.Server()
			if err != nil {
				return nil, err
			}
			stub := newCylindricalSelectionRuleStub(server.Channel)
			collectionPath := resourcepath.FromString(m.base.ResourcePath().String() + "/" + CylindricalSelectionRuleCollectionLabel)
			infos, err := stub.List(ctx, collectionPath)
			if err != nil {
				return nil, err
			}
			if m.cylindricalRules == nil {
				m.cylindricalRules = handlecache.New[CylindricalSelectionRule]()
			}
			out := make([]*CylindricalSelectionRule, len(infos))
			for i, oi := range infos {
				key := oi.Info.ResourcePath.String()
				out[i] = m.cylindricalRules.FromObjectInfo(key, func() *CylindricalSelectionRule {
					return &CylindricalSelectionRule{base: treeobject.NewStored(oi, server)}
				})
			}
			return out, nil
		},
		func(ctx context.Context, key string) error {
			server, err := m.base.Server()
			if err != nil {
				return err
			}
			stub := newCylindricalSelectionRuleStub(server.Channel)
			rule, found := m.cylindricalRules.Lookup(key)
			if !found {
				return apperror.Newf(apperror.KindNotFound, "no cylindrical selection rule cached for %s", key)
			}
			if err := rule.base.Delete(ctx, stub); err != nil {
				return err
			}
			m.cylindricalRules.Evict(key)
			return nil
		},
	)
}

// CreateCylindricalSelectionRule stores rule under this model.
func (m *Model) CreateCylindricalSelectionRule(ctx context.Context, rule *CylindricalSelectionRule) (*CylindricalSelectionRule, error) {
	server, err := m.base.Server()
	if err != nil {
		return nil, err
	}
	if err := rule.create(ctx, server, m.base.ResourcePath()); err != nil {
		return nil, err
	}
	if m.cylindricalRules == nil {
		m.cylindricalRules = handlecache.New[CylindricalSelectionRule]()
	}
	key := rule.ResourcePath().String()
	return m.cylindricalRules.FromObjectInfo(key, func() *CylindricalSelectionRule { return rule }), nil
}

func (m *Model) storeCylindricalSelectionRule(ctx context.Context, rule *CylindricalSelectionRule) error {
	_, err := m.CreateCylindricalSelectionRule(ctx, rule)
	return err
}

// SphericalSelectionRules returns a read-through keyed view over the
// model's spherical selection rules.
func (m *Model) SphericalSelectionRules() *mapping.Mapping[*SphericalSelectionRule] {
	return mapping.New(
		func(ctx context.Context) ([]*SphericalSelectionRule, error) {
			server, err := m.base.Server()
			if err != nil {
				return nil, err
			}
			stub := newSphericalSelectionRuleStub(server.Channel)
			collectionPath := resourcepath.FromString(m.base.ResourcePath().String() + "/" + SphericalSelectionRuleCollectionLabel)
			infos, err := stub.List(ctx, collectionPath)
			if err != nil {
				return nil, err
			}
			if m.sphericalRules == nil {
				m.sphericalRules = handlecache.New[SphericalSelectionRule]()
			}
			out := make([]*SphericalSelectionRule, len(infos))
			for i, oi := range infos {
				key := oi.Info.ResourcePath.String()
				out[i] = m.sphericalRules.FromObjectInfo(key, func() *SphericalSelectionRule {
					return &SphericalSelectionRule{base: treeobject.NewStored(oi, server)}
				})
			}
			return out, nil
		},
		func(ctx context.Context, key string) error {
			server, err := m.base.Server()
			if err != nil {
				return err
			}
			stub := newSphericalSelectionRuleStub(server.Channel)
			rule, found := m.sphericalRules.Lookup(key)
			if !found {
				return apperror.Newf(apperror.KindNotFound, "no spherical selection rule cached for %s", key)
			}
			if err := rule.base.Delete(ctx, stub); err != nil {
				return err
			}
			m.sphericalRules.Evict(key)
			return nil
		},
	)
}

// CreateSphericalSelectionRule stores rule under this model.
func (m *Model) CreateSphericalSelectionRule(ctx context.Context, rule *SphericalSelectionRule) (*SphericalSelectionRule, error) {
	server, err := m.base.Server()
	if err != nil {
		return nil, err
	}
	if err := rule.create(ctx, server, m.base.ResourcePath()); err != nil {
		return nil, err
	}
	if m.sphericalRules == nil {
		m.sphericalRules = handlecache.New[SphericalSelectionRule]()
	}
	key := rule.ResourcePath().String()
	return m.sphericalRules.FromObjectInfo(key, func() *SphericalSelectionRule { return rule }), nil
}

func (m *Model) storeSphericalSelectionRule(ctx context.Context, rule *SphericalSelectionRule) error {
	_, err := m.CreateSphericalSelectionRule(ctx, rule)
	return err
}

// BooleanSelectionRules returns a read-through keyed view over the model's
// boolean selection rules.
func (m *Model) BooleanSelectionRules() *mapping.Mapping[*BooleanSelectionRule] {
	return mapping.New(
		func(ctx context.Context) ([]*BooleanSelectionRule, error) {
			server, err := m.base.Server()
			if err != nil {
				return nil, err
			}
			stub := newBooleanSelectionRuleStub(server.Channel)
			collectionPath := resourcepath.FromString(m.base.ResourcePath().String() + "/" + BooleanSelectionRuleCollectionLabel)
			infos, err := stub.List(ctx, collectionPath)
			if err != nil {
				return nil, err
			}
			if m.booleanRules == nil {
				m.booleanRules = handlecache.New[BooleanSelectionRule]()
			}
			out := make([]*BooleanSelectionRule, len(infos))
			for i, oi := range infos {
				key := oi.Info.ResourcePath.String()
				out[i] = m.booleanRules.FromObjectInfo(key, func() *BooleanSelectionRule {
					return &BooleanSelectionRule{base: treeobject.NewStored(oi, server)}
				})
			}
			return out, nil
		},
		func(ctx context.Context, key string) error {
			server, err := m.base.Server()
			if err != nil {
				return err
			}
			stub := newBooleanSelectionRuleStub(server.Channel)
			rule, found := m.booleanRules.Lookup(key)
			if !found {
				return apperror.Newf(apperror.KindNotFound, "no boolean selection rule cached for %s", key)
			}
			if err := rule.base.Delete(ctx, stub); err != nil {
				return err
			}
			m.booleanRules.Evict(key)
			return nil
		},
	)
}

// CreateBooleanSelectionRule stores rule under this model.
func (m *Model) CreateBooleanSelectionRule(ctx context.Context, rule *BooleanSelectionRule) (*BooleanSelectionRule, error) {
	server, err := m.base.Server()
	if err != nil {
		return nil, err
	}
	if err := rule.create(ctx, server, m.base.ResourcePath()); err != nil {
		return nil, err
	}
	if m.booleanRules == nil {
		m.booleanRules = handlecache.New[BooleanSelectionRule]()
	}
	key := rule.ResourcePath().String()
	return m.booleanRules.FromObjectInfo(key, func() *BooleanSelectionRule { return rule }), nil
}

func (m *Model) storeBooleanSelectionRule(ctx context.Context, rule *BooleanSelectionRule) error {
	_, err := m.CreateBooleanSelectionRule(ctx, rule)
	return err
}

// CutoffSelectionRules returns a read-through keyed view over the model's
// cutoff selection rules.
func (m *Model) CutoffSelectionRules() *mapping.Mapping[*CutoffSelectionRule] {
	return mapping.New(
		func(ctx context.Context) ([]*CutoffSelectionRule, error) {
			server, err := m.base.Server()
			if err != nil {
				return nil, err
			}
			stub := newCutoffSelectionRuleStub(server.Channel)
			collectionPath := resourcepath.FromString(m.base.ResourcePath().String() + "/" + CutoffSelectionRuleCollectionLabel)
			infos, err := stub.List(ctx, collectionPath)
			if err != nil {
				return nil, err
			}
			if m.cutoffRules == nil {
				m.cutoffRules = handlecache.New[CutoffSelectionRule]()
			}
			out := make([]*CutoffSelectionRule, len(infos))
			for i, oi := range infos {
				key := oi.Info.ResourcePath.String()
				out[i] = m.cutoffRules.FromObjectInfo(key, func() *CutoffSelectionRule {
					return &CutoffSelectionRule{base: treeobject.NewStored(oi, server)}
				})
			}
			return out, nil
		},
		func(ctx context.Context, key string) error {
			server, err := m.base.Server()
			if err != nil {
				return err
			}
			stub := newCutoffSelectionRuleStub(server.Channel)
			rule, found := m.cutoffRules.Lookup(key)
			if !found {
				return apperror.Newf(apperror.KindNotFound, "no cutoff selection rule cached for %s", key)
			}
			if err := rule.base.Delete(ctx, stub); err != nil {
				return err
			}
			m.cutoffRules.Evict(key)
			return nil
		},
	)
}

// CreateCutoffSelectionRule stores rule under this model.
func (m *Model) CreateCutoffSelectionRule(ctx context.Context, rule *CutoffSelectionRule) (*CutoffSelectionRule, error) {
	server, err := m.base.Server()
	if err != nil {
		return nil, err
	}
	if err := rule.create(ctx, server, m.base.ResourcePath()); err != nil {
		return nil, err
	}
	if m.cutoffRules == nil {
		m.cutoffRules = handlecache.New[CutoffSelectionRule]()
	}
	key := rule.ResourcePath().String()
	return m.cutoffRules.FromObjectInfo(key, func() *CutoffSelectionRule { return rule }), nil
}

func (m *Model) storeCutoffSelectionRule(ctx context.Context, rule *CutoffSelectionRule) error {
	_, err := m.CreateCutoffSelectionRule(ctx, rule)
	return err
}

// Get refreshes the model's properties from the server.
func (m *Model) Get(ctx context.Context) error {
	stub, err := m.stub()
	if err != nil {
		return err
	}
	return m.base.Get(ctx, stub)
}

// Delete removes the model from the server.
func (m *Model) Delete(ctx context.Context) error {
	stub, err := m.stub()
	if err != nil {
		return err
	}
	return m.base.Delete(ctx, stub)
}

func (m *Model) create(ctx context.Context, server *treeobject.ServerWrapper, parentPath resourcepath.Path) error {
	if m.stubs == nil {
		m.stubs = stubstore.New(func() ModelStub { return newModelStub(server.Channel) })
	}
	return m.base.Create(ctx, newModelStub(server.Channel), parentPath, ModelCollectionLabel, server)
}

// ParentPath is empty: a model is the root of its own tree.
func (m *Model) ParentPath() resourcepath.Path { return resourcepath.Empty }

// Clone returns an unstored copy of this model, for use by
// recursiveclone.Copy when duplicating a whole tree onto a fresh server
// instance.
func (m *Model) Clone() recursiveclone.Node {
	cloned := m.base.Properties().Clone().(*ModelProperties)
	return &Model{base: treeobject.NewUnstored(m.base.Name(), cloned)}
}

// CloneUnlinked returns an unstored copy. A model's own properties carry no
// links, so this is equivalent to Clone; it exists for symmetry with every
// other entity's CloneUnlinked.
func (m *Model) CloneUnlinked() *Model {
	cloned := m.base.Properties().Clone().(*ModelProperties)
	cloned.ClearLinks()
	return &Model{base: treeobject.NewUnstored(m.base.Name(), cloned)}
}

// ChildObjects returns every material, fabric, rosette, element set,
// oriented selection set, modeling group, and solid model currently in the
// model, so recursiveclone.Copy recreates them. Selection rules are not
// returned, so Copy does not recreate the model's selection-rule collections.
func (m *Model) ChildObjects() []recursiveclone.Node {
	if !m.IsStored() {
		return nil
	}
	ctx := context.Background()
	var out []recursiveclone.Node

	if vs, err := m.Materials().Values(ctx); err == nil {
		for _, v := range vs {
			out = append(out, v)
		}
	}
	if vs, err := m.Fabrics().Values(ctx); err == nil {
		for _, v := range vs {
			out = append(out, v)
		}
	}
	if vs, err := m.Rosettes().Values(ctx); err == nil {
		for _, v := range vs {
			out = append(out, v)
		}
	}
	if vs, err := m.ElementSets().Values(ctx); err == nil {
		for _, v := range vs {
			out = append(out, v)
		}
	}
	if vs, err := m.OrientedSelectionSets().Values(ctx); err == nil {
		for _, v := range vs {
			out = append(out, v)
		}
	}
	if vs, err := m.ModelingGroups().Values(ctx); err == nil {
		for _, v := range vs {
			out = append(out, v)
		}
	}
	if vs, err := m.SolidModels().Values(ctx); err == nil {
		for _, v := range vs {
			out = append(out, v)
		}
	}
	return out
}

// DirectLinks is empty: a model's own properties hold no links.
func (m *Model) DirectLinks() []recursiveclone.DirectLink { return nil }

// LinkedObjectLists is empty for the same reason.
func (m *Model) LinkedObjectLists() []recursiveclone.LinkedObjectList { return nil }

// EdgePropertyLists is empty for the same reason.
func (m *Model) EdgePropertyLists() []recursiveclone.EdgePropertyList { return nil }

// Store implements recursiveclone.Node. A model is always the root of its
// own tree, never a child stored under another node.
func (m *Model) Store(ctx context.Context, parent recursiveclone.Node) error {
	return apperrorInvalidParent("model", parent)
}
