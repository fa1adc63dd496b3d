package model

import (
	"context"

	"github.com/ansys/acp-client-go/recursiveclone"
	"github.com/ansys/acp-client-go/registry"
	"github.com/ansys/acp-client-go/resourcepath"
	"github.com/ansys/acp-client-go/stubstore"
	"github.com/ansys/acp-client-go/treeobject"
)

// SolidModelCollectionLabel is the resource path collection segment under
// which every model's solid models live.
const SolidModelCollectionLabel = "solid_models"

// ExtrusionMethod selects how plies are bundled into layered solid elements
// during extrusion.
type ExtrusionMethod string

const (
	ExtrusionAnalysisPlyWise ExtrusionMethod = "analysis_ply_wise"
	ExtrusionSpecifyThickness ExtrusionMethod = "specify_thickness"
	ExtrusionMaterialWise    ExtrusionMethod = "material_wise"
	ExtrusionSandwichWise    ExtrusionMethod = "sandwich_wise"
	ExtrusionUserDefined     ExtrusionMethod = "user_defined"
)

// SolidModelOffsetDirectionType selects how the extrusion direction is
// re-evaluated across the extrusion.
type SolidModelOffsetDirectionType string

const (
	OffsetDirectionShellNormal   SolidModelOffsetDirectionType = "shell_normal"
	OffsetDirectionSurfaceNormal SolidModelOffsetDirectionType = "surface_normal"
)

// DropOffSettings controls how drop-off elements are handled during solid
// model extrusion. It mirrors the source library's nested
// DropOffSettings attribute, carried here as a plain value rather than its
// own tree object since it has no independent server identity.
type DropOffSettings struct {
	DropOffType                  DropOffType
	DisableDropOffsOnBottom      bool
	DropOffDisabledOnBottomSets  []resourcepath.Path
	DisableDropOffsOnTop         bool
	DropOffDisabledOnTopSets     []resourcepath.Path
	ConnectButtJoinedPlies       bool
}

// DropOffType determines whether a ply's drop-off sits inside or outside
// the ply's boundary.
type DropOffType string

const (
	DropOffInsidePly  DropOffType = "inside_ply"
	DropOffOutsidePly DropOffType = "outside_ply"
)

// DefaultDropOffSettings returns the constructor defaults used by
// NewSolidModel: drop-offs inside the ply, enabled on both surfaces, and
// butt-joined plies connected.
func DefaultDropOffSettings() DropOffSettings {
	return DropOffSettings{DropOffType: DropOffInsidePly, ConnectButtJoinedPlies: true}
}

// SolidModelExportSettings controls the index numbering and scope used when
// exporting a solid model, carried as a plain value for the same reason as
// DropOffSettings.
type SolidModelExportSettings struct {
	UseDefaultSectionIndex         bool
	SectionIndex                   int32
	UseDefaultCoordinateSystemIndex bool
	CoordinateSystemIndex          int32
	UseDefaultMaterialIndex        bool
	MaterialIndex                  int32
	UseDefaultNodeIndex            bool
	NodeIndex                      int32
	UseDefaultElementIndex         bool
	ElementIndex                   int32
	UseSolshElements               bool
	WriteDegeneratedElements       bool
	DropHangingNodes               bool
	UseSolidModelPrefix            bool
	TransferAllSets                bool
	TransferredElementSets         []resourcepath.Path
	TransferredEdgeSets            []resourcepath.Path
}

// DefaultSolidModelExportSettings returns the constructor defaults used by
// NewSolidModel.
func DefaultSolidModelExportSettings() SolidModelExportSettings {
	return SolidModelExportSettings{
		UseDefaultSectionIndex:          true,
		UseDefaultCoordinateSystemIndex: true,
		UseDefaultMaterialIndex:         true,
		UseDefaultNodeIndex:             true,
		UseDefaultElementIndex:          true,
		WriteDegeneratedElements:        true,
		DropHangingNodes:                true,
		UseSolidModelPrefix:             true,
		TransferAllSets:                 true,
	}
}

// SolidModelProperties is the wire payload for a SolidModel. Status and
// Locked are server-computed and read-only. The nested extrusion-guide,
// snap-to-geometry, cut-off-geometry, solid-element-set, analysis-ply, and
// elemental/nodal-data collections the source library exposes on a solid
// model are not carried here: none of their backing entities are part of
// this library's domain entity set (see DESIGN.md).
type SolidModelProperties struct {
	Status Status
	Locked bool

	Active bool

	ElementSetPaths []resourcepath.Path

	ExtrusionMethod       ExtrusionMethod
	MaxElementThickness   float64
	PlyGroupPointerPaths  []resourcepath.Path
	OffsetDirectionType   SolidModelOffsetDirectionType
	SkipElementsWithoutPlies bool

	DropOffMaterialPath resourcepath.Path
	CutOffMaterialPath  resourcepath.Path

	DeleteBadElements bool
	WarpingLimit      float64
	MinimumVolume     float64

	DropOffSettings  DropOffSettings
	ExportSettings   SolidModelExportSettings
}

// Clone returns a deep copy, including every slice-valued field.
func (p *SolidModelProperties) Clone() treeobject.Properties {
	clone := *p
	clone.ElementSetPaths = append([]resourcepath.Path(nil), p.ElementSetPaths...)
	clone.PlyGroupPointerPaths = append([]resourcepath.Path(nil), p.PlyGroupPointerPaths...)
	clone.DropOffSettings.DropOffDisabledOnBottomSets = append([]resourcepath.Path(nil), p.DropOffSettings.DropOffDisabledOnBottomSets...)
	clone.DropOffSettings.DropOffDisabledOnTopSets = append([]resourcepath.Path(nil), p.DropOffSettings.DropOffDisabledOnTopSets...)
	clone.ExportSettings.TransferredElementSets = append([]resourcepath.Path(nil), p.ExportSettings.TransferredElementSets...)
	clone.ExportSettings.TransferredEdgeSets = append([]resourcepath.Path(nil), p.ExportSettings.TransferredEdgeSets...)
	return &clone
}

// LinkedPaths returns every path this solid model references, across its
// own fields and its two nested settings structs.
func (p *SolidModelProperties) LinkedPaths() []resourcepath.Path {
	var out []resourcepath.Path
	out = append(out, p.ElementSetPaths...)
	out = append(out, p.PlyGroupPointerPaths...)
	if !p.DropOffMaterialPath.IsEmpty() {
		out = append(out, p.DropOffMaterialPath)
	}
	if !p.CutOffMaterialPath.IsEmpty() {
		out = append(out, p.CutOffMaterialPath)
	}
	out = append(out, p.DropOffSettings.DropOffDisabledOnBottomSets...)
	out = append(out, p.DropOffSettings.DropOffDisabledOnTopSets...)
	out = append(out, p.ExportSettings.TransferredElementSets...)
	out = append(out, p.ExportSettings.TransferredEdgeSets...)
	return out
}

// ClearLinks empties every link field in place, across both nested settings
// structs.
func (p *SolidModelProperties) ClearLinks() {
	p.ElementSetPaths = nil
	p.PlyGroupPointerPaths = nil
	p.DropOffMaterialPath = resourcepath.Empty
	p.CutOffMaterialPath = resourcepath.Empty
	p.DropOffSettings.DropOffDisabledOnBottomSets = nil
	p.DropOffSettings.DropOffDisabledOnTopSets = nil
	p.ExportSettings.TransferredElementSets = nil
	p.ExportSettings.TransferredEdgeSets = nil
}

// SolidModelStub is the gRPC-facing surface a SolidModel needs.
type SolidModelStub = treeobject.FullStub[*SolidModelProperties]

// SolidModel extrudes a layered solid mesh from a model's shell plies
// (grounded on solid_model.py).
type SolidModel struct {
	base  *treeobject.Base[*SolidModelProperties]
	stubs *stubstore.Store[SolidModelStub]
}

// NewSolidModel creates an unstored solid model. elementSets may each be an
// *ElementSet or *OrientedSelectionSet; plyGroupPointers must be *ModelingPly.
// All must already be stored.
func NewSolidModel(name string, elementSets []any, plyGroupPointers []*ModelingPly) (*SolidModel, error) {
	if name == "" {
		name = "SolidModel"
	}
	elementSetPaths, err := polymorphicStoredPaths(elementSets)
	if err != nil {
		return nil, err
	}
	plyPaths, err := storedPaths(plyGroupPointers, func(m *ModelingPly) treeobject.Linkable { return m.base })
	if err != nil {
		return nil, err
	}
	props := &SolidModelProperties{
		Active:               true,
		ElementSetPaths:      elementSetPaths,
		ExtrusionMethod:      ExtrusionAnalysisPlyWise,
		MaxElementThickness:  1.0,
		PlyGroupPointerPaths: plyPaths,
		OffsetDirectionType:  OffsetDirectionShellNormal,
		DeleteBadElements:    true,
		WarpingLimit:         0.4,
		DropOffSettings:      DefaultDropOffSettings(),
		ExportSettings:       DefaultSolidModelExportSettings(),
	}
	return &SolidModel{base: treeobject.NewUnstored(name, props)}, nil
}

// polymorphicStoredPaths converts a slice of already-stored *ElementSet or
// *OrientedSelectionSet handles into their resource paths.
func polymorphicStoredPaths(targets []any) ([]resourcepath.Path, error) {
	if len(targets) == 0 {
		return nil, nil
	}
	out := make([]resourcepath.Path, len(targets))
	for i, t := range targets {
		var linkable treeobject.Linkable
		switch v := t.(type) {
		case *ElementSet:
			linkable = v.base
		case *OrientedSelectionSet:
			linkable = v.base
		default:
			return nil, apperrorInvalidLinkType(t)
		}
		path, err := treeobject.LinkPathOf(linkable)
		if err != nil {
			return nil, err
		}
		out[i] = path
	}
	return out, nil
}

func init() {
	registry.Register(SolidModelCollectionLabel, registry.CachedConstructor(SolidModelCollectionLabel, func(path resourcepath.Path, server *treeobject.ServerWrapper) *SolidModel {
		return &SolidModel{base: treeobject.NewStored(treeobject.ObjectInfo[*SolidModelProperties]{
			Info: treeobject.Info{ResourcePath: path},
		}, server)}
	}))
}

func (s *SolidModel) stub() (SolidModelStub, error) {
	server, err := s.base.Server()
	if err != nil {
		return nil, err
	}
	if s.stubs == nil {
		s.stubs = stubstore.New(func() SolidModelStub { return newSolidModelStub(server.Channel) })
	}
	return s.stubs.Get(s.base.IsStored())
}

// Name returns the solid model's display name as of the last Get or Put.
func (s *SolidModel) Name() string { return s.base.Name() }

// ResourcePath returns the solid model's resource path, or
// resourcepath.Empty if unstored.
func (s *SolidModel) ResourcePath() resourcepath.Path { return s.base.ResourcePath() }

// IsStored reports whether the solid model has server identity.
func (s *SolidModel) IsStored() bool { return s.base.IsStored() }

// Status returns the server-computed validity status.
func (s *SolidModel) Status(ctx context.Context) (Status, error) {
	stub, err := s.stub()
	if err != nil {
		return "", err
	}
	return treeobject.GetScalar(ctx, s.base, stub, "", "status", func(p *SolidModelProperties) Status { return p.Status })
}

// Locked reports whether the owning model currently has this solid model
// locked against edits.
func (s *SolidModel) Locked(ctx context.Context) (bool, error) {
	stub, err := s.stub()
	if err != nil {
		return false, err
	}
	return treeobject.GetScalar(ctx, s.base, stub, "", "locked", func(p *SolidModelProperties) bool { return p.Locked })
}

// Active reports whether this solid model is computed during analysis.
func (s *SolidModel) Active(ctx context.Context) (bool, error) {
	stub, err := s.stub()
	if err != nil {
		return false, err
	}
	return treeobject.GetScalar(ctx, s.base, stub, "", "active", func(p *SolidModelProperties) bool { return p.Active })
}

// SetActive updates whether this solid model is computed during analysis.
func (s *SolidModel) SetActive(ctx context.Context, v bool) error {
	stub, err := s.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, s.base, stub, "", "active",
		func(p *SolidModelProperties) bool { return p.Active },
		func(p *SolidModelProperties, v bool) { p.Active = v },
		func(a, b bool) bool { return a == b }, v)
}

// ExtrusionMethod returns how plies are bundled into layered solid elements.
func (s *SolidModel) ExtrusionMethod(ctx context.Context) (ExtrusionMethod, error) {
	stub, err := s.stub()
	if err != nil {
		return "", err
	}
	return treeobject.GetScalar(ctx, s.base, stub, "", "extrusion_method", func(p *SolidModelProperties) ExtrusionMethod { return p.ExtrusionMethod })
}

// SetExtrusionMethod updates the bundling method.
func (s *SolidModel) SetExtrusionMethod(ctx context.Context, v ExtrusionMethod) error {
	stub, err := s.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, s.base, stub, "", "extrusion_method",
		func(p *SolidModelProperties) ExtrusionMethod { return p.ExtrusionMethod },
		func(p *SolidModelProperties, v ExtrusionMethod) { p.ExtrusionMethod = v },
		func(a, b ExtrusionMethod) bool { return a == b }, v)
}

// MaxElementThickness returns the thickness threshold that triggers a new
// layered solid element.
func (s *SolidModel) MaxElementThickness(ctx context.Context) (float64, error) {
	stub, err := s.stub()
	if err != nil {
		return 0, err
	}
	return treeobject.GetScalar(ctx, s.base, stub, "", "max_element_thickness", func(p *SolidModelProperties) float64 { return p.MaxElementThickness })
}

// SetMaxElementThickness updates the thickness threshold.
func (s *SolidModel) SetMaxElementThickness(ctx context.Context, v float64) error {
	stub, err := s.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, s.base, stub, "", "max_element_thickness",
		func(p *SolidModelProperties) float64 { return p.MaxElementThickness },
		func(p *SolidModelProperties, v float64) { p.MaxElementThickness = v },
		func(a, b float64) bool { return a == b }, v)
}

// OffsetDirectionType returns how the extrusion direction is defined.
func (s *SolidModel) OffsetDirectionType(ctx context.Context) (SolidModelOffsetDirectionType, error) {
	stub, err := s.stub()
	if err != nil {
		return "", err
	}
	return treeobject.GetScalar(ctx, s.base, stub, "", "offset_direction_type", func(p *SolidModelProperties) SolidModelOffsetDirectionType { return p.OffsetDirectionType })
}

// SetOffsetDirectionType updates the extrusion direction definition.
func (s *SolidModel) SetOffsetDirectionType(ctx context.Context, v SolidModelOffsetDirectionType) error {
	stub, err := s.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, s.base, stub, "", "offset_direction_type",
		func(p *SolidModelProperties) SolidModelOffsetDirectionType { return p.OffsetDirectionType },
		func(p *SolidModelProperties, v SolidModelOffsetDirectionType) { p.OffsetDirectionType = v },
		func(a, b SolidModelOffsetDirectionType) bool { return a == b }, v)
}

// SkipElementsWithoutPlies reports whether elements without plies are
// automatically excluded from extrusion.
func (s *SolidModel) SkipElementsWithoutPlies(ctx context.Context) (bool, error) {
	stub, err := s.stub()
	if err != nil {
		return false, err
	}
	return treeobject.GetScalar(ctx, s.base, stub, "", "skip_elements_without_plies", func(p *SolidModelProperties) bool { return p.SkipElementsWithoutPlies })
}

// SetSkipElementsWithoutPlies updates that choice.
func (s *SolidModel) SetSkipElementsWithoutPlies(ctx context.Context, v bool) error {
	stub, err := s.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, s.base, stub, "", "skip_elements_without_plies",
		func(p *SolidModelProperties) bool { return p.SkipElementsWithoutPlies },
		func(p *SolidModelProperties, v bool) { p.SkipElementsWithoutPlies = v },
		func(a, b bool) bool { return a == b }, v)
}

// DeleteBadElements reports whether a final element shape check removes
// erroneous elements.
func (s *SolidModel) DeleteBadElements(ctx context.Context) (bool, error) {
	stub, err := s.stub()
	if err != nil {
		return false, err
	}
	return treeobject.GetScalar(ctx, s.base, stub, "", "delete_bad_elements", func(p *SolidModelProperties) bool { return p.DeleteBadElements })
}

// SetDeleteBadElements updates that choice.
func (s *SolidModel) SetDeleteBadElements(ctx context.Context, v bool) error {
	stub, err := s.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, s.base, stub, "", "delete_bad_elements",
		func(p *SolidModelProperties) bool { return p.DeleteBadElements },
		func(p *SolidModelProperties, v bool) { p.DeleteBadElements = v },
		func(a, b bool) bool { return a == b }, v)
}

// WarpingLimit returns the maximum allowable element warping before removal,
// only consulted when DeleteBadElements is true.
func (s *SolidModel) WarpingLimit(ctx context.Context) (float64, error) {
	stub, err := s.stub()
	if err != nil {
		return 0, err
	}
	return treeobject.GetScalar(ctx, s.base, stub, "", "warping_limit", func(p *SolidModelProperties) float64 { return p.WarpingLimit })
}

// SetWarpingLimit updates the warping limit.
func (s *SolidModel) SetWarpingLimit(ctx context.Context, v float64) error {
	stub, err := s.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, s.base, stub, "", "warping_limit",
		func(p *SolidModelProperties) float64 { return p.WarpingLimit },
		func(p *SolidModelProperties, v float64) { p.WarpingLimit = v },
		func(a, b float64) bool { return a == b }, v)
}

// MinimumVolume returns the volume threshold below which solid elements are
// removed, only consulted when DeleteBadElements is true.
func (s *SolidModel) MinimumVolume(ctx context.Context) (float64, error) {
	stub, err := s.stub()
	if err != nil {
		return 0, err
	}
	return treeobject.GetScalar(ctx, s.base, stub, "", "minimum_volume", func(p *SolidModelProperties) float64 { return p.MinimumVolume })
}

// SetMinimumVolume updates the volume threshold.
func (s *SolidModel) SetMinimumVolume(ctx context.Context, v float64) error {
	stub, err := s.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, s.base, stub, "", "minimum_volume",
		func(p *SolidModelProperties) float64 { return p.MinimumVolume },
		func(p *SolidModelProperties, v float64) { p.MinimumVolume = v },
		func(a, b float64) bool { return a == b }, v)
}

// DropOffMaterial resolves the material assigned to layered solid drop-off
// elements, returning nil if none is set.
func (s *SolidModel) DropOffMaterial(ctx context.Context) (*Material, error) {
	return s.materialLink(ctx, "drop_off_material", func(p *SolidModelProperties) resourcepath.Path { return p.DropOffMaterialPath })
}

// SetDropOffMaterial updates the drop-off material; a nil target clears it.
func (s *SolidModel) SetDropOffMaterial(ctx context.Context, material *Material) error {
	stub, err := s.stub()
	if err != nil {
		return err
	}
	var target treeobject.Linkable
	if material != nil {
		target = material.base
	}
	return treeobject.SetLinkPath(ctx, s.base, stub, "", "drop_off_material",
		func(p *SolidModelProperties) resourcepath.Path { return p.DropOffMaterialPath },
		func(p *SolidModelProperties, v resourcepath.Path) { p.DropOffMaterialPath = v },
		target, MaterialCollectionLabel)
}

// CutOffMaterial resolves the material assigned to degenerated solid
// cut-off elements, returning nil if none is set.
func (s *SolidModel) CutOffMaterial(ctx context.Context) (*Material, error) {
	return s.materialLink(ctx, "cut_off_material", func(p *SolidModelProperties) resourcepath.Path { return p.CutOffMaterialPath })
}

// SetCutOffMaterial updates the cut-off material; a nil target clears it.
func (s *SolidModel) SetCutOffMaterial(ctx context.Context, material *Material) error {
	stub, err := s.stub()
	if err != nil {
		return err
	}
	var target treeobject.Linkable
	if material != nil {
		target = material.base
	}
	return treeobject.SetLinkPath(ctx, s.base, stub, "", "cut_off_material",
		func(p *SolidModelProperties) resourcepath.Path { return p.CutOffMaterialPath },
		func(p *SolidModelProperties, v resourcepath.Path) { p.CutOffMaterialPath = v },
		target, MaterialCollectionLabel)
}

func (s *SolidModel) materialLink(ctx context.Context, field string, get func(*SolidModelProperties) resourcepath.Path) (*Material, error) {
	stub, err := s.stub()
	if err != nil {
		return nil, err
	}
	path, err := treeobject.GetLinkPath(ctx, s.base, stub, "", field, get)
	if err != nil {
		return nil, err
	}
	if path.IsEmpty() {
		return nil, nil
	}
	server, err := s.base.Server()
	if err != nil {
		return nil, err
	}
	return registry.ResolveAs[*Material](path, server)
}

// ElementSets returns the resource paths of the solid model's extent-defining
// element sets and oriented selection sets. Use ResolvedElementSets to
// obtain resolved handles.
func (s *SolidModel) ElementSets(ctx context.Context) ([]resourcepath.Path, error) {
	stub, err := s.stub()
	if err != nil {
		return nil, err
	}
	paths, err := treeobject.GetScalar(ctx, s.base, stub, "", "element_sets", func(p *SolidModelProperties) []resourcepath.Path { return p.ElementSetPaths })
	if err != nil {
		return nil, err
	}
	return append([]resourcepath.Path(nil), paths...), nil
}

// ResolvedElementSets resolves ElementSets into their concrete *ElementSet
// or *OrientedSelectionSet handles.
func (s *SolidModel) ResolvedElementSets(ctx context.Context) ([]any, error) {
	paths, err := s.ElementSets(ctx)
	if err != nil {
		return nil, err
	}
	server, err := s.base.Server()
	if err != nil {
		return nil, err
	}
	out := make([]any, len(paths))
	for i, path := range paths {
		obj, err := registry.Resolve(path, server)
		if err != nil {
			return nil, err
		}
		out[i] = obj
	}
	return out, nil
}

// SetElementSets republishes the solid model's full extent-defining list.
// Each target must be an already-stored *ElementSet or *OrientedSelectionSet.
func (s *SolidModel) SetElementSets(ctx context.Context, targets []any) error {
	paths, err := polymorphicStoredPaths(targets)
	if err != nil {
		return err
	}
	stub, err := s.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, s.base, stub, "", "element_sets",
		func(p *SolidModelProperties) []resourcepath.Path { return p.ElementSetPaths },
		func(p *SolidModelProperties, v []resourcepath.Path) { p.ElementSetPaths = v },
		func(a, b []resourcepath.Path) bool { return false }, paths)
}

// PlyGroupPointers returns the modeling plies marking an explicit new
// element boundary, only consulted when ExtrusionMethod is
// ExtrusionUserDefined.
func (s *SolidModel) PlyGroupPointers(ctx context.Context) ([]*ModelingPly, error) {
	stub, err := s.stub()
	if err != nil {
		return nil, err
	}
	paths, err := treeobject.GetScalar(ctx, s.base, stub, "", "ply_group_pointers", func(p *SolidModelProperties) []resourcepath.Path { return p.PlyGroupPointerPaths })
	if err != nil {
		return nil, err
	}
	server, err := s.base.Server()
	if err != nil {
		return nil, err
	}
	out := make([]*ModelingPly, len(paths))
	for i, path := range paths {
		ply, err := registry.ResolveAs[*ModelingPly](path, server)
		if err != nil {
			return nil, err
		}
		out[i] = ply
	}
	return out, nil
}

// SetPlyGroupPointers republishes the full ply group pointer list. Each
// target must already be stored.
func (s *SolidModel) SetPlyGroupPointers(ctx context.Context, plies []*ModelingPly) error {
	paths, err := storedPaths(plies, func(m *ModelingPly) treeobject.Linkable { return m.base })
	if err != nil {
		return err
	}
	stub, err := s.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, s.base, stub, "", "ply_group_pointers",
		func(p *SolidModelProperties) []resourcepath.Path { return p.PlyGroupPointerPaths },
		func(p *SolidModelProperties, v []resourcepath.Path) { p.PlyGroupPointerPaths = v },
		func(a, b []resourcepath.Path) bool { return false }, paths)
}

// DropOffSettings returns the solid model's current drop-off handling.
func (s *SolidModel) DropOffSettings(ctx context.Context) (DropOffSettings, error) {
	stub, err := s.stub()
	if err != nil {
		return DropOffSettings{}, err
	}
	return treeobject.GetScalar(ctx, s.base, stub, "", "drop_off_settings", func(p *SolidModelProperties) DropOffSettings { return p.DropOffSettings })
}

// SetDropOffSettings updates the solid model's drop-off handling.
func (s *SolidModel) SetDropOffSettings(ctx context.Context, v DropOffSettings) error {
	stub, err := s.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, s.base, stub, "", "drop_off_settings",
		func(p *SolidModelProperties) DropOffSettings { return p.DropOffSettings },
		func(p *SolidModelProperties, v DropOffSettings) { p.DropOffSettings = v },
		func(a, b DropOffSettings) bool { return false }, v)
}

// ExportSettings returns the solid model's current export configuration.
func (s *SolidModel) ExportSettings(ctx context.Context) (SolidModelExportSettings, error) {
	stub, err := s.stub()
	if err != nil {
		return SolidModelExportSettings{}, err
	}
	return treeobject.GetScalar(ctx, s.base, stub, "", "export_settings", func(p *SolidModelProperties) SolidModelExportSettings { return p.ExportSettings })
}

// SetExportSettings updates the solid model's export configuration.
func (s *SolidModel) SetExportSettings(ctx context.Context, v SolidModelExportSettings) error {
	stub, err := s.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, s.base, stub, "", "export_settings",
		func(p *SolidModelProperties) SolidModelExportSettings { return p.ExportSettings },
		func(p *SolidModelProperties, v SolidModelExportSettings) { p.ExportSettings = v },
		func(a, b SolidModelExportSettings) bool { return false }, v)
}

// Get refreshes the solid model's properties from the server.
func (s *SolidModel) Get(ctx context.Context) error {
	stub, err := s.stub()
	if err != nil {
		return err
	}
	return s.base.Get(ctx, stub)
}

// Delete removes the solid model from its owning model.
func (s *SolidModel) Delete(ctx context.Context) error {
	stub, err := s.stub()
	if err != nil {
		return err
	}
	return s.base.Delete(ctx, stub)
}

func (s *SolidModel) create(ctx context.Context, server *treeobject.ServerWrapper, parentPath resourcepath.Path) error {
	if s.stubs == nil {
		s.stubs = stubstore.New(func() SolidModelStub { return newSolidModelStub(server.Channel) })
	}
	return s.base.Create(ctx, newSolidModelStub(server.Channel), parentPath, SolidModelCollectionLabel, server)
}

// ParentPath returns the resource path of the model owning this solid
// model.
func (s *SolidModel) ParentPath() resourcepath.Path { return s.base.ResourcePath().Parent() }

// Clone returns an unstored copy sharing this solid model's current
// properties, for use by recursiveclone.Copy.
func (s *SolidModel) Clone() recursiveclone.Node {
	cloned := s.base.Properties().Clone().(*SolidModelProperties)
	return &SolidModel{base: treeobject.NewUnstored(s.base.Name(), cloned)}
}

// CloneUnlinked returns an unstored copy with every link field cleared.
func (s *SolidModel) CloneUnlinked() *SolidModel {
	cloned := s.base.Properties().Clone().(*SolidModelProperties)
	cloned.ClearLinks()
	return &SolidModel{base: treeobject.NewUnstored(s.base.Name(), cloned)}
}

// ChildObjects is empty: this library does not model a solid model's
// nested extrusion-guide, snap-to-geometry, or cut-off-geometry
// collections (see DESIGN.md).
func (s *SolidModel) ChildObjects() []recursiveclone.Node { return nil }

// DirectLinks exposes the solid model's two single-valued material links.
func (s *SolidModel) DirectLinks() []recursiveclone.DirectLink {
	props := s.base.Properties()
	server, _ := s.base.Server()
	return []recursiveclone.DirectLink{
		singleMaterialLink(server, &props.DropOffMaterialPath),
		singleMaterialLink(server, &props.CutOffMaterialPath),
	}
}

func singleMaterialLink(server *treeobject.ServerWrapper, path *resourcepath.Path) recursiveclone.DirectLink {
	var target recursiveclone.Node
	if !path.IsEmpty() && server != nil {
		if material, err := registry.ResolveAs[*Material](*path, server); err == nil {
			target = material
		}
	}
	return recursiveclone.DirectLink{
		Target: target,
		Set: func(ctx context.Context, newTarget recursiveclone.Node) error {
			if newTarget == nil {
				*path = resourcepath.Empty
				return nil
			}
			*path = newTarget.ResourcePath()
			return nil
		},
	}
}

// LinkedObjectLists exposes the solid model's element sets, ply group
// pointers, and the linked-object-list fields of its two nested settings
// structs.
func (s *SolidModel) LinkedObjectLists() []recursiveclone.LinkedObjectList {
	props := s.base.Properties()
	server, _ := s.base.Server()
	return []recursiveclone.LinkedObjectList{
		resolvedLinkList(server, props.ElementSetPaths,
			func(p resourcepath.Path) { props.ElementSetPaths = append(props.ElementSetPaths, p) },
			func() { props.ElementSetPaths = nil }),
		resolvedLinkList(server, props.PlyGroupPointerPaths,
			func(p resourcepath.Path) { props.PlyGroupPointerPaths = append(props.PlyGroupPointerPaths, p) },
			func() { props.PlyGroupPointerPaths = nil }),
		resolvedLinkList(server, props.DropOffSettings.DropOffDisabledOnBottomSets,
			func(p resourcepath.Path) {
				props.DropOffSettings.DropOffDisabledOnBottomSets = append(props.DropOffSettings.DropOffDisabledOnBottomSets, p)
			},
			func() { props.DropOffSettings.DropOffDisabledOnBottomSets = nil }),
		resolvedLinkList(server, props.DropOffSettings.DropOffDisabledOnTopSets,
			func(p resourcepath.Path) {
				props.DropOffSettings.DropOffDisabledOnTopSets = append(props.DropOffSettings.DropOffDisabledOnTopSets, p)
			},
			func() { props.DropOffSettings.DropOffDisabledOnTopSets = nil }),
		resolvedLinkList(server, props.ExportSettings.TransferredElementSets,
			func(p resourcepath.Path) {
				props.ExportSettings.TransferredElementSets = append(props.ExportSettings.TransferredElementSets, p)
			},
			func() { props.ExportSettings.TransferredElementSets = nil }),
		resolvedLinkList(server, props.ExportSettings.TransferredEdgeSets,
			func(p resourcepath.Path) {
				props.ExportSettings.TransferredEdgeSets = append(props.ExportSettings.TransferredEdgeSets, p)
			},
			func() { props.ExportSettings.TransferredEdgeSets = nil }),
	}
}

// EdgePropertyLists is empty: a solid model has no edge-property-list
// fields.
func (s *SolidModel) EdgePropertyLists() []recursiveclone.EdgePropertyList { return nil }

// Store implements recursiveclone.Node by creating this (already-cloned)
// solid model under parent.
func (s *SolidModel) Store(ctx context.Context, parent recursiveclone.Node) error {
	owner, ok := parent.(solidModelOwner)
	if !ok {
		return apperrorInvalidParent("solid model", parent)
	}
	return owner.storeSolidModel(ctx, s)
}

// solidModelOwner is implemented by Model.
type solidModelOwner interface {
	storeSolidModel(ctx context.Context, s *SolidModel) error
}
