package model

import (
	"context"

	"github.com/ansys/acp-client-go/recursiveclone"
	"github.com/ansys/acp-client-go/registry"
	"github.com/ansys/acp-client-go/resourcepath"
	"github.com/ansys/acp-client-go/stubstore"
	"github.com/ansys/acp-client-go/treeobject"
)

// Selection rule collection labels, one per concrete rule kind: each kind
// of selection rule is its own resource collection, not a single
// polymorphic one.
const (
	ParallelSelectionRuleCollectionLabel    = "parallel_selection_rules"
	CylindricalSelectionRuleCollectionLabel = "cylindrical_selection_rules"
	SphericalSelectionRuleCollectionLabel   = "spherical_selection_rules"
	BooleanSelectionRuleCollectionLabel     = "boolean_selection_rules"
	CutoffSelectionRuleCollectionLabel      = "cutoff_selection_rules"
)

// BooleanOperationType controls how a LinkedSelectionRule combines with its
// siblings in a selection rule edge list.
type BooleanOperationType string

const (
	BooleanOperationIntersect BooleanOperationType = "intersect"
	BooleanOperationAdd       BooleanOperationType = "add"
	BooleanOperationRemove    BooleanOperationType = "remove"
)

// CutoffRuleType selects how a CutoffSelectionRule defines its cut.
type CutoffRuleType string

const (
	CutoffRuleGeometry CutoffRuleType = "geometry"
	CutoffRuleTaper    CutoffRuleType = "taper"
)

// PlyCutoffType selects the granularity a CutoffSelectionRule cuts at.
type PlyCutoffType string

const (
	PlyCutoffProductionPly PlyCutoffType = "production_ply_cutoff"
	PlyCutoffAnalysisPly   PlyCutoffType = "analysis_ply_cutoff"
)

// LinkedSelectionRule is an edge-property-list element:
// a reference to one polymorphic selection rule plus the parameters that
// control how it combines with its siblings in a ModelingPly or
// BooleanSelectionRule. TemplateRule, Parameter1, and Parameter2 let the
// combination override the linked rule's own parameters without mutating
// the shared rule object itself.
type LinkedSelectionRule struct {
	RulePath     resourcepath.Path
	OperationType BooleanOperationType
	TemplateRule bool
	Parameter1   float64
	Parameter2   float64
}

// Rule resolves the linked selection rule through the polymorphic resolver.
func (l LinkedSelectionRule) Rule(server *treeobject.ServerWrapper) (any, error) {
	return registry.Resolve(l.RulePath, server)
}

// geometricRuleProperties is the field set shared by Parallel, Cylindrical,
// and Spherical selection rules: an origin and optional direction/radius
// resolved either in the global coordinate system or relative to a rosette.
type geometricRuleProperties struct {
	Status Status

	UseGlobalCoordinateSystem bool
	RosettePath               resourcepath.Path
	Origin                    Vector3
	Direction                 Vector3
	Radius                    float64
	RelativeRuleType          bool
	IncludeRuleType           bool
}

func (p geometricRuleProperties) linkedPaths() []resourcepath.Path {
	if p.RosettePath.IsEmpty() {
		return nil
	}
	return []resourcepath.Path{p.RosettePath}
}

// ParallelSelectionRuleProperties is the wire payload for a
// ParallelSelectionRule: a half-space bounded by Direction, offset by
// LowerLimit/UpperLimit from Origin.
type ParallelSelectionRuleProperties struct {
	geometricRuleProperties
	LowerLimit float64
	UpperLimit float64
}

func (p *ParallelSelectionRuleProperties) Clone() treeobject.Properties { c := *p; return &c }
func (p *ParallelSelectionRuleProperties) LinkedPaths() []resourcepath.Path {
	return p.linkedPaths()
}
func (p *ParallelSelectionRuleProperties) ClearLinks() { p.RosettePath = resourcepath.Empty }

// CylindricalSelectionRuleProperties is the wire payload for a
// CylindricalSelectionRule: a cylinder of the given Radius around the axis
// through Origin in Direction.
type CylindricalSelectionRuleProperties struct {
	geometricRuleProperties
}

func (p *CylindricalSelectionRuleProperties) Clone() treeobject.Properties { c := *p; return &c }
func (p *CylindricalSelectionRuleProperties) LinkedPaths() []resourcepath.Path {
	return p.linkedPaths()
}
func (p *CylindricalSelectionRuleProperties) ClearLinks() { p.RosettePath = resourcepath.Empty }

// SphericalSelectionRuleProperties is the wire payload for a
// SphericalSelectionRule: a sphere of the given Radius around Origin.
type SphericalSelectionRuleProperties struct {
	geometricRuleProperties
}

func (p *SphericalSelectionRuleProperties) Clone() treeobject.Properties { c := *p; return &c }
func (p *SphericalSelectionRuleProperties) LinkedPaths() []resourcepath.Path {
	return p.linkedPaths()
}
func (p *SphericalSelectionRuleProperties) ClearLinks() { p.RosettePath = resourcepath.Empty }

// BooleanSelectionRuleProperties is the wire payload for a
// BooleanSelectionRule: a combination of other selection rules.
type BooleanSelectionRuleProperties struct {
	Status          Status
	SelectionRules  []LinkedSelectionRule
	IncludeRuleType bool
}

func (p *BooleanSelectionRuleProperties) Clone() treeobject.Properties {
	clone := *p
	clone.SelectionRules = append([]LinkedSelectionRule(nil), p.SelectionRules...)
	return &clone
}

func (p *BooleanSelectionRuleProperties) LinkedPaths() []resourcepath.Path {
	paths := make([]resourcepath.Path, 0, len(p.SelectionRules))
	for _, r := range p.SelectionRules {
		if !r.RulePath.IsEmpty() {
			paths = append(paths, r.RulePath)
		}
	}
	return paths
}

func (p *BooleanSelectionRuleProperties) ClearLinks() {
	for i := range p.SelectionRules {
		p.SelectionRules[i].RulePath = resourcepath.Empty
	}
}

// CutoffSelectionRuleProperties is the wire payload for a
// CutoffSelectionRule. CutoffGeometryPath and TaperEdgeSetPath are raw
// resource paths rather than typed handles: the geometry and edge-set
// entities they reference are external-geometry collaborators outside this
// library's domain entity set.
type CutoffSelectionRuleProperties struct {
	Status Status

	CutoffRuleType     CutoffRuleType
	CutoffGeometryPath resourcepath.Path
	TaperEdgeSetPath   resourcepath.Path
	Offset             float64
	Angle              float64
	PlyCutoffType      PlyCutoffType
	PlyTapering        bool
}

func (p *CutoffSelectionRuleProperties) Clone() treeobject.Properties { c := *p; return &c }

func (p *CutoffSelectionRuleProperties) LinkedPaths() []resourcepath.Path {
	var out []resourcepath.Path
	if !p.CutoffGeometryPath.IsEmpty() {
		out = append(out, p.CutoffGeometryPath)
	}
	if !p.TaperEdgeSetPath.IsEmpty() {
		out = append(out, p.TaperEdgeSetPath)
	}
	return out
}

func (p *CutoffSelectionRuleProperties) ClearLinks() {
	p.CutoffGeometryPath = resourcepath.Empty
	p.TaperEdgeSetPath = resourcepath.Empty
}

// Stub aliases, one per selection rule kind.
type (
	ParallelSelectionRuleStub    = treeobject.FullStub[*ParallelSelectionRuleProperties]
	CylindricalSelectionRuleStub = treeobject.FullStub[*CylindricalSelectionRuleProperties]
	SphericalSelectionRuleStub   = treeobject.FullStub[*SphericalSelectionRuleProperties]
	BooleanSelectionRuleStub     = treeobject.FullStub[*BooleanSelectionRuleProperties]
	CutoffSelectionRuleStub      = treeobject.FullStub[*CutoffSelectionRuleProperties]
)

// ParallelSelectionRule selects elements within a slab bounded by two
// parallel planes (grounded on parallel_selection_rule.py).
type ParallelSelectionRule struct {
	base  *treeobject.Base[*ParallelSelectionRuleProperties]
	stubs *stubstore.Store[ParallelSelectionRuleStub]
}

// NewParallelSelectionRule creates an unstored parallel selection rule.
func NewParallelSelectionRule(name string, origin, direction Vector3, lowerLimit, upperLimit float64) *ParallelSelectionRule {
	if name == "" {
		name = "ParallelSelectionRule"
	}
	props := &ParallelSelectionRuleProperties{
		geometricRuleProperties: geometricRuleProperties{
			UseGlobalCoordinateSystem: true,
			Origin:                    origin,
			Direction:                 direction,
			IncludeRuleType:           true,
		},
		LowerLimit: lowerLimit,
		UpperLimit: upperLimit,
	}
	return &ParallelSelectionRule{base: treeobject.NewUnstored(name, props)}
}

func init() {
	registry.Register(ParallelSelectionRuleCollectionLabel, registry.CachedConstructor(ParallelSelectionRuleCollectionLabel, func(path resourcepath.Path, server *treeobject.ServerWrapper) *ParallelSelectionRule {
		return &ParallelSelectionRule{base: treeobject.NewStored(treeobject.ObjectInfo[*ParallelSelectionRuleProperties]{
			Info: treeobject.Info{ResourcePath: path},
		}, server)}
	}))
}

func (r *ParallelSelectionRule) stub() (ParallelSelectionRuleStub, error) {
	server, err := r.base.Server()
	if err != nil {
		return nil, err
	}
	if r.stubs == nil {
		r.stubs = stubstore.New(func() ParallelSelectionRuleStub { return newParallelSelectionRuleStub(server.Channel) })
	}
	return r.stubs.Get(r.base.IsStored())
}

// Name returns the rule's display name as of the last Get or Put.
func (r *ParallelSelectionRule) Name() string { return r.base.Name() }

// ResourcePath returns the rule's resource path, or resourcepath.Empty if
// unstored.
func (r *ParallelSelectionRule) ResourcePath() resourcepath.Path { return r.base.ResourcePath() }

// IsStored reports whether the rule has server identity.
func (r *ParallelSelectionRule) IsStored() bool { return r.base.IsStored() }

// LowerLimit returns the rule's lower (negative) offset from its origin
// plane.
func (r *ParallelSelectionRule) LowerLimit(ctx context.Context) (float64, error) {
	stub, err := r.stub()
	if err != nil {
		return 0, err
	}
	return treeobject.GetScalar(ctx, r.base, stub, "", "lower_limit", func(p *ParallelSelectionRuleProperties) float64 { return p.LowerLimit })
}

// SetLowerLimit updates the rule's lower offset.
func (r *ParallelSelectionRule) SetLowerLimit(ctx context.Context, v float64) error {
	stub, err := r.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, r.base, stub, "", "lower_limit",
		func(p *ParallelSelectionRuleProperties) float64 { return p.LowerLimit },
		func(p *ParallelSelectionRuleProperties, v float64) { p.LowerLimit = v },
		func(a, b float64) bool { return a == b }, v)
}

// UpperLimit returns the rule's upper (positive) offset from its origin
// plane.
func (r *ParallelSelectionRule) UpperLimit(ctx context.Context) (float64, error) {
	stub, err := r.stub()
	if err != nil {
		return 0, err
	}
	return treeobject.GetScalar(ctx, r.base, stub, "", "upper_limit", func(p *ParallelSelectionRuleProperties) float64 { return p.UpperLimit })
}

// SetUpperLimit updates the rule's upper offset.
func (r *ParallelSelectionRule) SetUpperLimit(ctx context.Context, v float64) error {
	stub, err := r.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, r.base, stub, "", "upper_limit",
		func(p *ParallelSelectionRuleProperties) float64 { return p.UpperLimit },
		func(p *ParallelSelectionRuleProperties, v float64) { p.UpperLimit = v },
		func(a, b float64) bool { return a == b }, v)
}

// Status returns the server-computed validity status.
func (r *ParallelSelectionRule) Status(ctx context.Context) (Status, error) {
	stub, err := r.stub()
	if err != nil {
		return "", err
	}
	return treeobject.GetScalar(ctx, r.base, stub, "", "status", func(p *ParallelSelectionRuleProperties) Status { return p.Status })
}

// UseGlobalCoordinateSystem reports whether Origin and Direction are
// resolved in the global coordinate system rather than relative to Rosette.
func (r *ParallelSelectionRule) UseGlobalCoordinateSystem(ctx context.Context) (bool, error) {
	stub, err := r.stub()
	if err != nil {
		return false, err
	}
	return treeobject.GetScalar(ctx, r.base, stub, "", "use_global_coordinate_system", func(p *ParallelSelectionRuleProperties) bool { return p.UseGlobalCoordinateSystem })
}

// SetUseGlobalCoordinateSystem updates that choice.
func (r *ParallelSelectionRule) SetUseGlobalCoordinateSystem(ctx context.Context, v bool) error {
	stub, err := r.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, r.base, stub, "", "use_global_coordinate_system",
		func(p *ParallelSelectionRuleProperties) bool { return p.UseGlobalCoordinateSystem },
		func(p *ParallelSelectionRuleProperties, v bool) { p.UseGlobalCoordinateSystem = v },
		func(a, b bool) bool { return a == b }, v)
}

// Origin returns the point the bounding planes are offset from.
func (r *ParallelSelectionRule) Origin(ctx context.Context) (Vector3, error) {
	stub, err := r.stub()
	if err != nil {
		return Vector3{}, err
	}
	return treeobject.GetScalar(ctx, r.base, stub, "", "origin", func(p *ParallelSelectionRuleProperties) Vector3 { return p.Origin })
}

// SetOrigin updates the origin point.
func (r *ParallelSelectionRule) SetOrigin(ctx context.Context, v Vector3) error {
	stub, err := r.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, r.base, stub, "", "origin",
		func(p *ParallelSelectionRuleProperties) Vector3 { return p.Origin },
		func(p *ParallelSelectionRuleProperties, v Vector3) { p.Origin = v },
		func(a, b Vector3) bool { return a == b }, v)
}

// Direction returns the normal of the bounding planes.
func (r *ParallelSelectionRule) Direction(ctx context.Context) (Vector3, error) {
	stub, err := r.stub()
	if err != nil {
		return Vector3{}, err
	}
	return treeobject.GetScalar(ctx, r.base, stub, "", "direction", func(p *ParallelSelectionRuleProperties) Vector3 { return p.Direction })
}

// SetDirection updates the bounding planes' normal.
func (r *ParallelSelectionRule) SetDirection(ctx context.Context, v Vector3) error {
	stub, err := r.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, r.base, stub, "", "direction",
		func(p *ParallelSelectionRuleProperties) Vector3 { return p.Direction },
		func(p *ParallelSelectionRuleProperties, v Vector3) { p.Direction = v },
		func(a, b Vector3) bool { return a == b }, v)
}

// RelativeRuleType reports whether the limits are interpreted relative to
// the element's own extent rather than as absolute offsets.
func (r *ParallelSelectionRule) RelativeRuleType(ctx context.Context) (bool, error) {
	stub, err := r.stub()
	if err != nil {
		return false, err
	}
	return treeobject.GetScalar(ctx, r.base, stub, "", "relative_rule_type", func(p *ParallelSelectionRuleProperties) bool { return p.RelativeRuleType })
}

// SetRelativeRuleType updates that choice.
func (r *ParallelSelectionRule) SetRelativeRuleType(ctx context.Context, v bool) error {
	stub, err := r.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, r.base, stub, "", "relative_rule_type",
		func(p *ParallelSelectionRuleProperties) bool { return p.RelativeRuleType },
		func(p *ParallelSelectionRuleProperties, v bool) { p.RelativeRuleType = v },
		func(a, b bool) bool { return a == b }, v)
}

// IncludeRuleType reports whether elements inside the slab are included
// (true) or excluded (false) by this rule.
func (r *ParallelSelectionRule) IncludeRuleType(ctx context.Context) (bool, error) {
	stub, err := r.stub()
	if err != nil {
		return false, err
	}
	return treeobject.GetScalar(ctx, r.base, stub, "", "include_rule_type", func(p *ParallelSelectionRuleProperties) bool { return p.IncludeRuleType })
}

// SetIncludeRuleType updates that choice.
func (r *ParallelSelectionRule) SetIncludeRuleType(ctx context.Context, v bool) error {
	stub, err := r.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, r.base, stub, "", "include_rule_type",
		func(p *ParallelSelectionRuleProperties) bool { return p.IncludeRuleType },
		func(p *ParallelSelectionRuleProperties, v bool) { p.IncludeRuleType = v },
		func(a, b bool) bool { return a == b }, v)
}

// Rosette resolves the rule's optional reference rosette, returning nil if
// none is set.
func (r *ParallelSelectionRule) Rosette(ctx context.Context) (*Rosette, error) {
	stub, err := r.stub()
	if err != nil {
		return nil, err
	}
	path, err := treeobject.GetLinkPath(ctx, r.base, stub, "", "rosette", func(p *ParallelSelectionRuleProperties) resourcepath.Path { return p.RosettePath })
	if err != nil {
		return nil, err
	}
	if path.IsEmpty() {
		return nil, nil
	}
	server, err := r.base.Server()
	if err != nil {
		return nil, err
	}
	return registry.ResolveAs[*Rosette](path, server)
}

// SetRosette updates the rule's reference rosette; a nil target clears it.
func (r *ParallelSelectionRule) SetRosette(ctx context.Context, rosette *Rosette) error {
	stub, err := r.stub()
	if err != nil {
		return err
	}
	var target treeobject.Linkable
	if rosette != nil {
		target = rosette.base
	}
	return treeobject.SetLinkPath(ctx, r.base, stub, "", "rosette",
		func(p *ParallelSelectionRuleProperties) resourcepath.Path { return p.RosettePath },
		func(p *ParallelSelectionRuleProperties, v resourcepath.Path) { p.RosettePath = v },
		target, RosetteCollectionLabel)
}

// Get refreshes the rule's properties from the server.
func (r *ParallelSelectionRule) Get(ctx context.Context) error {
	stub, err := r.stub()
	if err != nil {
		return err
	}
	return r.base.Get(ctx, stub)
}

// Delete removes the rule from its owning model.
func (r *ParallelSelectionRule) Delete(ctx context.Context) error {
	stub, err := r.stub()
	if err != nil {
		return err
	}
	return r.base.Delete(ctx, stub)
}

func (r *ParallelSelectionRule) create(ctx context.Context, server *treeobject.ServerWrapper, parentPath resourcepath.Path) error {
	if r.stubs == nil {
		r.stubs = stubstore.New(func() ParallelSelectionRuleStub { return newParallelSelectionRuleStub(server.Channel) })
	}
	return r.base.Create(ctx, newParallelSelectionRuleStub(server.Channel), parentPath, ParallelSelectionRuleCollectionLabel, server)
}

// ParentPath returns the resource path of the model owning this rule.
func (r *ParallelSelectionRule) ParentPath() resourcepath.Path { return r.base.ResourcePath().Parent() }

// Clone returns an unstored copy sharing this rule's current properties.
func (r *ParallelSelectionRule) Clone() recursiveclone.Node {
	cloned := r.base.Properties().Clone().(*ParallelSelectionRuleProperties)
	return &ParallelSelectionRule{base: treeobject.NewUnstored(r.base.Name(), cloned)}
}

// CloneUnlinked returns an unstored copy with every link field cleared.
func (r *ParallelSelectionRule) CloneUnlinked() *ParallelSelectionRule {
	cloned := r.base.Properties().Clone().(*ParallelSelectionRuleProperties)
	cloned.ClearLinks()
	return &ParallelSelectionRule{base: treeobject.NewUnstored(r.base.Name(), cloned)}
}

// ChildObjects is empty: a selection rule owns no nested tree objects.
func (r *ParallelSelectionRule) ChildObjects() []recursiveclone.Node { return nil }

// DirectLinks exposes the rule's optional rosette link.
func (r *ParallelSelectionRule) DirectLinks() []recursiveclone.DirectLink {
	return rosetteLink(r.base, func() resourcepath.Path { return r.base.Properties().RosettePath },
		func(p resourcepath.Path) { r.base.Properties().RosettePath = p })
}

// LinkedObjectLists is empty: a geometric selection rule has no link-list
// fields.
func (r *ParallelSelectionRule) LinkedObjectLists() []recursiveclone.LinkedObjectList { return nil }

// EdgePropertyLists is empty for the same reason.
func (r *ParallelSelectionRule) EdgePropertyLists() []recursiveclone.EdgePropertyList { return nil }

// Store implements recursiveclone.Node by creating this (already-cloned)
// rule under parent.
func (r *ParallelSelectionRule) Store(ctx context.Context, parent recursiveclone.Node) error {
	owner, ok := parent.(parallelSelectionRuleOwner)
	if !ok {
		return apperrorInvalidParent("parallel selection rule", parent)
	}
	return owner.storeParallelSelectionRule(ctx, r)
}

type parallelSelectionRuleOwner interface {
	storeParallelSelectionRule(ctx context.Context, r *ParallelSelectionRule) error
}

// rosetteLink builds the single-element DirectLinks slice shared by every
// geometric selection rule's optional rosette reference.
func rosetteLink(base interface {
	Server() (*treeobject.ServerWrapper, error)
}, get func() resourcepath.Path, set func(resourcepath.Path)) []recursiveclone.DirectLink {
	var target recursiveclone.Node
	path := get()
	if !path.IsEmpty() {
		if server, err := base.Server(); err == nil {
			if rosette, err := registry.ResolveAs[*Rosette](path, server); err == nil {
				target = rosette
			}
		}
	}
	return []recursiveclone.DirectLink{{
		Target: target,
		Set: func(ctx context.Context, newTarget recursiveclone.Node) error {
			if newTarget == nil {
				set(resourcepath.Empty)
				return nil
			}
			set(newTarget.ResourcePath())
			return nil
		},
	}}
}

// CylindricalSelectionRule selects elements within a cylinder (grounded on
// cylindrical_selection_rule.py).
type CylindricalSelectionRule struct {
	base  *treeobject.Base[*CylindricalSelectionRuleProperties]
	stubs *stubstore.Store[CylindricalSelectionRuleStub]
}

// NewCylindricalSelectionRule creates an unstored cylindrical selection
// rule.
func NewCylindricalSelectionRule(name string, origin, direction Vector3, radius float64) *CylindricalSelectionRule {
	if name == "" {
		name = "CylindricalSelectionRule"
	}
	props := &CylindricalSelectionRuleProperties{geometricRuleProperties{
		UseGlobalCoordinateSystem: true,
		Origin:                    origin,
		Direction:                 direction,
		Radius:                    radius,
		IncludeRuleType:           true,
	}}
	return &CylindricalSelectionRule{base: treeobject.NewUnstored(name, props)}
}

func init() {
	registry.Register(CylindricalSelectionRuleCollectionLabel, registry.CachedConstructor(CylindricalSelectionRuleCollectionLabel, func(path resourcepath.Path, server *treeobject.ServerWrapper) *CylindricalSelectionRule {
		return &CylindricalSelectionRule{base: treeobject.NewStored(treeobject.ObjectInfo[*CylindricalSelectionRuleProperties]{
			Info: treeobject.Info{ResourcePath: path},
		}, server)}
	}))
}

func (r *CylindricalSelectionRule) stub() (CylindricalSelectionRuleStub, error) {
	server, err := r.base.Server()
	if err != nil {
		return nil, err
	}
	if r.stubs == nil {
		r.stubs = stubstore.New(func() CylindricalSelectionRuleStub { return newCylindricalSelectionRuleStub(server.Channel) })
	}
	return r.stubs.Get(r.base.IsStored())
}

func (r *CylindricalSelectionRule) Name() string                  { return r.base.Name() }
func (r *CylindricalSelectionRule) ResourcePath() resourcepath.Path { return r.base.ResourcePath() }
func (r *CylindricalSelectionRule) IsStored() bool                 { return r.base.IsStored() }

// Radius returns the cylinder's radius.
func (r *CylindricalSelectionRule) Radius(ctx context.Context) (float64, error) {
	stub, err := r.stub()
	if err != nil {
		return 0, err
	}
	return treeobject.GetScalar(ctx, r.base, stub, "", "radius", func(p *CylindricalSelectionRuleProperties) float64 { return p.Radius })
}

// SetRadius updates the cylinder's radius.
func (r *CylindricalSelectionRule) SetRadius(ctx context.Context, v float64) error {
	stub, err := r.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, r.base, stub, "", "radius",
		func(p *CylindricalSelectionRuleProperties) float64 { return p.Radius },
		func(p *CylindricalSelectionRuleProperties, v float64) { p.Radius = v },
		func(a, b float64) bool { return a == b }, v)
}

// Status returns the server-computed validity status.
func (r *CylindricalSelectionRule) Status(ctx context.Context) (Status, error) {
	stub, err := r.stub()
	if err != nil {
		return "", err
	}
	return treeobject.GetScalar(ctx, r.base, stub, "", "status", func(p *CylindricalSelectionRuleProperties) Status { return p.Status })
}

// UseGlobalCoordinateSystem reports whether Origin and Direction are
// resolved in the global coordinate system rather than relative to Rosette.
func (r *CylindricalSelectionRule) UseGlobalCoordinateSystem(ctx context.Context) (bool, error) {
	stub, err := r.stub()
	if err != nil {
		return false, err
	}
	return treeobject.GetScalar(ctx, r.base, stub, "", "use_global_coordinate_system", func(p *CylindricalSelectionRuleProperties) bool { return p.UseGlobalCoordinateSystem })
}

// SetUseGlobalCoordinateSystem updates that choice.
func (r *CylindricalSelectionRule) SetUseGlobalCoordinateSystem(ctx context.Context, v bool) error {
	stub, err := r.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, r.base, stub, "", "use_global_coordinate_system",
		func(p *CylindricalSelectionRuleProperties) bool { return p.UseGlobalCoordinateSystem },
		func(p *CylindricalSelectionRuleProperties, v bool) { p.UseGlobalCoordinateSystem = v },
		func(a, b bool) bool { return a == b }, v)
}

// Origin returns the point the cylinder's axis passes through.
func (r *CylindricalSelectionRule) Origin(ctx context.Context) (Vector3, error) {
	stub, err := r.stub()
	if err != nil {
		return Vector3{}, err
	}
	return treeobject.GetScalar(ctx, r.base, stub, "", "origin", func(p *CylindricalSelectionRuleProperties) Vector3 { return p.Origin })
}

// SetOrigin updates the axis origin point.
func (r *CylindricalSelectionRule) SetOrigin(ctx context.Context, v Vector3) error {
	stub, err := r.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, r.base, stub, "", "origin",
		func(p *CylindricalSelectionRuleProperties) Vector3 { return p.Origin },
		func(p *CylindricalSelectionRuleProperties, v Vector3) { p.Origin = v },
		func(a, b Vector3) bool { return a == b }, v)
}

// Direction returns the cylinder's axis direction.
func (r *CylindricalSelectionRule) Direction(ctx context.Context) (Vector3, error) {
	stub, err := r.stub()
	if err != nil {
		return Vector3{}, err
	}
	return treeobject.GetScalar(ctx, r.base, stub, "", "direction", func(p *CylindricalSelectionRuleProperties) Vector3 { return p.Direction })
}

// SetDirection updates the axis direction.
func (r *CylindricalSelectionRule) SetDirection(ctx context.Context, v Vector3) error {
	stub, err := r.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, r.base, stub, "", "direction",
		func(p *CylindricalSelectionRuleProperties) Vector3 { return p.Direction },
		func(p *CylindricalSelectionRuleProperties, v Vector3) { p.Direction = v },
		func(a, b Vector3) bool { return a == b }, v)
}

// RelativeRuleType reports whether the radius is interpreted relative to
// the element's own extent rather than as an absolute distance.
func (r *CylindricalSelectionRule) RelativeRuleType(ctx context.Context) (bool, error) {
	stub, err := r.stub()
	if err != nil {
		return false, err
	}
	return treeobject.GetScalar(ctx, r.base, stub, "", "relative_rule_type", func(p *CylindricalSelectionRuleProperties) bool { return p.RelativeRuleType })
}

// SetRelativeRuleType updates that choice.
func (r *CylindricalSelectionRule) SetRelativeRuleType(ctx context.Context, v bool) error {
	stub, err := r.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, r.base, stub, "", "relative_rule_type",
		func(p *CylindricalSelectionRuleProperties) bool { return p.RelativeRuleType },
		func(p *CylindricalSelectionRuleProperties, v bool) { p.RelativeRuleType = v },
		func(a, b bool) bool { return a == b }, v)
}

// IncludeRuleType reports whether elements inside the cylinder are included
// (true) or excluded (false) by this rule.
func (r *CylindricalSelectionRule) IncludeRuleType(ctx context.Context) (bool, error) {
	stub, err := r.stub()
	if err != nil {
		return false, err
	}
	return treeobject.GetScalar(ctx, r.base, stub, "", "include_rule_type", func(p *CylindricalSelectionRuleProperties) bool { return p.IncludeRuleType })
}

// SetIncludeRuleType updates that choice.
func (r *CylindricalSelectionRule) SetIncludeRuleType(ctx context.Context, v bool) error {
	stub, err := r.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, r.base, stub, "", "include_rule_type",
		func(p *CylindricalSelectionRuleProperties) bool { return p.IncludeRuleType },
		func(p *CylindricalSelectionRuleProperties, v bool) { p.IncludeRuleType = v },
		func(a, b bool) bool { return a == b }, v)
}

// Rosette resolves the rule's optional reference rosette, returning nil if
// none is set.
func (r *CylindricalSelectionRule) Rosette(ctx context.Context) (*Rosette, error) {
	stub, err := r.stub()
	if err != nil {
		return nil, err
	}
	path, err := treeobject.GetLinkPath(ctx, r.base, stub, "", "rosette", func(p *CylindricalSelectionRuleProperties) resourcepath.Path { return p.RosettePath })
	if err != nil {
		return nil, err
	}
	if path.IsEmpty() {
		return nil, nil
	}
	server, err := r.base.Server()
	if err != nil {
		return nil, err
	}
	return registry.ResolveAs[*Rosette](path, server)
}

// SetRosette updates the rule's reference rosette; a nil target clears it.
func (r *CylindricalSelectionRule) SetRosette(ctx context.Context, rosette *Rosette) error {
	stub, err := r.stub()
	if err != nil {
		return err
	}
	var target treeobject.Linkable
	if rosette != nil {
		target = rosette.base
	}
	return treeobject.SetLinkPath(ctx, r.base, stub, "", "rosette",
		func(p *CylindricalSelectionRuleProperties) resourcepath.Path { return p.RosettePath },
		func(p *CylindricalSelectionRuleProperties, v resourcepath.Path) { p.RosettePath = v },
		target, RosetteCollectionLabel)
}

func (r *CylindricalSelectionRule) Get(ctx context.Context) error {
	stub, err := r.stub()
	if err != nil {
		return err
	}
	return r.base.Get(ctx, stub)
}

func (r *CylindricalSelectionRule) Delete(ctx context.Context) error {
	stub, err := r.stub()
	if err != nil {
		return err
	}
	return r.base.Delete(ctx, stub)
}

func (r *CylindricalSelectionRule) create(ctx context.Context, server *treeobject.ServerWrapper, parentPath resourcepath.Path) error {
	if r.stubs == nil {
		r.stubs = stubstore.New(func() CylindricalSelectionRuleStub { return newCylindricalSelectionRuleStub(server.Channel) })
	}
	return r.base.Create(ctx, newCylindricalSelectionRuleStub(server.Channel), parentPath, CylindricalSelectionRuleCollectionLabel, server)
}

func (r *CylindricalSelectionRule) ParentPath() resourcepath.Path { return r.base.ResourcePath().Parent() }

func (r *CylindricalSelectionRule) Clone() recursiveclone.Node {
	cloned := r.base.Properties().Clone().(*CylindricalSelectionRuleProperties)
	return &CylindricalSelectionRule{base: treeobject.NewUnstored(r.base.Name(), cloned)}
}

// CloneUnlinked returns an unstored copy with every link field cleared.
func (r *CylindricalSelectionRule) CloneUnlinked() *CylindricalSelectionRule {
	cloned := r.base.Properties().Clone().(*CylindricalSelectionRuleProperties)
	cloned.ClearLinks()
	return &CylindricalSelectionRule{base: treeobject.NewUnstored(r.base.Name(), cloned)}
}

func (r *CylindricalSelectionRule) ChildObjects() []recursiveclone.Node { return nil }

func (r *CylindricalSelectionRule) DirectLinks() []recursiveclone.DirectLink {
	return rosetteLink(r.base, func() resourcepath.Path { return r.base.Properties().RosettePath },
		func(p resourcepath.Path) { r.base.Properties().RosettePath = p })
}

func (r *CylindricalSelectionRule) LinkedObjectLists() []recursiveclone.LinkedObjectList { return nil }
func (r *CylindricalSelectionRule) EdgePropertyLists() []recursiveclone.EdgePropertyList { return nil }

func (r *CylindricalSelectionRule) Store(ctx context.Context, parent recursiveclone.Node) error {
	owner, ok := parent.(cylindricalSelectionRuleOwner)
	if !ok {
		return apperrorInvalidParent("cylindrical selection rule", parent)
	}
	return owner.storeCylindricalSelectionRule(ctx, r)
}

type cylindricalSelectionRuleOwner interface {
	storeCylindricalSelectionRule(ctx context.Context, r *CylindricalSelectionRule) error
}

// SphericalSelectionRule selects elements within a sphere (grounded on
// spherical_selection_rule.py).
type SphericalSelectionRule struct {
	base  *treeobject.Base[*SphericalSelectionRuleProperties]
	stubs *stubstore.Store[SphericalSelectionRuleStub]
}

// NewSphericalSelectionRule creates an unstored spherical selection rule.
func NewSphericalSelectionRule(name string, origin Vector3, radius float64) *SphericalSelectionRule {
	if name == "" {
		name = "SphericalSelectionRule"
	}
	props := &SphericalSelectionRuleProperties{geometricRuleProperties{
		UseGlobalCoordinateSystem: true,
		Origin:                    origin,
		Radius:                    radius,
		IncludeRuleType:           true,
	}}
	return &SphericalSelectionRule{base: treeobject.NewUnstored(name, props)}
}

func init() {
	registry.Register(SphericalSelectionRuleCollectionLabel, registry.CachedConstructor(SphericalSelectionRuleCollectionLabel, func(path resourcepath.Path, server *treeobject.ServerWrapper) *SphericalSelectionRule {
		return &SphericalSelectionRule{base: treeobject.NewStored(treeobject.ObjectInfo[*SphericalSelectionRuleProperties]{
			Info: treeobject.Info{ResourcePath: path},
		}, server)}
	}))
}

func (r *SphericalSelectionRule) stub() (SphericalSelectionRuleStub, error) {
	server, err := r.base.Server()
	if err != nil {
		return nil, err
	}
	if r.stubs == nil {
		r.stubs = stubstore.New(func() SphericalSelectionRuleStub { return newSphericalSelectionRuleStub(server.Channel) })
	}
	return r.stubs.Get(r.base.IsStored())
}

func (r *SphericalSelectionRule) Name() string                   { return r.base.Name() }
func (r *SphericalSelectionRule) ResourcePath() resourcepath.Path { return r.base.ResourcePath() }
func (r *SphericalSelectionRule) IsStored() bool                  { return r.base.IsStored() }

// Radius returns the sphere's radius.
func (r *SphericalSelectionRule) Radius(ctx context.Context) (float64, error) {
	stub, err := r.stub()
	if err != nil {
		return 0, err
	}
	return treeobject.GetScalar(ctx, r.base, stub, "", "radius", func(p *SphericalSelectionRuleProperties) float64 { return p.Radius })
}

// SetRadius updates the sphere's radius.
func (r *SphericalSelectionRule) SetRadius(ctx context.Context, v float64) error {
	stub, err := r.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, r.base, stub, "", "radius",
		func(p *SphericalSelectionRuleProperties) float64 { return p.Radius },
		func(p *SphericalSelectionRuleProperties, v float64) { p.Radius = v },
		func(a, b float64) bool { return a == b }, v)
}

// Status returns the server-computed validity status.
func (r *SphericalSelectionRule) Status(ctx context.Context) (Status, error) {
	stub, err := r.stub()
	if err != nil {
		return "", err
	}
	return treeobject.GetScalar(ctx, r.base, stub, "", "status", func(p *SphericalSelectionRuleProperties) Status { return p.Status })
}

// UseGlobalCoordinateSystem reports whether Origin is resolved in the
// global coordinate system rather than relative to Rosette.
func (r *SphericalSelectionRule) UseGlobalCoordinateSystem(ctx context.Context) (bool, error) {
	stub, err := r.stub()
	if err != nil {
		return false, err
	}
	return treeobject.GetScalar(ctx, r.base, stub, "", "use_global_coordinate_system", func(p *SphericalSelectionRuleProperties) bool { return p.UseGlobalCoordinateSystem })
}

// SetUseGlobalCoordinateSystem updates that choice.
func (r *SphericalSelectionRule) SetUseGlobalCoordinateSystem(ctx context.Context, v bool) error {
	stub, err := r.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, r.base, stub, "", "use_global_coordinate_system",
		func(p *SphericalSelectionRuleProperties) bool { return p.UseGlobalCoordinateSystem },
		func(p *SphericalSelectionRuleProperties, v bool) { p.UseGlobalCoordinateSystem = v },
		func(a, b bool) bool { return a == b }, v)
}

// Origin returns the sphere's center.
func (r *SphericalSelectionRule) Origin(ctx context.Context) (Vector3, error) {
	stub, err := r.stub()
	if err != nil {
		return Vector3{}, err
	}
	return treeobject.GetScalar(ctx, r.base, stub, "", "origin", func(p *SphericalSelectionRuleProperties) Vector3 { return p.Origin })
}

// SetOrigin updates the sphere's center.
func (r *SphericalSelectionRule) SetOrigin(ctx context.Context, v Vector3) error {
	stub, err := r.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, r.base, stub, "", "origin",
		func(p *SphericalSelectionRuleProperties) Vector3 { return p.Origin },
		func(p *SphericalSelectionRuleProperties, v Vector3) { p.Origin = v },
		func(a, b Vector3) bool { return a == b }, v)
}

// RelativeRuleType reports whether the radius is interpreted relative to
// the element's own extent rather than as an absolute distance.
func (r *SphericalSelectionRule) RelativeRuleType(ctx context.Context) (bool, error) {
	stub, err := r.stub()
	if err != nil {
		return false, err
	}
	return treeobject.GetScalar(ctx, r.base, stub, "", "relative_rule_type", func(p *SphericalSelectionRuleProperties) bool { return p.RelativeRuleType })
}

// SetRelativeRuleType updates that choice.
func (r *SphericalSelectionRule) SetRelativeRuleType(ctx context.Context, v bool) error {
	stub, err := r.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, r.base, stub, "", "relative_rule_type",
		func(p *SphericalSelectionRuleProperties) bool { return p.RelativeRuleType },
		func(p *SphericalSelectionRuleProperties, v bool) { p.RelativeRuleType = v },
		func(a, b bool) bool { return a == b }, v)
}

// IncludeRuleType reports whether elements inside the sphere are included
// (true) or excluded (false) by this rule.
func (r *SphericalSelectionRule) IncludeRuleType(ctx context.Context) (bool, error) {
	stub, err := r.stub()
	if err != nil {
		return false, err
	}
	return treeobject.GetScalar(ctx, r.base, stub, "", "include_rule_type", func(p *SphericalSelectionRuleProperties) bool { return p.IncludeRuleType })
}

// SetIncludeRuleType updates that choice.
func (r *SphericalSelectionRule) SetIncludeRuleType(ctx context.Context, v bool) error {
	stub, err := r.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, r.base, stub, "", "include_rule_type",
		func(p *SphericalSelectionRuleProperties) bool { return p.IncludeRuleType },
		func(p *SphericalSelectionRuleProperties, v bool) { p.IncludeRuleType = v },
		func(a, b bool) bool { return a == b }, v)
}

// Rosette resolves the rule's optional reference rosette, returning nil if
// none is set.
func (r *SphericalSelectionRule) Rosette(ctx context.Context) (*Rosette, error) {
	stub, err := r.stub()
	if err != nil {
		return nil, err
	}
	path, err := treeobject.GetLinkPath(ctx, r.base, stub, "", "rosette", func(p *SphericalSelectionRuleProperties) resourcepath.Path { return p.RosettePath })
	if err != nil {
		return nil, err
	}
	if path.IsEmpty() {
		return nil, nil
	}
	server, err := r.base.Server()
	if err != nil {
		return nil, err
	}
	return registry.ResolveAs[*Rosette](path, server)
}

// SetRosette updates the rule's reference rosette; a nil target clears it.
func (r *SphericalSelectionRule) SetRosette(ctx context.Context, rosette *Rosette) error {
	stub, err := r.stub()
	if err != nil {
		return err
	}
	var target treeobject.Linkable
	if rosette != nil {
		target = rosette.base
	}
	return treeobject.SetLinkPath(ctx, r.base, stub, "", "rosette",
		func(p *SphericalSelectionRuleProperties) resourcepath.Path { return p.RosettePath },
		func(p *SphericalSelectionRuleProperties, v resourcepath.Path) { p.RosettePath = v },
		target, RosetteCollectionLabel)
}

func (r *SphericalSelectionRule) Get(ctx context.Context) error {
	stub, err := r.stub()
	if err != nil {
		return err
	}
	return r.base.Get(ctx, stub)
}

func (r *SphericalSelectionRule) Delete(ctx context.Context) error {
	stub, err := r.stub()
	if err != nil {
		return err
	}
	return r.base.Delete(ctx, stub)
}

func (r *SphericalSelectionRule) create(ctx context.Context, server *treeobject.ServerWrapper, parentPath resourcepath.Path) error {
	if r.stubs == nil {
		r.stubs = stubstore.New(func() SphericalSelectionRuleStub { return newSphericalSelectionRuleStub(server.Channel) })
	}
	return r.base.Create(ctx, newSphericalSelectionRuleStub(server.Channel), parentPath, SphericalSelectionRuleCollectionLabel, server)
}

func (r *SphericalSelectionRule) ParentPath() resourcepath.Path { return r.base.ResourcePath().Parent() }

func (r *SphericalSelectionRule) Clone() recursiveclone.Node {
	cloned := r.base.Properties().Clone().(*SphericalSelectionRuleProperties)
	return &SphericalSelectionRule{base: treeobject.NewUnstored(r.base.Name(), cloned)}
}

// CloneUnlinked returns an unstored copy with every link field cleared.
func (r *SphericalSelectionRule) CloneUnlinked() *SphericalSelectionRule {
	cloned := r.base.Properties().Clone().(*SphericalSelectionRuleProperties)
	cloned.ClearLinks()
	return &SphericalSelectionRule{base: treeobject.NewUnstored(r.base.Name(), cloned)}
}

func (r *SphericalSelectionRule) ChildObjects() []recursiveclone.Node { return nil }

func (r *SphericalSelectionRule) DirectLinks() []recursiveclone.DirectLink {
	return rosetteLink(r.base, func() resourcepath.Path { return r.base.Properties().RosettePath },
		func(p resourcepath.Path) { r.base.Properties().RosettePath = p })
}

func (r *SphericalSelectionRule) LinkedObjectLists() []recursiveclone.LinkedObjectList { return nil }
func (r *SphericalSelectionRule) EdgePropertyLists() []recursiveclone.EdgePropertyList { return nil }

func (r *SphericalSelectionRule) Store(ctx context.Context, parent recursiveclone.Node) error {
	owner, ok := parent.(sphericalSelectionRuleOwner)
	if !ok {
		return apperrorInvalidParent("spherical selection rule", parent)
	}
	return owner.storeSphericalSelectionRule(ctx, r)
}

type sphericalSelectionRuleOwner interface {
	storeSphericalSelectionRule(ctx context.Context, r *SphericalSelectionRule) error
}

// BooleanSelectionRule combines other selection rules (grounded on
// boolean_selection_rule.py).
type BooleanSelectionRule struct {
	base  *treeobject.Base[*BooleanSelectionRuleProperties]
	stubs *stubstore.Store[BooleanSelectionRuleStub]
}

// NewBooleanSelectionRule creates an unstored boolean selection rule.
func NewBooleanSelectionRule(name string, rules []LinkedSelectionRule) *BooleanSelectionRule {
	if name == "" {
		name = "BooleanSelectionRule"
	}
	props := &BooleanSelectionRuleProperties{
		SelectionRules:  append([]LinkedSelectionRule(nil), rules...),
		IncludeRuleType: true,
	}
	return &BooleanSelectionRule{base: treeobject.NewUnstored(name, props)}
}

func init() {
	registry.Register(BooleanSelectionRuleCollectionLabel, registry.CachedConstructor(BooleanSelectionRuleCollectionLabel, func(path resourcepath.Path, server *treeobject.ServerWrapper) *BooleanSelectionRule {
		return &BooleanSelectionRule{base: treeobject.NewStored(treeobject.ObjectInfo[*BooleanSelectionRuleProperties]{
			Info: treeobject.Info{ResourcePath: path},
		}, server)}
	}))
}

func (r *BooleanSelectionRule) stub() (BooleanSelectionRuleStub, error) {
	server, err := r.base.Server()
	if err != nil {
		return nil, err
	}
	if r.stubs == nil {
		r.stubs = stubstore.New(func() BooleanSelectionRuleStub { return newBooleanSelectionRuleStub(server.Channel) })
	}
	return r.stubs.Get(r.base.IsStored())
}

func (r *BooleanSelectionRule) Name() string                   { return r.base.Name() }
func (r *BooleanSelectionRule) ResourcePath() resourcepath.Path { return r.base.ResourcePath() }
func (r *BooleanSelectionRule) IsStored() bool                  { return r.base.IsStored() }

// SelectionRules returns the rule's current operand list. Mutating the
// returned slice has no effect; use SetSelectionRules to publish changes.
func (r *BooleanSelectionRule) SelectionRules(ctx context.Context) ([]LinkedSelectionRule, error) {
	stub, err := r.stub()
	if err != nil {
		return nil, err
	}
	rules, err := treeobject.GetScalar(ctx, r.base, stub, "", "selection_rules", func(p *BooleanSelectionRuleProperties) []LinkedSelectionRule { return p.SelectionRules })
	if err != nil {
		return nil, err
	}
	return append([]LinkedSelectionRule(nil), rules...), nil
}

// SetSelectionRules republishes the rule's full operand list.
func (r *BooleanSelectionRule) SetSelectionRules(ctx context.Context, rules []LinkedSelectionRule) error {
	stub, err := r.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, r.base, stub, "", "selection_rules",
		func(p *BooleanSelectionRuleProperties) []LinkedSelectionRule { return p.SelectionRules },
		func(p *BooleanSelectionRuleProperties, v []LinkedSelectionRule) { p.SelectionRules = v },
		func(a, b []LinkedSelectionRule) bool { return false },
		append([]LinkedSelectionRule(nil), rules...))
}

// Status returns the server-computed validity status.
func (r *BooleanSelectionRule) Status(ctx context.Context) (Status, error) {
	stub, err := r.stub()
	if err != nil {
		return "", err
	}
	return treeobject.GetScalar(ctx, r.base, stub, "", "status", func(p *BooleanSelectionRuleProperties) Status { return p.Status })
}

// IncludeRuleType reports whether the combined selection is included (true)
// or excluded (false) by this rule.
func (r *BooleanSelectionRule) IncludeRuleType(ctx context.Context) (bool, error) {
	stub, err := r.stub()
	if err != nil {
		return false, err
	}
	return treeobject.GetScalar(ctx, r.base, stub, "", "include_rule_type", func(p *BooleanSelectionRuleProperties) bool { return p.IncludeRuleType })
}

// SetIncludeRuleType updates that choice.
func (r *BooleanSelectionRule) SetIncludeRuleType(ctx context.Context, v bool) error {
	stub, err := r.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, r.base, stub, "", "include_rule_type",
		func(p *BooleanSelectionRuleProperties) bool { return p.IncludeRuleType },
		func(p *BooleanSelectionRuleProperties, v bool) { p.IncludeRuleType = v },
		func(a, b bool) bool { return a == b }, v)
}

func (r *BooleanSelectionRule) Get(ctx context.Context) error {
	stub, err := r.stub()
	if err != nil {
		return err
	}
	return r.base.Get(ctx, stub)
}

func (r *BooleanSelectionRule) Delete(ctx context.Context) error {
	stub, err := r.stub()
	if err != nil {
		return err
	}
	return r.base.Delete(ctx, stub)
}

func (r *BooleanSelectionRule) create(ctx context.Context, server *treeobject.ServerWrapper, parentPath resourcepath.Path) error {
	if r.stubs == nil {
		r.stubs = stubstore.New(func() BooleanSelectionRuleStub { return newBooleanSelectionRuleStub(server.Channel) })
	}
	return r.base.Create(ctx, newBooleanSelectionRuleStub(server.Channel), parentPath, BooleanSelectionRuleCollectionLabel, server)
}

func (r *BooleanSelectionRule) ParentPath() resourcepath.Path { return r.base.ResourcePath().Parent() }

func (r *BooleanSelectionRule) Clone() recursiveclone.Node {
	cloned := r.base.Properties().Clone().(*BooleanSelectionRuleProperties)
	return &BooleanSelectionRule{base: treeobject.NewUnstored(r.base.Name(), cloned)}
}

// CloneUnlinked returns an unstored copy with every link field cleared.
func (r *BooleanSelectionRule) CloneUnlinked() *BooleanSelectionRule {
	cloned := r.base.Properties().Clone().(*BooleanSelectionRuleProperties)
	cloned.ClearLinks()
	return &BooleanSelectionRule{base: treeobject.NewUnstored(r.base.Name(), cloned)}
}

func (r *BooleanSelectionRule) ChildObjects() []recursiveclone.Node    { return nil }
func (r *BooleanSelectionRule) DirectLinks() []recursiveclone.DirectLink { return nil }
func (r *BooleanSelectionRule) LinkedObjectLists() []recursiveclone.LinkedObjectList { return nil }

// EdgePropertyLists exposes the rule's selection-rule operand list as a
// single edge-property-list field.
func (r *BooleanSelectionRule) EdgePropertyLists() []recursiveclone.EdgePropertyList {
	return selectionRuleEdgeList(&r.base.Properties().SelectionRules)
}

func (r *BooleanSelectionRule) Store(ctx context.Context, parent recursiveclone.Node) error {
	owner, ok := parent.(booleanSelectionRuleOwner)
	if !ok {
		return apperrorInvalidParent("boolean selection rule", parent)
	}
	return owner.storeBooleanSelectionRule(ctx, r)
}

type booleanSelectionRuleOwner interface {
	storeBooleanSelectionRule(ctx context.Context, r *BooleanSelectionRule) error
}

// selectionRuleEdgeList builds the shared recursiveclone.EdgePropertyList
// wiring used by both BooleanSelectionRule.selection_rules and
// ModelingPly.selection_rules: each element's RulePath is an edge link that
// must be cleared before Store and restored, through the replacement map,
// once every selection rule has itself been cloned and stored.
func selectionRuleEdgeList(rules *[]LinkedSelectionRule) []recursiveclone.EdgePropertyList {
	paths := make([]resourcepath.Path, 0, len(*rules))
	for _, r := range *rules {
		if !r.RulePath.IsEmpty() {
			paths = append(paths, r.RulePath)
		}
	}
	return []recursiveclone.EdgePropertyList{{
		LinkedTargetPaths: paths,
		Clear: func(ctx context.Context) error {
			for i := range *rules {
				(*rules)[i].RulePath = resourcepath.Empty
			}
			return nil
		},
		Restore: func(ctx context.Context, resolve func(resourcepath.Path) (recursiveclone.Node, error)) error {
			for i, original := range paths {
				newTarget, err := resolve(original)
				if err != nil {
					return err
				}
				(*rules)[i].RulePath = newTarget.ResourcePath()
			}
			return nil
		},
	}}
}

// CutoffSelectionRule trims ply geometry by an external cutoff surface or a
// tapering edge (grounded on cutoff_selection_rule.py; the two
// near-duplicate Python entities are resolved by implementing only this
// one, see DESIGN.md).
type CutoffSelectionRule struct {
	base  *treeobject.Base[*CutoffSelectionRuleProperties]
	stubs *stubstore.Store[CutoffSelectionRuleStub]
}

// NewCutoffSelectionRule creates an unstored cutoff selection rule.
func NewCutoffSelectionRule(name string, ruleType CutoffRuleType) *CutoffSelectionRule {
	if name == "" {
		name = "CutoffSelectionRule"
	}
	props := &CutoffSelectionRuleProperties{
		CutoffRuleType: ruleType,
		PlyCutoffType:  PlyCutoffProductionPly,
	}
	return &CutoffSelectionRule{base: treeobject.NewUnstored(name, props)}
}

func init() {
	registry.Register(CutoffSelectionRuleCollectionLabel, registry.CachedConstructor(CutoffSelectionRuleCollectionLabel, func(path resourcepath.Path, server *treeobject.ServerWrapper) *CutoffSelectionRule {
		return &CutoffSelectionRule{base: treeobject.NewStored(treeobject.ObjectInfo[*CutoffSelectionRuleProperties]{
			Info: treeobject.Info{ResourcePath: path},
		}, server)}
	}))
}

func (r *CutoffSelectionRule) stub() (CutoffSelectionRuleStub, error) {
	server, err := r.base.Server()
	if err != nil {
		return nil, err
	}
	if r.stubs == nil {
		r.stubs = stubstore.New(func() CutoffSelectionRuleStub { return newCutoffSelectionRuleStub(server.Channel) })
	}
	return r.stubs.Get(r.base.IsStored())
}

func (r *CutoffSelectionRule) Name() string                   { return r.base.Name() }
func (r *CutoffSelectionRule) ResourcePath() resourcepath.Path { return r.base.ResourcePath() }
func (r *CutoffSelectionRule) IsStored() bool                  { return r.base.IsStored() }

// Offset returns the cutting plane's offset along the out-of-plane
// direction, measured from the reference surface.
func (r *CutoffSelectionRule) Offset(ctx context.Context) (float64, error) {
	stub, err := r.stub()
	if err != nil {
		return 0, err
	}
	return treeobject.GetScalar(ctx, r.base, stub, "", "offset", func(p *CutoffSelectionRuleProperties) float64 { return p.Offset })
}

// SetOffset updates the cutting plane's offset.
func (r *CutoffSelectionRule) SetOffset(ctx context.Context, v float64) error {
	stub, err := r.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, r.base, stub, "", "offset",
		func(p *CutoffSelectionRuleProperties) float64 { return p.Offset },
		func(p *CutoffSelectionRuleProperties, v float64) { p.Offset = v },
		func(a, b float64) bool { return a == b }, v)
}

// Angle returns the angle between the cutting plane and the reference
// surface.
func (r *CutoffSelectionRule) Angle(ctx context.Context) (float64, error) {
	stub, err := r.stub()
	if err != nil {
		return 0, err
	}
	return treeobject.GetScalar(ctx, r.base, stub, "", "angle", func(p *CutoffSelectionRuleProperties) float64 { return p.Angle })
}

// SetAngle updates the cutting plane's angle.
func (r *CutoffSelectionRule) SetAngle(ctx context.Context, v float64) error {
	stub, err := r.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, r.base, stub, "", "angle",
		func(p *CutoffSelectionRuleProperties) float64 { return p.Angle },
		func(p *CutoffSelectionRuleProperties, v float64) { p.Angle = v },
		func(a, b float64) bool { return a == b }, v)
}

// Status returns the server-computed validity status.
func (r *CutoffSelectionRule) Status(ctx context.Context) (Status, error) {
	stub, err := r.stub()
	if err != nil {
		return "", err
	}
	return treeobject.GetScalar(ctx, r.base, stub, "", "status", func(p *CutoffSelectionRuleProperties) Status { return p.Status })
}

// CutoffRuleType returns whether this rule cuts against an external
// geometry or a tapering edge set.
func (r *CutoffSelectionRule) CutoffRuleType(ctx context.Context) (CutoffRuleType, error) {
	stub, err := r.stub()
	if err != nil {
		return "", err
	}
	return treeobject.GetScalar(ctx, r.base, stub, "", "cutoff_rule_type", func(p *CutoffSelectionRuleProperties) CutoffRuleType { return p.CutoffRuleType })
}

// PlyCutoffType returns the granularity this rule cuts at.
func (r *CutoffSelectionRule) PlyCutoffType(ctx context.Context) (PlyCutoffType, error) {
	stub, err := r.stub()
	if err != nil {
		return "", err
	}
	return treeobject.GetScalar(ctx, r.base, stub, "", "ply_cutoff_type", func(p *CutoffSelectionRuleProperties) PlyCutoffType { return p.PlyCutoffType })
}

// SetPlyCutoffType updates the granularity this rule cuts at.
func (r *CutoffSelectionRule) SetPlyCutoffType(ctx context.Context, v PlyCutoffType) error {
	stub, err := r.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, r.base, stub, "", "ply_cutoff_type",
		func(p *CutoffSelectionRuleProperties) PlyCutoffType { return p.PlyCutoffType },
		func(p *CutoffSelectionRuleProperties, v PlyCutoffType) { p.PlyCutoffType = v },
		func(a, b PlyCutoffType) bool { return a == b }, v)
}

// PlyTapering reports whether the cut tapers the ply rather than ending it
// abruptly.
func (r *CutoffSelectionRule) PlyTapering(ctx context.Context) (bool, error) {
	stub, err := r.stub()
	if err != nil {
		return false, err
	}
	return treeobject.GetScalar(ctx, r.base, stub, "", "ply_tapering", func(p *CutoffSelectionRuleProperties) bool { return p.PlyTapering })
}

// SetPlyTapering updates whether the cut tapers the ply.
func (r *CutoffSelectionRule) SetPlyTapering(ctx context.Context, v bool) error {
	stub, err := r.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, r.base, stub, "", "ply_tapering",
		func(p *CutoffSelectionRuleProperties) bool { return p.PlyTapering },
		func(p *CutoffSelectionRuleProperties, v bool) { p.PlyTapering = v },
		func(a, b bool) bool { return a == b }, v)
}

// CutoffGeometryPath returns the resource path of the external cutoff
// geometry, relevant only when CutoffRuleType is CutoffRuleGeometry.
func (r *CutoffSelectionRule) CutoffGeometryPath(ctx context.Context) (resourcepath.Path, error) {
	stub, err := r.stub()
	if err != nil {
		return resourcepath.Empty, err
	}
	return treeobject.GetLinkPath(ctx, r.base, stub, "", "cutoff_geometry", func(p *CutoffSelectionRuleProperties) resourcepath.Path { return p.CutoffGeometryPath })
}

// SetCutoffGeometryPath updates the external cutoff geometry reference.
func (r *CutoffSelectionRule) SetCutoffGeometryPath(ctx context.Context, path resourcepath.Path) error {
	stub, err := r.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, r.base, stub, "", "cutoff_geometry",
		func(p *CutoffSelectionRuleProperties) resourcepath.Path { return p.CutoffGeometryPath },
		func(p *CutoffSelectionRuleProperties, v resourcepath.Path) { p.CutoffGeometryPath = v },
		func(a, b resourcepath.Path) bool { return a.Equal(b) }, path)
}

// TaperEdgeSetPath returns the resource path of the tapering edge set,
// relevant only when CutoffRuleType is CutoffRuleTaper.
func (r *CutoffSelectionRule) TaperEdgeSetPath(ctx context.Context) (resourcepath.Path, error) {
	stub, err := r.stub()
	if err != nil {
		return resourcepath.Empty, err
	}
	return treeobject.GetLinkPath(ctx, r.base, stub, "", "taper_edge_set", func(p *CutoffSelectionRuleProperties) resourcepath.Path { return p.TaperEdgeSetPath })
}

// SetTaperEdgeSetPath updates the tapering edge set reference.
func (r *CutoffSelectionRule) SetTaperEdgeSetPath(ctx context.Context, path resourcepath.Path) error {
	stub, err := r.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, r.base, stub, "", "taper_edge_set",
		func(p *CutoffSelectionRuleProperties) resourcepath.Path { return p.TaperEdgeSetPath },
		func(p *CutoffSelectionRuleProperties, v resourcepath.Path) { p.TaperEdgeSetPath = v },
		func(a, b resourcepath.Path) bool { return a.Equal(b) }, path)
}

func (r *CutoffSelectionRule) Get(ctx context.Context) error {
	stub, err := r.stub()
	if err != nil {
		return err
	}
	return r.base.Get(ctx, stub)
}

func (r *CutoffSelectionRule) Delete(ctx context.Context) error {
	stub, err := r.stub()
	if err != nil {
		return err
	}
	return r.base.Delete(ctx, stub)
}

func (r *CutoffSelectionRule) create(ctx context.Context, server *treeobject.ServerWrapper, parentPath resourcepath.Path) error {
	if r.stubs == nil {
		r.stubs = stubstore.New(func() CutoffSelectionRuleStub { return newCutoffSelectionRuleStub(server.Channel) })
	}
	return r.base.Create(ctx, newCutoffSelectionRuleStub(server.Channel), parentPath, CutoffSelectionRuleCollectionLabel, server)
}

func (r *CutoffSelectionRule) ParentPath() resourcepath.Path { return r.base.ResourcePath().Parent() }

func (r *CutoffSelectionRule) Clone() recursiveclone.Node {
	cloned := r.base.Properties().Clone().(*CutoffSelectionRuleProperties)
	return &CutoffSelectionRule{base: treeobject.NewUnstored(r.base.Name(), cloned)}
}

// CloneUnlinked returns an unstored copy with every link field cleared.
func (r *CutoffSelectionRule) CloneUnlinked() *CutoffSelectionRule {
	cloned := r.base.Properties().Clone().(*CutoffSelectionRuleProperties)
	cloned.ClearLinks()
	return &CutoffSelectionRule{base: treeobject.NewUnstored(r.base.Name(), cloned)}
}

func (r *CutoffSelectionRule) ChildObjects() []recursiveclone.Node { return nil }

// DirectLinks is empty: a cutoff rule's geometry/edge-set references are
// raw paths to external-geometry collaborators, not Node-cloneable entities
// in this library's own domain set (see CutoffSelectionRuleProperties).
func (r *CutoffSelectionRule) DirectLinks() []recursiveclone.DirectLink { return nil }
func (r *CutoffSelectionRule) LinkedObjectLists() []recursiveclone.LinkedObjectList { return nil }
func (r *CutoffSelectionRule) EdgePropertyLists() []recursiveclone.EdgePropertyList { return nil }

func (r *CutoffSelectionRule) Store(ctx context.Context, parent recursiveclone.Node) error {
	owner, ok := parent.(cutoffSelectionRuleOwner)
	if !ok {
		return apperrorInvalidParent("cutoff selection rule", parent)
	}
	return owner.storeCutoffSelectionRule(ctx, r)
}

type cutoffSelectionRuleOwner interface {
	storeCutoffSelectionRule(ctx context.Context, r *CutoffSelectionRule) error
}
