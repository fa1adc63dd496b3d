package model

import "google.golang.org/grpc"

// Every entity's gRPC-facing stub is built from a package-level factory
// variable rather than a generated protobuf client directly: the library
// has no bundled .proto/generated code (see DESIGN.md), so the concrete
// wiring is supplied once, at connection time, by the caller: a Factories
// value passed through acpinstance.Config.Factories or acpinstance.Configure
// is forwarded to Configure here. Until Configure is called, every factory panics with
// a clear message rather than silently returning a stub that does nothing.

var (
	newRosetteStub             = unwiredTyped[RosetteStub]("Rosette")
	newMaterialStub            = unwiredTyped[MaterialStub]("Material")
	newFabricStub              = unwiredTyped[FabricStub]("Fabric")
	newElementSetStub          = unwiredTyped[ElementSetStub]("ElementSet")
	newOrientedSelectionSetStub = unwiredTyped[OrientedSelectionSetStub]("OrientedSelectionSet")
	newModelingGroupStub       = unwiredTyped[ModelingGroupStub]("ModelingGroup")
	newModelingPlyStub         = unwiredTyped[ModelingPlyStub]("ModelingPly")
	newParallelSelectionRuleStub    = unwiredTyped[ParallelSelectionRuleStub]("ParallelSelectionRule")
	newCylindricalSelectionRuleStub = unwiredTyped[CylindricalSelectionRuleStub]("CylindricalSelectionRule")
	newSphericalSelectionRuleStub   = unwiredTyped[SphericalSelectionRuleStub]("SphericalSelectionRule")
	newBooleanSelectionRuleStub     = unwiredTyped[BooleanSelectionRuleStub]("BooleanSelectionRule")
	newCutoffSelectionRuleStub      = unwiredTyped[CutoffSelectionRuleStub]("CutoffSelectionRule")
	newSolidModelStub          = unwiredTyped[SolidModelStub]("SolidModel")
	newModelStub               = unwiredTyped[ModelStub]("Model")
)

func unwiredTyped[S any](entity string) func(grpc.ClientConnInterface) S {
	return func(grpc.ClientConnInterface) S {
		panic("model: no gRPC stub wired for " + entity + "; call acpinstance.Configure before using stored objects")
	}
}

// Factories bundles every entity's stub constructor. The caller builds one
// of these against its own protobuf clients; acpinstance.Configure (or
// acpinstance.Connect, via Config.Factories) passes it to model.Configure
// once, at connection setup.
type Factories struct {
	NewRosette             func(grpc.ClientConnInterface) RosetteStub
	NewMaterial            func(grpc.ClientConnInterface) MaterialStub
	NewFabric              func(grpc.ClientConnInterface) FabricStub
	NewElementSet          func(grpc.ClientConnInterface) ElementSetStub
	NewOrientedSelectionSet func(grpc.ClientConnInterface) OrientedSelectionSetStub
	NewModelingGroup       func(grpc.ClientConnInterface) ModelingGroupStub
	NewModelingPly         func(grpc.ClientConnInterface) ModelingPlyStub
	NewParallelSelectionRule    func(grpc.ClientConnInterface) ParallelSelectionRuleStub
	NewCylindricalSelectionRule func(grpc.ClientConnInterface) CylindricalSelectionRuleStub
	NewSphericalSelectionRule   func(grpc.ClientConnInterface) SphericalSelectionRuleStub
	NewBooleanSelectionRule     func(grpc.ClientConnInterface) BooleanSelectionRuleStub
	NewCutoffSelectionRule      func(grpc.ClientConnInterface) CutoffSelectionRuleStub
	NewSolidModel          func(grpc.ClientConnInterface) SolidModelStub
	NewModel               func(grpc.ClientConnInterface) ModelStub
}

// Configure installs f as the source of every entity's stub constructor.
// Fields left nil in f keep panicking on first use, so a partially wired
// client still fails loudly and precisely at the unimplemented entity
// rather than silently.
func Configure(f Factories) {
	if f.NewRosette != nil {
		newRosetteStub = f.NewRosette
	}
	if f.NewMaterial != nil {
		newMaterialStub = f.NewMaterial
	}
	if f.NewFabric != nil {
		newFabricStub = f.NewFabric
	}
	if f.NewElementSet != nil {
		newElementSetStub = f.NewElementSet
	}
	if f.NewOrientedSelectionSet != nil {
		newOrientedSelectionSetStub = f.NewOrientedSelectionSet
	}
	if f.NewModelingGroup != nil {
		newModelingGroupStub = f.NewModelingGroup
	}
	if f.NewModelingPly != nil {
		newModelingPlyStub = f.NewModelingPly
	}
	if f.NewParallelSelectionRule != nil {
		newParallelSelectionRuleStub = f.NewParallelSelectionRule
	}
	if f.NewCylindricalSelectionRule != nil {
		newCylindricalSelectionRuleStub = f.NewCylindricalSelectionRule
	}
	if f.NewSphericalSelectionRule != nil {
		newSphericalSelectionRuleStub = f.NewSphericalSelectionRule
	}
	if f.NewBooleanSelectionRule != nil {
		newBooleanSelectionRuleStub = f.NewBooleanSelectionRule
	}
	if f.NewCutoffSelectionRule != nil {
		newCutoffSelectionRuleStub = f.NewCutoffSelectionRule
	}
	if f.NewSolidModel != nil {
		newSolidModelStub = f.NewSolidModel
	}
	if f.NewModel != nil {
		newModelStub = f.NewModel
	}
}
