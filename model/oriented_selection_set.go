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

// OrientedSelectionSetCollectionLabel is the resource path collection
// segment under which every model's oriented selection sets live.
const OrientedSelectionSetCollectionLabel = "oriented_selection_sets"

// OrientedSelectionSetProperties is the wire payload for an
// OrientedSelectionSet: a membership of element sets plus the orientation
// and rosette data used to assign per-element material directions. Status
// is server-computed and read-only.
type OrientedSelectionSetProperties struct {
	Status Status

	ElementSetPaths []resourcepath.Path

	OrientationPoint     Vector3
	OrientationDirection Vector3

	RosettePaths           []resourcepath.Path
	RosetteSelectionMethod RosetteSelectionMethod
}

// Clone returns a deep copy, including both link-path slices.
func (p *OrientedSelectionSetProperties) Clone() treeobject.Properties {
	clone := *p
	clone.ElementSetPaths = append([]resourcepath.Path(nil), p.ElementSetPaths...)
	clone.RosettePaths = append([]resourcepath.Path(nil), p.RosettePaths...)
	return &clone
}

// LinkedPaths returns every linked element set and rosette path.
func (p *OrientedSelectionSetProperties) LinkedPaths() []resourcepath.Path {
	out := make([]resourcepath.Path, 0, len(p.ElementSetPaths)+len(p.RosettePaths))
	out = append(out, p.ElementSetPaths...)
	out = append(out, p.RosettePaths...)
	return out
}

// ClearLinks empties both link-path slices in place.
func (p *OrientedSelectionSetProperties) ClearLinks() {
	p.ElementSetPaths = nil
	p.RosettePaths = nil
}

// OrientedSelectionSetStub is the gRPC-facing surface an
// OrientedSelectionSet needs.
type OrientedSelectionSetStub = treeobject.FullStub[*OrientedSelectionSetProperties]

// OrientedSelectionSet assigns a consistent element orientation, built from
// an orientation point/direction and an optional rosette fallback, to the
// elements named by its linked element sets (grounded on
// oriented_selection_set.py).
type OrientedSelectionSet struct {
	base  *treeobject.Base[*OrientedSelectionSetProperties]
	stubs *stubstore.Store[OrientedSelectionSetStub]
}

// NewOrientedSelectionSet creates an unstored oriented selection set.
// elementSets and rosettes must already be stored; pass nil for either to
// start with an empty list.
func NewOrientedSelectionSet(name string, elementSets []*ElementSet, orientationPoint, orientationDirection Vector3, rosettes []*Rosette) (*OrientedSelectionSet, error) {
	if name == "" {
		name = "OrientedSelectionSet"
	}
	elementSetPaths, err := storedPaths(elementSets, func(e *ElementSet) treeobject.Linkable { return e.base })
	if err != nil {
		return nil, err
	}
	rosettePaths, err := storedPaths(rosettes, func(r *Rosette) treeobject.Linkable { return r.base })
	if err != nil {
		return nil, err
	}
	props := &OrientedSelectionSetProperties{
		ElementSetPaths:         elementSetPaths,
		OrientationPoint:        orientationPoint,
		OrientationDirection:    orientationDirection,
		RosettePaths:            rosettePaths,
		RosetteSelectionMethod:  RosetteSelectionMinimumAngle,
	}
	return &OrientedSelectionSet{base: treeobject.NewUnstored(name, props)}, nil
}

// storedPaths converts a slice of already-stored link targets into their
// resource paths, raising on the first one that is not yet stored.
func storedPaths[T any](targets []T, linkableOf func(T) treeobject.Linkable) ([]resourcepath.Path, error) {
	if len(targets) == 0 {
		return nil, nil
	}
	out := make([]resourcepath.Path, len(targets))
	for i, t := range targets {
		path, err := treeobject.LinkPathOf(linkableOf(t))
		if err != nil {
			return nil, err
		}
		out[i] = path
	}
	return out, nil
}

func init() {
	registry.Register(OrientedSelectionSetCollectionLabel, registry.CachedConstructor(OrientedSelectionSetCollectionLabel, func(path resourcepath.Path, server *treeobject.ServerWrapper) *OrientedSelectionSet {
		return &OrientedSelectionSet{base: treeobject.NewStored(treeobject.ObjectInfo[*OrientedSelectionSetProperties]{
			Info: treeobject.Info{ResourcePath: path},
		}, server)}
	}))
}

func (o *OrientedSelectionSet) stub() (OrientedSelectionSetStub, error) {
	server, err := o.base.Server()
	if err != nil {
		return nil, err
	}
	if o.stubs == nil {
		o.stubs = stubstore.New(func() OrientedSelectionSetStub { return newOrientedSelectionSetStub(server.Channel) })
	}
	return o.stubs.Get(o.base.IsStored())
}

// Name returns the set's display name as of the last Get or Put.
func (o *OrientedSelectionSet) Name() string { return o.base.Name() }

// ResourcePath returns the set's resource path, or resourcepath.Empty if
// unstored.
func (o *OrientedSelectionSet) ResourcePath() resourcepath.Path { return o.base.ResourcePath() }

// IsStored reports whether the set has server identity.
func (o *OrientedSelectionSet) IsStored() bool { return o.base.IsStored() }

// Status returns the server-computed validity status.
func (o *OrientedSelectionSet) Status(ctx context.Context) (Status, error) {
	stub, err := o.stub()
	if err != nil {
		return "", err
	}
	return treeobject.GetScalar(ctx, o.base, stub, "", "status", func(p *OrientedSelectionSetProperties) Status { return p.Status })
}

// OrientationPoint returns the reference point orientations are measured
// from.
func (o *OrientedSelectionSet) OrientationPoint(ctx context.Context) (Vector3, error) {
	stub, err := o.stub()
	if err != nil {
		return Vector3{}, err
	}
	return treeobject.GetScalar(ctx, o.base, stub, "", "orientation_point", func(p *OrientedSelectionSetProperties) Vector3 { return p.OrientationPoint })
}

// SetOrientationPoint updates the reference point.
func (o *OrientedSelectionSet) SetOrientationPoint(ctx context.Context, v Vector3) error {
	stub, err := o.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, o.base, stub, "", "orientation_point",
		func(p *OrientedSelectionSetProperties) Vector3 { return p.OrientationPoint },
		func(p *OrientedSelectionSetProperties, v Vector3) { p.OrientationPoint = v },
		func(a, b Vector3) bool { return a == b }, v)
}

// OrientationDirection returns the direction orientations sweep towards
// from OrientationPoint.
func (o *OrientedSelectionSet) OrientationDirection(ctx context.Context) (Vector3, error) {
	stub, err := o.stub()
	if err != nil {
		return Vector3{}, err
	}
	return treeobject.GetScalar(ctx, o.base, stub, "", "orientation_direction", func(p *OrientedSelectionSetProperties) Vector3 { return p.OrientationDirection })
}

// SetOrientationDirection updates the orientation direction.
func (o *OrientedSelectionSet) SetOrientationDirection(ctx context.Context, v Vector3) error {
	stub, err := o.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, o.base, stub, "", "orientation_direction",
		func(p *OrientedSelectionSetProperties) Vector3 { return p.OrientationDirection },
		func(p *OrientedSelectionSetProperties, v Vector3) { p.OrientationDirection = v },
		func(a, b Vector3) bool { return a == b }, v)
}

// RosetteSelectionMethod returns how a multi-rosette set resolves its
// fallback rosette per element.
func (o *OrientedSelectionSet) RosetteSelectionMethod(ctx context.Context) (RosetteSelectionMethod, error) {
	stub, err := o.stub()
	if err != nil {
		return "", err
	}
	return treeobject.GetScalar(ctx, o.base, stub, "", "rosette_selection_method", func(p *OrientedSelectionSetProperties) RosetteSelectionMethod { return p.RosetteSelectionMethod })
}

// SetRosetteSelectionMethod updates that resolution method.
func (o *OrientedSelectionSet) SetRosetteSelectionMethod(ctx context.Context, v RosetteSelectionMethod) error {
	stub, err := o.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, o.base, stub, "", "rosette_selection_method",
		func(p *OrientedSelectionSetProperties) RosetteSelectionMethod { return p.RosetteSelectionMethod },
		func(p *OrientedSelectionSetProperties, v RosetteSelectionMethod) { p.RosetteSelectionMethod = v },
		func(a, b RosetteSelectionMethod) bool { return a == b }, v)
}

// ElementSets returns the set's linked element sets as an ordered,
// index-addressable list.
func (o *OrientedSelectionSet) ElementSets() *orderedlist.List[resourcepath.Path, *ElementSet] {
	return orderedlist.New(
		func(ctx context.Context) ([]resourcepath.Path, error) {
			stub, err := o.stub()
			if err != nil {
				return nil, err
			}
			return treeobject.GetScalar(ctx, o.base, stub, "", "element_sets", func(p *OrientedSelectionSetProperties) []resourcepath.Path { return p.ElementSetPaths })
		},
		func(ctx context.Context, values []resourcepath.Path) error {
			stub, err := o.stub()
			if err != nil {
				return err
			}
			return treeobject.SetScalar(ctx, o.base, stub, "", "element_sets",
				func(p *OrientedSelectionSetProperties) []resourcepath.Path { return p.ElementSetPaths },
				func(p *OrientedSelectionSetProperties, v []resourcepath.Path) { p.ElementSetPaths = v },
				func(a, b []resourcepath.Path) bool { return false }, values)
		},
		func(e *ElementSet) (resourcepath.Path, error) { return treeobject.LinkPathOf(e.base) },
		func(path resourcepath.Path) (*ElementSet, error) {
			server, err := o.base.Server()
			if err != nil {
				return nil, err
			}
			return registry.ResolveAs[*ElementSet](path, server)
		},
		func(a, b resourcepath.Path) bool { return a.Equal(b) },
	)
}

// Rosettes returns the set's linked fallback rosettes as an ordered,
// index-addressable list.
func (o *OrientedSelectionSet) Rosettes() *orderedlist.List[resourcepath.Path, *Rosette] {
	return orderedlist.New(
		func(ctx context.Context) ([]resourcepath.Path, error) {
			stub, err := o.stub()
			if err != nil {
				return nil, err
			}
			return treeobject.GetScalar(ctx, o.base, stub, "", "rosettes", func(p *OrientedSelectionSetProperties) []resourcepath.Path { return p.RosettePaths })
		},
		func(ctx context.Context, values []resourcepath.Path) error {
			stub, err := o.stub()
			if err != nil {
				return err
			}
			return treeobject.SetScalar(ctx, o.base, stub, "", "rosettes",
				func(p *OrientedSelectionSetProperties) []resourcepath.Path { return p.RosettePaths },
				func(p *OrientedSelectionSetProperties, v []resourcepath.Path) { p.RosettePaths = v },
				func(a, b []resourcepath.Path) bool { return false }, values)
		},
		func(r *Rosette) (resourcepath.Path, error) { return treeobject.LinkPathOf(r.base) },
		func(path resourcepath.Path) (*Rosette, error) {
			server, err := o.base.Server()
			if err != nil {
				return nil, err
			}
			return registry.ResolveAs[*Rosette](path, server)
		},
		func(a, b resourcepath.Path) bool { return a.Equal(b) },
	)
}

// Get refreshes the set's properties from the server.
func (o *OrientedSelectionSet) Get(ctx context.Context) error {
	stub, err := o.stub()
	if err != nil {
		return err
	}
	return o.base.Get(ctx, stub)
}

// Delete removes the set from its owning model.
func (o *OrientedSelectionSet) Delete(ctx context.Context) error {
	stub, err := o.stub()
	if err != nil {
		return err
	}
	return o.base.Delete(ctx, stub)
}

func (o *OrientedSelectionSet) create(ctx context.Context, server *treeobject.ServerWrapper, parentPath resourcepath.Path) error {
	if o.stubs == nil {
		o.stubs = stubstore.New(func() OrientedSelectionSetStub { return newOrientedSelectionSetStub(server.Channel) })
	}
	return o.base.Create(ctx, newOrientedSelectionSetStub(server.Channel), parentPath, OrientedSelectionSetCollectionLabel, server)
}

// ParentPath returns the resource path of the model owning this set.
func (o *OrientedSelectionSet) ParentPath() resourcepath.Path { return o.base.ResourcePath().Parent() }

// Clone returns an unstored copy sharing this set's current properties, for
// use by recursiveclone.Copy.
func (o *OrientedSelectionSet) Clone() recursiveclone.Node {
	cloned := o.base.Properties().Clone().(*OrientedSelectionSetProperties)
	return &OrientedSelectionSet{base: treeobject.NewUnstored(o.base.Name(), cloned)}
}

// CloneUnlinked returns an unstored copy with every link field cleared.
func (o *OrientedSelectionSet) CloneUnlinked() *OrientedSelectionSet {
	cloned := o.base.Properties().Clone().(*OrientedSelectionSetProperties)
	cloned.ClearLinks()
	return &OrientedSelectionSet{base: treeobject.NewUnstored(o.base.Name(), cloned)}
}

// ChildObjects is empty: an oriented selection set owns no nested tree
// objects.
func (o *OrientedSelectionSet) ChildObjects() []recursiveclone.Node { return nil }

// DirectLinks is empty: both of this set's link fields are lists, not
// single-valued links.
func (o *OrientedSelectionSet) DirectLinks() []recursiveclone.DirectLink { return nil }

// LinkedObjectLists exposes the set's linked element sets and rosettes.
func (o *OrientedSelectionSet) LinkedObjectLists() []recursiveclone.LinkedObjectList {
	props := o.base.Properties()
	server, _ := o.base.Server()
	return []recursiveclone.LinkedObjectList{
		resolvedLinkList(server, props.ElementSetPaths, func(p resourcepath.Path) { props.ElementSetPaths = append(props.ElementSetPaths, p) },
			func() { props.ElementSetPaths = nil }),
		resolvedLinkList(server, props.RosettePaths, func(p resourcepath.Path) { props.RosettePaths = append(props.RosettePaths, p) },
			func() { props.RosettePaths = nil }),
	}
}

// resolvedLinkList builds one recursiveclone.LinkedObjectList entry from a
// stored path slice: Targets is best-effort resolved (nil entries are
// dropped rather than erroring, matching an unstored clone's empty-server
// state), and Set rewrites the path slice wholesale from the given new
// targets.
func resolvedLinkList(server *treeobject.ServerWrapper, paths []resourcepath.Path, appendPath func(resourcepath.Path), reset func()) recursiveclone.LinkedObjectList {
	var targets []recursiveclone.Node
	if server != nil {
		for _, path := range paths {
			if obj, err := registry.Resolve(path, server); err == nil {
				if node, ok := obj.(recursiveclone.Node); ok {
					targets = append(targets, node)
				}
			}
		}
	}
	return recursiveclone.LinkedObjectList{
		Targets: targets,
		Set: func(ctx context.Context, newTargets []recursiveclone.Node) error {
			reset()
			for _, t := range newTargets {
				appendPath(t.ResourcePath())
			}
			return nil
		},
	}
}

// EdgePropertyLists is empty: an oriented selection set has no
// edge-property-list fields.
func (o *OrientedSelectionSet) EdgePropertyLists() []recursiveclone.EdgePropertyList { return nil }

// Store implements recursiveclone.Node by creating this (already-cloned)
// oriented selection set under parent.
func (o *OrientedSelectionSet) Store(ctx context.Context, parent recursiveclone.Node) error {
	owner, ok := parent.(orientedSelectionSetOwner)
	if !ok {
		return apperrorInvalidParent("oriented selection set", parent)
	}
	return owner.storeOrientedSelectionSet(ctx, o)
}

// orientedSelectionSetOwner is implemented by Model.
type orientedSelectionSetOwner interface {
	storeOrientedSelectionSet(ctx context.Context, o *OrientedSelectionSet) error
}
