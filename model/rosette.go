package model

import (
	"context"

	"github.com/ansys/acp-client-go/recursiveclone"
	"github.com/ansys/acp-client-go/registry"
	"github.com/ansys/acp-client-go/resourcepath"
	"github.com/ansys/acp-client-go/stubstore"
	"github.com/ansys/acp-client-go/treeobject"
)

// RosetteCollectionLabel is the resource path collection segment under which
// every model's rosettes live.
const RosetteCollectionLabel = "rosettes"

// RosetteProperties is the wire payload for a Rosette: an oriented reference
// frame defined by an origin and two direction vectors, used to assign
// element coordinate systems. Locked and Status are server-computed and
// read-only.
type RosetteProperties struct {
	Locked bool
	Status Status

	Origin Vector3
	Dir1   Vector3
	Dir2   Vector3
}

// Clone returns a deep copy. Rosette properties hold only value types, so a
// shallow struct copy is already a deep copy.
func (p *RosetteProperties) Clone() treeobject.Properties {
	clone := *p
	return &clone
}

// LinkedPaths is empty: a rosette links to nothing else.
func (p *RosetteProperties) LinkedPaths() []resourcepath.Path { return nil }

// ClearLinks is a no-op for the same reason.
func (p *RosetteProperties) ClearLinks() {}

// RosetteStub is the gRPC-facing surface a Rosette needs: full CRUD plus
// listing, since rosettes are both directly addressable and enumerable
// under a model.
type RosetteStub = treeobject.FullStub[*RosetteProperties]

// Rosette is an oriented reference frame used to assign material
// orientations to elements (grounded on rosette.py).
type Rosette struct {
	base  *treeobject.Base[*RosetteProperties]
	stubs *stubstore.Store[RosetteStub]
}

// NewRosette creates an unstored rosette with the given name and frame
// vectors. Call Model.CreateRosette to store it.
func NewRosette(name string, origin, dir1, dir2 Vector3) *Rosette {
	if name == "" {
		name = "Rosette"
	}
	props := &RosetteProperties{Origin: origin, Dir1: dir1, Dir2: dir2}
	return &Rosette{base: treeobject.NewUnstored(name, props)}
}

func newRosetteFromInfo(oi treeobject.ObjectInfo[*RosetteProperties], server *treeobject.ServerWrapper) *Rosette {
	return &Rosette{base: treeobject.NewStored(oi, server)}
}

func init() {
	registry.Register(RosetteCollectionLabel, registry.CachedConstructor(RosetteCollectionLabel, func(path resourcepath.Path, server *treeobject.ServerWrapper) *Rosette {
		return &Rosette{base: treeobject.NewStored(treeobject.ObjectInfo[*RosetteProperties]{
			Info: treeobject.Info{ResourcePath: path},
		}, server)}
	}))
}

func (r *Rosette) stub() (RosetteStub, error) {
	server, err := r.base.Server()
	if err != nil {
		return nil, err
	}
	if r.stubs == nil {
		r.stubs = stubstore.New(func() RosetteStub { return newRosetteStub(server.Channel) })
	}
	return r.stubs.Get(r.base.IsStored())
}

// Name returns the rosette's display name as of the last Get or Put.
func (r *Rosette) Name() string { return r.base.Name() }

// ResourcePath returns the rosette's resource path, or resourcepath.Empty if
// unstored.
func (r *Rosette) ResourcePath() resourcepath.Path { return r.base.ResourcePath() }

// IsStored reports whether the rosette has server identity.
func (r *Rosette) IsStored() bool { return r.base.IsStored() }

// Locked reports whether the owning model currently has this rosette locked
// against edits.
func (r *Rosette) Locked(ctx context.Context) (bool, error) {
	stub, err := r.stub()
	if err != nil {
		return false, err
	}
	return treeobject.GetScalar(ctx, r.base, stub, "", "locked", func(p *RosetteProperties) bool { return p.Locked })
}

// Status returns the server-computed validity status.
func (r *Rosette) Status(ctx context.Context) (Status, error) {
	stub, err := r.stub()
	if err != nil {
		return "", err
	}
	return treeobject.GetScalar(ctx, r.base, stub, "", "status", func(p *RosetteProperties) Status { return p.Status })
}

// Origin returns the rosette's origin point.
func (r *Rosette) Origin(ctx context.Context) (Vector3, error) {
	stub, err := r.stub()
	if err != nil {
		return Vector3{}, err
	}
	return treeobject.GetScalar(ctx, r.base, stub, "", "origin", func(p *RosetteProperties) Vector3 { return p.Origin })
}

// SetOrigin updates the rosette's origin point.
func (r *Rosette) SetOrigin(ctx context.Context, v Vector3) error {
	stub, err := r.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, r.base, stub, "", "origin",
		func(p *RosetteProperties) Vector3 { return p.Origin },
		func(p *RosetteProperties, v Vector3) { p.Origin = v },
		func(a, b Vector3) bool { return a == b },
		v)
}

// Dir1 returns the rosette's first in-plane direction vector.
func (r *Rosette) Dir1(ctx context.Context) (Vector3, error) {
	stub, err := r.stub()
	if err != nil {
		return Vector3{}, err
	}
	return treeobject.GetScalar(ctx, r.base, stub, "", "dir1", func(p *RosetteProperties) Vector3 { return p.Dir1 })
}

// SetDir1 updates the rosette's first in-plane direction vector.
func (r *Rosette) SetDir1(ctx context.Context, v Vector3) error {
	stub, err := r.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, r.base, stub, "", "dir1",
		func(p *RosetteProperties) Vector3 { return p.Dir1 },
		func(p *RosetteProperties, v Vector3) { p.Dir1 = v },
		func(a, b Vector3) bool { return a == b },
		v)
}

// Dir2 returns the rosette's second in-plane direction vector.
func (r *Rosette) Dir2(ctx context.Context) (Vector3, error) {
	stub, err := r.stub()
	if err != nil {
		return Vector3{}, err
	}
	return treeobject.GetScalar(ctx, r.base, stub, "", "dir2", func(p *RosetteProperties) Vector3 { return p.Dir2 })
}

// SetDir2 updates the rosette's second in-plane direction vector.
func (r *Rosette) SetDir2(ctx context.Context, v Vector3) error {
	stub, err := r.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, r.base, stub, "", "dir2",
		func(p *RosetteProperties) Vector3 { return p.Dir2 },
		func(p *RosetteProperties, v Vector3) { p.Dir2 = v },
		func(a, b Vector3) bool { return a == b },
		v)
}

// Get refreshes the rosette's properties from the server.
func (r *Rosette) Get(ctx context.Context) error {
	stub, err := r.stub()
	if err != nil {
		return err
	}
	return r.base.Get(ctx, stub)
}

// Delete removes the rosette from its owning model.
func (r *Rosette) Delete(ctx context.Context) error {
	stub, err := r.stub()
	if err != nil {
		return err
	}
	return r.base.Delete(ctx, stub)
}

// create stores a previously-unstored rosette under parentPath. It is called
// by Model.CreateRosette rather than exposed directly, since creation needs the
// owning model's server wrapper and parent path.
func (r *Rosette) create(ctx context.Context, server *treeobject.ServerWrapper, parentPath resourcepath.Path) error {
	if r.stubs == nil {
		r.stubs = stubstore.New(func() RosetteStub { return newRosetteStub(server.Channel) })
	}
	return r.base.Create(ctx, newRosetteStub(server.Channel), parentPath, RosetteCollectionLabel, server)
}

// The remaining methods satisfy recursiveclone.Node, letting a Rosette
// participate as a link target or a direct child in a recursive clone even
// though it has no children or links of its own.

// ParentPath returns the resource path of the model owning this rosette.
func (r *Rosette) ParentPath() resourcepath.Path {
	return r.base.ResourcePath().Parent()
}

// Clone returns an unstored copy sharing this rosette's current properties,
// for use by recursiveclone.Copy.
func (r *Rosette) Clone() recursiveclone.Node {
	cloned := r.base.Properties().Clone().(*RosetteProperties)
	return &Rosette{base: treeobject.NewUnstored(r.base.Name(), cloned)}
}

// CloneUnlinked returns an unstored copy with every link field cleared.
func (r *Rosette) CloneUnlinked() *Rosette {
	cloned := r.base.Properties().Clone().(*RosetteProperties)
	cloned.ClearLinks()
	return &Rosette{base: treeobject.NewUnstored(r.base.Name(), cloned)}
}

// ChildObjects is empty: a rosette owns no nested tree objects.
func (r *Rosette) ChildObjects() []recursiveclone.Node { return nil }

// DirectLinks is empty: a rosette links to nothing else.
func (r *Rosette) DirectLinks() []recursiveclone.DirectLink { return nil }

// LinkedObjectLists is empty for the same reason.
func (r *Rosette) LinkedObjectLists() []recursiveclone.LinkedObjectList { return nil }

// EdgePropertyLists is empty for the same reason.
func (r *Rosette) EdgePropertyLists() []recursiveclone.EdgePropertyList { return nil }

// Store implements recursiveclone.Node by creating this (already-cloned)
// rosette under parent, which must itself support Rosette creation.
func (r *Rosette) Store(ctx context.Context, parent recursiveclone.Node) error {
	owner, ok := parent.(rosetteOwner)
	if !ok {
		return apperrorInvalidParent("rosette", parent)
	}
	return owner.storeRosette(ctx, r)
}

// rosetteOwner is implemented by Model, letting recursiveclone.Copy store a
// cloned Rosette under its new parent model without Model depending on
// recursiveclone directly.
type rosetteOwner interface {
	storeRosette(ctx context.Context, r *Rosette) error
}
