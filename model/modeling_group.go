package model

import (
	"context"

	"github.com/ansys/acp-client-go/handlecache"
	"github.com/ansys/acp-client-go/mapping"
	"github.com/ansys/acp-client-go/pkg/apperror"
	"github.com/ansys/acp-client-go/recursiveclone"
	"github.com/ansys/acp-client-go/registry"
	"github.com/ansys/acp-client-go/resourcepath"
	"github.com/ansys/acp-client-go/stubstore"
	"github.com/ansys/acp-client-go/treeobject"
)

// ModelingGroupCollectionLabel is the resource path collection segment
// under which every model's modeling groups live.
const ModelingGroupCollectionLabel = "modeling_groups"

// ModelingGroupProperties is the wire payload for a ModelingGroup. A
// modeling group carries no scalar state of its own beyond its name: it is
// purely a named container for modeling plies (grounded on
// modeling_group.py).
type ModelingGroupProperties struct{}

// Clone returns a copy. There is no mutable state to deep-copy.
func (p *ModelingGroupProperties) Clone() treeobject.Properties {
	clone := *p
	return &clone
}

// LinkedPaths is empty: a modeling group links to nothing directly; its
// plies carry their own links.
func (p *ModelingGroupProperties) LinkedPaths() []resourcepath.Path { return nil }

// ClearLinks is a no-op for the same reason.
func (p *ModelingGroupProperties) ClearLinks() {}

// ModelingGroupStub is the gRPC-facing surface a ModelingGroup needs.
type ModelingGroupStub = treeobject.FullStub[*ModelingGroupProperties]

// ModelingGroup is a named container of modeling plies, ordered by creation
// and iterated through its own ModelingPlies mapping (grounded
// on modeling_group.py).
type ModelingGroup struct {
	base  *treeobject.Base[*ModelingGroupProperties]
	stubs *stubstore.Store[ModelingGroupStub]

	plyStubs *stubstore.Store[ModelingPlyStub]
	plies    *handlecache.Cache[ModelingPly]
}

// NewModelingGroup creates an unstored modeling group.
func NewModelingGroup(name string) *ModelingGroup {
	if name == "" {
		name = "ModelingGroup"
	}
	return &ModelingGroup{base: treeobject.NewUnstored(name, &ModelingGroupProperties{})}
}

func init() {
	registry.Register(ModelingGroupCollectionLabel, registry.CachedConstructor(ModelingGroupCollectionLabel, func(path resourcepath.Path, server *treeobject.ServerWrapper) *ModelingGroup {
		return &ModelingGroup{base: treeobject.NewStored(treeobject.ObjectInfo[*ModelingGroupProperties]{
			Info: treeobject.Info{ResourcePath: path},
		}, server)}
	}))
}

func (g *ModelingGroup) stub() (ModelingGroupStub, error) {
	server, err := g.base.Server()
	if err != nil {
		return nil, err
	}
	if g.stubs == nil {
		g.stubs = stubstore.New(func() ModelingGroupStub { return newModelingGroupStub(server.Channel) })
	}
	return g.stubs.Get(g.base.IsStored())
}

func (g *ModelingGroup) modelingPlyStub() (ModelingPlyStub, error) {
	server, err := g.base.Server()
	if err != nil {
		return nil, err
	}
	if g.plyStubs == nil {
		g.plyStubs = stubstore.New(func() ModelingPlyStub { return newModelingPlyStub(server.Channel) })
	}
	return g.plyStubs.Get(g.base.IsStored())
}

// Name returns the group's display name as of the last Get or Put.
func (g *ModelingGroup) Name() string { return g.base.Name() }

// ResourcePath returns the group's resource path, or resourcepath.Empty if
// unstored.
func (g *ModelingGroup) ResourcePath() resourcepath.Path { return g.base.ResourcePath() }

// IsStored reports whether the group has server identity.
func (g *ModelingGroup) IsStored() bool { return g.base.IsStored() }

// ModelingPlies returns a read-through keyed view over the group's plies.
func (g *ModelingGroup) ModelingPlies() *mapping.Mapping[*ModelingPly] {
	return mapping.New(
		func(ctx context.Context) ([]*ModelingPly, error) {
			stub, err := g.modelingPlyStub()
			if err != nil {
				return nil, err
			}
			server, err := g.base.Server()
			if err != nil {
				return nil, err
			}
			collectionPath := resourcepath.FromString(g.base.ResourcePath().String() + "/" + ModelingPlyCollectionLabel)
			infos, err := stub.List(ctx, collectionPath)
			if err != nil {
				return nil, err
			}
			if g.plies == nil {
				g.plies = handlecache.New[ModelingPly]()
			}
			out := make([]*ModelingPly, len(infos))
			for i, oi := range infos {
				key := oi.Info.ResourcePath.String()
				out[i] = g.plies.FromObjectInfo(key, func() *ModelingPly {
					return &ModelingPly{base: treeobject.NewStored(oi, server)}
				})
			}
			return out, nil
		},
		func(ctx context.Context, key string) error {
			stub, err := g.modelingPlyStub()
			if err != nil {
				return err
			}
			ply, found := g.plies.Lookup(key)
			if !found {
				return apperror.Newf(apperror.KindNotFound, "no modeling ply cached for %s", key)
			}
			if err := ply.base.Delete(ctx, stub); err != nil {
				return err
			}
			g.plies.Evict(key)
			return nil
		},
	)
}

// CreateModelingPly stores ply under this group, registers it in the
// group's handle cache, and returns its stored handle.
func (g *ModelingGroup) CreateModelingPly(ctx context.Context, ply *ModelingPly) (*ModelingPly, error) {
	server, err := g.base.Server()
	if err != nil {
		return nil, err
	}
	if err := ply.create(ctx, server, g.base.ResourcePath()); err != nil {
		return nil, err
	}
	if g.plies == nil {
		g.plies = handlecache.New[ModelingPly]()
	}
	key := ply.ResourcePath().String()
	return g.plies.FromObjectInfo(key, func() *ModelingPly { return ply }), nil
}

// storeModelingPly implements modelingPlyOwner for a ply produced by
// recursiveclone.Copy.
func (g *ModelingGroup) storeModelingPly(ctx context.Context, ply *ModelingPly) error {
	_, err := g.CreateModelingPly(ctx, ply)
	return err
}

// Get refreshes the group's properties from the server.
func (g *ModelingGroup) Get(ctx context.Context) error {
	stub, err := g.stub()
	if err != nil {
		return err
	}
	return g.base.Get(ctx, stub)
}

// Delete removes the group from its owning model.
func (g *ModelingGroup) Delete(ctx context.Context) error {
	stub, err := g.stub()
	if err != nil {
		return err
	}
	return g.base.Delete(ctx, stub)
}

func (g *ModelingGroup) create(ctx context.Context, server *treeobject.ServerWrapper, parentPath resourcepath.Path) error {
	if g.stubs == nil {
		g.stubs = stubstore.New(func() ModelingGroupStub { return newModelingGroupStub(server.Channel) })
	}
	return g.base.Create(ctx, newModelingGroupStub(server.Channel), parentPath, ModelingGroupCollectionLabel, server)
}

// ParentPath returns the resource path of the model owning this group.
func (g *ModelingGroup) ParentPath() resourcepath.Path { return g.base.ResourcePath().Parent() }

// Clone returns an unstored copy of this group alone. Its plies are not
// copied here; ChildObjects exposes them for recursiveclone.Copy to restore
// under the new group.
func (g *ModelingGroup) Clone() recursiveclone.Node {
	cloned := g.base.Properties().Clone().(*ModelingGroupProperties)
	return &ModelingGroup{base: treeobject.NewUnstored(g.base.Name(), cloned)}
}

// CloneUnlinked returns an unstored copy with every link field cleared.
func (g *ModelingGroup) CloneUnlinked() *ModelingGroup {
	cloned := g.base.Properties().Clone().(*ModelingGroupProperties)
	cloned.ClearLinks()
	return &ModelingGroup{base: treeobject.NewUnstored(g.base.Name(), cloned)}
}

// ChildObjects returns the group's current plies, resolved best-effort, so
// that recursiveclone.Copy recreates them under the cloned group.
func (g *ModelingGroup) ChildObjects() []recursiveclone.Node {
	if !g.IsStored() {
		return nil
	}
	plies, err := g.ModelingPlies().Values(context.Background())
	if err != nil {
		return nil
	}
	out := make([]recursiveclone.Node, len(plies))
	for i, p := range plies {
		out[i] = p
	}
	return out
}

// DirectLinks is empty: a modeling group links to nothing directly.
func (g *ModelingGroup) DirectLinks() []recursiveclone.DirectLink { return nil }

// LinkedObjectLists is empty for the same reason.
func (g *ModelingGroup) LinkedObjectLists() []recursiveclone.LinkedObjectList { return nil }

// EdgePropertyLists is empty for the same reason.
func (g *ModelingGroup) EdgePropertyLists() []recursiveclone.EdgePropertyList { return nil }

// Store implements recursiveclone.Node by creating this (already-cloned)
// modeling group under parent.
func (g *ModelingGroup) Store(ctx context.Context, parent recursiveclone.Node) error {
	owner, ok := parent.(modelingGroupOwner)
	if !ok {
		return apperrorInvalidParent("modeling group", parent)
	}
	return owner.storeModelingGroup(ctx, g)
}

// modelingGroupOwner is implemented by Model.
type modelingGroupOwner interface {
	storeModelingGroup(ctx context.Context, g *ModelingGroup) error
}
