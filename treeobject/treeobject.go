// Package treeobject implements the generic Tree Object Base and Property
// Descriptor engine: the machinery shared by every
// entity in the model package for moving between "unstored" (local-only,
// client-assigned name) and "stored" (server-resident, resource-path
// addressable) lifecycle states, and for reading and writing individual
// properties through that lifecycle with version gating and error
// translation applied uniformly.
//
// A concrete entity (model.Rosette, model.Fabric, ...) holds a *Base[P]
// where P is that entity's own properties struct, and exposes typed
// accessor methods built on the Get/Set helpers in property.go.
package treeobject

import (
	"context"
	"strings"

	"github.com/Masterminds/semver/v3"
	"google.golang.org/grpc"

	"github.com/ansys/acp-client-go/filetransfer"
	"github.com/ansys/acp-client-go/pkg/apperror"
	"github.com/ansys/acp-client-go/resourcepath"
)

// Properties is implemented by every entity's properties struct. Clone
// produces a deep copy suitable for handing to a different, as-yet-unstored
// object (recursiveclone relies on this). LinkedPaths enumerates every
// resource path the properties struct currently references, and ClearLinks
// blanks them all out in place; both are used by the recursive clone
// algorithm to rewrite or sever cross-object links around a copy.
//
// Entity property structs satisfy Properties through a pointer receiver (so
// that Base[P] can mutate a property in place through P without an extra
// level of indirection); P is instantiated as that pointer type, e.g.
// Base[*RosetteProperties].
type Properties interface {
	Clone() Properties
	LinkedPaths() []resourcepath.Path
	ClearLinks()
}

// Info holds the server-assigned identity of a tree object: its display
// name, the resource path that addresses it, and the optimistic-concurrency
// version stamp returned by the last Get or Put.
type Info struct {
	Name         string
	ResourcePath resourcepath.Path
	Version      int64
}

// ObjectInfo is the full wire payload for a tree object: identity plus the
// entity-specific properties. Stub implementations exchange this type with
// the server.
type ObjectInfo[P Properties] struct {
	Info       Info
	Properties P
}

// ServerWrapper bundles everything a stored object needs to reach its
// server: the gRPC channel used to build each entity's own typed stub on
// first use, the negotiated server version for gating, and the file
// transfer strategy for path-carrying operations. One ServerWrapper is
// shared by every object stored against the same ACPInstance.
type ServerWrapper struct {
	Channel       grpc.ClientConnInterface
	ServerVersion *semver.Version
	FileTransfer  filetransfer.Strategy
}

// Base is the generic lifecycle state machine shared by every tree object.
// It holds the object's current identity and properties and, once stored,
// the server wrapper needed to issue further RPCs.
type Base[P Properties] struct {
	info       Info
	properties P
	server     *ServerWrapper
}

// NewUnstored constructs a fresh, client-only Base with the given display
// name and initial properties. It has no resource path and no server; it
// becomes stored only once passed to a Creator's Create call.
func NewUnstored[P Properties](name string, properties P) *Base[P] {
	return &Base[P]{info: Info{Name: name}, properties: properties}
}

// NewStored constructs a Base already bound to a server, as returned by a
// Get, List, or Create call.
func NewStored[P Properties](oi ObjectInfo[P], server *ServerWrapper) *Base[P] {
	return &Base[P]{info: oi.Info, properties: oi.Properties, server: server}
}

// IsStored reports whether the object currently has server identity.
func (b *Base[P]) IsStored() bool {
	return b.server != nil
}

// ResourcePath returns the object's resource path, or resourcepath.Empty if
// unstored.
func (b *Base[P]) ResourcePath() resourcepath.Path {
	return b.info.ResourcePath
}

// Name returns the object's display name as of the last Get or Put.
func (b *Base[P]) Name() string {
	return b.info.Name
}

// SetLocalName sets the display name directly, without a round trip. It is
// used for unstored objects, where the name is purely a client-side label
// until the object is created.
func (b *Base[P]) SetLocalName(name string) {
	b.info.Name = name
}

// Version returns the optimistic-concurrency stamp from the last Get or Put.
func (b *Base[P]) Version() int64 {
	return b.info.Version
}

// Properties returns the current, possibly stale, properties snapshot.
func (b *Base[P]) Properties() P {
	return b.properties
}

// SetProperties overwrites the properties snapshot directly, without a round
// trip. Used for unstored objects and by recursive clone when seeding a copy.
func (b *Base[P]) SetProperties(p P) {
	b.properties = p
}

// ServerVersion returns the negotiated server version, or nil if unstored.
func (b *Base[P]) ServerVersion() *semver.Version {
	if b.server == nil {
		return nil
	}
	return b.server.ServerVersion
}

// Server returns the bound server wrapper, or an error if the object is
// unstored: operations requiring a server raise on an unstored handle.
func (b *Base[P]) Server() (*ServerWrapper, error) {
	if b.server == nil {
		return nil, apperror.New(apperror.KindRuntime, "this object is not yet stored on a server")
	}
	return b.server, nil
}

// Get refreshes info and properties from the server via stub, and is a
// no-op for an unstored object.
func (b *Base[P]) Get(ctx context.Context, stub Reader[P]) error {
	if !b.IsStored() {
		return nil
	}
	oi, err := stub.Get(ctx, b.info.ResourcePath)
	if err != nil {
		return err
	}
	b.info = oi.Info
	b.properties = oi.Properties
	return nil
}

// Put writes the current info and properties back to the server via stub,
// and is a no-op for an unstored object (there is nothing to write yet).
func (b *Base[P]) Put(ctx context.Context, stub Writer[P]) error {
	if !b.IsStored() {
		return nil
	}
	oi, err := stub.Put(ctx, ObjectInfo[P]{Info: b.info, Properties: b.properties})
	if err != nil {
		return err
	}
	b.info = oi.Info
	b.properties = oi.Properties
	return nil
}

// validateLinksShareModel rejects a create whose properties carry a link
// path into a different model than the one parentPath resolves under. A
// parentPath with fewer than one (collection, uid) pair (the root "create a
// model" case) has no model to check against and is always accepted.
func validateLinksShareModel(props Properties, parentPath resourcepath.Path) error {
	parts := parentPath.Parts()
	if len(parts) < 2 {
		return nil
	}
	modelPath := resourcepath.FromParts(parts[0], parts[1])

	var offending []string
	for _, link := range props.LinkedPaths() {
		if link.IsEmpty() {
			continue
		}
		if !resourcepath.SharesModel(link, modelPath) {
			offending = append(offending, link.String())
		}
	}
	if len(offending) == 0 {
		return nil
	}
	return apperror.Newf(apperror.KindInvalidArgument,
		"object contains links outside its model: %s", strings.Join(offending, ", "))
}

// Create stores a previously-unstored object under parentPath via stub,
// binding it to server for the rest of its lifetime. Calling Create on an
// already-stored object is a programmer error. If the object's properties
// carry a link path into a model other than the one parentPath belongs to,
// Create rejects it with KindInvalidArgument rather than letting the server
// reject a cross-model reference later.
func (b *Base[P]) Create(ctx context.Context, stub Creator[P], parentPath resourcepath.Path, collectionLabel string, server *ServerWrapper) error {
	if b.IsStored() {
		return apperror.New(apperror.KindRuntime, "this object is already stored on a server")
	}
	if err := validateLinksShareModel(b.properties, parentPath); err != nil {
		return err
	}
	oi, err := stub.Create(ctx, parentPath, collectionLabel, ObjectInfo[P]{Info: b.info, Properties: b.properties})
	if err != nil {
		return err
	}
	b.info = oi.Info
	b.properties = oi.Properties
	b.server = server
	return nil
}

// Delete removes the object from the server via stub. The caller is
// responsible for evicting the object from its handle cache afterwards;
// Base has no cache reference of its own.
func (b *Base[P]) Delete(ctx context.Context, stub Deleter) error {
	if !b.IsStored() {
		return apperror.New(apperror.KindRuntime, "cannot delete an object that is not stored on a server")
	}
	if err := stub.Delete(ctx, b.info.ResourcePath, b.info.Version); err != nil {
		return err
	}
	b.server = nil
	return nil
}

// Linkable is the minimal surface a link-target handle exposes to the
// property engine: whether it is stored, and if so its resource path. Every
// *Base[P] satisfies it, so any entity built on Base can be linked to.
type Linkable interface {
	IsStored() bool
	ResourcePath() resourcepath.Path
}

// LinkPathOf converts a link target handle into the resource path to store
// in a link field, raising KindInvalidArgument if the target is non-nil but
// not yet stored: the setter requires the target to already be stored.
// A nil target clears the link.
func LinkPathOf(target Linkable) (resourcepath.Path, error) {
	if target == nil {
		return resourcepath.Empty, nil
	}
	if !target.IsStored() {
		return resourcepath.Empty, apperror.New(apperror.KindInvalidArgument, "cannot link to an object that is not stored on a server")
	}
	return target.ResourcePath(), nil
}
