package model

import (
	"context"

	"github.com/ansys/acp-client-go/recursiveclone"
	"github.com/ansys/acp-client-go/registry"
	"github.com/ansys/acp-client-go/resourcepath"
	"github.com/ansys/acp-client-go/stubstore"
	"github.com/ansys/acp-client-go/treeobject"
)

// ElementSetCollectionLabel is the resource path collection segment under
// which every model's element sets live.
const ElementSetCollectionLabel = "element_sets"

// ElementSetProperties is the wire payload for an ElementSet: a named
// selection of mesh elements by label, identified purely by its membership
// list. Locked and Status are server-computed and read-only.
type ElementSetProperties struct {
	Locked bool
	Status Status

	MiddleOffset  bool
	ElementLabels []int32
}

// Clone returns a deep copy, including ElementLabels.
func (p *ElementSetProperties) Clone() treeobject.Properties {
	clone := *p
	clone.ElementLabels = cloneIntSlice(p.ElementLabels)
	return &clone
}

// LinkedPaths is empty: an element set links to nothing else.
func (p *ElementSetProperties) LinkedPaths() []resourcepath.Path { return nil }

// ClearLinks is a no-op for the same reason.
func (p *ElementSetProperties) ClearLinks() {}

// ElementSetStub is the gRPC-facing surface an ElementSet needs.
type ElementSetStub = treeobject.FullStub[*ElementSetProperties]

// ElementSet names a fixed group of mesh elements by label, used as the
// membership source for an OrientedSelectionSet (grounded on
// element_set.py).
type ElementSet struct {
	base  *treeobject.Base[*ElementSetProperties]
	stubs *stubstore.Store[ElementSetStub]
}

// NewElementSet creates an unstored element set with the given labels.
func NewElementSet(name string, middleOffset bool, elementLabels []int32) *ElementSet {
	if name == "" {
		name = "ElementSet"
	}
	props := &ElementSetProperties{MiddleOffset: middleOffset, ElementLabels: cloneIntSlice(elementLabels)}
	return &ElementSet{base: treeobject.NewUnstored(name, props)}
}

func init() {
	registry.Register(ElementSetCollectionLabel, registry.CachedConstructor(ElementSetCollectionLabel, func(path resourcepath.Path, server *treeobject.ServerWrapper) *ElementSet {
		return &ElementSet{base: treeobject.NewStored(treeobject.ObjectInfo[*ElementSetProperties]{
			Info: treeobject.Info{ResourcePath: path},
		}, server)}
	}))
}

func (e *ElementSet) stub() (ElementSetStub, error) {
	server, err := e.base.Server()
	if err != nil {
		return nil, err
	}
	if e.stubs == nil {
		e.stubs = stubstore.New(func() ElementSetStub { return newElementSetStub(server.Channel) })
	}
	return e.stubs.Get(e.base.IsStored())
}

// Name returns the element set's display name as of the last Get or Put.
func (e *ElementSet) Name() string { return e.base.Name() }

// ResourcePath returns the element set's resource path, or
// resourcepath.Empty if unstored.
func (e *ElementSet) ResourcePath() resourcepath.Path { return e.base.ResourcePath() }

// IsStored reports whether the element set has server identity.
func (e *ElementSet) IsStored() bool { return e.base.IsStored() }

// Locked reports whether the owning model currently has this element set
// locked against edits.
func (e *ElementSet) Locked(ctx context.Context) (bool, error) {
	stub, err := e.stub()
	if err != nil {
		return false, err
	}
	return treeobject.GetScalar(ctx, e.base, stub, "", "locked", func(p *ElementSetProperties) bool { return p.Locked })
}

// Status returns the server-computed validity status.
func (e *ElementSet) Status(ctx context.Context) (Status, error) {
	stub, err := e.stub()
	if err != nil {
		return "", err
	}
	return treeobject.GetScalar(ctx, e.base, stub, "", "status", func(p *ElementSetProperties) Status { return p.Status })
}

// MiddleOffset reports the set's offset-at-midplane flag.
func (e *ElementSet) MiddleOffset(ctx context.Context) (bool, error) {
	stub, err := e.stub()
	if err != nil {
		return false, err
	}
	return treeobject.GetScalar(ctx, e.base, stub, "", "middle_offset", func(p *ElementSetProperties) bool { return p.MiddleOffset })
}

// SetMiddleOffset updates the set's offset-at-midplane flag.
func (e *ElementSet) SetMiddleOffset(ctx context.Context, v bool) error {
	stub, err := e.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, e.base, stub, "", "middle_offset",
		func(p *ElementSetProperties) bool { return p.MiddleOffset },
		func(p *ElementSetProperties, v bool) { p.MiddleOffset = v },
		func(a, b bool) bool { return a == b }, v)
}

// ElementLabels returns the set's current member labels. Mutating the
// returned slice has no effect; use SetElementLabels to publish changes.
func (e *ElementSet) ElementLabels(ctx context.Context) ([]int32, error) {
	stub, err := e.stub()
	if err != nil {
		return nil, err
	}
	labels, err := treeobject.GetScalar(ctx, e.base, stub, "", "element_labels", func(p *ElementSetProperties) []int32 { return p.ElementLabels })
	if err != nil {
		return nil, err
	}
	return cloneIntSlice(labels), nil
}

// SetElementLabels republishes the set's full member label list.
func (e *ElementSet) SetElementLabels(ctx context.Context, labels []int32) error {
	stub, err := e.stub()
	if err != nil {
		return err
	}
	return treeobject.SetScalar(ctx, e.base, stub, "", "element_labels",
		func(p *ElementSetProperties) []int32 { return p.ElementLabels },
		func(p *ElementSetProperties, v []int32) { p.ElementLabels = v },
		func(a, b []int32) bool { return false },
		cloneIntSlice(labels))
}

// Get refreshes the element set's properties from the server.
func (e *ElementSet) Get(ctx context.Context) error {
	stub, err := e.stub()
	if err != nil {
		return err
	}
	return e.base.Get(ctx, stub)
}

// Delete removes the element set from its owning model.
func (e *ElementSet) Delete(ctx context.Context) error {
	stub, err := e.stub()
	if err != nil {
		return err
	}
	return e.base.Delete(ctx, stub)
}

func (e *ElementSet) create(ctx context.Context, server *treeobject.ServerWrapper, parentPath resourcepath.Path) error {
	if e.stubs == nil {
		e.stubs = stubstore.New(func() ElementSetStub { return newElementSetStub(server.Channel) })
	}
	return e.base.Create(ctx, newElementSetStub(server.Channel), parentPath, ElementSetCollectionLabel, server)
}

// ParentPath returns the resource path of the model owning this element
// set.
func (e *ElementSet) ParentPath() resourcepath.Path { return e.base.ResourcePath().Parent() }

// Clone returns an unstored copy sharing this element set's current
// properties, for use by recursiveclone.Copy.
func (e *ElementSet) Clone() recursiveclone.Node {
	cloned := e.base.Properties().Clone().(*ElementSetProperties)
	return &ElementSet{base: treeobject.NewUnstored(e.base.Name(), cloned)}
}

// CloneUnlinked returns an unstored copy with every link field cleared.
func (e *ElementSet) CloneUnlinked() *ElementSet {
	cloned := e.base.Properties().Clone().(*ElementSetProperties)
	cloned.ClearLinks()
	return &ElementSet{base: treeobject.NewUnstored(e.base.Name(), cloned)}
}

// ChildObjects is empty: an element set owns no nested tree objects.
func (e *ElementSet) ChildObjects() []recursiveclone.Node { return nil }

// DirectLinks is empty: an element set links to nothing else.
func (e *ElementSet) DirectLinks() []recursiveclone.DirectLink { return nil }

// LinkedObjectLists is empty for the same reason.
func (e *ElementSet) LinkedObjectLists() []recursiveclone.LinkedObjectList { return nil }

// EdgePropertyLists is empty for the same reason.
func (e *ElementSet) EdgePropertyLists() []recursiveclone.EdgePropertyList { return nil }

// Store implements recursiveclone.Node by creating this (already-cloned)
// element set under parent.
func (e *ElementSet) Store(ctx context.Context, parent recursiveclone.Node) error {
	owner, ok := parent.(elementSetOwner)
	if !ok {
		return apperrorInvalidParent("element set", parent)
	}
	return owner.storeElementSet(ctx, e)
}

// elementSetOwner is implemented by Model.
type elementSetOwner interface {
	storeElementSet(ctx context.Context, e *ElementSet) error
}
