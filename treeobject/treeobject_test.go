package treeobject_test

import (
	"context"
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ansys/acp-client-go/pkg/apperror"
	"github.com/ansys/acp-client-go/resourcepath"
	"github.com/ansys/acp-client-go/treeobject"
)

type fakeProps struct {
	Angle  float64
	Origin resourcepath.Path
}

func (p *fakeProps) Clone() treeobject.Properties {
	clone := *p
	return &clone
}
func (p *fakeProps) LinkedPaths() []resourcepath.Path {
	if p.Origin.IsEmpty() {
		return nil
	}
	return []resourcepath.Path{p.Origin}
}
func (p *fakeProps) ClearLinks() { p.Origin = resourcepath.Empty }

type fakeStub struct {
	object  treeobject.ObjectInfo[*fakeProps]
	puts    int
	deleted bool
}

func (s *fakeStub) Get(ctx context.Context, path resourcepath.Path) (treeobject.ObjectInfo[*fakeProps], error) {
	return s.object, nil
}
func (s *fakeStub) Put(ctx context.Context, o treeobject.ObjectInfo[*fakeProps]) (treeobject.ObjectInfo[*fakeProps], error) {
	s.puts++
	o.Info.Version++
	s.object = o
	return o, nil
}
func (s *fakeStub) Delete(ctx context.Context, path resourcepath.Path, version int64) error {
	s.deleted = true
	return nil
}
func (s *fakeStub) Create(ctx context.Context, parent resourcepath.Path, label string, o treeobject.ObjectInfo[*fakeProps]) (treeobject.ObjectInfo[*fakeProps], error) {
	o.Info.ResourcePath = parent.Join(label, o.Info.Name)
	s.object = o
	return o, nil
}

func storedBase(t *testing.T, stub *fakeStub, serverVersion string) *treeobject.Base[*fakeProps] {
	t.Helper()
	v, err := semver.NewVersion(serverVersion)
	require.NoError(t, err)
	server := &treeobject.ServerWrapper{ServerVersion: v}
	b := treeobject.NewStored(stub.object, server)
	return b
}

func TestUnstoredGetAndPutAreNoOps(t *testing.T) {
	b := treeobject.NewUnstored("r1", &fakeProps{Angle: 1})
	assert.False(t, b.IsStored())
	require.NoError(t, b.Get(context.Background(), nil))
	require.NoError(t, b.Put(context.Background(), nil))
	assert.Equal(t, "r1", b.Name())
}

func TestCreateBindsServerAndResourcePath(t *testing.T) {
	stub := &fakeStub{}
	b := treeobject.NewUnstored("r1", &fakeProps{Angle: 1})
	v, err := semver.NewVersion("25.1.0")
	require.NoError(t, err)
	server := &treeobject.ServerWrapper{ServerVersion: v}

	err = b.Create(context.Background(), stub, resourcepath.FromParts("models", "m1"), "rosettes", server)
	require.NoError(t, err)
	assert.True(t, b.IsStored())
	assert.Equal(t, "models/m1/rosettes/r1", b.ResourcePath().String())
}

func TestCreateOnAlreadyStoredErrors(t *testing.T) {
	stub := &fakeStub{object: treeobject.ObjectInfo[*fakeProps]{
		Info:       treeobject.Info{Name: "r1", ResourcePath: resourcepath.FromParts("models", "m1", "rosettes", "r1")},
		Properties: &fakeProps{},
	}}
	b := storedBase(t, stub, "25.1.0")
	err := b.Create(context.Background(), stub, resourcepath.FromParts("models", "m1"), "rosettes", nil)
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindRuntime))
}

func TestDeleteUnbindsServer(t *testing.T) {
	stub := &fakeStub{object: treeobject.ObjectInfo[*fakeProps]{
		Info:       treeobject.Info{Name: "r1", ResourcePath: resourcepath.FromParts("models", "m1", "rosettes", "r1")},
		Properties: &fakeProps{},
	}}
	b := storedBase(t, stub, "25.1.0")
	require.NoError(t, b.Delete(context.Background(), stub))
	assert.False(t, b.IsStored())
	assert.True(t, stub.deleted)
}

func TestGetScalarVersionGated(t *testing.T) {
	stub := &fakeStub{object: treeobject.ObjectInfo[*fakeProps]{
		Info:       treeobject.Info{Name: "r1", ResourcePath: resourcepath.FromParts("models", "m1", "rosettes", "r1")},
		Properties: &fakeProps{Angle: 45},
	}}
	b := storedBase(t, stub, "24.0.0")
	_, err := treeobject.GetScalar(context.Background(), b, stub, "25.1.0", "Rosette.Angle", func(p *fakeProps) float64 { return p.Angle })
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindRuntime))
}

func TestGetScalarReturnsCurrentValue(t *testing.T) {
	stub := &fakeStub{object: treeobject.ObjectInfo[*fakeProps]{
		Info:       treeobject.Info{Name: "r1", ResourcePath: resourcepath.FromParts("models", "m1", "rosettes", "r1")},
		Properties: &fakeProps{Angle: 45},
	}}
	b := storedBase(t, stub, "25.1.0")
	v, err := treeobject.GetScalar(context.Background(), b, stub, "", "Rosette.Angle", func(p *fakeProps) float64 { return p.Angle })
	require.NoError(t, err)
	assert.Equal(t, 45.0, v)
}

func TestSetScalarSkipsPutWhenUnchanged(t *testing.T) {
	stub := &fakeStub{object: treeobject.ObjectInfo[*fakeProps]{
		Info:       treeobject.Info{Name: "r1", ResourcePath: resourcepath.FromParts("models", "m1", "rosettes", "r1")},
		Properties: &fakeProps{Angle: 45},
	}}
	b := storedBase(t, stub, "25.1.0")
	err := treeobject.SetScalar(context.Background(), b, stub, "", "Rosette.Angle",
		func(p *fakeProps) float64 { return p.Angle },
		func(p *fakeProps, v float64) { p.Angle = v },
		func(a, b float64) bool { return a == b },
		45.0,
	)
	require.NoError(t, err)
	assert.Equal(t, 0, stub.puts)
}

func TestSetScalarPutsOnChange(t *testing.T) {
	stub := &fakeStub{object: treeobject.ObjectInfo[*fakeProps]{
		Info:       treeobject.Info{Name: "r1", ResourcePath: resourcepath.FromParts("models", "m1", "rosettes", "r1")},
		Properties: &fakeProps{Angle: 45},
	}}
	b := storedBase(t, stub, "25.1.0")
	err := treeobject.SetScalar(context.Background(), b, stub, "", "Rosette.Angle",
		func(p *fakeProps) float64 { return p.Angle },
		func(p *fakeProps, v float64) { p.Angle = v },
		func(a, b float64) bool { return a == b },
		90.0,
	)
	require.NoError(t, err)
	assert.Equal(t, 1, stub.puts)
	assert.Equal(t, 90.0, b.Properties().Angle)
}

func TestSetLinkPathRejectsUnstoredTarget(t *testing.T) {
	stub := &fakeStub{object: treeobject.ObjectInfo[*fakeProps]{
		Info:       treeobject.Info{Name: "r1", ResourcePath: resourcepath.FromParts("models", "m1", "rosettes", "r1")},
		Properties: &fakeProps{},
	}}
	b := storedBase(t, stub, "25.1.0")
	target := treeobject.NewUnstored("mat1", &fakeProps{})
	err := treeobject.SetLinkPath(context.Background(), b, stub, "", "Rosette.Material",
		func(p *fakeProps) resourcepath.Path { return p.Origin },
		func(p *fakeProps, v resourcepath.Path) { p.Origin = v },
		target,
	)
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindInvalidArgument))
}

func TestSetLinkPathChecksAllowedCollection(t *testing.T) {
	stub := &fakeStub{object: treeobject.ObjectInfo[*fakeProps]{
		Info:       treeobject.Info{Name: "r1", ResourcePath: resourcepath.FromParts("models", "m1", "rosettes", "r1")},
		Properties: &fakeProps{},
	}}
	b := storedBase(t, stub, "25.1.0")

	targetStub := &fakeStub{object: treeobject.ObjectInfo[*fakeProps]{
		Info:       treeobject.Info{Name: "mat1", ResourcePath: resourcepath.FromParts("models", "m1", "fabrics", "mat1")},
		Properties: &fakeProps{},
	}}
	target := storedBase(t, targetStub, "25.1.0")

	err := treeobject.SetLinkPath(context.Background(), b, stub, "", "Rosette.Material",
		func(p *fakeProps) resourcepath.Path { return p.Origin },
		func(p *fakeProps, v resourcepath.Path) { p.Origin = v },
		target,
		"materials",
	)
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindInvalidArgument))
}
