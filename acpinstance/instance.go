// Package acpinstance is the connection, discovery, and authentication
// layer a caller uses to reach a running ACP server: it dials the channel,
// waits for it to become healthy, negotiates the server's version, and
// bundles all three into the treeobject.ServerWrapper every stored model
// package. It does not implement any entity's gRPC stub body itself: the
// library has no bundled generated protobuf/gRPC client code (see
// DESIGN.md), so entity stub construction is always supplied by the caller
// through Configure, exactly like model.Configure.
package acpinstance

import (
	"context"

	"github.com/Masterminds/semver/v3"
	"google.golang.org/grpc"

	"github.com/ansys/acp-client-go/filetransfer"
	"github.com/ansys/acp-client-go/model"
	"github.com/ansys/acp-client-go/pkg/apperror"
	"github.com/ansys/acp-client-go/pkg/logger"
	"github.com/ansys/acp-client-go/pkg/metrics"
	"github.com/ansys/acp-client-go/registry"
	"github.com/ansys/acp-client-go/resourcepath"
	"github.com/ansys/acp-client-go/treeobject"
)

// ServerVersionProvider negotiates the running server's version over conn.
// Like every other RPC surface this library needs, there is no bundled
// generated client to call a version-info RPC with, so the caller supplies
// one, typically a thin wrapper around a generated "GetServerInfo" style
// call. A nil provider leaves ACPInstance.ServerVersion nil, which
// versiongate.Check treats as "skip every version gate".
type ServerVersionProvider func(ctx context.Context, conn grpc.ClientConnInterface) (*semver.Version, error)

// Config bundles everything Connect needs: transport, health-check
// bounds, optional authentication, optional observability, and the entity
// stub factories to install into the model package.
type Config struct {
	Dial   DialConfig
	Health HealthCheckConfig

	// ServerVersion negotiates ACPInstance.ServerVersion after the
	// channel is healthy. Optional; see ServerVersionProvider.
	ServerVersion ServerVersionProvider

	// FileTransfer is the strategy stored objects use for path-carrying
	// operations (Model.Save, material import/export, ...). Defaults to
	// filetransfer.LocalStrategy{} when nil, matching a server that
	// shares a filesystem with the caller.
	FileTransfer filetransfer.Strategy

	// Factories wires every entity's gRPC stub constructor, forwarded to
	// model.Configure. A caller that only needs a subset of entities may
	// leave the rest zero; those keep panicking on first use (see
	// model/stubs.go).
	Factories model.Factories

	// EnableLogging, EnableMetrics, and EnableTracing add the matching
	// client interceptor to every unary call.
	EnableLogging bool
	EnableMetrics bool
	EnableTracing bool
	Metrics       *metrics.Metrics

	// ClientVersion is recorded against the negotiated server version in
	// the client_info metrics gauge, purely for observability.
	ClientVersion string
}

// ACPInstance is a live connection to a running ACP server: the dialed
// channel, its negotiated version, and the file transfer strategy, wrapped
// together exactly as treeobject.ServerWrapper needs from a handle's
// collaborator.
type ACPInstance struct {
	conn   *grpc.ClientConn
	server *treeobject.ServerWrapper
}

// Connect dials, health-checks, and version-negotiates a server per cfg,
// installs cfg.Factories into the model package, and returns a ready
// ACPInstance. This is the one-call entry point most callers use; Dial,
// WaitForServer, and Configure remain available individually for callers
// that need finer control (e.g. reusing an existing *grpc.ClientConn).
func Connect(ctx context.Context, cfg Config) (*ACPInstance, error) {
	dialCfg := cfg.Dial
	if cfg.EnableLogging {
		dialCfg.Interceptors = append(dialCfg.Interceptors, LoggingInterceptor())
		dialCfg.StreamInterceptors = append(dialCfg.StreamInterceptors, StreamLoggingInterceptor())
	}
	if cfg.EnableMetrics {
		m := cfg.Metrics
		if m == nil {
			m = metrics.Get()
		}
		dialCfg.Interceptors = append(dialCfg.Interceptors, MetricsInterceptor(m))
	}
	if cfg.EnableTracing {
		dialCfg.Interceptors = append(dialCfg.Interceptors, TracingInterceptor())
	}

	conn, err := Dial(ctx, dialCfg)
	if err != nil {
		return nil, err
	}

	if err := WaitForServer(ctx, conn, cfg.Health); err != nil {
		conn.Close()
		return nil, err
	}

	var version *semver.Version
	if cfg.ServerVersion != nil {
		version, err = cfg.ServerVersion(ctx, conn)
		if err != nil {
			conn.Close()
			return nil, apperror.Wrap(err, apperror.KindRuntime, "negotiating server version: "+err.Error())
		}
	}

	transfer := cfg.FileTransfer
	if transfer == nil {
		transfer = filetransfer.LocalStrategy{}
	}

	model.Configure(cfg.Factories)

	instance := &ACPInstance{
		conn: conn,
		server: &treeobject.ServerWrapper{
			Channel:       conn,
			ServerVersion: version,
			FileTransfer:  transfer,
		},
	}

	if cfg.EnableMetrics && version != nil {
		m := cfg.Metrics
		if m == nil {
			m = metrics.Get()
		}
		m.SetClientInfo(cfg.ClientVersion, version.String())
	}

	logger.Info("connected to acp server", "address", cfg.Dial.Address, "server_version", versionString(version))
	return instance, nil
}

// Channel returns the underlying gRPC connection, for callers that need to
// build additional stubs (e.g. the generated entity clients Configure was
// given) directly against it.
func (a *ACPInstance) Channel() grpc.ClientConnInterface {
	return a.conn
}

// ServerVersion returns the negotiated server version, or nil if none was
// configured to be queried.
func (a *ACPInstance) ServerVersion() *semver.Version {
	return a.server.ServerVersion
}

// Server returns the treeobject.ServerWrapper bundle this instance backs,
// for constructing the first handle in a tree (see RootModel).
func (a *ACPInstance) Server() *treeobject.ServerWrapper {
	return a.server
}

// Close shuts down the underlying channel. It does not ask the remote
// server process to terminate; see Shutdown for that.
func (a *ACPInstance) Close() error {
	return a.conn.Close()
}

// Shutdown asks the server to terminate itself via its control RPC. Like
// every entity RPC, the actual call is supplied by the caller (there is no
// bundled generated Control client); shutdown accepts a thin closure so
// callers don't need to depend on acpinstance for a type they already have
// from their own generated client package.
func Shutdown(ctx context.Context, conn grpc.ClientConnInterface, shutdownRPC func(ctx context.Context, conn grpc.ClientConnInterface) error) error {
	if shutdownRPC == nil {
		return apperror.New(apperror.KindNotImplemented, "acpinstance: no shutdown RPC wired for this server")
	}
	return shutdownRPC(ctx, conn)
}

// RootModel builds the stored handle for the model at
// resourcepath.FromParts(model.ModelCollectionLabel, uid), via the
// registry, exactly as any polymorphic link resolves. Most callers
// instead call a generated "GetModel"/"NewModel" RPC of their own and wrap
// its result with registry.ResolveAs directly; RootModel
// is a thin convenience for the common path-is-already-known case.
func RootModel(ctx context.Context, a *ACPInstance, uid string) (*model.Model, error) {
	path := resourcepath.FromParts(model.ModelCollectionLabel, uid)
	return registry.ResolveAs[*model.Model](path, a.server)
}

func versionString(v *semver.Version) string {
	if v == nil {
		return "unknown"
	}
	return v.String()
}
