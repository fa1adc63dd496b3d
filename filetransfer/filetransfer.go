// Package filetransfer implements the File Transfer Strategy: the two ways
// a tree object operation can hand a local file path to the server, or
// receive one back, depending on whether the ACP instance is local to the
// caller or remote.
package filetransfer

import (
	"context"
	"os"

	"github.com/ansys/acp-client-go/pkg/apperror"
)

// Strategy is implemented by LocalStrategy and RemoteStrategy. It is the type
// of treeobject.ServerWrapper's FileTransfer field.
type Strategy interface {
	Name() string

	// UploadIfAutotransfer hands localPath to the server ahead of an
	// operation that takes a path parameter, returning the path the server
	// should use. For LocalStrategy this is localPath unchanged; for
	// RemoteStrategy it is the uploaded, server-visible path.
	UploadIfAutotransfer(ctx context.Context, localPath string) (string, error)

	// ToExportPath returns the server-visible path an operation that
	// produces output should write to, given the caller's desired final
	// local path.
	ToExportPath(ctx context.Context, localPath string) (string, error)

	// DownloadIfAutotransfer completes an AutoDownload scope: it moves
	// whatever the server wrote at exportPath to localPath. For
	// LocalStrategy this is a no-op (exportPath already is localPath).
	DownloadIfAutotransfer(ctx context.Context, exportPath, localPath string) error
}

// Uploader is the minimal remote-transport surface RemoteStrategy needs. No
// implementation is bundled; the caller supplies one.
type Uploader interface {
	Upload(ctx context.Context, localPath string) (serverPath string, err error)
	Download(ctx context.Context, serverPath, localPath string) error
	WorkingDirectoryPath(serverPath string) string
}

// LocalStrategy is used when the ACP instance runs on the same filesystem as
// the caller: every "transfer" is the identity function.
type LocalStrategy struct{}

func (LocalStrategy) Name() string { return "local" }

func (LocalStrategy) UploadIfAutotransfer(ctx context.Context, localPath string) (string, error) {
	return localPath, nil
}

func (LocalStrategy) ToExportPath(ctx context.Context, localPath string) (string, error) {
	return localPath, nil
}

func (LocalStrategy) DownloadIfAutotransfer(ctx context.Context, exportPath, localPath string) error {
	return nil
}

// RemoteStrategy is used when the ACP instance runs on a different
// filesystem: paths are actually moved across the file-transfer service.
type RemoteStrategy struct {
	transport Uploader
}

// NewRemoteStrategy builds a RemoteStrategy backed by transport.
func NewRemoteStrategy(transport Uploader) *RemoteStrategy {
	return &RemoteStrategy{transport: transport}
}

func (s *RemoteStrategy) Name() string { return "remote" }

func (s *RemoteStrategy) UploadIfAutotransfer(ctx context.Context, localPath string) (string, error) {
	if localPath == "" {
		return "", apperror.New(apperror.KindInvalidArgument, "expected a path, not an empty string")
	}
	serverPath, err := s.transport.Upload(ctx, localPath)
	if err != nil {
		return "", err
	}
	return serverPath, nil
}

func (s *RemoteStrategy) ToExportPath(ctx context.Context, localPath string) (string, error) {
	return s.transport.WorkingDirectoryPath(localPath), nil
}

func (s *RemoteStrategy) DownloadIfAutotransfer(ctx context.Context, exportPath, localPath string) error {
	return s.transport.Download(ctx, exportPath, localPath)
}

// AutoUpload handles the optional-path upload case used by properties that
// accept a nullable path parameter: a nil localPath is passed through as ""
// without invoking the strategy unless allowNone is false, in which case a
// nil path is a programmer error.
func AutoUpload(ctx context.Context, strategy Strategy, localPath *string, allowNone bool) (string, error) {
	if localPath == nil {
		if allowNone {
			return "", nil
		}
		return "", apperror.New(apperror.KindInvalidArgument, "expected a path, not nil")
	}
	return strategy.UploadIfAutotransfer(ctx, *localPath)
}

// AutoDownload runs body with a server-visible export path derived from
// localPath, then downloads the result back to localPath once body returns
// successfully. It is the Go realization of the source library's
// `@contextlib.contextmanager auto_download` scoped resource, expressed as
// a higher-order function since Go has no generator-based context managers.
func AutoDownload(ctx context.Context, strategy Strategy, localPath string, body func(exportPath string) error) error {
	exportPath, err := strategy.ToExportPath(ctx, localPath)
	if err != nil {
		return err
	}
	if err := body(exportPath); err != nil {
		return err
	}
	return strategy.DownloadIfAutotransfer(ctx, exportPath, localPath)
}

// EnsureLocalDir creates dir, and any missing parents, if it does not
// already exist, used by callers before an AutoDownload scope that writes a
// brand-new file into it. An empty dir is a no-op.
func EnsureLocalDir(dir string) error {
	if dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return apperror.Wrap(err, apperror.KindRuntime, "creating local output directory: "+err.Error())
	}
	return nil
}
