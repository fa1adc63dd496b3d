package filetransfer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ansys/acp-client-go/filetransfer"
	"github.com/ansys/acp-client-go/pkg/apperror"
)

func TestLocalStrategyIsIdentity(t *testing.T) {
	s := filetransfer.LocalStrategy{}
	p, err := s.UploadIfAutotransfer(context.Background(), "/tmp/in.cdb")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/in.cdb", p)

	p, err = s.ToExportPath(context.Background(), "/tmp/out.cdb")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/out.cdb", p)

	require.NoError(t, s.DownloadIfAutotransfer(context.Background(), "/tmp/out.cdb", "/tmp/out.cdb"))
}

type fakeUploader struct {
	uploaded   map[string]string
	downloaded map[string]string
}

func newFakeUploader() *fakeUploader {
	return &fakeUploader{uploaded: map[string]string{}, downloaded: map[string]string{}}
}

func (f *fakeUploader) Upload(ctx context.Context, localPath string) (string, error) {
	serverPath := "/server/" + localPath
	f.uploaded[localPath] = serverPath
	return serverPath, nil
}

func (f *fakeUploader) Download(ctx context.Context, serverPath, localPath string) error {
	f.downloaded[serverPath] = localPath
	return nil
}

func (f *fakeUploader) WorkingDirectoryPath(localPath string) string {
	return "/server/work/" + localPath
}

func TestRemoteStrategyUploadAndDownload(t *testing.T) {
	transport := newFakeUploader()
	s := filetransfer.NewRemoteStrategy(transport)

	serverPath, err := s.UploadIfAutotransfer(context.Background(), "in.cdb")
	require.NoError(t, err)
	assert.Equal(t, "/server/in.cdb", serverPath)

	exportPath, err := s.ToExportPath(context.Background(), "out.cdb")
	require.NoError(t, err)
	assert.Equal(t, "/server/work/out.cdb", exportPath)

	require.NoError(t, s.DownloadIfAutotransfer(context.Background(), exportPath, "out.cdb"))
	assert.Equal(t, "out.cdb", transport.downloaded[exportPath])
}

func TestRemoteStrategyRejectsEmptyUpload(t *testing.T) {
	s := filetransfer.NewRemoteStrategy(newFakeUploader())
	_, err := s.UploadIfAutotransfer(context.Background(), "")
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindInvalidArgument))
}

func TestAutoUploadNilPath(t *testing.T) {
	s := filetransfer.LocalStrategy{}
	p, err := filetransfer.AutoUpload(context.Background(), s, nil, true)
	require.NoError(t, err)
	assert.Equal(t, "", p)

	_, err = filetransfer.AutoUpload(context.Background(), s, nil, false)
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindInvalidArgument))
}

func TestAutoDownloadDownloadsAfterSuccessfulBody(t *testing.T) {
	transport := newFakeUploader()
	s := filetransfer.NewRemoteStrategy(transport)

	var sawExportPath string
	err := filetransfer.AutoDownload(context.Background(), s, "result.h5", func(exportPath string) error {
		sawExportPath = exportPath
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "/server/work/result.h5", sawExportPath)
	assert.Equal(t, "result.h5", transport.downloaded[sawExportPath])
}

func TestAutoDownloadSkipsDownloadOnBodyError(t *testing.T) {
	transport := newFakeUploader()
	s := filetransfer.NewRemoteStrategy(transport)

	err := filetransfer.AutoDownload(context.Background(), s, "result.h5", func(exportPath string) error {
		return apperror.New(apperror.KindRuntime, "solve failed")
	})
	require.Error(t, err)
	assert.Empty(t, transport.downloaded)
}
