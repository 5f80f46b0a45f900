package snapshot_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"qldf/core/snapshot"
	"qldf/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestStoreAndLoadRoundTrip(t *testing.T) {
	mockClient := new(mocks.Client)
	archive := snapshot.New(mockClient, "qldf-snapshots", zap.NewNop())

	mockClient.On("PutObject", mock.Anything, "qldf-snapshots",
		"snapshots/sync_servers/run-1/servers.json",
		mock.Anything, int64(9), mock.Anything).
		Return(minio.UploadInfo{}, nil)
	mockClient.On("GetObject", mock.Anything, "qldf-snapshots",
		"snapshots/sync_servers/run-1/servers.json", mock.Anything).
		Return(io.NopCloser(strings.NewReader(`{"ok":1}` + "\n")), nil)

	archive.Store(context.Background(), "sync_servers", "run-1", "servers.json", []byte(`{"ok":1}`+"\n"))

	payload, err := archive.Load(context.Background(), "sync_servers", "run-1", "servers.json")
	assert.NoError(t, err)
	assert.Equal(t, `{"ok":1}`+"\n", string(payload))
	mockClient.AssertExpectations(t)
}

func TestStoreFailureIsSwallowed(t *testing.T) {
	mockClient := new(mocks.Client)
	archive := snapshot.New(mockClient, "qldf-snapshots", zap.NewNop())

	mockClient.On("PutObject", mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("bucket gone"))

	// Must not panic or surface anywhere; archiving is best-effort.
	archive.Store(context.Background(), "sync_servers", "run-1", "servers.json", []byte("x"))
	mockClient.AssertExpectations(t)
}

func TestEnsureBucketCreatesWhenMissing(t *testing.T) {
	mockClient := new(mocks.Client)
	archive := snapshot.New(mockClient, "qldf-snapshots", zap.NewNop())

	mockClient.On("BucketExists", mock.Anything, "qldf-snapshots").Return(false, nil)
	mockClient.On("MakeBucket", mock.Anything, "qldf-snapshots", mock.Anything).Return(nil)

	assert.NoError(t, archive.EnsureBucket(context.Background()))
	mockClient.AssertExpectations(t)
}

func TestDisabledArchive(t *testing.T) {
	archive := snapshot.New(nil, "qldf-snapshots", zap.NewNop())
	assert.Nil(t, archive)

	// Every operation on the nil archive is a safe no-op.
	assert.NoError(t, archive.EnsureBucket(context.Background()))
	archive.Store(context.Background(), "sync_servers", "run-1", "servers.json", []byte("x"))
	_, err := archive.Load(context.Background(), "sync_servers", "run-1", "servers.json")
	assert.Error(t, err)
}
