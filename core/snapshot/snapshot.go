package snapshot

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"

	"qldf/core/storage"
)

// Archive stores raw fetched payloads in an object-storage bucket. The zero
// value and a nil *Archive are valid disabled archives.
type Archive struct {
	client storage.Client
	bucket string
	logger *zap.Logger
}

// New creates an archive over the given storage client. Returns nil (a
// disabled archive) when client is nil.
func New(client storage.Client, bucket string, logger *zap.Logger) *Archive {
	if client == nil {
		return nil
	}
	return &Archive{client: client, bucket: bucket, logger: logger}
}

// EnsureBucket creates the archive bucket if it does not exist yet.
func (a *Archive) EnsureBucket(ctx context.Context) error {
	if a == nil {
		return nil
	}
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("check snapshot bucket: %w", err)
	}
	if exists {
		return nil
	}
	if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("create snapshot bucket: %w", err)
	}
	return nil
}

// Store archives one payload. Failures are logged and swallowed: the archive
// is an aid, never a reason to fail a job.
func (a *Archive) Store(ctx context.Context, job, runID, name string, payload []byte) {
	if a == nil {
		return
	}
	objectName := objectName(job, runID, name)
	_, err := a.client.PutObject(ctx, a.bucket, objectName,
		bytes.NewReader(payload), int64(len(payload)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		a.logger.Warn("snapshot archive failed",
			zap.String("object", objectName),
			zap.Error(err))
		return
	}
	a.logger.Debug("payload archived", zap.String("object", objectName))
}

// Load reads back an archived payload.
func (a *Archive) Load(ctx context.Context, job, runID, name string) ([]byte, error) {
	if a == nil {
		return nil, fmt.Errorf("snapshot archive disabled")
	}
	objectName := objectName(job, runID, name)
	reader, err := a.client.GetObject(ctx, a.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("load snapshot %s: %w", objectName, err)
	}
	defer reader.Close()
	payload, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", objectName, err)
	}
	return payload, nil
}

func objectName(job, runID, name string) string {
	return fmt.Sprintf("snapshots/%s/%s/%s", job, runID, name)
}
