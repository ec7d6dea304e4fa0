package checks

import (
	"context"
	"fmt"

	"venue-manager/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// StorageReport describes the upload bucket of the s3 backend.
type StorageReport struct {
	Backend string `json:"backend"`
	Bucket  string `json:"bucket"`
	Exists  bool   `json:"exists"`
	Fixed   bool   `json:"fixed"`
}

// CheckBucket reports whether the upload bucket exists.
func CheckBucket(ctx context.Context, client storage.Client, bucket string) (*StorageReport, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	return &StorageReport{Backend: storage.BackendS3, Bucket: bucket, Exists: exists}, nil
}

// FixBucket creates the upload bucket.
func FixBucket(ctx context.Context, client storage.Client, bucket, region string, logger *zap.Logger) error {
	logger.Info("Creating upload bucket", zap.String("bucket", bucket))
	if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: region}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
	}
	return nil
}
