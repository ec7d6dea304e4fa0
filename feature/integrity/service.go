package integrity

import (
	"context"
	"errors"

	"venue-manager/core/storage"
	"venue-manager/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrNoDatabase = errors.New("database connection not available")

// Service handles integrity checks.
type Service struct {
	client storage.Client
	bucket string
	region string
	db     *gorm.DB
	models []any
	logger *zap.Logger
}

// NewService creates a new integrity service. client is nil when uploads are kept on local disk.
func NewService(client storage.Client, bucket, region string, db *gorm.DB, models []any, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		region: region,
		db:     db,
		models: models,
		logger: logger,
	}
}

// CheckSchema compares the live database with the expected models.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}
	return checks.CheckSchema(s.db, s.models...)
}

// CheckStorage reports the state of the upload bucket. The local backend has nothing to check.
func (s *Service) CheckStorage(ctx context.Context) (*checks.StorageReport, error) {
	if s.client == nil {
		return &checks.StorageReport{Backend: storage.BackendLocal, Exists: true}, nil
	}
	return checks.CheckBucket(ctx, s.client, s.bucket)
}

// FixStorage creates the upload bucket if it is missing.
func (s *Service) FixStorage(ctx context.Context) (*checks.StorageReport, error) {
	report, err := s.CheckStorage(ctx)
	if err != nil || report.Exists {
		return report, err
	}
	if err := checks.FixBucket(ctx, s.client, s.bucket, s.region, s.logger); err != nil {
		return nil, err
	}
	report.Exists = true
	report.Fixed = true
	return report, nil
}
