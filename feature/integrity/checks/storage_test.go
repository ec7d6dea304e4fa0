package checks

import (
	"context"
	"errors"
	"testing"

	"venue-manager/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCheckBucket(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "uploads").Return(false, nil)

	report, err := CheckBucket(context.Background(), client, "uploads")
	require.NoError(t, err)
	assert.False(t, report.Exists)
	assert.Equal(t, "s3", report.Backend)
}

func TestCheckBucket_Error(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "uploads").Return(false, errors.New("connection refused"))

	_, err := CheckBucket(context.Background(), client, "uploads")
	assert.ErrorContains(t, err, "connection refused")
}

func TestFixBucket(t *testing.T) {
	client := new(mocks.Client)
	client.On("MakeBucket", mock.Anything, "uploads", minio.MakeBucketOptions{Region: "eu-west-1"}).Return(nil)

	require.NoError(t, FixBucket(context.Background(), client, "uploads", "eu-west-1", zap.NewNop()))
	client.AssertExpectations(t)
}
