package storage_test

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"venue-manager/core/storage"
	"venue-manager/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewBackend(t *testing.T) {
	t.Run("Local", func(t *testing.T) {
		b, err := storage.NewBackend(storage.Config{Backend: "local", LocalDir: t.TempDir()}, nil)
		require.NoError(t, err)
		assert.Equal(t, "local", b.Name())
	})

	t.Run("S3 Without Client", func(t *testing.T) {
		_, err := storage.NewBackend(storage.Config{Backend: "s3"}, nil)
		assert.Error(t, err)
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := storage.NewBackend(storage.Config{Backend: "ftp"}, nil)
		assert.ErrorContains(t, err, "unknown storage backend")
	})
}

func TestLocalBackend_Save(t *testing.T) {
	dir := t.TempDir()
	b, err := storage.NewLocalBackend(dir)
	require.NoError(t, err)

	data := []byte("slide deck bytes")
	res, err := b.Save(context.Background(), "Keynote Talk.pptx", bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	sum := sha256.Sum256(data)
	assert.Equal(t, hex.EncodeToString(sum[:]), res.ETag)
	assert.Equal(t, int64(len(data)), res.Size)
	assert.True(t, strings.HasSuffix(res.Key, "_Keynote Talk.pptx"))

	stored, err := os.ReadFile(filepath.Join(dir, res.Key))
	require.NoError(t, err)
	assert.Equal(t, data, stored)

	t.Run("Path Components Stripped", func(t *testing.T) {
		res, err := b.Save(context.Background(), "../../etc/passwd", bytes.NewReader(data), -1)
		require.NoError(t, err)
		assert.NotContains(t, res.Key, "..")
		assert.FileExists(t, filepath.Join(dir, res.Key))
	})

	t.Run("Short Write", func(t *testing.T) {
		_, err := b.Save(context.Background(), "a.mp4", bytes.NewReader(data), 999)
		assert.ErrorContains(t, err, "short write")
	})
}

func TestS3Backend_Save(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("PutObject", mock.Anything, "uploads", mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "uploads/") && strings.HasSuffix(key, "_talk.mp4")
	}), mock.Anything, int64(4), mock.Anything).Return(minio.UploadInfo{ETag: "etag-1", Size: 4}, nil)

	b, err := storage.NewBackend(storage.Config{Backend: "s3", Bucket: "uploads", Prefix: "uploads/"}, mockClient)
	require.NoError(t, err)

	res, err := b.Save(context.Background(), "talk.mp4", bytes.NewReader([]byte("abcd")), 4)
	require.NoError(t, err)
	assert.Equal(t, "etag-1", res.ETag)
	assert.Equal(t, int64(4), res.Size)
	mockClient.AssertExpectations(t)
}

func TestLocalBackend_Remove(t *testing.T) {
	dir := t.TempDir()
	b, err := storage.NewLocalBackend(dir)
	require.NoError(t, err)

	res, err := b.Save(context.Background(), "talk.mp4", bytes.NewReader([]byte("abcd")), 4)
	require.NoError(t, err)

	require.NoError(t, b.Remove(context.Background(), res.Key))
	assert.NoFileExists(t, filepath.Join(dir, res.Key))
	assert.Error(t, b.Remove(context.Background(), res.Key))
}

func TestS3Backend_Remove(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("RemoveObject", mock.Anything, "uploads", "uploads/abc_talk.mp4", minio.RemoveObjectOptions{}).Return(nil)

	b, err := storage.NewBackend(storage.Config{Backend: "s3", Bucket: "uploads", Prefix: "uploads/"}, mockClient)
	require.NoError(t, err)

	require.NoError(t, b.Remove(context.Background(), "uploads/abc_talk.mp4"))
	mockClient.AssertExpectations(t)
}
