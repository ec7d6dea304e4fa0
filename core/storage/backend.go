package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

// SaveResult is what a backend reports after persisting an upload.
type SaveResult struct {
	// Key is the backend-specific object key (relative path for local, object name for s3).
	Key string `json:"key"`
	// ETag identifies the stored content version.
	ETag string `json:"etag"`
	// Size is the number of bytes written.
	Size int64 `json:"size"`
}

// Backend stores presentation file contents. The engine never reads them back;
// contents are opaque bytes handed to the venue.
type Backend interface {
	// Name returns the backend identifier (local, s3).
	Name() string
	// Save persists the content read from r under a key derived from filename.
	Save(ctx context.Context, filename string, r io.Reader, size int64) (*SaveResult, error)
	// Remove deletes the content stored under key.
	Remove(ctx context.Context, key string) error
}

// NewBackend selects the backend named in cfg. client is only required for s3.
func NewBackend(cfg Config, client Client) (Backend, error) {
	switch cfg.Backend {
	case BackendLocal:
		return NewLocalBackend(cfg.LocalDir)
	case BackendS3:
		if client == nil {
			return nil, fmt.Errorf("s3 backend requires a storage client")
		}
		return &s3Backend{client: client, bucket: cfg.Bucket, prefix: cfg.Prefix}, nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Backend)
	}
}

// objectName builds a collision-free key that keeps the original filename readable.
func objectName(filename string) string {
	base := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		base = "upload"
	}
	return uuid.NewString() + "_" + base
}

type localBackend struct {
	dir string
}

// NewLocalBackend creates a local-disk backend rooted at dir, creating it if needed.
func NewLocalBackend(dir string) (Backend, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create storage dir %s: %w", dir, err)
	}
	return &localBackend{dir: dir}, nil
}

func (b *localBackend) Name() string {
	return BackendLocal
}

// Save writes to a temp file while hashing, then renames it into place.
func (b *localBackend) Save(ctx context.Context, filename string, r io.Reader, size int64) (*SaveResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := objectName(filename)
	fullPath := filepath.Join(b.dir, key)
	tmpPath := fullPath + ".tmp"

	f, err := os.Create(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}

	hasher := sha256.New()
	written, err := io.Copy(f, io.TeeReader(r, hasher))
	if err != nil {
		f.Close()
		os.Remove(tmpPath)
		return nil, fmt.Errorf("failed to write upload: %w", err)
	}
	if size >= 0 && written != size {
		f.Close()
		os.Remove(tmpPath)
		return nil, fmt.Errorf("short write: expected %d bytes, got %d", size, written)
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return nil, fmt.Errorf("failed to sync upload: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return nil, fmt.Errorf("failed to close upload: %w", err)
	}

	if err := os.Rename(tmpPath, fullPath); err != nil {
		os.Remove(tmpPath)
		return nil, fmt.Errorf("failed to move upload into place: %w", err)
	}

	return &SaveResult{
		Key:  key,
		ETag: hex.EncodeToString(hasher.Sum(nil)),
		Size: written,
	}, nil
}

func (b *localBackend) Remove(ctx context.Context, key string) error {
	if err := os.Remove(filepath.Join(b.dir, filepath.Base(key))); err != nil {
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}
	return nil
}

type s3Backend struct {
	client Client
	bucket string
	prefix string
}

func (b *s3Backend) Name() string {
	return BackendS3
}

func (b *s3Backend) Save(ctx context.Context, filename string, r io.Reader, size int64) (*SaveResult, error) {
	key := path.Join(b.prefix, objectName(filename))

	info, err := b.client.PutObject(ctx, b.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: "application/octet-stream",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to put object %s: %w", key, err)
	}

	return &SaveResult{
		Key:  key,
		ETag: info.ETag,
		Size: info.Size,
	}, nil
}

func (b *s3Backend) Remove(ctx context.Context, key string) error {
	if err := b.client.RemoveObject(ctx, b.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove object %s: %w", key, err)
	}
	return nil
}
