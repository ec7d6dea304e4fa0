package scanner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"venue-manager/core/media"

	"github.com/dustin/go-humanize"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

var (
	// ErrNotFound is returned when the scan root does not exist.
	ErrNotFound = errors.New("share path not found")
	// ErrAccess is returned when the scan root cannot be read.
	ErrAccess = errors.New("share path not accessible")
)

// File is one candidate file discovered during a scan. It is never persisted.
type File struct {
	Filename     string    `json:"filename"`
	Path         string    `json:"file_path"`
	Size         int64     `json:"file_size"`
	FileType     string    `json:"file_type"`
	Extension    string    `json:"file_extension"`
	LastModified time.Time `json:"last_modified"`
	HasVideo     bool      `json:"has_video"`
	HasAudio     bool      `json:"has_audio"`
}

// Result is the outcome of one scan.
type Result struct {
	Root  string
	Files []File
	// Skipped counts entries that could not be read and were left out.
	Skipped int
}

// Scanner walks a share and collects media files.
type Scanner struct {
	logger *zap.Logger
}

// New creates a scanner that reports skipped entries through logger.
func New(logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scanner{logger: logger}
}

// Scan recursively lists the files under root whose kind is allowed (every media
// kind when allowed is empty). Unreadable entries below the root are logged and
// skipped; only a missing or unreadable root fails the scan. Files come back in
// traversal order.
func (s *Scanner) Scan(ctx context.Context, root string, allowed ...media.Kind) (*Result, error) {
	if err := checkRoot(root); err != nil {
		return nil, err
	}
	// WalkDir does not descend into a root that is itself a symlink.
	walkRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrAccess, root, err)
	}

	res := &Result{Root: root, Files: []File{}}
	var total uint64

	err = filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		path = underRoot(root, walkRoot, path)

		if walkErr != nil {
			if path == root {
				return fmt.Errorf("%w: %s: %v", ErrAccess, root, walkErr)
			}
			s.logger.Warn("Skipping unreadable entry", zap.String("path", path), zap.Error(walkErr))
			res.Skipped++
			return nil
		}

		if d.IsDir() {
			return nil
		}

		class := media.Classify(d.Name())
		if !class.Allowed(allowed) {
			return nil
		}

		// One stat gives size and mtime together and follows links.
		info, err := os.Stat(path)
		if err != nil {
			s.logger.Warn("Error reading file", zap.String("path", path), zap.Error(err))
			res.Skipped++
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		res.Files = append(res.Files, File{
			Filename:     d.Name(),
			Path:         path,
			Size:         info.Size(),
			FileType:     mimeType(class.Extension),
			Extension:    class.Extension,
			LastModified: info.ModTime(),
			HasVideo:     class.IsVideo,
			HasAudio:     class.IsAudio,
		})
		total += uint64(info.Size())
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Share scan completed",
		zap.String("root", root),
		zap.Int("files", len(res.Files)),
		zap.Int("skipped", res.Skipped),
		zap.String("total_size", humanize.Bytes(total)),
	)

	return res, nil
}

// underRoot maps a path below walkRoot back under the caller's root.
func underRoot(root, walkRoot, path string) string {
	if root == walkRoot {
		return path
	}
	if path == walkRoot {
		return root
	}
	rel, err := filepath.Rel(walkRoot, path)
	if err != nil {
		return path
	}
	return filepath.Join(root, rel)
}

// checkRoot distinguishes a missing root from an unreadable one before walking.
func checkRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, root)
		}
		return fmt.Errorf("%w: %s: %v", ErrAccess, root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrAccess, root)
	}

	f, err := os.Open(root)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrAccess, root, err)
	}
	defer f.Close()
	if _, err := f.ReadDir(1); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %s: %v", ErrAccess, root, err)
	}
	return nil
}

func mimeType(ext string) string {
	if t := utils.GetMIME(ext); t != "" {
		return t
	}
	return fiber.MIMEOctetStream
}
