package files

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"venue-manager/core/media"
	"venue-manager/core/storage"
	"venue-manager/feature/rooms/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrEventNotFound is returned when an upload names an unknown event.
var ErrEventNotFound = errors.New("event not found")

// UploadInput describes one presentation file sent by a speaker or uploader.
type UploadInput struct {
	EventID       uint
	SpeakerID     *uint
	RoomID        *uint
	SessionDate   *time.Time
	Filename      string
	Size          int64
	HasVideo      *bool
	HasAudio      *bool
	NeedsInternet bool
	Content       io.Reader
}

// UploadResult is returned after a successful upload.
type UploadResult struct {
	ID   uint   `json:"id"`
	Key  string `json:"key"`
	ETag string `json:"etag"`
	Size int64  `json:"size"`
}

// ManifestEntry tells a venue device which object to cache and which version it is.
type ManifestEntry struct {
	ID        uint      `json:"id"`
	Key       string    `json:"key"`
	ETag      string    `json:"etag"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Service stores uploaded files and records them as expected uploads.
type Service struct {
	db      *gorm.DB
	backend storage.Backend
	logger  *zap.Logger
}

// NewService creates a files service.
func NewService(db *gorm.DB, backend storage.Backend, logger *zap.Logger) *Service {
	return &Service{db: db, backend: backend, logger: logger}
}

// Upload saves the content through the storage backend and creates the upload
// row. Video and audio flags default to what the extension implies.
func (s *Service) Upload(ctx context.Context, in UploadInput) (*UploadResult, error) {
	var event models.Event
	if err := s.db.WithContext(ctx).Select("id").First(&event, in.EventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("event %d: %w", in.EventID, ErrEventNotFound)
		}
		return nil, fmt.Errorf("failed to query event %d: %w", in.EventID, err)
	}

	saved, err := s.backend.Save(ctx, in.Filename, in.Content, in.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to store %s: %w", in.Filename, err)
	}

	class := media.Classify(in.Filename)
	upload := &models.Upload{
		EventID:       in.EventID,
		SpeakerID:     in.SpeakerID,
		RoomID:        in.RoomID,
		SessionDate:   utcTime(in.SessionDate),
		Filename:      &in.Filename,
		Key:           saved.Key,
		ETag:          saved.ETag,
		SizeBytes:     &saved.Size,
		HasVideo:      class.IsVideo,
		HasAudio:      class.IsAudio,
		NeedsInternet: in.NeedsInternet,
	}
	if in.HasVideo != nil {
		upload.HasVideo = *in.HasVideo
	}
	if in.HasAudio != nil {
		upload.HasAudio = *in.HasAudio
	}

	if err := s.db.WithContext(ctx).Create(upload).Error; err != nil {
		// The row is the only reference to the stored object.
		if rmErr := s.backend.Remove(context.WithoutCancel(ctx), saved.Key); rmErr != nil {
			s.logger.Error("Orphaned stored upload",
				zap.String("backend", s.backend.Name()),
				zap.String("key", saved.Key),
				zap.Error(rmErr),
			)
		}
		return nil, fmt.Errorf("failed to record upload: %w", err)
	}

	s.logger.Info("Upload stored",
		zap.Uint("upload_id", upload.ID),
		zap.String("backend", s.backend.Name()),
		zap.String("key", saved.Key),
		zap.Int64("size", saved.Size),
	)

	return &UploadResult{ID: upload.ID, Key: saved.Key, ETag: saved.ETag, Size: saved.Size}, nil
}

func utcTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

// Manifest lists the stored objects of an event.
func (s *Service) Manifest(ctx context.Context, eventID uint) ([]ManifestEntry, error) {
	var uploads []models.Upload
	err := s.db.WithContext(ctx).
		Where("event_id = ? AND object_key <> ''", eventID).
		Order("id").
		Find(&uploads).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query manifest: %w", err)
	}

	entries := make([]ManifestEntry, 0, len(uploads))
	for _, u := range uploads {
		entries = append(entries, ManifestEntry{ID: u.ID, Key: u.Key, ETag: u.ETag, UpdatedAt: u.UpdatedAt})
	}
	return entries, nil
}
