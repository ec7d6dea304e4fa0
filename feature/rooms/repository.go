package rooms

import (
	"context"
	"errors"
	"fmt"
	"time"

	"venue-manager/core/reconcile"
	"venue-manager/feature/rooms/models"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned for unknown room ids. It matches reconcile.ErrRoomNotFound.
	ErrNotFound = reconcile.ErrRoomNotFound
	// ErrUploadNotFound is returned for unknown upload ids.
	ErrUploadNotFound = errors.New("upload not found")
)

// Repository is the gorm-backed datastore for rooms and expected uploads.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository on db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetRoom returns the network identity of a room.
func (r *Repository) GetRoom(ctx context.Context, id uint) (*reconcile.RoomEndpoint, error) {
	room, err := r.FindRoom(ctx, id)
	if err != nil {
		return nil, err
	}

	endpoint := &reconcile.RoomEndpoint{
		ID:        room.ID,
		Name:      room.Name,
		Address:   room.IPAddress,
		SharePath: room.SharePath,
	}
	if room.ShareUsername != "" {
		endpoint.Credentials = &reconcile.Credentials{
			Username: room.ShareUsername,
			Password: room.SharePassword,
		}
	}
	return endpoint, nil
}

// ListExpectedRecords returns the uploads of filter.RoomID ordered by id,
// narrowed by event and session day when given.
func (r *Repository) ListExpectedRecords(ctx context.Context, filter reconcile.Filter) ([]reconcile.ExpectedRecord, error) {
	q := r.db.WithContext(ctx).Model(&models.Upload{}).Where("room_id = ?", filter.RoomID)
	if filter.EventID != nil {
		q = q.Where("event_id = ?", *filter.EventID)
	}
	if filter.SessionDate != nil {
		day := filter.SessionDate.UTC().Truncate(24 * time.Hour)
		q = q.Where("session_date >= ? AND session_date < ?", day, day.Add(24*time.Hour))
	}

	var uploads []models.Upload
	if err := q.Order("id").Find(&uploads).Error; err != nil {
		return nil, fmt.Errorf("failed to query uploads: %w", err)
	}

	records := make([]reconcile.ExpectedRecord, 0, len(uploads))
	for _, u := range uploads {
		records = append(records, toRecord(u, filter.RoomID))
	}
	return records, nil
}

func toRecord(u models.Upload, roomID uint) reconcile.ExpectedRecord {
	return reconcile.ExpectedRecord{
		ID:        u.ID,
		RoomID:    roomID,
		EventID:   u.EventID,
		Filename:  u.Filename,
		SizeBytes: u.SizeBytes,
		HasVideo:  u.HasVideo,
		HasAudio:  u.HasAudio,
		Delivered: u.Delivered,
		UpdatedAt: u.UpdatedAt,
	}
}

// ApplyMatches marks the matched uploads delivered inside one transaction. A
// missing upload or any failed statement rolls the whole batch back.
func (r *Repository) ApplyMatches(ctx context.Context, updates []reconcile.RecordUpdate) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, u := range updates {
			res := tx.Model(&models.Upload{}).Where("id = ?", u.ID).Updates(map[string]any{
				"size_bytes": u.SizeBytes,
				"has_video":  u.HasVideo,
				"has_audio":  u.HasAudio,
				"file_path":  u.FilePath,
				"delivered":  true,
				"updated_at": u.UpdatedAt,
			})
			if res.Error != nil {
				return fmt.Errorf("failed to update upload %d: %w", u.ID, res.Error)
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("failed to update upload %d: %w", u.ID, ErrUploadNotFound)
			}
		}
		return nil
	})
}

// ListRoomsForEvent returns the rooms that have at least one upload for eventID.
func (r *Repository) ListRoomsForEvent(ctx context.Context, eventID uint) ([]models.Room, error) {
	var rooms []models.Room
	db := r.db.WithContext(ctx)
	sub := db.Model(&models.Upload{}).Select("DISTINCT room_id").Where("event_id = ? AND room_id IS NOT NULL", eventID)
	if err := db.Where("id IN (?)", sub).Order("id").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to query rooms for event %d: %w", eventID, err)
	}
	return rooms, nil
}

func (r *Repository) ListRooms(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	if err := r.db.WithContext(ctx).Order("id").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to query rooms: %w", err)
	}
	return rooms, nil
}

// FindRoom loads a room or returns ErrNotFound.
func (r *Repository) FindRoom(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room
	err := r.db.WithContext(ctx).First(&room, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("room %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query room %d: %w", id, err)
	}
	return &room, nil
}

func (r *Repository) CreateRoom(ctx context.Context, room *models.Room) error {
	if err := r.db.WithContext(ctx).Create(room).Error; err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

// UpdateRoom applies the set fields of update and returns the stored room.
func (r *Repository) UpdateRoom(ctx context.Context, id uint, update models.RoomUpdate) (*models.Room, error) {
	room, err := r.FindRoom(ctx, id)
	if err != nil {
		return nil, err
	}
	if cols := update.Columns(); len(cols) > 0 {
		if err := r.db.WithContext(ctx).Model(room).Updates(cols).Error; err != nil {
			return nil, fmt.Errorf("failed to update room %d: %w", id, err)
		}
	}
	return r.FindRoom(ctx, id)
}

func (r *Repository) DeleteRoom(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Room{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete room %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("room %d: %w", id, ErrNotFound)
	}
	return nil
}

// UpdateUpload applies the set fields of update and returns the stored upload.
func (r *Repository) UpdateUpload(ctx context.Context, id uint, update models.UploadUpdate) (*models.Upload, error) {
	var upload models.Upload
	err := r.db.WithContext(ctx).First(&upload, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("upload %d: %w", id, ErrUploadNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query upload %d: %w", id, err)
	}

	if cols := update.Columns(); len(cols) > 0 {
		if err := r.db.WithContext(ctx).Model(&upload).Updates(cols).Error; err != nil {
			return nil, fmt.Errorf("failed to update upload %d: %w", id, err)
		}
	}
	if err := r.db.WithContext(ctx).First(&upload, id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload upload %d: %w", id, err)
	}
	return &upload, nil
}
