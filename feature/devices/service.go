package devices

import (
	"context"
	"errors"
	"fmt"
	"time"

	"venue-manager/feature/rooms/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service tracks venue devices.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a devices service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger, now: time.Now}
}

// Heartbeat marks the named device active and refreshes last_seen, creating it
// on first contact. A known device keeps its room unless roomID is given.
func (s *Service) Heartbeat(ctx context.Context, name string, roomID *uint) (*models.Device, error) {
	now := s.now().UTC()

	var device models.Device
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&device).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		device = models.Device{Name: name, RoomID: roomID, Active: true, LastSeen: &now}
		if err := s.db.WithContext(ctx).Create(&device).Error; err != nil {
			return nil, fmt.Errorf("failed to register device %s: %w", name, err)
		}
		s.logger.Info("Device registered", zap.String("device", name))
		return &device, nil
	case err != nil:
		return nil, fmt.Errorf("failed to query device %s: %w", name, err)
	}

	cols := map[string]any{"active": true, "last_seen": now}
	if roomID != nil {
		cols["room_id"] = *roomID
	}
	if err := s.db.WithContext(ctx).Model(&device).Updates(cols).Error; err != nil {
		return nil, fmt.Errorf("failed to update device %s: %w", name, err)
	}
	if err := s.db.WithContext(ctx).First(&device, device.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload device %s: %w", name, err)
	}
	return &device, nil
}

// List returns all known devices.
func (s *Service) List(ctx context.Context) ([]models.Device, error) {
	var devices []models.Device
	if err := s.db.WithContext(ctx).Order("id").Find(&devices).Error; err != nil {
		return nil, fmt.Errorf("failed to query devices: %w", err)
	}
	return devices, nil
}
