package speakers

import (
	"context"
	"errors"
	"fmt"

	"venue-manager/feature/rooms/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a speaker does not exist.
var ErrNotFound = errors.New("speaker not found")

// Repository reads and writes speaker rows.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) List(ctx context.Context) ([]models.Speaker, error) {
	var speakers []models.Speaker
	if err := r.db.WithContext(ctx).Order("id").Find(&speakers).Error; err != nil {
		return nil, fmt.Errorf("failed to query speakers: %w", err)
	}
	return speakers, nil
}

// Find loads a speaker or returns ErrNotFound.
func (r *Repository) Find(ctx context.Context, id uint) (*models.Speaker, error) {
	var speaker models.Speaker
	err := r.db.WithContext(ctx).First(&speaker, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("speaker %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query speaker %d: %w", id, err)
	}
	return &speaker, nil
}

func (r *Repository) Create(ctx context.Context, speaker *models.Speaker) error {
	if err := r.db.WithContext(ctx).Create(speaker).Error; err != nil {
		return fmt.Errorf("failed to create speaker: %w", err)
	}
	return nil
}

// CreateAll inserts speakers in one transaction. Either every row lands or none does.
func (r *Repository) CreateAll(ctx context.Context, speakers []models.Speaker) error {
	if len(speakers) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(&speakers, 100).Error
	})
	if err != nil {
		return fmt.Errorf("failed to import speakers: %w", err)
	}
	return nil
}

// Update applies the set fields of update and returns the reloaded speaker.
func (r *Repository) Update(ctx context.Context, id uint, update models.SpeakerUpdate) (*models.Speaker, error) {
	if cols := update.Columns(); len(cols) > 0 {
		res := r.db.WithContext(ctx).Model(&models.Speaker{}).Where("id = ?", id).Updates(cols)
		if res.Error != nil {
			return nil, fmt.Errorf("failed to update speaker %d: %w", id, res.Error)
		}
	}
	return r.Find(ctx, id)
}

func (r *Repository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Speaker{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete speaker %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("speaker %d: %w", id, ErrNotFound)
	}
	return nil
}
