package files

import (
	"venue-manager/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	handler *Handler
	enabled bool
}

// NewFeature creates the files feature. It is disabled without a database or backend.
func NewFeature(db *gorm.DB, backend storage.Backend, logger *zap.Logger) *Feature {
	return &Feature{
		handler: NewHandler(NewService(db, backend, logger)),
		enabled: db != nil && backend != nil,
	}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "files"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.enabled
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
