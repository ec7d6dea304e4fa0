package integrity

import (
	"testing"

	"venue-manager/core/storage"
	"venue-manager/core/storage/mocks"
	"venue-manager/feature/rooms/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoader(t *testing.T) {
	mockClient := new(mocks.Client)
	// nil db: the schema check reports an error instead of disabling the feature
	feature := NewFeature(mockClient, storage.Config{Bucket: "test-bucket"}, nil, models.All(), zap.NewNop())

	assert.Equal(t, "integrity", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NotNil(t, feature.Service())

	app := fiber.New()
	assert.NoError(t, feature.Load(app))
}
