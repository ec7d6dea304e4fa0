package rooms

import (
	"testing"

	"venue-manager/core/lock"
	"venue-manager/core/probe"
	"venue-manager/core/scanner"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoader(t *testing.T) {
	locker, err := lock.NewRoomLocker(t.TempDir())
	require.NoError(t, err)

	feature := NewFeature(setupTestDB(t), &stubProber{}, locker, probe.Config{}, scanner.Config{Kinds: "video,bogus"}, zap.NewNop())

	assert.Equal(t, "rooms", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NotNil(t, feature.Service())
	assert.NoError(t, feature.Load(fiber.New()))
}

func TestLoader_DisabledWithoutDatabase(t *testing.T) {
	feature := NewFeature(nil, &stubProber{}, nil, probe.Config{}, scanner.Config{}, zap.NewNop())
	assert.False(t, feature.IsEnabled())
}
