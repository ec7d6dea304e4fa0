package integrity

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"venue-manager/core/database"
	"venue-manager/core/storage"
	"venue-manager/core/storage/mocks"
	"venue-manager/feature/rooms/models"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, models.All()...))
	return db
}

func setupTestApp(t *testing.T, client storage.Client, db *gorm.DB) *fiber.App {
	app := fiber.New()
	svc := NewService(client, "test-bucket", "", db, models.All(), zap.NewNop())
	NewHandler(svc).RegisterRoutes(app)
	return app
}

func TestHandleSchemaCheck(t *testing.T) {
	app := setupTestApp(t, nil, setupTestDB(t))

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/schema", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	tables, ok := body["tables"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, tables, "rooms")
	assert.Contains(t, tables, "uploads")
	assert.Contains(t, tables, "devices")
}

func TestHandleSchemaCheck_NoDatabase(t *testing.T) {
	app := setupTestApp(t, nil, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/schema", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
}

func TestHandleStorageCheck_Local(t *testing.T) {
	app := setupTestApp(t, nil, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/storage", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "local", body["backend"])
	assert.Equal(t, true, body["exists"])
}

func TestHandleStorageCheck_Fix(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, nil)
	mockClient.On("MakeBucket", mock.Anything, "test-bucket", minio.MakeBucketOptions{}).Return(nil)
	app := setupTestApp(t, mockClient, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/storage?fix=true", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["fixed"])
	assert.Equal(t, true, body["exists"])
	mockClient.AssertExpectations(t)
}

func TestHandleStorageCheck_ExistingBucketNotRecreated(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	app := setupTestApp(t, mockClient, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/storage?fix=true", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	mockClient.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleStorageCheck_Error(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, assert.AnError)
	app := setupTestApp(t, mockClient, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/storage", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
}

func TestHandleIntegrityCheck(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, assert.AnError)
	app := setupTestApp(t, mockClient, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "error", body["schema"]["status"])
	assert.Equal(t, "error", body["storage"]["status"])
}
