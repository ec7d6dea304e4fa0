package rooms

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"venue-manager/feature/rooms/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestApp(t *testing.T, online bool) (*fiber.App, *gorm.DB, *Service) {
	app := fiber.New()
	db := setupTestDB(t)
	svc := newTestService(t, db, &stubProber{online: online})
	NewHandler(svc).RegisterRoutes(app)
	return app, db, svc
}

func roomURL(id uint, suffix string) string {
	return "/rooms/" + strconv.FormatUint(uint64(id), 10) + suffix
}

func decode(t *testing.T, r io.Reader) map[string]any {
	var body map[string]any
	require.NoError(t, json.NewDecoder(r).Decode(&body))
	return body
}

func TestHandlePing(t *testing.T) {
	app, db, _ := setupTestApp(t, true)
	room, _ := seedRoom(t, db)

	resp, err := app.Test(httptest.NewRequest("PUT", roomURL(room.ID, "/ping"), nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body := decode(t, resp.Body)
	assert.Equal(t, "green", body["status"])
	assert.Equal(t, true, body["is_online"])
	assert.Equal(t, "10.0.0.7", body["ip_address"])
	assert.Equal(t, float64(room.ID), body["room_id"])
}

func TestHandlePing_Errors(t *testing.T) {
	app, db, _ := setupTestApp(t, true)
	bare := &models.Room{Name: "No Network"}
	require.NoError(t, db.Create(bare).Error)

	tests := []struct {
		name string
		url  string
		want int
	}{
		{"not found", "/rooms/999/ping", 404},
		{"no address", roomURL(bare.ID, "/ping"), 400},
		{"bad id", "/rooms/abc/ping", 400},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("PUT", tt.url, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
			assert.NotEmpty(t, decode(t, resp.Body)["error"])
		})
	}
}

func TestHandleScanThenVerify(t *testing.T) {
	app, db, _ := setupTestApp(t, true)
	room, _ := seedRoom(t, db)

	resp, err := app.Test(httptest.NewRequest("PUT", roomURL(room.ID, "/scan?event_id=3&session_date=2026-03-14&update_uploads=true"), nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body := decode(t, resp.Body)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, float64(2), body["total_files"])
	assert.Equal(t, float64(1), body["matched_uploads"])
	assert.Equal(t, float64(1), body["unmatched_files"])
	assert.Equal(t, true, body["committed"])
	matches := body["matches"].([]any)
	assert.Equal(t, "keynote_talk.mp4", matches[0].(map[string]any)["filename"])

	resp, err = app.Test(httptest.NewRequest("POST", roomURL(room.ID, "/verify-uploads?event_id=3"), nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body = decode(t, resp.Body)
	assert.Equal(t, "Hall A", body["room_name"])
	assert.Equal(t, float64(2), body["total_expected"])
	assert.Equal(t, float64(1), body["found"])
	assert.Equal(t, float64(1), body["missing"])
}

func TestHandleScan_DryRun(t *testing.T) {
	app, db, _ := setupTestApp(t, true)
	room, _ := seedRoom(t, db)

	resp, err := app.Test(httptest.NewRequest("PUT", roomURL(room.ID, "/scan?update_uploads=false"), nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, false, decode(t, resp.Body)["committed"])

	var delivered int64
	require.NoError(t, db.Model(&models.Upload{}).Where("delivered = ?", true).Count(&delivered).Error)
	assert.Zero(t, delivered)
}

func TestHandleScan_Offline(t *testing.T) {
	app, db, _ := setupTestApp(t, false)
	room, _ := seedRoom(t, db)

	resp, err := app.Test(httptest.NewRequest("PUT", roomURL(room.ID, "/scan"), nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body := decode(t, resp.Body)
	assert.Equal(t, "offline", body["status"])
	assert.Equal(t, float64(0), body["total_files"])
}

func TestHandleScan_ErrorCodes(t *testing.T) {
	app, db, svc := setupTestApp(t, true)
	room, share := seedRoom(t, db)

	t.Run("bad date", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("PUT", roomURL(room.ID, "/scan?session_date=yesterday"), nil))
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
	})

	t.Run("room not found", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("PUT", "/rooms/999/scan", nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
		assert.Equal(t, "room_not_found", decode(t, resp.Body)["error_kind"])
	})

	t.Run("busy", func(t *testing.T) {
		unlock, err := svc.locker.TryLock(room.ID)
		require.NoError(t, err)
		defer unlock()

		resp, err := app.Test(httptest.NewRequest("PUT", roomURL(room.ID, "/scan"), nil))
		require.NoError(t, err)
		assert.Equal(t, 409, resp.StatusCode)
	})

	t.Run("share missing", func(t *testing.T) {
		gone := share + "/missing"
		require.NoError(t, db.Model(room).Update("share_path", gone).Error)

		resp, err := app.Test(httptest.NewRequest("PUT", roomURL(room.ID, "/scan"), nil))
		require.NoError(t, err)
		assert.Equal(t, 502, resp.StatusCode)
		assert.Equal(t, "share_not_found", decode(t, resp.Body)["error_kind"])
	})
}

func TestHandleStatus(t *testing.T) {
	app, db, _ := setupTestApp(t, true)
	room, _ := seedRoom(t, db)

	resp, err := app.Test(httptest.NewRequest("GET", roomURL(room.ID, "/status"), nil))
	require.NoError(t, err)
	assert.Equal(t, "unknown", decode(t, resp.Body)["status"])

	_, err = app.Test(httptest.NewRequest("PUT", roomURL(room.ID, "/ping"), nil))
	require.NoError(t, err)

	resp, err = app.Test(httptest.NewRequest("GET", roomURL(room.ID, "/status"), nil))
	require.NoError(t, err)
	assert.Equal(t, "online", decode(t, resp.Body)["status"])
}

func TestHandleRoomCRUD(t *testing.T) {
	app, _, _ := setupTestApp(t, true)

	req := httptest.NewRequest("POST", "/rooms", strings.NewReader(`{"name":"Hall B","ip_address":"10.0.0.8","share_password":"s3cret"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 201, resp.StatusCode)

	created := decode(t, resp.Body)
	assert.Equal(t, "Hall B", created["name"])
	assert.NotContains(t, created, "share_password")
	id := uint(created["id"].(float64))

	req = httptest.NewRequest("PUT", roomURL(id, ""), strings.NewReader(`{"capacity":120}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, float64(120), decode(t, resp.Body)["capacity"])

	req = httptest.NewRequest("PUT", roomURL(id, ""), strings.NewReader(`{"capacity":1,"id":77}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/rooms", nil))
	require.NoError(t, err)
	var list []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.Len(t, list, 1)

	resp, err = app.Test(httptest.NewRequest("DELETE", roomURL(id, ""), nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", roomURL(id, ""), nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleUpdateUpload(t *testing.T) {
	app, db, _ := setupTestApp(t, true)
	seedRoom(t, db)

	req := httptest.NewRequest("PATCH", "/uploads/2", strings.NewReader(`{"delivered":true}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, true, decode(t, resp.Body)["delivered"])

	req = httptest.NewRequest("PATCH", "/uploads/2", strings.NewReader(`{"etag":"forged"}`))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	req = httptest.NewRequest("PATCH", "/uploads/404", strings.NewReader(`{}`))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleScanEvent(t *testing.T) {
	app, db, _ := setupTestApp(t, true)
	seedRoom(t, db)

	resp, err := app.Test(httptest.NewRequest("PUT", "/events/3/scan?update_uploads=0", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var reports []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&reports))
	require.Len(t, reports, 1)
	assert.Equal(t, float64(1), reports[0]["matched_uploads"])
}
