package rooms

import (
	"context"
	"errors"
	"testing"
	"time"

	"venue-manager/core/reconcile"
	"venue-manager/feature/rooms/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_GetRoom(t *testing.T) {
	db := setupTestDB(t)
	room, share := seedRoom(t, db)
	repo := NewRepository(db)

	endpoint, err := repo.GetRoom(context.Background(), room.ID)
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.7", endpoint.Address)
	assert.Equal(t, share, endpoint.SharePath)
	assert.Nil(t, endpoint.Credentials)

	_, err = repo.GetRoom(context.Background(), 999)
	assert.ErrorIs(t, err, reconcile.ErrRoomNotFound)
}

func TestRepository_ListExpectedRecords(t *testing.T) {
	db := setupTestDB(t)
	room, _ := seedRoom(t, db)
	repo := NewRepository(db)
	ctx := context.Background()

	records, err := repo.ListExpectedRecords(ctx, reconcile.Filter{RoomID: room.ID})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Keynote Talk.mp4", records[0].Name())
	assert.Equal(t, int64(1000), *records[0].SizeBytes)

	other := uint(42)
	records, err = repo.ListExpectedRecords(ctx, reconcile.Filter{RoomID: room.ID, EventID: &other})
	require.NoError(t, err)
	assert.Empty(t, records)

	records, err = repo.ListExpectedRecords(ctx, reconcile.Filter{RoomID: room.ID, SessionDate: &sessionDay})
	require.NoError(t, err)
	assert.Len(t, records, 2)

	nextDay := sessionDay.Add(24 * time.Hour)
	records, err = repo.ListExpectedRecords(ctx, reconcile.Filter{RoomID: room.ID, SessionDate: &nextDay})
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestRepository_ApplyMatches(t *testing.T) {
	db := setupTestDB(t)
	room, _ := seedRoom(t, db)
	repo := NewRepository(db)
	ctx := context.Background()

	records, err := repo.ListExpectedRecords(ctx, reconcile.Filter{RoomID: room.ID})
	require.NoError(t, err)

	err = repo.ApplyMatches(ctx, []reconcile.RecordUpdate{
		{ID: records[0].ID, SizeBytes: 1234, HasVideo: true, HasAudio: true, FilePath: "/share/keynote.mp4", UpdatedAt: time.Now().UTC()},
	})
	require.NoError(t, err)

	var upload models.Upload
	require.NoError(t, db.First(&upload, records[0].ID).Error)
	assert.True(t, upload.Delivered)
	assert.Equal(t, int64(1234), *upload.SizeBytes)
	assert.Equal(t, "/share/keynote.mp4", upload.FilePath)
}

func TestRepository_ApplyMatchesAllOrNothing(t *testing.T) {
	db := setupTestDB(t)
	room, _ := seedRoom(t, db)
	repo := NewRepository(db)
	ctx := context.Background()

	records, err := repo.ListExpectedRecords(ctx, reconcile.Filter{RoomID: room.ID})
	require.NoError(t, err)

	err = repo.ApplyMatches(ctx, []reconcile.RecordUpdate{
		{ID: records[0].ID, SizeBytes: 1},
		{ID: 9999, SizeBytes: 2},
	})
	assert.ErrorIs(t, err, ErrUploadNotFound)

	var upload models.Upload
	require.NoError(t, db.First(&upload, records[0].ID).Error)
	assert.False(t, upload.Delivered)
}

func TestRepository_ApplyMatchesRollsBackOnError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `uploads` SET").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `uploads` SET").WillReturnError(errors.New("lock wait timeout"))
	mock.ExpectRollback()

	err := repo.ApplyMatches(context.Background(), []reconcile.RecordUpdate{{ID: 1}, {ID: 2}})
	assert.ErrorContains(t, err, "lock wait timeout")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListRoomsForEvent(t *testing.T) {
	db := setupTestDB(t)
	room, _ := seedRoom(t, db)
	require.NoError(t, db.Create(&models.Room{Name: "Empty", IPAddress: "10.0.0.9"}).Error)
	repo := NewRepository(db)

	rooms, err := repo.ListRoomsForEvent(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, room.ID, rooms[0].ID)

	rooms, err = repo.ListRoomsForEvent(context.Background(), 77)
	require.NoError(t, err)
	assert.Empty(t, rooms)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = repo.ListRoomsForEvent(ctx, 3)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRepository_RoomCRUD(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	room := &models.Room{Name: "Hall B"}
	require.NoError(t, repo.CreateRoom(ctx, room))

	ip := "10.0.0.8"
	updated, err := repo.UpdateRoom(ctx, room.ID, models.RoomUpdate{IPAddress: &ip})
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.8", updated.IPAddress)
	assert.Equal(t, "Hall B", updated.Name)

	_, err = repo.UpdateRoom(ctx, 999, models.RoomUpdate{IPAddress: &ip})
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, repo.DeleteRoom(ctx, room.ID))
	assert.ErrorIs(t, repo.DeleteRoom(ctx, room.ID), ErrNotFound)
}

func TestRepository_UpdateUpload(t *testing.T) {
	db := setupTestDB(t)
	room, _ := seedRoom(t, db)
	repo := NewRepository(db)
	ctx := context.Background()

	records, err := repo.ListExpectedRecords(ctx, reconcile.Filter{RoomID: room.ID})
	require.NoError(t, err)

	delivered := true
	upload, err := repo.UpdateUpload(ctx, records[1].ID, models.UploadUpdate{Delivered: &delivered, Filename: strPtr("closing_v2.mp4")})
	require.NoError(t, err)
	assert.True(t, upload.Delivered)
	assert.Equal(t, "closing_v2.mp4", *upload.Filename)

	_, err = repo.UpdateUpload(ctx, 999, models.UploadUpdate{Delivered: &delivered})
	assert.ErrorIs(t, err, ErrUploadNotFound)
}

func TestRepository_UpdateUploadSessionDateOffset(t *testing.T) {
	db := setupTestDB(t)
	room, _ := seedRoom(t, db)
	repo := NewRepository(db)
	ctx := context.Background()

	records, err := repo.ListExpectedRecords(ctx, reconcile.Filter{RoomID: room.ID})
	require.NoError(t, err)

	// Late evening of the session day, sent with a +02:00 offset.
	late := time.Date(2026, 3, 15, 1, 0, 0, 0, time.FixedZone("CEST", 2*60*60))
	_, err = repo.UpdateUpload(ctx, records[0].ID, models.UploadUpdate{SessionDate: &late})
	require.NoError(t, err)

	day := sessionDay
	records, err = repo.ListExpectedRecords(ctx, reconcile.Filter{RoomID: room.ID, SessionDate: &day})
	require.NoError(t, err)
	assert.Len(t, records, 2)
}
