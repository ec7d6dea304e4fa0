package rooms

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"venue-manager/core/database"
	"venue-manager/core/lock"
	"venue-manager/core/reconcile"
	"venue-manager/core/scanner"
	"venue-manager/feature/rooms/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type stubProber struct {
	online bool
	calls  atomic.Int32
	delay  time.Duration
}

func (p *stubProber) Probe(context.Context, string, time.Duration) bool {
	p.calls.Add(1)
	time.Sleep(p.delay)
	return p.online
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, models.All()...))
	return db
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func strPtr(s string) *string { return &s }
func sizePtr(n int64) *int64 { return &n }

var sessionDay = time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

// seedRoom creates a room whose share holds keynote_talk.mp4 (1000 bytes) and
// random_noise.mp4, with two uploads expected: "Keynote Talk.mp4" and "Closing.mp4".
func seedRoom(t *testing.T, db *gorm.DB) (*models.Room, string) {
	t.Helper()
	share := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(share, "keynote_talk.mp4"), make([]byte, 1000), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(share, "random_noise.mp4"), make([]byte, 10), 0o644))

	room := &models.Room{Name: "Hall A", IPAddress: "10.0.0.7", SharePath: share}
	require.NoError(t, db.Create(room).Error)
	require.NoError(t, db.Create(&models.Event{ID: 3, Title: "DevConf", StartTime: sessionDay, EndTime: sessionDay.Add(8 * time.Hour)}).Error)

	day := sessionDay.Add(9 * time.Hour)
	uploads := []models.Upload{
		{EventID: 3, RoomID: &room.ID, SessionDate: &day, Filename: strPtr("Keynote Talk.mp4"), SizeBytes: sizePtr(1000)},
		{EventID: 3, RoomID: &room.ID, SessionDate: &day, Filename: strPtr("Closing.mp4"), SizeBytes: sizePtr(500)},
	}
	require.NoError(t, db.Create(&uploads).Error)
	return room, share
}

func newTestService(t *testing.T, db *gorm.DB, prober *stubProber) *Service {
	t.Helper()
	locker, err := lock.NewRoomLocker(t.TempDir())
	require.NoError(t, err)

	repo := NewRepository(db)
	engine := reconcile.NewEngine(repo, prober, scanner.New(zap.NewNop()), reconcile.Options{}, zap.NewNop())
	return NewService(repo, engine, prober, locker, Options{Concurrency: 2}, zap.NewNop())
}
