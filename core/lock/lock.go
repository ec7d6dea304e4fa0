package lock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gofrs/flock"
)

// ErrBusy is returned when another run already holds the room.
var ErrBusy = errors.New("room reconciliation already in progress")

// Config holds configuration for per-room locking.
type Config struct {
	// Dir holds one lock file per room. Locks are advisory file locks, so they also
	// exclude runs started from the CLI while the server is up.
	Dir string `mapstructure:"dir" default:"/tmp/venue-manager/locks"`
}

// RoomLocker hands out exclusive, non-blocking locks keyed by room id.
type RoomLocker struct {
	dir string
}

// NewRoomLocker creates the lock directory if needed.
func NewRoomLocker(dir string) (*RoomLocker, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create lock dir %s: %w", dir, err)
	}
	return &RoomLocker{dir: dir}, nil
}

// TryLock acquires the room's lock or fails with ErrBusy. The returned function releases it.
func (l *RoomLocker) TryLock(roomID uint) (func(), error) {
	fl := flock.New(filepath.Join(l.dir, "room-"+strconv.FormatUint(uint64(roomID), 10)+".lock"))

	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire room lock: %w", err)
	}
	if !ok {
		return nil, ErrBusy
	}

	return func() { _ = fl.Unlock() }, nil
}
