package rooms

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"venue-manager/core/lock"
	"venue-manager/core/probe"
	"venue-manager/core/reconcile"
	"venue-manager/core/scanner"
	"venue-manager/feature/rooms/models"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const statusCacheSize = 512

// PingResult is the response of a liveness check.
type PingResult struct {
	RoomID    uint   `json:"room_id"`
	IPAddress string `json:"ip_address"`
	Status    string `json:"status"`
	IsOnline  bool   `json:"is_online"`
}

// RoomStatus is the last known liveness of a room.
type RoomStatus struct {
	RoomID    uint       `json:"room_id"`
	Status    string     `json:"status"`
	CheckedAt *time.Time `json:"checked_at"`
}

const (
	StatusOnline  = "online"
	StatusOffline = "offline"
	StatusUnknown = "unknown"
)

// Options tune the rooms service.
type Options struct {
	ProbeTimeout time.Duration
	// RoomTimeout bounds one room of an event-wide scan, probe included.
	RoomTimeout time.Duration
	StatusTTL   time.Duration
	Concurrency int
}

// Service coordinates room liveness checks and reconciliation runs.
type Service struct {
	repo     *Repository
	engine   *reconcile.Engine
	prober   probe.Prober
	locker   *lock.RoomLocker
	statuses *expirable.LRU[uint, RoomStatus]
	pings    singleflight.Group
	opts     Options
	logger   *zap.Logger
}

// NewService creates a rooms service.
func NewService(repo *Repository, engine *reconcile.Engine, prober probe.Prober, locker *lock.RoomLocker, opts Options, logger *zap.Logger) *Service {
	if opts.ProbeTimeout <= 0 {
		opts.ProbeTimeout = 2 * time.Second
	}
	if opts.RoomTimeout <= 0 {
		opts.RoomTimeout = time.Minute + opts.ProbeTimeout + probe.Grace
	}
	if opts.StatusTTL <= 0 {
		opts.StatusTTL = 5 * time.Minute
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = 4
	}
	return &Service{
		repo:     repo,
		engine:   engine,
		prober:   prober,
		locker:   locker,
		statuses: expirable.NewLRU[uint, RoomStatus](statusCacheSize, nil, opts.StatusTTL),
		opts:     opts,
		logger:   logger,
	}
}

// Ping checks whether the room's machine answers. Concurrent pings of the same
// room share one probe.
func (s *Service) Ping(ctx context.Context, roomID uint) (*PingResult, error) {
	room, err := s.repo.FindRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room.IPAddress == "" {
		return nil, fmt.Errorf("room %d: %w", roomID, reconcile.ErrConfig)
	}

	v, _, _ := s.pings.Do(strconv.FormatUint(uint64(roomID), 10), func() (any, error) {
		return s.prober.Probe(ctx, room.IPAddress, s.opts.ProbeTimeout), nil
	})
	online := v.(bool)
	s.record(roomID, online)

	result := &PingResult{RoomID: roomID, IPAddress: room.IPAddress, Status: "red", IsOnline: online}
	if online {
		result.Status = "green"
	}
	return result, nil
}

// Status returns the cached result of the last probe of a room.
func (s *Service) Status(roomID uint) RoomStatus {
	if st, ok := s.statuses.Get(roomID); ok {
		return st
	}
	return RoomStatus{RoomID: roomID, Status: StatusUnknown}
}

func (s *Service) record(roomID uint, online bool) {
	now := time.Now().UTC()
	st := RoomStatus{RoomID: roomID, Status: StatusOffline, CheckedAt: &now}
	if online {
		st.Status = StatusOnline
	}
	s.statuses.Add(roomID, st)
}

// Scan reconciles one room while holding its lock. It fails with lock.ErrBusy
// when another run for the same room is in progress; every other outcome is
// carried by the report.
func (s *Service) Scan(ctx context.Context, req reconcile.Request) (*reconcile.Report, error) {
	unlock, err := s.locker.TryLock(req.RoomID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	report := s.engine.Reconcile(ctx, req)
	switch {
	case report.Status == reconcile.StatusOffline:
		s.record(req.RoomID, false)
	case report.SharePath != "":
		// The share path is only resolved after a successful probe.
		s.record(req.RoomID, true)
	}
	return report, nil
}

// Verify reports delivered and missing uploads without touching the network.
func (s *Service) Verify(ctx context.Context, req reconcile.Request) (*reconcile.VerifyReport, error) {
	return s.engine.Verify(ctx, req)
}

// ScanEvent reconciles every room of an event, at most Options.Concurrency at a
// time and each under Options.RoomTimeout. One report per room is returned in
// room id order.
func (s *Service) ScanEvent(ctx context.Context, eventID uint, sessionDate *time.Time, commit bool) ([]*reconcile.Report, error) {
	rooms, err := s.repo.ListRoomsForEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	reports := make([]*reconcile.Report, len(rooms))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Concurrency)

	for i, room := range rooms {
		g.Go(func() error {
			roomCtx, cancel := context.WithTimeout(gctx, s.opts.RoomTimeout)
			defer cancel()

			req := reconcile.Request{RoomID: room.ID, EventID: &eventID, SessionDate: sessionDate, Commit: commit}
			report, err := s.Scan(roomCtx, req)
			if errors.Is(err, lock.ErrBusy) {
				report = busyReport(room, err)
			} else if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.Info("Event scan finished", zap.Uint("event_id", eventID), zap.Int("rooms", len(rooms)))
	return reports, nil
}

func busyReport(room models.Room, err error) *reconcile.Report {
	return &reconcile.Report{
		Status:         reconcile.StatusError,
		RoomID:         room.ID,
		IPAddress:      room.IPAddress,
		ScanDate:       time.Now().UTC(),
		Matches:        []reconcile.FileMatch{},
		Unmatched:      []scanner.File{},
		MissingUploads: []reconcile.UploadSummary{},
		Error:          err.Error(),
		ErrorKind:      reconcile.KindBusy,
		State:          reconcile.StateError,
	}
}

func (s *Service) ListRooms(ctx context.Context) ([]models.Room, error) {
	return s.repo.ListRooms(ctx)
}

func (s *Service) GetRoom(ctx context.Context, id uint) (*models.Room, error) {
	return s.repo.FindRoom(ctx, id)
}

func (s *Service) CreateRoom(ctx context.Context, room *models.Room) error {
	return s.repo.CreateRoom(ctx, room)
}

func (s *Service) UpdateRoom(ctx context.Context, id uint, update models.RoomUpdate) (*models.Room, error) {
	room, err := s.repo.UpdateRoom(ctx, id, update)
	if err != nil {
		return nil, err
	}
	if update.IPAddress != nil {
		s.statuses.Remove(id)
	}
	return room, nil
}

func (s *Service) DeleteRoom(ctx context.Context, id uint) error {
	if err := s.repo.DeleteRoom(ctx, id); err != nil {
		return err
	}
	s.statuses.Remove(id)
	return nil
}

func (s *Service) UpdateUpload(ctx context.Context, id uint, update models.UploadUpdate) (*models.Upload, error) {
	return s.repo.UpdateUpload(ctx, id, update)
}
