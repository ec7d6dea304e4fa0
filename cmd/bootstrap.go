package cmd

import (
	"fmt"

	"venue-manager/core/config"
	"venue-manager/core/database"
	"venue-manager/core/lock"
	"venue-manager/core/logger"
	"venue-manager/core/probe"
	"venue-manager/core/storage"
	"venue-manager/feature/rooms"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime holds the shared dependencies built once per process.
type runtime struct {
	cfg    *config.Config
	log    *zap.Logger
	db     *gorm.DB
	client storage.Client
	prober probe.Prober
	locker *lock.RoomLocker
}

// bootstrap loads configuration and builds the logger, database, storage client,
// prober and room locker. A failed database connection is fatal only when requireDB is set.
func bootstrap(requireDB bool) (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	rt := &runtime{cfg: cfg, log: logg}

	if conn, err := database.Connect(cfg.Database); err != nil {
		if requireDB {
			return nil, fmt.Errorf("database connection required: %w", err)
		}
		logg.Warn("Optional database connection failed", zap.Error(err))
	} else {
		rt.db = conn
	}

	if !cfg.Storage.IsValidBackend() {
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}
	if cfg.Storage.Backend == storage.BackendS3 {
		if rt.client, err = storage.NewClient(cfg.Storage); err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
	}

	if rt.prober, err = probe.New(cfg.Probe); err != nil {
		return nil, fmt.Errorf("failed to create prober: %w", err)
	}

	if rt.locker, err = lock.NewRoomLocker(cfg.Lock.Dir); err != nil {
		return nil, err
	}

	return rt, nil
}

func (rt *runtime) rooms() *rooms.Feature {
	return rooms.NewFeature(rt.db, rt.prober, rt.locker, rt.cfg.Probe, rt.cfg.Scan, rt.log)
}
