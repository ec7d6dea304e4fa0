package rooms

import (
	"time"

	"venue-manager/core/lock"
	"venue-manager/core/media"
	"venue-manager/core/probe"
	"venue-manager/core/reconcile"
	"venue-manager/core/scanner"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
	enabled bool
}

// NewFeature wires the repository, reconciliation engine and service of the rooms feature.
func NewFeature(db *gorm.DB, prober probe.Prober, locker *lock.RoomLocker, probeCfg probe.Config, scanCfg scanner.Config, logger *zap.Logger) *Feature {
	kinds, ok := media.ParseKinds(scanCfg.Kinds)
	if !ok {
		logger.Warn("Ignoring invalid scan kinds", zap.String("kinds", scanCfg.Kinds))
		kinds = nil
	}

	repo := NewRepository(db)
	engine := reconcile.NewEngine(repo, prober, scanner.New(logger), reconcile.Options{
		Threshold:    scanCfg.MatchThreshold,
		ProbeTimeout: probeCfg.Timeout(),
		ScanTimeout:  scanCfg.Timeout(),
		MountRoot:    scanCfg.MountRoot,
		Kinds:        kinds,
	}, logger)

	svc := NewService(repo, engine, prober, locker, Options{
		ProbeTimeout: probeCfg.Timeout(),
		RoomTimeout:  probeCfg.Timeout() + probe.Grace + scanCfg.Timeout(),
		StatusTTL:    time.Duration(probeCfg.StatusTTLSeconds) * time.Second,
		Concurrency:  scanCfg.Concurrency,
	}, logger)

	return &Feature{service: svc, handler: NewHandler(svc), enabled: db != nil}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "rooms"
}

// IsEnabled reports whether a database is available.
func (f *Feature) IsEnabled() bool {
	return f.enabled
}

// Service exposes the rooms service to the CLI.
func (f *Feature) Service() *Service {
	return f.service
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
