package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"venue-manager/core/database"
	"venue-manager/core/loader"
	"venue-manager/core/logger"
	"venue-manager/core/middleware/auth"
	"venue-manager/core/middleware/metrics"
	"venue-manager/core/middleware/rayid"
	"venue-manager/core/storage"
	"venue-manager/feature/devices"
	"venue-manager/feature/events"
	"venue-manager/feature/files"
	"venue-manager/feature/integrity"
	"venue-manager/feature/rooms/models"
	"venue-manager/feature/speakers"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "venue-manager/docs/swagger"
)

// @title Venue Manager API
// @version 1.0
// @description API for room presence checks and presentation file reconciliation.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the venue manager server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration, Logger and shared dependencies
		rt, err := bootstrap(false)
		if err != nil {
			log.Fatalf("Failed to initialize: %v", err)
		}
		logg := rt.log
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 2. Migrate the schema when a database is available
		if rt.db != nil {
			if err := database.Migrate(rt.db, models.All()...); err != nil {
				logg.Fatal("Failed to migrate database", zap.Error(err))
			}
			logg.Info("Connected to database", zap.String("driver", rt.cfg.Database.Driver))
		}

		// 3. Initialize Storage Backend
		backend, err := storage.NewBackend(rt.cfg.Storage, rt.client)
		if err != nil {
			logg.Fatal("Failed to create storage backend", zap.Error(err))
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             rt.cfg.Server.BodyLimitBytes(),
			JSONEncoder:           json.Marshal,
			JSONDecoder:           json.Unmarshal,
		})

		// 5. Initialize Feature Loader
		mgr := loader.NewManager()
		mgr.Register(rt.rooms())
		mgr.Register(files.NewFeature(rt.db, backend, logg))
		mgr.Register(devices.NewFeature(rt.db, logg))
		mgr.Register(events.NewFeature(rt.db, logg))
		mgr.Register(speakers.NewFeature(rt.db, logg))
		mgr.Register(integrity.NewFeature(rt.client, rt.cfg.Storage, rt.db, models.All(), logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 3. Request metrics
		app.Use(metrics.New())

		// 4. Public endpoints
		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
		app.Get("/health", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"status": "ok"})
		})

		// 5. Auth (Protect API)
		app.Use(auth.New(auth.Config{
			ApiKey: rt.cfg.Server.ApiKey,
			Public: []string{"/health", "/metrics", "/swagger"},
		}))

		// 6. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 7. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", rt.cfg.Server.Port))
			if err := app.Listen(":" + rt.cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
