package cmd

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"better-food-logs/core/loader"
	"better-food-logs/core/logger"
	"better-food-logs/core/metrics"
	"better-food-logs/core/middleware/auth"
	"better-food-logs/core/middleware/rayid"
	"better-food-logs/feature/foodlog"
	"better-food-logs/feature/foodlog/local"
	"better-food-logs/feature/foodlog/remote"
	"better-food-logs/feature/integrity"
	"better-food-logs/feature/syncer"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "better-food-logs/docs/swagger"
)

// @title Better Food Logs API
// @version 1.0
// @description API for logging foods and servings, with local-to-remote sync on sign-in.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the food log server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		// 1. Load Configuration and Logger
		cfg, logg, err := bootstrap()
		if err != nil {
			log.Fatal(err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 2. Metrics
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		m := metrics.New(reg)

		// 3. Local Store (Required)
		backend, err := openBackend(ctx, cfg, logg)
		if err != nil {
			logg.Fatal("Failed to open local store", zap.Error(err))
		}
		locals := local.NewProvider(backend, logg)

		// 4. Remote Store (Optional)
		// Without it every request is served from the device's local store.
		var store remote.Store
		var adapter *remote.Adapter
		db, err := openDatabase(cfg, logg)
		if err != nil {
			if errors.Is(err, errRemoteDisabled) {
				logg.Info("Remote database disabled, serving local data only")
			} else {
				logg.Warn("Optional remote database unavailable", zap.Error(err))
			}
		} else {
			gs := remote.NewGormStore(db, queryTimeout(cfg), logg)
			store = gs
			adapter = remote.NewAdapter(gs, logg, m)
		}

		if !cfg.Server.AuthEnabled() {
			logg.Warn("SERVER_JWT_SECRET is empty, bearer tokens will be rejected")
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		// 5. Feature Loader
		mgr := loader.NewManager()
		mgr.Register(foodlog.NewFeature(
			foodlog.NewService(locals, adapter, logg, m, cfg.Server.Location()),
			cfg.Server.DeviceHeader,
		))
		mgr.Register(syncer.NewFeature(
			syncer.NewService(locals, store, logg, m),
			cfg.Server.DeviceHeader,
		))
		mgr.Register(integrity.NewFeature(
			integrity.NewService(backend, cfg.Local.Driver, db, store, logg),
		))

		// Middleware Registration
		// RayID first so every log line carries it.
		app.Use(rayid.New())

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

		// Public endpoints
		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/metrics", metrics.Handler(reg))

		// Bearer tokens are optional; anonymous requests use the device store.
		app.Use(auth.New(auth.Config{Secret: cfg.Server.JWTSecret}))

		loaded, err := mgr.LoadAll(app)
		if err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}
		logg.Info("Loaded features", zap.Strings("features", loaded))

		// 6. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
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
