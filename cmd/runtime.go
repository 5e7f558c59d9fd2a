package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"better-food-logs/core/config"
	"better-food-logs/core/database"
	"better-food-logs/core/kv"
	"better-food-logs/core/logger"
	"better-food-logs/core/storage"
	"better-food-logs/feature/foodlog/local"
	"better-food-logs/feature/foodlog/remote"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var errRemoteDisabled = errors.New("no remote database configured (DATABASE_DRIVER=none)")

// bootstrap loads the configuration and builds the logger every command
// starts from.
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, l, nil
}

// openBackend opens the configured local backend.
func openBackend(ctx context.Context, cfg *config.Config, l *zap.Logger) (kv.Store, error) {
	var client storage.Client
	if strings.EqualFold(cfg.Local.Driver, kv.DriverObject) {
		c, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		client = c
	}

	backend, err := kv.Open(ctx, cfg.Local, client, cfg.Storage.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}
	l.Info("Opened local store", zap.String("driver", cfg.Local.Driver))
	return backend, nil
}

// openLocal returns the provider of per-device stores over the configured
// backend.
func openLocal(ctx context.Context, cfg *config.Config, l *zap.Logger) (*local.Provider, error) {
	backend, err := openBackend(ctx, cfg, l)
	if err != nil {
		return nil, err
	}
	return local.NewProvider(backend, l), nil
}

// openDatabase connects to the remote database, migrates it when configured
// and verifies the schema.
func openDatabase(cfg *config.Config, l *zap.Logger) (*gorm.DB, error) {
	if !cfg.Database.Enabled() {
		return nil, errRemoteDisabled
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, err
	}
	if cfg.Database.AutoMigrate {
		if err := remote.Migrate(db); err != nil {
			return nil, err
		}
	}
	if err := remote.VerifySchema(db); err != nil {
		return nil, err
	}

	l.Info("Connected to remote database", zap.String("driver", cfg.Database.Driver))
	return db, nil
}

// openStore returns the remote store for commands that cannot run without it.
func openStore(cfg *config.Config, l *zap.Logger) (*remote.GormStore, error) {
	db, err := openDatabase(cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to open remote store: %w", err)
	}
	return remote.NewGormStore(db, queryTimeout(cfg), l), nil
}

func queryTimeout(cfg *config.Config) time.Duration {
	if cfg.Database.QueryTimeoutSeconds <= 0 {
		return remote.DefaultTimeout
	}
	return time.Duration(cfg.Database.QueryTimeoutSeconds) * time.Second
}

// confirmDestructiveAction prompts the user for confirmation unless yes is
// set.
func confirmDestructiveAction(yes bool) bool {
	if yes {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  Type 'yes' to confirm destructive actions: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	response = strings.TrimSpace(response)
	return response == "yes"
}
