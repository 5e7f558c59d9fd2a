package cmd

import (
	"context"
	"fmt"

	"better-food-logs/feature/foodlog/catalog"
	"better-food-logs/feature/foodlog/local"
	"better-food-logs/feature/syncer"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	syncUser   string
	syncDevice string
)

// syncCmd moves one device's local data to a user, as signing in does.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Move a device's local foods and logs to a user",
	Long: `Copies the foods and logs stored locally for a device into the remote
database under the given user, then clears the device's local data.

Foods already present remotely are matched by content, logs already present
are skipped, so the command can be re-run after a failure.

Examples:
  sync --user 0b7c... --device phone-1`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().StringVar(&syncUser, "user", "", "User id receiving the data (required)")
	syncCmd.Flags().StringVar(&syncDevice, "device", local.DefaultNamespace, "Device namespace to read from")
	_ = syncCmd.MarkFlagRequired("user")

	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, l, err := bootstrap()
	if err != nil {
		return err
	}
	defer l.Sync()

	locals, err := openLocal(ctx, cfg, l)
	if err != nil {
		return err
	}
	store, err := openStore(cfg, l)
	if err != nil {
		return err
	}

	seeded, err := catalog.EnsureRemote(ctx, store)
	if err != nil {
		return fmt.Errorf("failed to seed remote foods: %w", err)
	}
	if seeded > 0 {
		l.Info("Seeded remote catalog", zap.Int("foods", seeded))
	}

	report, err := syncer.NewSynchronizer(store, l, nil).SyncLocalToRemote(ctx, locals.For(syncDevice), syncUser)
	if err != nil {
		return err
	}
	if report.Noop() {
		l.Info("Nothing to sync", zap.String("device", syncDevice))
		return nil
	}

	l.Info("Sync report",
		zap.String("device", report.Namespace),
		zap.String("user_id", report.UserID),
		zap.Int("local_foods", report.LocalFoods),
		zap.Int("local_logs", report.LocalLogs),
		zap.Int("invalid_foods", report.InvalidFoods),
		zap.Int("foods_matched", report.FoodsMatched),
		zap.Int("foods_inserted", report.FoodsInserted),
		zap.Int("logs_inserted", report.LogsInserted),
		zap.Int("logs_skipped", report.LogsSkipped),
		zap.Int("logs_unresolved", report.LogsUnresolved),
	)
	return nil
}
