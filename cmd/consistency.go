package cmd

import (
	"context"

	"better-food-logs/feature/syncer"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	consistencyUser   string
	consistencyFood   string
	consistencyDryRun bool
	consistencyYes    bool
)

// consistencyCmd finds and removes a user's logs whose food no longer exists.
var consistencyCmd = &cobra.Command{
	Use:   "consistency",
	Short: "Find and remove a user's logs referencing missing foods",
	Long: `Checks every remote log of a user against the foods table.

Reports the food ids that no longer exist. Without --dry-run the logs
referencing them are deleted after confirmation.

Examples:
  # Report only
  consistency --user 0b7c... --dry-run

  # Delete orphaned logs without prompting
  consistency --user 0b7c... --yes

  # Inspect a single food
  consistency --user 0b7c... --food 5d1e...`,
	RunE: runConsistency,
}

func init() {
	consistencyCmd.Flags().StringVar(&consistencyUser, "user", "", "User id to check (required)")
	consistencyCmd.Flags().StringVar(&consistencyFood, "food", "", "Check a single food id instead of all")
	consistencyCmd.Flags().BoolVar(&consistencyDryRun, "dry-run", false, "Report without deleting")
	consistencyCmd.Flags().BoolVar(&consistencyYes, "yes", false, "Auto-confirm deletion (non-interactive)")
	_ = consistencyCmd.MarkFlagRequired("user")

	RootCmd.AddCommand(consistencyCmd)
}

func runConsistency(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, l, err := bootstrap()
	if err != nil {
		return err
	}
	defer l.Sync()

	store, err := openStore(cfg, l)
	if err != nil {
		return err
	}
	v := syncer.NewValidator(store, l, nil)

	if consistencyFood != "" {
		res, err := v.CheckFood(ctx, consistencyUser, consistencyFood)
		if err != nil {
			return err
		}
		l.Info("Food check",
			zap.String("food_id", res.ID),
			zap.Bool("present", res.TargetPresent),
			zap.Int("logs", len(res.Referrers)),
			zap.Bool("orphaned", res.Orphaned()),
		)
		return nil
	}

	report := v.ValidateWithOptions(ctx, consistencyUser, syncer.CheckOptions{DryRun: true})
	printConsistencyReport(l, report)

	if len(report.MissingFoodIDs) == 0 {
		return nil
	}
	if consistencyDryRun {
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}
	if !confirmDestructiveAction(consistencyYes) {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	l.Info("Removing orphaned logs...")
	printConsistencyReport(l, v.Validate(ctx, consistencyUser))
	return nil
}

func printConsistencyReport(l *zap.Logger, res syncer.Result) {
	l.Info("Consistency report",
		zap.Bool("foods_sync", res.FoodsSync),
		zap.Bool("logs_sync", res.LogsSync),
		zap.Strings("missing_food_ids", res.MissingFoodIDs),
		zap.Int64("removed_logs", res.RemovedLogs),
		zap.Bool("dry_run", res.DryRun),
	)
	for _, e := range res.Errors {
		l.Warn(e)
	}
}
