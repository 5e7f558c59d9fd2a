package cmd

import (
	"context"
	"errors"

	"better-food-logs/feature/foodlog/remote"

	"github.com/spf13/cobra"
)

var (
	resetFoods bool
	resetLogs  bool
	resetYes   bool
)

// resetCmd wipes remote tables. Logs go first so no log outlives its food.
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every remote food and/or log",
	Long: `Deletes all rows of the remote foods and/or food_logs tables for every user.

Examples:
  reset --logs
  reset --foods --logs --yes`,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&resetFoods, "foods", false, "Delete all foods")
	resetCmd.Flags().BoolVar(&resetLogs, "logs", false, "Delete all logs")
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "Auto-confirm deletion (non-interactive)")
	RootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, args []string) error {
	if !resetFoods && !resetLogs {
		return errors.New("nothing to reset, pass --foods and/or --logs")
	}
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
	if !confirmDestructiveAction(resetYes) {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	adapter := remote.NewAdapter(store, l, nil)
	if resetLogs && !adapter.DeleteAllLogs(ctx) {
		return errors.New("failed to delete logs")
	}
	if resetFoods && !adapter.DeleteAllFoods(ctx) {
		return errors.New("failed to delete foods")
	}
	l.Info("Reset complete")
	return nil
}
