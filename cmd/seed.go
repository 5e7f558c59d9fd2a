package cmd

import (
	"context"
	"errors"
	"fmt"

	"better-food-logs/feature/foodlog/catalog"
	"better-food-logs/feature/foodlog/local"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var seedDevice string

// seedCmd installs the starter foods.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Install the starter foods locally and remotely",
	Long: `Seeds the starter foods into a device's local store, and into the remote
database when one is configured and its foods table is empty.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedDevice, "device", local.DefaultNamespace, "Device namespace to seed")
	RootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
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
	seeded, err := catalog.EnsureLocal(ctx, locals.For(seedDevice))
	if err != nil {
		return fmt.Errorf("failed to seed local foods: %w", err)
	}
	l.Info("Local catalog", zap.String("device", seedDevice), zap.Bool("seeded", seeded), zap.String("version", catalog.Version))

	store, err := openStore(cfg, l)
	if errors.Is(err, errRemoteDisabled) {
		return nil
	}
	if err != nil {
		return err
	}
	n, err := catalog.EnsureRemote(ctx, store)
	if err != nil {
		return fmt.Errorf("failed to seed remote foods: %w", err)
	}
	l.Info("Remote catalog", zap.Int("seeded", n))
	return nil
}
