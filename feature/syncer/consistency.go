package syncer

import (
	"context"
	"errors"
	"strings"

	"better-food-logs/core/metrics"
	"better-food-logs/core/reconcile"
	"better-food-logs/feature/foodlog/models"
	"better-food-logs/feature/foodlog/remote"

	"go.uber.org/zap"
)

// orphanAdapter exposes one user's food_logs -> foods references to the
// reconcile engine.
type orphanAdapter struct {
	store  remote.Store
	userID string
}

func (a *orphanAdapter) Name() string {
	return "food_logs->foods"
}

func (a *orphanAdapter) LoadReferences(ctx context.Context) (map[string][]string, error) {
	logs, err := a.store.ListLogs(ctx, a.userID)
	if err != nil {
		return nil, err
	}
	refs := make(map[string][]string)
	for _, l := range logs {
		refs[l.FoodID] = append(refs[l.FoodID], l.ID)
	}
	return refs, nil
}

func (a *orphanAdapter) LoadTargets(ctx context.Context, keys []string) (map[string]struct{}, error) {
	foods, err := a.store.FoodsByIDs(ctx, keys)
	if err != nil {
		return nil, err
	}
	set := make(map[string]struct{}, len(foods))
	for _, f := range foods {
		set[f.ID] = struct{}{}
	}
	return set, nil
}

func (a *orphanAdapter) DeleteReferrersBatch(ctx context.Context, keys []string) (int64, error) {
	return a.store.DeleteLogsByFoodIDs(ctx, a.userID, keys)
}

var (
	_ reconcile.Adapter      = (*orphanAdapter)(nil)
	_ reconcile.BatchMutator = (*orphanAdapter)(nil)
)

// Result is the outcome of a consistency check. Errors are warnings for the
// caller; the check itself never fails.
type Result struct {
	FoodsSync      bool     `json:"foods_sync"`
	LogsSync       bool     `json:"logs_sync"`
	Errors         []string `json:"errors"`
	MissingFoodIDs []string `json:"missing_food_ids"`
	RemovedLogs    int64    `json:"removed_logs"`
	DryRun         bool     `json:"dry_run"`
}

// CheckOptions controls a consistency check.
type CheckOptions struct {
	// DryRun reports orphaned logs without deleting them.
	DryRun bool
}

// Validator finds remote logs whose food no longer exists and deletes them.
type Validator struct {
	store   remote.Store
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// NewValidator creates a validator over store.
func NewValidator(store remote.Store, logger *zap.Logger, m *metrics.Metrics) *Validator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Validator{store: store, logger: logger, metrics: m}
}

// Validate checks the user's logs and deletes those referencing missing
// foods.
func (v *Validator) Validate(ctx context.Context, userID string) Result {
	return v.ValidateWithOptions(ctx, userID, CheckOptions{})
}

// ValidateWithOptions checks the user's logs as configured by opts.
func (v *Validator) ValidateWithOptions(ctx context.Context, userID string, opts CheckOptions) Result {
	res := Result{FoodsSync: true, LogsSync: true, Errors: []string{}, MissingFoodIDs: []string{}, DryRun: opts.DryRun}
	l := v.logger.With(zap.String("user_id", userID))

	adapter := &orphanAdapter{store: v.store, userID: userID}
	ropts := reconcile.ReconcileOptions{DoPurge: true, DryRun: opts.DryRun, Confirmed: true}

	plan, removed, err := reconcile.ReconcileAndApply(ctx, adapter, ropts)
	if plan == nil {
		var loadErr *reconcile.LoadError
		switch {
		case errors.As(err, &loadErr) && loadErr.Stage == reconcile.StageReferences:
			res.LogsSync = false
			res.Errors = append(res.Errors, "Failed to fetch user logs: "+loadErr.Err.Error())
		case errors.As(err, &loadErr) && loadErr.Stage == reconcile.StageTargets:
			res.FoodsSync = false
			res.Errors = append(res.Errors, "Failed to fetch foods: "+loadErr.Err.Error())
		default:
			res.FoodsSync = false
			res.LogsSync = false
			res.Errors = append(res.Errors, "Consistency check failed: "+err.Error())
		}
		l.Error("Consistency check could not load data", zap.Error(err))
		return res
	}

	missing := plan.MissingKeys()
	if len(missing) == 0 {
		return res
	}

	res.FoodsSync = false
	res.MissingFoodIDs = missing
	res.Errors = append(res.Errors, "Missing foods for IDs: "+strings.Join(missing, ", "))
	l.Warn("Found logs referencing missing foods",
		zap.Strings("food_ids", missing),
		zap.Int("orphaned_logs", plan.Summary.OrphanedReferrers),
		zap.Bool("dry_run", opts.DryRun),
	)

	if err != nil {
		res.LogsSync = false
		res.Errors = append(res.Errors, "Failed to clean orphaned logs: "+cause(err).Error())
		l.Error("Failed to clean orphaned logs", zap.Error(err))
		return res
	}
	res.RemovedLogs = removed
	v.metrics.OrphansRemoved(removed)
	if removed > 0 {
		l.Info("Removed orphaned logs", zap.Int64("count", removed))
	}
	return res
}

// Refresh validates, then returns the user's logs with foods attached.
// A failed fetch is added to the result errors and yields no logs.
func (v *Validator) Refresh(ctx context.Context, userID string) ([]models.FoodLog, Result) {
	res := v.Validate(ctx, userID)

	logs, err := v.store.ListLogs(ctx, userID)
	if err != nil {
		res.Errors = append(res.Errors, "Failed to fetch user logs: "+err.Error())
		return []models.FoodLog{}, res
	}
	joined, missing, err := remote.JoinFoods(ctx, v.store, logs)
	if err != nil {
		res.Errors = append(res.Errors, "Failed to fetch foods: "+err.Error())
		return []models.FoodLog{}, res
	}
	if len(missing) > 0 {
		v.logger.Warn("Logs still reference missing foods after refresh",
			zap.String("user_id", userID), zap.Strings("food_ids", missing))
	}
	return joined, res
}

// CheckFood reports the user's logs referencing one food and whether that
// food exists.
func (v *Validator) CheckFood(ctx context.Context, userID, foodID string) (*reconcile.ReconcileResult, error) {
	return reconcile.ReconcileOne(ctx, &orphanAdapter{store: v.store, userID: userID}, foodID)
}

func cause(err error) error {
	if inner := errors.Unwrap(err); inner != nil {
		return inner
	}
	return err
}
