package syncer

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"better-food-logs/core/metrics"
	"better-food-logs/feature/foodlog/identity"
	"better-food-logs/feature/foodlog/local"
	"better-food-logs/feature/foodlog/models"
	"better-food-logs/feature/foodlog/remote"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Report describes one sync run.
type Report struct {
	Namespace      string `json:"namespace"`
	UserID         string `json:"user_id"`
	LocalFoods     int    `json:"local_foods"`
	LocalLogs      int    `json:"local_logs"`
	InvalidFoods   int    `json:"invalid_foods"`
	FoodsMatched   int    `json:"foods_matched"`
	FoodsInserted  int    `json:"foods_inserted"`
	LogsInserted   int    `json:"logs_inserted"`
	LogsSkipped    int    `json:"logs_skipped"`
	LogsUnresolved int    `json:"logs_unresolved"`
	Cleared        bool   `json:"cleared"`
}

// Noop reports whether there was nothing to sync.
func (r *Report) Noop() bool {
	return r.LocalFoods == 0 && r.LocalLogs == 0
}

// Synchronizer moves a device's local foods and logs into the remote store
// for a user who just signed in.
type Synchronizer struct {
	store   remote.Store
	logger  *zap.Logger
	metrics *metrics.Metrics
	group   singleflight.Group
}

// NewSynchronizer creates a synchronizer writing to store.
func NewSynchronizer(store remote.Store, logger *zap.Logger, m *metrics.Metrics) *Synchronizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Synchronizer{store: store, logger: logger, metrics: m}
}

// SyncLocalToRemote copies the contents of src into the remote store under
// userID and clears src once everything has been written. Foods are matched
// by signature and logs by (food, timestamp, servings), so a retry after a
// failure does not insert anything twice. Concurrent calls for the same
// namespace and user share one run.
func (s *Synchronizer) SyncLocalToRemote(ctx context.Context, src *local.Store, userID string) (*Report, error) {
	if userID == "" || userID == models.AnonymousUserID {
		return nil, ErrUserRequired
	}

	key := src.Namespace() + "|" + userID
	v, err, shared := s.group.Do(key, func() (any, error) {
		return s.run(ctx, src, userID)
	})
	if shared {
		s.logger.Debug("Joined in-flight sync", zap.String("namespace", src.Namespace()), zap.String("user_id", userID))
	}
	report, _ := v.(*Report)
	return report, err
}

func (s *Synchronizer) run(ctx context.Context, src *local.Store, userID string) (*Report, error) {
	l := s.logger.With(zap.String("namespace", src.Namespace()), zap.String("user_id", userID))
	report := &Report{Namespace: src.Namespace(), UserID: userID}

	fail := func(step Step, err error) (*Report, error) {
		s.metrics.SyncRun("error")
		l.Error("Sync failed, local data kept for retry", zap.String("step", string(step)), zap.Error(err))
		return report, &SyncError{Step: step, Err: err}
	}

	localFoods, err := src.Foods(ctx)
	if err != nil {
		return fail(StepReadLocal, err)
	}
	localLogs, err := src.FoodLogs(ctx)
	if err != nil {
		return fail(StepReadLocal, err)
	}
	report.LocalFoods = len(localFoods)
	report.LocalLogs = len(localLogs)
	if report.Noop() {
		s.metrics.SyncRun("noop")
		return report, nil
	}

	valid := make([]models.Food, 0, len(localFoods))
	for _, f := range localFoods {
		if strings.TrimSpace(f.Name) == "" || strings.TrimSpace(f.ServingDescription) == "" {
			report.InvalidFoods++
			l.Warn("Skipping invalid local food", zap.String("food_id", f.ID))
			continue
		}
		valid = append(valid, f)
	}

	remoteFoods, err := s.store.ListFoods(ctx)
	if err != nil {
		return fail(StepFetchFoods, err)
	}
	present := identity.Index(remoteFoods)

	var novel []models.Food
	staged := make(map[string]struct{})
	for _, f := range valid {
		sig := identity.Signature(f)
		if _, ok := present[sig]; ok {
			report.FoodsMatched++
			continue
		}
		if _, ok := staged[sig]; ok {
			continue
		}
		staged[sig] = struct{}{}
		novel = append(novel, f)
	}

	if len(novel) > 0 {
		inserted, err := s.store.InsertFoods(ctx, novel)
		if err != nil {
			return fail(StepInsertFoods, err)
		}
		report.FoodsInserted = len(inserted)

		// Remote ids are assigned by the store; resolve them again by content.
		remoteFoods, err = s.store.ListFoods(ctx)
		if err != nil {
			return fail(StepRefetchFoods, err)
		}
		present = identity.Index(remoteFoods)
	}

	remoteLogs, err := s.store.ListLogs(ctx, userID)
	if err != nil {
		return fail(StepFetchLogs, err)
	}
	seen := make(map[string]struct{}, len(remoteLogs))
	for _, rl := range remoteLogs {
		seen[logTuple(rl.FoodID, rl.ConsumedDate, rl.ServingsConsumed)] = struct{}{}
	}

	foodsByID := make(map[string]models.Food, len(valid))
	for _, f := range valid {
		foodsByID[f.ID] = f
	}

	var pending []models.FoodLog
	for _, ll := range localLogs {
		food, ok := foodsByID[ll.FoodID]
		if !ok {
			report.LogsUnresolved++
			l.Warn("Skipping local log with unknown food", zap.String("log_id", ll.ID), zap.String("food_id", ll.FoodID))
			continue
		}
		remoteID, ok := present[identity.Signature(food)]
		if !ok {
			report.LogsUnresolved++
			l.Warn("Skipping local log whose food has no remote match", zap.String("log_id", ll.ID), zap.String("food_id", ll.FoodID))
			continue
		}

		tuple := logTuple(remoteID, ll.ConsumedDate, ll.ServingsConsumed)
		if _, ok := seen[tuple]; ok {
			report.LogsSkipped++
			continue
		}
		seen[tuple] = struct{}{}
		pending = append(pending, models.FoodLog{
			UserID:           userID,
			FoodID:           remoteID,
			ServingsConsumed: ll.ServingsConsumed,
			ConsumedDate:     ll.ConsumedDate,
		})
	}

	if len(pending) > 0 {
		inserted, err := s.store.InsertLogs(ctx, pending)
		if err != nil {
			return fail(StepInsertLogs, err)
		}
		report.LogsInserted = len(inserted)
	}

	if err := src.ClearAll(ctx); err != nil {
		return fail(StepClearLocal, err)
	}
	report.Cleared = true

	s.metrics.SyncRun("ok")
	s.metrics.SyncRows("foods", report.FoodsInserted)
	s.metrics.SyncRows("logs", report.LogsInserted)
	l.Info("Synced local data to remote",
		zap.Int("foods_inserted", report.FoodsInserted),
		zap.Int("foods_matched", report.FoodsMatched),
		zap.Int("logs_inserted", report.LogsInserted),
		zap.Int("logs_skipped", report.LogsSkipped),
		zap.Int("logs_unresolved", report.LogsUnresolved),
	)
	return report, nil
}

func logTuple(foodID string, consumed int64, servings float64) string {
	return fmt.Sprintf("%s|%d|%s", foodID, consumed, strconv.FormatFloat(servings, 'f', -1, 64))
}
