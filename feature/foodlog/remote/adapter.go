package remote

import (
	"context"
	"errors"
	"time"

	"better-food-logs/core/metrics"
	"better-food-logs/feature/foodlog/models"

	"go.uber.org/zap"
)

// Adapter wraps a Store for callers that fall back to local storage. It
// never returns errors: failures are logged with the attempted payload and
// reported as nil, false or an empty list.
type Adapter struct {
	store   Store
	logger  *zap.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewAdapter creates an adapter over store.
func NewAdapter(store Store, logger *zap.Logger, m *metrics.Metrics) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{store: store, logger: logger, metrics: m, now: time.Now}
}

// Store returns the wrapped store.
func (a *Adapter) Store() Store {
	return a.store
}

// GetFoods returns every remote food, or an empty list on failure.
func (a *Adapter) GetFoods(ctx context.Context) []models.Food {
	foods, err := a.store.ListFoods(ctx)
	if err != nil {
		a.fail("get_foods", "", nil, err)
		return []models.Food{}
	}
	return foods
}

// AddFood inserts food and returns it with its remote id, or nil.
func (a *Adapter) AddFood(ctx context.Context, food models.Food) *models.Food {
	inserted, err := a.store.InsertFoods(ctx, []models.Food{food})
	if err == nil && len(inserted) != 1 {
		err = errors.New("insert returned no row")
	}
	if err != nil {
		a.fail("add_food", "", food, err)
		return nil
	}
	return &inserted[0]
}

// GetFoodLogs returns the user's logs with foods attached, newest first.
// Logs whose food is missing are dropped.
func (a *Adapter) GetFoodLogs(ctx context.Context, userID string) []models.FoodLog {
	logs, err := a.store.ListLogs(ctx, userID)
	if err != nil {
		a.fail("get_food_logs", userID, nil, err)
		return []models.FoodLog{}
	}
	joined, missing, err := JoinFoods(ctx, a.store, logs)
	if err != nil {
		a.fail("get_food_logs", userID, nil, err)
		return []models.FoodLog{}
	}
	if len(missing) > 0 {
		a.logger.Warn("Dropping food logs with missing foods",
			zap.String("user_id", userID),
			zap.Strings("food_ids", missing),
		)
	}
	return joined
}

// AddFoodLog inserts log and returns the stored row, or nil.
func (a *Adapter) AddFoodLog(ctx context.Context, log models.FoodLog) *models.FoodLog {
	log.Food = nil
	inserted, err := a.store.InsertLogs(ctx, []models.FoodLog{log})
	if err == nil && len(inserted) != 1 {
		err = errors.New("insert returned no row")
	}
	if err != nil {
		a.fail("add_food_log", log.UserID, log, err)
		return nil
	}
	return &inserted[0]
}

// UpdateFoodLog sets the servings of the user's log id, or returns nil.
func (a *Adapter) UpdateFoodLog(ctx context.Context, userID, id string, servings float64) *models.FoodLog {
	updated, err := a.store.UpdateLogServings(ctx, userID, id, servings)
	if err != nil {
		a.fail("update_food_log", userID, map[string]any{"id": id, "servings_consumed": servings}, err)
		return nil
	}
	return &updated
}

// DeleteFoodLog removes the user's log id and reports success.
func (a *Adapter) DeleteFoodLog(ctx context.Context, userID, id string) bool {
	if err := a.store.DeleteLog(ctx, userID, id); err != nil {
		a.fail("delete_food_log", userID, map[string]any{"id": id}, err)
		return false
	}
	return true
}

// DeleteAllFoods removes every remote food and reports success.
func (a *Adapter) DeleteAllFoods(ctx context.Context) bool {
	n, err := a.store.DeleteAllFoods(ctx)
	if err != nil {
		a.fail("delete_all_foods", "", nil, err)
		return false
	}
	a.logger.Info("Deleted all remote foods", zap.Int64("rows", n))
	return true
}

// DeleteAllLogs removes every remote log and reports success.
func (a *Adapter) DeleteAllLogs(ctx context.Context) bool {
	n, err := a.store.DeleteAllLogs(ctx)
	if err != nil {
		a.fail("delete_all_logs", "", nil, err)
		return false
	}
	a.logger.Info("Deleted all remote food logs", zap.Int64("rows", n))
	return true
}

func (a *Adapter) fail(op, userID string, payload any, err error) {
	a.metrics.RemoteFailure(op)
	a.logger.Error("Remote store operation failed",
		zap.String("op", op),
		zap.String("user_id", userID),
		zap.Any("payload", payload),
		zap.Time("at", a.now()),
		zap.Error(err),
	)
}
