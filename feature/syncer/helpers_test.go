package syncer

import (
	"context"
	"testing"

	"better-food-logs/core/kv"
	"better-food-logs/feature/foodlog/local"
	"better-food-logs/feature/foodlog/models"
	"better-food-logs/feature/foodlog/remote"
	"better-food-logs/feature/foodlog/remote/remotetest"

	"github.com/stretchr/testify/require"
)

// flakyKV fails deletes while deleteErr is set.
type flakyKV struct {
	kv.Store
	deleteErr error
}

func (f *flakyKV) Delete(ctx context.Context, keys ...string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	return f.Store.Delete(ctx, keys...)
}

// faultyStore delegates to a real store unless an error is set for the call.
type faultyStore struct {
	remote.Store
	listFoodsErr  error
	listLogsErr   error
	foodsByIDsErr error
	insertLogsErr error
	deleteErr     error
}

func (s *faultyStore) ListFoods(ctx context.Context) ([]models.Food, error) {
	if s.listFoodsErr != nil {
		return nil, s.listFoodsErr
	}
	return s.Store.ListFoods(ctx)
}

func (s *faultyStore) ListLogs(ctx context.Context, userID string) ([]models.FoodLog, error) {
	if s.listLogsErr != nil {
		return nil, s.listLogsErr
	}
	return s.Store.ListLogs(ctx, userID)
}

func (s *faultyStore) FoodsByIDs(ctx context.Context, ids []string) ([]models.Food, error) {
	if s.foodsByIDsErr != nil {
		return nil, s.foodsByIDsErr
	}
	return s.Store.FoodsByIDs(ctx, ids)
}

func (s *faultyStore) InsertLogs(ctx context.Context, logs []models.FoodLog) ([]models.FoodLog, error) {
	if s.insertLogsErr != nil {
		return nil, s.insertLogsErr
	}
	return s.Store.InsertLogs(ctx, logs)
}

func (s *faultyStore) DeleteLogsByFoodIDs(ctx context.Context, userID string, ids []string) (int64, error) {
	if s.deleteErr != nil {
		return 0, s.deleteErr
	}
	return s.Store.DeleteLogsByFoodIDs(ctx, userID, ids)
}

func newRemote(t *testing.T) *remote.GormStore {
	t.Helper()
	store, _ := remotetest.NewStore(t)
	return store
}

func newLocal(backend kv.Store) *local.Store {
	return local.NewProvider(backend, nil).For("phone")
}

func yogurt() models.Food {
	return models.Food{
		Name:               "Greek Yogurt",
		BrandName:          "Chobani",
		ServingDescription: "1 container",
		ServingMassG:       models.Float(227),
		Calories:           130,
		ProteinG:           17,
	}
}

func milk() models.Food {
	return models.Food{
		Name:               "Whole Milk",
		ServingDescription: "1 cup",
		ServingVolumeMl:    models.Float(240),
		Calories:           149,
	}
}

func addFood(t *testing.T, s *local.Store, f models.Food) models.Food {
	t.Helper()
	saved, err := s.AddFood(context.Background(), f)
	require.NoError(t, err)
	return saved
}

func addLog(t *testing.T, s *local.Store, foodID string, servings float64, at int64) models.FoodLog {
	t.Helper()
	saved, err := s.AddFoodLog(context.Background(), models.FoodLog{FoodID: foodID, ServingsConsumed: servings, ConsumedDate: at})
	require.NoError(t, err)
	return saved
}
