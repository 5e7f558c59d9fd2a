package foodlog

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"better-food-logs/core/kv"
	"better-food-logs/core/metrics"
	"better-food-logs/feature/foodlog/catalog"
	"better-food-logs/feature/foodlog/local"
	"better-food-logs/feature/foodlog/models"
	"better-food-logs/feature/foodlog/remote"
	"better-food-logs/feature/foodlog/remote/remotetest"
	"better-food-logs/feature/foodlog/validation"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)

var (
	anon = Session{DeviceID: "phone"}
	user = Session{UserID: "user-1", DeviceID: "phone"}
)

func f(v float64) *float64 { return &v }

func soup() validation.FoodInput {
	return validation.FoodInput{
		Name:               "Lentil  Soup ",
		ServingDescription: "1 bowl",
		ServingVolumeMl:    f(300),
		Calories:           f(230.456),
		ProteinG:           f(18),
	}
}

func newService(t *testing.T, store remote.Store, m *metrics.Metrics) (*Service, *local.Provider) {
	t.Helper()
	locals := local.NewProvider(kv.NewMemory(), nil)
	var adapter *remote.Adapter
	if store != nil {
		adapter = remote.NewAdapter(store, nil, m)
	}
	svc := NewService(locals, adapter, nil, m, time.UTC)
	svc.now = func() time.Time { return fixedNow }
	return svc, locals
}

func TestSession(t *testing.T) {
	assert.False(t, anon.Authenticated())
	assert.Equal(t, models.AnonymousUserID, anon.Owner())
	assert.False(t, Session{UserID: models.AnonymousUserID}.Authenticated())
	assert.True(t, user.Authenticated())
	assert.Equal(t, "user-1", user.Owner())
}

func TestService_Anonymous_LoadFoodsSeeds(t *testing.T) {
	svc, _ := newService(t, nil, nil)

	foods, err := svc.LoadFoods(context.Background(), anon)
	require.NoError(t, err)
	assert.Len(t, foods, len(catalog.Foods()))
}

func TestService_CreateFood(t *testing.T) {
	svc, locals := newService(t, nil, nil)
	ctx := context.Background()

	food, err := svc.CreateFood(ctx, anon, soup())
	require.NoError(t, err)
	assert.NotEmpty(t, food.ID)
	assert.Equal(t, "Lentil Soup", food.Name)
	assert.Equal(t, 230.46, food.Calories)

	stored, err := locals.For("phone").Foods(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, len(catalog.Foods())+1)

	_, err = svc.CreateFood(ctx, anon, soup())
	var dup *DuplicateError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "Lentil Soup", dup.Name)

	_, err = svc.CreateFood(ctx, anon, validation.FoodInput{Name: "X"})
	var invalid *ValidationError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Errors, "Food name must be at least 2 characters long")
	assert.Contains(t, invalid.Errors, "Calories are required")
}

func TestService_LogEditDelete_Local(t *testing.T) {
	svc, _ := newService(t, nil, nil)
	ctx := context.Background()

	foods, err := svc.LoadFoods(ctx, anon)
	require.NoError(t, err)
	banana := foods[0]

	log, err := svc.LogFood(ctx, anon, banana.ID, 1.005)
	require.NoError(t, err)
	assert.Equal(t, models.AnonymousUserID, log.UserID)
	assert.Equal(t, 1.0, log.ServingsConsumed)
	assert.Equal(t, fixedNow.UnixMilli(), log.ConsumedDate)
	require.NotNil(t, log.Food)
	assert.Equal(t, banana.Name, log.Food.Name)

	_, err = svc.LogFood(ctx, anon, "nope", 1)
	assert.ErrorIs(t, err, ErrFoodNotFound)
	_, err = svc.LogFood(ctx, anon, banana.ID, 0)
	assert.ErrorIs(t, err, ErrInvalidServings)
	_, err = svc.LogFood(ctx, anon, banana.ID, 0.001)
	assert.ErrorIs(t, err, ErrInvalidServings, "rounds to zero")

	require.NoError(t, svc.EditLog(ctx, anon, log.ID, 2))
	assert.ErrorIs(t, svc.EditLog(ctx, anon, "nope", 2), ErrLogNotFound)
	assert.ErrorIs(t, svc.EditLog(ctx, anon, log.ID, -1), ErrInvalidServings)

	logs, err := svc.LoadFoodLogs(ctx, anon)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, 2.0, logs[0].ServingsConsumed)

	require.NoError(t, svc.DeleteLog(ctx, anon, log.ID))
	assert.ErrorIs(t, svc.DeleteLog(ctx, anon, log.ID), ErrLogNotFound)
}

func TestService_Summaries(t *testing.T) {
	svc, locals := newService(t, nil, nil)
	ctx := context.Background()
	store := locals.For("phone")

	food, err := store.AddFood(ctx, models.Food{Name: "Bar", ServingDescription: "1 bar", ServingMassG: f(40), Calories: 200, ProteinG: 10})
	require.NoError(t, err)
	_, err = store.AddFoodLog(ctx, models.FoodLog{FoodID: food.ID, ServingsConsumed: 2, ConsumedDate: fixedNow.Add(-time.Hour).UnixMilli()})
	require.NoError(t, err)
	_, err = store.AddFoodLog(ctx, models.FoodLog{FoodID: food.ID, ServingsConsumed: 1, ConsumedDate: fixedNow.AddDate(0, 0, -2).UnixMilli()})
	require.NoError(t, err)

	today, err := svc.TodaySummary(ctx, anon)
	require.NoError(t, err)
	assert.Equal(t, 400.0, today.TotalCalories)
	assert.Equal(t, 20.0, today.TotalProteinG)

	report, err := svc.PeriodSummary(ctx, anon, 7)
	require.NoError(t, err)
	assert.Equal(t, 600.0, report.Summary.TotalCalories)
	assert.Len(t, report.Daily, 7)

	_, err = svc.PeriodSummary(ctx, anon, 0)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
	_, err = svc.PeriodSummary(ctx, anon, MaxPeriodDays+1)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestService_Remote_LogFoodResolvesLocalFood(t *testing.T) {
	store, _ := remotetest.NewStore(t)
	svc, locals := newService(t, store, nil)
	ctx := context.Background()

	// Remote is empty, so foods come from the seeded local list.
	foods, err := svc.LoadFoods(ctx, user)
	require.NoError(t, err)
	localBanana := foods[0]

	first, err := svc.LogFood(ctx, user, localBanana.ID, 1)
	require.NoError(t, err)
	assert.NotEqual(t, localBanana.ID, first.FoodID, "remote logs reference remote ids")
	assert.Equal(t, "user-1", first.UserID)

	second, err := svc.LogFood(ctx, user, localBanana.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, first.FoodID, second.FoodID, "the food is matched by signature, not inserted again")

	n, err := store.CountFoods(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	logs, err := svc.LoadFoodLogs(ctx, user)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, localBanana.Name, logs[0].Food.Name)

	localLogs, err := locals.For("phone").FoodLogs(ctx)
	require.NoError(t, err)
	assert.Empty(t, localLogs)

	require.NoError(t, svc.EditLog(ctx, user, first.ID, 3))
	require.NoError(t, svc.DeleteLog(ctx, user, second.ID))
	logs, err = svc.LoadFoodLogs(ctx, user)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, 3.0, logs[0].ServingsConsumed)
}

func TestService_Remote_UsesRemoteFoods(t *testing.T) {
	store, _ := remotetest.NewStore(t)
	svc, _ := newService(t, store, nil)
	ctx := context.Background()

	_, err := catalog.EnsureRemote(ctx, store)
	require.NoError(t, err)
	created, err := svc.CreateFood(ctx, user, soup())
	require.NoError(t, err)

	foods, err := svc.LoadFoods(ctx, user)
	require.NoError(t, err)
	assert.Len(t, foods, len(catalog.Foods())+1)

	log, err := svc.LogFood(ctx, user, created.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, created.ID, log.FoodID)
}

type downStore struct{ remote.Store }

var errDown = errors.New("remote unavailable")

func (downStore) ListFoods(context.Context) ([]models.Food, error) { return nil, errDown }
func (downStore) FoodsByIDs(context.Context, []string) ([]models.Food, error) {
	return nil, errDown
}
func (downStore) InsertFoods(context.Context, []models.Food) ([]models.Food, error) {
	return nil, errDown
}
func (downStore) ListLogs(context.Context, string) ([]models.FoodLog, error) { return nil, errDown }
func (downStore) InsertLogs(context.Context, []models.FoodLog) ([]models.FoodLog, error) {
	return nil, errDown
}
func (downStore) UpdateLogServings(context.Context, string, string, float64) (models.FoodLog, error) {
	return models.FoodLog{}, errDown
}
func (downStore) DeleteLog(context.Context, string, string) error { return errDown }

func TestService_RemoteFailureFallsBackToLocal(t *testing.T) {
	reg := prometheus.NewRegistry()
	svc, locals := newService(t, downStore{}, metrics.New(reg))
	ctx := context.Background()

	foods, err := svc.LoadFoods(ctx, user)
	require.NoError(t, err)
	require.NotEmpty(t, foods)

	created, err := svc.CreateFood(ctx, user, soup())
	require.NoError(t, err)

	log, err := svc.LogFood(ctx, user, created.ID, 1.5)
	require.NoError(t, err)
	assert.Equal(t, "user-1", log.UserID)
	assert.Equal(t, created.ID, log.FoodID)

	require.NoError(t, svc.EditLog(ctx, user, log.ID, 2))
	require.NoError(t, svc.DeleteLog(ctx, user, log.ID))
	assert.ErrorIs(t, svc.DeleteLog(ctx, user, log.ID), ErrLogNotFound)

	stored, err := locals.For("phone").Foods(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, len(catalog.Foods())+1)

	expected := `
# HELP food_logs_local_fallbacks_total Writes redirected to the local store after a remote failure.
# TYPE food_logs_local_fallbacks_total counter
food_logs_local_fallbacks_total{op="create_food"} 1
food_logs_local_fallbacks_total{op="delete_log"} 2
food_logs_local_fallbacks_total{op="edit_log"} 1
food_logs_local_fallbacks_total{op="log_food"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "food_logs_local_fallbacks_total"))
}

// outageStore serves its wrapped store until down is set.
type outageStore struct {
	remote.Store
	down bool
}

func (s *outageStore) ListFoods(ctx context.Context) ([]models.Food, error) {
	if s.down {
		return nil, errDown
	}
	return s.Store.ListFoods(ctx)
}

func (s *outageStore) FoodsByIDs(ctx context.Context, ids []string) ([]models.Food, error) {
	if s.down {
		return nil, errDown
	}
	return s.Store.FoodsByIDs(ctx, ids)
}

func (s *outageStore) InsertFoods(ctx context.Context, foods []models.Food) ([]models.Food, error) {
	if s.down {
		return nil, errDown
	}
	return s.Store.InsertFoods(ctx, foods)
}

func (s *outageStore) InsertLogs(ctx context.Context, logs []models.FoodLog) ([]models.FoodLog, error) {
	if s.down {
		return nil, errDown
	}
	return s.Store.InsertLogs(ctx, logs)
}

func TestService_Remote_LogRemoteFoodDuringOutage(t *testing.T) {
	backing, _ := remotetest.NewStore(t)
	ctx := context.Background()
	_, err := catalog.EnsureRemote(ctx, backing)
	require.NoError(t, err)

	store := &outageStore{Store: backing}
	svc, locals := newService(t, store, nil)

	foods, err := svc.LoadFoods(ctx, user)
	require.NoError(t, err)
	require.NotEmpty(t, foods)
	remoteFood := foods[0]

	store.down = true
	log, err := svc.LogFood(ctx, user, remoteFood.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, remoteFood.ID, log.FoodID)
	assert.Equal(t, "user-1", log.UserID)
	require.NotNil(t, log.Food)
	assert.Equal(t, remoteFood.Name, log.Food.Name)

	device := locals.For("phone")
	stored, err := device.Foods(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, remoteFood.ID, stored[0].ID)

	localLogs, err := device.FoodLogs(ctx)
	require.NoError(t, err)
	require.Len(t, localLogs, 1)
	assert.Equal(t, remoteFood.ID, localLogs[0].FoodID)

	_, err = svc.LogFood(ctx, user, "unknown", 1)
	assert.ErrorIs(t, err, ErrFoodNotFound)
}
