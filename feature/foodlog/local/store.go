package local

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"better-food-logs/core/kv"
	"better-food-logs/feature/foodlog/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Storage keys of the two lists, the cached remote foods and the installed
// catalog version.
const (
	FoodsKey       = "better_food_logs_foods"
	LogsKey        = "better_food_logs_logs"
	RemoteFoodsKey = "better_food_logs_remote_foods"
	SeedVersionKey = "sampleFoodsVersion"

	// DefaultNamespace is used when a caller has no device id.
	DefaultNamespace = "default"
)

// Provider hands out namespaced stores over one kv backend.
type Provider struct {
	kv     kv.Store
	logger *zap.Logger
}

// NewProvider creates a provider over backend.
func NewProvider(backend kv.Store, logger *zap.Logger) *Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Provider{kv: backend, logger: logger}
}

// For returns the store of one device namespace.
func (p *Provider) For(namespace string) *Store {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &Store{
		kv:        p.kv,
		namespace: namespace,
		logger:    p.logger.With(zap.String("namespace", namespace)),
		now:       time.Now,
	}
}

// Store holds the anonymous foods and logs of one device. Every call reads
// the full list from the backend; concurrent writers race and the last
// write wins.
type Store struct {
	kv        kv.Store
	namespace string
	logger    *zap.Logger
	now       func() time.Time
}

// Namespace returns the device namespace of the store.
func (s *Store) Namespace() string {
	return s.namespace
}

func (s *Store) key(name string) string {
	return kv.Key(s.namespace, name)
}

// Foods returns the stored foods. Missing or corrupt data reads as empty;
// only backend failures are returned.
func (s *Store) Foods(ctx context.Context) ([]models.Food, error) {
	var foods []models.Food
	ok, err := s.load(ctx, FoodsKey, &foods)
	if err != nil {
		return nil, err
	}
	if !ok || foods == nil {
		return []models.Food{}, nil
	}
	return foods, nil
}

// FoodLogs returns the stored logs without attached foods.
func (s *Store) FoodLogs(ctx context.Context) ([]models.FoodLog, error) {
	var logs []models.FoodLog
	ok, err := s.load(ctx, LogsKey, &logs)
	if err != nil {
		return nil, err
	}
	if !ok || logs == nil {
		return []models.FoodLog{}, nil
	}
	return logs, nil
}

// RemoteFoods returns the last remote food list seen on this device.
func (s *Store) RemoteFoods(ctx context.Context) ([]models.Food, error) {
	var foods []models.Food
	ok, err := s.load(ctx, RemoteFoodsKey, &foods)
	if err != nil {
		return nil, err
	}
	if !ok || foods == nil {
		return []models.Food{}, nil
	}
	return foods, nil
}

// SaveRemoteFoods replaces the cached remote food list.
func (s *Store) SaveRemoteFoods(ctx context.Context, foods []models.Food) error {
	return s.save(ctx, RemoteFoodsKey, foods)
}

// SaveFoods replaces the food list.
func (s *Store) SaveFoods(ctx context.Context, foods []models.Food) error {
	return s.save(ctx, FoodsKey, foods)
}

// SaveFoodLogs replaces the log list. Attached foods are not persisted.
func (s *Store) SaveFoodLogs(ctx context.Context, logs []models.FoodLog) error {
	stripped := make([]models.FoodLog, len(logs))
	for i, l := range logs {
		l.Food = nil
		stripped[i] = l
	}
	return s.save(ctx, LogsKey, stripped)
}

// AddFood appends food, assigning an id when it has none.
func (s *Store) AddFood(ctx context.Context, food models.Food) (models.Food, error) {
	foods, err := s.Foods(ctx)
	if err != nil {
		return models.Food{}, err
	}
	if food.ID == "" {
		food.ID = uuid.NewString()
	}
	if err := s.SaveFoods(ctx, append(foods, food)); err != nil {
		return models.Food{}, err
	}
	return food, nil
}

// AddFoodLog appends log under a fresh id. An empty user becomes the
// anonymous user and a zero timestamp becomes now.
func (s *Store) AddFoodLog(ctx context.Context, log models.FoodLog) (models.FoodLog, error) {
	logs, err := s.FoodLogs(ctx)
	if err != nil {
		return models.FoodLog{}, err
	}
	log.ID = uuid.NewString()
	log.Food = nil
	if log.UserID == "" {
		log.UserID = models.AnonymousUserID
	}
	if log.ConsumedDate == 0 {
		log.ConsumedDate = s.now().UnixMilli()
	}
	if err := s.SaveFoodLogs(ctx, append(logs, log)); err != nil {
		return models.FoodLog{}, err
	}
	return log, nil
}

// UpdateFoodLog sets the servings of log id. It reports false when no log
// has that id.
func (s *Store) UpdateFoodLog(ctx context.Context, id string, servings float64) (bool, error) {
	logs, err := s.FoodLogs(ctx)
	if err != nil {
		return false, err
	}
	for i := range logs {
		if logs[i].ID == id {
			logs[i].ServingsConsumed = servings
			return true, s.SaveFoodLogs(ctx, logs)
		}
	}
	return false, nil
}

// DeleteFoodLog removes log id. It reports false when no log has that id.
func (s *Store) DeleteFoodLog(ctx context.Context, id string) (bool, error) {
	logs, err := s.FoodLogs(ctx)
	if err != nil {
		return false, err
	}
	for i := range logs {
		if logs[i].ID == id {
			return true, s.SaveFoodLogs(ctx, append(logs[:i], logs[i+1:]...))
		}
	}
	return false, nil
}

// ClearAll removes both lists and the remote food cache. The catalog version
// is kept.
func (s *Store) ClearAll(ctx context.Context) error {
	return s.kv.Delete(ctx, s.key(FoodsKey), s.key(LogsKey), s.key(RemoteFoodsKey))
}

// SeedVersion returns the installed catalog version, empty when none.
func (s *Store) SeedVersion(ctx context.Context) (string, error) {
	raw, err := s.kv.Get(ctx, s.key(SeedVersionKey))
	if errors.Is(err, kv.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", SeedVersionKey, err)
	}
	return string(raw), nil
}

// SetSeedVersion records the installed catalog version.
func (s *Store) SetSeedVersion(ctx context.Context, version string) error {
	if err := s.kv.Set(ctx, s.key(SeedVersionKey), []byte(version)); err != nil {
		return fmt.Errorf("write %s: %w", SeedVersionKey, err)
	}
	return nil
}

// load decodes the value of name into dst. It reports false when the key is
// missing or its value cannot be decoded.
func (s *Store) load(ctx context.Context, name string, dst any) (bool, error) {
	raw, err := s.kv.Get(ctx, s.key(name))
	if errors.Is(err, kv.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		s.logger.Warn("Discarding corrupt local data", zap.String("key", name), zap.Error(err))
		return false, nil
	}
	return true, nil
}

func (s *Store) save(ctx context.Context, name string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := s.kv.Set(ctx, s.key(name), raw); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

func logFields(l models.FoodLog) []zap.Field {
	return []zap.Field{zap.String("log_id", l.ID), zap.String("food_id", l.FoodID)}
}
