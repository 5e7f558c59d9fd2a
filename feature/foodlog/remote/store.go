package remote

import (
	"context"
	"errors"
	"fmt"
	"time"

	"better-food-logs/feature/foodlog/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a targeted row does not exist for the user.
var ErrNotFound = errors.New("remote: record not found")

// DefaultTimeout bounds a single call when no timeout is configured.
const DefaultTimeout = 15 * time.Second

// Store is the remote relational store in application shapes. Every call
// may fail independently.
type Store interface {
	ListFoods(ctx context.Context) ([]models.Food, error)
	FoodsByIDs(ctx context.Context, ids []string) ([]models.Food, error)
	CountFoods(ctx context.Context) (int64, error)
	// InsertFoods inserts foods in one batch and returns them with the ids
	// the store assigned.
	InsertFoods(ctx context.Context, foods []models.Food) ([]models.Food, error)
	// ListLogs returns the user's logs newest first, without foods attached.
	ListLogs(ctx context.Context, userID string) ([]models.FoodLog, error)
	InsertLogs(ctx context.Context, logs []models.FoodLog) ([]models.FoodLog, error)
	UpdateLogServings(ctx context.Context, userID, id string, servings float64) (models.FoodLog, error)
	DeleteLog(ctx context.Context, userID, id string) error
	DeleteLogsByFoodIDs(ctx context.Context, userID string, foodIDs []string) (int64, error)
	DeleteAllFoods(ctx context.Context) (int64, error)
	DeleteAllLogs(ctx context.Context) (int64, error)
}

// GormStore implements Store over GORM.
type GormStore struct {
	db      *gorm.DB
	timeout time.Duration
	logger  *zap.Logger
}

// NewGormStore creates a store whose calls are bounded by timeout.
func NewGormStore(db *gorm.DB, timeout time.Duration, logger *zap.Logger) *GormStore {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GormStore{db: db, timeout: timeout, logger: logger}
}

func (s *GormStore) conn(ctx context.Context) (*gorm.DB, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	return s.db.WithContext(ctx), cancel
}

func (s *GormStore) ListFoods(ctx context.Context) ([]models.Food, error) {
	db, cancel := s.conn(ctx)
	defer cancel()

	var rows []FoodRow
	if err := db.Order("name").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}
	return foodsFromRows(rows), nil
}

func (s *GormStore) FoodsByIDs(ctx context.Context, ids []string) ([]models.Food, error) {
	if len(ids) == 0 {
		return []models.Food{}, nil
	}
	db, cancel := s.conn(ctx)
	defer cancel()

	var rows []FoodRow
	if err := db.Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("fetch foods by id: %w", err)
	}
	return foodsFromRows(rows), nil
}

func (s *GormStore) CountFoods(ctx context.Context) (int64, error) {
	db, cancel := s.conn(ctx)
	defer cancel()

	var n int64
	if err := db.Model(&FoodRow{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count foods: %w", err)
	}
	return n, nil
}

func (s *GormStore) InsertFoods(ctx context.Context, foods []models.Food) ([]models.Food, error) {
	if len(foods) == 0 {
		return []models.Food{}, nil
	}
	db, cancel := s.conn(ctx)
	defer cancel()

	rows := make([]FoodRow, len(foods))
	for i, f := range foods {
		rows[i] = ToFoodRow(f)
	}
	if err := db.Create(&rows).Error; err != nil {
		return nil, fmt.Errorf("insert foods: %w", err)
	}
	return foodsFromRows(rows), nil
}

func (s *GormStore) ListLogs(ctx context.Context, userID string) ([]models.FoodLog, error) {
	db, cancel := s.conn(ctx)
	defer cancel()

	var rows []FoodLogRow
	if err := db.Where("user_id = ?", userID).Order("consumed_date DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list food logs: %w", err)
	}

	out := make([]models.FoodLog, 0, len(rows))
	for _, r := range rows {
		l, err := FromLogRow(r)
		if err != nil {
			s.logger.Warn("Skipping unreadable food log", zap.String("user_id", userID), zap.Error(err))
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func (s *GormStore) InsertLogs(ctx context.Context, logs []models.FoodLog) ([]models.FoodLog, error) {
	if len(logs) == 0 {
		return []models.FoodLog{}, nil
	}
	db, cancel := s.conn(ctx)
	defer cancel()

	rows := make([]FoodLogRow, len(logs))
	for i, l := range logs {
		rows[i] = ToLogRow(l)
	}
	if err := db.Create(&rows).Error; err != nil {
		return nil, fmt.Errorf("insert food logs: %w", err)
	}
	return logsFromRows(rows)
}

func (s *GormStore) UpdateLogServings(ctx context.Context, userID, id string, servings float64) (models.FoodLog, error) {
	db, cancel := s.conn(ctx)
	defer cancel()

	res := db.Model(&FoodLogRow{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("servings_consumed", servings)
	if res.Error != nil {
		return models.FoodLog{}, fmt.Errorf("update food log %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return models.FoodLog{}, ErrNotFound
	}

	var row FoodLogRow
	if err := db.Where("id = ? AND user_id = ?", id, userID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.FoodLog{}, ErrNotFound
		}
		return models.FoodLog{}, fmt.Errorf("read food log %s: %w", id, err)
	}
	return FromLogRow(row)
}

func (s *GormStore) DeleteLog(ctx context.Context, userID, id string) error {
	db, cancel := s.conn(ctx)
	defer cancel()

	res := db.Where("id = ? AND user_id = ?", id, userID).Delete(&FoodLogRow{})
	if res.Error != nil {
		return fmt.Errorf("delete food log %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) DeleteLogsByFoodIDs(ctx context.Context, userID string, foodIDs []string) (int64, error) {
	if len(foodIDs) == 0 {
		return 0, nil
	}
	db, cancel := s.conn(ctx)
	defer cancel()

	res := db.Where("user_id = ? AND food_id IN ?", userID, foodIDs).Delete(&FoodLogRow{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete food logs by food: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func (s *GormStore) DeleteAllFoods(ctx context.Context) (int64, error) {
	db, cancel := s.conn(ctx)
	defer cancel()

	res := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&FoodRow{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete all foods: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func (s *GormStore) DeleteAllLogs(ctx context.Context) (int64, error) {
	db, cancel := s.conn(ctx)
	defer cancel()

	res := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&FoodLogRow{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete all food logs: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func foodsFromRows(rows []FoodRow) []models.Food {
	out := make([]models.Food, len(rows))
	for i, r := range rows {
		out[i] = FromFoodRow(r)
	}
	return out
}

func logsFromRows(rows []FoodLogRow) ([]models.FoodLog, error) {
	out := make([]models.FoodLog, 0, len(rows))
	for _, r := range rows {
		l, err := FromLogRow(r)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}

var _ Store = (*GormStore)(nil)
