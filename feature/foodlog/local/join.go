package local

import (
	"context"

	"better-food-logs/feature/foodlog/models"
)

// JoinedLogs reads both lists and attaches foods to logs. Orphaned logs are
// skipped and logged.
func (s *Store) JoinedLogs(ctx context.Context) ([]models.FoodLog, error) {
	foods, err := s.Foods(ctx)
	if err != nil {
		return nil, err
	}
	logs, err := s.FoodLogs(ctx)
	if err != nil {
		return nil, err
	}
	joined, orphans := models.AttachFoods(logs, foods)
	for _, o := range orphans {
		s.logger.Debug("Skipping local log with unknown food", logFields(o)...)
	}
	return joined, nil
}
