package remote

import (
	"context"
	"sort"

	"better-food-logs/feature/foodlog/models"
)

// JoinFoods attaches foods to logs with a single batch lookup of the
// distinct referenced ids. Logs whose food is missing are dropped from
// joined and their food ids returned, sorted, in missing.
func JoinFoods(ctx context.Context, store Store, logs []models.FoodLog) (joined []models.FoodLog, missing []string, err error) {
	ids := ReferencedFoodIDs(logs)
	foods, err := store.FoodsByIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	joined, orphans := models.AttachFoods(logs, foods)
	seen := make(map[string]struct{})
	for _, o := range orphans {
		if _, ok := seen[o.FoodID]; ok {
			continue
		}
		seen[o.FoodID] = struct{}{}
		missing = append(missing, o.FoodID)
	}
	sort.Strings(missing)
	return joined, missing, nil
}

// ReferencedFoodIDs returns the distinct food ids of logs, sorted.
func ReferencedFoodIDs(logs []models.FoodLog) []string {
	set := make(map[string]struct{}, len(logs))
	for _, l := range logs {
		set[l.FoodID] = struct{}{}
	}
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
