package models

import "sort"

// AttachFoods returns logs with their food attached, newest first. Logs
// whose food is not in foods are left out and returned as orphans.
func AttachFoods(logs []FoodLog, foods []Food) (joined, orphans []FoodLog) {
	byID := make(map[string]Food, len(foods))
	for _, f := range foods {
		byID[f.ID] = f
	}

	joined = make([]FoodLog, 0, len(logs))
	for _, l := range logs {
		f, ok := byID[l.FoodID]
		if !ok {
			orphans = append(orphans, l)
			continue
		}
		l.Food = &f
		joined = append(joined, l)
	}
	sort.SliceStable(joined, func(i, j int) bool {
		return joined[i].ConsumedDate > joined[j].ConsumedDate
	})
	return joined, orphans
}
