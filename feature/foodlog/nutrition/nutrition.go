package nutrition

import (
	"sort"
	"time"

	"better-food-logs/feature/foodlog/models"
)

// Summarize folds logs into running totals of food value times servings.
// Logs without an attached food contribute nothing. Contributions are added
// smallest first, so any permutation of logs yields identical totals.
func Summarize(logs []models.FoodLog) models.NutritionSummary {
	var cal, protein, fat, carbs, sugar, sodium, chol []float64
	for _, l := range logs {
		if l.Food == nil {
			continue
		}
		f := l.Food
		s := l.ServingsConsumed
		cal = append(cal, f.Calories*s)
		protein = append(protein, f.ProteinG*s)
		fat = append(fat, f.FatG*s)
		carbs = append(carbs, f.CarbsG*s)
		sugar = append(sugar, f.SugarG*s)
		sodium = append(sodium, f.SodiumMg*s)
		chol = append(chol, f.CholesterolMg*s)
	}

	return models.NutritionSummary{
		TotalCalories:      sum(cal),
		TotalProteinG:      sum(protein),
		TotalFatG:          sum(fat),
		TotalCarbsG:        sum(carbs),
		TotalSugarG:        sum(sugar),
		TotalSodiumMg:      sum(sodium),
		TotalCholesterolMg: sum(chol),
	}
}

func sum(values []float64) float64 {
	sort.Float64s(values)
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

// StartOfDay returns midnight of t's calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// Between keeps logs consumed in [from, to).
func Between(logs []models.FoodLog, from, to time.Time) []models.FoodLog {
	lo, hi := from.UnixMilli(), to.UnixMilli()
	out := make([]models.FoodLog, 0, len(logs))
	for _, l := range logs {
		if l.ConsumedDate >= lo && l.ConsumedDate < hi {
			out = append(out, l)
		}
	}
	return out
}

// OnDay keeps logs consumed on day's calendar date in loc.
func OnDay(logs []models.FoodLog, day time.Time, loc *time.Location) []models.FoodLog {
	start := StartOfDay(day, loc)
	return Between(logs, start, start.AddDate(0, 0, 1))
}

// InPeriod keeps logs consumed during the last days calendar days, today
// included.
func InPeriod(logs []models.FoodLog, now time.Time, days int, loc *time.Location) []models.FoodLog {
	if days <= 0 {
		return nil
	}
	today := StartOfDay(now, loc)
	return Between(logs, today.AddDate(0, 0, -(days-1)), today.AddDate(0, 0, 1))
}
