package nutrition

import (
	"time"

	"better-food-logs/feature/foodlog/models"
)

// DayTotal is the calorie total and meal count of one calendar day.
type DayTotal struct {
	Date     string  `json:"date"`
	Calories float64 `json:"calories"`
	Meals    int     `json:"meals"`
}

// PeriodReport summarizes the last Days calendar days.
type PeriodReport struct {
	Days    int                     `json:"days"`
	From    string                  `json:"from"`
	To      string                  `json:"to"`
	Summary models.NutritionSummary `json:"summary"`
	Average models.NutritionSummary `json:"average_per_day"`
	Meals   int                     `json:"meals"`
	Daily   []DayTotal              `json:"daily"`
}

const dateLayout = "2006-01-02"

// Daily returns one entry per calendar day of the period, oldest first.
// Days without logs are present with zero totals.
func Daily(logs []models.FoodLog, now time.Time, days int, loc *time.Location) []DayTotal {
	if days <= 0 {
		return nil
	}
	first := StartOfDay(now, loc).AddDate(0, 0, -(days - 1))
	out := make([]DayTotal, 0, days)
	for i := 0; i < days; i++ {
		day := first.AddDate(0, 0, i)
		dayLogs := Between(logs, day, day.AddDate(0, 0, 1))
		meals := 0
		for _, l := range dayLogs {
			if l.Food != nil {
				meals++
			}
		}
		out = append(out, DayTotal{
			Date:     day.Format(dateLayout),
			Calories: Summarize(dayLogs).TotalCalories,
			Meals:    meals,
		})
	}
	return out
}

// Report builds the period totals, per-day averages and daily breakdown.
func Report(logs []models.FoodLog, now time.Time, days int, loc *time.Location) PeriodReport {
	daily := Daily(logs, now, days, loc)
	period := InPeriod(logs, now, days, loc)
	total := Summarize(period)

	meals := 0
	for _, d := range daily {
		meals += d.Meals
	}

	r := PeriodReport{
		Days:    days,
		Summary: total,
		Meals:   meals,
		Daily:   daily,
	}
	if len(daily) > 0 {
		r.From = daily[0].Date
		r.To = daily[len(daily)-1].Date
		r.Average = divide(total, float64(days))
	}
	return r
}

func divide(s models.NutritionSummary, n float64) models.NutritionSummary {
	return models.NutritionSummary{
		TotalCalories:      s.TotalCalories / n,
		TotalProteinG:      s.TotalProteinG / n,
		TotalFatG:          s.TotalFatG / n,
		TotalCarbsG:        s.TotalCarbsG / n,
		TotalSugarG:        s.TotalSugarG / n,
		TotalSodiumMg:      s.TotalSodiumMg / n,
		TotalCholesterolMg: s.TotalCholesterolMg / n,
	}
}
