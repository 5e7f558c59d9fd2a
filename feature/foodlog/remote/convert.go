package remote

import (
	"fmt"
	"time"

	"better-food-logs/feature/foodlog/models"
)

// TimestampLayout is the ISO-8601 form written to consumed_date.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// ToFoodRow converts a food for insertion. The id is left for the remote
// store to assign.
func ToFoodRow(f models.Food) FoodRow {
	row := FoodRow{
		Name:               f.Name,
		ServingDescription: f.ServingDescription,
		ServingMassG:       copyFloat(f.ServingMassG),
		ServingVolumeMl:    copyFloat(f.ServingVolumeMl),
		Calories:           models.Float(f.Calories),
		ProteinG:           models.Float(f.ProteinG),
		FatG:               models.Float(f.FatG),
		CarbsG:             models.Float(f.CarbsG),
		SugarG:             models.Float(f.SugarG),
		SodiumMg:           models.Float(f.SodiumMg),
		CholesterolMg:      models.Float(f.CholesterolMg),
	}
	if f.BrandName != "" {
		brand := f.BrandName
		row.BrandName = &brand
	}
	return row
}

// FromFoodRow converts a row to a food. Null nutrients read as 0; serving
// mass and volume stay nullable.
func FromFoodRow(r FoodRow) models.Food {
	f := models.Food{
		ID:                 r.ID,
		Name:               r.Name,
		ServingDescription: r.ServingDescription,
		ServingMassG:       r.ServingMassG,
		ServingVolumeMl:    r.ServingVolumeMl,
		Calories:           orZero(r.Calories),
		ProteinG:           orZero(r.ProteinG),
		FatG:               orZero(r.FatG),
		CarbsG:             orZero(r.CarbsG),
		SugarG:             orZero(r.SugarG),
		SodiumMg:           orZero(r.SodiumMg),
		CholesterolMg:      orZero(r.CholesterolMg),
	}
	if r.BrandName != nil {
		f.BrandName = *r.BrandName
	}
	return f
}

// ToLogRow converts a log for insertion, keeping its id when set.
func ToLogRow(l models.FoodLog) FoodLogRow {
	return FoodLogRow{
		ID:               l.ID,
		UserID:           l.UserID,
		FoodID:           l.FoodID,
		ServingsConsumed: l.ServingsConsumed,
		ConsumedDate:     FormatTimestamp(l.ConsumedDate),
	}
}

// FromLogRow converts a row to a log without an attached food.
func FromLogRow(r FoodLogRow) (models.FoodLog, error) {
	ms, err := ParseTimestamp(r.ConsumedDate)
	if err != nil {
		return models.FoodLog{}, fmt.Errorf("food log %s: %w", r.ID, err)
	}
	return models.FoodLog{
		ID:               r.ID,
		UserID:           r.UserID,
		FoodID:           r.FoodID,
		ServingsConsumed: r.ServingsConsumed,
		ConsumedDate:     ms,
	}, nil
}

// FormatTimestamp renders epoch milliseconds as an ISO-8601 UTC string.
func FormatTimestamp(ms int64) string {
	return time.UnixMilli(ms).UTC().Format(TimestampLayout)
}

// ParseTimestamp reads an ISO-8601 timestamp into epoch milliseconds.
func ParseTimestamp(s string) (int64, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return 0, fmt.Errorf("invalid consumed_date %q: %w", s, err)
	}
	return t.UnixMilli(), nil
}

func orZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	return models.Float(*v)
}
