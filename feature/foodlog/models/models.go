package models

// AnonymousUserID owns every log written without a signed-in user.
const AnonymousUserID = "anonymous"

// Food is a reusable nutrition-per-serving record.
type Food struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	BrandName          string   `json:"brand_name,omitempty"`
	ServingDescription string   `json:"serving_description"`
	ServingMassG       *float64 `json:"serving_mass_g"`
	ServingVolumeMl    *float64 `json:"serving_volume_ml"`
	Calories           float64  `json:"calories"`
	ProteinG           float64  `json:"protein_g"`
	FatG               float64  `json:"fat_g"`
	CarbsG             float64  `json:"carbs_g"`
	SugarG             float64  `json:"sugar_g"`
	SodiumMg           float64  `json:"sodium_mg"`
	CholesterolMg      float64  `json:"cholesterol_mg"`
}

// MassOrZero returns the serving mass in grams, or 0 when unset.
func (f Food) MassOrZero() float64 {
	if f.ServingMassG == nil {
		return 0
	}
	return *f.ServingMassG
}

// FoodLog is one consumption event. Food is attached on read and never
// persisted alongside the log.
type FoodLog struct {
	ID               string  `json:"id"`
	UserID           string  `json:"user_id"`
	FoodID           string  `json:"food_id"`
	ServingsConsumed float64 `json:"servings_consumed"`
	// ConsumedDate is epoch milliseconds.
	ConsumedDate int64 `json:"consumed_date"`
	Food         *Food `json:"food,omitempty"`
}

// NutritionSummary holds totals over a set of logs.
type NutritionSummary struct {
	TotalCalories      float64 `json:"total_calories"`
	TotalProteinG      float64 `json:"total_protein_g"`
	TotalFatG          float64 `json:"total_fat_g"`
	TotalCarbsG        float64 `json:"total_carbs_g"`
	TotalSugarG        float64 `json:"total_sugar_g"`
	TotalSodiumMg      float64 `json:"total_sodium_mg"`
	TotalCholesterolMg float64 `json:"total_cholesterol_mg"`
}

// Float returns a pointer to v, for the optional serving fields.
func Float(v float64) *float64 {
	return &v
}
