package remote

import (
	"fmt"
	"strings"

	"better-food-logs/core/database"

	"gorm.io/gorm"
)

// Columns the application reads and writes, per table.
var (
	FoodColumns = []string{
		"id", "name", "brand_name", "serving_description", "serving_mass_g", "serving_volume_ml",
		"calories", "protein_g", "fat_g", "carbs_g", "sugar_g", "sodium_mg", "cholesterol_mg",
	}
	FoodLogColumns = []string{"id", "user_id", "food_id", "servings_consumed", "consumed_date"}
)

// SchemaError lists required columns absent from the remote tables.
type SchemaError struct {
	Missing map[string][]string
}

func (e *SchemaError) Error() string {
	parts := make([]string, 0, len(e.Missing))
	for _, table := range []string{FoodRow{}.TableName(), FoodLogRow{}.TableName()} {
		if cols := e.Missing[table]; len(cols) > 0 {
			parts = append(parts, fmt.Sprintf("%s(%s)", table, strings.Join(cols, ", ")))
		}
	}
	return "remote schema is missing columns: " + strings.Join(parts, "; ")
}

// Migrate creates or updates the foods and food_logs tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&FoodRow{}, &FoodLogRow{}); err != nil {
		return fmt.Errorf("failed to migrate remote schema: %w", err)
	}
	return nil
}

// VerifySchema checks that both tables carry every column the store uses.
func VerifySchema(db *gorm.DB) error {
	missing := make(map[string][]string)
	for table, required := range map[string][]string{
		FoodRow{}.TableName():    FoodColumns,
		FoodLogRow{}.TableName(): FoodLogColumns,
	} {
		cols, err := database.MissingColumns(db, table, required)
		if err != nil {
			return err
		}
		if len(cols) > 0 {
			missing[table] = cols
		}
	}
	if len(missing) > 0 {
		return &SchemaError{Missing: missing}
	}
	return nil
}
