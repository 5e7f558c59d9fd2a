package remote

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FoodRow is the remote foods table. Nutrient columns are nullable.
type FoodRow struct {
	ID                 string    `gorm:"column:id;primaryKey;type:varchar(36)"`
	Name               string    `gorm:"column:name;not null;index"`
	BrandName          *string   `gorm:"column:brand_name"`
	ServingDescription string    `gorm:"column:serving_description;not null"`
	ServingMassG       *float64  `gorm:"column:serving_mass_g"`
	ServingVolumeMl    *float64  `gorm:"column:serving_volume_ml"`
	Calories           *float64  `gorm:"column:calories"`
	ProteinG           *float64  `gorm:"column:protein_g"`
	FatG               *float64  `gorm:"column:fat_g"`
	CarbsG             *float64  `gorm:"column:carbs_g"`
	SugarG             *float64  `gorm:"column:sugar_g"`
	SodiumMg           *float64  `gorm:"column:sodium_mg"`
	CholesterolMg      *float64  `gorm:"column:cholesterol_mg"`
	CreatedAt          time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName overrides the table name.
func (FoodRow) TableName() string {
	return "foods"
}

// BeforeCreate assigns an id when the row has none.
func (r *FoodRow) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// FoodLogRow is the remote food_logs table. ConsumedDate holds an ISO-8601
// UTC timestamp.
type FoodLogRow struct {
	ID               string    `gorm:"column:id;primaryKey;type:varchar(36)"`
	UserID           string    `gorm:"column:user_id;not null;index"`
	FoodID           string    `gorm:"column:food_id;not null;index"`
	ServingsConsumed float64   `gorm:"column:servings_consumed;not null"`
	ConsumedDate     string    `gorm:"column:consumed_date;not null"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName overrides the table name.
func (FoodLogRow) TableName() string {
	return "food_logs"
}

// BeforeCreate assigns an id when the row has none.
func (r *FoodLogRow) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
