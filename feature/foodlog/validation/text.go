package validation

import (
	"math"
	"strings"

	"better-food-logs/core/utils"
	"better-food-logs/feature/foodlog/models"
)

// Sanitize trims text and collapses internal whitespace to single spaces.
func Sanitize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// FormatNumber parses value and rounds it to two decimal places. Anything
// non-numeric becomes 0.
func FormatNumber(value any) float64 {
	return math.Round(utils.ToFloat(value)*100) / 100
}

// Clean sanitizes the text fields and rounds every provided number.
func Clean(in FoodInput) FoodInput {
	out := in
	out.Name = Sanitize(in.Name)
	out.BrandName = Sanitize(in.BrandName)
	out.ServingDescription = Sanitize(in.ServingDescription)
	for _, p := range []**float64{
		&out.ServingMassG, &out.ServingVolumeMl, &out.Calories, &out.ProteinG, &out.FatG,
		&out.CarbsG, &out.SugarG, &out.SodiumMg, &out.CholesterolMg,
	} {
		if *p != nil {
			v := FormatNumber(**p)
			*p = &v
		}
	}
	return out
}

// ToFood converts the input to a food without an id. Unset nutrients
// become 0; serving sizes stay unset.
func (in FoodInput) ToFood() models.Food {
	return models.Food{
		Name:               in.Name,
		BrandName:          in.BrandName,
		ServingDescription: in.ServingDescription,
		ServingMassG:       in.ServingMassG,
		ServingVolumeMl:    in.ServingVolumeMl,
		Calories:           valueOrZero(in.Calories),
		ProteinG:           valueOrZero(in.ProteinG),
		FatG:               valueOrZero(in.FatG),
		CarbsG:             valueOrZero(in.CarbsG),
		SugarG:             valueOrZero(in.SugarG),
		SodiumMg:           valueOrZero(in.SodiumMg),
		CholesterolMg:      valueOrZero(in.CholesterolMg),
	}
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
