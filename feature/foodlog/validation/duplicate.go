package validation

import (
	"math"
	"strings"

	"better-food-logs/feature/foodlog/models"
)

// massTolerance absorbs rounding differences between data-entry sources.
const massTolerance = 5

// IsDuplicate reports whether the candidate matches an existing food: either
// name and brand are equal, or name and serving description are equal and
// the serving masses differ by less than massTolerance grams. Comparisons
// ignore case and surrounding whitespace.
func IsDuplicate(in FoodInput, existing []models.Food) bool {
	name := normalize(in.Name)
	brand := normalize(in.BrandName)
	serving := normalize(in.ServingDescription)
	mass := 0.0
	if in.ServingMassG != nil {
		mass = *in.ServingMassG
	}

	for _, f := range existing {
		if normalize(f.Name) != name {
			continue
		}
		if normalize(f.BrandName) == brand {
			return true
		}
		if normalize(f.ServingDescription) == serving && math.Abs(mass-f.MassOrZero()) < massTolerance {
			return true
		}
	}
	return false
}

func normalize(s string) string {
	return strings.ToLower(Sanitize(s))
}
