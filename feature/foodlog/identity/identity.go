package identity

import (
	"strconv"
	"strings"

	"better-food-logs/feature/foodlog/models"
)

// separator cannot appear in sanitized text fields.
const separator = "\x1f"

// Signature returns the content fingerprint of a food: name, brand, serving
// description (lowercased, whitespace collapsed) and serving mass or zero.
func Signature(f models.Food) string {
	return strings.Join([]string{
		normalize(f.Name),
		normalize(f.BrandName),
		normalize(f.ServingDescription),
		strconv.FormatFloat(f.MassOrZero(), 'f', -1, 64),
	}, separator)
}

// Index maps each signature to the id of the first food carrying it.
func Index(foods []models.Food) map[string]string {
	idx := make(map[string]string, len(foods))
	for _, f := range foods {
		sig := Signature(f)
		if _, ok := idx[sig]; !ok {
			idx[sig] = f.ID
		}
	}
	return idx
}

// Find returns the food in foods matching id, or failing that, the first
// with the same signature as target.
func Find(foods []models.Food, target models.Food) (models.Food, bool) {
	for _, f := range foods {
		if target.ID != "" && f.ID == target.ID {
			return f, true
		}
	}
	sig := Signature(target)
	for _, f := range foods {
		if Signature(f) == sig {
			return f, true
		}
	}
	return models.Food{}, false
}

func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
