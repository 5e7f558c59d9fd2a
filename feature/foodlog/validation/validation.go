package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	textPattern    = regexp.MustCompile(`^[a-zA-Z0-9\s\-\(\)&\.,'"]+$`)
	servingPattern = regexp.MustCompile(`^[a-zA-Z0-9\s\-\(\)&\.,'"/]+$`)
)

// FoodInput is a candidate food as submitted. Pointer fields distinguish an
// absent value from zero.
type FoodInput struct {
	Name               string   `json:"name"`
	BrandName          string   `json:"brand_name"`
	ServingDescription string   `json:"serving_description"`
	ServingMassG       *float64 `json:"serving_mass_g"`
	ServingVolumeMl    *float64 `json:"serving_volume_ml"`
	Calories           *float64 `json:"calories"`
	ProteinG           *float64 `json:"protein_g"`
	FatG               *float64 `json:"fat_g"`
	CarbsG             *float64 `json:"carbs_g"`
	SugarG             *float64 `json:"sugar_g"`
	SodiumMg           *float64 `json:"sodium_mg"`
	CholesterolMg      *float64 `json:"cholesterol_mg"`
}

// Result is the outcome of Validate. Errors are user-facing, one per
// violation.
type Result struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors"`
}

type nutrientRule struct {
	label string
	max   float64
	value func(FoodInput) *float64
}

var nutrientRules = []nutrientRule{
	{"Protein", 1000, func(in FoodInput) *float64 { return in.ProteinG }},
	{"Fat", 1000, func(in FoodInput) *float64 { return in.FatG }},
	{"Carbohydrates", 1000, func(in FoodInput) *float64 { return in.CarbsG }},
	{"Sugar", 1000, func(in FoodInput) *float64 { return in.SugarG }},
	{"Sodium", 100000, func(in FoodInput) *float64 { return in.SodiumMg }},
	{"Cholesterol", 10000, func(in FoodInput) *float64 { return in.CholesterolMg }},
}

// Validate checks every rule and accumulates all violations.
// Supplying both mass and volume is accepted here.
func Validate(in FoodInput) Result {
	var errs []string

	name := strings.TrimSpace(in.Name)
	switch n := utf8.RuneCountInString(name); {
	case n == 0:
		errs = append(errs, "Food name is required")
	case n < 2:
		errs = append(errs, "Food name must be at least 2 characters long")
	case n > 100:
		errs = append(errs, "Food name must be less than 100 characters")
	case !textPattern.MatchString(name):
		errs = append(errs, "Food name contains invalid characters")
	}

	if brand := strings.TrimSpace(in.BrandName); brand != "" {
		if utf8.RuneCountInString(brand) > 50 {
			errs = append(errs, "Brand name must be less than 50 characters")
		} else if !textPattern.MatchString(brand) {
			errs = append(errs, "Brand name contains invalid characters")
		}
	}

	serving := strings.TrimSpace(in.ServingDescription)
	switch n := utf8.RuneCountInString(serving); {
	case n == 0:
		errs = append(errs, "Serving description is required")
	case n < 3:
		errs = append(errs, "Serving description must be at least 3 characters long")
	case n > 100:
		errs = append(errs, "Serving description must be less than 100 characters")
	case !servingPattern.MatchString(serving):
		errs = append(errs, "Serving description contains invalid characters")
	}

	if isZero(in.ServingMassG) && isZero(in.ServingVolumeMl) {
		errs = append(errs, "Either serving mass (grams) or volume (ml) must be provided")
	}
	errs = append(errs, checkServing(in.ServingMassG, "Serving mass", "grams")...)
	errs = append(errs, checkServing(in.ServingVolumeMl, "Serving volume", "ml")...)

	switch {
	case in.Calories == nil:
		errs = append(errs, "Calories are required")
	case *in.Calories < 0:
		errs = append(errs, "Calories cannot be negative")
	case *in.Calories > 10000:
		errs = append(errs, "Calories must be less than 10,000 per serving")
	}

	for _, rule := range nutrientRules {
		v := rule.value(in)
		if v == nil {
			continue
		}
		if *v < 0 {
			errs = append(errs, rule.label+" cannot be negative")
		} else if *v > rule.max {
			errs = append(errs, rule.label+" value is unreasonably high")
		}
	}

	original := joinText(in.Name, in.BrandName, in.ServingDescription)
	if ContainsBlockedWord(original) {
		errs = append(errs, "Content contains inappropriate language")
	}
	if IsSpam(original) {
		errs = append(errs, "Content appears to be spam or promotional")
	}

	return Result{IsValid: len(errs) == 0, Errors: errs}
}

func checkServing(v *float64, label, unit string) []string {
	if v == nil {
		return nil
	}
	if *v < 0.1 {
		return []string{fmt.Sprintf("%s must be at least 0.1 %s", label, unit)}
	}
	if *v > 10000 {
		return []string{fmt.Sprintf("%s must be less than 10,000 %s", label, unit)}
	}
	return nil
}

func isZero(v *float64) bool {
	return v == nil || *v == 0
}

func joinText(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
