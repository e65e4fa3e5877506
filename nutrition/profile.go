// Package nutrition is the macro aggregation and goal recommendation
// engine. Everything in it is a pure function over its inputs: no database,
// no HTTP, no hidden caches. The services layer feeds it nutrient profiles
// fetched from the food database and persists whatever it derives.
package nutrition

import "errors"

var (
	// ErrInvalidQuantity rejects negative gram quantities. They indicate a
	// caller bug and are never clamped to zero.
	ErrInvalidQuantity = errors.New("quantity must be non-negative")

	// ErrUnsupportedGender means the BMR formula has no branch for the
	// given value. Returning 0 instead would silently poison every figure
	// derived from it.
	ErrUnsupportedGender = errors.New("no BMR formula for gender")
)

// Gender values recognized by the BMR formula. GenderOther is valid on a
// profile but has no formula branch.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// NutrientProfile holds macros and energy per 100 g of a food, as returned
// by the food database.
type NutrientProfile struct {
	Protein  float64 `json:"protein"`  // g
	Fats     float64 `json:"fats"`     // g
	Carbs    float64 `json:"carbs"`    // g
	Calories float64 `json:"calories"` // kcal
}

// Scale converts a per-100g profile into the absolute amounts contained in
// quantityGrams of the food.
func Scale(per100 NutrientProfile, quantityGrams float64) (NutrientProfile, error) {
	if quantityGrams < 0 {
		return NutrientProfile{}, ErrInvalidQuantity
	}
	f := quantityGrams / 100
	return NutrientProfile{
		Protein:  per100.Protein * f,
		Fats:     per100.Fats * f,
		Carbs:    per100.Carbs * f,
		Calories: per100.Calories * f,
	}, nil
}

// CaloriesFromMacros derives kcal from macro grams at 4/4/9 kcal per gram.
// A fetched calories figure can disagree with this (it may include fiber or
// alcohol energy); callers pick the semantic they need.
func CaloriesFromMacros(proteinG, fatsG, carbsG float64) float64 {
	return proteinG*4 + carbsG*4 + fatsG*9
}
