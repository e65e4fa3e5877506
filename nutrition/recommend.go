package nutrition

import (
	"math"
	"time"
)

// Age returns whole elapsed years between dateOfBirth and today, one less
// when the birthday has not yet occurred this year.
func Age(dateOfBirth, today time.Time) int {
	years := today.Year() - dateOfBirth.Year()
	if today.Month() < dateOfBirth.Month() ||
		(today.Month() == dateOfBirth.Month() && today.Day() < dateOfBirth.Day()) {
		years--
	}
	return years
}

// BMR estimates basal metabolic rate in kcal/day using the revised
// Harris-Benedict equations. Genders without a formula branch are an error,
// never a silent zero.
func BMR(gender string, weightKg, heightCm float64, ageYears int) (float64, error) {
	age := float64(ageYears)
	switch gender {
	case GenderMale:
		return 88.362 + 13.397*weightKg + 4.799*heightCm - 5.677*age, nil
	case GenderFemale:
		return 447.593 + 9.247*weightKg + 3.098*heightCm - 4.330*age, nil
	}
	return 0, ErrUnsupportedGender
}

// TDEE scales BMR by the activity-level multiplier.
func TDEE(bmr, activityLevel float64) float64 {
	return bmr * activityLevel
}

// AdjustedTDEE applies the daily caloric surplus or deficit.
func AdjustedTDEE(tdee float64, caloricAdjustment int) float64 {
	return tdee + float64(caloricAdjustment)
}

type MacroSplit struct {
	Protein float64 `json:"protein"` // g
	Fats    float64 `json:"fats"`    // g
	Carbs   float64 `json:"carbs"`   // g
}

// RecommendedMacros derives a macro split from bodyweight and the adjusted
// TDEE: 2 g protein per kg, 25% of energy from fat, carbs take whatever
// energy remains. When the adjusted TDEE is very low the carb remainder
// goes negative; it is returned unclamped so the UI can warn about it.
func RecommendedMacros(weightKg, adjustedTDEE float64) MacroSplit {
	proteinG := 2 * weightKg
	fatsKcal := 0.25 * adjustedTDEE
	fatsG := fatsKcal / 9
	proteinKcal := proteinG * 4
	carbsKcal := adjustedTDEE - fatsKcal - proteinKcal
	return MacroSplit{
		Protein: proteinG,
		Fats:    fatsG,
		Carbs:   carbsKcal / 4,
	}
}

// WeeklyWeightChangeKg converts a daily caloric adjustment into expected
// kg/week: 3500 kcal per pound, pounds converted to kg.
func WeeklyWeightChangeKg(caloricAdjustment int) float64 {
	return (float64(caloricAdjustment) * 7 / 3500) * 0.453592
}

// WeeksToTarget estimates how many weeks until the target weight at the
// given weekly change. ok is false when the weekly change is zero (a
// caloric adjustment of 0 never reaches any target). The sign of the change
// is not checked against the direction to the target, so a surplus with a
// lower target still yields a finite number.
func WeeksToTarget(currentKg, targetKg, weeklyChangeKg float64) (weeks float64, ok bool) {
	if weeklyChangeKg == 0 {
		return 0, false
	}
	return math.Abs((currentKg - targetKg) / weeklyChangeKg), true
}
