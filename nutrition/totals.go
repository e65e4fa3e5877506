package nutrition

// MacroTotals is a derived view over a meal or plan. It is recomputed as a
// fold over the current food collections on every query; nothing patches it
// incrementally, so it cannot drift after edits.
type MacroTotals struct {
	Protein  float64 `json:"protein"`  // g
	Fats     float64 `json:"fats"`     // g
	Carbs    float64 `json:"carbs"`    // g
	Calories float64 `json:"calories"` // kcal, scaled from fetched figures
}

func (t MacroTotals) Add(o MacroTotals) MacroTotals {
	return MacroTotals{
		Protein:  t.Protein + o.Protein,
		Fats:     t.Fats + o.Fats,
		Carbs:    t.Carbs + o.Carbs,
		Calories: t.Calories + o.Calories,
	}
}

// DerivedCalories re-derives the calorie total from the macro grams instead
// of trusting the fetched calories sum.
func (t MacroTotals) DerivedCalories() float64 {
	return CaloriesFromMacros(t.Protein, t.Fats, t.Carbs)
}

// FoodPortion is one food line as the aggregator sees it: a gram quantity
// and the per-100g profile shared by every occurrence of the same food
// identifier. Profile is nil when the nutrient fetch failed or has not run.
type FoodPortion struct {
	Grams   float64
	Profile *NutrientProfile
}

// FoodContribution is the absolute macro contribution of one portion. A nil
// profile contributes zero — defaulting missing macros to anything else
// silently inflates plan totals.
func FoodContribution(p FoodPortion) (MacroTotals, error) {
	if p.Grams < 0 {
		return MacroTotals{}, ErrInvalidQuantity
	}
	if p.Profile == nil {
		return MacroTotals{}, nil
	}
	scaled, err := Scale(*p.Profile, p.Grams)
	if err != nil {
		return MacroTotals{}, err
	}
	return MacroTotals{
		Protein:  scaled.Protein,
		Fats:     scaled.Fats,
		Carbs:    scaled.Carbs,
		Calories: scaled.Calories,
	}, nil
}

// MealTotals sums the contributions of a meal's foods. Order-independent;
// an empty meal sums to the zero vector.
func MealTotals(foods []FoodPortion) (MacroTotals, error) {
	var totals MacroTotals
	for _, f := range foods {
		c, err := FoodContribution(f)
		if err != nil {
			return MacroTotals{}, err
		}
		totals = totals.Add(c)
	}
	return totals, nil
}

// PlanTotals sums MealTotals over every meal in a plan.
func PlanTotals(meals [][]FoodPortion) (MacroTotals, error) {
	var totals MacroTotals
	for _, foods := range meals {
		t, err := MealTotals(foods)
		if err != nil {
			return MacroTotals{}, err
		}
		totals = totals.Add(t)
	}
	return totals, nil
}
