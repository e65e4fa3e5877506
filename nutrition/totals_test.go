package nutrition

import (
	"errors"
	"testing"
)

func TestFoodContribution_NilProfileIsZero(t *testing.T) {
	got, err := FoodContribution(FoodPortion{Grams: 500, Profile: nil})
	if err != nil {
		t.Fatalf("FoodContribution returned error: %v", err)
	}
	if got != (MacroTotals{}) {
		t.Errorf("contribution with missing profile = %+v, want zero", got)
	}
}

func TestFoodContribution_RejectsNegativeQuantity(t *testing.T) {
	p := &NutrientProfile{Protein: 10}
	_, err := FoodContribution(FoodPortion{Grams: -50, Profile: p})
	if !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("error = %v, want ErrInvalidQuantity", err)
	}
}

func TestMealTotals_EmptyMealIsZero(t *testing.T) {
	got, err := MealTotals(nil)
	if err != nil {
		t.Fatalf("MealTotals returned error: %v", err)
	}
	if got != (MacroTotals{}) {
		t.Errorf("MealTotals(empty) = %+v, want zero", got)
	}
}

func TestMealTotals_OrderIndependent(t *testing.T) {
	a := &NutrientProfile{Protein: 10, Fats: 5, Carbs: 20, Calories: 160}
	b := &NutrientProfile{Protein: 2, Fats: 0.5, Carbs: 30, Calories: 130}
	c := &NutrientProfile{Protein: 25, Fats: 12, Carbs: 0, Calories: 208}

	foods := []FoodPortion{
		{Grams: 100, Profile: a},
		{Grams: 80, Profile: b},
		{Grams: 150, Profile: c},
	}
	reordered := []FoodPortion{foods[2], foods[0], foods[1]}

	t1, err := MealTotals(foods)
	if err != nil {
		t.Fatalf("MealTotals returned error: %v", err)
	}
	t2, err := MealTotals(reordered)
	if err != nil {
		t.Fatalf("MealTotals returned error: %v", err)
	}
	if t1 != t2 {
		t.Errorf("totals depend on food order: %+v vs %+v", t1, t2)
	}
}

func TestPlanTotals_SumOfMealTotals(t *testing.T) {
	p := &NutrientProfile{Protein: 10, Fats: 5, Carbs: 20, Calories: 160}
	q := &NutrientProfile{Protein: 4, Fats: 1, Carbs: 8, Calories: 57}

	meal1 := []FoodPortion{{Grams: 100, Profile: p}, {Grams: 50, Profile: q}}
	meal2 := []FoodPortion{{Grams: 200, Profile: q}}
	meal3 := []FoodPortion{} // empty meal contributes nothing

	planTotal, err := PlanTotals([][]FoodPortion{meal1, meal2, meal3})
	if err != nil {
		t.Fatalf("PlanTotals returned error: %v", err)
	}

	t1, _ := MealTotals(meal1)
	t2, _ := MealTotals(meal2)
	want := t1.Add(t2)
	if planTotal != want {
		t.Errorf("PlanTotals = %+v, want sum of meal totals %+v", planTotal, want)
	}
}

// A food appearing in two meals of the same plan shares one fetched
// profile; the plan total must scale each occurrence by its own quantity.
func TestPlanTotals_SharedProfileAcrossMeals(t *testing.T) {
	shared := &NutrientProfile{Protein: 10, Fats: 5, Carbs: 20, Calories: 160}

	breakfast := []FoodPortion{{Grams: 100, Profile: shared}}
	dinner := []FoodPortion{{Grams: 200, Profile: shared}}

	got, err := PlanTotals([][]FoodPortion{breakfast, dinner})
	if err != nil {
		t.Fatalf("PlanTotals returned error: %v", err)
	}
	want := MacroTotals{Protein: 30, Fats: 15, Carbs: 60, Calories: 480}
	if got != want {
		t.Errorf("PlanTotals = %+v, want %+v", got, want)
	}
}

// A food whose nutrient fetch failed contributes zero without affecting the
// rest of the plan.
func TestPlanTotals_DegradedFoodContributesZero(t *testing.T) {
	ok := &NutrientProfile{Protein: 10, Fats: 5, Carbs: 20, Calories: 160}

	meals := [][]FoodPortion{
		{{Grams: 100, Profile: ok}},
		{{Grams: 300, Profile: nil}}, // fetch failed for this one
	}
	got, err := PlanTotals(meals)
	if err != nil {
		t.Fatalf("PlanTotals returned error: %v", err)
	}
	want := MacroTotals{Protein: 10, Fats: 5, Carbs: 20, Calories: 160}
	if got != want {
		t.Errorf("PlanTotals = %+v, want %+v", got, want)
	}
}

func TestMacroTotals_DerivedCalories(t *testing.T) {
	tt := MacroTotals{Protein: 30, Fats: 15, Carbs: 60, Calories: 480}
	// 30*4 + 60*4 + 15*9 = 495; the fetched figure stays 480.
	if got := tt.DerivedCalories(); got != 495 {
		t.Errorf("DerivedCalories = %v, want 495", got)
	}
	if tt.Calories != 480 {
		t.Errorf("fetched calories changed: %v", tt.Calories)
	}
}
