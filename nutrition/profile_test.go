package nutrition

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestScale_PerPortion(t *testing.T) {
	per100 := NutrientProfile{Protein: 10, Fats: 5, Carbs: 20, Calories: 160}

	got, err := Scale(per100, 250)
	if err != nil {
		t.Fatalf("Scale returned error: %v", err)
	}
	want := NutrientProfile{Protein: 25, Fats: 12.5, Carbs: 50, Calories: 400}
	if got != want {
		t.Errorf("Scale(per100, 250) = %+v, want %+v", got, want)
	}
}

func TestScale_ZeroQuantityIsZeroVector(t *testing.T) {
	per100 := NutrientProfile{Protein: 99, Fats: 99, Carbs: 99, Calories: 999}
	got, err := Scale(per100, 0)
	if err != nil {
		t.Fatalf("Scale returned error: %v", err)
	}
	if got != (NutrientProfile{}) {
		t.Errorf("Scale(P, 0) = %+v, want zero vector", got)
	}
}

func TestScale_Linearity(t *testing.T) {
	per100 := NutrientProfile{Protein: 3.3, Fats: 1.7, Carbs: 12.9, Calories: 81}
	q1, q2 := 37.5, 112.25

	sum, err := Scale(per100, q1+q2)
	if err != nil {
		t.Fatalf("Scale returned error: %v", err)
	}
	a, _ := Scale(per100, q1)
	b, _ := Scale(per100, q2)

	if !almostEqual(sum.Protein, a.Protein+b.Protein, 1e-9) ||
		!almostEqual(sum.Fats, a.Fats+b.Fats, 1e-9) ||
		!almostEqual(sum.Carbs, a.Carbs+b.Carbs, 1e-9) ||
		!almostEqual(sum.Calories, a.Calories+b.Calories, 1e-9) {
		t.Errorf("scale(P, q1+q2) = %+v, want scale(P,q1)+scale(P,q2) = %+v + %+v", sum, a, b)
	}
}

func TestScale_RejectsNegativeQuantity(t *testing.T) {
	_, err := Scale(NutrientProfile{Protein: 10}, -1)
	if !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("Scale(P, -1) error = %v, want ErrInvalidQuantity", err)
	}
}

func TestCaloriesFromMacros(t *testing.T) {
	// 150g protein, 50g fat, 200g carbs: 600 + 450 + 800 kcal.
	got := CaloriesFromMacros(150, 50, 200)
	if got != 1850 {
		t.Errorf("CaloriesFromMacros(150, 50, 200) = %v, want 1850", got)
	}
}
