package models

import "testing"

func TestGoalNormalizeSurplus(t *testing.T) {
	tests := []struct {
		adjustment  int
		sentSurplus bool
		want        bool
	}{
		{adjustment: 300, sentSurplus: false, want: true},
		{adjustment: -500, sentSurplus: true, want: false},
		{adjustment: 0, sentSurplus: false, want: true},
	}
	for _, tt := range tests {
		g := Goal{CaloricAdjustment: tt.adjustment, Surplus: tt.sentSurplus}
		g.Normalize()
		if g.Surplus != tt.want {
			t.Errorf("adjustment %d: Surplus = %v, want %v", tt.adjustment, g.Surplus, tt.want)
		}
	}
}

func TestGoalValidate(t *testing.T) {
	g := Goal{ActivityLevel: 1.55, CaloricAdjustment: -500}
	if err := g.Validate(); err != nil {
		t.Errorf("valid goal rejected: %v", err)
	}

	g = Goal{ActivityLevel: 1.4, CaloricAdjustment: 0}
	if err := g.Validate(); err == nil {
		t.Error("expected error for activity level outside the known multipliers")
	}

	g = Goal{ActivityLevel: 1.2, CaloricAdjustment: 1500}
	if err := g.Validate(); err == nil {
		t.Error("expected error for caloric adjustment above 1000")
	}

	g = Goal{ActivityLevel: 1.2, CaloricAdjustment: -1001}
	if err := g.Validate(); err == nil {
		t.Error("expected error for caloric adjustment below -1000")
	}
}
