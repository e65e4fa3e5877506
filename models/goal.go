package models

import (
	"fmt"

	"gorm.io/gorm"
)

// ActivityLevels are the six multipliers the goal-setting UI offers.
var ActivityLevels = []float64{1.2, 1.375, 1.55, 1.725, 1.9, 2.0}

// Goal holds a user's nutrition targets. One row per user.
type Goal struct {
	gorm.Model
	UserID            uint    `gorm:"uniqueIndex;not null" json:"user_id"`
	ActivityLevel     float64 `json:"activity_level"`
	CaloricAdjustment int     `json:"caloric_adjustment"` // signed kcal/day
	Surplus           bool    `json:"surplus"`            // derived; see Normalize
	TargetWeight      float64 `json:"target_weight"`      // kg
	Protein           float64 `json:"protein"`            // g
	Fats              float64 `json:"fats"`               // g
	Carbs             float64 `json:"carbs"`              // g
}

// Normalize recomputes derived fields. Surplus always mirrors the sign of
// CaloricAdjustment; whatever the caller sent is overwritten.
func (g *Goal) Normalize() {
	g.Surplus = g.CaloricAdjustment >= 0
}

func (g *Goal) Validate() error {
	if g.CaloricAdjustment < -1000 || g.CaloricAdjustment > 1000 {
		return fmt.Errorf("caloric_adjustment %d outside [-1000, 1000]", g.CaloricAdjustment)
	}
	for _, lvl := range ActivityLevels {
		if g.ActivityLevel == lvl {
			return nil
		}
	}
	return fmt.Errorf("invalid activity_level %v", g.ActivityLevel)
}
