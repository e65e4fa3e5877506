package models

import (
	"backend/nutrition"

	"gorm.io/gorm"
)

type Plan struct {
	gorm.Model
	UserID    uint       `gorm:"index;not null" json:"user_id"`
	Name      string     `gorm:"not null" json:"name"`
	PlanMeals []PlanMeal `json:"PlanMeals"`

	Totals *nutrition.MacroTotals `gorm:"-" json:"totals,omitempty"`
}

// PlanMeal is a meal's inclusion within one plan. It carries its own copy
// of the foods so plan-side quantities can diverge from the source meal
// after the meal was added; totals read only PlanMealFoods, never the meal.
type PlanMeal struct {
	gorm.Model
	PlanID        uint           `gorm:"index;not null" json:"planId"`
	MealID        uint           `json:"mealId"`
	MealName      string         `json:"mealName"`
	PlanMealFoods []PlanMealFood `json:"PlanMealFoods"`

	Totals *nutrition.MacroTotals `gorm:"-" json:"totals,omitempty"`
}

type PlanMealFood struct {
	gorm.Model
	PlanMealID uint    `gorm:"index;not null" json:"planMealId"`
	FoodID     string  `gorm:"type:varchar(255);not null" json:"foodId"`
	FoodName   string  `json:"foodName"`
	Quantity   float64 `json:"quantity"` // grams

	Macros *nutrition.NutrientProfile `gorm:"-" json:"macros,omitempty"`
}
