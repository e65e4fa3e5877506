package models

import (
	"backend/nutrition"

	"gorm.io/gorm"
)

// Meal is a reusable, named collection of foods with gram quantities.
type Meal struct {
	gorm.Model
	UserID    uint       `gorm:"index;not null" json:"user_id"`
	Name      string     `gorm:"not null" json:"name"`
	MealFoods []MealFood `json:"MealFoods"`

	Totals *nutrition.MacroTotals `gorm:"-" json:"totals,omitempty"`
}

// MealFood stores only the identifier and quantity; the per-100g nutrient
// profile is fetched from the food database at read time and attached here.
type MealFood struct {
	gorm.Model
	MealID   uint    `gorm:"index;not null" json:"mealId"`
	FoodID   string  `gorm:"type:varchar(255);not null" json:"foodId"`
	FoodName string  `json:"foodName"`
	Quantity float64 `json:"quantity"` // grams

	Macros *nutrition.NutrientProfile `gorm:"-" json:"macros,omitempty"`
}
