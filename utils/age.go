package utils

import (
	"time"

	"backend/nutrition"
)

// CalculateAge returns whole years since birthday, as of now.
func CalculateAge(birthday time.Time) int {
	return nutrition.Age(birthday, time.Now())
}
