package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email       string    `gorm:"uniqueIndex;not null" json:"email"`
	Password    string    `gorm:"not null" json:"-"`
	Username    string    `gorm:"not null" json:"username"`
	Gender      string    `json:"gender"` // "male" | "female" | "other"
	DateOfBirth time.Time `json:"date_of_birth"`
	Height      float64   `json:"height"` // cm
	Weight      float64   `json:"weight"` // kg
}
