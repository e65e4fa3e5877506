package services

import (
	"errors"
	"time"

	"backend/config"
	"backend/models"
	"backend/nutrition"
	"backend/utils"
)

type ProfileInput struct {
	Username    string  `json:"username"`
	Gender      string  `json:"gender"`
	DateOfBirth string  `json:"date_of_birth"` // YYYY-MM-DD
	Height      float64 `json:"height"`
	Weight      float64 `json:"weight"`
}

func GetUserProfile(userID uint) (map[string]interface{}, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}

	age := 0
	if !user.DateOfBirth.IsZero() {
		age = utils.CalculateAge(user.DateOfBirth)
	}

	profile := map[string]interface{}{
		"id":            user.ID,
		"email":         user.Email,
		"username":      user.Username,
		"gender":        user.Gender,
		"date_of_birth": user.DateOfBirth.Format("2006-01-02"),
		"age":           age,
		"height":        user.Height,
		"weight":        user.Weight,
	}

	if bmi, err := utils.CalculateBMI(user.Height, user.Weight); err == nil {
		profile["bmi"] = bmi
		profile["bmi_category"] = utils.BMICategory(bmi)
	}
	return profile, nil
}

func UpdateUserProfile(userID uint, input ProfileInput) error {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return errors.New("user not found")
	}

	if input.Username != "" {
		user.Username = input.Username
	}
	if input.Gender != "" {
		switch input.Gender {
		case nutrition.GenderMale, nutrition.GenderFemale, nutrition.GenderOther:
			user.Gender = input.Gender
		default:
			return errors.New("invalid gender")
		}
	}
	if input.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", input.DateOfBirth)
		if err != nil {
			return errors.New("invalid date_of_birth, expected YYYY-MM-DD")
		}
		user.DateOfBirth = dob
	}
	if input.Height > 0 {
		user.Height = input.Height
	}
	if input.Weight > 0 {
		user.Weight = input.Weight
	}

	return config.DB.Save(&user).Error
}
