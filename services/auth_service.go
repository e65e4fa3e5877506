package services

import (
	"errors"
	"time"

	"backend/config"
	"backend/models"
	"backend/utils"
)

func RegisterUser(email, username, password, gender string, dateOfBirth time.Time, height, weight float64) error {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:       email,
		Username:    username,
		Password:    hashedPassword,
		Gender:      gender,
		DateOfBirth: dateOfBirth,
		Height:      height,
		Weight:      weight,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return err
	}

	// Every user gets a goal row; surplus derives from the adjustment.
	goal := models.Goal{UserID: user.ID, ActivityLevel: 1.2}
	goal.Normalize()
	return config.DB.Create(&goal).Error
}

// AuthenticateUser checks credentials and issues an access/refresh token
// pair.
func AuthenticateUser(email, password string) (accessToken, refreshToken string, err error) {
	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)
	if result.Error != nil {
		return "", "", errors.New("user not found")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", "", errors.New("incorrect password")
	}

	accessToken, err = utils.GenerateAccessToken(user.ID, user.Email, user.Username)
	if err != nil {
		return "", "", err
	}
	refreshToken, err = utils.GenerateRefreshToken(user.ID)
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

// RefreshAccessToken exchanges a valid refresh token for a new access token.
func RefreshAccessToken(refreshToken string) (string, error) {
	claims, err := utils.ParseToken(refreshToken)
	if err != nil {
		return "", errors.New("invalid refresh token")
	}
	id, ok := claims["userId"].(float64)
	if !ok {
		return "", errors.New("invalid refresh token claims")
	}

	var user models.User
	if err := config.DB.First(&user, uint(id)).Error; err != nil {
		return "", errors.New("user not found")
	}
	return utils.GenerateAccessToken(user.ID, user.Email, user.Username)
}
