package services

import (
	"errors"
	"time"

	"backend/config"
	"backend/models"
	"backend/nutrition"

	"gorm.io/gorm"
)

type GoalService struct{}

func NewGoalService() *GoalService {
	return &GoalService{}
}

// GetGoal returns the user's goal, or sensible defaults when none was
// saved yet.
func (s *GoalService) GetGoal(userID uint) (*models.Goal, error) {
	var goal models.Goal
	err := config.DB.Where("user_id = ?", userID).First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			goal = models.Goal{UserID: userID, ActivityLevel: 1.2}
			goal.Normalize()
			return &goal, nil
		}
		return nil, err
	}
	return &goal, nil
}

// UpsertGoal validates and saves the user's goal. Surplus is recomputed
// from the caloric adjustment on every write; the client's value is never
// trusted.
func (s *GoalService) UpsertGoal(userID uint, in models.Goal) (*models.Goal, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var goal models.Goal
	err := config.DB.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		goal = models.Goal{
			UserID:            userID,
			ActivityLevel:     in.ActivityLevel,
			CaloricAdjustment: in.CaloricAdjustment,
			Surplus:           in.Surplus,
			TargetWeight:      in.TargetWeight,
			Protein:           in.Protein,
			Fats:              in.Fats,
			Carbs:             in.Carbs,
		}
		if err := config.DB.Create(&goal).Error; err != nil {
			return nil, err
		}
		return &goal, nil
	}
	if err != nil {
		return nil, err
	}

	goal.ActivityLevel = in.ActivityLevel
	goal.CaloricAdjustment = in.CaloricAdjustment
	goal.Surplus = in.Surplus
	goal.TargetWeight = in.TargetWeight
	goal.Protein = in.Protein
	goal.Fats = in.Fats
	goal.Carbs = in.Carbs

	if err := config.DB.Save(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

// GoalRecommendation is everything the goal-setting screen derives from the
// profile and the current goal. WeeksToTarget is null when the caloric
// adjustment is zero (no change, no ETA).
type GoalRecommendation struct {
	Age                  int                  `json:"age"`
	BMR                  float64              `json:"bmr"`
	TDEE                 float64              `json:"tdee"`
	AdjustedTDEE         float64              `json:"adjusted_tdee"`
	RecommendedMacros    nutrition.MacroSplit `json:"recommended_macros"`
	WeeklyWeightChangeKg float64              `json:"weekly_weight_change_kg"`
	WeeksToTarget        *float64             `json:"weeks_to_target"`
}

// Recommend derives the recommendation payload from the stored user and
// goal. An unsupported gender propagates as nutrition.ErrUnsupportedGender.
func (s *GoalService) Recommend(userID uint, now time.Time) (*GoalRecommendation, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, err
	}
	goal, err := s.GetGoal(userID)
	if err != nil {
		return nil, err
	}

	age := nutrition.Age(user.DateOfBirth, now)
	bmr, err := nutrition.BMR(user.Gender, user.Weight, user.Height, age)
	if err != nil {
		return nil, err
	}
	tdee := nutrition.TDEE(bmr, goal.ActivityLevel)
	adjusted := nutrition.AdjustedTDEE(tdee, goal.CaloricAdjustment)
	weekly := nutrition.WeeklyWeightChangeKg(goal.CaloricAdjustment)

	rec := &GoalRecommendation{
		Age:                  age,
		BMR:                  bmr,
		TDEE:                 tdee,
		AdjustedTDEE:         adjusted,
		RecommendedMacros:    nutrition.RecommendedMacros(user.Weight, adjusted),
		WeeklyWeightChangeKg: weekly,
	}
	if weeks, ok := nutrition.WeeksToTarget(user.Weight, goal.TargetWeight, weekly); ok {
		rec.WeeksToTarget = &weeks
	}
	return rec, nil
}
