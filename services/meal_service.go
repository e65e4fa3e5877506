package services

import (
	"backend/config"
	"backend/models"
	"backend/nutrition"
)

type MealService struct {
	plans *PlanService // shares the orchestrator's nutrient cache
}

func NewMealService(plans *PlanService) *MealService {
	return &MealService{plans: plans}
}

// MealFoodRequest mirrors what the client sends when adding foods.
type MealFoodRequest struct {
	FoodID   string  `json:"foodId"`
	FoodName string  `json:"foodName"`
	Quantity float64 `json:"quantity"` // grams
}

func (s *MealService) CreateMeal(userID uint, name string) (*models.Meal, error) {
	meal := &models.Meal{UserID: userID, Name: name}
	if err := config.DB.Create(meal).Error; err != nil {
		return nil, err
	}
	return meal, nil
}

func (s *MealService) ListMeals(userID uint) ([]models.Meal, error) {
	var meals []models.Meal
	err := config.DB.
		Preload("MealFoods").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&meals).Error
	return meals, err
}

func (s *MealService) GetMeal(userID, mealID uint) (*models.Meal, error) {
	var meal models.Meal
	err := config.DB.
		Preload("MealFoods").
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if err != nil {
		return nil, err // could be ErrRecordNotFound
	}
	return &meal, nil
}

func (s *MealService) AddFood(userID, mealID uint, req MealFoodRequest) (*models.MealFood, error) {
	if req.Quantity < 0 {
		return nil, nutrition.ErrInvalidQuantity
	}
	if _, err := s.GetMeal(userID, mealID); err != nil {
		return nil, err
	}
	mf := &models.MealFood{
		MealID:   mealID,
		FoodID:   req.FoodID,
		FoodName: req.FoodName,
		Quantity: req.Quantity,
	}
	if err := config.DB.Create(mf).Error; err != nil {
		return nil, err
	}
	return mf, nil
}

func (s *MealService) AddFoods(userID, mealID uint, reqs []MealFoodRequest) (*models.Meal, error) {
	for _, r := range reqs {
		if _, err := s.AddFood(userID, mealID, r); err != nil {
			return nil, err
		}
	}
	return s.GetMeal(userID, mealID)
}

func (s *MealService) RemoveFood(userID, mealFoodID uint) error {
	var mf models.MealFood
	if err := config.DB.
		Joins("JOIN meals ON meals.id = meal_foods.meal_id").
		Where("meal_foods.id = ? AND meals.user_id = ?", mealFoodID, userID).
		First(&mf).Error; err != nil {
		return err
	}
	return config.DB.Delete(&models.MealFood{}, mf.ID).Error
}

// UpdateMealDetails renames the meal and re-quantifies any foods the client
// sent updated grams for.
func (s *MealService) UpdateMealDetails(userID, mealID uint, name string, foods []struct {
	ID       uint    `json:"id"`
	Quantity float64 `json:"quantity"`
}) (*models.Meal, error) {
	meal, err := s.GetMeal(userID, mealID)
	if err != nil {
		return nil, err
	}
	if name != "" {
		meal.Name = name
		if err := config.DB.Save(meal).Error; err != nil {
			return nil, err
		}
	}
	for _, f := range foods {
		if f.Quantity < 0 {
			return nil, nutrition.ErrInvalidQuantity
		}
		if err := config.DB.
			Model(&models.MealFood{}).
			Where("id = ? AND meal_id = ?", f.ID, meal.ID).
			Update("quantity", f.Quantity).Error; err != nil {
			return nil, err
		}
	}
	return s.GetMeal(userID, mealID)
}

// DeleteMeal removes the meal and its foods. PlanMeals that referenced it
// keep their own food copies and are unaffected.
func (s *MealService) DeleteMeal(userID, mealID uint) error {
	if _, err := s.GetMeal(userID, mealID); err != nil {
		return err
	}
	if err := config.DB.
		Where("meal_id = ?", mealID).
		Delete(&models.MealFood{}).Error; err != nil {
		return err
	}
	return config.DB.
		Where("id = ? AND user_id = ?", mealID, userID).
		Delete(&models.Meal{}).Error
}

// EnrichMeal attaches per-100g profiles and totals to one meal, sharing the
// orchestrator's profile cache.
func (s *MealService) EnrichMeal(meal *models.Meal) error {
	distinct := make(map[string]struct{})
	for _, f := range meal.MealFoods {
		distinct[f.FoodID] = struct{}{}
	}
	ids := make([]string, 0, len(distinct))
	for id := range distinct {
		ids = append(ids, id)
	}
	profiles := s.plans.fetchProfiles(ids)

	portions := make([]nutrition.FoodPortion, 0, len(meal.MealFoods))
	for fi := range meal.MealFoods {
		meal.MealFoods[fi].Macros = profiles[meal.MealFoods[fi].FoodID]
		portions = append(portions, nutrition.FoodPortion{
			Grams:   meal.MealFoods[fi].Quantity,
			Profile: meal.MealFoods[fi].Macros,
		})
	}
	totals, err := nutrition.MealTotals(portions)
	if err != nil {
		return err
	}
	meal.Totals = &totals
	return nil
}
