package services

import (
	"errors"
	"log"
	"sync"
	"time"

	"backend/config"
	"backend/models"
	"backend/nutrition"
)

// ErrStaleLoad marks a plan load that was superseded by a newer one. Its
// results must be discarded, not rendered over the newer selection.
var ErrStaleLoad = errors.New("plan load superseded by a newer request")

// NutrientSource is the slice of the food database client the orchestrator
// needs: per-100g profile by food identifier.
type NutrientSource interface {
	FetchProfile(foodID string) (*nutrition.NutrientProfile, error)
}

// profileTTL bounds how long a fetched per-100g profile is served from the
// cache before being refetched.
const profileTTL = time.Hour

type cachedProfile struct {
	profile   *nutrition.NutrientProfile
	fetchedAt time.Time
}

// PlanService owns plan persistence and the macro enrichment of loaded
// plans. One instance per process, injected from main; PlanSvc is not read
// by core logic, only by the controllers.
//
// Per-100g profiles do not depend on who asks, so one cache serves every
// user; entries expire after profileTTL. Load generations, by contrast,
// are tracked per user: only a newer load by the same user supersedes an
// in-flight one.
type PlanService struct {
	source NutrientSource

	mu       sync.Mutex
	profiles map[string]cachedProfile // keyed by foodId
	gens     map[uint]uint64          // latest load generation per user
}

var PlanSvc *PlanService

// InitPlanService wires the default orchestrator. Called once from main,
// after the environment is loaded.
func InitPlanService() {
	PlanSvc = NewPlanService(NewEdamamService())
}

func NewPlanService(source NutrientSource) *PlanService {
	return &PlanService{
		source:   source,
		profiles: make(map[string]cachedProfile),
		gens:     make(map[uint]uint64),
	}
}

// ResetCache drops all cached nutrient profiles immediately, ahead of
// their TTL.
func (s *PlanService) ResetCache() {
	s.mu.Lock()
	s.profiles = make(map[string]cachedProfile)
	s.mu.Unlock()
}

// nextGen starts a new load generation for the user, superseding any of
// their loads still in flight.
func (s *PlanService) nextGen(userID uint) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gens[userID]++
	return s.gens[userID]
}

func (s *PlanService) currentGen(userID uint) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gens[userID]
}

func (s *PlanService) CreatePlan(userID uint, name string) (*models.Plan, error) {
	plan := &models.Plan{UserID: userID, Name: name}
	if err := config.DB.Create(plan).Error; err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *PlanService) ListPlans(userID uint) ([]models.Plan, error) {
	var plans []models.Plan
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&plans).Error
	return plans, err
}

// DeletePlan removes the plan and everything it owns.
func (s *PlanService) DeletePlan(userID, planID uint) error {
	plan, err := s.GetPlan(userID, planID)
	if err != nil {
		return err
	}
	for _, pm := range plan.PlanMeals {
		if err := config.DB.
			Where("plan_meal_id = ?", pm.ID).
			Delete(&models.PlanMealFood{}).Error; err != nil {
			return err
		}
	}
	if err := config.DB.
		Where("plan_id = ?", plan.ID).
		Delete(&models.PlanMeal{}).Error; err != nil {
		return err
	}
	return config.DB.Delete(&models.Plan{}, plan.ID).Error
}

// AddMealToPlan attaches a meal, copying its foods into PlanMealFoods so the
// plan's quantities can be edited without touching the source meal.
func (s *PlanService) AddMealToPlan(userID, planID, mealID uint, mealName string) (*models.PlanMeal, error) {
	if _, err := s.GetPlan(userID, planID); err != nil {
		return nil, err
	}

	var meal models.Meal
	if err := config.DB.
		Preload("MealFoods").
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error; err != nil {
		return nil, err
	}
	if mealName == "" {
		mealName = meal.Name
	}

	pm := &models.PlanMeal{PlanID: planID, MealID: meal.ID, MealName: mealName}
	if err := config.DB.Create(pm).Error; err != nil {
		return nil, err
	}
	for _, f := range meal.MealFoods {
		pmf := &models.PlanMealFood{
			PlanMealID: pm.ID,
			FoodID:     f.FoodID,
			FoodName:   f.FoodName,
			Quantity:   f.Quantity,
		}
		if err := config.DB.Create(pmf).Error; err != nil {
			return nil, err
		}
	}

	var populated models.PlanMeal
	if err := config.DB.
		Preload("PlanMealFoods").
		First(&populated, pm.ID).Error; err != nil {
		return nil, err
	}
	return &populated, nil
}

func (s *PlanService) AddMealsToPlan(userID, planID uint, mealIDs []uint) ([]models.PlanMeal, error) {
	out := make([]models.PlanMeal, 0, len(mealIDs))
	for _, id := range mealIDs {
		pm, err := s.AddMealToPlan(userID, planID, id, "")
		if err != nil {
			return nil, err
		}
		out = append(out, *pm)
	}
	return out, nil
}

func (s *PlanService) RemoveMealFromPlan(userID, planMealID uint) error {
	var pm models.PlanMeal
	if err := config.DB.
		Joins("JOIN plans ON plans.id = plan_meals.plan_id").
		Where("plan_meals.id = ? AND plans.user_id = ?", planMealID, userID).
		First(&pm).Error; err != nil {
		return err
	}
	if err := config.DB.
		Where("plan_meal_id = ?", pm.ID).
		Delete(&models.PlanMealFood{}).Error; err != nil {
		return err
	}
	return config.DB.Delete(&models.PlanMeal{}, pm.ID).Error
}

// UpdateFoodQuantity persists a new gram quantity for one plan-meal food.
// Negative quantities are a caller bug and are rejected before any write.
func (s *PlanService) UpdateFoodQuantity(userID, planMealFoodID uint, grams float64) error {
	if grams < 0 {
		return nutrition.ErrInvalidQuantity
	}
	var pmf models.PlanMealFood
	if err := config.DB.
		Joins("JOIN plan_meals ON plan_meals.id = plan_meal_foods.plan_meal_id").
		Joins("JOIN plans ON plans.id = plan_meals.plan_id").
		Where("plan_meal_foods.id = ? AND plans.user_id = ?", planMealFoodID, userID).
		First(&pmf).Error; err != nil {
		return err
	}
	pmf.Quantity = grams
	return config.DB.Save(&pmf).Error
}

// GetPlan loads the raw plan tree without nutrient data.
func (s *PlanService) GetPlan(userID, planID uint) (*models.Plan, error) {
	var plan models.Plan
	err := config.DB.
		Preload("PlanMeals.PlanMealFoods").
		Where("id = ? AND user_id = ?", planID, userID).
		First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// LoadPlanWithMacros loads the plan tree and enriches it: every distinct
// food identifier fetched once, profiles shared across occurrences, totals
// computed bottom-up.
func (s *PlanService) LoadPlanWithMacros(userID, planID uint) (*models.Plan, error) {
	gen := s.nextGen(userID)
	plan, err := s.GetPlan(userID, planID)
	if err != nil {
		return nil, err
	}
	if err := s.enrich(plan, gen); err != nil {
		return nil, err
	}
	return plan, nil
}

// EnrichPlan attaches nutrient profiles and totals to an in-memory plan
// tree, for recompute-only paths that do not reload from the store.
func (s *PlanService) EnrichPlan(plan *models.Plan) error {
	return s.enrich(plan, s.nextGen(plan.UserID))
}

func (s *PlanService) enrich(plan *models.Plan, gen uint64) error {
	distinct := make(map[string]struct{})
	for mi := range plan.PlanMeals {
		for _, f := range plan.PlanMeals[mi].PlanMealFoods {
			distinct[f.FoodID] = struct{}{}
		}
	}
	ids := make([]string, 0, len(distinct))
	for id := range distinct {
		ids = append(ids, id)
	}

	profiles := s.fetchProfiles(ids)

	// The same user started a newer load while this one was fetching; its
	// profiles are cached but its view must not be shown. Other users'
	// loads never supersede this one.
	if s.currentGen(plan.UserID) != gen {
		return ErrStaleLoad
	}

	for mi := range plan.PlanMeals {
		meal := &plan.PlanMeals[mi]
		for fi := range meal.PlanMealFoods {
			meal.PlanMealFoods[fi].Macros = profiles[meal.PlanMealFoods[fi].FoodID]
		}
	}
	return RecomputeTotals(plan)
}

// fetchProfiles resolves the given food identifiers, serving unexpired
// cache entries and fanning the misses out concurrently. A failed fetch
// logs and yields no entry, which aggregates as zero; it never fails the
// load as a whole.
func (s *PlanService) fetchProfiles(foodIDs []string) map[string]*nutrition.NutrientProfile {
	out := make(map[string]*nutrition.NutrientProfile, len(foodIDs))

	var misses []string
	now := time.Now()
	s.mu.Lock()
	for _, id := range foodIDs {
		if e, ok := s.profiles[id]; ok && now.Sub(e.fetchedAt) < profileTTL {
			out[id] = e.profile
		} else {
			misses = append(misses, id)
		}
	}
	s.mu.Unlock()

	var (
		wg    sync.WaitGroup
		outMu sync.Mutex
	)
	for _, id := range misses {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			p, err := s.source.FetchProfile(id)
			if err != nil {
				log.Printf("nutrient fetch failed for food %s: %v", id, err)
				return
			}
			outMu.Lock()
			out[id] = p
			outMu.Unlock()

			s.mu.Lock()
			s.profiles[id] = cachedProfile{profile: p, fetchedAt: time.Now()}
			s.mu.Unlock()
		}(id)
	}
	wg.Wait()
	return out
}

// RecomputeTotals folds the current tree into fresh meal and plan totals.
// It reads only what is attached to the tree right now, so a quantity edit
// followed by a recompute can never observe half-updated state.
func RecomputeTotals(plan *models.Plan) error {
	planPortions := make([][]nutrition.FoodPortion, 0, len(plan.PlanMeals))
	for mi := range plan.PlanMeals {
		meal := &plan.PlanMeals[mi]
		portions := make([]nutrition.FoodPortion, 0, len(meal.PlanMealFoods))
		for _, f := range meal.PlanMealFoods {
			portions = append(portions, nutrition.FoodPortion{
				Grams:   f.Quantity,
				Profile: f.Macros,
			})
		}
		totals, err := nutrition.MealTotals(portions)
		if err != nil {
			return err
		}
		meal.Totals = &totals
		planPortions = append(planPortions, portions)
	}

	totals, err := nutrition.PlanTotals(planPortions)
	if err != nil {
		return err
	}
	plan.Totals = &totals
	return nil
}
