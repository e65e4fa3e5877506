package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"backend/nutrition"
	"backend/services"

	"github.com/gin-gonic/gin"
)

func mealService() *services.MealService {
	return services.NewMealService(services.PlanSvc)
}

func CreateMeal(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var body struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := mealService().CreateMeal(userID, body.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, meal)
}

func ListMeals(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	meals, err := mealService().ListMeals(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meals)
}

func DeleteMeal(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	mealID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	if err := mealService().DeleteMeal(userID, uint(mealID)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "meal deleted"})
}

func AddSingleFood(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var body struct {
		MealID uint `json:"mealId" binding:"required"`
		services.MealFoodRequest
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mf, err := mealService().AddFood(userID, body.MealID, body.MealFoodRequest)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, nutrition.ErrInvalidQuantity) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, mf)
}

func AddMultipleFoods(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var body []struct {
		MealID uint `json:"mealId" binding:"required"`
		services.MealFoodRequest
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(body) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no foods given"})
		return
	}

	svc := mealService()
	for _, item := range body {
		if _, err := svc.AddFood(userID, item.MealID, item.MealFoodRequest); err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, nutrition.ErrInvalidQuantity) {
				status = http.StatusBadRequest
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
	}

	meal, err := svc.GetMeal(userID, body[0].MealID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meal)
}

func DeleteFoodFromMeal(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	foodID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid food id"})
		return
	}

	if err := mealService().RemoveFood(userID, uint(foodID)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "food removed"})
}

func UpdateMealDetails(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var body struct {
		MealID uint   `json:"mealId" binding:"required"`
		Name   string `json:"name"`
		Foods  []struct {
			ID       uint    `json:"id"`
			Quantity float64 `json:"quantity"`
		} `json:"foods"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := mealService().UpdateMealDetails(userID, body.MealID, body.Name, body.Foods)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, nutrition.ErrInvalidQuantity) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meal)
}

func GetMealWithMacros(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	mealID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	svc := mealService()
	meal, err := svc.GetMeal(userID, uint(mealID))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
		return
	}
	if err := svc.EnrichMeal(meal); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meal)
}
