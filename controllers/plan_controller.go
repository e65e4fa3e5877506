package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"backend/nutrition"
	"backend/services"

	"github.com/gin-gonic/gin"
)

func CreatePlan(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var body struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := services.PlanSvc.CreatePlan(userID, body.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, plan)
}

func ListPlans(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	plans, err := services.PlanSvc.ListPlans(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plans)
}

func DeletePlan(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	planID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan id"})
		return
	}

	if err := services.PlanSvc.DeletePlan(userID, uint(planID)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "plan deleted"})
}

// GetPlanDetails returns the plan tree enriched with shared nutrient
// profiles and freshly computed totals.
func GetPlanDetails(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	planID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan id"})
		return
	}

	plan, err := services.PlanSvc.LoadPlanWithMacros(userID, uint(planID))
	if err != nil {
		if errors.Is(err, services.ErrStaleLoad) {
			// A newer load owns the screen; this response must not be drawn.
			c.Status(http.StatusNoContent)
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "plan not found"})
		return
	}
	c.JSON(http.StatusOK, plan)
}

func AddSingleMealToPlan(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var body struct {
		PlanID   uint   `json:"planId" binding:"required"`
		MealID   uint   `json:"mealId" binding:"required"`
		MealName string `json:"mealName"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pm, err := services.PlanSvc.AddMealToPlan(userID, body.PlanID, body.MealID, body.MealName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pm)
}

func AddMultipleMealsToPlan(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var body struct {
		PlanID  uint   `json:"planId" binding:"required"`
		MealIDs []uint `json:"mealIds" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pms, err := services.PlanSvc.AddMealsToPlan(userID, body.PlanID, body.MealIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pms)
}

func DeleteMealFromPlan(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	planMealID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan meal id"})
		return
	}

	if err := services.PlanSvc.RemoveMealFromPlan(userID, uint(planMealID)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "meal removed from plan"})
}

func UpdateFoodQuantity(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var body struct {
		PlanMealFoodID uint    `json:"planMealFoodId" binding:"required"`
		Quantity       float64 `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.PlanSvc.UpdateFoodQuantity(userID, body.PlanMealFoodID, body.Quantity); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, nutrition.ErrInvalidQuantity) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "quantity updated"})
}
