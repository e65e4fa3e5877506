package controllers

import (
	"errors"
	"net/http"
	"time"

	"backend/models"
	"backend/nutrition"
	"backend/services"

	"github.com/gin-gonic/gin"
)

func GetGoal(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	goal, err := services.NewGoalService().GetGoal(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goal)
}

func UpdateGoal(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var body models.Goal
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := services.NewGoalService().UpsertGoal(userID, body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goal)
}

func GetGoalRecommendations(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	rec, err := services.NewGoalService().Recommend(userID, time.Now())
	if err != nil {
		if errors.Is(err, nutrition.ErrUnsupportedGender) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "no BMR formula for this gender; set gender to male or female to get recommendations"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rec)
}
