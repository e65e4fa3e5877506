package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"backend/nutrition"
	"backend/services"

	"github.com/gin-gonic/gin"
)

// SearchFoods proxies the food-database search so API credentials stay on
// the server. Returns the top suggestions with their per-100g macros.
func SearchFoods(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}

	suggestions, err := services.NewEdamamService().SearchFoods(query)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, suggestions)
}

// AnalyzeFood returns the macros of a given gram quantity of a food,
// scaled by the food database itself rather than locally from a per-100g
// profile.
func AnalyzeFood(c *gin.Context) {
	foodID := c.Query("foodId")
	if foodID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter foodId is required"})
		return
	}
	grams, err := strconv.ParseFloat(c.Query("grams"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter grams must be a number"})
		return
	}

	profile, err := services.NewEdamamService().AnalyzeQuantity(foodID, grams)
	if err != nil {
		if errors.Is(err, nutrition.ErrInvalidQuantity) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}
