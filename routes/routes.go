package routes

import (
	"backend/controllers"
	"backend/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/signup", controllers.Signup)
		auth.POST("/signin", controllers.Signin)
	}
	r.POST("/refresh-token", controllers.RefreshToken)

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("", controllers.GetProfile)
		user.PUT("", controllers.UpdateProfile)
	}

	goal := r.Group("/goal")
	goal.Use(middlewares.AuthMiddleware())
	{
		goal.GET("", controllers.GetGoal)
		goal.PUT("", controllers.UpdateGoal)
		goal.GET("/recommendations", controllers.GetGoalRecommendations)
	}

	meal := r.Group("/meal")
	meal.Use(middlewares.AuthMiddleware())
	{
		meal.GET("", controllers.ListMeals)
		meal.POST("", controllers.CreateMeal)
		meal.GET("/:id", controllers.GetMealWithMacros)
		meal.DELETE("/:id", controllers.DeleteMeal)
		meal.POST("/addSingleFood", controllers.AddSingleFood)
		meal.POST("/addMultipleFoods", controllers.AddMultipleFoods)
		meal.DELETE("/deleteFoodFromMeal/:id", controllers.DeleteFoodFromMeal)
		meal.PUT("/updateMealDetails", controllers.UpdateMealDetails)
	}

	plan := r.Group("/plan")
	plan.Use(middlewares.AuthMiddleware())
	{
		plan.GET("", controllers.ListPlans)
		plan.POST("", controllers.CreatePlan)
		plan.DELETE("/:id", controllers.DeletePlan)
		plan.GET("/getPlanDetails/:id", controllers.GetPlanDetails)
		plan.POST("/addSingleMeal", controllers.AddSingleMealToPlan)
		plan.POST("/addMultipleMeals", controllers.AddMultipleMealsToPlan)
		plan.DELETE("/deleteMealFromPlan/:id", controllers.DeleteMealFromPlan)
		plan.PUT("/updateFoodQuantity", controllers.UpdateFoodQuantity)
	}

	food := r.Group("/food")
	food.Use(middlewares.AuthMiddleware())
	{
		food.GET("/search", controllers.SearchFoods)
		food.GET("/analyze", controllers.AnalyzeFood)
	}

	return r
}
