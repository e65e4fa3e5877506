package main

import (
	"backend/config"
	"backend/routes"
	"backend/services"
)

func main() {
	config.InitDB()
	services.InitPlanService() // shared orchestrator, owns the nutrient cache
	r := routes.SetupRouter()
	r.Run(":3001")
}
