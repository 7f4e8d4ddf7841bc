package routes

import (
	"github.com/MikisTh/NutriApp/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathMealPlans     = "/meal-plans"
	PathCalories      = "/calories"
	PathShoppingLists = "/shopping-lists"
)

func addMealPlanRoutes(rg *gin.RouterGroup, h *handlers.MealPlanHandler) {
	plans := rg.Group(PathMealPlans)
	{
		plans.GET("/sample", h.GetSampleWeek)
		plans.GET("/sample/calories", h.GetSampleCalories)
		plans.GET("/sample/shopping-list", h.GetSampleShoppingList)
	}

	rg.POST(PathCalories, h.ComputeCalories)

	lists := rg.Group(PathShoppingLists)
	{
		lists.POST("", h.CreateShoppingList)
		lists.POST("/preview", h.PreviewShoppingList)
		lists.GET("/:id", h.GetShoppingList)
	}
}
