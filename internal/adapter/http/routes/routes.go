package routes

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"

	_ "github.com/MikisTh/NutriApp/docs" // This will be auto-generated
	"github.com/MikisTh/NutriApp/internal/adapter/http/handlers"
	"github.com/MikisTh/NutriApp/internal/adapter/persistence/repository"
	"github.com/MikisTh/NutriApp/internal/infrastructure/database"
	"github.com/MikisTh/NutriApp/internal/infrastructure/metrics"
	"github.com/MikisTh/NutriApp/internal/infrastructure/pricing"
	"github.com/MikisTh/NutriApp/internal/usecase"
	"github.com/MikisTh/NutriApp/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(port()))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	prices, err := pricing.LoadPriceTableFromEnv()
	if err != nil {
		log.Fatalf("failed to load price table: %v", err)
	}
	kg, un := prices.Len()
	log.Printf("[mealplan][routes] price table loaded per_kg=%d per_unit_or_liter=%d", kg, un)

	ddb := database.ConnectDynamoDB(context.Background())
	listRepo := repository.NewShoppingListDynamoRepository(ddb)
	planRepo := repository.NewWeeklyPlanMemoryRepository()

	var recorder interfaces.IUsageRecorder
	if metricsEnabled() {
		r := metrics.NewRecorder()
		router.GET("/metrics", gin.WrapH(r.Handler()))
		recorder = r
	}

	mealPlanUseCase := usecase.NewMealPlanUseCase(planRepo, listRepo, recorder, prices)
	mealPlanHandler := handlers.NewMealPlanHandler(mealPlanUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addMealPlanRoutes(v1, mealPlanHandler)
}

func setMiddlewares() {
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func port() int {
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			return p
		}
		log.Printf("[mealplan][routes] invalid PORT=%q, using %d", v, PORT)
	}
	return PORT
}

func metricsEnabled() bool {
	v := strings.TrimSpace(os.Getenv("METRICS_ENABLED"))
	if v == "" {
		return true
	}
	enabled, err := strconv.ParseBool(v)
	return err != nil || enabled
}
