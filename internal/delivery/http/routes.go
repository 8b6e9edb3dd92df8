package http

import (
	"github.com/gin-gonic/gin"

	"github.com/cdelavallette-lang/healthapp/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(cfg.RateLimit.PerIP, cfg.RateLimit.Burst))

	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		analysis := v1.Group("/analysis")
		{
			analysis.POST("/meal-plan", handler.AnalyzeMealPlan)
			analysis.POST("/biomarkers", handler.EvaluateBiomarkers)
		}

		recipes := v1.Group("/recipes")
		{
			recipes.POST("", handler.CreateRecipe)
			recipes.GET("", handler.ListRecipes)
			recipes.GET("/:id", handler.GetRecipe)
			recipes.DELETE("/:id", handler.DeleteRecipe)
		}
	}

	return router
}
