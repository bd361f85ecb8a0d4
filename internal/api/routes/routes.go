package routes

import (
	"scavenger-hunt-backend/internal/api/handlers"
	"scavenger-hunt-backend/internal/api/middleware"
	"scavenger-hunt-backend/internal/config"
	"scavenger-hunt-backend/internal/content"
	"scavenger-hunt-backend/internal/repository"
	"scavenger-hunt-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all the routes for the application. The team
// repository is chosen by the caller, so the same routing works for the
// postgres and in-memory backends.
func SetupRoutes(repo repository.TeamRepositoryInterface, cfg *config.Config) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Load the question banks; answer keys stay server-side
	provider, err := content.NewProvider()
	if err != nil {
		return nil, err
	}

	// Initialize services
	teamService := service.NewTeamService(repo, validator)
	phaseService := service.NewPhaseService(repo, provider)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(repo)
	teamHandler := handlers.NewTeamHandler(teamService)
	phaseHandler := handlers.NewPhaseHandler(phaseService)
	adminHandler := handlers.NewAdminHandler(teamService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Registration and lookup
		v1.POST("/register", teamHandler.Register)
		v1.GET("/teams/:name", teamHandler.GetTeamByName)
		v1.GET("/leaderboard", teamHandler.GetLeaderboard)

		// Phase routes
		phases := v1.Group("/phases")
		{
			phases.GET("/:phase/content", phaseHandler.GetPhaseContent)
			phases.POST("/1/submit", phaseHandler.SubmitPhase1)
			phases.POST("/2/check-single", phaseHandler.CheckQuizAnswer)
			phases.POST("/2/submit", phaseHandler.SubmitPhase2)
			phases.POST("/3/submit", phaseHandler.SubmitPhase3)
			phases.POST("/4/submit", phaseHandler.SubmitPhase4)
			phases.POST("/5/answer", phaseHandler.AnswerRiddle)
			phases.POST("/5/complete", phaseHandler.CompletePhase5)
			phases.POST("/6/submit", phaseHandler.SubmitPhase6)
		}

		// Admin routes, guarded by the static bearer token when configured
		admin := v1.Group("/admin")
		admin.Use(middleware.AdminAuth(cfg.AdminToken))
		{
			admin.GET("/teams", adminHandler.ListTeams)
			admin.GET("/stats", adminHandler.GetStats)
			admin.DELETE("/teams/:id", adminHandler.DeleteTeam)
			admin.DELETE("/teams", adminHandler.PurgeTeams)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router, nil
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(repo repository.TeamRepositoryInterface) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(repo)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
