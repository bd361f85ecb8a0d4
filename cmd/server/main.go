package main

import (
	"log"
	"os"

	"scavenger-hunt-backend/internal/api/routes"
	"scavenger-hunt-backend/internal/config"
	"scavenger-hunt-backend/internal/database"
	"scavenger-hunt-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "scavenger-hunt-backend/docs" // This is needed for swag
)

//	@title			Scavenger Hunt Backend API
//	@version		1.0
//	@description	Backend API for a six-phase team scavenger hunt: registration, phase content, phase submissions, leaderboard and admin operations.

//	@contact.name	API Support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and the admin token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	// Select the storage backend once, at startup
	var repo repository.TeamRepositoryInterface
	switch cfg.StorageBackend {
	case config.StorageMemory:
		logrus.Warn("Using in-memory storage; team records will not survive a restart")
		repo = repository.NewMemoryTeamRepository()
	default:
		db, err := database.Initialize(cfg.DatabaseURL, nil)
		if err != nil {
			logrus.Fatal("Failed to initialize database:", err)
		}
		repo = repository.NewTeamRepository(db)
	}

	if cfg.AdminToken == "" {
		logrus.Warn("ADMIN_TOKEN is not set; admin endpoints are unprotected")
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router, err := routes.SetupRoutes(repo, cfg)
	if err != nil {
		logrus.Fatal("Failed to set up routes:", err)
	}

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7080"
	}

	logrus.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
