package main

import (
	"fmt"
	"os"

	"rewardstracker/internal/config"
	"rewardstracker/internal/database"
	"rewardstracker/internal/handlers"
	"rewardstracker/internal/logger"
	"rewardstracker/internal/services"
	"rewardstracker/internal/validator"

	_ "rewardstracker/internal/docs" // Import swagger docs
)

// @title           RewardsTracker API
// @version         1.0
// @description     Account creation endpoint backing the RewardsTracker onboarding flow.

// @host      localhost:4000
// @BasePath  /api

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(database.NewConfig(appConfig))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnw("failed to close database", "error", err)
		}
	}()

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	validator.Register()

	// Initialize services
	db := dbManager.DB()
	accountService := services.NewAccountService(db)
	auditService := services.NewAuditService(db)

	// Initialize handlers
	signupHandler := handlers.NewSignupHandler(accountService, auditService)

	router := handlers.NewRouter(signupHandler)

	log.Infof("Starting RewardsTracker backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
