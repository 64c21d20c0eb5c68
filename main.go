package main

import (
	"fmt"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"dental-tourism-server/internal/config"
	"dental-tourism-server/internal/mailer"
	"dental-tourism-server/internal/models"
	"dental-tourism-server/internal/routes"
	"dental-tourism-server/internal/storage"
)

func main() {
	// Load environment variables; a missing .env is fine in deployed environments
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize database connection
	db, err := models.InitDB(models.DatabaseConfig{DSN: cfg.Database.DSN})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	// Object storage is optional: without credentials the upload endpoints degrade
	// to an error response but the rest of the API keeps working.
	var store storage.Storage
	if cfg.AWS.HasCredentials() && cfg.AWS.Bucket != "" {
		store, err = storage.NewS3Storage(cfg)
		if err != nil {
			log.Fatalf("Error initializing object storage: %v", err)
		}
	} else {
		log.Println("AWS storage not configured, photo uploads disabled")
	}

	notifier := mailer.NewNotifier(cfg)
	bulkSender := mailer.NewBulkSender(notifier)

	// Initialize Gin router
	router := gin.Default()

	// Configure CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Origin}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Set up routes - passing collaborators to let routes.go create the handlers
	routes.SetupRoutes(router, db, cfg, store, notifier, bulkSender)

	// Start server
	serverAddr := fmt.Sprintf(":%s", cfg.Port)
	fmt.Printf("Server running on port %s\n", cfg.Port)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
