package main

import (
	"context"
	"log"
	"time"

	"github.com/Akshaya719/LanguageLearningHub/backend/ai"
	"github.com/Akshaya719/LanguageLearningHub/backend/config"
	"github.com/Akshaya719/LanguageLearningHub/backend/middleware"
	"github.com/Akshaya719/LanguageLearningHub/backend/routes"
	"github.com/Akshaya719/LanguageLearningHub/backend/seed"
	"github.com/Akshaya719/LanguageLearningHub/backend/services"
	"github.com/Akshaya719/LanguageLearningHub/backend/storage"
	"github.com/Akshaya719/LanguageLearningHub/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize database
	db, err := utils.InitDB(cfg)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	store := storage.NewDatabaseStorage(db)
	generator := ai.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel, logger)

	if cfg.SeedDB {
		if err := seed.SeedDatabase(context.Background(), store); err != nil {
			log.Fatalf("Error seeding database: %v", err)
		}
	}

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, store, generator, cfg)

	// Daily reminder job
	if cfg.ReminderTime != "" {
		reminders := services.NewReminderService(store, logger)
		scheduler := services.NewSchedulerService(time.Local)
		_, err := scheduler.ScheduleDaily(cfg.ReminderTime, func() {
			reminders.Run(context.Background(), time.Now())
		})
		if err != nil {
			log.Fatalf("Error scheduling reminders: %v", err)
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
