package routes

import (
	"github.com/Akshaya719/LanguageLearningHub/backend/ai"
	"github.com/Akshaya719/LanguageLearningHub/backend/config"
	"github.com/Akshaya719/LanguageLearningHub/backend/controllers"
	"github.com/Akshaya719/LanguageLearningHub/backend/middleware"
	"github.com/Akshaya719/LanguageLearningHub/backend/storage"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, store storage.Storage, gen ai.Generator, cfg *config.Config) {
	// Auth routes
	authController := controllers.NewAuthController(store, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)

	authMiddleware := middleware.AuthMiddleware(cfg)
	app.Get("/api/auth/user", authMiddleware, authController.GetCurrentUser)

	// Task routes
	tasksController := controllers.NewTasksController(store, cfg)
	tasks := app.Group("/api/tasks", authMiddleware)
	tasks.Get("/", tasksController.GetTasks)
	tasks.Get("/:id", tasksController.GetTask)
	tasks.Post("/", tasksController.CreateTask)
	tasks.Patch("/:id", tasksController.UpdateTask)
	tasks.Delete("/:id", tasksController.DeleteTask)
	tasks.Patch("/:id/complete", tasksController.CompleteTask)
	app.Get("/api/stats", authMiddleware, tasksController.GetStats)

	// AI generation routes
	generateController := controllers.NewGenerateController(store, gen, cfg)
	app.Post("/api/generate-tasks", authMiddleware, generateController.GenerateTasks)
	app.Get("/api/suggestions", authMiddleware, generateController.GetSuggestions)

	// Task collection routes
	collectionsController := controllers.NewCollectionsController(store, cfg)
	app.Get("/api/collections", authMiddleware, collectionsController.GetCollections)
	app.Post("/api/collections", authMiddleware, collectionsController.CreateCollection)

	// Language class routes
	classesController := controllers.NewClassesController(store, cfg)
	classes := app.Group("/api/classes", authMiddleware)
	classes.Get("/", classesController.GetClasses)
	classes.Post("/", classesController.CreateClass)
	classes.Get("/:id", classesController.GetClass)
	classes.Get("/:id/sessions", classesController.GetClassSessions)
	classes.Post("/:id/sessions", classesController.CreateClassSession)
	app.Get("/api/sessions/upcoming", authMiddleware, classesController.GetUpcomingSessions)

	// Booking routes
	bookingsController := controllers.NewBookingsController(store, cfg)
	bookings := app.Group("/api/bookings", authMiddleware)
	bookings.Get("/", bookingsController.GetBookings)
	bookings.Post("/", bookingsController.CreateBooking)
	bookings.Post("/:id/cancel", bookingsController.CancelBooking)

	// Reminder routes
	remindersController := controllers.NewRemindersController(store, cfg)
	app.Get("/api/reminders", authMiddleware, remindersController.GetReminders)
	app.Post("/api/reminders/:id/read", authMiddleware, remindersController.MarkRead)

	// Preference routes
	preferencesController := controllers.NewPreferencesController(store, cfg)
	app.Get("/api/preferences", authMiddleware, preferencesController.GetPreferences)
	app.Put("/api/preferences", authMiddleware, preferencesController.UpdatePreferences)
}
