package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/Akshaya719/LanguageLearningHub/backend/config"
	"github.com/Akshaya719/LanguageLearningHub/backend/models"
	"github.com/Akshaya719/LanguageLearningHub/backend/storage"
	"github.com/Akshaya719/LanguageLearningHub/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type TasksController struct {
	Store storage.Storage
	Cfg   *config.Config
}

func NewTasksController(store storage.Storage, cfg *config.Config) *TasksController {
	return &TasksController{Store: store, Cfg: cfg}
}

func (tc *TasksController) GetTasks(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, tc.Cfg)
	if err != nil {
		return utils.Unauthorized(c)
	}

	filters := storage.TaskFilters{}
	switch c.Query("completed") {
	case "true":
		completed := true
		filters.Completed = &completed
	case "false":
		completed := false
		filters.Completed = &completed
	}
	if category := models.TaskCategory(c.Query("category")); category != "" {
		if !category.Valid() {
			return utils.BadRequest(c, "Invalid category")
		}
		filters.Category = category
	}
	if priority := models.TaskPriority(c.Query("priority")); priority != "" {
		if !priority.Valid() {
			return utils.BadRequest(c, "Invalid priority")
		}
		filters.Priority = priority
	}

	tasks, err := tc.Store.GetTasks(c.Context(), userID, filters)
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch tasks")
	}
	return c.JSON(tasks)
}

func (tc *TasksController) GetTask(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, tc.Cfg)
	if err != nil {
		return utils.Unauthorized(c)
	}

	taskID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid task ID")
	}

	task, err := tc.Store.GetTask(c.Context(), uint(taskID), userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return utils.NotFound(c, "Task not found")
		}
		return utils.InternalServerError(c, "Failed to fetch task")
	}
	return c.JSON(task)
}

type taskInput struct {
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Category         string     `json:"category"`
	Priority         string     `json:"priority"`
	EstimatedMinutes int        `json:"estimatedMinutes"`
	DueDate          *time.Time `json:"dueDate"`
}

func (tc *TasksController) CreateTask(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, tc.Cfg)
	if err != nil {
		return utils.Unauthorized(c)
	}

	var input taskInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Title == "" {
		return utils.BadRequest(c, "Title is required")
	}
	if input.Category != "" && !models.TaskCategory(input.Category).Valid() {
		return utils.BadRequest(c, "Invalid category")
	}
	if input.Priority != "" && !models.TaskPriority(input.Priority).Valid() {
		return utils.BadRequest(c, "Invalid priority")
	}
	if input.EstimatedMinutes < 0 {
		return utils.BadRequest(c, "Estimated minutes must be positive")
	}

	task := models.Task{
		Title:            input.Title,
		Description:      input.Description,
		Category:         models.TaskCategory(input.Category),
		Priority:         models.TaskPriority(input.Priority),
		EstimatedMinutes: input.EstimatedMinutes,
		DueDate:          input.DueDate,
	}
	if err := tc.Store.CreateTask(c.Context(), userID, &task); err != nil {
		return utils.InternalServerError(c, "Failed to create task")
	}
	return utils.Created(c, task)
}

func (tc *TasksController) UpdateTask(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, tc.Cfg)
	if err != nil {
		return utils.Unauthorized(c)
	}

	taskID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid task ID")
	}

	type taskPatch struct {
		Title            *string    `json:"title"`
		Description      *string    `json:"description"`
		Category         *string    `json:"category"`
		Priority         *string    `json:"priority"`
		EstimatedMinutes *int       `json:"estimatedMinutes"`
		Completed        *bool      `json:"completed"`
		DueDate          *time.Time `json:"dueDate"`
	}

	var input taskPatch
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	updates := storage.TaskUpdates{
		Title:            input.Title,
		Description:      input.Description,
		EstimatedMinutes: input.EstimatedMinutes,
		Completed:        input.Completed,
		DueDate:          input.DueDate,
	}
	if input.Title != nil && *input.Title == "" {
		return utils.BadRequest(c, "Title cannot be empty")
	}
	if input.Category != nil {
		category := models.TaskCategory(*input.Category)
		if !category.Valid() {
			return utils.BadRequest(c, "Invalid category")
		}
		updates.Category = &category
	}
	if input.Priority != nil {
		priority := models.TaskPriority(*input.Priority)
		if !priority.Valid() {
			return utils.BadRequest(c, "Invalid priority")
		}
		updates.Priority = &priority
	}
	if input.EstimatedMinutes != nil && *input.EstimatedMinutes <= 0 {
		return utils.BadRequest(c, "Estimated minutes must be positive")
	}

	task, err := tc.Store.UpdateTask(c.Context(), uint(taskID), userID, updates)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return utils.NotFound(c, "Task not found")
		}
		return utils.InternalServerError(c, "Failed to update task")
	}
	return c.JSON(task)
}

func (tc *TasksController) DeleteTask(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, tc.Cfg)
	if err != nil {
		return utils.Unauthorized(c)
	}

	taskID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid task ID")
	}

	deleted, err := tc.Store.DeleteTask(c.Context(), uint(taskID), userID)
	if err != nil {
		return utils.InternalServerError(c, "Failed to delete task")
	}
	if !deleted {
		return utils.NotFound(c, "Task not found")
	}
	return c.JSON(fiber.Map{"message": "Task deleted successfully"})
}

func (tc *TasksController) CompleteTask(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, tc.Cfg)
	if err != nil {
		return utils.Unauthorized(c)
	}

	taskID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid task ID")
	}

	task, err := tc.Store.CompleteTask(c.Context(), uint(taskID), userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return utils.NotFound(c, "Task not found")
		}
		return utils.InternalServerError(c, "Failed to complete task")
	}
	return c.JSON(task)
}

func (tc *TasksController) GetStats(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, tc.Cfg)
	if err != nil {
		return utils.Unauthorized(c)
	}

	stats, err := tc.Store.GetTaskStats(c.Context(), userID)
	if err != nil {
		return utils.InternalServerError(c, "Failed to compute stats")
	}
	return c.JSON(stats)
}
